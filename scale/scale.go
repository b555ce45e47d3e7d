// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scale

// Scale identifiers for the built-in estimation scales
const (
	Fibonacci = "fibonacci"
	TShirt    = "tshirt"
)

// DefaultID is the scale assigned to rooms that don't request one
const DefaultID = Fibonacci

// Scale is an ordered set of estimate tokens a room accepts
type Scale struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Values      []string `json:"values"`
	Description string   `json:"description"`
}

// Contains reports whether token is a valid estimate on this scale
func (s Scale) Contains(token string) bool {
	for _, v := range s.Values {
		if v == token {
			return true
		}
	}
	return false
}

// Registry maps scale IDs to their definitions.
// It is fixed data; nothing mutates it after construction.
type Registry map[string]Scale

// BuiltIn returns the registry of scales the server ships with
func BuiltIn() Registry {
	return Registry{
		Fibonacci: {
			ID:          Fibonacci,
			Label:       "Fibonacci",
			Values:      []string{"0", "1", "2", "3", "5", "8", "13", "21", "?"},
			Description: "Classic Fibonacci sequence often used for effort sizing.",
		},
		TShirt: {
			ID:          TShirt,
			Label:       "T-Shirt Sizes",
			Values:      []string{"XS", "S", "M", "L", "XL", "XXL", "?"},
			Description: "Simple sizing using T-shirt sizes for rough estimates.",
		},
	}
}

// Lookup returns the scale for id, if registered
func (r Registry) Lookup(id string) (Scale, bool) {
	s, ok := r[id]
	return s, ok
}

// List returns all registered scales in a stable order (built-ins first
// by convention: fibonacci, then tshirt, then anything else)
func (r Registry) List() []Scale {
	ordered := []string{Fibonacci, TShirt}
	seen := map[string]bool{}
	var out []Scale
	for _, id := range ordered {
		if s, ok := r[id]; ok {
			out = append(out, s)
			seen[id] = true
		}
	}
	for id, s := range r {
		if !seen[id] {
			out = append(out, s)
		}
	}
	return out
}
