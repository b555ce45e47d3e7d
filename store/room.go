// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"sync"
	"time"
)

// Participant is one person's membership and voting state within a room.
// An empty Vote means no estimate has been cast this round; scale tokens
// are never empty strings.
type Participant struct {
	ID           string
	Name         string
	Vote         string
	Ready        bool
	JoinedAt     time.Time
	LastActiveAt time.Time
}

// Room is a single estimation session. All fields are guarded by mu,
// which the store takes for exactly one operation at a time. Rooms share
// no state with each other, so unrelated rooms mutate in parallel.
type Room struct {
	mu sync.Mutex

	ID           string
	ScaleID      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Revealed     bool
	Participants []*Participant
}

// findParticipant returns the participant with the given id, or nil.
// Caller must hold r.mu.
func (r *Room) findParticipant(id string) *Participant {
	for _, p := range r.Participants {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// shouldAutoReveal reports whether the room should flip to revealed:
// not already revealed, at least one participant, and every participant
// has both an estimate and the ready flag. Recomputed fresh on every
// call that can affect readiness or membership; never cached.
// Caller must hold r.mu.
func (r *Room) shouldAutoReveal() bool {
	if r.Revealed || len(r.Participants) == 0 {
		return false
	}
	for _, p := range r.Participants {
		if !p.Ready || p.Vote == "" {
			return false
		}
	}
	return true
}

// applyAutoReveal evaluates the auto-reveal predicate and performs the
// transition. Returns true only when this call caused a reveal that had
// not already happened. Caller must hold r.mu.
func (r *Room) applyAutoReveal() bool {
	if !r.shouldAutoReveal() {
		return false
	}
	r.Revealed = true
	return true
}
