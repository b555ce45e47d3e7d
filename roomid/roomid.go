// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roomid

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// Alphabet is the character set room codes are drawn from.
// Uppercase letters and digits with 0/O/1/I removed so codes can be
// read aloud and typed without ambiguity.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Length is the number of characters in a room code
const Length = 4

// Generate creates a random room code.
// Uniqueness is the caller's job: the store checks the code against its
// map and calls Generate again on collision.
func Generate() (string, error) {
	b := make([]byte, Length)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate room code: %w", err)
	}
	for i := range b {
		b[i] = Alphabet[int(b[i])%len(Alphabet)]
	}
	return string(b), nil
}

// Normalize folds a client-supplied room ID to the canonical form.
// Codes are case-insensitive everywhere; the store keys on the
// normalized form only.
func Normalize(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
