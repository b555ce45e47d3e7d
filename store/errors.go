// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "errors"

// Every failure the store produces is a caller-input or lookup error.
// None are transient and none indicate internal corruption; handlers map
// them straight to 4xx status codes.
var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrInvalidName         = errors.New("a participant name is required")
	ErrInvalidVote         = errors.New("vote not allowed for current scale")
	ErrInvalidScale        = errors.New("unsupported scale")
	ErrNotReady            = errors.New("select an estimate before marking ready")
	ErrRoundRevealed       = errors.New("votes are locked while the round is revealed")
)
