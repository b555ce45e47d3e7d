// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store holds every estimation room in process memory and owns all
mutation of room state.

# Rooms and Participants

A Room is a short-code-addressed session with an ordered participant
list. Participants are created on first join, resolved by id on rejoin,
and removed only by an explicit leave or room reclamation. A participant's
estimate stays hidden until the room reveals.

# Operations

Each store method is one atomic operation against one room:

	roomID, hostID, err := s.CreateRoom("fibonacci", "Alice")
	pid, view, err := s.Join(roomID, "Bob", "")
	view, autoRevealed, err := s.Vote(roomID, pid, &token)
	view, autoRevealed, err := s.SetReady(roomID, pid, true)
	view, autoRevealed, err := s.Leave(roomID, pid)
	view, err := s.Reveal(roomID, pid)
	view, err := s.Reset(roomID, "", pid)

Operations validate fully before touching state: a failed call leaves
the room exactly as it was, including its updated-at timestamp.

# Round State

A room is either voting (votes hidden) or revealed (votes visible).
Reveal is idempotent; the only way back to voting is Reset, which clears
every vote and ready flag. Vote and SetReady fail with ErrRoundRevealed
while the room is revealed.

# Auto-Reveal

When every participant in a non-empty room has an estimate and the
ready flag, the room reveals itself. The condition is recomputed from
participant state on every vote, ready change, and leave; the mutating
call that tripped it reports autoRevealed = true exactly once.

# Concurrency

The room map is guarded by a read-write mutex, each room by its own
mutex. An operation resolves the room under the map lock, then mutates
and projects under the room lock, so operations on the same room are
serialized while unrelated rooms proceed in parallel.

# Reclamation

Sweep removes rooms idle past a TTL (empty rooms at TTL/24). main runs
it on a ticker; tests call it directly with a chosen clock.

# Errors

All errors are caller-input or lookup failures (ErrRoomNotFound,
ErrInvalidVote, ...). Nothing the store returns is retryable.
*/
package store
