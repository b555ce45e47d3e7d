// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/pointsup/models"
	"github.com/danielhkuo/pointsup/roomid"
	"github.com/danielhkuo/pointsup/scale"
)

// Store owns every room in the process. Lock ordering is map then room:
// operations resolve the room under the map read lock, release it, and
// take the room's own lock for the mutation, so unrelated rooms never
// serialize against each other.
type Store struct {
	mu       sync.RWMutex
	rooms    map[string]*Room
	registry scale.Registry
}

// New creates an empty store backed by the given scale registry
func New(registry scale.Registry) *Store {
	return &Store{
		rooms:    make(map[string]*Room),
		registry: registry,
	}
}

// CreateRoom registers a new room on the given scale. If hostName is
// non-blank the host joins immediately as the first participant and
// their id is returned alongside the room id.
func (s *Store) CreateRoom(scaleID, hostName string) (roomID, hostID string, err error) {
	if _, ok := s.registry.Lookup(scaleID); !ok {
		return "", "", ErrInvalidScale
	}

	now := time.Now()
	room := &Room{
		ScaleID:   scaleID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Code generation and map insertion are one atomic region: two
	// concurrent creators must not both win the same code.
	s.mu.Lock()
	for {
		code, genErr := roomid.Generate()
		if genErr != nil {
			s.mu.Unlock()
			return "", "", fmt.Errorf("create room: %w", genErr)
		}
		if _, taken := s.rooms[code]; !taken {
			room.ID = code
			s.rooms[code] = room
			break
		}
	}
	s.mu.Unlock()

	if strings.TrimSpace(hostName) != "" {
		host, _, joinErr := s.Join(room.ID, hostName, "")
		if joinErr != nil {
			return "", "", joinErr
		}
		hostID = host
	}
	return room.ID, hostID, nil
}

// room resolves a normalized room id to a live room
func (s *Store) room(id string) (*Room, error) {
	s.mu.RLock()
	r, ok := s.rooms[roomid.Normalize(id)]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrRoomNotFound
	}
	return r, nil
}

// View projects the room for the given requester without mutating
// anything; requesterID may be empty.
func (s *Store) View(roomID, requesterID string) (models.RoomView, error) {
	r, err := s.room(roomID)
	if err != nil {
		return models.RoomView{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return projectLocked(r, requesterID), nil
}

// Join adds a participant, or updates name and activity when the caller
// presents a participant id that still exists in the room (rejoin).
// Rejoin never resets the participant's vote or ready flag.
func (s *Store) Join(roomID, name, participantID string) (string, models.RoomView, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", models.RoomView{}, ErrInvalidName
	}

	r, err := s.room(roomID)
	if err != nil {
		return "", models.RoomView{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	var p *Participant
	if participantID != "" {
		p = r.findParticipant(participantID)
		if p != nil {
			p.Name = trimmed
			p.LastActiveAt = now
		}
	}
	if p == nil {
		p = &Participant{
			ID:           uuid.NewString(),
			Name:         trimmed,
			JoinedAt:     now,
			LastActiveAt: now,
		}
		r.Participants = append(r.Participants, p)
	}
	r.UpdatedAt = now

	return p.ID, projectLocked(r, p.ID), nil
}

// Vote records, changes, or clears (vote == nil) a participant's
// estimate. Changing to a different value drops the ready flag; casting
// the same token again keeps it. Votes are rejected while the round is
// revealed; reset starts the next round.
func (s *Store) Vote(roomID, participantID string, vote *string) (models.RoomView, bool, error) {
	r, err := s.room(roomID)
	if err != nil {
		return models.RoomView{}, false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.findParticipant(participantID)
	if p == nil {
		return models.RoomView{}, false, ErrParticipantNotFound
	}
	if r.Revealed {
		return models.RoomView{}, false, ErrRoundRevealed
	}

	next := ""
	if vote != nil {
		sc, _ := s.registry.Lookup(r.ScaleID)
		if !sc.Contains(*vote) {
			return models.RoomView{}, false, ErrInvalidVote
		}
		next = *vote
	}

	if next != p.Vote {
		p.Ready = false
	}
	p.Vote = next

	now := time.Now()
	p.LastActiveAt = now
	r.UpdatedAt = now

	auto := r.applyAutoReveal()
	return projectLocked(r, p.ID), auto, nil
}

// SetReady toggles a participant's ready flag. Marking ready without an
// estimate fails; the flag is what arms the auto-reveal.
func (s *Store) SetReady(roomID, participantID string, ready bool) (models.RoomView, bool, error) {
	r, err := s.room(roomID)
	if err != nil {
		return models.RoomView{}, false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.findParticipant(participantID)
	if p == nil {
		return models.RoomView{}, false, ErrParticipantNotFound
	}
	if r.Revealed {
		return models.RoomView{}, false, ErrRoundRevealed
	}
	if ready && p.Vote == "" {
		return models.RoomView{}, false, ErrNotReady
	}

	p.Ready = ready

	now := time.Now()
	p.LastActiveAt = now
	r.UpdatedAt = now

	auto := r.applyAutoReveal()
	return projectLocked(r, p.ID), auto, nil
}

// Leave removes a participant. Auto-reveal is re-evaluated afterward:
// a departing straggler can leave the remaining set unanimous.
func (s *Store) Leave(roomID, participantID string) (models.RoomView, bool, error) {
	r, err := s.room(roomID)
	if err != nil {
		return models.RoomView{}, false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, p := range r.Participants {
		if p.ID == participantID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.RoomView{}, false, ErrParticipantNotFound
	}
	r.Participants = append(r.Participants[:idx], r.Participants[idx+1:]...)
	if len(r.Participants) == 0 {
		// Last person out: whoever joins next starts a fresh hidden round
		r.Revealed = false
	}
	r.UpdatedAt = time.Now()

	auto := r.applyAutoReveal()
	return projectLocked(r, ""), auto, nil
}

// Reveal makes all votes visible. Revealing an already-revealed room is
// a no-op aside from the activity timestamp.
func (s *Store) Reveal(roomID, requesterID string) (models.RoomView, error) {
	r, err := s.room(roomID)
	if err != nil {
		return models.RoomView{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.Revealed = true
	r.UpdatedAt = time.Now()
	return projectLocked(r, requesterID), nil
}

// Reset starts the next round: every vote and ready flag is cleared and
// the room returns to hidden voting. A non-empty newScaleID additionally
// switches the active scale in the same mutation; prior votes may not be
// valid tokens on the new scale, which is why a scale change always
// clears the round.
func (s *Store) Reset(roomID, newScaleID, requesterID string) (models.RoomView, error) {
	if newScaleID != "" {
		if _, ok := s.registry.Lookup(newScaleID); !ok {
			return models.RoomView{}, ErrInvalidScale
		}
	}

	r, err := s.room(roomID)
	if err != nil {
		return models.RoomView{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.Participants {
		p.Vote = ""
		p.Ready = false
	}
	if newScaleID != "" {
		r.ScaleID = newScaleID
	}
	r.Revealed = false
	r.UpdatedAt = time.Now()

	return projectLocked(r, requesterID), nil
}

// ChangeScale switches the room's estimation scale, clearing the current
// round as part of the same mutation
func (s *Store) ChangeScale(roomID, scaleID, requesterID string) (models.RoomView, error) {
	if _, ok := s.registry.Lookup(scaleID); !ok {
		return models.RoomView{}, ErrInvalidScale
	}
	return s.Reset(roomID, scaleID, requesterID)
}

// Count returns the number of live rooms
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

// Sweep reclaims rooms whose last activity is older than ttl as of now.
// Rooms with zero participants use ttl/24 instead: an empty room has
// nothing worth keeping. A ttl of zero disables reclamation. Returns the
// number of rooms removed.
func (s *Store) Sweep(now time.Time, ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}
	emptyTTL := ttl / 24

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, r := range s.rooms {
		r.mu.Lock()
		idle := now.Sub(r.UpdatedAt)
		empty := len(r.Participants) == 0
		r.mu.Unlock()

		if idle > ttl || (empty && idle > emptyTTL) {
			delete(s.rooms, id)
			removed++
		}
	}
	return removed
}
