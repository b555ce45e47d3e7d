// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "github.com/danielhkuo/pointsup/models"

// projectLocked derives the externally-visible summary of a room for
// the given requester. Whether a participant has voted is always public;
// the token itself is only exposed once the room is revealed, or to the
// participant who cast it. Read-only: no timestamps move here.
// Caller must hold r.mu.
func projectLocked(r *Room, requesterID string) models.RoomView {
	participants := make([]models.ParticipantView, 0, len(r.Participants))
	for _, p := range r.Participants {
		hasVoted := p.Vote != ""
		var vote *string
		if hasVoted && (r.Revealed || p.ID == requesterID) {
			token := p.Vote
			vote = &token
		}
		participants = append(participants, models.ParticipantView{
			ID:       p.ID,
			Name:     p.Name,
			HasVoted: hasVoted,
			Vote:     vote,
			Ready:    p.Ready,
		})
	}

	return models.RoomView{
		ID:           r.ID,
		Scale:        r.ScaleID,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
		Revealed:     r.Revealed,
		Participants: participants,
	}
}
