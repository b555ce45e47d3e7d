package models

import "time"

// Request types

type CreateRoomRequest struct {
	Scale    string `json:"scale"`
	HostName string `json:"host_name"`
}

type JoinRoomRequest struct {
	Name          string `json:"name"`
	ParticipantID string `json:"participant_id"`
}

// Vote is a pointer so "clear my vote" (null/absent) is distinguishable
// from voting the literal empty string
type VoteRequest struct {
	ParticipantID string  `json:"participant_id"`
	Vote          *string `json:"vote"`
}

type ReadyRequest struct {
	ParticipantID string `json:"participant_id"`
	Ready         bool   `json:"ready"`
}

type RevealRequest struct {
	ParticipantID string `json:"participant_id"`
}

type ResetRequest struct {
	Scale string `json:"scale"`
}

type ChangeScaleRequest struct {
	Scale string `json:"scale"`
}

// Response types

type CreateRoomResponse struct {
	RoomID        string `json:"room_id"`
	ParticipantID string `json:"participant_id,omitempty"`
}

type JoinRoomResponse struct {
	ParticipantID string   `json:"participant_id"`
	Room          RoomView `json:"room"`
}

// RoomUpdateResponse is returned by vote, ready, and leave: the projected
// room plus whether this call tripped the auto-reveal
type RoomUpdateResponse struct {
	RoomView
	AutoRevealed bool `json:"auto_revealed"`
}

// View types

// ParticipantView hides the vote token unless the round is revealed or
// the participant is the requester
type ParticipantView struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	HasVoted bool    `json:"has_voted"`
	Vote     *string `json:"vote"`
	Ready    bool    `json:"ready"`
}

type RoomView struct {
	ID           string            `json:"id"`
	Scale        string            `json:"scale"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	Revealed     bool              `json:"revealed"`
	Participants []ParticipantView `json:"participants"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
