// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pointsup/cliparse"
	"github.com/danielhkuo/pointsup/middleware"
	"github.com/danielhkuo/pointsup/models"
	"github.com/danielhkuo/pointsup/store"
)

type VotingHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewVotingHandler(s *store.Store, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{store: s, cfg: cfg}
}

// Join handles POST /rooms/{id}/participants
// A request carrying a previously-issued participant_id that still
// exists in the room rejoins as that participant instead of creating a
// duplicate.
func (h *VotingHandler) Join(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")

	var req models.JoinRoomRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	participantID, view, err := h.store.Join(roomID, req.Name, req.ParticipantID)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	slog.Info("participant joined", "room_id", view.ID, "participant_id", participantID)

	middleware.JSONResponse(w, http.StatusCreated, models.JoinRoomResponse{
		ParticipantID: participantID,
		Room:          view,
	})
}

// Leave handles DELETE /rooms/{id}/participants/{participantId}
func (h *VotingHandler) Leave(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")
	participantID := r.PathValue("participantId")

	view, autoRevealed, err := h.store.Leave(roomID, participantID)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	slog.Info("participant left", "room_id", view.ID, "participant_id", participantID, "auto_revealed", autoRevealed)

	middleware.JSONResponse(w, http.StatusOK, models.RoomUpdateResponse{
		RoomView:     view,
		AutoRevealed: autoRevealed,
	})
}

// Vote handles POST /rooms/{id}/votes
// A null or absent vote clears the participant's estimate.
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ParticipantID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "participant_id is required")
		return
	}

	view, autoRevealed, err := h.store.Vote(roomID, req.ParticipantID, req.Vote)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	slog.Info("vote recorded", "room_id", view.ID, "participant_id", req.ParticipantID,
		"cleared", req.Vote == nil, "auto_revealed", autoRevealed)

	middleware.JSONResponse(w, http.StatusOK, models.RoomUpdateResponse{
		RoomView:     view,
		AutoRevealed: autoRevealed,
	})
}

// SetReady handles POST /rooms/{id}/ready
func (h *VotingHandler) SetReady(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")

	var req models.ReadyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ParticipantID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "participant_id is required")
		return
	}

	view, autoRevealed, err := h.store.SetReady(roomID, req.ParticipantID, req.Ready)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	slog.Info("ready updated", "room_id", view.ID, "participant_id", req.ParticipantID,
		"ready", req.Ready, "auto_revealed", autoRevealed)

	middleware.JSONResponse(w, http.StatusOK, models.RoomUpdateResponse{
		RoomView:     view,
		AutoRevealed: autoRevealed,
	})
}
