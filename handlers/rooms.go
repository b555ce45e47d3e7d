// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pointsup/cliparse"
	"github.com/danielhkuo/pointsup/middleware"
	"github.com/danielhkuo/pointsup/models"
	"github.com/danielhkuo/pointsup/scale"
	"github.com/danielhkuo/pointsup/store"
)

type RoomHandler struct {
	store    *store.Store
	registry scale.Registry
	cfg      cliparse.Config
}

func NewRoomHandler(s *store.Store, registry scale.Registry, cfg cliparse.Config) *RoomHandler {
	return &RoomHandler{store: s, registry: registry, cfg: cfg}
}

// CreateRoom handles POST /rooms
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRoomRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	scaleID := req.Scale
	if scaleID == "" {
		scaleID = h.cfg.DefaultScale
	}

	roomID, hostID, err := h.store.CreateRoom(scaleID, req.HostName)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	slog.Info("room created", "room_id", roomID, "scale", scaleID, "with_host", hostID != "")

	middleware.JSONResponse(w, http.StatusCreated, models.CreateRoomResponse{
		RoomID:        roomID,
		ParticipantID: hostID,
	})
}

// GetRoom handles GET /rooms/{id}
// The participantId query parameter exposes the requester's own pending
// vote in the view; everyone else's stays hidden until reveal.
func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")
	requesterID := r.URL.Query().Get("participantId")

	view, err := h.store.View(roomID, requesterID)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, view)
}

// Reveal handles POST /rooms/{id}/reveal
func (h *RoomHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")

	// Body is optional; an empty or invalid payload just means no
	// participant context for the projected view
	var req models.RevealRequest
	_ = middleware.ParseJSONBody(r, &req)

	view, err := h.store.Reveal(roomID, req.ParticipantID)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	slog.Info("votes revealed", "room_id", view.ID)

	middleware.JSONResponse(w, http.StatusOK, view)
}

// Reset handles POST /rooms/{id}/reset
func (h *RoomHandler) Reset(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")

	var req models.ResetRequest
	_ = middleware.ParseJSONBody(r, &req)

	view, err := h.store.Reset(roomID, req.Scale, "")
	if err != nil {
		respondStoreError(w, err)
		return
	}

	slog.Info("round reset", "room_id", view.ID, "scale", view.Scale)

	middleware.JSONResponse(w, http.StatusOK, view)
}

// ChangeScale handles PATCH /rooms/{id}
func (h *RoomHandler) ChangeScale(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("id")

	var req models.ChangeScaleRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Scale == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "scale is required")
		return
	}

	view, err := h.store.ChangeScale(roomID, req.Scale, "")
	if err != nil {
		respondStoreError(w, err)
		return
	}

	slog.Info("scale changed", "room_id", view.ID, "scale", view.Scale)

	middleware.JSONResponse(w, http.StatusOK, view)
}

// ListScales handles GET /scales
func (h *RoomHandler) ListScales(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.registry.List())
}
