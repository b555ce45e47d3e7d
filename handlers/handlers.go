// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pointsup/middleware"
	"github.com/danielhkuo/pointsup/store"
)

// respondStoreError maps the store's error taxonomy to HTTP status codes:
// unknown room → 404, revealed-round rejection → 409, everything else the
// store produces is bad caller input → 400.
func respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrRoomNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrRoundRevealed):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrParticipantNotFound),
		errors.Is(err, store.ErrInvalidName),
		errors.Is(err, store.ErrInvalidVote),
		errors.Is(err, store.ErrInvalidScale),
		errors.Is(err, store.ErrNotReady):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("unexpected store error", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "internal error")
	}
}
