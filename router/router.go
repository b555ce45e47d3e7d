// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/pointsup/cliparse"
	"github.com/danielhkuo/pointsup/handlers"
	"github.com/danielhkuo/pointsup/middleware"
	"github.com/danielhkuo/pointsup/scale"
	"github.com/danielhkuo/pointsup/store"
)

func NewRouter(s *store.Store, registry scale.Registry, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	roomHandler := handlers.NewRoomHandler(s, registry, cfg)
	votingHandler := handlers.NewVotingHandler(s, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Room lifecycle
	mux.HandleFunc("POST /rooms", middleware.WithLogging(roomHandler.CreateRoom))
	mux.HandleFunc("GET /rooms/{id}", middleware.WithLogging(roomHandler.GetRoom))
	mux.HandleFunc("PATCH /rooms/{id}", middleware.WithLogging(roomHandler.ChangeScale))
	mux.HandleFunc("POST /rooms/{id}/reveal", middleware.WithLogging(roomHandler.Reveal))
	mux.HandleFunc("POST /rooms/{id}/reset", middleware.WithLogging(roomHandler.Reset))

	// Participants and voting
	mux.HandleFunc("POST /rooms/{id}/participants", middleware.WithLogging(votingHandler.Join))
	mux.HandleFunc("DELETE /rooms/{id}/participants/{participantId}", middleware.WithLogging(votingHandler.Leave))
	mux.HandleFunc("POST /rooms/{id}/votes", middleware.WithLogging(votingHandler.Vote))
	mux.HandleFunc("POST /rooms/{id}/ready", middleware.WithLogging(votingHandler.SetReady))

	// Scale registry (the client renders its scale picker from this)
	mux.HandleFunc("GET /scales", middleware.WithLogging(roomHandler.ListScales))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pointsup API v1"))
	})

	return mux
}
