// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Points Up API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, registry, cfg)

# Endpoints

Health:

	GET /health

Room lifecycle:

	POST  /rooms             - Create room (optional host join)
	GET   /rooms/{id}        - Room view (client polling)
	PATCH /rooms/{id}        - Change estimation scale
	POST  /rooms/{id}/reveal - Reveal votes
	POST  /rooms/{id}/reset  - Start the next round

Participants and voting:

	POST   /rooms/{id}/participants                 - Join / rejoin
	DELETE /rooms/{id}/participants/{participantId} - Leave
	POST   /rooms/{id}/votes                        - Cast or clear a vote
	POST   /rooms/{id}/ready                        - Toggle readiness

Scales:

	GET /scales - Registered estimation scales

# Handler Initialization

The router creates handler instances with dependency injection:

	roomHandler := handlers.NewRoomHandler(store, registry, cfg)
	votingHandler := handlers.NewVotingHandler(store, cfg)

All handlers receive the room store and configuration; there is no
other shared state.
*/
package router
