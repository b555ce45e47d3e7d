// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Points Up API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - RoomHandler: Room lifecycle (create, view, reveal, reset, scale change)
  - VotingHandler: Joining, leaving, voting, readiness

Handlers are created via constructor functions:

	roomHandler := handlers.NewRoomHandler(store, registry, cfg)
	votingHandler := handlers.NewVotingHandler(store, cfg)

# Room Flow

	POST  /rooms                 → CreateRoom (optionally joins the host)
	GET   /rooms/{id}            → GetRoom (poll this; ?participantId= shows your own vote)
	POST  /rooms/{id}/reveal     → Reveal (explicit, idempotent)
	POST  /rooms/{id}/reset      → Reset (next round, optional scale switch)
	PATCH /rooms/{id}            → ChangeScale (reset + switch)

# Voting Flow

	POST   /rooms/{id}/participants                  → Join (or rejoin with participant_id)
	POST   /rooms/{id}/votes                         → Vote (null vote clears)
	POST   /rooms/{id}/ready                         → SetReady
	DELETE /rooms/{id}/participants/{participantId}  → Leave

Vote, SetReady, and Leave responses carry auto_revealed so the client
can distinguish "everyone ready, flipped automatically" from an explicit
reveal.

# Status Mapping

Store errors map to HTTP codes in respondStoreError: unknown room → 404,
voting against a revealed round → 409, all other input errors → 400.
*/
package handlers
