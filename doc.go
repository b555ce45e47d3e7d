// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Points Up API server.

Points Up is a collaborative estimation service: one person opens a room,
teammates join with a display name, everyone casts a hidden estimate, and
the votes flip visible together once the whole room is ready (or someone
reveals explicitly).

# Starting the Server

The server needs no external services; all room state is in memory:

	go run main.go

Or with flags:

	go run main.go -p 3324 -scale tshirt -room-ttl 12h

# Configuration

Optional settings (flag / env):

  - PORT (-p): Server port (default: 3324)
  - DEFAULT_SCALE (-scale): Scale for rooms that don't pick one (default: fibonacci)
  - ROOM_TTL (-room-ttl): Idle time before a room is reclaimed; 0 keeps rooms forever (default: 24h)
  - SWEEP_INTERVAL (-sweep-every): How often the idle sweeper runs (default: 5m)

A .env file in the working directory is loaded at startup.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (rooms, participants, voting)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response/view types
  - store: In-memory session store, room state machine, view projection
  - scale: Estimation scale registry (fibonacci, t-shirt sizes)
  - roomid: Room code generation and normalization
  - cliparse: Configuration parsing

There is no database: rooms live only in process memory and a restart
loses them all. Clients poll GET /rooms/{id} for updates.

See package documentation for each component.
*/
package main
