// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3324)
  - DefaultScale: Scale for rooms that don't request one (default: fibonacci)
  - RoomTTL: Idle time before a room is reclaimed; 0 disables (default: 24h)
  - SweepInterval: How often the idle sweeper runs (default: 5m)

# CLI Flags

	-p            Server port
	-scale        Default estimation scale
	-room-ttl     Idle-room TTL (Go duration)
	-sweep-every  Sweep interval (Go duration)

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DEFAULT_SCALE  → -scale
	ROOM_TTL       → -room-ttl
	SWEEP_INTERVAL → -sweep-every

CLI flags take precedence over environment variables. Nothing is
required; the server runs with all defaults.

# Validation

ParseFlags returns an error for malformed values: a non-numeric PORT, a
negative or unparseable ROOM_TTL, or a non-positive SWEEP_INTERVAL. The
default scale is validated against the registry in main, where the
registry exists.
*/
package cliparse
