// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package roomid generates and normalizes the short codes that identify rooms.

Codes are 4 characters drawn from a 32-character alphabet with 0, O, 1,
and I removed, so "join room K7PQ" survives being said out loud:

	code, err := roomid.Generate()   // e.g. "K7PQ"
	roomid.Normalize(" k7pq ")       // "K7PQ"

Generate does not check uniqueness; the store compares each candidate
against its room map (inside the same lock as the insertion) and draws
again on collision.
*/
package roomid
