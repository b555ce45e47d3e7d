// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and view types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateRoomRequest: scale, host_name
  - JoinRoomRequest: name, participant_id (rejoin)
  - VoteRequest: participant_id, vote (*string; null clears)
  - ReadyRequest: participant_id, ready
  - RevealRequest: participant_id
  - ResetRequest / ChangeScaleRequest: scale

# Response Types

Types for JSON responses:

  - CreateRoomResponse: room_id, participant_id (host, if any)
  - JoinRoomResponse: participant_id, room
  - RoomUpdateResponse: the room view plus auto_revealed
  - ErrorResponse: error, message

# View Types

RoomView and ParticipantView are what clients poll. ParticipantView.Vote
is null unless the room is revealed or the participant is the requester;
HasVoted is always populated.
*/
package models
