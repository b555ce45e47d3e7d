// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/pointsup/models"
	"github.com/danielhkuo/pointsup/scale"
	"github.com/danielhkuo/pointsup/testutil"
)

func strptr(s string) *string { return &s }

func TestJoin(t *testing.T) {
	s := testutil.NewTestStore(t)
	cfg := testutil.GetTestConfig()
	handler := NewVotingHandler(s, cfg)

	roomID := testutil.CreateTestRoom(t, s, scale.Fibonacci)
	existing := testutil.JoinTestParticipant(t, s, roomID, "Alice")

	tests := []struct {
		name           string
		roomID         string
		requestBody    models.JoinRoomRequest
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.JoinRoomResponse)
	}{
		{
			name:           "fresh join",
			roomID:         roomID,
			requestBody:    models.JoinRoomRequest{Name: "Bob"},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.JoinRoomResponse) {
				if resp.ParticipantID == "" {
					t.Error("expected a participant_id")
				}
				if len(resp.Room.Participants) != 2 {
					t.Errorf("room has %d participants, want 2", len(resp.Room.Participants))
				}
			},
		},
		{
			name:           "rejoin with issued id",
			roomID:         roomID,
			requestBody:    models.JoinRoomRequest{Name: "Alice Cooper", ParticipantID: existing},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.JoinRoomResponse) {
				if resp.ParticipantID != existing {
					t.Errorf("rejoin returned %q, want %q", resp.ParticipantID, existing)
				}
				if resp.Room.Participants[0].Name != "Alice Cooper" {
					t.Error("rejoin did not rename")
				}
			},
		},
		{
			name:           "missing name",
			roomID:         roomID,
			requestBody:    models.JoinRoomRequest{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "blank name",
			roomID:         roomID,
			requestBody:    models.JoinRoomRequest{Name: "   "},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "room not found",
			roomID:         "QQQQ",
			requestBody:    models.JoinRoomRequest{Name: "Bob"},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/rooms/"+tt.roomID+"/participants", tt.requestBody, nil)
			req.SetPathValue("id", tt.roomID)
			w := httptest.NewRecorder()

			handler.Join(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.checkResponse != nil {
				var resp models.JoinRoomResponse
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestVoteEndpoint(t *testing.T) {
	s := testutil.NewTestStore(t)
	cfg := testutil.GetTestConfig()
	handler := NewVotingHandler(s, cfg)

	roomID := testutil.CreateTestRoom(t, s, scale.Fibonacci)
	alice := testutil.JoinTestParticipant(t, s, roomID, "Alice")
	testutil.JoinTestParticipant(t, s, roomID, "Bob")

	tests := []struct {
		name           string
		body           models.VoteRequest
		expectedStatus int
	}{
		{"valid vote", models.VoteRequest{ParticipantID: alice, Vote: strptr("5")}, http.StatusOK},
		{"clear vote", models.VoteRequest{ParticipantID: alice}, http.StatusOK},
		{"token outside scale", models.VoteRequest{ParticipantID: alice, Vote: strptr("4")}, http.StatusBadRequest},
		{"unknown participant", models.VoteRequest{ParticipantID: "ghost", Vote: strptr("5")}, http.StatusBadRequest},
		{"missing participant id", models.VoteRequest{Vote: strptr("5")}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/rooms/"+roomID+"/votes", tt.body, nil)
			req.SetPathValue("id", roomID)
			w := httptest.NewRecorder()

			handler.Vote(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	t.Run("room not found", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/rooms/QQQQ/votes",
			models.VoteRequest{ParticipantID: alice, Vote: strptr("5")}, nil)
		req.SetPathValue("id", "QQQQ")
		w := httptest.NewRecorder()
		handler.Vote(w, req)
		testutil.AssertStatus(t, w, http.StatusNotFound)
	})

	t.Run("vote locked after reveal", func(t *testing.T) {
		if _, err := s.Reveal(roomID, ""); err != nil {
			t.Fatal(err)
		}
		req := testutil.MakeRequest("POST", "/rooms/"+roomID+"/votes",
			models.VoteRequest{ParticipantID: alice, Vote: strptr("5")}, nil)
		req.SetPathValue("id", roomID)
		w := httptest.NewRecorder()
		handler.Vote(w, req)
		testutil.AssertStatus(t, w, http.StatusConflict)
	})
}

func TestReadyEndpoint(t *testing.T) {
	s := testutil.NewTestStore(t)
	cfg := testutil.GetTestConfig()
	handler := NewVotingHandler(s, cfg)

	roomID := testutil.CreateTestRoom(t, s, scale.Fibonacci)
	alice := testutil.JoinTestParticipant(t, s, roomID, "Alice")
	testutil.JoinTestParticipant(t, s, roomID, "Bob")

	t.Run("ready without a vote", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/rooms/"+roomID+"/ready",
			models.ReadyRequest{ParticipantID: alice, Ready: true}, nil)
		req.SetPathValue("id", roomID)
		w := httptest.NewRecorder()
		handler.SetReady(w, req)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("ready after voting", func(t *testing.T) {
		token := "8"
		if _, _, err := s.Vote(roomID, alice, &token); err != nil {
			t.Fatal(err)
		}

		req := testutil.MakeRequest("POST", "/rooms/"+roomID+"/ready",
			models.ReadyRequest{ParticipantID: alice, Ready: true}, nil)
		req.SetPathValue("id", roomID)
		w := httptest.NewRecorder()
		handler.SetReady(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.RoomUpdateResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.AutoRevealed {
			t.Error("auto_revealed with a second participant still voting")
		}
		if !resp.Participants[0].Ready {
			t.Error("ready flag not set in response")
		}
	})
}

// TestAutoRevealFlow walks the happy path: two participants vote "5"
// and mark ready; the second ready flips the room with
// auto_revealed=true, and a reset starts a clean round.
func TestAutoRevealFlow(t *testing.T) {
	s := testutil.NewTestStore(t)
	cfg := testutil.GetTestConfig()
	votingHandler := NewVotingHandler(s, cfg)
	roomHandler := NewRoomHandler(s, scale.BuiltIn(), cfg)

	roomID := testutil.CreateTestRoom(t, s, scale.Fibonacci)
	a := testutil.JoinTestParticipant(t, s, roomID, "A")
	b := testutil.JoinTestParticipant(t, s, roomID, "B")

	vote := func(pid string) {
		t.Helper()
		req := testutil.MakeRequest("POST", "/rooms/"+roomID+"/votes",
			models.VoteRequest{ParticipantID: pid, Vote: strptr("5")}, nil)
		req.SetPathValue("id", roomID)
		w := httptest.NewRecorder()
		votingHandler.Vote(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)
	}
	ready := func(pid string) *models.RoomUpdateResponse {
		t.Helper()
		req := testutil.MakeRequest("POST", "/rooms/"+roomID+"/ready",
			models.ReadyRequest{ParticipantID: pid, Ready: true}, nil)
		req.SetPathValue("id", roomID)
		w := httptest.NewRecorder()
		votingHandler.SetReady(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.RoomUpdateResponse
		testutil.AssertJSON(t, w, &resp)
		return &resp
	}

	vote(a)
	first := ready(a)
	if first.AutoRevealed || first.Revealed {
		t.Fatal("revealed before everyone was ready")
	}

	vote(b)
	second := ready(b)
	if !second.AutoRevealed {
		t.Error("second ready must report auto_revealed=true")
	}
	if !second.Revealed {
		t.Error("room must be revealed")
	}
	for _, p := range second.Participants {
		if p.Vote == nil || *p.Vote != "5" {
			t.Errorf("participant %s vote hidden after auto-reveal", p.Name)
		}
	}

	// Reset brings the next round
	req := testutil.MakeRequest("POST", "/rooms/"+roomID+"/reset", models.ResetRequest{}, nil)
	req.SetPathValue("id", roomID)
	w := httptest.NewRecorder()
	roomHandler.Reset(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var view models.RoomView
	testutil.AssertJSON(t, w, &view)
	if view.Revealed {
		t.Error("reset left the room revealed")
	}
	for _, p := range view.Participants {
		if p.HasVoted || p.Ready {
			t.Errorf("participant %s not cleared by reset", p.Name)
		}
	}
}

// TestChangedMindNeedsReaffirmation covers the vote-change rule: ready
// drops when the participant picks a different card.
func TestChangedMindNeedsReaffirmation(t *testing.T) {
	s := testutil.NewTestStore(t)
	cfg := testutil.GetTestConfig()
	handler := NewVotingHandler(s, cfg)

	roomID := testutil.CreateTestRoom(t, s, scale.Fibonacci)
	a := testutil.JoinTestParticipant(t, s, roomID, "A")
	testutil.JoinTestParticipant(t, s, roomID, "B")

	token3, token5 := "3", "5"
	if _, _, err := s.Vote(roomID, a, &token3); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.SetReady(roomID, a, true); err != nil {
		t.Fatal(err)
	}

	req := testutil.MakeRequest("POST", "/rooms/"+roomID+"/votes",
		models.VoteRequest{ParticipantID: a, Vote: &token5}, nil)
	req.SetPathValue("id", roomID)
	w := httptest.NewRecorder()
	handler.Vote(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.RoomUpdateResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Participants[0].Ready {
		t.Error("changing the vote must clear ready")
	}
}

func TestLeave(t *testing.T) {
	s := testutil.NewTestStore(t)
	cfg := testutil.GetTestConfig()
	handler := NewVotingHandler(s, cfg)

	roomID := testutil.CreateTestRoom(t, s, scale.Fibonacci)
	a := testutil.JoinTestParticipant(t, s, roomID, "A")
	b := testutil.JoinTestParticipant(t, s, roomID, "B")
	testutil.CastTestVote(t, s, roomID, a, "5")

	leave := func(roomID, pid string) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("DELETE", "/rooms/"+roomID+"/participants/"+pid, nil, nil)
		req.SetPathValue("id", roomID)
		req.SetPathValue("participantId", pid)
		w := httptest.NewRecorder()
		handler.Leave(w, req)
		return w
	}

	// B leaving makes A's ready vote unanimous
	w := leave(roomID, b)
	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.RoomUpdateResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.AutoRevealed || !resp.Revealed {
		t.Errorf("straggler leave: auto_revealed=%v revealed=%v, want true/true", resp.AutoRevealed, resp.Revealed)
	}

	// Leaving twice is a 400, unknown room a 404
	testutil.AssertStatus(t, leave(roomID, b), http.StatusBadRequest)
	testutil.AssertStatus(t, leave("QQQQ", a), http.StatusNotFound)
}
