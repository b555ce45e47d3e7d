// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/pointsup/cliparse"
	"github.com/danielhkuo/pointsup/scale"
	"github.com/danielhkuo/pointsup/store"
)

// NewTestStore creates a fresh in-memory store with the built-in scales
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(scale.BuiltIn())
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3324,
		DefaultScale: scale.Fibonacci,
		RoomTTL:      0, // no sweeping during tests
	}
}

// CreateTestRoom creates a room on the given scale and returns its id
func CreateTestRoom(t *testing.T, s *store.Store, scaleID string) string {
	t.Helper()

	roomID, _, err := s.CreateRoom(scaleID, "")
	if err != nil {
		t.Fatalf("Failed to create test room: %v", err)
	}
	return roomID
}

// JoinTestParticipant adds a participant to a room and returns their id
func JoinTestParticipant(t *testing.T, s *store.Store, roomID, name string) string {
	t.Helper()

	participantID, _, err := s.Join(roomID, name, "")
	if err != nil {
		t.Fatalf("Failed to join test participant %q: %v", name, err)
	}
	return participantID
}

// CastTestVote votes and marks the participant ready in one step
func CastTestVote(t *testing.T, s *store.Store, roomID, participantID, token string) {
	t.Helper()

	if _, _, err := s.Vote(roomID, participantID, &token); err != nil {
		t.Fatalf("Failed to cast test vote %q: %v", token, err)
	}
	if _, _, err := s.SetReady(roomID, participantID, true); err != nil {
		t.Fatalf("Failed to mark test participant ready: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
