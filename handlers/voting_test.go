// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/league-vote/models"
	"github.com/danielhkuo/league-vote/store"
	"github.com/danielhkuo/league-vote/testutil"
)

func TestGetEvents(t *testing.T) {
	db := testutil.SetupTestDB(t)
	st := store.New(db)
	handler := NewVotingHandler(st)

	first := testutil.CreateTestEvent(t, st, "Event One")
	second := testutil.CreateTestEvent(t, st, "Event Two")
	hidden := testutil.CreateTestEvent(t, st, "Hidden Event")
	if _, err := db.Exec(`UPDATE events SET status = 'inactive' WHERE id = $1`, hidden); err != nil {
		t.Fatalf("Failed to deactivate event: %v", err)
	}

	w := httptest.NewRecorder()
	handler.GetEvents(w, testutil.MakeRequest("GET", "/api/events", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var events []models.Event
	testutil.AssertJSON(t, w, &events)

	// Only active events, newest first
	if len(events) != 2 {
		t.Fatalf("Expected 2 active events, got %d", len(events))
	}
	if events[0].ID != second || events[1].ID != first {
		t.Errorf("Expected order [%d %d], got [%d %d]", second, first, events[0].ID, events[1].ID)
	}
	for _, e := range events {
		if e.Status != models.StatusActive {
			t.Errorf("Expected active status, got '%s'", e.Status)
		}
	}
}

func TestGetEventsEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewVotingHandler(store.New(db))

	w := httptest.NewRecorder()
	handler.GetEvents(w, testutil.MakeRequest("GET", "/api/events", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("Expected empty JSON array, got %s", body)
	}
}

func TestGetModels(t *testing.T) {
	db := testutil.SetupTestDB(t)
	st := store.New(db)
	handler := NewVotingHandler(st)

	eventID := testutil.CreateTestEvent(t, st, "Event")
	testutil.AddTestModel(t, st, eventID, "Gamma")
	testutil.AddTestModel(t, st, eventID, "Alpha")
	testutil.AddTestModel(t, st, eventID, "Beta")

	other := testutil.CreateTestEvent(t, st, "Other")
	testutil.AddTestModel(t, st, other, "Delta")

	tests := []struct {
		name           string
		eventID        string
		expectedStatus int
		expectedNames  []string
	}{
		{"models ordered by name", itoa(eventID), http.StatusOK, []string{"Alpha", "Beta", "Gamma"}},
		{"event without models", "999", http.StatusOK, []string{}},
		{"non-numeric id", "abc", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/api/models/"+tt.eventID, nil, nil)
			req.SetPathValue("eventId", tt.eventID)
			w := httptest.NewRecorder()

			handler.GetModels(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedNames == nil {
				return
			}

			var list []models.Model
			testutil.AssertJSON(t, w, &list)
			if len(list) != len(tt.expectedNames) {
				t.Fatalf("Expected %d models, got %d", len(tt.expectedNames), len(list))
			}
			for i, name := range tt.expectedNames {
				if list[i].Name != name {
					t.Errorf("Model %d: expected '%s', got '%s'", i, name, list[i].Name)
				}
				if list[i].Color != models.DefaultColor {
					t.Errorf("Expected default color, got '%s'", list[i].Color)
				}
			}
		})
	}
}

func TestSubmitVote(t *testing.T) {
	db := testutil.SetupTestDB(t)
	st := store.New(db)
	handler := NewVotingHandler(st)

	eventID := testutil.CreateTestEvent(t, st, "Event")

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		expectedError  string
	}{
		{
			name: "valid vote",
			body: models.SubmitVoteRequest{
				EventID: eventID, ParticipantName: "Ana", QuestionNumber: 1, SelectedModel: "Alpha",
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "same participant next question",
			body: models.SubmitVoteRequest{
				EventID: eventID, ParticipantName: "Ana", QuestionNumber: 2, SelectedModel: "Beta",
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "duplicate answer",
			body: models.SubmitVoteRequest{
				EventID: eventID, ParticipantName: "Ana", QuestionNumber: 1, SelectedModel: "Beta",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "You have already voted for this question",
		},
		{
			name: "missing participant",
			body: models.SubmitVoteRequest{
				EventID: eventID, QuestionNumber: 3, SelectedModel: "Alpha",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing required fields",
		},
		{
			name:           "missing everything",
			body:           map[string]interface{}{},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing required fields",
		},
		{
			name: "question out of range",
			body: models.SubmitVoteRequest{
				EventID: eventID, ParticipantName: "Ben", QuestionNumber: 6, SelectedModel: "Alpha",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Question number must be between 1 and 5",
		},
		{
			name: "negative question",
			body: models.SubmitVoteRequest{
				EventID: eventID, ParticipantName: "Ben", QuestionNumber: -1, SelectedModel: "Alpha",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Question number must be between 1 and 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.SubmitVote(w, testutil.MakeRequest("POST", "/api/vote", tt.body, nil))

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedError != "" {
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Error != tt.expectedError {
					t.Errorf("Expected error '%s', got '%s'", tt.expectedError, resp.Error)
				}
				return
			}

			var resp models.SubmitVoteResponse
			testutil.AssertJSON(t, w, &resp)
			if !resp.Success || resp.VoteID == 0 {
				t.Errorf("Expected success with vote id, got %+v", resp)
			}
		})
	}

	// Only the two accepted votes were stored
	count, err := st.CountVotes(context.Background())
	if err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 stored votes, got %d", count)
	}
}

func TestSubmitVoteInvalidJSON(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewVotingHandler(store.New(db))

	req := httptest.NewRequest("POST", "/api/vote", strings.NewReader(`{"eventId":`))
	w := httptest.NewRecorder()

	handler.SubmitVote(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestSubmitVoteStorageFailure(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewVotingHandler(store.New(db))

	// A closed pool stands in for a lost database
	db.Close()

	w := httptest.NewRecorder()
	handler.SubmitVote(w, testutil.MakeRequest("POST", "/api/vote", models.SubmitVoteRequest{
		EventID: 1, ParticipantName: "Ana", QuestionNumber: 1, SelectedModel: "Alpha",
	}, nil))

	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Error != "Database error" {
		t.Errorf("Expected sanitized error, got '%s'", resp.Error)
	}
}
