// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/league-vote/models"
	"github.com/danielhkuo/league-vote/store"
	"github.com/danielhkuo/league-vote/testutil"
)

func newTestAdminHandler(t *testing.T) (*AdminHandler, *store.Store) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	st := store.New(db)
	gate := testutil.NewTestGate(t, testutil.GetTestConfig())
	return NewAdminHandler(st, gate), st
}

func TestLogin(t *testing.T) {
	handler, _ := newTestAdminHandler(t)

	tests := []struct {
		name           string
		body           models.LoginRequest
		expectedStatus int
	}{
		{"valid credentials", models.LoginRequest{Username: "admin", Password: "admin123"}, http.StatusOK},
		{"wrong password", models.LoginRequest{Username: "admin", Password: "nope"}, http.StatusUnauthorized},
		{"wrong username", models.LoginRequest{Username: "root", Password: "admin123"}, http.StatusUnauthorized},
		{"empty credentials", models.LoginRequest{}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.Login(w, testutil.MakeRequest("POST", "/api/admin/login", tt.body, nil))

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var resp models.LoginResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Token == "" {
					t.Fatal("Expected non-empty token")
				}
				if _, err := handler.gate.Authorize(resp.Token); err != nil {
					t.Errorf("Issued token does not authorize: %v", err)
				}
				return
			}

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Error != "Invalid credentials" {
				t.Errorf("Expected 'Invalid credentials', got '%s'", resp.Error)
			}
		})
	}
}

func TestCreateEvent(t *testing.T) {
	handler, st := newTestAdminHandler(t)

	tests := []struct {
		name           string
		body           models.CreateEventRequest
		expectedStatus int
	}{
		{"valid event", models.CreateEventRequest{Name: "Finals", Date: "2025-07-04"}, http.StatusOK},
		{"missing date", models.CreateEventRequest{Name: "Finals"}, http.StatusBadRequest},
		{"missing name", models.CreateEventRequest{Date: "2025-07-04"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.CreateEvent(w, testutil.MakeRequest("POST", "/api/admin/events", tt.body, nil))

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp models.CreateEventResponse
			testutil.AssertJSON(t, w, &resp)
			if !resp.Success || resp.EventID == 0 {
				t.Fatalf("Expected success with event id, got %+v", resp)
			}

			events, err := st.ListEvents(context.Background(), store.ActiveEvents)
			if err != nil {
				t.Fatalf("Failed to list events: %v", err)
			}
			if len(events) != 1 || events[0].Name != "Finals" || events[0].Date != "2025-07-04" {
				t.Errorf("Unexpected events: %+v", events)
			}
		})
	}
}

func TestListAllEvents(t *testing.T) {
	handler, st := newTestAdminHandler(t)

	testutil.CreateTestEvent(t, st, "Active")
	inactive := testutil.CreateTestEvent(t, st, "Inactive")
	deactivate(t, st, inactive)

	w := httptest.NewRecorder()
	handler.ListEvents(w, testutil.MakeRequest("GET", "/api/admin/events", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var events []models.Event
	testutil.AssertJSON(t, w, &events)
	if len(events) != 2 {
		t.Errorf("Expected both events, got %d", len(events))
	}
}

func TestSetEventStatus(t *testing.T) {
	handler, st := newTestAdminHandler(t)

	eventID := testutil.CreateTestEvent(t, st, "Event")

	tests := []struct {
		name           string
		eventID        string
		body           interface{}
		expectedStatus int
		expectedActive int
	}{
		{"deactivate", itoa(eventID), models.UpdateEventStatusRequest{Status: models.StatusInactive}, http.StatusOK, 0},
		{"reactivate", itoa(eventID), models.UpdateEventStatusRequest{Status: models.StatusActive}, http.StatusOK, 1},
		{"unknown status", itoa(eventID), models.UpdateEventStatusRequest{Status: "archived"}, http.StatusBadRequest, 1},
		{"missing status", itoa(eventID), map[string]string{}, http.StatusBadRequest, 1},
		{"unknown event", "999", models.UpdateEventStatusRequest{Status: models.StatusInactive}, http.StatusNotFound, 1},
		{"invalid id", "abc", models.UpdateEventStatusRequest{Status: models.StatusInactive}, http.StatusBadRequest, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("PATCH", "/api/admin/events/"+tt.eventID, tt.body, nil)
			req.SetPathValue("eventId", tt.eventID)
			w := httptest.NewRecorder()

			handler.SetEventStatus(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			active, err := st.ListEvents(context.Background(), store.ActiveEvents)
			if err != nil {
				t.Fatalf("Failed to list events: %v", err)
			}
			if len(active) != tt.expectedActive {
				t.Errorf("Expected %d active events, got %d", tt.expectedActive, len(active))
			}
		})
	}
}

func TestAddModel(t *testing.T) {
	handler, st := newTestAdminHandler(t)

	eventID := testutil.CreateTestEvent(t, st, "Event")
	otherID := testutil.CreateTestEvent(t, st, "Other")

	tests := []struct {
		name           string
		eventID        string
		body           models.AddModelRequest
		expectedStatus int
		expectedError  string
	}{
		{"valid model", itoa(eventID), models.AddModelRequest{Name: "Alpha", Description: "first", Color: "#FF0000"}, http.StatusOK, ""},
		{"default color", itoa(eventID), models.AddModelRequest{Name: "Beta"}, http.StatusOK, ""},
		{"duplicate in same event", itoa(eventID), models.AddModelRequest{Name: "Alpha"}, http.StatusBadRequest, "Model name already exists for this event"},
		{"same name other event", itoa(otherID), models.AddModelRequest{Name: "Alpha"}, http.StatusOK, ""},
		{"missing name", itoa(eventID), models.AddModelRequest{Description: "no name"}, http.StatusBadRequest, "Model name is required"},
		{"invalid event id", "abc", models.AddModelRequest{Name: "Gamma"}, http.StatusBadRequest, "Invalid event id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/admin/events/"+tt.eventID+"/models", tt.body, nil)
			req.SetPathValue("eventId", tt.eventID)
			w := httptest.NewRecorder()

			handler.AddModel(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedError != "" {
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Error != tt.expectedError {
					t.Errorf("Expected error '%s', got '%s'", tt.expectedError, resp.Error)
				}
				return
			}

			var resp models.AddModelResponse
			testutil.AssertJSON(t, w, &resp)
			if !resp.Success || resp.ModelID == 0 {
				t.Errorf("Expected success with model id, got %+v", resp)
			}
		})
	}

	list, err := st.ListModels(context.Background(), eventID)
	if err != nil {
		t.Fatalf("Failed to list models: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("Expected 2 models, got %d", len(list))
	}
	if list[0].Color != "#FF0000" || list[0].Description != "first" {
		t.Errorf("Unexpected Alpha: %+v", list[0])
	}
	if list[1].Color != models.DefaultColor {
		t.Errorf("Expected default color for Beta, got '%s'", list[1].Color)
	}
}

func TestDeleteModel(t *testing.T) {
	handler, st := newTestAdminHandler(t)

	eventID := testutil.CreateTestEvent(t, st, "Event")
	alpha := testutil.AddTestModel(t, st, eventID, "Alpha")
	testutil.AddTestModel(t, st, eventID, "Beta")
	testutil.SubmitTestVote(t, st, eventID, "Ana", 1, "Alpha")

	tests := []struct {
		name           string
		eventID        string
		modelID        string
		expectedStatus int
	}{
		{"delete existing", itoa(eventID), itoa(alpha), http.StatusOK},
		{"delete again", itoa(eventID), itoa(alpha), http.StatusOK},
		{"invalid model id", itoa(eventID), "x", http.StatusBadRequest},
		{"invalid event id", "x", itoa(alpha), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("DELETE", "/api/admin/events/"+tt.eventID+"/models/"+tt.modelID, nil, nil)
			req.SetPathValue("eventId", tt.eventID)
			req.SetPathValue("modelId", tt.modelID)
			w := httptest.NewRecorder()

			handler.DeleteModel(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus == http.StatusOK {
				var resp models.SuccessResponse
				testutil.AssertJSON(t, w, &resp)
				if !resp.Success {
					t.Error("Expected success")
				}
			}
		})
	}

	list, err := st.ListModels(context.Background(), eventID)
	if err != nil {
		t.Fatalf("Failed to list models: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Beta" {
		t.Errorf("Expected only Beta to remain, got %+v", list)
	}

	// The vote for the deleted model is kept
	byModel, err := st.VotesByModel(context.Background())
	if err != nil {
		t.Fatalf("Failed to tally votes: %v", err)
	}
	if len(byModel) != 1 || byModel[0].SelectedModel != "Alpha" || byModel[0].Votes != 1 {
		t.Errorf("Expected Alpha vote to survive deletion, got %+v", byModel)
	}
}

func TestStats(t *testing.T) {
	handler, st := newTestAdminHandler(t)

	eventID := testutil.CreateTestEvent(t, st, "Event")
	testutil.SubmitTestVote(t, st, eventID, "Ana", 1, "Alpha")
	testutil.SubmitTestVote(t, st, eventID, "Ben", 1, "Beta")
	testutil.SubmitTestVote(t, st, eventID, "Cy", 1, "Alpha")

	w := httptest.NewRecorder()
	handler.Stats(w, testutil.MakeRequest("GET", "/api/admin/stats", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.Stats
	testutil.AssertJSON(t, w, &resp)

	if len(resp.TotalVotes) != 1 || resp.TotalVotes[0].Count != 3 {
		t.Errorf("Expected totalVotes [{3}], got %+v", resp.TotalVotes)
	}
	if len(resp.VotesByQuestion) != models.QuestionCount {
		t.Errorf("Expected %d question rows, got %d", models.QuestionCount, len(resp.VotesByQuestion))
	}
	if len(resp.RecentVotes) != 3 {
		t.Errorf("Expected 3 recent votes, got %d", len(resp.RecentVotes))
	}
	if len(resp.ModelWinCounts) != 2 || resp.ModelWinCounts[0].SelectedModel != "Alpha" || resp.ModelWinCounts[0].QuestionsWon != 1 {
		t.Errorf("Unexpected modelWinCounts: %+v", resp.ModelWinCounts)
	}
}

func deactivate(t *testing.T, st *store.Store, eventID int64) {
	t.Helper()
	if err := st.SetEventStatus(context.Background(), eventID, models.StatusInactive); err != nil {
		t.Fatalf("Failed to deactivate event: %v", err)
	}
}
