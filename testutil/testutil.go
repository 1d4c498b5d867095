// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/danielhkuo/league-vote/auth"
	"github.com/danielhkuo/league-vote/cliparse"
	"github.com/danielhkuo/league-vote/db"
	"github.com/danielhkuo/league-vote/store"
)

// Admin credentials accepted by the gate from GetTestConfig
const (
	TestAdminUsername = "admin"
	TestAdminPassword = "admin123"
)

// SetupTestDB creates a fresh sqlite database with the full schema.
// Each test gets its own file, removed with the test's temp dir.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "league_test.db")
	conn, err := sql.Open("sqlite", db.SQLiteDSN("file:"+path))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, cliparse.DatabaseSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration. The password hash
// uses the minimum bcrypt cost to keep logins fast.
func GetTestConfig() cliparse.Config {
	hash, err := bcrypt.GenerateFromPassword([]byte(TestAdminPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return cliparse.Config{
		Port:              3000,
		DatabaseType:      cliparse.DatabaseSQLite,
		DatabaseURL:       "file::memory:",
		AdminUsername:     TestAdminUsername,
		AdminPasswordHash: string(hash),
		JWTSecret:         "test-jwt-secret",
		TokenTTL:          time.Hour,
		RateWindow:        15 * time.Minute,
		DefaultEvent:      "Test Event",
	}
}

// NewTestGate builds an auth gate from the test configuration
func NewTestGate(t *testing.T, cfg cliparse.Config) *auth.Gate {
	t.Helper()

	gate, err := auth.NewGate(cfg)
	if err != nil {
		t.Fatalf("Failed to create auth gate: %v", err)
	}
	return gate
}

// AdminToken logs in with the test credentials and returns the token
func AdminToken(t *testing.T, gate *auth.Gate) string {
	t.Helper()

	token, err := gate.Authenticate(TestAdminUsername, TestAdminPassword)
	if err != nil {
		t.Fatalf("Failed to authenticate test admin: %v", err)
	}
	return token
}

// BearerHeader returns request headers carrying the admin token
func BearerHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// CreateTestEvent creates an active event and returns its ID
func CreateTestEvent(t *testing.T, st *store.Store, name string) int64 {
	t.Helper()

	eventID, err := st.CreateEvent(context.Background(), name, "2025-06-01")
	if err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}
	return eventID
}

// AddTestModel adds a model to an event and returns the model ID
func AddTestModel(t *testing.T, st *store.Store, eventID int64, name string) int64 {
	t.Helper()

	modelID, err := st.AddModel(context.Background(), eventID, store.ModelInput{Name: name})
	if err != nil {
		t.Fatalf("Failed to create test model: %v", err)
	}
	return modelID
}

// SubmitTestVote records one answer directly through the store
func SubmitTestVote(t *testing.T, st *store.Store, eventID int64, participant string, question int, model string) int64 {
	t.Helper()

	voteID, err := st.SubmitVote(context.Background(), store.VoteInput{
		EventID:         eventID,
		ParticipantName: participant,
		QuestionNumber:  question,
		SelectedModel:   model,
	})
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
	return voteID
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
