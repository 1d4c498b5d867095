// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	ErrMissingFields  = errors.New("missing required fields")
	ErrDuplicateVote  = errors.New("you have already voted for this question")
	ErrDuplicateModel = errors.New("model name already exists for this event")
	ErrUnknownEvent   = errors.New("unknown event")
	ErrEventNotFound  = errors.New("event not found")
	ErrInvalidStatus  = errors.New("invalid event status")
)

// Store owns the events, event_models and votes tables. SQL is written
// once for both dialects: $N placeholders and INSERT ... RETURNING are
// understood by lib/pq and modernc sqlite alike.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func New(db *sql.DB) *Store {
	return &Store{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// WithClock replaces the timestamp source; used by tests that need a
// stable vote order.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
			(liteErr.Code() == sqlite3.SQLITE_CONSTRAINT && strings.Contains(liteErr.Error(), "UNIQUE"))
	}
	return false
}

// Only postgres enforces foreign keys; sqlite leaves dangling event ids.
func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY ||
			(liteErr.Code() == sqlite3.SQLITE_CONSTRAINT && strings.Contains(liteErr.Error(), "FOREIGN KEY"))
	}
	return false
}
