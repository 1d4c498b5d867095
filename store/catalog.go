// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/danielhkuo/league-vote/models"
)

type EventFilter int

const (
	AllEvents EventFilter = iota
	ActiveEvents
)

type ModelInput struct {
	Name        string
	Description string
	Color       string // models.DefaultColor when empty
}

// CreateEvent inserts a new active event. The date is stored as given.
func (s *Store) CreateEvent(ctx context.Context, name, date string) (int64, error) {
	if name == "" || date == "" {
		return 0, ErrMissingFields
	}

	var eventID int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO events (name, date, status, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, name, date, models.StatusActive, s.now()).Scan(&eventID)
	if err != nil {
		return 0, fmt.Errorf("insert event: %w", err)
	}

	return eventID, nil
}

// ListEvents returns events newest first.
func (s *Store) ListEvents(ctx context.Context, filter EventFilter) ([]models.Event, error) {
	query := `SELECT id, name, date, status, created_at FROM events`
	var args []any
	if filter == ActiveEvents {
		query += ` WHERE status = $1`
		args = append(args, models.StatusActive)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Date, &e.Status, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	return events, nil
}

// SetEventStatus activates or deactivates an event. Inactive events are
// hidden from participants but keep their models and votes.
func (s *Store) SetEventStatus(ctx context.Context, eventID int64, status string) error {
	if status != models.StatusActive && status != models.StatusInactive {
		return ErrInvalidStatus
	}

	res, err := s.db.ExecContext(ctx, `UPDATE events SET status = $1 WHERE id = $2`, status, eventID)
	if err != nil {
		return fmt.Errorf("update event status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update event status: %w", err)
	}
	if n == 0 {
		return ErrEventNotFound
	}
	return nil
}

// EnsureDefaultEvent seeds one active event into an empty catalog so a
// fresh install can take votes immediately.
func (s *Store) EnsureDefaultEvent(ctx context.Context, name, date string) (bool, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&count); err != nil {
		return false, fmt.Errorf("count events: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	if _, err := s.CreateEvent(ctx, name, date); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) AddModel(ctx context.Context, eventID int64, in ModelInput) (int64, error) {
	if eventID == 0 || in.Name == "" {
		return 0, ErrMissingFields
	}
	color := in.Color
	if color == "" {
		color = models.DefaultColor
	}

	var modelID int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO event_models (event_id, name, description, color, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, eventID, in.Name, in.Description, color, s.now()).Scan(&modelID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateModel
		}
		if isForeignKeyViolation(err) {
			return 0, ErrUnknownEvent
		}
		return 0, fmt.Errorf("insert model: %w", err)
	}

	return modelID, nil
}

// DeleteModel removes a model from an event. Deleting a missing model is
// not an error. Votes keep the model name and are untouched.
func (s *Store) DeleteModel(ctx context.Context, eventID, modelID int64) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM event_models WHERE id = $1 AND event_id = $2
	`, modelID, eventID)
	if err != nil {
		return fmt.Errorf("delete model: %w", err)
	}
	return nil
}

// ListModels returns the models of an event ordered by name.
func (s *Store) ListModels(ctx context.Context, eventID int64) ([]models.Model, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, event_id, name, description, color, created_at
		FROM event_models
		WHERE event_id = $1
		ORDER BY name
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("query models: %w", err)
	}
	defer rows.Close()

	list := []models.Model{}
	for rows.Next() {
		var m models.Model
		if err := rows.Scan(&m.ID, &m.EventID, &m.Name, &m.Description, &m.Color, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan model: %w", err)
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate models: %w", err)
	}

	return list, nil
}
