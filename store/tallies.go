// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/danielhkuo/league-vote/models"
)

// Read-side queries behind the stats engine. Each one is independent and
// safe to run concurrently with the others.

func (s *Store) CountVotes(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM votes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count votes: %w", err)
	}
	return count, nil
}

// VotesByModel groups every vote by model name, most voted first. Equal
// counts are ordered by name.
func (s *Store) VotesByModel(ctx context.Context) ([]models.ModelVotes, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT selected_model, COUNT(*) AS votes
		FROM votes
		GROUP BY selected_model
		ORDER BY votes DESC, selected_model ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query votes by model: %w", err)
	}
	defer rows.Close()

	out := []models.ModelVotes{}
	for rows.Next() {
		var mv models.ModelVotes
		if err := rows.Scan(&mv.SelectedModel, &mv.Votes); err != nil {
			return nil, fmt.Errorf("scan votes by model: %w", err)
		}
		out = append(out, mv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate votes by model: %w", err)
	}
	return out, nil
}

// VotesByEvent lists every event with its vote count, including events
// without votes.
func (s *Store) VotesByEvent(ctx context.Context) ([]models.EventVotes, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT e.id, e.name, e.date, COUNT(v.id) AS votes
		FROM events e
		LEFT JOIN votes v ON e.id = v.event_id
		GROUP BY e.id, e.name, e.date, e.created_at
		ORDER BY e.created_at DESC, e.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query votes by event: %w", err)
	}
	defer rows.Close()

	out := []models.EventVotes{}
	for rows.Next() {
		var ev models.EventVotes
		if err := rows.Scan(&ev.ID, &ev.Name, &ev.Date, &ev.Votes); err != nil {
			return nil, fmt.Errorf("scan votes by event: %w", err)
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate votes by event: %w", err)
	}
	return out, nil
}

// VotesByQuestion returns the raw per-question counts. Questions without
// votes are absent; the stats engine fills them in.
func (s *Store) VotesByQuestion(ctx context.Context) ([]models.QuestionVotes, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT question_number, COUNT(*) AS votes
		FROM votes
		GROUP BY question_number
		ORDER BY question_number
	`)
	if err != nil {
		return nil, fmt.Errorf("query votes by question: %w", err)
	}
	defer rows.Close()

	out := []models.QuestionVotes{}
	for rows.Next() {
		var qv models.QuestionVotes
		if err := rows.Scan(&qv.QuestionNumber, &qv.Votes); err != nil {
			return nil, fmt.Errorf("scan votes by question: %w", err)
		}
		out = append(out, qv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate votes by question: %w", err)
	}
	return out, nil
}

// QuestionTallies counts votes per (model, question) pair, unordered.
func (s *Store) QuestionTallies(ctx context.Context) ([]models.QuestionTally, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT selected_model, question_number, COUNT(*) AS votes
		FROM votes
		GROUP BY selected_model, question_number
	`)
	if err != nil {
		return nil, fmt.Errorf("query question tallies: %w", err)
	}
	defer rows.Close()

	out := []models.QuestionTally{}
	for rows.Next() {
		var qt models.QuestionTally
		if err := rows.Scan(&qt.SelectedModel, &qt.QuestionNumber, &qt.Votes); err != nil {
			return nil, fmt.Errorf("scan question tally: %w", err)
		}
		out = append(out, qt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate question tallies: %w", err)
	}
	return out, nil
}
