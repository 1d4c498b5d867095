// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/league-vote/models"
)

type VoteInput struct {
	EventID         int64
	ParticipantName string
	QuestionNumber  int
	SelectedModel   string
}

// SubmitVote records one answer. The question number is not range checked
// here.
//
// The existence check and the insert are separate statements, so two
// concurrent submissions of the same answer can both pass the check. The
// unique index on (event_id, participant_name, question_number) rejects
// the loser, which is reported as ErrDuplicateVote like the checked case.
func (s *Store) SubmitVote(ctx context.Context, in VoteInput) (int64, error) {
	if in.EventID == 0 || in.ParticipantName == "" || in.QuestionNumber == 0 || in.SelectedModel == "" {
		return 0, ErrMissingFields
	}

	var existingID int64
	err := s.db.QueryRowContext(ctx, `
		SELECT id FROM votes
		WHERE event_id = $1 AND participant_name = $2 AND question_number = $3
	`, in.EventID, in.ParticipantName, in.QuestionNumber).Scan(&existingID)
	if err == nil {
		return 0, ErrDuplicateVote
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("check existing vote: %w", err)
	}

	var voteID int64
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO votes (event_id, participant_name, question_number, selected_model, voted_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, in.EventID, in.ParticipantName, in.QuestionNumber, in.SelectedModel, s.now()).Scan(&voteID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateVote
		}
		if isForeignKeyViolation(err) {
			return 0, ErrUnknownEvent
		}
		return 0, fmt.Errorf("insert vote: %w", err)
	}

	return voteID, nil
}

// ListRecentVotes returns the newest votes first, joined with their event
// name. Votes whose event no longer exists are skipped by the join.
func (s *Store) ListRecentVotes(ctx context.Context, limit int) ([]models.RecentVote, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT v.id, v.event_id, v.participant_name, v.question_number,
		       v.selected_model, v.voted_at, e.name
		FROM votes v
		JOIN events e ON v.event_id = e.id
		ORDER BY v.voted_at DESC, v.id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent votes: %w", err)
	}
	defer rows.Close()

	votes := []models.RecentVote{}
	for rows.Next() {
		var v models.RecentVote
		if err := rows.Scan(
			&v.ID, &v.EventID, &v.ParticipantName, &v.QuestionNumber,
			&v.SelectedModel, &v.Timestamp, &v.EventName,
		); err != nil {
			return nil, fmt.Errorf("scan recent vote: %w", err)
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent votes: %w", err)
	}

	return votes, nil
}
