// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stats

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/league-vote/models"
)

// Source is the read side of the vote store.
type Source interface {
	CountVotes(ctx context.Context) (int, error)
	VotesByModel(ctx context.Context) ([]models.ModelVotes, error)
	VotesByEvent(ctx context.Context) ([]models.EventVotes, error)
	VotesByQuestion(ctx context.Context) ([]models.QuestionVotes, error)
	ListRecentVotes(ctx context.Context, limit int) ([]models.RecentVote, error)
	QuestionTallies(ctx context.Context) ([]models.QuestionTally, error)
}

// Compute runs every stats query concurrently and combines the results.
// A failed query leaves its slice empty; the rest are still returned.
// The queries are not wrapped in one transaction, so slices may disagree
// slightly while votes are arriving.
func Compute(ctx context.Context, src Source) models.Stats {
	st := models.Stats{
		TotalVotes:      []models.TotalCount{},
		VotesByModel:    []models.ModelVotes{},
		VotesByEvent:    []models.EventVotes{},
		VotesByQuestion: []models.QuestionVotes{},
		RecentVotes:     []models.RecentVote{},
		QuestionWinners: []models.QuestionWinner{},
		ModelWinCounts:  []models.ModelWins{},
	}

	// Branches never return an error, so one failure cannot cancel the others.
	var g errgroup.Group

	g.Go(func() error {
		n, err := src.CountVotes(ctx)
		if err != nil {
			logFailure("totalVotes", err)
			return nil
		}
		st.TotalVotes = []models.TotalCount{{Count: n}}
		return nil
	})

	g.Go(func() error {
		rows, err := src.VotesByModel(ctx)
		if err != nil {
			logFailure("votesByModel", err)
			return nil
		}
		st.VotesByModel = rows
		return nil
	})

	g.Go(func() error {
		rows, err := src.VotesByEvent(ctx)
		if err != nil {
			logFailure("votesByEvent", err)
			return nil
		}
		st.VotesByEvent = rows
		return nil
	})

	g.Go(func() error {
		rows, err := src.VotesByQuestion(ctx)
		if err != nil {
			logFailure("votesByQuestion", err)
			return nil
		}
		st.VotesByQuestion = FillQuestions(rows)
		return nil
	})

	g.Go(func() error {
		rows, err := src.ListRecentVotes(ctx, models.RecentVotesLimit)
		if err != nil {
			logFailure("recentVotes", err)
			return nil
		}
		st.RecentVotes = rows
		return nil
	})

	// Winners and win counts come from the same tallies.
	g.Go(func() error {
		tallies, err := src.QuestionTallies(ctx)
		if err != nil {
			logFailure("questionWinners", err)
			return nil
		}
		st.QuestionWinners = RankQuestionWinners(tallies)
		st.ModelWinCounts = CountWins(st.QuestionWinners)
		return nil
	})

	_ = g.Wait()
	return st
}

func logFailure(slice string, err error) {
	slog.Error("stats query failed", "slice", slice, "error", err)
}
