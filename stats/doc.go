// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package stats computes the admin dashboard statistics from the vote log.

# Computation

Compute fans out one query per slice and waits for all of them:

	st := stats.Compute(ctx, store)

It holds no state; every call recomputes from scratch. A query that fails
is logged and its slice is left empty.

# Ranking

Per-question ranking and the "questions won" leaderboard are computed in Go
from (model, question, votes) tallies:

	winners := stats.RankQuestionWinners(tallies)
	wins := stats.CountWins(winners)

Within a question models are ordered by votes descending, then by name
ascending; rank 1 is the winner. Every question with at least one vote has
exactly one winner, so the questions_won values sum to the number of
answered questions.

# Questions

FillQuestions always returns rows for questions 1 through 5, with zero
counts for unanswered questions. Votes recorded with a question number
outside that range do not appear in votesByQuestion.
*/
package stats
