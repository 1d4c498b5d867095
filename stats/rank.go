// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stats

import (
	"sort"

	"github.com/danielhkuo/league-vote/models"
)

// FillQuestions returns exactly one row per question 1..QuestionCount.
// Missing questions get 0 votes; rows outside the range are dropped.
func FillQuestions(raw []models.QuestionVotes) []models.QuestionVotes {
	counts := make(map[int]int, len(raw))
	for _, qv := range raw {
		counts[qv.QuestionNumber] += qv.Votes
	}

	out := make([]models.QuestionVotes, 0, models.QuestionCount)
	for q := models.FirstQuestion; q < models.FirstQuestion+models.QuestionCount; q++ {
		out = append(out, models.QuestionVotes{QuestionNumber: q, Votes: counts[q]})
	}
	return out
}

// RankQuestionWinners ranks models within each question by vote count.
// Ranks are row numbers within each question starting at 1. Equal counts
// are ordered by model name, so the alphabetically first model wins a tie.
// The result is ordered by question, then rank.
func RankQuestionWinners(tallies []models.QuestionTally) []models.QuestionWinner {
	sorted := make([]models.QuestionTally, len(tallies))
	copy(sorted, tallies)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.QuestionNumber != b.QuestionNumber {
			return a.QuestionNumber < b.QuestionNumber
		}
		if a.Votes != b.Votes {
			return a.Votes > b.Votes
		}
		return a.SelectedModel < b.SelectedModel
	})

	out := make([]models.QuestionWinner, 0, len(sorted))
	rank := 0
	for i, qt := range sorted {
		if i == 0 || qt.QuestionNumber != sorted[i-1].QuestionNumber {
			rank = 0
		}
		rank++
		out = append(out, models.QuestionWinner{QuestionTally: qt, Rank: rank})
	}
	return out
}

// CountWins counts, for every ranked model, the questions where it holds
// rank 1. Models that never won are listed with 0. Most wins first, ties by
// name.
func CountWins(winners []models.QuestionWinner) []models.ModelWins {
	wins := make(map[string]int)
	for _, w := range winners {
		if _, ok := wins[w.SelectedModel]; !ok {
			wins[w.SelectedModel] = 0
		}
		if w.Rank == 1 {
			wins[w.SelectedModel]++
		}
	}

	out := make([]models.ModelWins, 0, len(wins))
	for name, n := range wins {
		out = append(out, models.ModelWins{SelectedModel: name, QuestionsWon: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].QuestionsWon != out[j].QuestionsWon {
			return out[i].QuestionsWon > out[j].QuestionsWon
		}
		return out[i].SelectedModel < out[j].SelectedModel
	})
	return out
}
