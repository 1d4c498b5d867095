// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON. Validation rules are expressed as
validator struct tags and checked by the handlers:

  - SubmitVoteRequest: eventId, participantName, questionNumber, selectedModel
  - CreateEventRequest: name, date
  - UpdateEventStatusRequest: status (active or inactive)
  - AddModelRequest: name, description, color
  - LoginRequest: username, password

# Response Types

  - SubmitVoteResponse: success, voteId
  - CreateEventResponse: success, eventId
  - AddModelResponse: success, modelId
  - SuccessResponse: success
  - LoginResponse: token
  - ErrorResponse: error

# Domain Types

  - Event: a voting occasion with its own models and votes
  - Model: a candidate within one event, unique by name per event
  - Vote: one participant's choice for one question
  - RecentVote: a vote joined with its event name

# Stats Types

Stats is the dashboard payload returned by GET /api/admin/stats. Row
types use snake_case JSON keys, the top-level keys are camelCase:

	totalVotes       [{count}]
	votesByModel     [{selected_model, votes}]
	votesByEvent     [{id, name, date, votes}]
	votesByQuestion  [{question_number, votes}]   always 5 rows
	recentVotes      [{id, event_id, participant_name, ..., event_name}]
	questionWinners  [{selected_model, question_number, votes, rank}]
	modelWinCounts   [{selected_model, questions_won}]

# Constants

	StatusActive   = "active"
	StatusInactive = "inactive"

	QuestionCount    = 5
	RecentVotesLimit = 50
	DefaultColor     = "#3B82F6"
*/
package models
