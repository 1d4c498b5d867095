// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the League Vote API.

# Handler Types

Each handler is a struct holding the store it reads and writes:

  - VotingHandler: public event list, model list, and vote submission
  - AdminHandler: login, dashboard stats, and event/model management

	votingHandler := handlers.NewVotingHandler(st)
	adminHandler := handlers.NewAdminHandler(st, gate)

# Voting Flow

Participants pick an event, read its models, and send one vote per
question:

	GET  /api/events           → GetEvents (active events, newest first)
	GET  /api/models/{eventId} → GetModels (ordered by name)
	POST /api/vote             → SubmitVote

A participant can answer each question of an event once. A repeat is
rejected with 400 "You have already voted for this question", including
when two identical submissions race.

# Admin Console

	POST   /api/admin/login                              → Login
	GET    /api/admin/stats                              → Stats
	GET    /api/admin/events                             → ListEvents
	POST   /api/admin/events                             → CreateEvent
	PATCH  /api/admin/events/{eventId}                   → SetEventStatus
	POST   /api/admin/events/{eventId}/models            → AddModel
	DELETE /api/admin/events/{eventId}/models/{modelId}  → DeleteModel

All admin routes except Login require a bearer token; see
middleware.RequireAdmin.

# Errors

Errors are JSON {"error": "..."}. Validation failures and duplicates are
400, bad credentials 401, storage failures 500 with a generic message (the
cause is logged).
*/
package handlers
