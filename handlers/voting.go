// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/league-vote/middleware"
	"github.com/danielhkuo/league-vote/models"
	"github.com/danielhkuo/league-vote/store"
)

type VotingHandler struct {
	store *store.Store
}

func NewVotingHandler(st *store.Store) *VotingHandler {
	return &VotingHandler{store: st}
}

// GetEvents handles GET /api/events
func (h *VotingHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.ListEvents(r.Context(), store.ActiveEvents)
	if err != nil {
		writeStoreError(w, err, "list active events")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, events)
}

// GetModels handles GET /api/models/{eventId}
func (h *VotingHandler) GetModels(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(r, "eventId")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid event id")
		return
	}

	list, err := h.store.ListModels(r.Context(), eventID)
	if err != nil {
		writeStoreError(w, err, "list models")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, list)
}

// SubmitVote handles POST /api/vote
func (h *VotingHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, validationMessage(err, "Missing required fields"))
		return
	}

	voteID, err := h.store.SubmitVote(r.Context(), store.VoteInput{
		EventID:         req.EventID,
		ParticipantName: req.ParticipantName,
		QuestionNumber:  req.QuestionNumber,
		SelectedModel:   req.SelectedModel,
	})
	if err != nil {
		writeStoreError(w, err, "submit vote")
		return
	}

	slog.Info("vote submitted",
		"vote_id", voteID,
		"event_id", req.EventID,
		"question", req.QuestionNumber,
	)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitVoteResponse{
		Success: true,
		VoteID:  voteID,
	})
}
