// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/league-vote/auth"
	"github.com/danielhkuo/league-vote/middleware"
	"github.com/danielhkuo/league-vote/models"
	"github.com/danielhkuo/league-vote/stats"
	"github.com/danielhkuo/league-vote/store"
)

// AdminHandler serves the console. Every route except Login sits behind
// middleware.RequireAdmin.
type AdminHandler struct {
	store *store.Store
	gate  *auth.Gate
}

func NewAdminHandler(st *store.Store, gate *auth.Gate) *AdminHandler {
	return &AdminHandler{store: st, gate: gate}
}

// Login handles POST /api/admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	token, err := h.gate.Authenticate(req.Username, req.Password)
	if err != nil {
		slog.Warn("admin login failed", "username", req.Username, "remote", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	slog.Info("admin logged in", "username", req.Username)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{Token: token})
}

// Stats handles GET /api/admin/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, stats.Compute(r.Context(), h.store))
}

// ListEvents handles GET /api/admin/events
func (h *AdminHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.ListEvents(r.Context(), store.AllEvents)
	if err != nil {
		writeStoreError(w, err, "list events")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, events)
}

// CreateEvent handles POST /api/admin/events
func (h *AdminHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEventRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, validationMessage(err, "Name and date are required"))
		return
	}

	eventID, err := h.store.CreateEvent(r.Context(), req.Name, req.Date)
	if err != nil {
		writeStoreError(w, err, "create event")
		return
	}

	slog.Info("event created", "event_id", eventID, "name", req.Name, "admin", adminName(r))

	middleware.JSONResponse(w, http.StatusOK, models.CreateEventResponse{
		Success: true,
		EventID: eventID,
	})
}

// SetEventStatus handles PATCH /api/admin/events/{eventId}
func (h *AdminHandler) SetEventStatus(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(r, "eventId")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid event id")
		return
	}

	var req models.UpdateEventStatusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, validationMessage(err, "Status is required"))
		return
	}

	if err := h.store.SetEventStatus(r.Context(), eventID, req.Status); err != nil {
		if errors.Is(err, store.ErrEventNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Event not found")
			return
		}
		writeStoreError(w, err, "set event status")
		return
	}

	slog.Info("event status changed", "event_id", eventID, "status", req.Status, "admin", adminName(r))

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// AddModel handles POST /api/admin/events/{eventId}/models
func (h *AdminHandler) AddModel(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(r, "eventId")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid event id")
		return
	}

	var req models.AddModelRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, validationMessage(err, "Model name is required"))
		return
	}

	modelID, err := h.store.AddModel(r.Context(), eventID, store.ModelInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		writeStoreError(w, err, "add model")
		return
	}

	slog.Info("model added", "event_id", eventID, "model_id", modelID, "name", req.Name)

	middleware.JSONResponse(w, http.StatusOK, models.AddModelResponse{
		Success: true,
		ModelID: modelID,
	})
}

// DeleteModel handles DELETE /api/admin/events/{eventId}/models/{modelId}
func (h *AdminHandler) DeleteModel(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(r, "eventId")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid event id")
		return
	}
	modelID, ok := pathID(r, "modelId")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid model id")
		return
	}

	if err := h.store.DeleteModel(r.Context(), eventID, modelID); err != nil {
		writeStoreError(w, err, "delete model")
		return
	}

	slog.Info("model deleted", "event_id", eventID, "model_id", modelID, "admin", adminName(r))

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

func adminName(r *http.Request) string {
	if p, ok := middleware.PrincipalFrom(r.Context()); ok {
		return p.Username
	}
	return ""
}
