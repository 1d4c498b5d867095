// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/league-vote/middleware"
	"github.com/danielhkuo/league-vote/store"
)

// validate is safe for concurrent use and caches struct metadata
var validate = validator.New()

// validationMessage turns validator errors into the client-facing message.
// missing is used for absent fields.
func validationMessage(err error, missing string) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Field() == "QuestionNumber" && (fe.Tag() == "min" || fe.Tag() == "max") {
				return "Question number must be between 1 and 5"
			}
			if fe.Field() == "Status" && fe.Tag() == "oneof" {
				return "Status must be active or inactive"
			}
		}
	}
	return missing
}

// pathID reads a numeric path parameter
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// writeStoreError maps store errors to responses. Storage failures are
// logged and reported without detail.
func writeStoreError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, store.ErrMissingFields):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields")
	case errors.Is(err, store.ErrDuplicateVote):
		middleware.ErrorResponse(w, http.StatusBadRequest, "You have already voted for this question")
	case errors.Is(err, store.ErrDuplicateModel):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Model name already exists for this event")
	case errors.Is(err, store.ErrInvalidStatus):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Status must be active or inactive")
	case errors.Is(err, store.ErrUnknownEvent):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Event not found")
	default:
		slog.Error("store operation failed", "op", op, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
