// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/league-vote/auth"
)

type contextKey int

const principalKey contextKey = iota

// Authorizer validates an admin bearer token.
type Authorizer interface {
	Authorize(token string) (auth.Principal, error)
}

// RequireAdmin rejects requests without a valid admin token before the
// handler runs: 401 when no bearer token is present, 403 when it is
// invalid or expired.
func RequireAdmin(gate Authorizer, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := auth.BearerToken(r.Header.Get("Authorization"))
		if err != nil {
			ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		principal, err := gate.Authorize(token)
		if err != nil {
			slog.Warn("rejected admin token", "path", r.URL.Path, "error", err)
			ErrorResponse(w, http.StatusForbidden, "Invalid or expired token")
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), principalKey, principal)))
	}
}

// PrincipalFrom returns the admin attached by RequireAdmin.
func PrincipalFrom(ctx context.Context) (auth.Principal, bool) {
	p, ok := ctx.Value(principalKey).(auth.Principal)
	return p, ok
}
