// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"path/filepath"

	"github.com/danielhkuo/league-vote/auth"
	"github.com/danielhkuo/league-vote/cliparse"
	"github.com/danielhkuo/league-vote/handlers"
	"github.com/danielhkuo/league-vote/middleware"
	"github.com/danielhkuo/league-vote/store"
)

func NewRouter(st *store.Store, gate *auth.Gate, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()
	api := http.NewServeMux()

	// Initialize handlers
	votingHandler := handlers.NewVotingHandler(st)
	adminHandler := handlers.NewAdminHandler(st, gate)

	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdmin(gate, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Voting operations (public)
	api.HandleFunc("GET /api/events", middleware.WithLogging(votingHandler.GetEvents))
	api.HandleFunc("GET /api/models/{eventId}", middleware.WithLogging(votingHandler.GetModels))
	api.HandleFunc("POST /api/vote", middleware.WithLogging(votingHandler.SubmitVote))

	// Admin console
	api.HandleFunc("POST /api/admin/login", middleware.WithLogging(adminHandler.Login))
	api.HandleFunc("GET /api/admin/stats", admin(adminHandler.Stats))
	api.HandleFunc("GET /api/admin/events", admin(adminHandler.ListEvents))
	api.HandleFunc("POST /api/admin/events", admin(adminHandler.CreateEvent))
	api.HandleFunc("PATCH /api/admin/events/{eventId}", admin(adminHandler.SetEventStatus))
	api.HandleFunc("POST /api/admin/events/{eventId}/models", admin(adminHandler.AddModel))
	api.HandleFunc("DELETE /api/admin/events/{eventId}/models/{modelId}", admin(adminHandler.DeleteModel))

	// Only the API is rate limited
	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow).TrustProxy(cfg.TrustProxy)
	mux.Handle("/api/", limiter.Limit(api))

	// Voting and admin pages, or a banner when none are configured
	if cfg.StaticDir != "" {
		mux.HandleFunc("GET /admin", func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, filepath.Join(cfg.StaticDir, "admin.html"))
		})
		mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))
	} else {
		mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("league-vote API v1"))
		})
	}

	return middleware.SecurityHeaders(middleware.CORS(mux))
}
