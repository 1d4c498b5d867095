// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the League Vote API.

# Route Registration

NewRouter returns the full handler, CORS and security headers included:

	handler := router.NewRouter(st, gate, cfg)

# Endpoints

Health (not rate limited):

	GET /health

Voting (public):

	GET  /api/events           - Active events
	GET  /api/models/{eventId} - Models of an event
	POST /api/vote             - Submit one answer

Admin console (bearer token, except login):

	POST   /api/admin/login                             - Issue token
	GET    /api/admin/stats                             - Dashboard stats
	GET    /api/admin/events                            - All events
	POST   /api/admin/events                            - Create event
	PATCH  /api/admin/events/{eventId}                  - Activate/deactivate
	POST   /api/admin/events/{eventId}/models           - Add model
	DELETE /api/admin/events/{eventId}/models/{modelId} - Remove model

Everything under /api/ shares a per-IP rate limit (cfg.RateLimit requests
per cfg.RateWindow; 0 disables it). Clients are keyed by peer address
unless cfg.TrustProxy is set.

When cfg.StaticDir is set its files are served at / and admin.html is also
served at GET /admin. Otherwise GET / returns a short banner.
*/
package router
