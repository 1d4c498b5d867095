// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Every request gets an id (X-Request-ID, generated when absent) that is
echoed on the response and attached to the completion log line along with
status and duration_ms.

# Admin Authentication

	mux.HandleFunc("GET /api/admin/stats",
		middleware.WithLogging(middleware.RequireAdmin(gate, h.Stats)))

Missing bearer token: 401. Invalid or expired token: 403. Handlers read
the authenticated admin with PrincipalFrom.

# Rate Limiting

	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	handler := limiter.Limit(mux)

Per client IP token bucket built on golang.org/x/time/rate. Clients are
keyed by the connection's peer address; TrustProxy(true) keys them by the
forwarded address instead. A nil limiter (limit 0) passes everything
through. Rejections are 429.

# CORS Middleware

Allows methods GET, POST, PUT, PATCH, DELETE, OPTIONS with headers
Content-Type and Authorization.

# Security Headers

SecurityHeaders sets nosniff, SAMEORIGIN framing, no-referrer and related
browser hardening headers. No Content-Security-Policy is sent.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields")

Errors are written as {"error": "..."}.

# Client IP Extraction

	ip := middleware.GetClientIP(r)

	peer := middleware.PeerIP(r)

GetClientIP honors X-Forwarded-For and X-Real-IP and is used for logging.
PeerIP ignores them; it is the rate limiter key unless a proxy is trusted.
*/
package middleware
