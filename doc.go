// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the League Vote API server.

League Vote collects audience votes for a game show where AI models
compete over five questions per event. Participants pick the best model
for each question; the admin console polls live rankings.

# Starting the Server

SQLite is the default and needs no setup:

	JWT_SECRET=change-me go run .

Postgres:

	go run . -t postgres -d "postgres://..."

For local development without secrets:

	go run . -dev -static ./public

# Configuration

Flags override environment variables, which may also come from a .env
file in the working directory.

  - PORT (-p): Server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): DSN (default: file:league.db for sqlite)
  - JWT_SECRET (-jwt-secret): Token signing secret, required unless -dev
  - ADMIN_USERNAME, ADMIN_PASSWORD or ADMIN_PASSWORD_HASH: admin login
  - TOKEN_TTL: Admin token lifetime (default: 24h)
  - RATE_LIMIT, RATE_WINDOW: API requests per client IP (default: 100 per 15m)
  - DEFAULT_EVENT (-default-event): Event created when none exist
  - STATIC_DIR (-static): Directory of pages served at / (admin.html also at /admin)
  - TRUST_PROXY (-trust-proxy): Rate limit by X-Forwarded-For; only behind a reverse proxy

# Architecture

  - handlers: HTTP request handlers (voting, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, security headers, logging, admin auth, rate limiting, JSON helpers
  - store: Events, models, and votes in SQL
  - stats: Dashboard aggregation and question rankings
  - models: Request/response and domain types
  - auth: Admin credentials and JWT tokens
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
