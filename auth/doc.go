// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth guards the admin API.

# Admin Account

There is exactly one admin, configured through ADMIN_USERNAME and either
ADMIN_PASSWORD or ADMIN_PASSWORD_HASH (bcrypt). A plain password is hashed
when the gate is built:

	gate, err := auth.NewGate(cfg)

# Tokens

Authenticate returns an HS256 JWT for valid credentials:

	token, err := gate.Authenticate(username, password)

The token carries the admin username as subject, a random UUID as jti, and
expires after TOKEN_TTL (24h by default). Authorize checks it:

	principal, err := gate.Authorize(token)

Only HMAC signing methods are accepted. Tokens for a different subject are
rejected, so renaming the admin invalidates old sessions.

# Errors

  - ErrInvalidCredentials: wrong username or password
  - ErrMissingToken: no "Authorization: Bearer <token>" header (HTTP 401)
  - ErrInvalidToken: bad signature, algorithm, subject, or expired (HTTP 403)
*/
package auth
