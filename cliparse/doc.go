// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing from CLI flags, environment
variables, and an optional .env file.

# Priority

CLI flags take precedence over environment variables. Variables from a .env
file in the working directory never override ones already set.

# Configuration Options

	Flag            Env Variable         Default
	-p              PORT                 3000
	-d              DATABASE_URL         file:league.db (sqlite only)
	-t              DATABASE_TYPE        sqlite
	-default-event  DEFAULT_EVENT        AI League Game Show - Event 1
	-jwt-secret     JWT_SECRET           (required unless -dev)
	                ADMIN_USERNAME       admin
	                ADMIN_PASSWORD       admin123
	                ADMIN_PASSWORD_HASH  (bcrypt hash, replaces ADMIN_PASSWORD)
	                TOKEN_TTL            24h
	                RATE_LIMIT           100
	                RATE_WINDOW          15m

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
*/
package cliparse
