// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Drivers

Two dialects are supported, selected by cliparse.Config.DatabaseType:

  - sqlite: modernc.org/sqlite (pure Go, default), one open connection
  - postgres: github.com/lib/pq, pooled

	conn, err := db.Open(cfg)

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - events: voting occasions (status active/inactive)
  - event_models: candidate models per event, UNIQUE (event_id, name)
  - votes: one row per participant answer

# Relationships

	events 1──* event_models
	events 1──* votes

votes.selected_model stores the model name, not an event_models id, so
deleting a model leaves its votes intact.

# Indexes

  - votes.(event_id, participant_name, question_number) (unique)
  - votes.event_id
  - votes.voted_at
  - event_models.event_id
  - events.status
*/
package db
