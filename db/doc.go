// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Drivers

The vote store runs on PostgreSQL (lib/pq) or SQLite (modernc.org/sqlite):

	driver, err := db.DriverName(cfg.DatabaseType) // "postgres" or "sqlite"
	conn, err := sql.Open(driver, cfg.DatabaseURL)

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - vote: one row per voter, keyed by lower-cased email, with the choice
    ('for' or 'against'), timestamp, hashed IP and user agent

# Indexes

  - vote.email (primary key)
  - vote.id (unique)
  - vote.choice (tally queries)
*/
package db
