// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Command sqlapply applies one SQL migration file to a database in a single
transaction.

It is meant for hand-run schema fixes: point it at a .sql file, it commits the
whole file or nothing.

# Running

	DATABASE_URL=postgres://... go run . migrations/add_quiz_index.sql

Or with flags:

	go run . -d "postgres://..." -verify quiz_attempt migrations/add_quiz_index.sql

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string
  - the path to the .sql file (positional)

Optional settings:

  - DATABASE_TYPE (-t): postgres (default), pgx or sqlite
  - -verify: table whose columns are printed after commit
  - -env-file: dotenv file (default: .env)
  - -v: debug logging

# Exit Status

  - 0: the script committed
  - 1: usage error, missing configuration, unreadable script, connection
    failure, or the script failed and was rolled back

No database connection is opened unless the arguments, configuration and
script are all valid.

# Architecture

  - cliparse: flags, environment and .env loading
  - script: reading the migration file
  - db: drivers, connecting, column listing
  - migrate: the transactional executor
  - models: Script, State, Result
  - testutil: database helpers for tests

See package documentation for each component.
*/
package main
