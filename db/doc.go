// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens database connections and reads back schema details.

# Opening

Open picks the driver for the configured type and pings once:

	conn, err := db.Open(ctx, cliparse.TypePostgres, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

Drivers:

  - postgres: github.com/lib/pq
  - pgx: github.com/jackc/pgx/v5/stdlib
  - sqlite: modernc.org/sqlite

A failed ping closes the pool before returning. Nothing is retried.

# Verification

ListColumns lists a table's columns after a migration commits:

	cols, err := db.ListColumns(ctx, conn, cfg.DatabaseType, "quiz_attempt")

Postgres reads information_schema.columns (use "schema.table" to pick a
schema other than current_schema()). Unquoted names are folded to lower case
as Postgres does; wrap a name in double quotes to match it exactly. SQLite reads
pragma_table_info.
*/
package db
