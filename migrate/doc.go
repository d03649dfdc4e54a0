// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package migrate applies a single SQL script to a database atomically.

# Usage

	exec := migrate.NewExecutor(slog.Default())
	res, err := exec.Apply(ctx, pool, s, migrate.Options{DatabaseType: "postgres"})
	if err != nil {
		var stepErr *migrate.StepError
		if errors.As(err, &stepErr) {
			// stepErr.Step is connect, begin, execute or commit
		}
	}

# Transaction

Apply takes one connection from the pool and runs:

	BEGIN
	<entire script, sent as one batch>
	COMMIT

Any error after BEGIN triggers ROLLBACK. A failed rollback is logged and joined
onto the returned error; the original failure stays first. The connection goes
back to the pool on every path.

All-or-nothing application relies on the database supporting transactional DDL
(Postgres and SQLite both do).

# Non-features

There is no migration ledger. Applying the same script twice runs it twice.
There are no retries: a dropped connection fails the run.

# Verification

When Options.VerifyTable is set, the table's columns are listed after COMMIT
and logged. This is informational only and cannot fail a committed run.
*/
package migrate
