// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types shared by the loader and executor.

# Script

A Script is one SQL file, read once:

	s := models.Script{Path: "/abs/fix.sql", SQL: "ALTER TABLE ...", Size: 42}

Scripts carry no version or checksum. Nothing records that a script ran.

# State

The executor walks a linear state machine:

	start → connect → begin → execute ─┬→ commit → success
	                                   └→ rollback → failure

Only success and failure are terminal (State.Terminal).

# Result

Result reports the run ID, the terminal state, elapsed time, any columns read
by the optional verification step, and a rollback error when rolling back
failed too.
*/
package models
