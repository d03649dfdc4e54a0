// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// State is a step of the executor's linear state machine.
type State string

// Executor states
const (
	StateStart    State = "start"
	StateConnect  State = "connect"
	StateBegin    State = "begin"
	StateExecute  State = "execute"
	StateCommit   State = "commit"
	StateRollback State = "rollback"
	StateSuccess  State = "success"
	StateFailure  State = "failure"
)

// Terminal reports whether no further transition is possible from s.
func (s State) Terminal() bool {
	return s == StateSuccess || s == StateFailure
}

// Script is a migration file read from disk.
// It has no identity beyond its path; running it twice applies it twice.
type Script struct {
	Path string // absolute
	SQL  string
	Size int64
}

// Result describes a finished executor run.
type Result struct {
	RunID    string
	Script   string
	State    State
	Duration time.Duration

	// Columns is filled by the optional post-commit verification read.
	Columns []string

	// RollbackErr is set when rolling back itself failed.
	RollbackErr error
}

// Committed reports whether the script's changes were committed.
func (r Result) Committed() bool {
	return r.State == StateSuccess
}
