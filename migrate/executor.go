// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package migrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/danielhkuo/sqlapply/db"
	"github.com/danielhkuo/sqlapply/models"
)

// StepError records the state in which a run failed.
type StepError struct {
	Step models.State
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Options tune a single Apply call.
type Options struct {
	// DatabaseType selects the dialect for the verification read.
	DatabaseType string
	// VerifyTable, when set, is listed after commit. Failures are only logged.
	VerifyTable string
}

// Executor applies one script per call inside a single transaction.
type Executor struct {
	logger *slog.Logger
}

func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{logger: logger}
}

// Apply runs s against one connection taken from pool:
// BEGIN, the whole script as one batch, then COMMIT. Any error after BEGIN
// rolls the transaction back. The connection is always returned to the pool.
// Nothing is retried.
func (e *Executor) Apply(ctx context.Context, pool *sql.DB, s models.Script, opts Options) (res models.Result, err error) {
	res = models.Result{
		RunID:  uuid.NewString(),
		Script: s.Path,
		State:  models.StateStart,
	}
	log := e.logger.With("run_id", res.RunID, "script", s.Path)

	start := time.Now()
	defer func() {
		res.Duration = time.Since(start)
	}()

	log.Info("applying migration", "size", humanize.Bytes(uint64(s.Size)))

	res.State = models.StateConnect
	conn, err := pool.Conn(ctx)
	if err != nil {
		return e.fail(log, res, models.StateConnect, err)
	}
	defer conn.Close()

	res.State = models.StateBegin
	log.Debug("begin")
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return e.fail(log, res, models.StateBegin, err)
	}

	res.State = models.StateExecute
	log.Debug("execute")
	if _, err := tx.ExecContext(ctx, s.SQL); err != nil {
		return e.rollback(log, res, tx, models.StateExecute, err)
	}

	res.State = models.StateCommit
	log.Debug("commit")
	if err := tx.Commit(); err != nil {
		return e.rollback(log, res, tx, models.StateCommit, err)
	}

	res.State = models.StateSuccess
	log.Info("migration committed", "elapsed", time.Since(start).Round(time.Millisecond).String())

	if opts.VerifyTable != "" {
		cols, err := db.ListColumns(ctx, conn, opts.DatabaseType, opts.VerifyTable)
		if err != nil {
			log.Warn("verification read failed", "table", opts.VerifyTable, "error", err)
		} else {
			res.Columns = cols
			log.Info("verified table", "table", opts.VerifyTable, "columns", cols)
		}
	}

	return res, nil
}

// rollback undoes tx after a failure in step. The rollback is best effort:
// its own error is attached to the result but never replaces cause.
func (e *Executor) rollback(log *slog.Logger, res models.Result, tx *sql.Tx, step models.State, cause error) (models.Result, error) {
	res.State = models.StateRollback
	log.Warn("rolling back", "step", step, "error", cause)

	// ErrTxDone means the driver or a cancelled context already ended it.
	if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
		log.Error("rollback failed", "error", rbErr)
		res.RollbackErr = rbErr
		return e.fail(log, res, step, errors.Join(cause, fmt.Errorf("rollback: %w", rbErr)))
	}

	return e.fail(log, res, step, cause)
}

func (e *Executor) fail(log *slog.Logger, res models.Result, step models.State, err error) (models.Result, error) {
	res.State = models.StateFailure
	log.Debug("migration failed", "step", step)
	return res, &StepError{Step: step, Err: err}
}
