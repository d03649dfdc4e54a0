package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/danielhkuo/sqlapply/cliparse"
	"github.com/danielhkuo/sqlapply/db"
	"github.com/danielhkuo/sqlapply/migrate"
	"github.com/danielhkuo/sqlapply/script"
)

func main() {
	// Ctrl-C cancels the context; an open transaction is rolled back
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stderr, db.Open)
	stop()
	os.Exit(code)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// run applies one migration and returns the process exit code.
// Usage, config and script errors return before open is called.
func run(ctx context.Context, args []string, stderr io.Writer, open db.Opener) int {
	logger := newLogger(stderr, false)

	// Parse configuration
	cfg, err := cliparse.ParseArgs(args)
	if err != nil {
		logger.Error("invalid invocation", "error", err)
		if errors.Is(err, cliparse.ErrUsage) {
			cliparse.Usage(stderr)
		}
		return 1
	}
	logger = newLogger(stderr, cfg.Verbose)

	// Read the script before touching the database
	s, err := script.Load(cfg.ScriptPath)
	if err != nil {
		logger.Error("cannot read migration script", "error", err)
		return 1
	}

	pool, err := open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		logger.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
		return 1
	}
	defer pool.Close()

	res, err := migrate.NewExecutor(logger).Apply(ctx, pool, s, migrate.Options{
		DatabaseType: cfg.DatabaseType,
		VerifyTable:  cfg.VerifyTable,
	})
	if err != nil {
		logger.Error("migration failed", "run_id", res.RunID, "script", s.Path, "error", err)
		return 1
	}

	logger.Info("migration applied", "run_id", res.RunID, "script", s.Path, "duration", res.Duration.String())
	return 0
}
