// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseArgs returns a Config struct with all settings:

	cfg, err := cliparse.ParseArgs(os.Args[1:])

# Config Fields

  - ScriptPath: the .sql file to apply (required, positional)
  - DatabaseURL: connection string (required)
  - DatabaseType: postgres, pgx or sqlite (default: postgres)
  - VerifyTable: table whose columns are listed after commit (optional)
  - EnvFile: dotenv file read before the environment (default: .env)
  - Verbose: debug logging

# CLI Flags

	-d         Database URL
	-t         Database type
	-verify    Table to list after commit
	-env-file  Dotenv file
	-v         Debug logging

Flags must come before the script path.

# Environment Variables

Flags fall back to environment variables:

	DATABASE_URL  → -d
	DATABASE_TYPE → -t

The env file is loaded with godotenv first. Variables already set in the
process environment are never overwritten by the file, and a missing file is
not an error.

CLI flags take precedence over environment variables.

# Validation

ParseArgs wraps one of two sentinel errors:

  - ErrUsage: missing or extra positional arguments, unknown flags, -h
  - ErrConfig: no database URL, unknown database type, unreadable env file

There is no built-in connection string. A missing DATABASE_URL fails fast.

# Example

	cfg, err := cliparse.ParseArgs(os.Args[1:])
	if errors.Is(err, cliparse.ErrUsage) {
		cliparse.Usage(os.Stderr)
		os.Exit(1)
	}
*/
package cliparse
