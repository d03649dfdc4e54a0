// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/sqlapply/cliparse"
)

var (
	ErrUnknownType   = errors.New("unknown database type")
	ErrTableNotFound = errors.New("table not found")
)

// Opener opens and verifies a connection pool. Open is the production Opener.
type Opener func(ctx context.Context, dbType, url string) (*sql.DB, error)

// Querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// driverName maps a configured database type to its database/sql driver.
func driverName(dbType string) (string, error) {
	switch dbType {
	case cliparse.TypePostgres:
		return "postgres", nil
	case cliparse.TypePgx:
		return "pgx", nil
	case cliparse.TypeSQLite:
		return "sqlite", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, dbType)
}

// Open opens a pool for dbType and pings it once. There is no retry.
func Open(ctx context.Context, dbType, url string) (*sql.DB, error) {
	driver, err := driverName(dbType)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dbType, err)
	}

	return conn, nil
}

// pgIdent folds an unquoted identifier to lower case the way Postgres does.
// A double-quoted identifier keeps its case and loses the quotes.
func pgIdent(name string) string {
	if len(name) >= 2 && strings.HasPrefix(name, `"`) && strings.HasSuffix(name, `"`) {
		return strings.ReplaceAll(name[1:len(name)-1], `""`, `"`)
	}
	return strings.ToLower(name)
}

// ListColumns returns the column names of table in declaration order.
// A table with no visible columns is reported as ErrTableNotFound.
func ListColumns(ctx context.Context, q Querier, dbType, table string) ([]string, error) {
	var (
		query string
		args  []any
	)

	switch dbType {
	case cliparse.TypePostgres, cliparse.TypePgx:
		if schema, name, ok := strings.Cut(table, "."); ok {
			query = `
				SELECT column_name FROM information_schema.columns
				WHERE table_schema = $1 AND table_name = $2
				ORDER BY ordinal_position`
			args = []any{pgIdent(schema), pgIdent(name)}
		} else {
			query = `
				SELECT column_name FROM information_schema.columns
				WHERE table_schema = current_schema() AND table_name = $1
				ORDER BY ordinal_position`
			args = []any{pgIdent(table)}
		}
	case cliparse.TypeSQLite:
		query = `SELECT name FROM pragma_table_info(?) ORDER BY cid`
		args = []any{table}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, dbType)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list columns of %s: %w", table, err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan column name: %w", err)
		}
		columns = append(columns, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list columns of %s: %w", table, err)
	}

	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, table)
	}
	return columns, nil
}
