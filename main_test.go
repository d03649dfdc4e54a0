// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/danielhkuo/sqlapply/cliparse"
	"github.com/danielhkuo/sqlapply/db"
	"github.com/danielhkuo/sqlapply/testutil"
)

// countingOpener wraps db.Open and records every call.
type countingOpener struct {
	calls int
}

func (c *countingOpener) open(ctx context.Context, dbType, url string) (*sql.DB, error) {
	c.calls++
	return db.Open(ctx, dbType, url)
}

func failingOpener(context.Context, string, string) (*sql.DB, error) {
	return nil, errors.New("connection refused")
}

func sqliteArgs(url, path string) []string {
	return []string{"-env-file", "", "-t", cliparse.TypeSQLite, "-d", url, path}
}

func TestRun_NoArguments(t *testing.T) {
	var stderr bytes.Buffer
	opener := &countingOpener{}

	code := run(context.Background(), nil, &stderr, opener.open)

	if code == 0 {
		t.Error("expected non-zero exit code")
	}
	if opener.calls != 0 {
		t.Errorf("expected no connection attempt, got %d", opener.calls)
	}
	if !strings.Contains(stderr.String(), "usage: sqlapply") {
		t.Errorf("expected usage message, got:\n%s", stderr.String())
	}
}

func TestRun_MissingFile(t *testing.T) {
	var stderr bytes.Buffer
	opener := &countingOpener{}
	missing := filepath.Join(t.TempDir(), "missing.sql")

	code := run(context.Background(), sqliteArgs(testutil.SQLiteURL(t), missing), &stderr, opener.open)

	if code == 0 {
		t.Error("expected non-zero exit code")
	}
	if opener.calls != 0 {
		t.Errorf("expected no connection attempt, got %d", opener.calls)
	}
	if !strings.Contains(stderr.String(), "script not found") {
		t.Errorf("expected not-found error, got:\n%s", stderr.String())
	}
}

func TestRun_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	var stderr bytes.Buffer
	opener := &countingOpener{}
	path := testutil.WriteScript(t, "SELECT 1;")

	code := run(context.Background(), []string{"-env-file", "", path}, &stderr, opener.open)

	if code == 0 {
		t.Error("expected non-zero exit code")
	}
	if opener.calls != 0 {
		t.Errorf("expected no connection attempt, got %d", opener.calls)
	}
	if strings.Contains(stderr.String(), "usage:") {
		t.Error("configuration errors should not print usage")
	}
}

func TestRun_ConnectionFailure(t *testing.T) {
	var stderr bytes.Buffer
	path := testutil.WriteScript(t, "SELECT 1;")

	code := run(context.Background(), sqliteArgs("unused", path), &stderr, failingOpener)

	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "connection refused") {
		t.Errorf("expected connection error in output:\n%s", stderr.String())
	}
}

func TestRun_Success(t *testing.T) {
	var stderr bytes.Buffer
	opener := &countingOpener{}
	url := testutil.SQLiteURL(t)
	path := testutil.WriteScript(t, "CREATE TABLE t(id int); INSERT INTO t VALUES (1);")

	code := run(context.Background(), append([]string{"-verify", "t"}, sqliteArgs(url, path)...), &stderr, opener.open)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d:\n%s", code, stderr.String())
	}
	if opener.calls != 1 {
		t.Errorf("expected exactly one connection, got %d", opener.calls)
	}

	conn, err := db.Open(context.Background(), cliparse.TypeSQLite, url)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	if got := testutil.IntColumn(t, conn, "t", "id"); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("expected exactly one row with id 1, got %v", got)
	}
	if !strings.Contains(stderr.String(), "verified table") {
		t.Errorf("expected verification output:\n%s", stderr.String())
	}
}

func TestRun_ConstraintViolation(t *testing.T) {
	var stderr bytes.Buffer
	url := testutil.SQLiteURL(t)
	path := testutil.WriteScript(t, "CREATE TABLE t(id INTEGER) STRICT; INSERT INTO t VALUES ('x');")

	code := run(context.Background(), sqliteArgs(url, path), &stderr, db.Open)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}

	conn, err := db.Open(context.Background(), cliparse.TypeSQLite, url)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	if testutil.TableExists(t, conn, cliparse.TypeSQLite, "t") {
		t.Error("table t should not exist after rollback")
	}
	if !strings.Contains(stderr.String(), "migration failed") {
		t.Errorf("expected failure message:\n%s", stderr.String())
	}
}
