// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package script reads migration files from disk.

	s, err := script.Load("migrations/fix_scores.sql")

Relative paths are resolved against the working directory. The text is kept
verbatim: no templating, no parameter substitution, no statement splitting.
The whole file is later sent to the database as one batch.

Load fails with ErrNotFound, ErrNotRegular, ErrEncoding or ErrEmpty, wrapped
with the absolute path.
*/
package script
