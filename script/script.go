// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package script

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/danielhkuo/sqlapply/models"
)

var (
	ErrNotFound   = errors.New("script not found")
	ErrNotRegular = errors.New("script is not a regular file")
	ErrEncoding   = errors.New("script is not valid UTF-8")
	ErrEmpty      = errors.New("script is empty")
)

// Load resolves path to absolute form and reads the script once.
// It never touches a database.
func Load(path string) (models.Script, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return models.Script{}, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Script{}, fmt.Errorf("%w: %s", ErrNotFound, abs)
		}
		return models.Script{}, fmt.Errorf("failed to stat %s: %w", abs, err)
	}
	if !info.Mode().IsRegular() {
		return models.Script{}, fmt.Errorf("%w: %s", ErrNotRegular, abs)
	}

	b, err := os.ReadFile(abs)
	if err != nil {
		return models.Script{}, fmt.Errorf("failed to read %s: %w", abs, err)
	}
	if !utf8.Valid(b) {
		return models.Script{}, fmt.Errorf("%w: %s", ErrEncoding, abs)
	}

	text := string(b)
	if strings.TrimSpace(text) == "" {
		return models.Script{}, fmt.Errorf("%w: %s", ErrEmpty, abs)
	}

	return models.Script{
		Path: abs,
		SQL:  text,
		Size: int64(len(b)),
	}, nil
}
