// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import "testing"

func TestPgIdent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"quiz_attempt", "quiz_attempt"},
		{"Quiz", "quiz"},
		{"QUIZ_ATTEMPT", "quiz_attempt"},
		{`"Quiz"`, "Quiz"},
		{`"odd""name"`, `odd"name`},
		{`"`, `"`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := pgIdent(tt.in); got != tt.want {
				t.Errorf("pgIdent(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
