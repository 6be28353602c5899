// File: defaults_test.go
// Title: Default Ex Command Set Unit Tests
// Description: Unit tests for the standard ex command map, checking that
//              conventional abbreviations resolve to the conventional
//              commands and that every default definition is well formed.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29

package excmd

import (
	"errors"
	"testing"
)

func TestDefaultMap(t *testing.T) {
	m, err := DefaultMap(Options{})
	if err != nil {
		t.Fatalf("DefaultMap: %v", err)
	}
	if len(m.Mappings()) != len(defaultCommands) {
		t.Errorf("map holds %d mappings, want %d", len(m.Mappings()), len(defaultCommands))
	}

	tests := []struct {
		token string
		want  string
	}{
		{"w", "write"},
		{"write", "write"},
		{"wri", "write"},
		{"wq", "wq"},
		{"e", "edit"},
		{"q", "quit"},
		{"s", "substitute"},
		{"su", "substitute"},
		{"x", "xit"},
		{"exi", "xit"},
		{"t", "copy"},
		{"tabe", "tabedit"},
		{"tabnew", "tabedit"},
		{"d", "delete"},
		{"y", "yank"},
		{"n", "next"},
		{"nu", "number"},
		{"noh", "nohlsearch"},
		{"p", "print"},
		{"prev", "previous"},
		{"b", "buffer"},
		{"bd", "bdelete"},
		{"u", "undo"},
		{"red", "redo"},
		{"chd", "cd"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			mapping, err := m.Lookup(tt.token)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", tt.token, err)
			}
			if mapping.Name() != tt.want {
				t.Errorf("Lookup(%q) = %s, want %s", tt.token, mapping.Name(), tt.want)
			}
		})
	}
}

func TestDefaultMapAmbiguities(t *testing.T) {
	m, err := DefaultMap(Options{})
	if err != nil {
		t.Fatalf("DefaultMap: %v", err)
	}

	// Prefixes that genuinely fan out to several commands stay
	// ambiguous; only the blessed single letter aliases short-cut.
	for _, token := range []string{"c", "pr", "re"} {
		if _, err := m.Lookup(token); !errors.Is(err, ErrAmbiguous) {
			t.Errorf("Lookup(%q) error = %v, want ErrAmbiguous", token, err)
		}
	}

	if _, err := m.Lookup("xyzzy"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup(xyzzy) error = %v, want ErrNotFound", err)
	}
}

func TestDefaultMapHints(t *testing.T) {
	m, err := DefaultMap(Options{})
	if err != nil {
		t.Fatalf("DefaultMap: %v", err)
	}

	tests := []struct {
		command string
		want    string
	}{
		{"write", "[range]wr[ite][!] [filename]"},
		{"quit", "q[uit][!]"},
		{"delete", "[range]d[elete] [register] [count]"},
		{"move", "[range]m[ove] line"},
		{"substitute", "[range]su[bstitute] [count] /pattern/replace/flags"},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			mapping, err := m.Lookup(tt.command)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", tt.command, err)
			}
			if got := m.SyntaxHint(mapping); got != tt.want {
				t.Errorf("SyntaxHint(%s) = %q, want %q", tt.command, got, tt.want)
			}
		})
	}
}
