// File: scope_test.go
// Title: Scope Selector Matching Unit Tests
// Description: Unit tests for scope selector matching covering segment
//              granularity, ordered multi-part selectors, alternatives
//              and specificity ranking.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29

package scope

import (
	"testing"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		scope    string
		want     bool
	}{
		{
			name:     "Empty selector matches everything",
			selector: "",
			scope:    "source.go string.quoted",
			want:     true,
		},
		{
			name:     "Blank selector matches everything",
			selector: "   ",
			scope:    "",
			want:     true,
		},
		{
			name:     "Exact element",
			selector: "source.go",
			scope:    "source.go",
			want:     true,
		},
		{
			name:     "Segment prefix",
			selector: "source",
			scope:    "source.go string.quoted",
			want:     true,
		},
		{
			name:     "Deeper scope element",
			selector: "source.go",
			scope:    "source.go.template string.quoted",
			want:     true,
		},
		{
			name:     "No partial segment match",
			selector: "source.go",
			scope:    "source.gohtml",
			want:     false,
		},
		{
			name:     "Later element matches",
			selector: "string.quoted",
			scope:    "source.go string.quoted.double",
			want:     true,
		},
		{
			name:     "Multi-part selector in order",
			selector: "source.go string",
			scope:    "source.go string.quoted",
			want:     true,
		},
		{
			name:     "Multi-part selector out of order",
			selector: "string source.go",
			scope:    "source.go string.quoted",
			want:     false,
		},
		{
			name:     "Alternative matches",
			selector: "source.c, source.go",
			scope:    "source.go",
			want:     true,
		},
		{
			name:     "No alternative matches",
			selector: "source.c, source.rb",
			scope:    "source.go",
			want:     false,
		},
		{
			name:     "Empty scope",
			selector: "source.go",
			scope:    "",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.selector, tt.scope); got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.selector, tt.scope, got, tt.want)
			}
		})
	}
}

func TestBest(t *testing.T) {
	tests := []struct {
		name      string
		selectors []string
		scope     string
		want      string
	}{
		{
			name:      "More segments win",
			selectors: []string{"source", "source.go", "text"},
			scope:     "source.go string.quoted",
			want:      "source.go",
		},
		{
			name:      "Non-matching selectors skipped",
			selectors: []string{"source.c", "source"},
			scope:     "source.go",
			want:      "source",
		},
		{
			name:      "No match",
			selectors: []string{"source.c", "text"},
			scope:     "source.go",
			want:      "",
		},
		{
			name:      "Longer selector wins segment ties",
			selectors: []string{"string.quoted", "source.go"},
			scope:     "source.go string.quoted",
			want:      "string.quoted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Best(tt.selectors, tt.scope); got != tt.want {
				t.Errorf("Best(%v, %q) = %q, want %q", tt.selectors, tt.scope, got, tt.want)
			}
		})
	}
}
