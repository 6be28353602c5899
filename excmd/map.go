// File: map.go
// Title: Ex Command Map
// Description: Implements the Map type, the ordered collection of command
//              mappings. Owns abbreviation-based lookup with exact-match
//              priority, ambiguity detection, scope filtering via an
//              injected matcher, and syntax hint generation relative to
//              the full set of registered names.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-29

package excmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	exscope "github.com/msto63/exline/excmd/scope"
)

// ErrNotFound is returned by Lookup when no registered name starts with
// the given token.
var ErrNotFound = errors.New("command not found")

// ErrAmbiguous is the errors.Is target for AmbiguousError.
var ErrAmbiguous = errors.New("ambiguous command")

// AmbiguousError is returned by Lookup when a token prefix-matches names
// belonging to more than one distinct mapping. Candidates holds the
// primary names of the matching mappings in registration order, so the
// caller can show the user what the token could have meant.
type AmbiguousError struct {
	Token      string
	Candidates []string
}

// Error implements the error interface.
func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous command %q: %s", e.Token, strings.Join(e.Candidates, ", "))
}

// Is reports whether target is ErrAmbiguous.
func (e *AmbiguousError) Is(target error) bool {
	return target == ErrAmbiguous
}

// ScopeMatcher decides whether a mapping's scope selector applies to the
// caller's current scope. The matching semantics belong to the matcher,
// not to the registry.
type ScopeMatcher func(selector, scope string) bool

// Options configures a Map.
type Options struct {
	// Logger for registration events (optional, defaults to a nop
	// logger).
	Logger *zerolog.Logger

	// ScopeMatcher decides scope selector applicability (optional,
	// defaults to scope.Match).
	ScopeMatcher ScopeMatcher
}

// Map is an ordered collection of command mappings. Registration order
// is preserved; it never affects lookup correctness but keeps results
// deterministic. A Map is not safe for concurrent mutation.
type Map struct {
	mappings []*Mapping
	matches  ScopeMatcher
	logger   zerolog.Logger
}

// NewMap creates an empty command map.
func NewMap(opts Options) *Map {
	matches := opts.ScopeMatcher
	if matches == nil {
		matches = exscope.Match
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Map{
		matches: matches,
		logger:  logger,
	}
}

// Define builds a mapping from the definition and appends it to the map.
// The map does not deduplicate: defining the same name twice yields two
// independent mappings, and lookups of that name report ambiguity.
func (m *Map) Define(def MappingDef) (*Mapping, error) {
	mapping, err := NewMapping(def)
	if err != nil {
		return nil, err
	}
	m.mappings = append(m.mappings, mapping)

	m.logger.Debug().
		Str("command", mapping.Name()).
		Strs("names", mapping.names).
		Str("syntax", mapping.syntax).
		Str("scope", mapping.scopeSelector).
		Msg("ex command defined")

	return mapping, nil
}

// Mappings returns all registered mappings in registration order.
func (m *Map) Mappings() []*Mapping {
	mappings := make([]*Mapping, len(m.mappings))
	copy(mappings, m.mappings)
	return mappings
}

// Names returns the sorted primary names of all registered mappings.
func (m *Map) Names() []string {
	names := make([]string, 0, len(m.mappings))
	for _, mapping := range m.mappings {
		names = append(names, mapping.Name())
	}
	sort.Strings(names)
	return names
}

// Lookup resolves a typed token to a mapping. An exact name match always
// wins; otherwise the token is treated as a name prefix. When the prefix
// matches names of exactly one mapping the mapping is returned, even if
// several of its own aliases match. Zero matches yield ErrNotFound;
// matches across distinct mappings yield an AmbiguousError.
func (m *Map) Lookup(token string) (*Mapping, error) {
	return m.lookup(token, m.mappings)
}

// LookupScope is Lookup restricted to mappings visible in the given
// scope: those with no scope selector, and those whose selector matches
// the scope. An ambiguity among the visible candidates is reported as
// ambiguous, never silently widened to the full set.
func (m *Map) LookupScope(token, scope string) (*Mapping, error) {
	visible := make([]*Mapping, 0, len(m.mappings))
	for _, mapping := range m.mappings {
		if mapping.scopeSelector == "" || m.matches(mapping.scopeSelector, scope) {
			visible = append(visible, mapping)
		}
	}
	return m.lookup(token, visible)
}

func (m *Map) lookup(token string, candidates []*Mapping) (*Mapping, error) {
	var exact []*Mapping
	for _, mapping := range candidates {
		if containsName(mapping.names, token) {
			exact = append(exact, mapping)
		}
	}
	if len(exact) == 1 {
		return exact[0], nil
	}
	if len(exact) > 1 {
		// Two mappings registered under the identical full name; the
		// registry never picks a winner.
		return nil, &AmbiguousError{Token: token, Candidates: primaries(exact)}
	}

	var hits []*Mapping
	for _, mapping := range candidates {
		for _, name := range mapping.names {
			if strings.HasPrefix(name, token) {
				hits = append(hits, mapping)
				break
			}
		}
	}

	switch len(hits) {
	case 0:
		return nil, fmt.Errorf("unknown command %q: %w", token, ErrNotFound)
	case 1:
		return hits[0], nil
	default:
		return nil, &AmbiguousError{Token: token, Candidates: primaries(hits)}
	}
}

// SyntaxHint returns the syntax hint for a registered mapping, for
// example "[range]w[rite][!] [filename]" for a command named "write".
// The unbracketed part of the name is the minimal prefix that uniquely
// identifies the mapping among all registered names. Returns "" when the
// mapping is not in this map.
func (m *Map) SyntaxHint(mapping *Mapping) string {
	return m.SyntaxHintPrefix(mapping, "")
}

// SyntaxHintPrefix is SyntaxHint with an explicit name prefix. For
// mappings whose aliases are not prefixes of one another (tabedit and
// tabnew), the prefix selects which alias the hint renders; a selected
// non-primary alias is rendered in full rather than bracketed. An empty
// prefix, or one that matches no alias, renders the primary name.
func (m *Map) SyntaxHintPrefix(mapping *Mapping, prefix string) string {
	if mapping == nil || !m.contains(mapping) {
		return ""
	}

	chosen := mapping.Name()
	if prefix != "" {
		for _, name := range mapping.names {
			if strings.HasPrefix(name, prefix) {
				chosen = name
				break
			}
		}
	}

	var hint string
	if chosen == mapping.Name() {
		p := m.minimalPrefix(mapping)
		if p >= len(chosen) {
			hint = chosen
		} else {
			hint = chosen[:p] + "[" + chosen[p:] + "]"
		}
	} else {
		hint = chosen
	}
	if mapping.HasFlag(FlagForce) {
		hint += "[!]"
	}

	return mapping.SyntaxHint(hint)
}

// minimalPrefix returns the length of the shortest prefix of the
// mapping's primary name that no name of any other registered mapping
// starts with. The mapping's own aliases never count as competition.
func (m *Map) minimalPrefix(mapping *Mapping) int {
	name := mapping.Name()
	for p := 1; p < len(name); p++ {
		taken := false
		for _, other := range m.mappings {
			if other == mapping {
				continue
			}
			for _, n := range other.names {
				if strings.HasPrefix(n, name[:p]) {
					taken = true
					break
				}
			}
			if taken {
				break
			}
		}
		if !taken {
			return p
		}
	}
	return len(name)
}

func (m *Map) contains(mapping *Mapping) bool {
	for _, registered := range m.mappings {
		if registered == mapping {
			return true
		}
	}
	return false
}

func primaries(mappings []*Mapping) []string {
	names := make([]string, 0, len(mappings))
	for _, mapping := range mappings {
		names = append(names, mapping.Name())
	}
	return names
}
