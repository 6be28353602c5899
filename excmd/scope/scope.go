// File: scope.go
// Title: Scope Selector Matching
// Description: Implements matching of scope selectors against scope
//              strings at dot-segment granularity, with comma-separated
//              selector alternatives and specificity ranking.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-29

package scope

import (
	"strings"
)

// Match reports whether the selector applies to the scope. The selector
// may list comma-separated alternatives; each alternative is a space
// separated sequence of dotted names that must prefix, in order,
// elements of the scope. An empty selector matches every scope.
func Match(selector, scope string) bool {
	if strings.TrimSpace(selector) == "" {
		return true
	}

	elements := strings.Fields(scope)
	for _, alt := range strings.Split(selector, ",") {
		parts := strings.Fields(alt)
		if len(parts) == 0 {
			continue
		}
		if matchParts(parts, elements) {
			return true
		}
	}
	return false
}

// Best returns the most specific selector among those matching the
// scope, or "" when none matches. Specificity is the number of dot
// segments in the selector, with the longer selector winning ties;
// earlier selectors win exact ties, so the result is deterministic.
func Best(selectors []string, scope string) string {
	best := ""
	bestRank := -1
	for _, selector := range selectors {
		if !Match(selector, scope) {
			continue
		}
		rank := specificity(selector)
		if rank > bestRank {
			best = selector
			bestRank = rank
		}
	}
	return best
}

// matchParts reports whether every part prefixes, in order, some
// element of the scope.
func matchParts(parts, elements []string) bool {
	i := 0
	for _, part := range parts {
		for {
			if i >= len(elements) {
				return false
			}
			if segmentPrefix(part, elements[i]) {
				i++
				break
			}
			i++
		}
	}
	return true
}

// segmentPrefix reports whether part is a dot-segment prefix of
// element: "source.go" prefixes "source.go.template" but not
// "source.gohtml".
func segmentPrefix(part, element string) bool {
	if part == element {
		return true
	}
	return strings.HasPrefix(element, part+".")
}

func specificity(selector string) int {
	rank := 0
	for _, alt := range strings.Split(selector, ",") {
		for _, part := range strings.Fields(alt) {
			rank += strings.Count(part, ".") + 1
		}
	}
	return rank*1000 + len(selector)
}
