// File: doc.go
// Title: Scope Selector Package Documentation
// Description: Documents the scope package, which implements TextMate
//              style scope selector matching used to restrict where
//              scoped ex commands are visible.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28

/*
Package scope implements scope selector matching.

A scope names the syntactic context of the caller, as a space-separated
list of dotted elements from general to specific, for example
"source.go string.quoted.double". A selector restricts a command to
such contexts: "source.go" matches any Go scope, "string" matches any
string scope, and "source.go, source.c" matches either language.

Matching is at dot-segment granularity: the selector "source.go" does
not match the scope element "source.gohtml". A selector alternative
matches a scope when each of its space-separated parts prefixes, in
order, an element of the scope.

The excmd package uses Match as its default scope matcher; Best ranks
selectors by specificity for callers that need to pick among several
matching commands.
*/
package scope
