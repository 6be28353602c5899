// File: doc.go
// Title: Ex Command Map Package Documentation
// Description: Documents the excmd package, which implements the command
//              registry for an ex-style command line: named command
//              definitions with aliases, abbreviation-based lookup with
//              disambiguation, scope filtering, and syntax hint synthesis.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-29
//
// Change History:
// - 2026-08-28 v0.1.0: Initial package documentation

/*
Package excmd provides the command registry for an ex-style command line.

An ex command line (as in vi-family editors) lets the user type any
unambiguous prefix of a command name instead of the full name: ":w" for
":write", ":tabe" for ":tabedit". This package owns that resolution
problem. It provides:

  • Mapping — one command definition with a primary name, aliases, a
    syntax flag string, a scope selector, parameter names, documentation
    and an implementation (a symbolic action name or a Go handler)
  • Map — an ordered collection of mappings with exact-match-first,
    prefix-fallback lookup, explicit ambiguity reporting, and optional
    scope filtering
  • Syntax hint synthesis — display strings like "[range]w[rite][!]
    [filename]" showing the minimal prefix a user has to type

The package resolves names to definitions and renders hints; it does not
parse command lines, validate arguments, or execute anything. The syntax
flag characters (see the Flag constants) only describe the grammar a
downstream parser has to accept.

Lookup misses are first-class results, not faults: ErrNotFound and
AmbiguousError distinguish "no such command" from "prefix matches more
than one command". Only Define reports hard errors, and only for
malformed definitions.

A Map is not safe for concurrent mutation. The expected shape is one
initialization pass at startup (DefaultMap, plus mapfile.Apply for user
definitions) followed by read-mostly use; embedders that mutate aliases
at runtime must serialize access themselves.
*/
package excmd
