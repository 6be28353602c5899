// File: doc.go
// Title: Map File Package Documentation
// Description: Documents the mapfile package, which loads user-defined
//              ex command definitions from TOML or YAML files and
//              registers them in a command map.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29

/*
Package mapfile loads ex command definitions from configuration files.

The file format is a list of command records in TOML or YAML, detected
by file extension (.toml, .yaml, .yml):

	[[command]]
	name    = "tabedit"
	aliases = ["tabnew"]
	syntax  = "!+1ex"
	action  = "ex_tabedit"
	doc     = "Edit +filename+ in a new tab."

File-defined commands always reference a symbolic action; embedded Go
handlers cannot come from a file. A malformed record aborts loading
with an error before anything is registered, so a map is never left
half-populated by a bad file.
*/
package mapfile
