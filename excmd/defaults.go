// File: defaults.go
// Title: Default Ex Command Set
// Description: Builds the standard ex command map: the common vi-family
//              commands with their aliases, syntax flags and
//              documentation, bound to symbolic actions resolved by the
//              embedding application.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29

package excmd

import (
	"fmt"
)

// defaultCommands is the standard ex command set. Most abbreviations
// are covered by prefix lookup and need no alias entries. Single letter
// aliases are registered where tradition demands a winner that a bare
// prefix cannot pick (":w" must mean write even though wq exists), and
// full aliases where a second name exists (tabedit/tabnew, copy/t).
var defaultCommands = []MappingDef{
	{
		Name:           "edit",
		Aliases:        []string{"e"},
		Syntax:         "!+1ex",
		Action:         "ex_edit",
		ParameterNames: []string{"", "", "filename"},
		Documentation:  "Edit +filename+, or re-read the current file when no argument is given.",
	},
	{
		Name:           "write",
		Aliases:        []string{"w"},
		Syntax:         "!r%1ex",
		Action:         "ex_write",
		ParameterNames: []string{"", "", "filename"},
		Documentation:  "Write the buffer to +filename+ or to the current file.",
	},
	{
		Name:          "quit",
		Syntax:        "!",
		Action:        "ex_quit",
		Documentation: "Close the current view. With ! any unsaved changes are discarded.",
	},
	{
		Name:           "wq",
		Syntax:         "!r%1ex",
		Action:         "ex_wq",
		ParameterNames: []string{"", "", "filename"},
		Documentation:  "Write the buffer to +filename+ and close the view.",
	},
	{
		Name:           "xit",
		Aliases:        []string{"exit"},
		Syntax:         "!r%1ex",
		Action:         "ex_xit",
		ParameterNames: []string{"", "", "filename"},
		Documentation:  "Write the buffer if it was modified, then close the view.",
	},
	{
		Name:           "read",
		Aliases:        []string{"r"},
		Syntax:         "r1exm",
		Action:         "ex_read",
		ParameterNames: []string{"", "", "filename"},
		Documentation:  "Insert the contents of +filename+ below the addressed line.",
	},
	{
		Name:          "substitute",
		Aliases:       []string{"s"},
		Syntax:        "r~cm|",
		Action:        "ex_substitute",
		Documentation: "Replace text matching a pattern on the addressed lines.",
	},
	{
		Name:          "global",
		Syntax:        "!r/em|",
		Action:        "ex_global",
		Documentation: "Run +command+ on every line matching the pattern; with ! on every line not matching.",
	},
	{
		Name:          "delete",
		Syntax:        "rRcm",
		Action:        "ex_delete",
		Documentation: "Delete the addressed lines into +register+.",
	},
	{
		Name:          "yank",
		Syntax:        "rRc",
		Action:        "ex_yank",
		Documentation: "Copy the addressed lines into +register+.",
	},
	{
		Name:          "put",
		Syntax:        "rRm",
		Action:        "ex_put",
		Documentation: "Insert the contents of +register+ below the addressed line.",
	},
	{
		Name:          "move",
		Syntax:        "rLm",
		Action:        "ex_move",
		Documentation: "Move the addressed lines below +line+.",
	},
	{
		Name:          "copy",
		Aliases:       []string{"t"},
		Syntax:        "rLm",
		Action:        "ex_copy",
		Documentation: "Copy the addressed lines below +line+.",
	},
	{
		Name:          "print",
		Aliases:       []string{"p"},
		Syntax:        "rc",
		Action:        "ex_print",
		Documentation: "Print the addressed lines.",
	},
	{
		Name:          "number",
		Syntax:        "rc",
		Action:        "ex_number",
		Documentation: "Print the addressed lines with line numbers.",
	},
	{
		Name:          "set",
		Syntax:        "e",
		Action:        "ex_set",
		Documentation: "Show or change editor options.",
	},
	{
		Name:           "buffer",
		Aliases:        []string{"b"},
		Syntax:         "1e",
		Action:         "ex_buffer",
		ParameterNames: []string{"", "", "buffer"},
		Documentation:  "Switch the view to +buffer+.",
	},
	{
		Name:           "bdelete",
		Syntax:         "!1e",
		Action:         "ex_bdelete",
		ParameterNames: []string{"", "", "buffer"},
		Documentation:  "Close +buffer+, or the current buffer when no argument is given.",
	},
	{
		Name:           "next",
		Aliases:        []string{"n"},
		Syntax:         "!+ex",
		Action:         "ex_next",
		ParameterNames: []string{"", "", "filename"},
		Documentation:  "Edit the next file in the argument list.",
	},
	{
		Name:          "previous",
		Aliases:       []string{"prev"},
		Syntax:        "!+",
		Action:        "ex_previous",
		Documentation: "Edit the previous file in the argument list.",
	},
	{
		Name:           "split",
		Syntax:         "!+1ex",
		Action:         "ex_split",
		ParameterNames: []string{"", "", "filename"},
		Documentation:  "Split the view horizontally, editing +filename+ in the new part.",
	},
	{
		Name:           "vsplit",
		Syntax:         "!+1ex",
		Action:         "ex_vsplit",
		ParameterNames: []string{"", "", "filename"},
		Documentation:  "Split the view vertically, editing +filename+ in the new part.",
	},
	{
		Name:          "close",
		Syntax:        "!",
		Action:        "ex_close",
		Documentation: "Close the current split.",
	},
	{
		Name:           "new",
		Syntax:         "+1ex",
		Action:         "ex_new",
		ParameterNames: []string{"", "", "filename"},
		Documentation:  "Split the view and edit an empty buffer or +filename+.",
	},
	{
		Name:           "tabedit",
		Aliases:        []string{"tabnew"},
		Syntax:         "!+1ex",
		Action:         "ex_tabedit",
		ParameterNames: []string{"", "", "filename"},
		Documentation:  "Edit +filename+ in a new tab.",
	},
	{
		Name:          "tabclose",
		Syntax:        "!",
		Action:        "ex_tabclose",
		Documentation: "Close the current tab.",
	},
	{
		Name:           "cd",
		Aliases:        []string{"chdir"},
		Syntax:         "1ex",
		Action:         "ex_cd",
		ParameterNames: []string{"", "", "directory"},
		Documentation:  "Change the current directory to +directory+.",
	},
	{
		Name:          "pwd",
		Action:        "ex_pwd",
		Documentation: "Print the current directory.",
	},
	{
		Name:          "undo",
		Syntax:        "m",
		Action:        "ex_undo",
		Documentation: "Undo the last change.",
	},
	{
		Name:          "redo",
		Syntax:        "m",
		Action:        "ex_redo",
		Documentation: "Redo the last undone change.",
	},
	{
		Name:           "help",
		Syntax:         "1e",
		Action:         "ex_help",
		ParameterNames: []string{"", "", "subject"},
		Documentation:  "Show help for +subject+.",
	},
	{
		Name:          "nohlsearch",
		Action:        "ex_nohlsearch",
		Documentation: "Stop highlighting search matches.",
	},
	{
		Name:           "bang",
		Syntax:         "rEx|",
		Action:         "ex_bang",
		ParameterNames: []string{"", "", "command"},
		Documentation:  "Filter the addressed lines through a shell +command+.",
	},
}

// DefaultMap returns a freshly built map holding the standard ex
// command set. Embedding applications call it once at startup and add
// their own definitions afterwards; there is no shared default
// instance.
func DefaultMap(opts Options) (*Map, error) {
	m := NewMap(opts)
	for _, def := range defaultCommands {
		if _, err := m.Define(def); err != nil {
			return nil, fmt.Errorf("defining default command %s: %w", def.Name, err)
		}
	}
	return m, nil
}
