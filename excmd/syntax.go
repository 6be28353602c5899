// File: syntax.go
// Title: Ex Command Syntax Flags
// Description: Defines the single-character syntax flags that describe the
//              argument grammar of an ex command. The flags are stored and
//              exposed by this package and consumed by the command line
//              parser of the embedding application.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28

package excmd

// Syntax flags. Each flag is a single character in a mapping's syntax
// string and is independently togglable. The registry never interprets
// the flags beyond hint rendering; they describe what the downstream
// argument parser must accept.
const (
	// FlagForce allows '!' directly after the command name.
	FlagForce = '!'

	// FlagRange allows a range prefix.
	FlagRange = 'r'

	// FlagWholeFile defaults the range to the whole file when none is given.
	FlagWholeFile = '%'

	// FlagPlusCommand allows a trailing "+command" argument.
	FlagPlusCommand = '+'

	// FlagCount allows a count > 0.
	FlagCount = 'c'

	// FlagExtra allows extra argument(s).
	FlagExtra = 'e'

	// FlagExtraRequired requires extra argument(s).
	FlagExtraRequired = 'E'

	// FlagExtraOne allows at most one extra argument.
	FlagExtraOne = '1'

	// FlagExpand expands wildcards and filename meta characters in extra
	// arguments.
	FlagExpand = 'x'

	// FlagRegister allows a register designation.
	FlagRegister = 'R'

	// FlagLine allows an optional target line argument.
	FlagLine = 'l'

	// FlagLineRequired requires a target line argument.
	FlagLineRequired = 'L'

	// FlagSubstitute allows a /pattern/replacement/flags argument.
	FlagSubstitute = '~'

	// FlagPattern allows a /pattern/flags argument.
	FlagPattern = '/'

	// FlagNoBar disables the implicit trailing-bar command terminator.
	FlagNoBar = '|'

	// FlagModifies marks the command as modifying the document, for undo
	// and dirty-state bookkeeping by the caller.
	FlagModifies = 'm'
)
