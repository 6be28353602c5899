// File: mapping.go
// Title: Ex Command Mapping
// Description: Implements the Mapping type, one registered ex command
//              definition with its names, scope selector, syntax flags,
//              parameter names, documentation, implementation reference
//              and optional completion provider. Mappings are immutable
//              after construction except for the alias list and the
//              completion provider.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-29

package excmd

import (
	"errors"
	"strings"
)

// Handler is the embedded form of a command implementation. The argument
// is the parsed command produced by the embedding application's ex
// parser; the registry never constructs or inspects it.
type Handler func(cmd interface{}) error

// CompletionProvider supplies argument completions for a command. It is
// stored here for the embedding application; the registry never calls it.
type CompletionProvider interface {
	// Complete returns completions for the given partial argument.
	Complete(prefix string) ([]string, error)
}

// Default parameter labels, used by hint rendering when a mapping does
// not override them.
const (
	defaultRegisterLabel = "register"
	defaultTargetLabel   = "command"
	defaultArgumentLabel = "argument"
)

// Parameter name slots in a MappingDef's ParameterNames list.
const (
	paramRegister = iota
	paramTarget
	paramArgument
)

// docMarker delimits parameter name placeholders in documentation text,
// as in "Write the buffer to +filename+."
const docMarker = '+'

// MappingDef describes one command for Map.Define. Exactly one of
// Action and Handler must be set.
type MappingDef struct {
	// Name is the primary name, used in error messages and hints.
	Name string

	// Aliases lists alternate names resolving to the same command.
	Aliases []string

	// Syntax holds the syntax flag characters (see the Flag constants).
	Syntax string

	// Action is a symbolic reference to an externally defined action,
	// resolved by the embedding application at execution time.
	Action string

	// Handler is an embedded implementation taking the parsed command.
	Handler Handler

	// ScopeSelector restricts where the command is visible. Empty means
	// universally visible.
	ScopeSelector string

	// ParameterNames holds display labels for up to three argument
	// slots: register, line/command target, free-form argument.
	ParameterNames []string

	// Documentation describes the command. Substrings delimited by '+'
	// denote parameter name placeholders.
	Documentation string

	// Completion optionally provides argument completions.
	Completion CompletionProvider
}

// Mapping is one registered ex command definition.
type Mapping struct {
	names          []string
	scopeSelector  string
	syntax         string
	parameterNames []string
	documentation  string
	action         string
	handler        Handler
	completion     CompletionProvider
}

// NewMapping builds a Mapping from a definition. It fails if the
// definition has no primary name or does not carry exactly one
// implementation form.
func NewMapping(def MappingDef) (*Mapping, error) {
	if strings.TrimSpace(def.Name) == "" {
		return nil, errors.New("command needs at least one name")
	}
	if def.Action == "" && def.Handler == nil {
		return nil, errors.New("command " + def.Name + " needs an action or a handler")
	}
	if def.Action != "" && def.Handler != nil {
		return nil, errors.New("command " + def.Name + " cannot have both an action and a handler")
	}

	names := make([]string, 0, 1+len(def.Aliases))
	names = append(names, def.Name)
	for _, alias := range def.Aliases {
		if alias == "" || containsName(names, alias) {
			continue
		}
		names = append(names, alias)
	}

	params := make([]string, len(def.ParameterNames))
	copy(params, def.ParameterNames)

	return &Mapping{
		names:          names,
		scopeSelector:  def.ScopeSelector,
		syntax:         def.Syntax,
		parameterNames: params,
		documentation:  def.Documentation,
		action:         def.Action,
		handler:        def.Handler,
		completion:     def.Completion,
	}, nil
}

// Name returns the primary name of the command.
func (m *Mapping) Name() string {
	return m.names[0]
}

// Names returns all names and aliases of the command, primary name first.
func (m *Mapping) Names() []string {
	names := make([]string, len(m.names))
	copy(names, m.names)
	return names
}

// ScopeSelector returns the scope restriction, or "" when the command is
// universally visible.
func (m *Mapping) ScopeSelector() string {
	return m.scopeSelector
}

// Syntax returns the syntax flag string.
func (m *Mapping) Syntax() string {
	return m.syntax
}

// ParameterNames returns the display labels for the command's argument
// slots.
func (m *Mapping) ParameterNames() []string {
	params := make([]string, len(m.parameterNames))
	copy(params, m.parameterNames)
	return params
}

// Documentation returns the raw documentation text, placeholders
// included.
func (m *Mapping) Documentation() string {
	return m.documentation
}

// Action returns the symbolic action name, or "" when the command
// carries an embedded handler.
func (m *Mapping) Action() string {
	return m.action
}

// Handler returns the embedded implementation, or nil when the command
// carries a symbolic action.
func (m *Mapping) Handler() Handler {
	return m.handler
}

// Completion returns the argument completion provider, or nil.
func (m *Mapping) Completion() CompletionProvider {
	return m.completion
}

// SetCompletion assigns the argument completion provider. Completion is
// mutable after construction.
func (m *Mapping) SetCompletion(provider CompletionProvider) {
	m.completion = provider
}

// HasFlag reports whether the syntax string contains the given flag.
func (m *Mapping) HasFlag(flag rune) bool {
	return strings.ContainsRune(m.syntax, flag)
}

// Modifies reports whether the command is marked as modifying the
// document.
func (m *Mapping) Modifies() bool {
	return m.HasFlag(FlagModifies)
}

// AddAlias appends an alias. Adding a name the mapping already has is a
// no-op; matching is case-sensitive.
func (m *Mapping) AddAlias(name string) {
	if name == "" || containsName(m.names, name) {
		return
	}
	m.names = append(m.names, name)
}

// RemoveAlias removes an alias. The primary name can never be removed;
// removing a name that is not present is a no-op.
func (m *Mapping) RemoveAlias(name string) {
	for i := 1; i < len(m.names); i++ {
		if m.names[i] == name {
			m.names = append(m.names[:i], m.names[i+1:]...)
			return
		}
	}
}

// SyntaxHint decorates a command name hint with the argument grammar the
// syntax flags describe. The name hint (for example "w[rite][!]") has to
// be passed in because it depends on the full set of registered names;
// Map.SyntaxHint computes it and delegates here. The result looks like
// "[range]w[rite][!] [filename]".
func (m *Mapping) SyntaxHint(commandHint string) string {
	var b strings.Builder

	if m.HasFlag(FlagRange) {
		b.WriteString("[range]")
	}
	b.WriteString(commandHint)

	if m.HasFlag(FlagRegister) {
		b.WriteString(" [" + m.paramName(paramRegister, defaultRegisterLabel) + "]")
	}
	if m.HasFlag(FlagCount) {
		b.WriteString(" [count]")
	}
	if m.HasFlag(FlagPlusCommand) {
		b.WriteString(" [+" + m.paramName(paramTarget, defaultTargetLabel) + "]")
	}

	switch {
	case m.HasFlag(FlagLineRequired):
		b.WriteString(" " + m.paramName(paramTarget, "line"))
	case m.HasFlag(FlagLine):
		b.WriteString(" [" + m.paramName(paramTarget, "line") + "]")
	}

	switch {
	case m.HasFlag(FlagSubstitute):
		b.WriteString(" /pattern/replace/flags")
	case m.HasFlag(FlagPattern):
		b.WriteString(" /pattern/flags")
	}

	switch {
	case m.HasFlag(FlagExtraRequired):
		b.WriteString(" " + m.paramName(paramArgument, defaultArgumentLabel))
	case m.HasFlag(FlagExtra):
		b.WriteString(" [" + m.paramName(paramArgument, defaultArgumentLabel) + "]")
	}

	return b.String()
}

// RenderDocumentation returns the documentation text with every
// +placeholder+ replaced by render(placeholder). A nil render function
// or an unterminated marker leaves the text untouched.
func (m *Mapping) RenderDocumentation(render func(name string) string) string {
	if render == nil || !strings.ContainsRune(m.documentation, docMarker) {
		return m.documentation
	}

	var b strings.Builder
	rest := m.documentation
	for {
		open := strings.IndexByte(rest, docMarker)
		if open < 0 {
			b.WriteString(rest)
			return b.String()
		}
		end := strings.IndexByte(rest[open+1:], docMarker)
		if end < 0 {
			b.WriteString(rest)
			return b.String()
		}
		b.WriteString(rest[:open])
		b.WriteString(render(rest[open+1 : open+1+end]))
		rest = rest[open+end+2:]
	}
}

func (m *Mapping) paramName(slot int, fallback string) string {
	if slot < len(m.parameterNames) && strings.TrimSpace(m.parameterNames[slot]) != "" {
		return m.parameterNames[slot]
	}
	return fallback
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
