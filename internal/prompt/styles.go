package prompt

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorGood    = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorAccent  = lipgloss.Color("#F59E0B")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	scopeStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	docStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	paramStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Italic(true)

	problemStyle = lipgloss.NewStyle().
			Foreground(colorError)

	resolvedStyle = lipgloss.NewStyle().
			Foreground(colorGood)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)
)
