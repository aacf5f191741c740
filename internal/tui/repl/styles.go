package repl

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	InputStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	ASTStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	CodeStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			PaddingLeft(2)

	OutputStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError)
)
