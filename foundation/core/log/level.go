// File: level.go
// Title: Log Level Definitions
// Description: Log levels used to filter compiler diagnostics and trace
//              output. Each level carries a lipgloss style for the console
//              formatter.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-17 v0.2.0: Lipgloss styles replace raw ANSI codes, audit level removed

package log

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace emits one entry per token and per reduction
	LevelTrace Level = iota

	// LevelDebug emits one entry per compiled line
	LevelDebug

	// LevelInfo emits run summaries
	LevelInfo

	// LevelWarn reports recoverable problems such as a missing golden file
	LevelWarn

	// LevelError reports failed compilations and I/O failures
	LevelError

	// LevelOff disables all output
	LevelOff
)

var levelStyles = map[Level]lipgloss.Style{
	LevelTrace: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
	LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
}

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelOff:
		return "off"
	default:
		return "unknown"
	}
}

// ShortString returns the three-letter tag printed by the text formatters
func (l Level) ShortString() string {
	switch l {
	case LevelTrace:
		return "TRC"
	case LevelDebug:
		return "DBG"
	case LevelInfo:
		return "INF"
	case LevelWarn:
		return "WRN"
	case LevelError:
		return "ERR"
	default:
		return "???"
	}
}

// Style returns the console style for the level
func (l Level) Style() lipgloss.Style {
	if s, ok := levelStyles[l]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// ShouldLog returns true if this level passes the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l != LevelOff && l >= minLevel
}

// ParseLevel parses a string into a log level
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "trc":
		return LevelTrace, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "inf", "":
		return LevelInfo, nil
	case "warn", "wrn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "off", "none", "quiet":
		return LevelOff, nil
	default:
		return LevelInfo, &ParseError{Input: level, Type: "level"}
	}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid log " + e.Type + ": " + e.Input
}

// DefaultLevel returns the level used when nothing is configured
func DefaultLevel() Level {
	return LevelWarn
}
