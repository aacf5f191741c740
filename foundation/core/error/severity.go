// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so that the logger can
//              pick a level for them and the driver can decide whether a
//              failure is a problem in the user's script or in the tool.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-17 v0.2.0: Severity mapping for ACDC codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a problem in user input, e.g. a malformed statement
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates an environment problem such as a broken config file
	SeverityHigh

	// SeverityCritical indicates a bug in the toolchain itself
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level indicates a toolchain fault
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError, CodeIO:
		return SeverityHigh

	case CodeACDCLexical, CodeACDCSyntax,
		CodeACDCUnsupportedNode, CodeACDCUndeclared, CodeACDCRedeclared,
		CodeInvalidInput, CodeNotFound, CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
