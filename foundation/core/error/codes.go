// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the ACDC toolchain: the lexer and
//              parser front end, the dc code generator, configuration and
//              the command-line driver.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-17 v0.2.0: ACDC front end and code generator codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"
	CodeIO           Code = "IO_ERROR"

	// ACDC front end
	CodeACDCLexical Code = "ACDC_LEXICAL"
	CodeACDCSyntax  Code = "ACDC_SYNTAX"

	// ACDC code generation
	CodeACDCUnsupportedNode Code = "ACDC_UNSUPPORTED_NODE"
	CodeACDCUndeclared      Code = "ACDC_UNDECLARED"
	CodeACDCRedeclared      Code = "ACDC_REDECLARED"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeMissingConfig    Code = "MISSING_CONFIG"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout, CodeIO,
		CodeACDCLexical, CodeACDCSyntax,
		CodeACDCUnsupportedNode, CodeACDCUndeclared, CodeACDCRedeclared,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeACDCLexical, CodeACDCSyntax:
		return "frontend"
	case CodeACDCUnsupportedNode, CodeACDCUndeclared, CodeACDCRedeclared:
		return "codegen"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the driver uses for this code.
// Source errors exit with 1, environment problems with 2, everything else
// with 3.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "frontend", "codegen":
		return 1
	case "configuration":
		return 2
	default:
		if c == CodeIO || c == CodeNotFound {
			return 2
		}
		return 3
	}
}
