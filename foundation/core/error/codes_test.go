// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for error code validation, categorization and the
//              exit status mapping used by the driver.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17

package error

import (
	"testing"
)

func TestCodeIsValid(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want bool
	}{
		{"known code", CodeACDCLexical, true},
		{"config code", CodeInvalidConfig, true},
		{"unknown code", Code("INVALID_CODE"), false},
		{"empty code", Code(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.IsValid(); got != tt.want {
				t.Errorf("Code.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeCategoryAndExitCode(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		exit     int
	}{
		{CodeACDCLexical, "frontend", 1},
		{CodeACDCSyntax, "frontend", 1},
		{CodeACDCUndeclared, "codegen", 1},
		{CodeInvalidConfig, "configuration", 2},
		{CodeIO, "generic", 2},
		{CodeInternal, "generic", 3},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %v, want %v", got, tt.category)
			}
			if got := tt.code.ExitCode(); got != tt.exit {
				t.Errorf("ExitCode() = %v, want %v", got, tt.exit)
			}
		})
	}
}
