// File: errors.go
// Title: ACDC Front End Errors
// Description: Lexical and parse errors carrying the source position of the
//              offending token. Both expose an error code so the driver can
//              map them to exit statuses.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17

package parser

import (
	"fmt"

	mdwerror "github.com/msto63/acdc/foundation/core/error"
)

// LexicalError reports a rune sequence that does not form a token
type LexicalError struct {
	Message string
	Pos     Position
	Char    rune
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Code returns ACDC_LEXICAL
func (e *LexicalError) Code() mdwerror.Code {
	return mdwerror.CodeACDCLexical
}

// Position returns where the error occurred
func (e *LexicalError) Position() Position {
	return e.Pos
}

// ParseError reports a token sequence that does not form a statement.
// Internal marks conditions the lookahead checks should have ruled out.
type ParseError struct {
	Message  string
	Pos      Position
	Token    Token
	Internal bool
}

func (e *ParseError) Error() string {
	near := "end of input"
	if e.Token.Kind != TokenEOF {
		near = "'" + e.Token.Lexeme + "'"
	}
	return fmt.Sprintf("parse error at line %d, column %d: %s (near %s)",
		e.Pos.Line, e.Pos.Column, e.Message, near)
}

// Code returns ACDC_SYNTAX, or INTERNAL for internal errors
func (e *ParseError) Code() mdwerror.Code {
	if e.Internal {
		return mdwerror.CodeInternal
	}
	return mdwerror.CodeACDCSyntax
}

// Position returns where the error occurred
func (e *ParseError) Position() Position {
	return e.Pos
}

func parseErrorAt(tok Token, format string, args ...interface{}) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...), Pos: tok.Pos, Token: tok}
}

func internalErrorAt(tok Token, format string, args ...interface{}) *ParseError {
	pe := parseErrorAt(tok, format, args...)
	pe.Internal = true
	return pe
}
