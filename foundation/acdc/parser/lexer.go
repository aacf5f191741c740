// File: lexer.go
// Title: ACDC Lexical Analyzer
// Description: Converts one line of ACDC source into a token sequence
//              terminated by END_OF_INPUT, tracking the line and column of
//              every token for diagnostics.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17

package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/msto63/acdc/foundation/acdc/lang"
)

// Lexer produces tokens from a CharStream
type Lexer struct {
	cs       *CharStream
	reserved lang.ReservedSet
	line     int
	column   int
}

// NewLexer creates a lexer over cs. Letters in reserved never start a
// variable name. A zero reserved set selects the default revision.
func NewLexer(cs *CharStream, reserved lang.ReservedSet) *Lexer {
	if reserved.IsZero() {
		reserved = lang.Default().Reserved
	}
	return &Lexer{cs: cs, reserved: reserved, line: 1}
}

// WithLine sets the line number of the first rune, so positions refer to
// the line's place in a larger file
func (l *Lexer) WithLine(line int) *Lexer {
	if line > 0 {
		l.line = line
	}
	return l
}

// Tokenize reads tokens up to and including END_OF_INPUT
func (l *Lexer) Tokenize() (*TokenStream, error) {
	ts := NewTokenStream()
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		ts.Append(tok)
		if tok.Kind == TokenEOF {
			return ts, nil
		}
	}
}

// NextToken returns the next token. After END_OF_INPUT it keeps returning
// END_OF_INPUT.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()

	if l.cs.EOF() {
		return newEOFToken(l.here()), nil
	}

	pos := l.here()
	r := l.read()

	if kind, ok := singleRuneKinds[r]; ok {
		return newSymbolToken(kind, r, pos), nil
	}

	switch r {
	case 'i':
		return l.keyword(TokenIntDeclare, r, pos)
	case 'p':
		return l.keyword(TokenPrint, r, pos)
	}

	switch {
	case isDigit(r):
		return l.intLiteral(r, pos)
	case l.reserved.IsVariable(r):
		return l.variable(r, pos), nil
	case l.reserved.Contains(r):
		return Token{}, &LexicalError{
			Message: fmt.Sprintf("reserved letter %q cannot be used as a variable", r),
			Pos:     pos,
			Char:    r,
		}
	default:
		return Token{}, &LexicalError{
			Message: fmt.Sprintf("unexpected character %q", r),
			Pos:     pos,
			Char:    r,
		}
	}
}

func (l *Lexer) skipWhitespace() {
	for {
		switch l.cs.Peek() {
		case ' ', '\t', '\r', '\n':
			l.read()
		default:
			return
		}
	}
}

// read consumes one rune and advances the position
func (l *Lexer) read() rune {
	r := l.cs.Read()
	if r == EOF {
		return r
	}
	if r == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
	return r
}

// here is the position of the next unread rune
func (l *Lexer) here() Position {
	return Position{Line: l.line, Column: l.column + 1, Offset: l.cs.Offset()}
}

// keyword lexes "i<var>" or "p<var>". The follower must come immediately
// after the keyword letter.
func (l *Lexer) keyword(kind Kind, kw rune, pos Position) (Token, error) {
	follower := l.cs.Peek()
	if follower == EOF {
		return Token{}, &LexicalError{
			Message: fmt.Sprintf("keyword %q at end of input, expected a variable name", kw),
			Pos:     pos,
			Char:    kw,
		}
	}
	if !l.reserved.IsVariable(follower) {
		return Token{}, &LexicalError{
			Message: fmt.Sprintf("keyword %q must be followed by a variable name, found %q", kw, follower),
			Pos:     pos,
			Char:    follower,
		}
	}
	l.read()
	name := string(follower)
	return newNamedToken(kind, string(kw)+name, name, pos), nil
}

func (l *Lexer) intLiteral(first rune, pos Position) (Token, error) {
	if first == '0' && isDigit(l.cs.Peek()) {
		return Token{}, &LexicalError{
			Message: "integer literal cannot have a leading zero",
			Pos:     pos,
			Char:    first,
		}
	}

	var b strings.Builder
	b.WriteRune(first)
	for isDigit(l.cs.Peek()) {
		b.WriteRune(l.read())
	}

	lexeme := b.String()
	value, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return Token{}, &LexicalError{
			Message: fmt.Sprintf("integer literal %s is out of range", lexeme),
			Pos:     pos,
			Char:    first,
		}
	}
	return newIntLiteralToken(lexeme, value, pos), nil
}

func (l *Lexer) variable(first rune, pos Position) Token {
	var b strings.Builder
	b.WriteRune(first)
	for l.reserved.IsVariable(l.cs.Peek()) {
		b.WriteRune(l.read())
	}
	name := b.String()
	return newNamedToken(TokenVarRef, name, name, pos)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Tokenize lexes input with the given reserved set
func Tokenize(input string, reserved lang.ReservedSet) (*TokenStream, error) {
	return NewLexer(NewCharStream(input), reserved).Tokenize()
}
