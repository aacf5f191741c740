// File: tokenstream.go
// Title: ACDC Token Sequence
// Description: Append-only token buffer with a read cursor.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17

package parser

import (
	"fmt"
	"strings"
)

// TokenStream holds the tokens of one statement. It is filled with Append
// and then read through Peek and Read.
type TokenStream struct {
	tokens []Token
	cursor int
}

// NewTokenStream creates a stream, optionally pre-filled
func NewTokenStream(tokens ...Token) *TokenStream {
	ts := &TokenStream{}
	ts.tokens = append(ts.tokens, tokens...)
	return ts
}

// Append adds a token to the end of the stream
func (ts *TokenStream) Append(tok Token) {
	ts.tokens = append(ts.tokens, tok)
}

// Peek returns the current token without consuming it. Peeking past the
// end panics, as Read does.
func (ts *TokenStream) Peek() Token {
	if ts.cursor >= len(ts.tokens) {
		panic(ts.overrun("Peek"))
	}
	return ts.tokens[ts.cursor]
}

// Read returns the current token and moves the cursor forward. Callers must
// stop once END_OF_INPUT has been read; reading past it panics.
func (ts *TokenStream) Read() Token {
	if ts.cursor >= len(ts.tokens) {
		panic(ts.overrun("Read"))
	}
	tok := ts.tokens[ts.cursor]
	ts.cursor++
	return tok
}

// Advance is an alias for Read
func (ts *TokenStream) Advance() Token {
	return ts.Read()
}

// Len returns the total number of tokens
func (ts *TokenStream) Len() int {
	return len(ts.tokens)
}

// Remaining returns the number of unread tokens
func (ts *TokenStream) Remaining() int {
	return len(ts.tokens) - ts.cursor
}

// Tokens returns a copy of all tokens
func (ts *TokenStream) Tokens() []Token {
	out := make([]Token, len(ts.tokens))
	copy(out, ts.tokens)
	return out
}

// String lists the tokens separated by spaces
func (ts *TokenStream) String() string {
	parts := make([]string, len(ts.tokens))
	for i, tok := range ts.tokens {
		parts[i] = tok.String()
	}
	return strings.Join(parts, " ")
}

func (ts *TokenStream) overrun(op string) string {
	if n := len(ts.tokens); n > 0 && ts.tokens[n-1].Kind == TokenEOF {
		return fmt.Sprintf("parser: TokenStream.%s past END_OF_INPUT (%d tokens consumed)", op, ts.cursor)
	}
	return fmt.Sprintf("parser: TokenStream.%s on unterminated stream of %d tokens", op, len(ts.tokens))
}
