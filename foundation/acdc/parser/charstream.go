// File: charstream.go
// Title: ACDC Character Source
// Description: Rune cursor over one line of source text with single rune
//              lookahead.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17

package parser

// EOF is returned by Read and Peek once the input is exhausted
const EOF rune = -1

// CharStream yields the runes of its input one at a time
type CharStream struct {
	input []rune
	pos   int
}

// NewCharStream creates a stream over input
func NewCharStream(input string) *CharStream {
	return &CharStream{input: []rune(input)}
}

// Read returns the next rune and advances, or EOF at the end. Reading past
// the end keeps returning EOF.
func (cs *CharStream) Read() rune {
	if cs.pos >= len(cs.input) {
		return EOF
	}
	r := cs.input[cs.pos]
	cs.pos++
	return r
}

// Peek returns the next rune without advancing
func (cs *CharStream) Peek() rune {
	if cs.pos >= len(cs.input) {
		return EOF
	}
	return cs.input[cs.pos]
}

// EOF reports whether every rune has been read
func (cs *CharStream) EOF() bool {
	return cs.pos >= len(cs.input)
}

// Offset returns the number of runes consumed so far
func (cs *CharStream) Offset() int {
	return cs.pos
}
