// File: lexer_test.go
// Title: ACDC Lexer Tests
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17

package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/msto63/acdc/foundation/acdc/lang"
)

func lexAll(t *testing.T, input string) []Token {
	t.Helper()
	ts, err := Tokenize(input, lang.Default().Reserved)
	if err != nil {
		t.Fatalf("Tokenize(%q) error = %v", input, err)
	}
	return ts.Tokens()
}

func lexError(t *testing.T, input string, reserved lang.ReservedSet) *LexicalError {
	t.Helper()
	_, err := Tokenize(input, reserved)
	if err == nil {
		t.Fatalf("Tokenize(%q) succeeded, want lexical error", input)
	}
	var lexErr *LexicalError
	if !errors.As(err, &lexErr) {
		t.Fatalf("Tokenize(%q) error = %T, want *LexicalError", input, err)
	}
	return lexErr
}

func TestCharStream(t *testing.T) {
	cs := NewCharStream("aé")

	if cs.EOF() {
		t.Fatal("EOF() = true on fresh stream")
	}
	if got := cs.Peek(); got != 'a' {
		t.Errorf("Peek() = %q, want 'a'", got)
	}
	if got := cs.Read(); got != 'a' {
		t.Errorf("Read() = %q, want 'a'", got)
	}
	if got := cs.Read(); got != 'é' {
		t.Errorf("Read() = %q, want 'é'", got)
	}
	if !cs.EOF() {
		t.Error("EOF() = false after last rune")
	}
	for i := 0; i < 3; i++ {
		if got := cs.Read(); got != EOF {
			t.Errorf("Read() past end = %q, want EOF", got)
		}
	}
	if got := cs.Peek(); got != EOF {
		t.Errorf("Peek() past end = %q, want EOF", got)
	}
	if got := cs.Offset(); got != 2 {
		t.Errorf("Offset() = %d, want 2", got)
	}
}

func TestSingleRuneTokens(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"=", TokenAssign},
		{"(", TokenLParen},
		{")", TokenRParen},
		{"+", TokenPlus},
		{"-", TokenMinus},
		{"*", TokenTimes},
		{"/", TokenDivide},
		{"^", TokenExponent},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			toks := lexAll(t, tt.input)
			if len(toks) != 2 {
				t.Fatalf("got %d tokens, want 2", len(toks))
			}
			if toks[0].Kind != tt.want || toks[0].Lexeme != tt.input {
				t.Errorf("token = %v %q, want %v %q", toks[0].Kind, toks[0].Lexeme, tt.want, tt.input)
			}
			if toks[0].Pos != (Position{Line: 1, Column: 1, Offset: 0}) {
				t.Errorf("Pos = %+v, want 1:1", toks[0].Pos)
			}
			if toks[1].Kind != TokenEOF || toks[1].Lexeme != "" {
				t.Errorf("last token = %v, want END_OF_INPUT", toks[1])
			}
		})
	}
}

func TestIntLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"0", 0},
		{"7", 7},
		{"42", 42},
		{"1000", 1000},
		{"9223372036854775807", 9223372036854775807},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks := lexAll(t, tt.input)
			if len(toks) != 2 || toks[0].Kind != TokenIntLiteral {
				t.Fatalf("tokens = %v, want one INT_LITERAL", toks)
			}
			got, ok := toks[0].IntValue()
			if !ok || got != tt.want {
				t.Errorf("IntValue() = %d, %v, want %d, true", got, ok, tt.want)
			}
			if toks[0].Lexeme != tt.input {
				t.Errorf("Lexeme = %q, want %q", toks[0].Lexeme, tt.input)
			}
		})
	}
}

func TestLexicalErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
		line    int
		column  int
	}{
		{"leading zero", "01", "leading zero", 1, 1},
		{"leading zeros", "007", "leading zero", 1, 1},
		{"leading zero after assign", "a=01", "leading zero", 1, 3},
		{"out of range", "9223372036854775808", "out of range", 1, 1},
		{"keyword at end", "i", "end of input", 1, 1},
		{"print at end", "  p", "end of input", 1, 3},
		{"keyword then space", "i a", "followed by a variable", 1, 1},
		{"keyword then reserved", "if", "followed by a variable", 1, 1},
		{"keyword then digit", "p1", "followed by a variable", 1, 1},
		{"reserved letter", "f", "reserved letter", 1, 1},
		{"reserved after variable", "abs", "reserved letter", 1, 3},
		{"upper case", "A", "unexpected character", 1, 1},
		{"symbol", "a=3%2", "unexpected character", 1, 4},
		{"second line", "a\n  #", "unexpected character", 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := lexError(t, tt.input, lang.Default().Reserved)
			if !strings.Contains(err.Message, tt.message) {
				t.Errorf("Message = %q, want containing %q", err.Message, tt.message)
			}
			if err.Pos.Line != tt.line || err.Pos.Column != tt.column {
				t.Errorf("Pos = %d:%d, want %d:%d", err.Pos.Line, err.Pos.Column, tt.line, tt.column)
			}
		})
	}
}

func TestLexicalErrorString(t *testing.T) {
	err := lexError(t, "01", lang.Default().Reserved)
	want := "lexical error at line 1, column 1: integer literal cannot have a leading zero"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestKeywordTokens(t *testing.T) {
	tests := []struct {
		input  string
		kind   Kind
		lexeme string
		name   string
	}{
		{"ia", TokenIntDeclare, "ia", "a"},
		{"pz", TokenPrint, "pz", "z"},
		{"  ib", TokenIntDeclare, "ib", "b"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks := lexAll(t, tt.input)
			if len(toks) != 2 {
				t.Fatalf("got %d tokens, want 2", len(toks))
			}
			tok := toks[0]
			if tok.Kind != tt.kind || tok.Lexeme != tt.lexeme {
				t.Errorf("token = %v %q, want %v %q", tok.Kind, tok.Lexeme, tt.kind, tt.lexeme)
			}
			if name, ok := tok.Name(); !ok || name != tt.name {
				t.Errorf("Name() = %q, %v, want %q, true", name, ok, tt.name)
			}
			if _, ok := tok.IntValue(); ok {
				t.Error("IntValue() ok on keyword token")
			}
		})
	}
}

func TestVariableTokens(t *testing.T) {
	toks := lexAll(t, "abc=xy")
	if len(toks) != 4 {
		t.Fatalf("got %d tokens, want 4: %v", len(toks), toks)
	}
	if name, _ := toks[0].Name(); name != "abc" || toks[0].Kind != TokenVarRef {
		t.Errorf("first token = %v, want VAR_REF(abc)", toks[0])
	}
	if name, _ := toks[2].Name(); name != "xy" || toks[2].Pos.Column != 5 {
		t.Errorf("third token = %v at %v, want VAR_REF(xy) at column 5", toks[2], toks[2].Pos)
	}
}

func TestReservedSetByRevision(t *testing.T) {
	v1, err := lang.Resolve("^1.0")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	ts, err := Tokenize("l=s", v1.Reserved)
	if err != nil {
		t.Fatalf("revision 1 Tokenize() error = %v", err)
	}
	if ts.Len() != 4 {
		t.Errorf("revision 1 Len() = %d, want 4", ts.Len())
	}

	lexErr := lexError(t, "l=s", lang.Default().Reserved)
	if lexErr.Char != 'l' || lexErr.Pos.Column != 1 {
		t.Errorf("revision 2 error = %v, want reserved 'l' at column 1", lexErr)
	}

	// il is a declaration under 1.0.0 only
	if _, err := Tokenize("il", v1.Reserved); err != nil {
		t.Errorf("revision 1 Tokenize(il) error = %v", err)
	}
	lexError(t, "il", lang.Default().Reserved)
}

func TestPositionTracking(t *testing.T) {
	toks := lexAll(t, "  a =\t3\n+ 4")

	want := []struct {
		kind   Kind
		line   int
		column int
		offset int
	}{
		{TokenVarRef, 1, 3, 2},
		{TokenAssign, 1, 5, 4},
		{TokenIntLiteral, 1, 7, 6},
		{TokenPlus, 2, 1, 8},
		{TokenIntLiteral, 2, 3, 10},
		{TokenEOF, 2, 4, 11},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		got := toks[i]
		if got.Kind != w.kind || got.Pos.Line != w.line || got.Pos.Column != w.column || got.Pos.Offset != w.offset {
			t.Errorf("token %d = %v @%d:%d+%d, want %v @%d:%d+%d",
				i, got.Kind, got.Pos.Line, got.Pos.Column, got.Pos.Offset, w.kind, w.line, w.column, w.offset)
		}
	}
}

func TestLexerWithLine(t *testing.T) {
	lx := NewLexer(NewCharStream("pa"), lang.ReservedSet{}).WithLine(12)
	tok, err := lx.NextToken()
	if err != nil {
		t.Fatalf("NextToken() error = %v", err)
	}
	if tok.Pos.Line != 12 || tok.Pos.Column != 1 {
		t.Errorf("Pos = %v, want 12:1", tok.Pos)
	}
}

func TestEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\r\n"} {
		toks := lexAll(t, input)
		if len(toks) != 1 || toks[0].Kind != TokenEOF {
			t.Errorf("Tokenize(%q) = %v, want only END_OF_INPUT", input, toks)
		}
	}
}

func TestNextTokenAfterEOF(t *testing.T) {
	lx := NewLexer(NewCharStream("a"), lang.Default().Reserved)
	for i := 0; i < 2; i++ {
		if _, err := lx.NextToken(); err != nil {
			t.Fatalf("NextToken() error = %v", err)
		}
	}
	tok, err := lx.NextToken()
	if err != nil || tok.Kind != TokenEOF {
		t.Errorf("NextToken() after EOF = %v, %v, want END_OF_INPUT", tok, err)
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		TokenAssign:     "ASSIGN",
		TokenIntDeclare: "INT_DECLARE",
		TokenIntLiteral: "INT_LITERAL",
		TokenVarRef:     "VAR_REF",
		TokenEOF:        "END_OF_INPUT",
		Kind(99):        "Kind(99)",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("Kind.String() = %v, want %v", got, want)
		}
	}
}
