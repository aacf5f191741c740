// File: token.go
// Title: ACDC Tokens
// Description: Token kinds and the Token value produced by the lexer. The
//              payload of a token (literal value or variable name) is only
//              reachable through checked accessors, and tokens are built
//              through kind-specific constructors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17

package parser

import (
	"fmt"

	"github.com/msto63/acdc/foundation/acdc/ast"
)

// Position locates a token in the source
type Position = ast.Position

// Kind represents the type of a lexical token
type Kind int

const (
	TokenEOF Kind = iota

	// Single rune tokens
	TokenAssign   // =
	TokenLParen   // (
	TokenRParen   // )
	TokenPlus     // +
	TokenMinus    // -
	TokenTimes    // *
	TokenDivide   // /
	TokenExponent // ^

	// Keyword tokens, carrying a variable name
	TokenIntDeclare // ia
	TokenPrint      // pa

	// Operands
	TokenIntLiteral // 42
	TokenVarRef     // a
)

var kindNames = map[Kind]string{
	TokenEOF:        "END_OF_INPUT",
	TokenAssign:     "ASSIGN",
	TokenLParen:     "LPAREN",
	TokenRParen:     "RPAREN",
	TokenPlus:       "PLUS",
	TokenMinus:      "MINUS",
	TokenTimes:      "TIMES",
	TokenDivide:     "DIVIDE",
	TokenExponent:   "EXPONENT",
	TokenIntDeclare: "INT_DECLARE",
	TokenPrint:      "PRINT",
	TokenIntLiteral: "INT_LITERAL",
	TokenVarRef:     "VAR_REF",
}

// String returns the upper-case kind name
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsOperator reports whether k is one of the five arithmetic operators
func (k Kind) IsOperator() bool {
	return k >= TokenPlus && k <= TokenExponent
}

// Operator maps an operator kind to its AST operator
func (k Kind) Operator() (ast.Operator, bool) {
	switch k {
	case TokenPlus:
		return ast.OpPlus, true
	case TokenMinus:
		return ast.OpMinus, true
	case TokenTimes:
		return ast.OpTimes, true
	case TokenDivide:
		return ast.OpDivide, true
	case TokenExponent:
		return ast.OpExponent, true
	default:
		return 0, false
	}
}

var singleRuneKinds = map[rune]Kind{
	'=': TokenAssign,
	'(': TokenLParen,
	')': TokenRParen,
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenTimes,
	'/': TokenDivide,
	'^': TokenExponent,
}

// Token is one lexical token. Tokens are values; nothing modifies a token
// after the lexer returns it.
type Token struct {
	Kind   Kind
	Lexeme string
	Pos    Position

	value int64
	name  string
}

func newSymbolToken(kind Kind, r rune, pos Position) Token {
	return Token{Kind: kind, Lexeme: string(r), Pos: pos}
}

func newIntLiteralToken(lexeme string, value int64, pos Position) Token {
	return Token{Kind: TokenIntLiteral, Lexeme: lexeme, Pos: pos, value: value}
}

// newNamedToken builds INT_DECLARE, PRINT and VAR_REF tokens
func newNamedToken(kind Kind, lexeme, name string, pos Position) Token {
	return Token{Kind: kind, Lexeme: lexeme, Pos: pos, name: name}
}

func newEOFToken(pos Position) Token {
	return Token{Kind: TokenEOF, Pos: pos}
}

// IntValue returns the value of an INT_LITERAL token
func (t Token) IntValue() (int64, bool) {
	if t.Kind != TokenIntLiteral || t.Lexeme == "" {
		return 0, false
	}
	return t.value, true
}

// Name returns the variable name of an INT_DECLARE, PRINT or VAR_REF token
func (t Token) Name() (string, bool) {
	switch t.Kind {
	case TokenIntDeclare, TokenPrint, TokenVarRef:
		return t.name, t.name != ""
	default:
		return "", false
	}
}

// String returns a short form such as VAR_REF(ab) or PLUS
func (t Token) String() string {
	switch t.Kind {
	case TokenEOF:
		return "END_OF_INPUT"
	case TokenIntLiteral, TokenVarRef, TokenIntDeclare, TokenPrint:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Lexeme)
	default:
		return t.Kind.String()
	}
}
