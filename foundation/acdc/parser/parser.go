// File: parser.go
// Title: ACDC Statement and Expression Parser
// Description: Recognizes the three ACDC statement shapes and builds
//              expression trees with the shunting-yard algorithm. A Parser
//              holds configuration only, so one instance may be shared
//              between goroutines.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17

package parser

import (
	"unicode/utf8"

	"github.com/msto63/acdc/foundation/acdc/ast"
	"github.com/msto63/acdc/foundation/acdc/lang"
	mdwerror "github.com/msto63/acdc/foundation/core/error"
	mdwlog "github.com/msto63/acdc/foundation/core/log"
)

// DefaultMaxInputLength bounds the runes accepted for one line
const DefaultMaxInputLength = 4096

// Parser turns source lines into statements
type Parser struct {
	logger   *mdwlog.Logger
	reserved lang.ReservedSet
	options  Options
}

// Options configures parser behavior
type Options struct {
	Logger         *mdwlog.Logger
	Reserved       lang.ReservedSet
	MaxInputLength int
}

// New creates a parser. A zero Reserved set selects the default language
// revision.
func New(opts Options) (*Parser, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength <= 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}
	if opts.Reserved.IsZero() {
		opts.Reserved = lang.Default().Reserved
	}

	return &Parser{
		logger:   opts.Logger.WithField("component", "acdc-parser"),
		reserved: opts.Reserved,
		options:  opts,
	}, nil
}

// Reserved returns the reserved set the parser lexes with
func (p *Parser) Reserved() lang.ReservedSet {
	return p.reserved
}

// Parse lexes and parses one statement on line 1
func (p *Parser) Parse(input string) (ast.Stmt, error) {
	return p.ParseLine(input, 1)
}

// ParseLine lexes and parses one statement, numbering positions from line
func (p *Parser) ParseLine(input string, line int) (ast.Stmt, error) {
	if n := utf8.RuneCountInString(input); n > p.options.MaxInputLength {
		return nil, mdwerror.Newf("input exceeds maximum length: %d > %d", n, p.options.MaxInputLength).
			WithCode(mdwerror.CodeInvalidInput).
			WithDetail("line", line)
	}

	p.logger.Trace("Starting ACDC parsing", mdwlog.Fields{
		"input": input,
		"line":  line,
	})

	ts, err := p.Lex(input, line)
	if err != nil {
		p.logger.Debug("ACDC lexing failed", mdwlog.Fields{
			"line":  line,
			"error": err.Error(),
		})
		return nil, err
	}

	stmt, err := p.ParseTokens(ts)
	if err != nil {
		p.logger.Debug("ACDC parsing failed", mdwlog.Fields{
			"line":  line,
			"error": err.Error(),
		})
		return nil, err
	}

	p.logger.Trace("ACDC parsing completed", mdwlog.Fields{
		"line":      line,
		"tokens":    ts.Len(),
		"statement": stmt.String(),
	})
	return stmt, nil
}

// Lex tokenizes one line with the parser's reserved set
func (p *Parser) Lex(input string, line int) (*TokenStream, error) {
	return NewLexer(NewCharStream(input), p.reserved).WithLine(line).Tokenize()
}

// ParseTokens parses exactly one statement from ts and requires
// END_OF_INPUT after it
func (p *Parser) ParseTokens(ts *TokenStream) (ast.Stmt, error) {
	if ts.Remaining() == 0 {
		return nil, internalErrorAt(newEOFToken(Position{Line: 1, Column: 1}), "empty token stream")
	}

	first := ts.Peek()
	var stmt ast.Stmt

	switch first.Kind {
	case TokenPrint:
		ts.Read()
		name, ok := first.Name()
		if !ok {
			return nil, parseErrorAt(first, "malformed %s token without a name", first.Kind)
		}
		stmt = &ast.Print{Name: name, Pos: first.Pos}

	case TokenIntDeclare:
		ts.Read()
		name, ok := first.Name()
		if !ok {
			return nil, parseErrorAt(first, "malformed %s token without a name", first.Kind)
		}
		stmt = &ast.IntDeclare{Name: name, Pos: first.Pos}

	case TokenVarRef:
		ts.Read()
		name, ok := first.Name()
		if !ok {
			return nil, parseErrorAt(first, "malformed %s token without a name", first.Kind)
		}
		if _, err := expect(ts, TokenAssign); err != nil {
			return nil, err
		}
		expr, err := parseExpression(ts)
		if err != nil {
			return nil, err
		}
		stmt = &ast.Assign{Name: name, Expr: expr, Pos: first.Pos}

	default:
		return nil, parseErrorAt(first, "expected %s, %s or %s to start a statement, found %s",
			TokenPrint, TokenIntDeclare, TokenVarRef, first.Kind)
	}

	if _, err := expect(ts, TokenEOF); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseExpression runs the shunting-yard algorithm until END_OF_INPUT. The
// two stacks are the complete parse state.
func parseExpression(ts *TokenStream) (ast.Expr, error) {
	var operands []ast.Expr
	var operators []Token

	if first := ts.Peek(); first.Kind.IsOperator() {
		return nil, parseErrorAt(first, "expected '(', integer literal or variable, found %s", first.Kind)
	}

	for ts.Peek().Kind != TokenEOF {
		tok := ts.Peek()

		switch {
		case tok.Kind == TokenIntLiteral:
			ts.Read()
			value, ok := tok.IntValue()
			if !ok {
				return nil, parseErrorAt(tok, "malformed %s token without a value", tok.Kind)
			}
			if next := ts.Peek(); !followsOperand(next.Kind) {
				return nil, parseErrorAt(next, "expected operator or ')' after integer literal, found %s", next.Kind)
			}
			operands = append(operands, &ast.IntLiteral{Value: value, Pos: tok.Pos})

		case tok.Kind == TokenVarRef:
			ts.Read()
			name, ok := tok.Name()
			if !ok {
				return nil, parseErrorAt(tok, "malformed %s token without a name", tok.Kind)
			}
			if next := ts.Peek(); !followsOperand(next.Kind) {
				return nil, parseErrorAt(next, "expected operator or ')' after variable, found %s", next.Kind)
			}
			operands = append(operands, &ast.VarRef{Name: name, Pos: tok.Pos})

		case tok.Kind == TokenLParen:
			ts.Read()
			if next := ts.Peek(); !startsOperand(next.Kind) {
				return nil, parseErrorAt(next, "expected '(', integer literal or variable after '(', found %s", next.Kind)
			}
			operators = append(operators, tok)

		case tok.Kind == TokenRParen:
			ts.Read()
			found := false
			for len(operators) > 0 {
				top := operators[len(operators)-1]
				if top.Kind == TokenLParen {
					operators = operators[:len(operators)-1]
					found = true
					break
				}
				var err error
				if operators, operands, err = reduce(operators, operands); err != nil {
					return nil, err
				}
			}
			if !found {
				return nil, parseErrorAt(tok, "mismatched parentheses: ')' without matching '('")
			}
			if next := ts.Peek(); !followsOperand(next.Kind) {
				return nil, parseErrorAt(next, "expected operator or ')' after ')', found %s", next.Kind)
			}

		case tok.Kind.IsOperator():
			incoming := ts.Read()
			if next := ts.Peek(); !startsOperand(next.Kind) {
				return nil, parseErrorAt(next, "expected '(', integer literal or variable after operator, found %s", next.Kind)
			}
			inOp, _ := incoming.Kind.Operator()

			for len(operators) > 0 {
				topOp, isOp := operators[len(operators)-1].Kind.Operator()
				if !isOp || !shouldReduce(topOp, inOp) {
					break
				}
				var err error
				if operators, operands, err = reduce(operators, operands); err != nil {
					return nil, err
				}
			}
			operators = append(operators, incoming)

		default:
			return nil, parseErrorAt(tok, "unexpected token %s in expression", tok)
		}
	}

	for len(operators) > 0 {
		top := operators[len(operators)-1]
		if top.Kind == TokenLParen {
			return nil, parseErrorAt(top, "mismatched parentheses: '(' is never closed")
		}
		var err error
		if operators, operands, err = reduce(operators, operands); err != nil {
			return nil, err
		}
	}

	if len(operands) != 1 {
		eof := ts.Peek()
		if len(operands) == 0 {
			return nil, parseErrorAt(eof, "expected an expression")
		}
		return nil, internalErrorAt(eof, "expression did not reduce to one tree (%d operands left)", len(operands))
	}
	return operands[0], nil
}

// shouldReduce reports whether the operator on the stack binds before the
// incoming one
func shouldReduce(top, incoming ast.Operator) bool {
	if incoming.RightAssociative() {
		return top.Precedence() > incoming.Precedence()
	}
	return top.Precedence() >= incoming.Precedence()
}

// reduce pops one operator and two operands and pushes their BinOp
func reduce(operators []Token, operands []ast.Expr) ([]Token, []ast.Expr, error) {
	if len(operators) == 0 {
		return operators, operands, internalErrorAt(Token{}, "reduce called with an empty operator stack")
	}
	opTok := operators[len(operators)-1]
	operators = operators[:len(operators)-1]

	op, ok := opTok.Kind.Operator()
	if !ok {
		return operators, operands, internalErrorAt(opTok, "reduce called on %s", opTok.Kind)
	}
	if len(operands) < 2 {
		return operators, operands, internalErrorAt(opTok, "operator %s needs two operands, have %d", opTok.Kind, len(operands))
	}

	right := operands[len(operands)-1]
	left := operands[len(operands)-2]
	operands = operands[:len(operands)-2]

	operands = append(operands, &ast.BinOp{Op: op, Left: left, Right: right, Pos: opTok.Pos})
	return operators, operands, nil
}

// expect consumes the next token if it has the given kind
func expect(ts *TokenStream, kind Kind) (Token, error) {
	tok := ts.Peek()
	if tok.Kind != kind {
		return tok, parseErrorAt(tok, "expected %s but found %s", kind, tok.Kind)
	}
	return ts.Read(), nil
}

func followsOperand(k Kind) bool {
	return k.IsOperator() || k == TokenRParen || k == TokenEOF
}

func startsOperand(k Kind) bool {
	return k == TokenIntLiteral || k == TokenVarRef || k == TokenLParen
}
