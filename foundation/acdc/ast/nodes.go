// File: nodes.go
// Title: ACDC AST Node Definitions
// Description: The six node kinds produced by the ACDC parser. Statements
//              and expressions are sealed interfaces; consumers that must
//              handle every kind implement Visitor.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strconv"
)

// Node is implemented by every AST node
type Node interface {
	// String returns the fully parenthesised source form
	String() string

	// Accept dispatches to the matching Visitor method
	Accept(v Visitor) error

	// Position returns the source position of the token that produced the
	// node; for BinOp that is the operator
	Position() Position

	// Validate checks structural well-formedness
	Validate() error
}

// Stmt is a top-level statement: IntDeclare, Print or Assign
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression: IntLiteral, VarRef or BinOp
type Expr interface {
	Node
	exprNode()
}

// Position represents a position in the source text
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
	Offset int // Rune offset (0-based)
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Operator is a binary arithmetic operator
type Operator int

const (
	OpPlus Operator = iota + 1
	OpMinus
	OpTimes
	OpDivide
	OpExponent
)

// Symbol returns the operator's source rune
func (o Operator) Symbol() string {
	switch o {
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpTimes:
		return "*"
	case OpDivide:
		return "/"
	case OpExponent:
		return "^"
	default:
		return "?"
	}
}

// Precedence returns the binding strength; higher binds tighter
func (o Operator) Precedence() int {
	switch o {
	case OpExponent:
		return 3
	case OpTimes, OpDivide:
		return 2
	case OpPlus, OpMinus:
		return 1
	default:
		return 0
	}
}

// RightAssociative reports whether the operator groups right to left
func (o Operator) RightAssociative() bool {
	return o == OpExponent
}

// Valid reports whether o is one of the five operators
func (o Operator) Valid() bool {
	return o >= OpPlus && o <= OpExponent
}

func (o Operator) String() string {
	return o.Symbol()
}

// IntDeclare declares an integer variable: "ia"
type IntDeclare struct {
	Name string
	Pos  Position
}

// Print prints a variable: "pa"
type Print struct {
	Name string
	Pos  Position
}

// Assign stores an expression in a variable: "a = 3 + 4"
type Assign struct {
	Name string
	Expr Expr
	Pos  Position
}

// IntLiteral is a non-negative integer constant
type IntLiteral struct {
	Value int64
	Pos   Position
}

// VarRef reads a variable inside an expression
type VarRef struct {
	Name string
	Pos  Position
}

// BinOp applies Op to Left and Right
type BinOp struct {
	Op    Operator
	Left  Expr
	Right Expr
	Pos   Position
}

func (*IntDeclare) stmtNode() {}
func (*Print) stmtNode() {}
func (*Assign) stmtNode() {}
func (*IntLiteral) exprNode() {}
func (*VarRef) exprNode() {}
func (*BinOp) exprNode() {}

// IntDeclare

func (n *IntDeclare) String() string { return "i" + n.Name }
func (n *IntDeclare) Accept(v Visitor) error { return v.VisitIntDeclare(n) }
func (n *IntDeclare) Position() Position { return n.Pos }
func (n *IntDeclare) Validate() error { return validateName("int declaration", n.Name, n.Pos) }

// Print

func (n *Print) String() string { return "p" + n.Name }
func (n *Print) Accept(v Visitor) error { return v.VisitPrint(n) }
func (n *Print) Position() Position { return n.Pos }
func (n *Print) Validate() error { return validateName("print", n.Name, n.Pos) }

// Assign

func (n *Assign) String() string {
	if n.Expr == nil {
		return n.Name + "=<nil>"
	}
	return n.Name + "=" + n.Expr.String()
}

func (n *Assign) Accept(v Visitor) error { return v.VisitAssign(n) }
func (n *Assign) Position() Position { return n.Pos }

func (n *Assign) Validate() error {
	if err := validateName("assignment", n.Name, n.Pos); err != nil {
		return err
	}
	if n.Expr == nil {
		return &ValidationError{Node: "assignment", Pos: n.Pos, Message: "missing expression"}
	}
	return n.Expr.Validate()
}

// IntLiteral

func (n *IntLiteral) String() string { return strconv.FormatInt(n.Value, 10) }
func (n *IntLiteral) Accept(v Visitor) error { return v.VisitIntLiteral(n) }
func (n *IntLiteral) Position() Position { return n.Pos }

func (n *IntLiteral) Validate() error {
	if n.Value < 0 {
		return &ValidationError{Node: "integer literal", Pos: n.Pos, Message: "negative value " + n.String()}
	}
	return nil
}

// VarRef

func (n *VarRef) String() string { return n.Name }
func (n *VarRef) Accept(v Visitor) error { return v.VisitVarRef(n) }
func (n *VarRef) Position() Position { return n.Pos }
func (n *VarRef) Validate() error { return validateName("variable reference", n.Name, n.Pos) }

// BinOp

func (n *BinOp) String() string {
	return "(" + exprString(n.Left) + n.Op.Symbol() + exprString(n.Right) + ")"
}

func (n *BinOp) Accept(v Visitor) error { return v.VisitBinOp(n) }
func (n *BinOp) Position() Position { return n.Pos }

func (n *BinOp) Validate() error {
	if !n.Op.Valid() {
		return &ValidationError{Node: "binary operation", Pos: n.Pos, Message: fmt.Sprintf("unknown operator %d", int(n.Op))}
	}
	if n.Left == nil || n.Right == nil {
		return &ValidationError{Node: "binary operation", Pos: n.Pos, Message: "missing operand"}
	}
	if err := n.Left.Validate(); err != nil {
		return err
	}
	return n.Right.Validate()
}

func exprString(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	return e.String()
}

// ValidationError reports a structurally malformed node
type ValidationError struct {
	Node    string
	Pos     Position
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s at %s: %s", e.Node, e.Pos, e.Message)
}

func validateName(node, name string, pos Position) error {
	if name == "" {
		return &ValidationError{Node: node, Pos: pos, Message: "empty name"}
	}
	for _, r := range name {
		if r < 'a' || r > 'z' {
			return &ValidationError{Node: node, Pos: pos, Message: fmt.Sprintf("invalid name %q", name)}
		}
	}
	return nil
}
