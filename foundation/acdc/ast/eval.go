// File: eval.go
// Title: ACDC Reference Evaluator
// Description: Evaluates statements directly on the tree with dc integer
//              semantics. The REPL uses it to show printed values and the
//              tests use it to check precedence and associativity.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17

package ast

import (
	mdwerror "github.com/msto63/acdc/foundation/core/error"
)

// Evaluator executes statements against a variable environment. Values
// persist across Exec calls.
type Evaluator struct {
	vars   map[string]int64
	output []int64
	stack  []int64
}

// NewEvaluator creates an evaluator with an empty environment
func NewEvaluator() *Evaluator {
	return &Evaluator{vars: make(map[string]int64)}
}

// Exec runs one statement
func (ev *Evaluator) Exec(stmt Stmt) error {
	ev.stack = ev.stack[:0]
	return stmt.Accept(ev)
}

// Eval evaluates an expression and returns its value
func (ev *Evaluator) Eval(expr Expr) (int64, error) {
	ev.stack = ev.stack[:0]
	if err := expr.Accept(ev); err != nil {
		return 0, err
	}
	return ev.pop(), nil
}

// Value returns the current value of a declared variable
func (ev *Evaluator) Value(name string) (int64, bool) {
	v, ok := ev.vars[name]
	return v, ok
}

// Output returns the values printed so far
func (ev *Evaluator) Output() []int64 {
	out := make([]int64, len(ev.output))
	copy(out, ev.output)
	return out
}

func (ev *Evaluator) VisitIntDeclare(n *IntDeclare) error {
	if _, ok := ev.vars[n.Name]; ok {
		return nameError(n.Name, n.Pos, mdwerror.CodeACDCRedeclared, "variable %q is already declared")
	}
	ev.vars[n.Name] = 0
	return nil
}

func (ev *Evaluator) VisitPrint(n *Print) error {
	v, ok := ev.vars[n.Name]
	if !ok {
		return nameError(n.Name, n.Pos, mdwerror.CodeACDCUndeclared, "variable %q is not declared")
	}
	ev.output = append(ev.output, v)
	return nil
}

func (ev *Evaluator) VisitAssign(n *Assign) error {
	if _, ok := ev.vars[n.Name]; !ok {
		return nameError(n.Name, n.Pos, mdwerror.CodeACDCUndeclared, "variable %q is not declared")
	}
	if err := n.Expr.Accept(ev); err != nil {
		return err
	}
	ev.vars[n.Name] = ev.pop()
	return nil
}

func (ev *Evaluator) VisitIntLiteral(n *IntLiteral) error {
	ev.stack = append(ev.stack, n.Value)
	return nil
}

func (ev *Evaluator) VisitVarRef(n *VarRef) error {
	v, ok := ev.vars[n.Name]
	if !ok {
		return nameError(n.Name, n.Pos, mdwerror.CodeACDCUndeclared, "variable %q is not declared")
	}
	ev.stack = append(ev.stack, v)
	return nil
}

func (ev *Evaluator) VisitBinOp(n *BinOp) error {
	if err := n.Left.Accept(ev); err != nil {
		return err
	}
	if err := n.Right.Accept(ev); err != nil {
		return err
	}
	right := ev.pop()
	left := ev.pop()

	var result int64
	switch n.Op {
	case OpPlus:
		result = left + right
	case OpMinus:
		result = left - right
	case OpTimes:
		result = left * right
	case OpDivide:
		if right == 0 {
			return mdwerror.New("division by zero").
				WithCode(mdwerror.CodeValueOutOfRange).
				WithDetail("line", n.Pos.Line).
				WithDetail("column", n.Pos.Column)
		}
		result = left / right
	case OpExponent:
		result = power(left, right)
	default:
		return mdwerror.Newf("unknown operator %d", int(n.Op)).WithCode(mdwerror.CodeInternal)
	}
	ev.stack = append(ev.stack, result)
	return nil
}

func (ev *Evaluator) pop() int64 {
	v := ev.stack[len(ev.stack)-1]
	ev.stack = ev.stack[:len(ev.stack)-1]
	return v
}

// power follows dc at scale 0: a negative exponent truncates to zero
// unless the base is 1 or -1
func power(base, exp int64) int64 {
	if exp < 0 {
		switch base {
		case 1:
			return 1
		case -1:
			if -exp%2 == 1 {
				return -1
			}
			return 1
		default:
			return 0
		}
	}
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

func nameError(name string, pos Position, code mdwerror.Code, format string) error {
	return mdwerror.Newf(format, name).
		WithCode(code).
		WithDetail("name", name).
		WithDetail("line", pos.Line).
		WithDetail("column", pos.Column)
}
