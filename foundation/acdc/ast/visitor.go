// File: visitor.go
// Title: ACDC AST Visitor
// Description: Visitor interface with one method per node kind, plus the
//              tree dump and name collector built on it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial visitor implementation

package ast

import (
	"sort"
	"strings"
)

// Visitor handles every node kind. Adding a node kind adds a method here,
// which breaks every implementation until it handles the new kind.
type Visitor interface {
	VisitIntDeclare(n *IntDeclare) error
	VisitPrint(n *Print) error
	VisitAssign(n *Assign) error
	VisitIntLiteral(n *IntLiteral) error
	VisitVarRef(n *VarRef) error
	VisitBinOp(n *BinOp) error
}

// TreeVisitor renders a node as an indented tree, one node per line
type TreeVisitor struct {
	builder strings.Builder
	indent  int
}

// NewTreeVisitor creates a new tree visitor
func NewTreeVisitor() *TreeVisitor {
	return &TreeVisitor{}
}

// String returns the rendered tree
func (tv *TreeVisitor) String() string {
	return tv.builder.String()
}

// Reset clears the rendered output
func (tv *TreeVisitor) Reset() {
	tv.builder.Reset()
	tv.indent = 0
}

func (tv *TreeVisitor) line(text string, pos Position) {
	tv.builder.WriteString(strings.Repeat("  ", tv.indent))
	tv.builder.WriteString(text)
	tv.builder.WriteString(" @")
	tv.builder.WriteString(pos.String())
	tv.builder.WriteByte('\n')
}

func (tv *TreeVisitor) VisitIntDeclare(n *IntDeclare) error {
	tv.line("IntDeclare "+n.Name, n.Pos)
	return nil
}

func (tv *TreeVisitor) VisitPrint(n *Print) error {
	tv.line("Print "+n.Name, n.Pos)
	return nil
}

func (tv *TreeVisitor) VisitAssign(n *Assign) error {
	tv.line("Assign "+n.Name, n.Pos)
	return tv.child(n.Expr)
}

func (tv *TreeVisitor) VisitIntLiteral(n *IntLiteral) error {
	tv.line("IntLiteral "+n.String(), n.Pos)
	return nil
}

func (tv *TreeVisitor) VisitVarRef(n *VarRef) error {
	tv.line("VarRef "+n.Name, n.Pos)
	return nil
}

func (tv *TreeVisitor) VisitBinOp(n *BinOp) error {
	tv.line("BinOp "+n.Op.Symbol(), n.Pos)
	if err := tv.child(n.Left); err != nil {
		return err
	}
	return tv.child(n.Right)
}

func (tv *TreeVisitor) child(n Node) error {
	if n == nil {
		return nil
	}
	tv.indent++
	defer func() { tv.indent-- }()
	return n.Accept(tv)
}

// NameCollector records every variable name a statement declares, prints,
// assigns or reads
type NameCollector struct {
	Declared []string
	Written  []string
	Read     []string
}

// NewNameCollector creates an empty collector
func NewNameCollector() *NameCollector {
	return &NameCollector{}
}

func (nc *NameCollector) VisitIntDeclare(n *IntDeclare) error {
	nc.Declared = append(nc.Declared, n.Name)
	return nil
}

func (nc *NameCollector) VisitPrint(n *Print) error {
	nc.Read = append(nc.Read, n.Name)
	return nil
}

func (nc *NameCollector) VisitAssign(n *Assign) error {
	if n.Expr != nil {
		if err := n.Expr.Accept(nc); err != nil {
			return err
		}
	}
	nc.Written = append(nc.Written, n.Name)
	return nil
}

func (nc *NameCollector) VisitIntLiteral(*IntLiteral) error { return nil }

func (nc *NameCollector) VisitVarRef(n *VarRef) error {
	nc.Read = append(nc.Read, n.Name)
	return nil
}

func (nc *NameCollector) VisitBinOp(n *BinOp) error {
	if err := n.Left.Accept(nc); err != nil {
		return err
	}
	return n.Right.Accept(nc)
}

// Names returns every distinct name seen, sorted
func (nc *NameCollector) Names() []string {
	seen := make(map[string]bool)
	for _, list := range [][]string{nc.Declared, nc.Written, nc.Read} {
		for _, name := range list {
			seen[name] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dump renders node as an indented tree
func Dump(node Node) string {
	tv := NewTreeVisitor()
	_ = node.Accept(tv)
	return tv.String()
}

// CollectNames returns the names used by node
func CollectNames(node Node) *NameCollector {
	nc := NewNameCollector()
	_ = node.Accept(nc)
	return nc
}
