// File: codegen.go
// Title: dc Code Generator
// Description: Walks ACDC statements and emits dc stack machine
//              instructions. Variables live in dc registers named after the
//              variable, so only single letter names can be compiled.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial generator for all six node kinds

package codegen

import (
	"strconv"
	"unicode/utf8"

	"github.com/msto63/acdc/foundation/acdc/ast"
	mdwerror "github.com/msto63/acdc/foundation/core/error"
	mdwlog "github.com/msto63/acdc/foundation/core/log"
)

// Options configures a Generator
type Options struct {
	Logger *mdwlog.Logger

	// Symbols carries declarations across Generate calls. A nil table
	// starts empty.
	Symbols *SymbolTable
}

// Generator emits dc code for statements. It is not safe for concurrent
// use; each goroutine needs its own Generator.
type Generator struct {
	logger  *mdwlog.Logger
	symbols *SymbolTable
	code    *InstructionList
}

// New creates a generator
func New(opts Options) *Generator {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.Symbols == nil {
		opts.Symbols = NewSymbolTable()
	}
	return &Generator{
		logger:  opts.Logger.WithField("component", "acdc-codegen"),
		symbols: opts.Symbols,
	}
}

// Generate compiles a whole program with a fresh symbol table
func Generate(program []ast.Stmt) (*InstructionList, error) {
	return New(Options{Logger: mdwlog.Nop()}).Generate(program)
}

// Symbols returns the generator's symbol table
func (g *Generator) Symbols() *SymbolTable {
	return g.symbols
}

// Generate compiles program in order. It stops at the first statement that
// cannot be compiled.
func (g *Generator) Generate(program []ast.Stmt) (*InstructionList, error) {
	code := NewInstructionList()
	for i, stmt := range program {
		stmtCode, err := g.GenerateStmt(stmt)
		if err != nil {
			return nil, mdwerror.Wrap(err, "code generation failed").
				WithOperation("codegen.Generate").
				WithDetail("statement", i)
		}
		code.Extend(stmtCode)
	}
	g.logger.Debug("Code generation completed", mdwlog.Fields{
		"statements":   len(program),
		"instructions": code.Len(),
		"symbols":      g.symbols.Len(),
	})
	return code, nil
}

// GenerateStmt compiles one statement against the generator's symbol table
func (g *Generator) GenerateStmt(stmt ast.Stmt) (*InstructionList, error) {
	if stmt == nil {
		return nil, mdwerror.New("nil statement").WithCode(mdwerror.CodeACDCUnsupportedNode)
	}
	if err := stmt.Validate(); err != nil {
		return nil, mdwerror.Wrap(err, "malformed statement").
			WithCode(mdwerror.CodeACDCUnsupportedNode)
	}

	g.code = NewInstructionList()
	defer func() { g.code = nil }()

	if err := stmt.Accept(g); err != nil {
		return nil, err
	}
	return g.code, nil
}

func (g *Generator) VisitIntDeclare(n *ast.IntDeclare) error {
	if err := registerName(n.Name, n.Pos); err != nil {
		return err
	}
	sym, err := g.symbols.Declare(n.Name, n.Pos)
	if err != nil {
		return err
	}
	g.code.Append("0")
	g.code.Append("s" + sym.Register)
	return nil
}

func (g *Generator) VisitPrint(n *ast.Print) error {
	sym, err := g.resolve(n.Name, n.Pos)
	if err != nil {
		return err
	}
	g.code.Append("l" + sym.Register)
	g.code.Append("p")
	return nil
}

func (g *Generator) VisitAssign(n *ast.Assign) error {
	sym, err := g.resolve(n.Name, n.Pos)
	if err != nil {
		return err
	}
	if err := n.Expr.Accept(g); err != nil {
		return err
	}
	g.code.Append("s" + sym.Register)
	return nil
}

func (g *Generator) VisitIntLiteral(n *ast.IntLiteral) error {
	g.code.Append(strconv.FormatInt(n.Value, 10))
	return nil
}

func (g *Generator) VisitVarRef(n *ast.VarRef) error {
	sym, err := g.resolve(n.Name, n.Pos)
	if err != nil {
		return err
	}
	g.code.Append("l" + sym.Register)
	return nil
}

func (g *Generator) VisitBinOp(n *ast.BinOp) error {
	if err := n.Left.Accept(g); err != nil {
		return err
	}
	if err := n.Right.Accept(g); err != nil {
		return err
	}
	g.code.Append(n.Op.Symbol())
	return nil
}

func (g *Generator) resolve(name string, pos ast.Position) (Symbol, error) {
	if err := registerName(name, pos); err != nil {
		return Symbol{}, err
	}
	return g.symbols.Resolve(name, pos)
}

// registerName rejects names that cannot be a dc register
func registerName(name string, pos ast.Position) error {
	if utf8.RuneCountInString(name) != 1 {
		return mdwerror.Newf("variable %q cannot be compiled: dc registers are single letters", name).
			WithCode(mdwerror.CodeACDCUnsupportedNode).
			WithDetail("name", name).
			WithDetail("line", pos.Line).
			WithDetail("column", pos.Column)
	}
	return nil
}
