// File: codegen_test.go
// Title: dc Code Generator Tests
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17

package codegen

import (
	"strings"
	"testing"

	"github.com/msto63/acdc/foundation/acdc/ast"
	"github.com/msto63/acdc/foundation/acdc/parser"
	mdwerror "github.com/msto63/acdc/foundation/core/error"
	mdwlog "github.com/msto63/acdc/foundation/core/log"
)

func parseProgram(t *testing.T, lines ...string) []ast.Stmt {
	t.Helper()
	p, err := parser.New(parser.Options{Logger: mdwlog.Nop()})
	if err != nil {
		t.Fatalf("parser.New() error = %v", err)
	}
	program := make([]ast.Stmt, 0, len(lines))
	for i, line := range lines {
		stmt, err := p.ParseLine(line, i+1)
		if err != nil {
			t.Fatalf("ParseLine(%q) error = %v", line, err)
		}
		program = append(program, stmt)
	}
	return program
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{"declare", []string{"ia"}, []string{"0", "sa"}},
		{"declare and print", []string{"ia", "pa"}, []string{"0", "sa", "la", "p"}},
		{
			"assign with precedence",
			[]string{"ia", "a=3+4*2", "pa"},
			[]string{"0", "sa", "3", "4", "2", "*", "+", "sa", "la", "p"},
		},
		{
			"parentheses",
			[]string{"ia", "a=(3+4)*2"},
			[]string{"0", "sa", "3", "4", "+", "2", "*", "sa"},
		},
		{
			"right associative exponent",
			[]string{"ia", "a=2^3^2"},
			[]string{"0", "sa", "2", "3", "2", "^", "^", "sa"},
		},
		{
			"variables",
			[]string{"ia", "ib", "a=5", "b=a-1/a", "pb"},
			[]string{"0", "sa", "0", "sb", "5", "sa", "la", "1", "la", "/", "-", "sb", "lb", "p"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := Generate(parseProgram(t, tt.lines...))
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			got := strings.Join(code.Instructions(), " ")
			want := strings.Join(tt.want, " ")
			if got != want {
				t.Errorf("Generate() = %v, want %v", got, want)
			}
		})
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		program []ast.Stmt
		want    mdwerror.Code
	}{
		{"print undeclared", []ast.Stmt{&ast.Print{Name: "a"}}, mdwerror.CodeACDCUndeclared},
		{
			"assign undeclared",
			[]ast.Stmt{&ast.Assign{Name: "a", Expr: &ast.IntLiteral{Value: 1}}},
			mdwerror.CodeACDCUndeclared,
		},
		{
			"read undeclared",
			[]ast.Stmt{&ast.IntDeclare{Name: "a"}, &ast.Assign{Name: "a", Expr: &ast.VarRef{Name: "b"}}},
			mdwerror.CodeACDCUndeclared,
		},
		{
			"redeclare",
			[]ast.Stmt{&ast.IntDeclare{Name: "a"}, &ast.IntDeclare{Name: "a"}},
			mdwerror.CodeACDCRedeclared,
		},
		{"long name", []ast.Stmt{&ast.IntDeclare{Name: "ab"}}, mdwerror.CodeACDCUnsupportedNode},
		{"malformed", []ast.Stmt{&ast.Assign{Name: "a"}}, mdwerror.CodeACDCUnsupportedNode},
		{"nil", []ast.Stmt{nil}, mdwerror.CodeACDCUnsupportedNode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := Generate(tt.program)
			if err == nil {
				t.Fatalf("Generate() = %v, want error", code)
			}
			if got := mdwerror.GetCode(err); got != tt.want {
				t.Errorf("GetCode() = %v, want %v (err %v)", got, tt.want, err)
			}
		})
	}
}

func TestGeneratorPersistentSymbols(t *testing.T) {
	g := New(Options{Logger: mdwlog.Nop()})

	if _, err := g.GenerateStmt(&ast.IntDeclare{Name: "a"}); err != nil {
		t.Fatalf("GenerateStmt(ia) error = %v", err)
	}
	code, err := g.GenerateStmt(&ast.Assign{Name: "a", Expr: &ast.IntLiteral{Value: 9}})
	if err != nil {
		t.Fatalf("GenerateStmt(a=9) error = %v", err)
	}
	if got := code.String(); got != "9\nsa\n" {
		t.Errorf("String() = %q, want %q", got, "9\nsa\n")
	}
	if names := g.Symbols().Names(); len(names) != 1 || names[0] != "a" {
		t.Errorf("Names() = %v, want [a]", names)
	}
}

func TestInstructionList(t *testing.T) {
	il := NewInstructionList()
	if il.String() != "" {
		t.Errorf("empty String() = %q, want empty", il.String())
	}
	il.Append("1")
	other := NewInstructionList()
	other.Append("2")
	other.Append("+")
	il.Extend(other)
	il.Extend(nil)

	if il.Len() != 3 {
		t.Errorf("Len() = %d, want 3", il.Len())
	}
	if got := il.String(); got != "1\n2\n+\n" {
		t.Errorf("String() = %q", got)
	}
	instr := il.Instructions()
	instr[0] = "x"
	if il.Instructions()[0] != "1" {
		t.Error("Instructions() exposed the internal slice")
	}
}

func TestSymbolTable(t *testing.T) {
	st := NewSymbolTable()
	if _, err := st.Declare("b", ast.Position{Line: 1, Column: 1}); err != nil {
		t.Fatalf("Declare(b) error = %v", err)
	}
	if _, err := st.Declare("a", ast.Position{Line: 2, Column: 1}); err != nil {
		t.Fatalf("Declare(a) error = %v", err)
	}

	_, err := st.Declare("b", ast.Position{Line: 3, Column: 1})
	if !mdwerror.HasCode(err, mdwerror.CodeACDCRedeclared) {
		t.Errorf("Declare(b) again error = %v, want %v", err, mdwerror.CodeACDCRedeclared)
	}
	if err != nil && !strings.Contains(err.Error(), "line 1, column 1") {
		t.Errorf("error = %v, want the first declaration position", err)
	}

	clone := st.Clone()
	if _, err := clone.Declare("c", ast.Position{}); err != nil {
		t.Fatalf("clone Declare(c) error = %v", err)
	}
	if st.Len() != 2 || clone.Len() != 3 {
		t.Errorf("Len() = %d / %d, want 2 / 3", st.Len(), clone.Len())
	}
	if got := strings.Join(st.Names(), ","); got != "b,a" {
		t.Errorf("Names() = %v, want b,a", got)
	}
	if _, err := st.Resolve("z", ast.Position{}); !mdwerror.HasCode(err, mdwerror.CodeACDCUndeclared) {
		t.Errorf("Resolve(z) error = %v, want %v", err, mdwerror.CodeACDCUndeclared)
	}
}
