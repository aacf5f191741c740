// File: acdc_test.go
// Title: ACDC Engine Tests
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17

package acdc

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/msto63/acdc/foundation/acdc/parser"
	mdwerror "github.com/msto63/acdc/foundation/core/error"
	mdwlog "github.com/msto63/acdc/foundation/core/log"
)

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	opts.Logger = mdwlog.Nop()
	eng, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return eng
}

func TestCompileLine(t *testing.T) {
	eng := newTestEngine(t, Options{})

	stmt, err := eng.CompileLine("a = 3 + 4 * 2", 7)
	if err != nil {
		t.Fatalf("CompileLine() error = %v", err)
	}
	if got := stmt.String(); got != "a=(3+(4*2))" {
		t.Errorf("String() = %q, want %q", got, "a=(3+(4*2))")
	}
	if got := stmt.Position().Line; got != 7 {
		t.Errorf("Position().Line = %d, want 7", got)
	}
}

func TestCompileProgramOrder(t *testing.T) {
	eng := newTestEngine(t, Options{Workers: 2})

	source := "ia\nib\na = 1\nb = a + 2\npa\npb\n"
	prog, err := eng.CompileProgram(context.Background(), source)
	if err != nil {
		t.Fatalf("CompileProgram() error = %v", err)
	}

	want := []string{"ia", "ib", "a=1", "b=(a+2)", "pa", "pb"}
	if len(prog.Statements) != len(want) {
		t.Fatalf("got %d statements, want %d", len(prog.Statements), len(want))
	}
	for i, stmt := range prog.Statements {
		if stmt.String() != want[i] {
			t.Errorf("statement %d = %q, want %q", i, stmt.String(), want[i])
		}
		if prog.Lines[i] != i+1 {
			t.Errorf("Lines[%d] = %d, want %d", i, prog.Lines[i], i+1)
		}
	}
}

func TestCompileProgramEarliestError(t *testing.T) {
	eng := newTestEngine(t, Options{Workers: 8})

	_, err := eng.CompileProgram(context.Background(), "ia\na = #\nb = 01\nc = )\n")
	if err == nil {
		t.Fatal("CompileProgram() error = nil, want error")
	}
	var lexErr *parser.LexicalError
	if !errors.As(err, &lexErr) {
		t.Fatalf("error = %T, want *parser.LexicalError", err)
	}
	if lexErr.Pos.Line != 2 {
		t.Errorf("error line = %d, want 2", lexErr.Pos.Line)
	}
}

func TestCompileProgramBlankLines(t *testing.T) {
	source := "ia\n\n   \r\na = 2\r\n"

	eng := newTestEngine(t, Options{})
	prog, err := eng.CompileProgram(context.Background(), source)
	if err != nil {
		t.Fatalf("CompileProgram() error = %v", err)
	}
	if len(prog.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(prog.Statements))
	}
	if prog.Lines[1] != 4 {
		t.Errorf("Lines[1] = %d, want 4", prog.Lines[1])
	}

	strict := newTestEngine(t, Options{KeepBlankLines: true})
	_, err = strict.CompileProgram(context.Background(), source)
	if err == nil {
		t.Fatal("CompileProgram() with KeepBlankLines error = nil, want error")
	}
	var pe *parser.ParseError
	if !errors.As(err, &pe) || pe.Pos.Line != 2 {
		t.Errorf("error = %v, want parse error on line 2", err)
	}
}

func TestCompileProgramEmpty(t *testing.T) {
	eng := newTestEngine(t, Options{})

	prog, err := eng.CompileProgram(context.Background(), "")
	if err != nil {
		t.Fatalf("CompileProgram() error = %v", err)
	}
	if len(prog.Statements) != 0 {
		t.Errorf("got %d statements, want 0", len(prog.Statements))
	}
}

func TestCompileProgramCancelled(t *testing.T) {
	eng := newTestEngine(t, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := eng.CompileProgram(ctx, "ia\npa\n")
	if !mdwerror.HasCode(err, mdwerror.CodeTimeout) {
		t.Errorf("error = %v, want code %s", err, mdwerror.CodeTimeout)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("errors.Is(err, context.Canceled) = false, want true")
	}
}

func TestRevisionSelection(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		input    string
		wantErr  bool
		reserved string
	}{
		{"default reserves l", Options{}, "l = 3", true, "filnops"},
		{"revision 1 frees l", Options{Revision: "^1.0"}, "l = 3", false, "finop"},
		{"override frees f", Options{Reserved: "ip"}, "f = 1", false, "ip"},
		{"override keeps i", Options{Reserved: "ip"}, "i = 1", true, "ip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := newTestEngine(t, tt.opts)
			if got := eng.Revision().Reserved.String(); got != tt.reserved {
				t.Errorf("Reserved = %q, want %q", got, tt.reserved)
			}
			_, err := eng.CompileLine(tt.input, 1)
			if (err != nil) != tt.wantErr {
				t.Errorf("CompileLine(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestNewInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code mdwerror.Code
	}{
		{"bad constraint", Options{Revision: "not a version"}, mdwerror.CodeInvalidConfig},
		{"unknown revision", Options{Revision: ">=9.0"}, mdwerror.CodeNotFound},
		{"bad reserved", Options{Reserved: "i1"}, mdwerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Logger = mdwlog.Nop()
			_, err := New(tt.opts)
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("New() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestCompile(t *testing.T) {
	eng := newTestEngine(t, Options{})

	res, err := eng.Compile(context.Background(), "ia\na = 3 + 4 * 2\npa\n")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	want := "0\nsa\n3\n4\n2\n*\n+\nsa\nla\np\n"
	if got := res.Code.String(); got != want {
		t.Errorf("Code = %q, want %q", got, want)
	}
	if res.RequestID == "" {
		t.Error("RequestID is empty")
	}
	if len(res.Program.Statements) != 3 {
		t.Errorf("got %d statements, want 3", len(res.Program.Statements))
	}
}

func TestCompileUndeclared(t *testing.T) {
	eng := newTestEngine(t, Options{})

	_, err := eng.Compile(context.Background(), "ia\nb = a\n")
	if !mdwerror.HasCode(err, mdwerror.CodeACDCUndeclared) {
		t.Fatalf("Compile() error = %v, want code %s", err, mdwerror.CodeACDCUndeclared)
	}
}

func TestDiagnostic(t *testing.T) {
	eng := newTestEngine(t, Options{})

	t.Run("lexical error", func(t *testing.T) {
		source := "ia\na=01\n"
		_, err := eng.CompileProgram(context.Background(), source)
		if err == nil {
			t.Fatal("CompileProgram() error = nil, want error")
		}
		got := Diagnostic(source, err)
		if !strings.HasPrefix(got, err.Error()+"\n") {
			t.Errorf("Diagnostic() = %q, want prefix %q", got, err.Error())
		}
		if !strings.HasSuffix(got, "\n  a=01\n    ^") {
			t.Errorf("Diagnostic() = %q, want caret under column 3", got)
		}
	})

	t.Run("tabs preserved", func(t *testing.T) {
		source := "\ta=#"
		_, err := eng.CompileLine(source, 1)
		if err == nil {
			t.Fatal("CompileLine() error = nil, want error")
		}
		if got := Diagnostic(source, err); !strings.HasSuffix(got, "\n  \ta=#\n  \t  ^") {
			t.Errorf("Diagnostic() = %q", got)
		}
	})

	t.Run("caret past end of line", func(t *testing.T) {
		source := "a=1+"
		_, err := eng.CompileLine(source, 1)
		if err == nil {
			t.Fatal("CompileLine() error = nil, want error")
		}
		if got := Diagnostic(source, err); !strings.HasSuffix(got, "\n  a=1+\n      ^") {
			t.Errorf("Diagnostic() = %q", got)
		}
	})

	t.Run("code generation error", func(t *testing.T) {
		source := "ia\nb = a\n"
		_, err := eng.Compile(context.Background(), source)
		if err == nil {
			t.Fatal("Compile() error = nil, want error")
		}
		if got := Diagnostic(source, err); !strings.HasSuffix(got, "\n  b = a\n  ^") {
			t.Errorf("Diagnostic() = %q", got)
		}
	})

	t.Run("no position", func(t *testing.T) {
		err := errors.New("boom")
		if got := Diagnostic("ia", err); got != "boom" {
			t.Errorf("Diagnostic() = %q, want %q", got, "boom")
		}
	})

	t.Run("nil error", func(t *testing.T) {
		if got := Diagnostic("ia", nil); got != "" {
			t.Errorf("Diagnostic() = %q, want empty", got)
		}
	})
}
