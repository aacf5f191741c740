package repl

import (
	"strings"

	"github.com/msto63/acdc/foundation/acdc"
	"github.com/msto63/acdc/foundation/acdc/ast"
	"github.com/msto63/acdc/foundation/acdc/codegen"
	mdwlog "github.com/msto63/acdc/foundation/core/log"
)

// Entry is the outcome of one submitted line
type Entry struct {
	Input string
	Line  int

	// Set on success
	AST     string
	Tree    string
	Code    string
	Printed []int64

	// Set on failure
	Err        error
	Diagnostic string
}

// OK reports whether the line compiled and ran
func (e Entry) OK() bool {
	return e.Err == nil
}

// Session compiles lines one at a time. Declarations persist across lines,
// so "ia" followed by "a=1" compiles. Each accepted statement is also run
// so prints show their value.
type Session struct {
	engine *acdc.Engine
	gen    *codegen.Generator
	eval   *ast.Evaluator
	lines  []string
	logger *mdwlog.Logger
}

// NewSession creates a session on engine
func NewSession(engine *acdc.Engine, logger *mdwlog.Logger) *Session {
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	return &Session{
		engine: engine,
		gen:    codegen.New(codegen.Options{Logger: logger}),
		eval:   ast.NewEvaluator(),
		logger: logger.WithField("component", "acdc-repl"),
	}
}

// Submit compiles and runs one line
func (s *Session) Submit(input string) Entry {
	s.lines = append(s.lines, input)
	entry := Entry{Input: input, Line: len(s.lines)}

	stmt, err := s.engine.CompileLine(input, entry.Line)
	if err != nil {
		return s.fail(entry, err)
	}

	code, err := s.gen.GenerateStmt(stmt)
	if err != nil {
		return s.fail(entry, err)
	}

	before := len(s.eval.Output())
	if err := s.eval.Exec(stmt); err != nil {
		return s.fail(entry, err)
	}

	entry.AST = stmt.String()
	entry.Tree = ast.Dump(stmt)
	entry.Code = code.String()
	entry.Printed = s.eval.Output()[before:]

	s.logger.Debug("REPL line accepted", mdwlog.Fields{
		"line": entry.Line,
		"ast":  entry.AST,
	})
	return entry
}

func (s *Session) fail(entry Entry, err error) Entry {
	entry.Err = err
	entry.Diagnostic = acdc.Diagnostic(strings.Join(s.lines, "\n"), err)
	s.logger.Debug("REPL line rejected", mdwlog.Fields{
		"line":  entry.Line,
		"error": err.Error(),
	})
	return entry
}

// Symbols returns the declared variables in declaration order
func (s *Session) Symbols() []string {
	return s.gen.Symbols().Names()
}

// Value returns the current value of a declared variable
func (s *Session) Value(name string) (int64, bool) {
	return s.eval.Value(name)
}
