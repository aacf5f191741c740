// File: acdc.go
// Title: ACDC Engine
// Description: High-level API tying the lexer, parser and dc code generator
//              together. Lines of a program are parsed in parallel and the
//              results are reassembled in source order.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial engine with batch compilation and diagnostics

package acdc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/msto63/acdc/foundation/acdc/ast"
	"github.com/msto63/acdc/foundation/acdc/codegen"
	"github.com/msto63/acdc/foundation/acdc/lang"
	"github.com/msto63/acdc/foundation/acdc/parser"
	mdwerror "github.com/msto63/acdc/foundation/core/error"
	mdwlog "github.com/msto63/acdc/foundation/core/log"
)

// DefaultWorkers is the parallelism of CompileProgram when unset
const DefaultWorkers = 4

// Engine compiles ACDC source. It is safe for concurrent use.
type Engine struct {
	parser   *parser.Parser
	revision lang.Revision
	logger   *mdwlog.Logger
	options  Options
}

// Options configures the engine
type Options struct {
	// Logger for engine operations (optional, defaults to the default logger)
	Logger *mdwlog.Logger

	// Revision is a semver constraint selecting the language revision
	// (default "^2.0")
	Revision string

	// Reserved overrides the revision's reserved letters when set
	Reserved string

	// Workers bounds the lines parsed concurrently (default 4)
	Workers int

	// KeepBlankLines passes blank lines to the parser, which rejects them
	KeepBlankLines bool

	// MaxLineLength limits the runes of one line (default 4096)
	MaxLineLength int
}

// Program is a parsed source file
type Program struct {
	Statements []ast.Stmt
	// Lines holds the 1-based source line of each statement
	Lines []int
}

// Result is a compiled source file
type Result struct {
	Program   *Program
	Code      *codegen.InstructionList
	RequestID string
	Duration  time.Duration
}

// New creates an engine
func New(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}

	rev, err := lang.Resolve(opts.Revision)
	if err != nil {
		return nil, err
	}
	if opts.Reserved != "" {
		rs, err := lang.NewReservedSet(opts.Reserved)
		if err != nil {
			return nil, err
		}
		rev.Reserved = rs
	}

	logger := opts.Logger.WithField("component", "acdc-engine")
	p, err := parser.New(parser.Options{
		Logger:         opts.Logger,
		Reserved:       rev.Reserved,
		MaxInputLength: opts.MaxLineLength,
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to create parser").WithCode(mdwerror.CodeInternal)
	}

	logger.Debug("ACDC engine created", mdwlog.Fields{
		"revision": rev.Version.String(),
		"reserved": rev.Reserved.String(),
		"workers":  opts.Workers,
	})

	return &Engine{
		parser:   p,
		revision: rev,
		logger:   logger,
		options:  opts,
	}, nil
}

// Revision returns the language revision in use
func (e *Engine) Revision() lang.Revision {
	return e.revision
}

// Tokens lexes one line
func (e *Engine) Tokens(line string, lineNo int) (*parser.TokenStream, error) {
	return e.parser.Lex(line, lineNo)
}

// CompileLine parses one statement. Positions in the result and in errors
// use lineNo.
func (e *Engine) CompileLine(line string, lineNo int) (ast.Stmt, error) {
	return e.parser.ParseLine(line, lineNo)
}

// CompileProgram parses every line of source. Lines are parsed in parallel
// but the statements come back in source order, and when several lines
// fail the error of the earliest line is returned.
func (e *Engine) CompileProgram(ctx context.Context, source string) (*Program, error) {
	return e.parseProgram(ctx, source, e.logger.WithRequestID(uuid.NewString()))
}

// Compile parses source and generates dc code for it
func (e *Engine) Compile(ctx context.Context, source string) (*Result, error) {
	start := time.Now()
	requestID := uuid.NewString()
	logger := e.logger.WithRequestID(requestID)

	program, err := e.parseProgram(ctx, source, logger)
	if err != nil {
		return nil, err
	}

	gen := codegen.New(codegen.Options{Logger: logger})
	code, err := gen.Generate(program.Statements)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Program:   program,
		Code:      code,
		RequestID: requestID,
		Duration:  time.Since(start),
	}
	logger.Info("ACDC compilation completed", mdwlog.Fields{
		"statements":   len(program.Statements),
		"instructions": code.Len(),
		"elapsed":      result.Duration.String(),
	})
	return result, nil
}

func (e *Engine) parseProgram(ctx context.Context, source string, logger *mdwlog.Logger) (*Program, error) {
	timer := logger.StartTimer("parse_program")

	lines, numbers := e.splitLines(source)
	stmts := make([]ast.Stmt, len(lines))
	errs := make([]error, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.options.Workers)
	for i := range lines {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			stmts[i], errs[i] = e.parser.ParseLine(lines[i], numbers[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		timer.StopWithError(err)
		return nil, mdwerror.Wrap(err, "compilation cancelled").WithCode(mdwerror.CodeTimeout)
	}

	for i, err := range errs {
		if err != nil {
			timer.WithField("failed_line", numbers[i]).StopWithError(err)
			return nil, err
		}
	}

	timer.WithField("statements", len(stmts)).Stop()
	return &Program{Statements: stmts, Lines: numbers}, nil
}

// splitLines returns the lines to parse and their 1-based line numbers
func (e *Engine) splitLines(source string) ([]string, []int) {
	raw := strings.Split(source, "\n")
	if len(raw) > 0 && raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}

	lines := make([]string, 0, len(raw))
	numbers := make([]int, 0, len(raw))
	for i, line := range raw {
		line = strings.TrimSuffix(line, "\r")
		if !e.options.KeepBlankLines && strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		numbers = append(numbers, i+1)
	}
	return lines, numbers
}

// Diagnostic renders err together with the offending source line and a
// caret under the reported column. Errors without a position, or with a
// position outside source, render as err.Error() alone.
func Diagnostic(source string, err error) string {
	if err == nil {
		return ""
	}
	pos, ok := errorPosition(err)
	if !ok {
		return err.Error()
	}
	lines := strings.Split(source, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return err.Error()
	}
	line := strings.TrimSuffix(lines[pos.Line-1], "\r")

	var caret strings.Builder
	col := 1
	for _, r := range line {
		if col >= pos.Column {
			break
		}
		if r == '\t' {
			caret.WriteRune('\t')
		} else {
			caret.WriteRune(' ')
		}
		col++
	}
	for ; col < pos.Column; col++ {
		caret.WriteRune(' ')
	}
	caret.WriteRune('^')

	return fmt.Sprintf("%s\n  %s\n  %s", err.Error(), line, caret.String())
}

func errorPosition(err error) (ast.Position, bool) {
	var positioned interface{ Position() ast.Position }
	if errors.As(err, &positioned) {
		return positioned.Position(), true
	}

	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) {
		return ast.Position{}, false
	}
	details := mdwErr.Details()
	line, lok := details["line"].(int)
	column, cok := details["column"].(int)
	if !lok || line < 1 {
		return ast.Position{}, false
	}
	if !cok || column < 1 {
		column = 1
	}
	return ast.Position{Line: line, Column: column}, true
}
