// ============================================================================
// acdc - ACDC compiler toolchain
// ============================================================================
//
// Package:     harness
// Description: Golden-file test runner for compiled ACDC programs
// Author:      msto63
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package harness

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	mdwerror "github.com/msto63/acdc/foundation/core/error"
	mdwlog "github.com/msto63/acdc/foundation/core/log"
)

// CompileFunc turns ACDC source into dc code
type CompileFunc func(ctx context.Context, source string) (string, error)

// Options configures a harness run
type Options struct {
	TestsDir   string
	OutputsDir string
	SourceExt  string // default ".ac"
	OutputExt  string // default ".dc"

	// Compile must be safe for concurrent use when Workers > 1
	Compile CompileFunc

	// Workers bounds the cases compiled concurrently (default 1)
	Workers int

	Logger *mdwlog.Logger
}

// Status is the outcome of one case
type Status int

const (
	StatusPass Status = iota
	StatusFail
	StatusMissing
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "PASS"
	case StatusFail:
		return "FAIL"
	case StatusMissing:
		return "MISSING"
	default:
		return "UNKNOWN"
	}
}

// Case is one source file and its comparison result
type Case struct {
	Name         string
	SourcePath   string
	OutputPath   string
	ExpectedPath string
	Status       Status

	// Got and Want are normalised for comparison
	Got  string
	Want string

	// CompileErr is set when the source failed to compile. Its message is
	// the case output.
	CompileErr error
}

// Report summarises a harness run
type Report struct {
	Cases    []Case
	Passed   int
	Failed   int
	Missing  int
	Duration time.Duration
}

// Total counts the cases that were compared
func (r *Report) Total() int {
	return r.Passed + r.Failed
}

// OK reports whether no compared case failed
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Run compiles every source file in TestsDir, writes the result next to it
// and compares it with the expected file in OutputsDir. Cases are reported
// in file name order. Cases without an expected file are counted as missing
// and not compiled.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.Compile == nil {
		return nil, mdwerror.New("harness requires a compile function").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("harness.Run")
	}
	if opts.SourceExt == "" {
		opts.SourceExt = ".ac"
	}
	if opts.OutputExt == "" {
		opts.OutputExt = ".dc"
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	logger := opts.Logger.WithField("component", "acdc-harness")

	for _, dir := range []string{opts.TestsDir, opts.OutputsDir} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return nil, mdwerror.Newf("directory not found: %s", dir).
				WithCode(mdwerror.CodeNotFound).
				WithOperation("harness.Run").
				WithDetail("dir", dir)
		}
	}

	sources, err := filepath.Glob(filepath.Join(opts.TestsDir, "*"+opts.SourceExt))
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to list test sources").
			WithCode(mdwerror.CodeIO).
			WithOperation("harness.Run")
	}
	sort.Strings(sources)

	timer := logger.StartTimer("harness_run").WithLevel(mdwlog.LevelInfo)
	cases := make([]Case, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, src := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := runCase(gctx, opts, src)
			if err != nil {
				return err
			}
			cases[i] = c
			logger.Debug("Harness case finished", mdwlog.Fields{
				"case":   c.Name,
				"status": c.Status.String(),
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		timer.StopWithError(err)
		if ctx.Err() != nil {
			return nil, mdwerror.Wrap(err, "harness run cancelled").
				WithCode(mdwerror.CodeTimeout).
				WithOperation("harness.Run")
		}
		return nil, err
	}

	report := &Report{Cases: cases}
	for _, c := range cases {
		switch c.Status {
		case StatusPass:
			report.Passed++
		case StatusFail:
			report.Failed++
		case StatusMissing:
			report.Missing++
		}
	}

	report.Duration = timer.
		WithField("passed", report.Passed).
		WithField("failed", report.Failed).
		WithField("missing", report.Missing).
		Stop()
	return report, nil
}

func runCase(ctx context.Context, opts Options, src string) (Case, error) {
	base := strings.TrimSuffix(filepath.Base(src), opts.SourceExt)
	c := Case{
		Name:         base,
		SourcePath:   src,
		OutputPath:   filepath.Join(opts.TestsDir, base+opts.OutputExt),
		ExpectedPath: filepath.Join(opts.OutputsDir, base+opts.OutputExt),
	}

	expected, err := os.ReadFile(c.ExpectedPath)
	if os.IsNotExist(err) {
		c.Status = StatusMissing
		return c, nil
	}
	if err != nil {
		return c, ioError(err, "failed to read expected output", c.ExpectedPath)
	}

	source, err := os.ReadFile(src)
	if err != nil {
		return c, ioError(err, "failed to read test source", src)
	}

	output, err := opts.Compile(ctx, string(source))
	if err != nil {
		c.CompileErr = err
		output = err.Error() + "\n"
	}
	if err := os.WriteFile(c.OutputPath, []byte(output), 0644); err != nil {
		return c, ioError(err, "failed to write test output", c.OutputPath)
	}

	c.Got = Normalize(output)
	c.Want = Normalize(string(expected))
	if c.Got == c.Want {
		c.Status = StatusPass
	} else {
		c.Status = StatusFail
	}
	return c, nil
}

func ioError(err error, message, path string) error {
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeIO).
		WithOperation("harness.Run").
		WithDetail("path", path)
}

// Normalize converts CRLF line endings and trims surrounding whitespace
func Normalize(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\r\n", "\n"))
}

// WriteText prints one block per case followed by a summary
func (r *Report) WriteText(w io.Writer) {
	for _, c := range r.Cases {
		if c.Status == StatusMissing {
			fmt.Fprintf(w, "[ERROR] Expected output not found: %s\n", c.ExpectedPath)
			continue
		}
		fmt.Fprintf(w, "Running %s...\n", c.Name)
		fmt.Fprintf(w, "  [%s]\n", c.Status)
		if c.Status == StatusFail {
			fmt.Fprintf(w, "     Expected:\n%s\n\n", c.Want)
			fmt.Fprintf(w, "     Got:\n%s\n", c.Got)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "========================")
	fmt.Fprintln(w, "Test Summary")
	fmt.Fprintln(w, "------------------------")
	fmt.Fprintf(w, "Total:   %d\n", r.Total())
	fmt.Fprintf(w, "Passed:  %d\n", r.Passed)
	fmt.Fprintf(w, "Failed:  %d\n", r.Failed)
	fmt.Fprintf(w, "Missing: %d\n", r.Missing)
	if r.OK() {
		fmt.Fprintln(w, "[SUCCESS] All tests passed!")
	} else {
		fmt.Fprintln(w, "[WARNING] Some tests failed.")
	}
}
