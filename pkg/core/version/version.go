// ============================================================================
// acdc - ACDC compiler toolchain
// ============================================================================
//
// Package:     version
// Description: Central version management for the toolchain components
// Author:      msto63
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/msto63/acdc/foundation/acdc/lang"
)

// Version constants for the toolchain components
const (
	// Platform version
	Platform = "0.1.0"

	// Component versions
	Lexer   = "0.1.0"
	Parser  = "0.1.0"
	Codegen = "0.1.0"
	Harness = "0.1.0"
	REPL    = "0.1.0"
)

// Set at build time with -ldflags "-X github.com/msto63/acdc/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch strings.ToLower(name) {
	case "lexer":
		return Lexer
	case "parser":
		return Parser
	case "codegen":
		return Codegen
	case "harness":
		return Harness
	case "repl":
		return REPL
	default:
		return Platform
	}
}

// Info describes the running build
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	Platform  string
	// Languages lists the supported language revisions, oldest first
	Languages []string
}

// Get returns the build information
func Get() Info {
	var langs []string
	for _, rev := range lang.Revisions() {
		langs = append(langs, rev.Version.String())
	}
	return Info{
		Version:   Platform,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Languages: langs,
	}
}

func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "acdc %s\n", i.Version)
	fmt.Fprintf(&b, "  commit:    %s\n", i.Commit)
	fmt.Fprintf(&b, "  built:     %s\n", i.BuildDate)
	fmt.Fprintf(&b, "  go:        %s %s\n", i.GoVersion, i.Platform)
	fmt.Fprintf(&b, "  languages: %s\n", strings.Join(i.Languages, ", "))
	return b.String()
}

// AtLeast reports whether the platform version satisfies ">= minimum"
func AtLeast(minimum string) (bool, error) {
	c, err := semver.NewConstraint(">= " + minimum)
	if err != nil {
		return false, err
	}
	return c.Check(semver.MustParse(Platform)), nil
}
