// File: lang.go
// Title: ACDC Language Revisions
// Description: Registry of ACDC language revisions and their reserved
//              letter sets. Revisions are selected with semver constraints
//              so a configuration can pin "^1.0" or follow the newest
//              revision.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation with revisions 1.0.0 and 2.0.0

// Package lang describes ACDC language revisions and the set of letters
// each revision reserves for keywords.
package lang

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"

	mdwerror "github.com/msto63/acdc/foundation/core/error"
)

// ReservedSet is the set of lowercase letters that cannot name a variable.
// The zero value is not usable; build one with NewReservedSet.
type ReservedSet struct {
	letters [26]bool
}

// NewReservedSet builds a reserved set from letters. The set must contain
// the keyword introducers i and p and nothing but lowercase ASCII letters.
func NewReservedSet(letters string) (ReservedSet, error) {
	var rs ReservedSet
	for _, r := range letters {
		if r < 'a' || r > 'z' {
			return ReservedSet{}, mdwerror.Newf("reserved set %q contains %q, only lowercase letters are allowed", letters, r).
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("lang.NewReservedSet")
		}
		rs.letters[r-'a'] = true
	}
	for _, kw := range []rune{'i', 'p'} {
		if !rs.letters[kw-'a'] {
			return ReservedSet{}, mdwerror.Newf("reserved set %q must contain keyword letter %q", letters, kw).
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("lang.NewReservedSet")
		}
	}
	return rs, nil
}

// MustReservedSet is like NewReservedSet but panics on error
func MustReservedSet(letters string) ReservedSet {
	rs, err := NewReservedSet(letters)
	if err != nil {
		panic(err)
	}
	return rs
}

// Contains reports whether r is reserved
func (rs ReservedSet) Contains(r rune) bool {
	return r >= 'a' && r <= 'z' && rs.letters[r-'a']
}

// IsVariable reports whether r may appear in a variable name
func (rs ReservedSet) IsVariable(r rune) bool {
	return r >= 'a' && r <= 'z' && !rs.letters[r-'a']
}

// IsZero reports whether the set was never initialised
func (rs ReservedSet) IsZero() bool {
	return rs == ReservedSet{}
}

// String returns the reserved letters in alphabetical order
func (rs ReservedSet) String() string {
	var b strings.Builder
	for i, set := range rs.letters {
		if set {
			b.WriteByte(byte('a' + i))
		}
	}
	return b.String()
}

// Revision is one published version of the language
type Revision struct {
	Version  *semver.Version
	Reserved ReservedSet
	Notes    string
}

func (r Revision) String() string {
	return fmt.Sprintf("acdc %s (reserved %q)", r.Version, r.Reserved)
}

var revisions = []Revision{
	{
		Version:  semver.MustParse("1.0.0"),
		Reserved: MustReservedSet("ifonp"),
		Notes:    "keywords i and p, letters of int/print reserved",
	},
	{
		Version:  semver.MustParse("2.0.0"),
		Reserved: MustReservedSet("ifonpls"),
		Notes:    "l and s reserved for dc load/store registers",
	},
}

// DefaultRevision is the constraint applied when nothing is configured
const DefaultRevision = "^2.0"

// Revisions returns all known revisions, oldest first
func Revisions() []Revision {
	out := make([]Revision, len(revisions))
	copy(out, revisions)
	sort.Slice(out, func(i, j int) bool { return out[i].Version.LessThan(out[j].Version) })
	return out
}

// Default returns revision 2.0.0
func Default() Revision {
	rev, err := Resolve(DefaultRevision)
	if err != nil {
		panic(err)
	}
	return rev
}

// Resolve returns the newest revision satisfying constraint. An empty
// constraint selects DefaultRevision.
func Resolve(constraint string) (Revision, error) {
	if strings.TrimSpace(constraint) == "" {
		constraint = DefaultRevision
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return Revision{}, mdwerror.Wrap(err, "invalid language revision constraint").
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("constraint", constraint)
	}

	var best *Revision
	for i := range revisions {
		rev := &revisions[i]
		if !c.Check(rev.Version) {
			continue
		}
		if best == nil || rev.Version.GreaterThan(best.Version) {
			best = rev
		}
	}
	if best == nil {
		return Revision{}, mdwerror.Newf("no language revision satisfies %q", constraint).
			WithCode(mdwerror.CodeNotFound).
			WithDetail("constraint", constraint)
	}
	return *best, nil
}
