// File: symbols.go
// Title: Symbol Table
// Description: Declared variables in declaration order. The REPL keeps one
//              table across lines; batch compilation uses a fresh table per
//              program.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17

package codegen

import (
	"sync"

	"github.com/msto63/acdc/foundation/acdc/ast"
	mdwerror "github.com/msto63/acdc/foundation/core/error"
)

// Symbol is one declared variable
type Symbol struct {
	Name     string
	Register string
	Declared ast.Position
}

// SymbolTable maps variable names to dc registers
type SymbolTable struct {
	mu      sync.RWMutex
	symbols map[string]Symbol
	order   []string
}

// NewSymbolTable creates an empty table
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]Symbol)}
}

// Declare adds name. Declaring a name twice fails with ACDC_REDECLARED.
func (st *SymbolTable) Declare(name string, pos ast.Position) (Symbol, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if prev, ok := st.symbols[name]; ok {
		return Symbol{}, mdwerror.Newf("variable %q is already declared at line %d, column %d",
			name, prev.Declared.Line, prev.Declared.Column).
			WithCode(mdwerror.CodeACDCRedeclared).
			WithDetail("name", name).
			WithDetail("line", pos.Line).
			WithDetail("column", pos.Column)
	}

	sym := Symbol{Name: name, Register: name, Declared: pos}
	st.symbols[name] = sym
	st.order = append(st.order, name)
	return sym, nil
}

// Lookup returns the symbol for name
func (st *SymbolTable) Lookup(name string) (Symbol, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	sym, ok := st.symbols[name]
	return sym, ok
}

// Resolve is Lookup with an ACDC_UNDECLARED error for unknown names
func (st *SymbolTable) Resolve(name string, pos ast.Position) (Symbol, error) {
	sym, ok := st.Lookup(name)
	if !ok {
		return Symbol{}, mdwerror.Newf("variable %q is used before it is declared", name).
			WithCode(mdwerror.CodeACDCUndeclared).
			WithDetail("name", name).
			WithDetail("line", pos.Line).
			WithDetail("column", pos.Column)
	}
	return sym, nil
}

// Names returns the declared names in declaration order
func (st *SymbolTable) Names() []string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := make([]string, len(st.order))
	copy(out, st.order)
	return out
}

// Len returns the number of declared symbols
func (st *SymbolTable) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.order)
}

// Clone returns an independent copy
func (st *SymbolTable) Clone() *SymbolTable {
	st.mu.RLock()
	defer st.mu.RUnlock()
	clone := NewSymbolTable()
	for _, name := range st.order {
		clone.symbols[name] = st.symbols[name]
		clone.order = append(clone.order, name)
	}
	return clone
}
