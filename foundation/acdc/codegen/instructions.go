// File: instructions.go
// Title: dc Instruction List
// Description: Ordered list of dc instructions, one instruction per line.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17

package codegen

import "strings"

// InstructionList collects generated dc instructions in emission order
type InstructionList struct {
	instructions []string
}

// NewInstructionList creates an empty list
func NewInstructionList() *InstructionList {
	return &InstructionList{}
}

// Append adds one instruction
func (il *InstructionList) Append(instruction string) {
	il.instructions = append(il.instructions, instruction)
}

// Extend appends every instruction of other
func (il *InstructionList) Extend(other *InstructionList) {
	if other == nil {
		return
	}
	il.instructions = append(il.instructions, other.instructions...)
}

// Instructions returns a copy of the instructions
func (il *InstructionList) Instructions() []string {
	out := make([]string, len(il.instructions))
	copy(out, il.instructions)
	return out
}

// Len returns the number of instructions
func (il *InstructionList) Len() int {
	return len(il.instructions)
}

// String renders the list as a dc script, one instruction per line
func (il *InstructionList) String() string {
	if len(il.instructions) == 0 {
		return ""
	}
	return strings.Join(il.instructions, "\n") + "\n"
}
