// Package debug is the pure, observational disassembler collaborator
// from spec.md §4.4: a function over a Chunk (or a token stream) that
// produces a human-readable listing. It never mutates what it
// inspects.
package debug

import (
	"fmt"
	"io"

	"github.com/lookbusy1344/poke/internal/bytecode"
)

// Disassemble writes a full listing of chunk to w, in the shape
// specified by spec.md §6:
//
//	==== Chunk "<name>" Disassemble ====
//	LINE | OPCODE | VALUE? | ...
func Disassemble(w io.Writer, chunk *bytecode.Chunk) {
	fmt.Fprintf(w, "==== Chunk %q Disassemble ====\n", chunk.Name)
	fmt.Fprintln(w, "LINE | OPCODE | VALUE? | ...")
	lastLine := -1
	for offset := 0; offset < len(chunk.Code); {
		offset, lastLine = disassembleInstruction(w, chunk, offset, lastLine)
	}
}

// Instruction is one decoded entry, reused by the TUI/GUI live views
// (internal/debugsvc) so there is one source of truth for "what does
// this opcode mean" across the batch dump and the interactive panels.
type Instruction struct {
	Offset   int
	NextIP   int
	Line     int
	SameLine bool
	Op       bytecode.Opcode
	Value    bytecode.Value
	HasValue bool
	Index    int
}

// DisassembleInstruction decodes the single instruction at offset,
// without printing anything.
func DisassembleInstruction(chunk *bytecode.Chunk, offset int, lastLine int) Instruction {
	line, _ := chunk.LineOf(offset)
	inst := Instruction{Offset: offset, Line: line, SameLine: offset > 0 && line == lastLine}

	op := bytecode.Opcode(chunk.Code[offset])
	inst.Op = op

	switch op {
	case bytecode.OpConstant:
		index := int(chunk.Code[offset+1])
		inst.Index = index
		inst.Value = chunk.Constants[index]
		inst.HasValue = true
		inst.NextIP = offset + 2
	case bytecode.OpConstantLong:
		lo := int(chunk.Code[offset+1])
		mid := int(chunk.Code[offset+2])
		hi := int(chunk.Code[offset+3])
		index := lo | mid<<8 | hi<<16
		inst.Index = index
		inst.Value = chunk.Constants[index]
		inst.HasValue = true
		inst.NextIP = offset + 4
	default:
		inst.NextIP = offset + op.Width()
	}
	return inst
}

func disassembleInstruction(w io.Writer, chunk *bytecode.Chunk, offset int, lastLine int) (int, int) {
	inst := DisassembleInstruction(chunk, offset, lastLine)

	if inst.SameLine {
		fmt.Fprintf(w, "   |  ")
	} else {
		fmt.Fprintf(w, "%4d  ", inst.Line+1)
	}

	if inst.HasValue {
		fmt.Fprintf(w, "%-18s %4d '%s'\n", inst.Op, inst.Index, inst.Value)
	} else {
		fmt.Fprintf(w, "%s\n", inst.Op)
	}

	return inst.NextIP, inst.Line
}
