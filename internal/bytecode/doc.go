// Package bytecode defines the compiled output of the expression
// compiler: opcodes, runtime values, and the Chunk that ties a code
// buffer to its constant pool and line table.
//
// Chunk indexes lines by line number -> set of code offsets, which is
// convenient to write but forces a scan on lookup in the worst case.
// An offset -> line array is an equally conforming alternative (see
// spec.md §9); Chunk keeps a parallel offsetLine index internally so
// LineOf stays O(1) without changing the observable line table shape.
package bytecode
