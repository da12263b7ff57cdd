package compiler

import (
	"bytes"
	"io"
	"testing"

	"github.com/lookbusy1344/poke/internal/bytecode"
)

type byteSliceSource struct{ b *bytes.Reader }

func src(s string) *byteSliceSource { return &byteSliceSource{b: bytes.NewReader([]byte(s))} }

func (s *byteSliceSource) ReadByte() (byte, error) {
	b, err := s.b.ReadByte()
	if err == io.EOF {
		return 0, io.EOF
	}
	return b, err
}

func opcodesOf(t *testing.T, chunk *bytecode.Chunk) []bytecode.Opcode {
	t.Helper()
	var ops []bytecode.Opcode
	for offset := 0; offset < len(chunk.Code); {
		op := bytecode.Opcode(chunk.Code[offset])
		ops = append(ops, op)
		offset += op.Width()
	}
	return ops
}

func TestCompileSingleLiteralEndsWithReturn(t *testing.T) {
	chunk, err := Compile(src("42"), "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ops := opcodesOf(t, chunk)
	want := []bytecode.Opcode{bytecode.OpConstant, bytecode.OpReturn}
	if len(ops) != len(want) {
		t.Fatalf("got %v, want %v", ops, want)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Fatalf("got %v, want %v", ops, want)
		}
	}
}

func TestCompileRespectsOperatorPrecedence(t *testing.T) {
	// 1 + 2 * 3 must evaluate the multiplication first.
	chunk, err := Compile(src("1 + 2 * 3"), "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ops := opcodesOf(t, chunk)
	want := []bytecode.Opcode{
		bytecode.OpConstant, bytecode.OpConstant, bytecode.OpConstant,
		bytecode.OpMultiply, bytecode.OpAdd, bytecode.OpReturn,
	}
	if len(ops) != len(want) {
		t.Fatalf("got %v, want %v", ops, want)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Fatalf("got %v, want %v", ops, want)
		}
	}
}

func TestCompileSubtractionIsLeftAssociative(t *testing.T) {
	// 1 - 2 - 3 must be (1 - 2) - 3: subtract, then subtract again.
	chunk, err := Compile(src("1 - 2 - 3"), "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ops := opcodesOf(t, chunk)
	want := []bytecode.Opcode{
		bytecode.OpConstant, bytecode.OpConstant, bytecode.OpSubtract,
		bytecode.OpConstant, bytecode.OpSubtract, bytecode.OpReturn,
	}
	if len(ops) != len(want) {
		t.Fatalf("got %v, want %v", ops, want)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Fatalf("got %v, want %v", ops, want)
		}
	}
}

func TestCompileGroupingEmitsNoExtraOpcodes(t *testing.T) {
	grouped, err := Compile(src("(1 + 2) * 3"), "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ungrouped, err := Compile(src("1 + 2"), "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The grouped expression should carry exactly one more binary op
	// (the multiply) and one more constant than "1 + 2" alone — the
	// parentheses themselves contribute nothing to the opcode stream.
	groupedOps := opcodesOf(t, grouped)
	ungroupedOps := opcodesOf(t, ungrouped)
	if len(groupedOps) != len(ungroupedOps)+2 {
		t.Fatalf("got %v, want exactly 2 more opcodes than %v", groupedOps, ungroupedOps)
	}
}

func TestCompileUnaryBindsTighterThanBinary(t *testing.T) {
	// -1 + 2 must negate 1 before adding, not negate (1 + 2).
	chunk, err := Compile(src("-1 + 2"), "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ops := opcodesOf(t, chunk)
	want := []bytecode.Opcode{
		bytecode.OpConstant, bytecode.OpNegate, bytecode.OpConstant,
		bytecode.OpAdd, bytecode.OpReturn,
	}
	if len(ops) != len(want) {
		t.Fatalf("got %v, want %v", ops, want)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Fatalf("got %v, want %v", ops, want)
		}
	}
}

func TestCompileMissingOperandIsExpectedExpression(t *testing.T) {
	_, err := Compile(src("1 +"), "test")
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	cerr, ok := err.(*Error)
	if !ok || cerr.Kind != ExpectedExpression {
		t.Fatalf("got %v, want ExpectedExpression", err)
	}
}

func TestCompileTrailingTokenIsUnexpectedToken(t *testing.T) {
	_, err := Compile(src("1 2"), "test")
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	cerr, ok := err.(*Error)
	if !ok || cerr.Kind != UnexpectedToken {
		t.Fatalf("got %v, want UnexpectedToken", err)
	}
}

func TestCompileErrorChunkStillEndsWithReturn(t *testing.T) {
	// Even a malformed source should yield a disassemblable chunk.
	chunk, err := Compile(src("1 +"), "test")
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if len(chunk.Code) == 0 || bytecode.Opcode(chunk.Code[len(chunk.Code)-1]) != bytecode.OpReturn {
		t.Fatalf("chunk does not end with OP_RETURN: %v", chunk.Code)
	}
}

func TestCompileWrapsLexErrors(t *testing.T) {
	_, err := Compile(src("0x1"), "test")
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	cerr, ok := err.(*Error)
	if !ok || cerr.Kind != LexError {
		t.Fatalf("got %v, want LexError", err)
	}
	if cerr.Unwrap() == nil {
		t.Fatal("LexError should unwrap to the underlying lexer error")
	}
}
