package bytecode

import "testing"

func TestWriteConstantUsesShortFormBelow256(t *testing.T) {
	c := New("test")
	if err := c.WriteConstant(Int(7), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Code) != 2 {
		t.Fatalf("got %d bytes, want 2 (OP_CONSTANT + index)", len(c.Code))
	}
	if Opcode(c.Code[0]) != OpConstant {
		t.Fatalf("got opcode %s, want OP_CONSTANT", Opcode(c.Code[0]))
	}
	if c.Code[1] != 0 {
		t.Fatalf("got index byte %d, want 0", c.Code[1])
	}
}

func TestWriteConstantSwitchesToLongFormAt256(t *testing.T) {
	c := New("test")
	for i := 0; i < 256; i++ {
		if err := c.WriteConstant(Int(int32(i)), 0); err != nil {
			t.Fatalf("constant %d: unexpected error: %v", i, err)
		}
	}
	before := len(c.Code)
	if err := c.WriteConstant(Int(256), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after := len(c.Code)
	if after-before != 4 {
		t.Fatalf("got %d bytes for the 257th constant, want 4 (OP_CONSTANT_LONG + 3-byte index)", after-before)
	}
	if Opcode(c.Code[before]) != OpConstantLong {
		t.Fatalf("got opcode %s, want OP_CONSTANT_LONG", Opcode(c.Code[before]))
	}
	lo, mid, hi := int(c.Code[before+1]), int(c.Code[before+2]), int(c.Code[before+3])
	if index := lo | mid<<8 | hi<<16; index != 256 {
		t.Fatalf("decoded index %d, want 256", index)
	}
}

func TestLineOfTracksEmittedOffsets(t *testing.T) {
	c := New("test")
	c.WriteByte(byte(OpNegate), 3)
	c.WriteByte(byte(OpReturn), 5)

	line, ok := c.LineOf(0)
	if !ok || line != 3 {
		t.Fatalf("offset 0: got (%d, %v), want (3, true)", line, ok)
	}
	line, ok = c.LineOf(1)
	if !ok || line != 5 {
		t.Fatalf("offset 1: got (%d, %v), want (5, true)", line, ok)
	}
	if _, ok := c.LineOf(2); ok {
		t.Fatal("offset 2 should not have a recorded line")
	}
}

func TestValueStringFormatting(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Int(-3), "-3"},
		{Float(1.5), "1.5"},
		{Byte(255), "255b"},
		{Nil, "nil"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
	}
}

func TestOpcodeValidRejectsOutOfRangeBytes(t *testing.T) {
	if !Valid(byte(OpReturn)) {
		t.Error("OP_RETURN should be valid")
	}
	if Valid(0xFF) {
		t.Error("0xFF should not decode to a valid opcode")
	}
}
