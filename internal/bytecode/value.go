package bytecode

import "fmt"

// ValueKind tags the Value sum type.
type ValueKind int

const (
	KindNil ValueKind = iota
	KindInt
	KindFloat
	KindByte
)

// Value is the VM's runtime representation: a tagged sum of Int,
// Float, Byte, or Nil. Nil is never produced by a numeric literal
// (spec.md §3).
type Value struct {
	Kind  ValueKind
	Int   int32
	Float float64
	Byte  byte
}

func Int(v int32) Value     { return Value{Kind: KindInt, Int: v} }
func Float(v float64) Value { return Value{Kind: KindFloat, Float: v} }
func Byte(v byte) Value     { return Value{Kind: KindByte, Byte: v} }

var Nil = Value{Kind: KindNil}

func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return fmt.Sprintf("%d", v.Int)
	case KindFloat:
		return fmt.Sprintf("%g", v.Float)
	case KindByte:
		return fmt.Sprintf("%db", v.Byte)
	default:
		return "nil"
	}
}

// AsFloat64 coerces a Value to float64 for binary-op evaluation. Nil
// cannot be coerced.
func (v Value) AsFloat64() (float64, bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.Int), true
	case KindFloat:
		return v.Float, true
	case KindByte:
		return float64(v.Byte), true
	default:
		return 0, false
	}
}
