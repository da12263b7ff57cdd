package vm

import "github.com/lookbusy1344/poke/internal/bytecode"

// negate preserves the operand's concrete variant: Int stays Int,
// Float stays Float. Byte negation is unspecified and a runtime error
// (spec.md §4.6, §9's open question).
func negate(v bytecode.Value) (bytecode.Value, error) {
	switch v.Kind {
	case bytecode.KindInt:
		return bytecode.Int(-v.Int), nil
	case bytecode.KindFloat:
		return bytecode.Float(-v.Float), nil
	default:
		return bytecode.Nil, runtimeError("cannot negate this value")
	}
}

// binaryOp lifts both operands to float64 and evaluates op(left,
// right) in that mathematical order. The stack push order is left
// then right, so the VM pops right first and left second — a
// correctness requirement fixed by spec.md §9's open question, not an
// implementation detail left to chance.
func binaryOp(op bytecode.Opcode, left, right bytecode.Value) (bytecode.Value, error) {
	l, ok := left.AsFloat64()
	if !ok {
		return bytecode.Nil, runtimeError("operand cannot be coerced to a number")
	}
	r, ok := right.AsFloat64()
	if !ok {
		return bytecode.Nil, runtimeError("operand cannot be coerced to a number")
	}

	switch op {
	case bytecode.OpAdd:
		return bytecode.Float(l + r), nil
	case bytecode.OpSubtract:
		return bytecode.Float(l - r), nil
	case bytecode.OpMultiply:
		return bytecode.Float(l * r), nil
	case bytecode.OpDivide:
		// IEEE-754 division by zero yields +/-Inf or NaN; not an error.
		return bytecode.Float(l / r), nil
	default:
		return bytecode.Nil, runtimeError("not a binary opcode")
	}
}
