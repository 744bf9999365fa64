//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package mcircuit

// HasIO exposes the input and output wires of a gate. The input slice
// is order-significant; the output slice has at most one element.
type HasIO interface {
	Inputs() []Wire
	Outputs() []Wire
}

// Inputs returns the gate input wires in order.
func (op Operation[T]) Inputs() []Wire {
	switch op.Kind.Shape() {
	case OutputShape, BinaryConstShape:
		return []Wire{op.Src0}
	case BinaryShape:
		return []Wire{op.Src0, op.Src1}
	default:
		return nil
	}
}

// Outputs returns the gate output wires: one element, or none for
// assertion gates.
func (op Operation[T]) Outputs() []Wire {
	switch op.Kind.Shape() {
	case OutputShape:
		return nil
	default:
		return []Wire{op.Dst}
	}
}

// Dst returns the single output wire of the gate, if it has one.
func Dst(op HasIO) (Wire, bool) {
	outputs := op.Outputs()
	if len(outputs) == 0 {
		return 0, false
	}
	return outputs[0], true
}
