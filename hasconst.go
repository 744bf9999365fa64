//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package mcircuit

// Constant extracts the embedded constant operand of the gate. It
// reports false for variants that do not carry one, including
// assertions and binary non-constant gates.
func (op Operation[T]) Constant() (T, bool) {
	switch op.Kind {
	case AddConst, SubConst, MulConst, Const:
		return op.Const, true
	default:
		var zero T
		return zero, false
	}
}

// BoolConstant extracts the embedded boolean constant of a composite
// gate on the GF(2) domain.
func BoolConstant(op CombineOperation) (bool, bool) {
	g, ok := op.(GF2)
	if !ok {
		return false, false
	}
	return g.Op.Constant()
}

// U64Constant extracts the embedded constant of a composite gate on
// the 64-bit ring.
func U64Constant(op CombineOperation) (uint64, bool) {
	g, ok := op.(Z64)
	if !ok {
		return 0, false
	}
	return g.Op.Constant()
}
