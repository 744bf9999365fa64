//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package mcircuit

// IsIdentity tests if the gate is a no-op, eligible for deletion
// during optimization: an AddConst or SubConst with a zero constant,
// or a MulConst with a one constant. Const, Input and Random gates
// are never identities.
func (op Operation[T]) IsIdentity() bool {
	switch op.Kind {
	case AddConst, SubConst:
		return IsZero(op.Const)
	case MulConst:
		return IsOne(op.Const)
	default:
		return false
	}
}

// IdentityGate builds the canonical identity gate between two wires:
// an AddConst with the zero constant. Optimization passes use it as a
// buffer when a wire must be renamed without changing its value.
func IdentityGate[T WireValue](out, in Wire) Operation[T] {
	return Operation[T]{
		Kind: AddConst,
		Dst:  out,
		Src0: in,
	}
}

// IsIdentity tests if the composite gate is a no-op. B2A and SizeHint
// gates never are.
func IsIdentity(op CombineOperation) bool {
	switch g := op.(type) {
	case GF2:
		return g.Op.IsIdentity()
	case GF2AsU8:
		return g.Op.IsIdentity()
	case Z64:
		return g.Op.IsIdentity()
	case Z256:
		return g.Op.IsIdentity()
	default:
		return false
	}
}
