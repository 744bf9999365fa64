//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package mcircuit

import (
	"testing"
)

func wiresEqual(a, b []Wire) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func checkArity[T WireValue](t *testing.T, op Operation[T],
	numIn, numOut int) {
	t.Helper()

	if len(op.Inputs()) != numIn {
		t.Errorf("%s: inputs: got %v, expected %d wires",
			op, op.Inputs(), numIn)
	}
	if len(op.Outputs()) != numOut {
		t.Errorf("%s: outputs: got %v, expected %d wires",
			op, op.Outputs(), numOut)
	}
}

func testArity[T WireValue](t *testing.T, c T) {
	checkArity(t, Operation[T]{Kind: Input, Dst: 7}, 0, 1)
	checkArity(t, Operation[T]{Kind: Random, Dst: 7}, 0, 1)
	checkArity(t, Operation[T]{Kind: Add, Dst: 7, Src0: 3, Src1: 4}, 2, 1)
	checkArity(t, Operation[T]{Kind: Sub, Dst: 7, Src0: 3, Src1: 4}, 2, 1)
	checkArity(t, Operation[T]{Kind: Mul, Dst: 7, Src0: 3, Src1: 4}, 2, 1)
	checkArity(t, Operation[T]{Kind: AddConst, Dst: 7, Src0: 3, Const: c},
		1, 1)
	checkArity(t, Operation[T]{Kind: SubConst, Dst: 7, Src0: 3, Const: c},
		1, 1)
	checkArity(t, Operation[T]{Kind: MulConst, Dst: 7, Src0: 3, Const: c},
		1, 1)
	checkArity(t, Operation[T]{Kind: AssertZero, Src0: 3}, 1, 0)
	checkArity(t, Operation[T]{Kind: Const, Dst: 7, Const: c}, 0, 1)
}

func TestArity(t *testing.T) {
	testArity(t, true)
	testArity(t, uint8(42))
	testArity(t, uint64(42))

	var big Uint256
	big.SetUint64(42)
	testArity(t, big)
}

func TestIOOrder(t *testing.T) {
	op := Operation[uint64]{Kind: Sub, Dst: 9, Src0: 5, Src1: 2}
	if !wiresEqual(op.Inputs(), []Wire{5, 2}) {
		t.Errorf("inputs out of order: %v", op.Inputs())
	}
	if !wiresEqual(op.Outputs(), []Wire{9}) {
		t.Errorf("unexpected outputs: %v", op.Outputs())
	}
}

func TestB2AIO(t *testing.T) {
	gate := B2A{Dst: 17, Low: 100}

	inputs := gate.Inputs()
	if len(inputs) != B2AWidth {
		t.Fatalf("B2A inputs: got %d wires", len(inputs))
	}
	for i, w := range inputs {
		if w != Wire(100+i) {
			t.Errorf("B2A input %d: got %s, expected w%d", i, w, 100+i)
		}
	}
	if !wiresEqual(gate.Outputs(), []Wire{17}) {
		t.Errorf("B2A outputs: %v", gate.Outputs())
	}
}

func TestSizeHintIO(t *testing.T) {
	gate := SizeHint{Arith: 40, Bool: 300}
	if len(gate.Inputs()) != 0 || len(gate.Outputs()) != 0 {
		t.Errorf("size hint must have no I/O wires")
	}
}

func TestConstruct(t *testing.T) {
	c := uint64(99)

	op := Construct[uint64](MulConst, []Wire{4}, []Wire{5}, &c)
	expected := Operation[uint64]{Kind: MulConst, Dst: 5, Src0: 4, Const: 99}
	if op != expected {
		t.Errorf("construct: got %s, expected %s", op, expected)
	}

	// Extra wires beyond the shape's arity are ignored.
	op = Construct[uint64](AssertZero, []Wire{4, 5, 6}, []Wire{7}, nil)
	if op.Src0 != 4 {
		t.Errorf("construct AssertZero: got %s", op)
	}
}

func TestConstructContract(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("construct with missing constant did not panic")
		}
	}()
	Construct[bool](Const, nil, []Wire{3}, nil)
}

func TestHasConst(t *testing.T) {
	c, ok := Operation[uint64]{Kind: AddConst, Dst: 1, Src0: 0,
		Const: 42}.Constant()
	if !ok || c != 42 {
		t.Errorf("AddConst constant: got %d, %v", c, ok)
	}
	_, ok = Operation[uint64]{Kind: Add, Dst: 2, Src0: 0, Src1: 1}.Constant()
	if ok {
		t.Errorf("Add gate must not expose a constant")
	}
	_, ok = Operation[uint64]{Kind: AssertZero, Src0: 0}.Constant()
	if ok {
		t.Errorf("AssertZero gate must not expose a constant")
	}
}

func TestIdentity(t *testing.T) {
	if !(Operation[uint64]{Kind: AddConst, Dst: 1, Src0: 0}).IsIdentity() {
		t.Errorf("AddConst 0 must be an identity")
	}
	if !(Operation[uint64]{Kind: MulConst, Dst: 1, Src0: 0,
		Const: 1}).IsIdentity() {
		t.Errorf("MulConst 1 must be an identity")
	}
	if (Operation[uint64]{Kind: MulConst, Dst: 1, Src0: 0}).IsIdentity() {
		t.Errorf("MulConst 0 must not be an identity")
	}
	if (Operation[uint64]{Kind: Const, Dst: 1}).IsIdentity() {
		t.Errorf("Const gates are never identities")
	}
	if (Operation[bool]{Kind: SubConst, Dst: 1, Src0: 0,
		Const: true}).IsIdentity() {
		t.Errorf("SubConst true must not be an identity")
	}
	if !(Operation[bool]{Kind: MulConst, Dst: 1, Src0: 0,
		Const: true}).IsIdentity() {
		t.Errorf("MulConst true must be an identity")
	}

	id := IdentityGate[uint64](9, 3)
	if !id.IsIdentity() {
		t.Errorf("IdentityGate must build an identity")
	}
	if !wiresEqual(id.Inputs(), []Wire{3}) ||
		!wiresEqual(id.Outputs(), []Wire{9}) {
		t.Errorf("IdentityGate wiring: %s", id)
	}

	if IsIdentity(B2A{Dst: 1, Low: 0}) {
		t.Errorf("B2A is never an identity")
	}
	if IsIdentity(SizeHint{}) {
		t.Errorf("SizeHint is never an identity")
	}
	if !IsIdentity(GF2{Op: IdentityGate[bool](9, 3)}) {
		t.Errorf("GF2 identity not detected")
	}
}

func TestWireValues(t *testing.T) {
	if !IsZero(false) || IsZero(true) {
		t.Errorf("bool zero detection")
	}
	if !IsOne(true) || IsOne(false) {
		t.Errorf("bool one detection")
	}
	if !IsOne(FromUint64[Uint256](1)) {
		t.Errorf("Uint256 one detection")
	}
	if !IsZero(Zero[Uint256]()) {
		t.Errorf("Uint256 zero detection")
	}

	buf := ValueBytes(uint64(0x0102030405060708))
	if len(buf) != 8 || buf[0] != 0x08 || buf[7] != 0x01 {
		t.Errorf("u64 little-endian encoding: %x", buf)
	}
	buf = ValueBytes(FromUint64[Uint256](0x1234))
	if len(buf) != 32 || buf[0] != 0x34 || buf[1] != 0x12 || buf[31] != 0 {
		t.Errorf("Uint256 little-endian encoding: %x", buf)
	}
}
