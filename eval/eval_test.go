//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package eval

import (
	"testing"

	"github.com/markkurossi/mcircuit"
	"github.com/stretchr/testify/require"
)

func gf2(kind mcircuit.OpKind, wires ...mcircuit.Wire) mcircuit.GF2 {
	return mcircuit.GF2{Op: boolOp(kind, false, wires...)}
}

func gf2c(kind mcircuit.OpKind, c bool, wires ...mcircuit.Wire) mcircuit.GF2 {
	return mcircuit.GF2{Op: boolOp(kind, c, wires...)}
}

func boolOp(kind mcircuit.OpKind, c bool,
	wires ...mcircuit.Wire) mcircuit.Operation[bool] {

	op := mcircuit.Operation[bool]{
		Kind:  kind,
		Const: c,
	}
	assign(&op.Dst, &op.Src0, &op.Src1, kind, wires)
	return op
}

func z64(kind mcircuit.OpKind, c uint64, wires ...mcircuit.Wire) mcircuit.Z64 {
	op := mcircuit.Operation[uint64]{
		Kind:  kind,
		Const: c,
	}
	assign(&op.Dst, &op.Src0, &op.Src1, kind, wires)
	return mcircuit.Z64{Op: op}
}

// assign fills the wire fields in the positional order the gate
// shape implies: dst first for gates that have one, then sources.
func assign(dst, src0, src1 *mcircuit.Wire, kind mcircuit.OpKind,
	wires []mcircuit.Wire) {

	if kind == mcircuit.AssertZero {
		*src0 = wires[0]
		return
	}
	*dst = wires[0]
	if len(wires) > 1 {
		*src0 = wires[1]
	}
	if len(wires) > 2 {
		*src1 = wires[2]
	}
}

func TestSimpleEval(t *testing.T) {
	program := []mcircuit.CombineOperation{
		gf2c(mcircuit.Const, true, 0),
		gf2c(mcircuit.AddConst, true, 1, 0),
		gf2(mcircuit.AssertZero, 1),

		z64(mcircuit.Const, 15, 0),
		z64(mcircuit.AddConst, 14, 1, 0),
		z64(mcircuit.SubConst, 14+15, 2, 1),
		z64(mcircuit.AssertZero, 0, 2),
	}
	require.NoError(t, Evaluate(program, nil, nil))
}

func TestEvalWithInputs(t *testing.T) {
	program := []mcircuit.CombineOperation{
		gf2(mcircuit.Input, 0),
		gf2(mcircuit.Input, 1),
		gf2(mcircuit.Mul, 2, 1, 0),
		gf2c(mcircuit.AddConst, true, 3, 2),
		gf2(mcircuit.AssertZero, 3),

		z64(mcircuit.Input, 0, 0),
		z64(mcircuit.Input, 0, 1),
		z64(mcircuit.Mul, 0, 2, 1, 0),
		z64(mcircuit.SubConst, 14*15, 3, 2),
		z64(mcircuit.AssertZero, 0, 3),
	}
	err := Evaluate(program, []bool{true, true}, []uint64{14, 15})
	require.NoError(t, err)
}

func TestEvalB2A(t *testing.T) {
	const expected uint64 = 0b11011101

	program := []mcircuit.CombineOperation{
		mcircuit.SizeHint{Arith: 4, Bool: 64},
	}
	// Low half of the byte from inputs, high half from constants.
	for bit := 0; bit < 4; bit++ {
		program = append(program, gf2(mcircuit.Input, mcircuit.Wire(bit)))
	}
	for bit := 4; bit < 8; bit++ {
		program = append(program, gf2c(mcircuit.Const,
			expected&(1<<bit) != 0, mcircuit.Wire(bit)))
	}
	program = append(program,
		mcircuit.B2A{Dst: 1, Low: 0},
		z64(mcircuit.Input, 0, 2),
		z64(mcircuit.Sub, 0, 3, 1, 2),
		z64(mcircuit.AssertZero, 0, 3),
	)

	var boolInputs []bool
	for bit := 0; bit < 4; bit++ {
		boolInputs = append(boolInputs, expected&(1<<bit) != 0)
	}
	err := Evaluate(program, boolInputs, []uint64{expected})
	require.NoError(t, err)
}

func TestEvalAssertionFailure(t *testing.T) {
	program := []mcircuit.CombineOperation{
		gf2c(mcircuit.Const, true, 0),
		gf2(mcircuit.AssertZero, 0),
	}
	err := Evaluate(program, nil, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "assertion failed")

	program = []mcircuit.CombineOperation{
		z64(mcircuit.Const, 42, 0),
		z64(mcircuit.AssertZero, 0, 0),
	}
	err = Evaluate(program, nil, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "assertion failed")
}

func TestEvalInputExhaustion(t *testing.T) {
	program := []mcircuit.CombineOperation{
		gf2(mcircuit.Input, 0),
	}
	err := Evaluate(program, nil, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "out of boolean inputs")

	program = []mcircuit.CombineOperation{
		z64(mcircuit.Input, 0, 0),
	}
	err = Evaluate(program, nil, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "out of arithmetic inputs")
}

func TestEvalWrapping(t *testing.T) {
	const max = ^uint64(0)

	program := []mcircuit.CombineOperation{
		z64(mcircuit.Const, max, 0),
		z64(mcircuit.AddConst, 1, 1, 0),
		z64(mcircuit.AssertZero, 0, 1),
	}
	require.NoError(t, Evaluate(program, nil, nil))
}

func TestEvalByteCarriedBooleans(t *testing.T) {
	u8 := func(kind mcircuit.OpKind, c uint8,
		wires ...mcircuit.Wire) mcircuit.GF2AsU8 {

		op := mcircuit.Operation[uint8]{
			Kind:  kind,
			Const: c,
		}
		assign(&op.Dst, &op.Src0, &op.Src1, kind, wires)
		return mcircuit.GF2AsU8{Op: op}
	}

	program := []mcircuit.CombineOperation{
		u8(mcircuit.Const, 1, 0),
		u8(mcircuit.AddConst, 1, 1, 0),
		u8(mcircuit.AssertZero, 0, 1),
	}
	require.NoError(t, Evaluate(program, nil, nil))
}

func TestEvalZ256(t *testing.T) {
	z256 := func(kind mcircuit.OpKind, c uint64,
		wires ...mcircuit.Wire) mcircuit.Z256 {

		op := mcircuit.Operation[mcircuit.Uint256]{
			Kind: kind,
		}
		op.Const.SetUint64(c)
		assign(&op.Dst, &op.Src0, &op.Src1, kind, wires)
		return mcircuit.Z256{Op: op}
	}

	program := []mcircuit.CombineOperation{
		z256(mcircuit.Const, 10, 0),
		z256(mcircuit.MulConst, 5, 1, 0),
		z256(mcircuit.Input, 0, 2),
		z256(mcircuit.Sub, 0, 3, 1, 2),
		z256(mcircuit.AssertZero, 0, 3),
	}
	require.NoError(t, Evaluate(program, nil, []uint64{50}))
}

func TestEvalRandom(t *testing.T) {
	program := []mcircuit.CombineOperation{
		gf2(mcircuit.Random, 0),
		z64(mcircuit.Random, 0, 0),
	}
	require.NoError(t, Evaluate(program, nil, nil))
}
