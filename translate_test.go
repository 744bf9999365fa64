//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package mcircuit

import (
	"testing"
)

func testTranslate[T WireValue](t *testing.T, c T) {
	gates := []Operation[T]{
		{Kind: Input, Dst: 10},
		{Kind: Random, Dst: 10},
		{Kind: Add, Dst: 10, Src0: 20, Src1: 30},
		{Kind: Sub, Dst: 10, Src0: 20, Src1: 30},
		{Kind: Mul, Dst: 10, Src0: 20, Src1: 30},
		{Kind: AddConst, Dst: 10, Src0: 20, Const: c},
		{Kind: SubConst, Dst: 10, Src0: 20, Const: c},
		{Kind: MulConst, Dst: 10, Src0: 20, Const: c},
		{Kind: AssertZero, Src0: 20},
		{Kind: Const, Dst: 10, Const: c},
	}
	for _, gate := range gates {
		// Identity law: translating a gate onto its own wires
		// reproduces the gate.
		identity := gate.Translate(gate.Inputs(), gate.Outputs())
		if identity != gate {
			t.Errorf("identity translation: got %s, expected %s",
				identity, gate)
		}

		// A target gate of the same variant defines the relocation.
		target := gate
		if len(gate.Outputs()) > 0 {
			target.Dst += 100
		}
		if len(gate.Inputs()) > 0 {
			target.Src0 += 100
		}
		if len(gate.Inputs()) > 1 {
			target.Src1 += 100
		}
		translated := gate.Translate(target.Inputs(), target.Outputs())
		if translated != target {
			t.Errorf("translation: got %s, expected %s", translated, target)
		}

		// Hashmap translation and function translation must agree.
		table := make(map[Wire]Wire)
		for _, w := range append(gate.Inputs(), gate.Outputs()...) {
			table[w] = w + 100
		}
		shift := func(w Wire) Wire { return w + 100 }

		viaMap := gate.TranslateMap(table)
		viaFunc := gate.TranslateFunc(shift, shift)
		if viaMap != target || viaFunc != target {
			t.Errorf("map/func translation mismatch: %s vs %s (expected %s)",
				viaMap, viaFunc, target)
		}

		// Wires absent from the table pass through unchanged.
		unchanged := gate.TranslateMap(map[Wire]Wire{999: 0})
		if unchanged != gate {
			t.Errorf("empty-table translation: got %s, expected %s",
				unchanged, gate)
		}
	}
}

func TestTranslate(t *testing.T) {
	testTranslate(t, true)
	testTranslate(t, uint8(42))
	testTranslate(t, uint64(42))
	testTranslate(t, FromUint64[Uint256](42))
}

func TestTranslateCombine(t *testing.T) {
	gates := []CombineOperation{
		GF2{Op: Operation[bool]{Kind: Mul, Dst: 10, Src0: 20, Src1: 30}},
		GF2AsU8{Op: Operation[uint8]{Kind: Add, Dst: 10, Src0: 20, Src1: 30}},
		Z64{Op: Operation[uint64]{Kind: AddConst, Dst: 10, Src0: 20,
			Const: 7}},
		Z256{Op: Operation[Uint256]{Kind: Const, Dst: 10,
			Const: FromUint64[Uint256](7)}},
		B2A{Dst: 10, Low: 64},
	}
	for _, gate := range gates {
		identity, ok := gate.Translate(gate.Inputs(), gate.Outputs())
		if !ok {
			t.Fatalf("%s: translation failed", gate)
		}
		if identity != gate {
			t.Errorf("identity translation: got %s, expected %s",
				identity, gate)
		}

		shift := func(w Wire) Wire { return w + 1000 }
		viaFunc, ok := TranslateFunc(gate, shift, shift)
		if !ok {
			t.Fatalf("%s: function translation failed", gate)
		}
		table := make(map[Wire]Wire)
		for _, w := range append(gate.Inputs(), gate.Outputs()...) {
			table[w] = w + 1000
		}
		viaMap, ok := TranslateMap(gate, table)
		if !ok {
			t.Fatalf("%s: map translation failed", gate)
		}
		if viaFunc != viaMap {
			t.Errorf("map/func translation mismatch: %s vs %s",
				viaMap, viaFunc)
		}
	}
}

func TestTranslateB2A(t *testing.T) {
	gate := B2A{Dst: 7, Low: 128}
	target := B2A{Dst: 8, Low: 256}

	translated, ok := gate.Translate(target.Inputs(), target.Outputs())
	if !ok {
		t.Fatalf("B2A translation failed")
	}
	if translated != target {
		t.Errorf("B2A translation: got %s, expected %s", translated, target)
	}
}

func TestSizeHintNotTranslatable(t *testing.T) {
	gate := SizeHint{Arith: 10, Bool: 20}

	_, ok := gate.Translate(gate.Inputs(), gate.Outputs())
	if ok {
		t.Errorf("size hints must not be translatable")
	}
	_, ok = TranslateMap(gate, map[Wire]Wire{0: 1})
	if ok {
		t.Errorf("size hints must not be translatable via tables")
	}
	_, ok = TranslateFunc(gate,
		func(w Wire) Wire { return w },
		func(w Wire) Wire { return w })
	if ok {
		t.Errorf("size hints must not be translatable via functions")
	}
}
