//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package exporters

import (
	"bytes"
	"strings"
	"testing"

	"github.com/markkurossi/mcircuit"
)

// The running example: (a ^ c) & (b ^ c) with an inverted assertion
// output.
var exampleGates = []mcircuit.Operation[bool]{
	{Kind: mcircuit.Input, Dst: 1},
	{Kind: mcircuit.Input, Dst: 2},
	{Kind: mcircuit.Input, Dst: 3},
	{Kind: mcircuit.Add, Dst: 4, Src0: 1, Src1: 3},
	{Kind: mcircuit.Add, Dst: 5, Src0: 2, Src1: 3},
	{Kind: mcircuit.Mul, Dst: 6, Src0: 5, Src1: 4},
	{Kind: mcircuit.AddConst, Dst: 0, Src0: 6, Const: true},
	{Kind: mcircuit.AssertZero, Src0: 0},
}

func TestBristolExport(t *testing.T) {
	gates, err := BindWitness(exampleGates, []bool{false, false, true})
	if err != nil {
		t.Fatalf("BindWitness: %v", err)
	}

	var buf bytes.Buffer
	err = Export(Bristol{}, gates, &buf)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	expected := `1 1 0 1 EQ
1 1 0 2 EQ
1 1 1 3 EQ
2 1 1 3 4 XOR
2 1 2 3 5 XOR
2 1 5 4 6 AND
1 1 6 0 INV
0 1 0 OUTPUT
`
	if buf.String() != expected {
		t.Errorf("unexpected export:\n%s", buf.String())
	}
}

func TestBristolIdentityGates(t *testing.T) {
	gates := []mcircuit.Operation[bool]{
		{Kind: mcircuit.SubConst, Dst: 2, Src0: 1, Const: false},
		{Kind: mcircuit.MulConst, Dst: 3, Src0: 2, Const: true},
		{Kind: mcircuit.MulConst, Dst: 4, Src0: 3, Const: false},
	}
	var buf bytes.Buffer
	err := Export(Bristol{}, gates, &buf)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	expected := `1 1 1 2 EQW
1 1 2 3 EQW
1 1 0 4 EQ
`
	if buf.String() != expected {
		t.Errorf("unexpected export:\n%s", buf.String())
	}
}

func TestBristolRejectsRandom(t *testing.T) {
	gates := []mcircuit.Operation[bool]{
		{Kind: mcircuit.Random, Dst: 1},
	}
	err := Export(Bristol{}, gates, &bytes.Buffer{})
	if err == nil {
		t.Fatal("random gate accepted")
	}
	if !strings.Contains(err.Error(), "gate 0") {
		t.Errorf("error lacks gate index: %v", err)
	}
}

func TestIR1Export(t *testing.T) {
	gates, err := BindWitness(exampleGates, []bool{true, false, true})
	if err != nil {
		t.Fatalf("BindWitness: %v", err)
	}

	var buf bytes.Buffer
	err = Export(IR1{}, gates, &buf)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	expected := `$1 <- < 1 >;
$2 <- < 0 >;
$3 <- < 1 >;
$4 <- @xor($1, $3);
$5 <- @xor($2, $3);
$6 <- @and($5, $4);
$0 <- @xor($6, < 1 >);
@assert_zero($0);
`
	if buf.String() != expected {
		t.Errorf("unexpected export:\n%s", buf.String())
	}
}

func TestIR1RejectsInputs(t *testing.T) {
	err := Export(IR1{}, exampleGates, &bytes.Buffer{})
	if err == nil {
		t.Fatal("input gate accepted")
	}
}

func TestBindWitnessExhaustion(t *testing.T) {
	_, err := BindWitness(exampleGates, []bool{true})
	if err == nil {
		t.Fatal("short witness accepted")
	}
}
