//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package mcircuit

// AnalysisPass is a single-scan analysis over a composite program.
type AnalysisPass[Output any] interface {
	// AnalyzeGate folds one gate into the analysis state.
	AnalyzeGate(gate CombineOperation)

	// Finish returns the analysis result.
	Finish() Output
}

// Analyze runs the pass over every gate of the program and returns
// its result.
func Analyze[Output any](pass AnalysisPass[Output],
	program []CombineOperation) Output {

	for _, gate := range program {
		pass.AnalyzeGate(gate)
	}
	return pass.Finish()
}

// WireRange is the per-domain extent of the wire IDs a program
// touches.
type WireRange struct {
	LargestArith  int
	LargestBool   int
	SmallestArith int
	SmallestBool  int
}

// WireCounter computes the largest and smallest wire IDs referenced
// in each domain.
type WireCounter struct {
	rng WireRange
}

// NewWireCounter creates a new wire counter pass.
func NewWireCounter() *WireCounter {
	return &WireCounter{
		rng: WireRange{
			SmallestArith: int(^uint(0) >> 1),
			SmallestBool:  int(^uint(0) >> 1),
		},
	}
}

// AnalyzeGate implements AnalysisPass.AnalyzeGate.
func (wc *WireCounter) AnalyzeGate(gate CombineOperation) {
	switch g := gate.(type) {
	case GF2, GF2AsU8:
		for _, w := range append(gate.Inputs(), gate.Outputs()...) {
			wc.seeBool(w)
		}
	case Z64, Z256:
		for _, w := range append(gate.Inputs(), gate.Outputs()...) {
			wc.seeArith(w)
		}
	case B2A:
		wc.seeArith(g.Dst)
		wc.seeBool(g.Low)
		wc.seeBool(g.Low + B2AWidth - 1)
	case SizeHint:
		if g.Arith-1 > wc.rng.LargestArith {
			wc.rng.LargestArith = g.Arith - 1
		}
		if g.Bool-1 > wc.rng.LargestBool {
			wc.rng.LargestBool = g.Bool - 1
		}
	}
}

func (wc *WireCounter) seeBool(w Wire) {
	if int(w) > wc.rng.LargestBool {
		wc.rng.LargestBool = int(w)
	}
	if int(w) < wc.rng.SmallestBool {
		wc.rng.SmallestBool = int(w)
	}
}

func (wc *WireCounter) seeArith(w Wire) {
	if int(w) > wc.rng.LargestArith {
		wc.rng.LargestArith = int(w)
	}
	if int(w) < wc.rng.SmallestArith {
		wc.rng.SmallestArith = int(w)
	}
}

// Finish implements AnalysisPass.Finish.
func (wc *WireCounter) Finish() WireRange {
	return wc.rng
}

// LargestWires returns the number of arithmetic and boolean wire
// cells needed to evaluate the program. If the program begins with a
// SizeHint, the hint is authoritative; otherwise the program is
// scanned for its wire maxima.
func LargestWires(program []CombineOperation) (arith, nbool int) {
	if len(program) > 0 {
		if hint, ok := program[0].(SizeHint); ok {
			return hint.Arith, hint.Bool
		}
	}
	rng := Analyze[WireRange](NewWireCounter(), program)
	return rng.LargestArith + 1, rng.LargestBool + 1
}

// SmallestWires returns the smallest arithmetic and boolean wire IDs
// the program references.
func SmallestWires(program []CombineOperation) (arith, nbool int) {
	rng := Analyze[WireRange](NewWireCounter(), program)
	return rng.SmallestArith, rng.SmallestBool
}
