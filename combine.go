//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package mcircuit

import (
	"fmt"
)

// B2AWidth is the number of consecutive boolean wires one B2A gate
// reinterprets as a 64-bit arithmetic value.
const B2AWidth = 64

// CombineOperation is one gate of a composite program spanning the
// boolean and arithmetic domains. The concrete types are the domain
// wrappers GF2, GF2AsU8, Z64 and Z256, the boolean-to-arithmetic
// conversion B2A, and the SizeHint bookkeeping pseudo-gate.
type CombineOperation interface {
	HasIO

	// Translate rebuilds the gate with wires drawn from the supplied
	// input and output wire sequences instead of the current ones.
	// The embedded constant and the gate variant are preserved. It
	// reports false for gates that have no well-defined relocation
	// (SizeHint).
	Translate(win, wout []Wire) (CombineOperation, bool)

	String() string
}

// GF2 is a gate on the GF(2) boolean field.
type GF2 struct {
	Op Operation[bool]
}

// GF2AsU8 is a GF(2) gate carried in byte-valued wires.
type GF2AsU8 struct {
	Op Operation[uint8]
}

// Z64 is a gate on the 64-bit integer ring.
type Z64 struct {
	Op Operation[uint64]
}

// Z256 is a gate on the 256-bit integer ring.
type Z256 struct {
	Op Operation[Uint256]
}

// B2A converts a boolean value to an arithmetic one: the 64
// consecutive boolean wires starting at Low, least-significant bit
// first, are reinterpreted as the single arithmetic wire Dst.
type B2A struct {
	Dst Wire
	Low Wire
}

// SizeHint declares the minimum per-domain wire array sizes needed to
// evaluate the program. It is not a computational gate; if present it
// must be the first element of a program.
type SizeHint struct {
	Arith int
	Bool  int
}

// Inputs returns the input wires of the wrapped gate.
func (g GF2) Inputs() []Wire { return g.Op.Inputs() }

// Outputs returns the output wires of the wrapped gate.
func (g GF2) Outputs() []Wire { return g.Op.Outputs() }

func (g GF2) String() string { return fmt.Sprintf("GF2(%s)", g.Op) }

// Inputs returns the input wires of the wrapped gate.
func (g GF2AsU8) Inputs() []Wire { return g.Op.Inputs() }

// Outputs returns the output wires of the wrapped gate.
func (g GF2AsU8) Outputs() []Wire { return g.Op.Outputs() }

func (g GF2AsU8) String() string { return fmt.Sprintf("GF2AsU8(%s)", g.Op) }

// Inputs returns the input wires of the wrapped gate.
func (g Z64) Inputs() []Wire { return g.Op.Inputs() }

// Outputs returns the output wires of the wrapped gate.
func (g Z64) Outputs() []Wire { return g.Op.Outputs() }

func (g Z64) String() string { return fmt.Sprintf("Z64(%s)", g.Op) }

// Inputs returns the input wires of the wrapped gate.
func (g Z256) Inputs() []Wire { return g.Op.Inputs() }

// Outputs returns the output wires of the wrapped gate.
func (g Z256) Outputs() []Wire { return g.Op.Outputs() }

func (g Z256) String() string { return fmt.Sprintf("Z256(%s)", g.Op) }

// Inputs returns the 64 boolean wires [Low, Low+64) in ascending
// order.
func (g B2A) Inputs() []Wire {
	wires := make([]Wire, B2AWidth)
	for i := 0; i < B2AWidth; i++ {
		wires[i] = g.Low + Wire(i)
	}
	return wires
}

// Outputs returns the single arithmetic destination wire.
func (g B2A) Outputs() []Wire { return []Wire{g.Dst} }

func (g B2A) String() string {
	return fmt.Sprintf("B2A %s %s", g.Low, g.Dst)
}

// Inputs returns nil: size hints have no input wires.
func (g SizeHint) Inputs() []Wire { return nil }

// Outputs returns nil: size hints have no output wires.
func (g SizeHint) Outputs() []Wire { return nil }

func (g SizeHint) String() string {
	return fmt.Sprintf("SizeHint arith=%d bool=%d", g.Arith, g.Bool)
}
