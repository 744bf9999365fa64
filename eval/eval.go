//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package eval

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/markkurossi/mcircuit"
)

// Tracer receives the value of each wire as the evaluator assigns
// it. Assertion gates produce no assignments and are not reported.
type Tracer interface {
	// Bool reports a boolean wire assignment.
	Bool(dst mcircuit.Wire, val bool)

	// Arith reports an arithmetic wire assignment. For 256-bit
	// wires the low 64 bits are reported.
	Arith(dst mcircuit.Wire, val uint64)
}

// Evaluate executes a flattened composite program in the clear.
// Input gates consume boolInputs and arithInputs in program order.
// The per-domain wire arrays are sized from a leading SizeHint when
// the program carries one, otherwise by scanning the program for its
// wire maxima. A violated assertion stops evaluation with an error.
func Evaluate(program []mcircuit.CombineOperation,
	boolInputs []bool, arithInputs []uint64) error {

	return run(program, boolInputs, arithInputs, nil)
}

// Trace evaluates the program like Evaluate and reports each wire
// assignment to the tracer.
func Trace(program []mcircuit.CombineOperation,
	boolInputs []bool, arithInputs []uint64, tracer Tracer) error {

	return run(program, boolInputs, arithInputs, tracer)
}

type state struct {
	bools   []bool
	arith   []uint64
	wide    []mcircuit.Uint256
	boolIn  []bool
	arithIn []uint64
	tracer  Tracer
}

func run(program []mcircuit.CombineOperation,
	boolInputs []bool, arithInputs []uint64, tracer Tracer) error {

	numArith, numBool := mcircuit.LargestWires(program)
	s := &state{
		bools:   make([]bool, numBool),
		arith:   make([]uint64, numArith),
		boolIn:  boolInputs,
		arithIn: arithInputs,
		tracer:  tracer,
	}

	for idx, step := range program {
		var err error

		switch g := step.(type) {
		case mcircuit.GF2:
			err = s.evalBool(idx, g.Op)

		case mcircuit.GF2AsU8:
			err = s.evalBool(idx, byteAsBool(g.Op))

		case mcircuit.Z64:
			err = s.evalZ64(idx, g.Op)

		case mcircuit.Z256:
			err = s.evalZ256(idx, g.Op)

		case mcircuit.B2A:
			var val uint64
			for bit := 0; bit < mcircuit.B2AWidth; bit++ {
				if s.bools[g.Low+mcircuit.Wire(bit)] {
					val |= 1 << bit
				}
			}
			s.arith[g.Dst] = val
			s.traceArith(g.Dst, val)

		case mcircuit.SizeHint:
			s.grow(g.Arith, g.Bool)

		default:
			err = fmt.Errorf("eval: unknown gate %s", step)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *state) grow(numArith, numBool int) {
	if len(s.bools) < numBool {
		s.bools = append(s.bools, make([]bool, numBool-len(s.bools))...)
	}
	if len(s.arith) < numArith {
		s.arith = append(s.arith, make([]uint64, numArith-len(s.arith))...)
	}
}

func (s *state) evalBool(idx int, op mcircuit.Operation[bool]) error {
	var val bool

	switch op.Kind {
	case mcircuit.Input:
		if len(s.boolIn) == 0 {
			return fmt.Errorf("eval: out of boolean inputs at gate %d", idx)
		}
		val = s.boolIn[0]
		s.boolIn = s.boolIn[1:]

	case mcircuit.Random:
		var buf [1]byte
		if _, err := rand.Read(buf[:]); err != nil {
			return err
		}
		val = buf[0]&1 != 0

	case mcircuit.Add, mcircuit.Sub:
		val = s.bools[op.Src0] != s.bools[op.Src1]

	case mcircuit.Mul:
		val = s.bools[op.Src0] && s.bools[op.Src1]

	case mcircuit.AddConst, mcircuit.SubConst:
		val = s.bools[op.Src0] != op.Const

	case mcircuit.MulConst:
		val = s.bools[op.Src0] && op.Const

	case mcircuit.AssertZero:
		if s.bools[op.Src0] {
			return fmt.Errorf(
				"eval: assertion failed at gate %d: boolean wire %d is set",
				idx, op.Src0)
		}
		return nil

	case mcircuit.Const:
		val = op.Const

	default:
		return fmt.Errorf("eval: unknown boolean gate %s at %d", op, idx)
	}

	s.bools[op.Dst] = val
	if s.tracer != nil {
		s.tracer.Bool(op.Dst, val)
	}
	return nil
}

// byteAsBool lowers a byte-carried boolean gate onto the boolean
// wire array: any non-zero constant means true.
func byteAsBool(op mcircuit.Operation[uint8]) mcircuit.Operation[bool] {
	return mcircuit.Operation[bool]{
		Kind:  op.Kind,
		Dst:   op.Dst,
		Src0:  op.Src0,
		Src1:  op.Src1,
		Const: op.Const != 0,
	}
}

func (s *state) evalZ64(idx int, op mcircuit.Operation[uint64]) error {
	var val uint64

	switch op.Kind {
	case mcircuit.Input:
		if len(s.arithIn) == 0 {
			return fmt.Errorf("eval: out of arithmetic inputs at gate %d",
				idx)
		}
		val = s.arithIn[0]
		s.arithIn = s.arithIn[1:]

	case mcircuit.Random:
		var buf [8]byte
		if _, err := rand.Read(buf[:]); err != nil {
			return err
		}
		val = binary.LittleEndian.Uint64(buf[:])

	case mcircuit.Add:
		val = s.arith[op.Src0] + s.arith[op.Src1]

	case mcircuit.Sub:
		val = s.arith[op.Src0] - s.arith[op.Src1]

	case mcircuit.Mul:
		val = s.arith[op.Src0] * s.arith[op.Src1]

	case mcircuit.AddConst:
		val = s.arith[op.Src0] + op.Const

	case mcircuit.SubConst:
		val = s.arith[op.Src0] - op.Const

	case mcircuit.MulConst:
		val = s.arith[op.Src0] * op.Const

	case mcircuit.AssertZero:
		if s.arith[op.Src0] != 0 {
			return fmt.Errorf(
				"eval: assertion failed at gate %d: wire %d = %d",
				idx, op.Src0, s.arith[op.Src0])
		}
		return nil

	case mcircuit.Const:
		val = op.Const

	default:
		return fmt.Errorf("eval: unknown arithmetic gate %s at %d", op, idx)
	}

	s.arith[op.Dst] = val
	s.traceArith(op.Dst, val)
	return nil
}

func (s *state) evalZ256(idx int, op mcircuit.Operation[mcircuit.Uint256]) (
	err error) {

	// The 256-bit ring shares the arithmetic wire numbering but
	// carries its values in a separate array, allocated on first
	// use.
	if s.wide == nil {
		s.wide = make([]mcircuit.Uint256, len(s.arith))
	} else if len(s.wide) < len(s.arith) {
		s.wide = append(s.wide,
			make([]mcircuit.Uint256, len(s.arith)-len(s.wide))...)
	}

	var val mcircuit.Uint256

	switch op.Kind {
	case mcircuit.Input:
		if len(s.arithIn) == 0 {
			return fmt.Errorf("eval: out of arithmetic inputs at gate %d",
				idx)
		}
		val.SetUint64(s.arithIn[0])
		s.arithIn = s.arithIn[1:]

	case mcircuit.Random:
		var buf [32]byte
		if _, err = rand.Read(buf[:]); err != nil {
			return err
		}
		val.SetBytes(buf[:])

	case mcircuit.Add:
		val.Add(&s.wide[op.Src0], &s.wide[op.Src1])

	case mcircuit.Sub:
		val.Sub(&s.wide[op.Src0], &s.wide[op.Src1])

	case mcircuit.Mul:
		val.Mul(&s.wide[op.Src0], &s.wide[op.Src1])

	case mcircuit.AddConst:
		c := op.Const
		val.Add(&s.wide[op.Src0], &c)

	case mcircuit.SubConst:
		c := op.Const
		val.Sub(&s.wide[op.Src0], &c)

	case mcircuit.MulConst:
		c := op.Const
		val.Mul(&s.wide[op.Src0], &c)

	case mcircuit.AssertZero:
		if !s.wide[op.Src0].IsZero() {
			return fmt.Errorf(
				"eval: assertion failed at gate %d: wire %d = %s",
				idx, op.Src0, s.wide[op.Src0].String())
		}
		return nil

	case mcircuit.Const:
		val = op.Const

	default:
		return fmt.Errorf("eval: unknown arithmetic gate %s at %d", op, idx)
	}

	s.wide[op.Dst] = val
	s.traceArith(op.Dst, val.Uint64())
	return nil
}

func (s *state) traceArith(dst mcircuit.Wire, val uint64) {
	if s.tracer != nil {
		s.tracer.Arith(dst, val)
	}
}
