//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package mcircuit

import (
	"fmt"
)

// OpKind specifies the gate function.
type OpKind uint8

// Gate functions. Every kind has at most one output wire and at most
// two input wires.
const (
	// Input consumes the next external input value and emits it on
	// the destination wire.
	Input OpKind = iota
	// Random emits the next domain-supplied random value.
	Random
	// Add emits the sum of its two input wires.
	Add
	// AddConst emits the sum of its input wire and the embedded
	// constant.
	AddConst
	// Sub emits the first input wire minus the second.
	Sub
	// SubConst emits the input wire minus the embedded constant.
	SubConst
	// Mul emits the product of its two input wires.
	Mul
	// MulConst emits the product of its input wire and the embedded
	// constant.
	MulConst
	// AssertZero asserts that the input wire carries zero. It has no
	// output; a violated assertion is a fatal evaluation error.
	AssertZero
	// Const emits the embedded constant.
	Const
)

// NumKinds is the number of gate functions.
const NumKinds = int(Const) + 1

var opKindNames = map[OpKind]string{
	Input:      "Input",
	Random:     "Random",
	Add:        "Add",
	AddConst:   "AddConst",
	Sub:        "Sub",
	SubConst:   "SubConst",
	Mul:        "Mul",
	MulConst:   "MulConst",
	AssertZero: "AssertZero",
	Const:      "Const",
}

func (k OpKind) String() string {
	name, ok := opKindNames[k]
	if ok {
		return name
	}
	return fmt.Sprintf("{OpKind %d}", k)
}

// Shape classifies gate functions by their abstract wire and constant
// arity. It is the vocabulary through which gates are reconstructed
// generically from externally supplied wires.
type Shape uint8

// Gate shapes.
const (
	// InputShape gates have no inputs and one output.
	InputShape Shape = iota
	// InputConstShape gates have no inputs, one output, and an
	// embedded constant.
	InputConstShape
	// OutputShape gates have one input, no outputs.
	OutputShape
	// BinaryShape gates have two inputs and one output.
	BinaryShape
	// BinaryConstShape gates have one input, one output, and an
	// embedded constant.
	BinaryConstShape
)

// Shape returns the shape of the gate function.
func (k OpKind) Shape() Shape {
	switch k {
	case Input, Random:
		return InputShape
	case Const:
		return InputConstShape
	case AssertZero:
		return OutputShape
	case Add, Sub, Mul:
		return BinaryShape
	case AddConst, SubConst, MulConst:
		return BinaryConstShape
	default:
		panic(fmt.Sprintf("unknown gate function %s", k))
	}
}

// Operation specifies one primitive gate over the wire value type T.
// The fields in use depend on the shape of the gate function: Dst is
// the output wire, Src0 and Src1 the input wires, and Const the
// embedded constant.
type Operation[T WireValue] struct {
	Kind  OpKind
	Dst   Wire
	Src0  Wire
	Src1  Wire
	Const T
}

func (op Operation[T]) String() string {
	switch op.Kind.Shape() {
	case InputShape:
		return fmt.Sprintf("%s %s", op.Kind, op.Dst)
	case InputConstShape:
		return fmt.Sprintf("%s %s %s", op.Kind, ValueString(op.Const),
			op.Dst)
	case OutputShape:
		return fmt.Sprintf("%s %s", op.Kind, op.Src0)
	case BinaryShape:
		return fmt.Sprintf("%s %s %s %s", op.Kind, op.Src0, op.Src1,
			op.Dst)
	case BinaryConstShape:
		return fmt.Sprintf("%s %s %s %s", op.Kind, op.Src0,
			ValueString(op.Const), op.Dst)
	default:
		panic("unreachable")
	}
}

// Construct builds a gate of the given function from externally
// supplied input and output wires and an optional constant. It is the
// single generic factory through which the parser and the translation
// machinery build concrete gates. Construct panics if the supplied
// wires are fewer than the shape requires or a required constant is
// missing; these are programming errors in the caller, never a
// data-dependent runtime condition.
func Construct[T WireValue](kind OpKind, inputs, outputs []Wire,
	c *T) Operation[T] {

	op := Operation[T]{
		Kind: kind,
	}
	shape := kind.Shape()

	switch shape {
	case InputShape, InputConstShape:
		if len(outputs) < 1 {
			panic(fmt.Sprintf("%s gate needs an output wire", kind))
		}
		op.Dst = outputs[0]

	case OutputShape:
		if len(inputs) < 1 {
			panic(fmt.Sprintf("%s gate needs an input wire", kind))
		}
		op.Src0 = inputs[0]

	case BinaryShape:
		if len(inputs) < 2 {
			panic(fmt.Sprintf("%s gate needs two input wires", kind))
		}
		if len(outputs) < 1 {
			panic(fmt.Sprintf("%s gate needs an output wire", kind))
		}
		op.Src0 = inputs[0]
		op.Src1 = inputs[1]
		op.Dst = outputs[0]

	case BinaryConstShape:
		if len(inputs) < 1 {
			panic(fmt.Sprintf("%s gate needs an input wire", kind))
		}
		if len(outputs) < 1 {
			panic(fmt.Sprintf("%s gate needs an output wire", kind))
		}
		op.Src0 = inputs[0]
		op.Dst = outputs[0]
	}

	switch shape {
	case InputConstShape, BinaryConstShape:
		if c == nil {
			panic(fmt.Sprintf("%s gate needs a constant", kind))
		}
		op.Const = *c
	}

	return op
}
