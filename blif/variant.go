//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package blif

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
	"github.com/markkurossi/mcircuit"
)

// isArithmetic tests if the wire value type T is an integer ring
// rather than a GF(2) representation.
func isArithmetic[T mcircuit.WireValue]() bool {
	switch any(mcircuit.Zero[T]()).(type) {
	case uint64, mcircuit.Uint256:
		return true
	default:
		return false
	}
}

// constructVariant maps a gate opcode mnemonic to its gate shape and
// optional constant and builds the gate. The arithmetic-only
// mnemonics are rejected on GF(2) domains; unrecognized mnemonics are
// a parse error.
func constructVariant[T mcircuit.WireValue](mnemonic string,
	inputs, outputs []mcircuit.Wire, c *T) (mcircuit.Operation[T], error) {

	var kind mcircuit.OpKind
	var embedded *T

	one := mcircuit.One[T]()
	zero := mcircuit.Zero[T]()

	switch mnemonic {
	case "AND", "MUL":
		kind = mcircuit.Mul
	case "XOR", "ADD":
		kind = mcircuit.Add
	case "NOT", "INV":
		kind = mcircuit.AddConst
		embedded = &one
	case "BUF":
		kind = mcircuit.AddConst
		embedded = &zero
	case "RAND":
		kind = mcircuit.Random
	case "CONST":
		kind = mcircuit.Const
		embedded = c
	case "MULC", "ADDC", "SUBC", "SUB":
		if !isArithmetic[T]() {
			return mcircuit.Operation[T]{},
				fmt.Errorf("gate %s is arithmetic-only", mnemonic)
		}
		switch mnemonic {
		case "MULC":
			kind = mcircuit.MulConst
			embedded = c
		case "ADDC":
			kind = mcircuit.AddConst
			embedded = c
		case "SUBC":
			kind = mcircuit.SubConst
			embedded = c
		case "SUB":
			kind = mcircuit.Sub
		}
	default:
		return mcircuit.Operation[T]{},
			fmt.Errorf("unknown gate %s", mnemonic)
	}

	switch kind.Shape() {
	case mcircuit.InputConstShape, mcircuit.BinaryConstShape:
		if embedded == nil {
			return mcircuit.Operation[T]{},
				fmt.Errorf("gate %s needs a constant", mnemonic)
		}
	}

	switch kind.Shape() {
	case mcircuit.InputShape, mcircuit.InputConstShape:
		if len(outputs) < 1 {
			return mcircuit.Operation[T]{},
				fmt.Errorf("gate %s needs an output", mnemonic)
		}
	case mcircuit.OutputShape:
		if len(inputs) < 1 {
			return mcircuit.Operation[T]{},
				fmt.Errorf("gate %s needs an input", mnemonic)
		}
	case mcircuit.BinaryShape:
		if len(inputs) < 2 || len(outputs) < 1 {
			return mcircuit.Operation[T]{},
				fmt.Errorf("gate %s needs two inputs and an output",
					mnemonic)
		}
	case mcircuit.BinaryConstShape:
		if len(inputs) < 1 || len(outputs) < 1 {
			return mcircuit.Operation[T]{},
				fmt.Errorf("gate %s needs an input and an output", mnemonic)
		}
	}

	return mcircuit.Construct(kind, inputs, outputs, embedded), nil
}

// parseConstant decodes a gate constant literal for the wire value
// type T.
func parseConstant[T mcircuit.WireValue](tok string) (T, error) {
	var ret T
	switch v := any(&ret).(type) {
	case *bool:
		switch tok {
		case nameTrue, "1", "true":
			*v = true
		case nameFalse, "0", "false":
		default:
			return ret, fmt.Errorf("invalid boolean constant %q", tok)
		}
	case *uint8:
		val, err := strconv.ParseUint(tok, 0, 8)
		if err != nil {
			return ret, fmt.Errorf("invalid constant %q", tok)
		}
		*v = uint8(val)
	case *uint64:
		val, err := strconv.ParseUint(tok, 0, 64)
		if err != nil {
			return ret, fmt.Errorf("invalid constant %q", tok)
		}
		*v = val
	case *mcircuit.Uint256:
		var val *uint256.Int
		var err error
		if strings.HasPrefix(tok, "0x") {
			val, err = uint256.FromHex(tok)
		} else {
			val, err = uint256.FromDecimal(tok)
		}
		if err != nil {
			return ret, fmt.Errorf("invalid constant %q", tok)
		}
		*v = *val
	}
	return ret, nil
}
