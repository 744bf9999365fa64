//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package exporters

import (
	"fmt"
	"io"

	"github.com/markkurossi/mcircuit"
)

// IR1 exports gates in the SIEVE IR1 gate language. Wires are
// written as $n, constants bracketed as < c >. Input and Random
// gates are not representable; bind the witness as constants first.
type IR1 struct{}

// ExportGate implements Exporter.ExportGate.
func (e IR1) ExportGate(gate mcircuit.Operation[bool],
	w io.Writer) error {

	var err error

	switch gate.Kind {
	case mcircuit.Input:
		return fmt.Errorf("input gates are not representable in IR1")

	case mcircuit.Random:
		return fmt.Errorf("random gates are not representable in IR1")

	case mcircuit.Add, mcircuit.Sub:
		_, err = fmt.Fprintf(w, "$%d <- @xor($%d, $%d);\n",
			gate.Dst, gate.Src0, gate.Src1)

	case mcircuit.AddConst, mcircuit.SubConst:
		_, err = fmt.Fprintf(w, "$%d <- @xor($%d, < %d >);\n",
			gate.Dst, gate.Src0, bit(gate.Const))

	case mcircuit.Mul:
		_, err = fmt.Fprintf(w, "$%d <- @and($%d, $%d);\n",
			gate.Dst, gate.Src0, gate.Src1)

	case mcircuit.MulConst:
		_, err = fmt.Fprintf(w, "$%d <- @and($%d, < %d >);\n",
			gate.Dst, gate.Src0, bit(gate.Const))

	case mcircuit.AssertZero:
		_, err = fmt.Fprintf(w, "@assert_zero($%d);\n", gate.Src0)

	case mcircuit.Const:
		_, err = fmt.Fprintf(w, "$%d <- < %d >;\n",
			gate.Dst, bit(gate.Const))

	default:
		return fmt.Errorf("unknown gate %s", gate)
	}
	return err
}
