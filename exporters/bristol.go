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

// Bristol exports gates in Bristol Fashion: each line gives the
// input and output arities, the wire numbers, and the gate mnemonic.
// The format has no input or assertion gates, so Input becomes a
// non-standard INPUT pseudo-line (use BindWitness to bake inputs in
// as constants) and AssertZero an OUTPUT pseudo-line. Random gates
// have no static-circuit representation.
type Bristol struct{}

// ExportGate implements Exporter.ExportGate.
func (e Bristol) ExportGate(gate mcircuit.Operation[bool],
	w io.Writer) error {

	var err error

	switch gate.Kind {
	case mcircuit.Input:
		_, err = fmt.Fprintf(w, "0 1 %d INPUT\n", gate.Dst)

	case mcircuit.Random:
		return fmt.Errorf("random gates are not representable in Bristol")

	case mcircuit.Add, mcircuit.Sub:
		// Addition and subtraction coincide on GF(2).
		_, err = fmt.Fprintf(w, "2 1 %d %d %d XOR\n",
			gate.Src0, gate.Src1, gate.Dst)

	case mcircuit.AddConst, mcircuit.SubConst:
		if gate.Const {
			_, err = fmt.Fprintf(w, "1 1 %d %d INV\n", gate.Src0, gate.Dst)
		} else {
			_, err = fmt.Fprintf(w, "1 1 %d %d EQW\n", gate.Src0, gate.Dst)
		}

	case mcircuit.Mul:
		_, err = fmt.Fprintf(w, "2 1 %d %d %d AND\n",
			gate.Src0, gate.Src1, gate.Dst)

	case mcircuit.MulConst:
		if gate.Const {
			_, err = fmt.Fprintf(w, "1 1 %d %d EQW\n", gate.Src0, gate.Dst)
		} else {
			_, err = fmt.Fprintf(w, "1 1 0 %d EQ\n", gate.Dst)
		}

	case mcircuit.AssertZero:
		_, err = fmt.Fprintf(w, "0 1 %d OUTPUT\n", gate.Src0)

	case mcircuit.Const:
		_, err = fmt.Fprintf(w, "1 1 %d %d EQ\n", bit(gate.Const), gate.Dst)

	default:
		return fmt.Errorf("unknown gate %s", gate)
	}
	return err
}

func bit(val bool) int {
	if val {
		return 1
	}
	return 0
}
