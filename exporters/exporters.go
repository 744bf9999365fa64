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

// Exporter writes one boolean gate in a textual circuit format. The
// gate list must already be flattened into one homogeneous domain;
// gate variants the target format cannot represent are reported as
// errors.
type Exporter interface {
	ExportGate(gate mcircuit.Operation[bool], w io.Writer) error
}

// Export writes the gate list one gate per line.
func Export(e Exporter, gates []mcircuit.Operation[bool],
	w io.Writer) error {

	for idx, gate := range gates {
		if err := e.ExportGate(gate, w); err != nil {
			return fmt.Errorf("exporters: gate %d: %s", idx, err)
		}
	}
	return nil
}

// BindWitness replaces each Input gate with a Const gate carrying
// the next witness value, in program order. Formats without input
// gates need the witness baked into the circuit.
func BindWitness(gates []mcircuit.Operation[bool], witness []bool) (
	[]mcircuit.Operation[bool], error) {

	bound := make([]mcircuit.Operation[bool], 0, len(gates))
	for _, gate := range gates {
		if gate.Kind == mcircuit.Input {
			if len(witness) == 0 {
				return nil, fmt.Errorf(
					"exporters: out of witness values at wire %d", gate.Dst)
			}
			gate = mcircuit.Operation[bool]{
				Kind:  mcircuit.Const,
				Dst:   gate.Dst,
				Const: witness[0],
			}
			witness = witness[1:]
		}
		bound = append(bound, gate)
	}
	return bound, nil
}
