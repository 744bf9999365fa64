//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package blif

import (
	"fmt"

	"github.com/markkurossi/mcircuit"
)

// Flatten inlines all subcircuit instantiations of the named module
// into one flat gate list. The shared interning session already makes
// every module-scoped wire ID globally unique, so inlining only
// rewires the child's connected pins into the parent's wires through
// gate translation; child-internal wires pass through unchanged.
// Children are emitted after the parent's own gates; topological
// ordering of the result is the netlist producer's responsibility.
func Flatten[T mcircuit.WireValue](modules map[string]*CircuitDesc[T],
	top string) ([]mcircuit.Operation[T], error) {

	return flatten(modules, top, make(map[string]bool), true)
}

func flatten[T mcircuit.WireValue](modules map[string]*CircuitDesc[T],
	name string, active map[string]bool, root bool) (
	[]mcircuit.Operation[T], error) {

	desc, ok := modules[name]
	if !ok {
		return nil, fmt.Errorf("blif: unknown module %s", name)
	}
	if active[name] {
		return nil, fmt.Errorf("blif: recursive module %s", name)
	}
	active[name] = true
	defer delete(active, name)

	gates := make([]mcircuit.Operation[T], 0, len(desc.Gates))
	gates = append(gates, desc.Gates...)

	for _, sub := range desc.Subcircuits {
		childGates, err := flatten(modules, sub.Name, active, false)
		if err != nil {
			return nil, err
		}
		table := make(map[mcircuit.Wire]mcircuit.Wire)
		for _, conn := range sub.Connections {
			table[conn.Child] = conn.Parent
		}
		for _, g := range childGates {
			// The parent already emits the reserved constants.
			if g.Kind == mcircuit.Const && g.Dst <= mcircuit.WireTrue {
				continue
			}
			gates = append(gates, g.TranslateMap(table))
		}
	}
	return gates, nil
}

// Index arranges module descriptors into a by-name lookup table for
// flattening.
func Index[T mcircuit.WireValue](circuits []*CircuitDesc[T]) (
	map[string]*CircuitDesc[T], error) {

	modules := make(map[string]*CircuitDesc[T])
	for _, desc := range circuits {
		_, ok := modules[desc.Name]
		if ok {
			return nil, fmt.Errorf("blif: duplicate module %s", desc.Name)
		}
		modules[desc.Name] = desc
	}
	return modules, nil
}

// Compose assembles flat per-domain gate lists into one composite
// program, prefixed with a freshly derived size hint.
func Compose(boolGates []mcircuit.Operation[bool],
	arithGates []mcircuit.Operation[uint64]) []mcircuit.CombineOperation {

	program := make([]mcircuit.CombineOperation, 0,
		len(boolGates)+len(arithGates)+1)
	for _, g := range boolGates {
		program = append(program, mcircuit.GF2{Op: g})
	}
	for _, g := range arithGates {
		program = append(program, mcircuit.Z64{Op: g})
	}
	arith, nbool := mcircuit.LargestWires(program)

	result := make([]mcircuit.CombineOperation, 0, len(program)+1)
	result = append(result, mcircuit.SizeHint{Arith: arith, Bool: nbool})
	return append(result, program...)
}
