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

// PinOrder specifies how multi-bit bus pins are paired between a
// parent module and an instantiated child.
type PinOrder uint8

// Bus pin orders.
const (
	// PinOrderReversed pairs child bits ascending with parent bits
	// descending. This matches netlist generators that number
	// multi-bit ports high-to-low while wire evaluation runs
	// low-to-high.
	PinOrderReversed PinOrder = iota
	// PinOrderAscending pairs both sides in ascending bit order.
	PinOrderAscending
)

// Connection wires one parent-space wire to one wire in the child's
// internal wire space.
type Connection struct {
	Parent mcircuit.Wire
	Child  mcircuit.Wire
}

// SubcircuitDesc is a resolved instantiation of a named child module
// within a parent module.
type SubcircuitDesc struct {
	Name        string
	Connections []Connection
}

// CircuitDesc is one parsed module: its interned I/O wire lists, a
// flat gate list, and the subcircuit instantiations that a consumer
// must inline to obtain a single flat program.
type CircuitDesc[T mcircuit.WireValue] struct {
	Name        string
	Inputs      []mcircuit.Wire
	Outputs     []mcircuit.Wire
	Gates       []mcircuit.Operation[T]
	Subcircuits []SubcircuitDesc
}

// ValidateIO checks that the input wire IDs and the output wire IDs
// each form a contiguous integer range. The top-level circuit handed
// to an evaluator must satisfy this.
func (c *CircuitDesc[T]) ValidateIO() error {
	if err := validateContiguous(c.Inputs); err != nil {
		return fmt.Errorf("module %s: inputs: %s", c.Name, err)
	}
	if err := validateContiguous(c.Outputs); err != nil {
		return fmt.Errorf("module %s: outputs: %s", c.Name, err)
	}
	return nil
}

func validateContiguous(wires []mcircuit.Wire) error {
	if len(wires) == 0 {
		return nil
	}
	min, max := wires[0], wires[0]
	for _, w := range wires[1:] {
		if w < min {
			min = w
		}
		if w > max {
			max = w
		}
	}
	if int(max-min) != len(wires)-1 {
		return fmt.Errorf("wire IDs not contiguous: %d IDs in [%d, %d]",
			len(wires), min, max)
	}
	return nil
}

// PackedConnection is one pre-resolution pin binding of a subcircuit
// instantiation, still keyed by unqualified wire names.
type PackedConnection struct {
	Child  string
	Parent string
}

// PackedSubcircuitDesc is the staging record of one subcircuit
// instantiation. It is built when the `.subckt` line is scanned and
// resolved into a SubcircuitDesc only after the `.attr` width
// annotations that follow it have been seen.
type PackedSubcircuitDesc struct {
	Name        string
	Connections []PackedConnection
}

// Resolve expands the staged subcircuit record into interned wire ID
// connections. The packedWires map carries the module's accumulated
// bus width annotations, keyed by base wire name; scope is the parent
// module name used to qualify parent-side wires. A boolean constant
// literal on the parent side is broadcast across all expanded bits of
// a packed child pin; any other width mismatch between the two sides
// is an error.
func (sub *PackedSubcircuitDesc) Resolve(packedWires map[string]int,
	scope string, hasher *WireHasher, order PinOrder) (
	SubcircuitDesc, error) {

	resolved := SubcircuitDesc{
		Name: sub.Name,
	}
	for _, conn := range sub.Connections {
		childNames := SplitWireID(conn.Child)
		parentNames := SplitWireID(conn.Parent)

		if len(childNames) == 1 {
			base, _ := BaseNameAndWidth(conn.Child)
			if width := packedWires[base]; width > 0 {
				childNames = expandIndexed(conn.Child, width)
			}
		}
		if len(parentNames) == 1 {
			base, _ := BaseNameAndWidth(conn.Parent)
			if width := packedWires[base]; width > 0 {
				parentNames = expandIndexed(conn.Parent, width)
			}
		}

		if len(parentNames) != len(childNames) {
			if len(parentNames) == 1 && isConstLiteral(conn.Parent) {
				// Broadcast the constant across the packed pin.
				parentNames = make([]string, len(childNames))
				for i := range parentNames {
					parentNames[i] = conn.Parent
				}
			} else {
				return resolved, fmt.Errorf(
					"subcircuit %s: width mismatch: %s=%d bits, %s=%d bits",
					sub.Name, conn.Child, len(childNames),
					conn.Parent, len(parentNames))
			}
		}

		for i, childName := range childNames {
			parentName := parentNames[i]
			if order == PinOrderReversed && len(parentNames) > 1 {
				parentName = parentNames[len(parentNames)-1-i]
			}
			resolved.Connections = append(resolved.Connections, Connection{
				Parent: hasher.GetWireID(qualify(scope, parentName)),
				Child:  hasher.GetWireID(qualify(sub.Name, childName)),
			})
		}
	}
	return resolved, nil
}

// Boolean constant literals, mapped to the reserved wire IDs 0 and 1
// as the first two interned names of every parse session.
const (
	nameFalse = "$false"
	nameTrue  = "$true"
)

func isConstLiteral(name string) bool {
	return name == nameFalse || name == nameTrue
}

// qualify prefixes the wire name with its module scope. The boolean
// constant literals stay unscoped so all modules share them.
func qualify(module, name string) string {
	if isConstLiteral(name) {
		return name
	}
	return module + "::" + name
}
