//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package eval

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/markkurossi/mcircuit"
)

// Namer resolves a wire ID back to its source-level name. Wires
// without a known name are labeled with their numeric ID.
type Namer func(w mcircuit.Wire) (string, bool)

// VCD writes an evaluation trace in Value Change Dump form. It
// implements Tracer; run the program through Trace with the VCD as
// the tracer and call Finish afterwards.
type VCD struct {
	w   io.Writer
	err error
}

// NewVCD writes the VCD header for the program and returns a dumper
// for its wire assignments. Wire names are resolved through the
// namers and arranged into nested scopes on their "::" module
// qualifiers; boolean wires live under the bool_context root scope
// and arithmetic wires under arith_context. Boolean variables are
// one bit wide, arithmetic ones 64 bits.
func NewVCD(w io.Writer, program []mcircuit.CombineOperation,
	boolNames, arithNames Namer) *VCD {

	boolRoot := newVCDScope("bool_context")
	arithRoot := newVCDScope("arith_context")

	for _, step := range program {
		switch g := step.(type) {
		case mcircuit.GF2, mcircuit.GF2AsU8:
			for _, wire := range append(g.Inputs(), g.Outputs()...) {
				boolRoot.add(wire, boolNames)
			}

		case mcircuit.Z64, mcircuit.Z256:
			for _, wire := range append(g.Inputs(), g.Outputs()...) {
				arithRoot.add(wire, arithNames)
			}

		case mcircuit.B2A:
			arithRoot.add(g.Dst, arithNames)
			for _, wire := range g.Inputs() {
				boolRoot.add(wire, boolNames)
			}
		}
	}

	d := &VCD{
		w: w,
	}
	d.printf("$version Generated by mcircuit $end\n$timescale 1ns $end\n\n")
	d.writeScope(boolRoot, 1, "!")
	d.writeScope(arithRoot, 64, "@")
	d.printf("\n$enddefinitions $end\n#0\n$dumpvars\n")

	return d
}

// Bool implements Tracer.Bool.
func (d *VCD) Bool(dst mcircuit.Wire, val bool) {
	if val {
		d.printf("1!%d\n", dst)
	} else {
		d.printf("0!%d\n", dst)
	}
}

// Arith implements Tracer.Arith.
func (d *VCD) Arith(dst mcircuit.Wire, val uint64) {
	d.printf("b%b @%d\n", val, dst)
}

// Finish terminates the dump. It returns the first error any write
// encountered.
func (d *VCD) Finish() error {
	d.printf("$end\n#1\n#10\n")
	return d.err
}

func (d *VCD) printf(format string, a ...interface{}) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, a...)
}

func (d *VCD) writeScope(scope *vcdScope, width int, prefix string) {
	d.printf("$scope module %s $end\n", scope.name)
	for _, v := range scope.vars {
		label := strings.ReplaceAll(v.label, "[", "(")
		label = strings.ReplaceAll(label, "]", ")")
		d.printf("$var wire %d %s%d %s $end\n", width, prefix, v.wire, label)
	}
	for _, name := range scope.order {
		d.writeScope(scope.subs[name], width, prefix)
	}
	d.printf("$upscope $end\n")
}

type vcdVar struct {
	label string
	wire  mcircuit.Wire
}

type vcdScope struct {
	name  string
	vars  []vcdVar
	seen  map[vcdVar]bool
	subs  map[string]*vcdScope
	order []string
}

func newVCDScope(name string) *vcdScope {
	return &vcdScope{
		name: name,
		seen: make(map[vcdVar]bool),
		subs: make(map[string]*vcdScope),
	}
}

func (s *vcdScope) add(wire mcircuit.Wire, namer Namer) {
	var name string
	var ok bool
	if namer != nil {
		name, ok = namer(wire)
	}
	if !ok {
		name = strconv.Itoa(int(wire))
	}

	scope := s
	tokens := strings.Split(name, "::")
	for _, t := range tokens[:len(tokens)-1] {
		sub, ok := scope.subs[t]
		if !ok {
			sub = newVCDScope(t)
			scope.subs[t] = sub
			scope.order = append(scope.order, t)
		}
		scope = sub
	}

	v := vcdVar{
		label: tokens[len(tokens)-1],
		wire:  wire,
	}
	if !scope.seen[v] {
		scope.seen[v] = true
		scope.vars = append(scope.vars, v)
	}
}
