//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package blif

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/markkurossi/mcircuit"
	log "github.com/sirupsen/logrus"
)

// numSeedGates is the number of constant gates pre-populating every
// module: Const false on wire 0 and Const true on wire 1.
const numSeedGates = 2

// Parser is a state machine over line-oriented BLIF netlist text. One
// parser instance owns one wire interning session: module descriptors
// parsed from any number of sources share the same dense wire ID
// space. Completed modules are queued in the order their .end markers
// appear and drained one per Next call.
type Parser[T mcircuit.WireValue] struct {
	hasher  *WireHasher
	order   PinOrder
	pending []io.Reader
	queue   []*CircuitDesc[T]
	module  *moduleState[T]
	line    int
}

type moduleState[T mcircuit.WireValue] struct {
	name        string
	inputs      []mcircuit.Wire
	outputs     []mcircuit.Wire
	gates       []mcircuit.Operation[T]
	subcircuits []SubcircuitDesc
	pendingSub  *PackedSubcircuitDesc
	packedWires map[string]int
	gateWires   map[string]string
}

// newModuleState clones the module template: a fresh descriptor
// pre-seeded with the two reserved constant gates.
func newModuleState[T mcircuit.WireValue]() *moduleState[T] {
	return &moduleState[T]{
		gates: []mcircuit.Operation[T]{
			{
				Kind: mcircuit.Const,
				Dst:  mcircuit.WireFalse,
			},
			{
				Kind:  mcircuit.Const,
				Dst:   mcircuit.WireTrue,
				Const: mcircuit.One[T](),
			},
		},
		packedWires: make(map[string]int),
		gateWires:   make(map[string]string),
	}
}

// NewParser creates a parser for the input source. The wire interning
// session starts by reserving IDs 0 and 1 for the boolean constant
// literals.
func NewParser[T mcircuit.WireValue](r io.Reader) *Parser[T] {
	p := &Parser[T]{
		hasher: NewWireHasher(),
	}
	p.hasher.GetWireID(nameFalse)
	p.hasher.GetWireID(nameTrue)
	p.module = newModuleState[T]()
	p.pending = append(p.pending, r)
	return p
}

// AddSource feeds an additional input source to the parser. The wire
// interning session persists across sources so module-scoped names
// remain stably numbered and the constant literals stay shared.
func (p *Parser[T]) AddSource(r io.Reader) {
	p.pending = append(p.pending, r)
}

// SetPinOrder sets the bus pairing policy for module I/O registration
// and subcircuit connections. The default is PinOrderReversed.
func (p *Parser[T]) SetPinOrder(order PinOrder) {
	p.order = order
}

// Hasher returns the parser's wire interning session, for wire name
// backreference lookups after parsing.
func (p *Parser[T]) Hasher() *WireHasher {
	return p.hasher
}

// Next returns the next completed module descriptor, parsing buffered
// input sources as needed. It returns io.EOF when all sources are
// exhausted. A malformed module aborts with an error; an unterminated
// trailing module is silently discarded.
func (p *Parser[T]) Next() (*CircuitDesc[T], error) {
	for len(p.queue) == 0 && len(p.pending) > 0 {
		r := p.pending[0]
		p.pending = p.pending[1:]
		if err := p.parse(r); err != nil {
			return nil, err
		}
	}
	if len(p.queue) == 0 {
		return nil, io.EOF
	}
	desc := p.queue[0]
	p.queue = p.queue[1:]
	return desc, nil
}

// Circuits drains the parser and returns all module descriptors in
// the order their .end markers were seen.
func (p *Parser[T]) Circuits() ([]*CircuitDesc[T], error) {
	var result []*CircuitDesc[T]
	for {
		desc, err := p.Next()
		if err == io.EOF {
			return result, nil
		}
		if err != nil {
			return nil, err
		}
		result = append(result, desc)
	}
}

func (p *Parser[T]) errorf(format string, a ...interface{}) error {
	return fmt.Errorf("blif: line %d: %s", p.line,
		fmt.Sprintf(format, a...))
}

func (p *Parser[T]) parse(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	p.line = 0
	var cont string

	for scanner.Scan() {
		p.line++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasSuffix(line, "\\") {
			cont += line[:len(line)-1] + " "
			continue
		}
		line = cont + line
		cont = ""
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		tokens := strings.Fields(line)

		if tokens[0] != ".model" && len(p.module.name) == 0 {
			return p.errorf("%s outside module", tokens[0])
		}

		var err error
		switch tokens[0] {
		case ".model":
			err = p.startModule(tokens)
		case ".inputs":
			p.registerIO(tokens[1:], &p.module.inputs)
		case ".outputs":
			p.registerIO(tokens[1:], &p.module.outputs)
		case ".gate":
			err = p.parseGate(tokens)
		case ".subckt":
			err = p.parseSubcircuit(tokens)
		case ".attr":
			err = p.parseAttr(tokens)
		case ".names", ".conn":
			err = p.parseConn(tokens)
		case ".end":
			err = p.endModule()
		default:
			err = p.errorf("unknown directive %s", tokens[0])
		}
		if err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (p *Parser[T]) startModule(tokens []string) error {
	if len(tokens) < 2 {
		return p.errorf(".model without a name")
	}
	if len(p.module.name) > 0 {
		return p.errorf("module %s not terminated before .model %s",
			p.module.name, tokens[1])
	}
	p.module.name = tokens[1]
	return nil
}

// registerIO interns the module I/O wire names. Bus members sharing a
// base name are grouped into one chunk and, under PinOrderReversed,
// registered high bit first so the registration order matches how
// subcircuit buses are connected.
func (p *Parser[T]) registerIO(tokens []string, dst *[]mcircuit.Wire) {
	var names []string
	for _, tok := range tokens {
		names = append(names, SplitWireID(tok)...)
	}

	var chunk []string
	var chunkBase string

	flush := func() {
		if p.order == PinOrderReversed {
			for i, j := 0, len(chunk)-1; i < j; i, j = i+1, j-1 {
				chunk[i], chunk[j] = chunk[j], chunk[i]
			}
		}
		for _, name := range chunk {
			*dst = append(*dst,
				p.hasher.GetWireID(qualify(p.module.name, name)))
		}
		chunk = chunk[:0]
	}

	for _, name := range names {
		base, _ := BaseNameAndWidth(name)
		if len(chunk) > 0 && base != chunkBase {
			flush()
		}
		chunkBase = base
		chunk = append(chunk, name)
	}
	flush()
}

// gateWire interns one wire name referenced by a plain gate. Packed
// wires can only be connected through subcircuit pins; a packed name
// reaching a gate is a structural error.
func (p *Parser[T]) gateWire(name string) (mcircuit.Wire, error) {
	if strings.Contains(name, "_PACKED_") {
		return 0, p.errorf("module %s: packed wire %s connected to gate",
			p.module.name, name)
	}
	if !isConstLiteral(name) {
		base, _ := BaseNameAndWidth(name)
		p.module.gateWires[base] = name
	}
	return p.hasher.GetWireID(qualify(p.module.name, name)), nil
}

func (p *Parser[T]) parseGate(tokens []string) error {
	if len(tokens) < 3 {
		return p.errorf("invalid gate: %v", tokens[1:])
	}
	mnemonic := tokens[1]

	var inputs, outputs []mcircuit.Wire
	var constVal *T

	for _, tok := range tokens[2:] {
		idx := strings.IndexByte(tok, '=')
		if idx < 0 {
			return p.errorf("invalid pin binding %q", tok)
		}
		pin, val := tok[:idx], tok[idx+1:]
		switch pin {
		case "C", "VALUE":
			cv, err := parseConstant[T](val)
			if err != nil {
				return p.errorf("gate %s: %s", mnemonic, err)
			}
			constVal = &cv

		case "OUT":
			w, err := p.gateWire(val)
			if err != nil {
				return err
			}
			outputs = append(outputs, w)

		default:
			w, err := p.gateWire(val)
			if err != nil {
				return err
			}
			inputs = append(inputs, w)
		}
	}

	op, err := constructVariant(mnemonic, inputs, outputs, constVal)
	if err != nil {
		return p.errorf("module %s: %s", p.module.name, err)
	}
	p.module.gates = append(p.module.gates, op)
	return nil
}

func (p *Parser[T]) parseSubcircuit(tokens []string) error {
	if len(tokens) < 2 {
		return p.errorf(".subckt without a name")
	}
	if err := p.resolvePending(); err != nil {
		return err
	}

	sub := &PackedSubcircuitDesc{
		Name: tokens[1],
	}
	for _, tok := range tokens[2:] {
		idx := strings.IndexByte(tok, '=')
		if idx < 0 {
			return p.errorf("invalid pin binding %q", tok)
		}
		sub.Connections = append(sub.Connections, PackedConnection{
			Child:  tok[:idx],
			Parent: tok[idx+1:],
		})
	}
	p.module.pendingSub = sub
	return nil
}

func (p *Parser[T]) parseAttr(tokens []string) error {
	if len(tokens) < 2 {
		return p.errorf("invalid attribute: %v", tokens)
	}
	switch tokens[1] {
	case "module_not_derived", "src", "_packing":
		// Tool metadata, not a bus width.
		log.Debugf("blif: ignoring attribute %s", tokens[1])
		return nil
	}
	if len(tokens) < 3 {
		return p.errorf("attribute %s without a value", tokens[1])
	}
	if p.module.pendingSub == nil {
		return p.errorf("module %s: attribute %s outside subcircuit",
			p.module.name, tokens[1])
	}
	width, err := strconv.ParseUint(tokens[2], 2, 32)
	if err != nil {
		return p.errorf("invalid bus width %q", tokens[2])
	}
	base, _ := BaseNameAndWidth(tokens[1])
	p.module.packedWires[base] = int(width)
	return nil
}

// parseConn handles the direct wire alias constructs some netlist
// generators emit, wiring one as an identity-shaped buffer gate.
func (p *Parser[T]) parseConn(tokens []string) error {
	if len(tokens) != 3 {
		return p.errorf("invalid connection: %v", tokens[1:])
	}
	from, err := p.gateWire(tokens[1])
	if err != nil {
		return err
	}
	to, err := p.gateWire(tokens[2])
	if err != nil {
		return err
	}
	p.module.gates = append(p.module.gates, mcircuit.IdentityGate[T](to, from))
	return nil
}

// resolvePending resolves the still-open subcircuit record, if any.
// All .attr width annotations for the record have been seen by the
// time the next .subckt or .end arrives.
func (p *Parser[T]) resolvePending() error {
	m := p.module
	if m.pendingSub == nil {
		return nil
	}
	sub, err := m.pendingSub.Resolve(m.packedWires, m.name, p.hasher,
		p.order)
	if err != nil {
		return p.errorf("module %s: %s", m.name, err)
	}
	m.subcircuits = append(m.subcircuits, sub)
	m.pendingSub = nil
	return nil
}

func (p *Parser[T]) endModule() error {
	m := p.module
	if err := p.resolvePending(); err != nil {
		return err
	}

	for base, name := range m.gateWires {
		if m.packedWires[base] > 0 {
			return p.errorf("module %s: packed wire %s connected to gate",
				m.name, name)
		}
	}

	if len(m.gates) <= numSeedGates && len(m.subcircuits) == 0 {
		log.Warnf("blif: dropping empty module %s", m.name)
		// Recycle the constant seeds for the next module.
		m.name = ""
		m.inputs = nil
		m.outputs = nil
		m.packedWires = make(map[string]int)
		m.gateWires = make(map[string]string)
		return nil
	}

	p.queue = append(p.queue, &CircuitDesc[T]{
		Name:        m.name,
		Inputs:      m.inputs,
		Outputs:     m.outputs,
		Gates:       m.gates,
		Subcircuits: m.subcircuits,
	})
	p.module = newModuleState[T]()
	return nil
}
