//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package mcircuit

import (
	"fmt"
	"io"

	"github.com/markkurossi/tabulate"
)

// Domain names a wire value domain of a composite program.
type Domain uint8

// Wire value domains.
const (
	DomainGF2 Domain = iota
	DomainGF2AsU8
	DomainZ64
	DomainZ256
	numDomains
)

var domainNames = map[Domain]string{
	DomainGF2:     "GF2",
	DomainGF2AsU8: "GF2AsU8",
	DomainZ64:     "Z64",
	DomainZ256:    "Z256",
}

func (d Domain) String() string {
	name, ok := domainNames[d]
	if ok {
		return name
	}
	return fmt.Sprintf("{Domain %d}", d)
}

// Stats holds a census of a composite program: gate counts by domain
// and gate function, conversion and hint counts, and the wire extent.
type Stats struct {
	Kinds [numDomains][NumKinds]int
	B2A   int
	Hints int
	Range WireRange
}

// NewStats creates a new program census pass.
func NewStats() *Stats {
	return &Stats{
		Range: WireRange{
			SmallestArith: int(^uint(0) >> 1),
			SmallestBool:  int(^uint(0) >> 1),
		},
	}
}

// AnalyzeGate implements AnalysisPass.AnalyzeGate.
func (s *Stats) AnalyzeGate(gate CombineOperation) {
	switch g := gate.(type) {
	case GF2:
		s.Kinds[DomainGF2][g.Op.Kind]++
	case GF2AsU8:
		s.Kinds[DomainGF2AsU8][g.Op.Kind]++
	case Z64:
		s.Kinds[DomainZ64][g.Op.Kind]++
	case Z256:
		s.Kinds[DomainZ256][g.Op.Kind]++
	case B2A:
		s.B2A++
	case SizeHint:
		s.Hints++
	}

	counter := WireCounter{rng: s.Range}
	counter.AnalyzeGate(gate)
	s.Range = counter.Finish()
}

// Finish implements AnalysisPass.Finish.
func (s *Stats) Finish() *Stats {
	return s
}

// Count returns the total number of gates counted in the domain.
func (s *Stats) Count(d Domain) int {
	var sum int
	for _, count := range s.Kinds[d] {
		sum += count
	}
	return sum
}

// Print renders the census as a table.
func (s *Stats) Print(out io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Gate").SetAlign(tabulate.ML)
	for d := DomainGF2; d < numDomains; d++ {
		tab.Header(d.String()).SetAlign(tabulate.MR)
	}

	for kind := Input; kind <= Const; kind++ {
		row := tab.Row()
		row.Column(kind.String())
		for d := DomainGF2; d < numDomains; d++ {
			row.Column(fmt.Sprintf("%d", s.Kinds[d][kind]))
		}
	}

	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	for d := DomainGF2; d < numDomains; d++ {
		row.Column(fmt.Sprintf("%d", s.Count(d))).
			SetFormat(tabulate.FmtBold)
	}

	tab.Print(out)

	fmt.Fprintf(out, "b2a=%d hints=%d bool wires=%d arith wires=%d\n",
		s.B2A, s.Hints, s.Range.LargestBool+1, s.Range.LargestArith+1)
}
