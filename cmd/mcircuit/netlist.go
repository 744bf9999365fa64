//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/markkurossi/mcircuit"
	"github.com/markkurossi/mcircuit/blif"
	"github.com/markkurossi/mcircuit/eval"
)

// loadNetlists parses the named BLIF files in one shared interning
// session and flattens the selected top-level module into a flat
// gate list over the domain T. When no top module is named, the last
// module of the last file is used.
func loadNetlists[T mcircuit.WireValue](files []string, top string,
	ascending bool) (*blif.Parser[T], []mcircuit.Operation[T], error) {

	if len(files) == 0 {
		return nil, nil, fmt.Errorf("no netlist files")
	}

	var parser *blif.Parser[T]
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()

		if parser == nil {
			parser = blif.NewParser[T](f)
		} else {
			parser.AddSource(f)
		}
	}
	if ascending {
		parser.SetPinOrder(blif.PinOrderAscending)
	}

	circuits, err := parser.Circuits()
	if err != nil {
		return nil, nil, err
	}
	if len(circuits) == 0 {
		return nil, nil, fmt.Errorf("no modules found")
	}
	if len(top) == 0 {
		top = circuits[len(circuits)-1].Name
	}

	modules, err := blif.Index(circuits)
	if err != nil {
		return nil, nil, err
	}
	flat, err := blif.Flatten(modules, top)
	if err != nil {
		return nil, nil, err
	}
	return parser, flat, nil
}

// loadProgram flattens the netlists into a composite program on the
// selected domain.
func loadProgram(files []string, top string, ascending, arith bool) (
	eval.Namer, []mcircuit.CombineOperation, error) {

	if arith {
		parser, flat, err := loadNetlists[uint64](files, top, ascending)
		if err != nil {
			return nil, nil, err
		}
		return parser.Hasher().Backref, blif.Compose(nil, flat), nil
	}
	parser, flat, err := loadNetlists[bool](files, top, ascending)
	if err != nil {
		return nil, nil, err
	}
	return parser.Hasher().Backref, blif.Compose(flat, nil), nil
}

// parseBoolInputs decodes a comma-separated list of boolean input
// values.
func parseBoolInputs(arg string) ([]bool, error) {
	if len(arg) == 0 {
		return nil, nil
	}
	var result []bool
	for _, tok := range strings.Split(arg, ",") {
		switch strings.TrimSpace(tok) {
		case "0", "false":
			result = append(result, false)
		case "1", "true":
			result = append(result, true)
		default:
			return nil, fmt.Errorf("invalid boolean input %q", tok)
		}
	}
	return result, nil
}

// parseArithInputs decodes a comma-separated list of 64-bit input
// values.
func parseArithInputs(arg string) ([]uint64, error) {
	if len(arg) == 0 {
		return nil, nil
	}
	var result []uint64
	for _, tok := range strings.Split(arg, ",") {
		val, err := strconv.ParseUint(strings.TrimSpace(tok), 0, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid input %q", tok)
		}
		result = append(result, val)
	}
	return result, nil
}
