//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package mcircuit

// Translate rebuilds the gate with wires drawn from the supplied
// sequences instead of the current ones. The variant and the embedded
// constant are preserved; the current wires have no bearing on the
// result. The sequences must be at least as long as the gate's own
// I/O arity or Translate panics. This is the mechanism by which
// subcircuit gates are relocated into the parent's flat numbering
// space during flattening, and by which whole circuits are renumbered
// when merging independently parsed programs.
func (op Operation[T]) Translate(win, wout []Wire) Operation[T] {
	var c *T
	switch op.Kind.Shape() {
	case InputConstShape, BinaryConstShape:
		c = &op.Const
	}
	return Construct(op.Kind, win, wout, c)
}

// TranslateMap maps each wire of the gate through the lookup table.
// Wires absent from the table pass through unchanged.
func (op Operation[T]) TranslateMap(table map[Wire]Wire) Operation[T] {
	return op.Translate(mapWires(op.Inputs(), table),
		mapWires(op.Outputs(), table))
}

// TranslateFunc maps the input wires through fin and the output wires
// through fout.
func (op Operation[T]) TranslateFunc(fin, fout func(Wire) Wire) Operation[T] {
	return op.Translate(applyWires(op.Inputs(), fin),
		applyWires(op.Outputs(), fout))
}

// Translate implements CombineOperation.Translate.
func (g GF2) Translate(win, wout []Wire) (CombineOperation, bool) {
	return GF2{Op: g.Op.Translate(win, wout)}, true
}

// Translate implements CombineOperation.Translate.
func (g GF2AsU8) Translate(win, wout []Wire) (CombineOperation, bool) {
	return GF2AsU8{Op: g.Op.Translate(win, wout)}, true
}

// Translate implements CombineOperation.Translate.
func (g Z64) Translate(win, wout []Wire) (CombineOperation, bool) {
	return Z64{Op: g.Op.Translate(win, wout)}, true
}

// Translate implements CombineOperation.Translate.
func (g Z256) Translate(win, wout []Wire) (CombineOperation, bool) {
	return Z256{Op: g.Op.Translate(win, wout)}, true
}

// Translate implements CombineOperation.Translate. The first input
// wire becomes the new low bit and the first output wire the new
// arithmetic destination.
func (g B2A) Translate(win, wout []Wire) (CombineOperation, bool) {
	if len(win) < 1 {
		panic("B2A gate needs an input wire")
	}
	if len(wout) < 1 {
		panic("B2A gate needs an output wire")
	}
	return B2A{Dst: wout[0], Low: win[0]}, true
}

// Translate implements CombineOperation.Translate. Size hints are not
// translatable: relocating one is meaningless, so callers must
// re-derive it for the translated program.
func (g SizeHint) Translate(win, wout []Wire) (CombineOperation, bool) {
	return nil, false
}

// TranslateMap maps each wire of the gate through the lookup table.
// Wires absent from the table pass through unchanged.
func TranslateMap(op CombineOperation, table map[Wire]Wire) (
	CombineOperation, bool) {
	return op.Translate(mapWires(op.Inputs(), table),
		mapWires(op.Outputs(), table))
}

// TranslateFunc maps the input wires of the gate through fin and the
// output wires through fout.
func TranslateFunc(op CombineOperation, fin, fout func(Wire) Wire) (
	CombineOperation, bool) {
	return op.Translate(applyWires(op.Inputs(), fin),
		applyWires(op.Outputs(), fout))
}

func mapWires(wires []Wire, table map[Wire]Wire) []Wire {
	result := make([]Wire, len(wires))
	for idx, w := range wires {
		mapped, ok := table[w]
		if ok {
			result[idx] = mapped
		} else {
			result[idx] = w
		}
	}
	return result
}

func applyWires(wires []Wire, fn func(Wire) Wire) []Wire {
	result := make([]Wire, len(wires))
	for idx, w := range wires {
		result[idx] = fn(w)
	}
	return result
}
