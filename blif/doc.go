//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

// Package blif parses hierarchical BLIF netlist descriptions into
// flat gate lists. Wire names are interned into dense integer IDs by
// a session-wide WireHasher, multi-bit buses are expanded into
// individually numbered bit wires, and subcircuit instantiations are
// resolved into explicit parent-to-child wire connections that the
// flattener inlines through gate translation. The format is assumed
// to be machine-generated and internally consistent: malformed input
// aborts the parse instead of attempting recovery.
package blif
