//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

// Package mcircuit implements an intermediate representation for
// computation expressed as flat gate lists over small algebraic
// domains: the GF(2) boolean field and the 64-bit and 256-bit integer
// rings. Circuits are sequences of Operation values, composed across
// domains as CombineOperation programs, with uniform introspection
// (wire I/O), rewiring (translation), and constant-folding detection
// over every gate variant. The blif sub-package parses hierarchical
// netlist descriptions into this representation and flattens module
// hierarchies into single gate lists with globally unique wire IDs.
package mcircuit
