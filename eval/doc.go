//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

// Package eval executes flattened composite programs in the clear
// and records evaluation traces in Value Change Dump (VCD) form for
// waveform debuggers.
package eval
