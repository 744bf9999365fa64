//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

// Package exporters writes flattened boolean gate lists in textual
// circuit formats consumed by downstream secure-computation tools:
// Bristol Fashion and the SIEVE IR1 gate language.
package exporters
