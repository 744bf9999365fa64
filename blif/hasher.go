//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package blif

import (
	"encoding/binary"

	"github.com/markkurossi/mcircuit"
	"golang.org/x/crypto/blake2b"
)

// WireHasher interns hierarchical wire names into dense integer wire
// IDs, assigned in first-seen order with no gaps and no reuse. One
// instance serves a whole parse session, shared across all modules
// and files, so unscoped names like $true and $false map to the same
// ID everywhere while module-scoped names never collide.
//
// Names are keyed by a 64-bit truncation of their BLAKE2b-256 hash;
// hash collisions are accepted as extremely unlikely and not
// detected.
type WireHasher struct {
	ids      map[uint64]mcircuit.Wire
	backrefs []string
	retain   bool
}

// NewWireHasher creates a wire hasher that retains the reverse
// ID-to-name mapping for diagnostics.
func NewWireHasher() *WireHasher {
	return &WireHasher{
		ids:    make(map[uint64]mcircuit.Wire),
		retain: true,
	}
}

// NewCompactWireHasher creates a wire hasher without the reverse
// mapping, for parse sessions where the extra memory matters more
// than diagnostics.
func NewCompactWireHasher() *WireHasher {
	return &WireHasher{
		ids: make(map[uint64]mcircuit.Wire),
	}
}

func hashName(name string) uint64 {
	sum := blake2b.Sum256([]byte(name))
	return binary.LittleEndian.Uint64(sum[:8])
}

// GetWireID interns the wire name. The same name always returns the
// same ID; a name never seen before receives the next unused ID. The
// parser makes "$false" and "$true" the first two calls of every
// session so they receive the reserved IDs 0 and 1.
func (h *WireHasher) GetWireID(name string) mcircuit.Wire {
	key := hashName(name)
	id, ok := h.ids[key]
	if ok {
		return id
	}
	id = mcircuit.Wire(len(h.ids))
	h.ids[key] = id
	if h.retain {
		h.backrefs = append(h.backrefs, name)
	}
	return id
}

// Backref returns the name that was interned as the wire ID. It
// reports false for unknown IDs and on hashers created without the
// reverse mapping.
func (h *WireHasher) Backref(w mcircuit.Wire) (string, bool) {
	if int(w) < 0 || int(w) >= len(h.backrefs) {
		return "", false
	}
	return h.backrefs[int(w)], true
}

// Len returns the number of interned names.
func (h *WireHasher) Len() int {
	return len(h.ids)
}
