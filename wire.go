//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package mcircuit

import (
	"encoding/binary"
	"fmt"

	"github.com/holiman/uint256"
)

// Wire specifies a wire ID. Wire IDs are dense non-negative integers,
// unique within one flattened circuit and scoped to one domain: a
// boolean wire and an arithmetic wire with the same numeric value are
// distinct entities. IDs 0 and 1 are reserved for the constants false
// and true and are pre-populated by Const gates at the start of every
// parsed module.
type Wire int

// Reserved wire IDs.
const (
	WireFalse Wire = 0
	WireTrue  Wire = 1
)

func (w Wire) String() string {
	return fmt.Sprintf("w%d", w)
}

// Uint256 is the 256-bit wire value type. Arithmetic on it wraps
// modulo 2^256.
type Uint256 = uint256.Int

// WireValue constrains the value types wires can carry: GF(2) as bool
// or as a byte, and the 64-bit and 256-bit integer rings.
type WireValue interface {
	bool | uint8 | uint64 | Uint256
}

// Zero returns the additive identity of the wire value type T.
func Zero[T WireValue]() T {
	var zero T
	return zero
}

// One returns the multiplicative identity of the wire value type T.
func One[T WireValue]() T {
	var one T
	switch v := any(&one).(type) {
	case *bool:
		*v = true
	case *uint8:
		*v = 1
	case *uint64:
		*v = 1
	case *Uint256:
		v.SetOne()
	}
	return one
}

// IsZero tests if the value is the additive identity of its domain.
func IsZero[T WireValue](val T) bool {
	switch v := any(val).(type) {
	case bool:
		return !v
	case uint8:
		return v == 0
	case uint64:
		return v == 0
	case Uint256:
		return v.IsZero()
	}
	return false
}

// IsOne tests if the value is the multiplicative identity of its
// domain.
func IsOne[T WireValue](val T) bool {
	switch v := any(val).(type) {
	case bool:
		return v
	case uint8:
		return v == 1
	case uint64:
		return v == 1
	case Uint256:
		one := uint256.NewInt(1)
		return v.Eq(one)
	}
	return false
}

// FromUint64 embeds a small integer into the wire value type T. For
// bool, any non-zero value maps to true.
func FromUint64[T WireValue](val uint64) T {
	var ret T
	switch v := any(&ret).(type) {
	case *bool:
		*v = val != 0
	case *uint8:
		*v = uint8(val)
	case *uint64:
		*v = val
	case *Uint256:
		v.SetUint64(val)
	}
	return ret
}

// ValueBytes returns the fixed-width little-endian byte encoding of
// the wire value.
func ValueBytes[T WireValue](val T) []byte {
	switch v := any(val).(type) {
	case bool:
		if v {
			return []byte{1}
		}
		return []byte{0}
	case uint8:
		return []byte{v}
	case uint64:
		buf := make([]byte, 8)
		binary.LittleEndian.PutUint64(buf, v)
		return buf
	case Uint256:
		be := v.Bytes32()
		buf := make([]byte, 32)
		for i := 0; i < 32; i++ {
			buf[i] = be[31-i]
		}
		return buf
	}
	return nil
}

// ValueString formats the wire value for diagnostics and export.
func ValueString[T WireValue](val T) string {
	switch v := any(val).(type) {
	case bool:
		if v {
			return "1"
		}
		return "0"
	case Uint256:
		return v.Dec()
	default:
		return fmt.Sprintf("%d", v)
	}
}
