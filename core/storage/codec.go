// File: core/storage/codec.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-width slot codecs for the Marshalled strategy. A codec maps one
// element to exactly Width bytes; decode of an encoded slot yields an
// equivalent element bit for bit.

package storage

import (
	"encoding/binary"
	"math"
)

// Codec is a deterministic fixed-width byte encoding for T.
type Codec[T any] interface {
	// Width returns the slot size in bytes. Constant per codec.
	Width() int
	// Encode writes v into dst[:Width()].
	Encode(dst []byte, v T)
	// Decode reads an element back from src[:Width()].
	Decode(src []byte) T
}

// Uint64Codec stores uint64 elements in 8 little-endian bytes.
type Uint64Codec struct{}

func (Uint64Codec) Width() int { return 8 }

func (Uint64Codec) Encode(dst []byte, v uint64) { binary.LittleEndian.PutUint64(dst, v) }

func (Uint64Codec) Decode(src []byte) uint64 { return binary.LittleEndian.Uint64(src) }

// Int64Codec stores int64 elements in 8 little-endian bytes.
type Int64Codec struct{}

func (Int64Codec) Width() int { return 8 }

func (Int64Codec) Encode(dst []byte, v int64) { binary.LittleEndian.PutUint64(dst, uint64(v)) }

func (Int64Codec) Decode(src []byte) int64 { return int64(binary.LittleEndian.Uint64(src)) }

// Float64Codec stores float64 elements as 8 bytes of IEEE 754 bits.
type Float64Codec struct{}

func (Float64Codec) Width() int { return 8 }

func (Float64Codec) Encode(dst []byte, v float64) {
	binary.LittleEndian.PutUint64(dst, math.Float64bits(v))
}
func (Float64Codec) Decode(src []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(src))
}

var (
	_ Codec[uint64]  = Uint64Codec{}
	_ Codec[int64]   = Int64Codec{}
	_ Codec[float64] = Float64Codec{}
)
