// File: core/storage/marshalled.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Marshalled strategy: each element is serialized into a fixed-width byte
// slot. The backing byte region comes from the Go heap for small buffers
// and from the mmap arena (see arena_linux.go) once the region crosses
// arenaMinBytes, so large containers stay off the garbage-collected heap.

package storage

import "github.com/momentics/hioload-containers/api"

// Buffers at or above this byte size are arena-allocated.
const arenaMinBytes = 64 * 1024

// Marshalled lays elements out as fixed-width encoded byte slots.
type Marshalled[T any] struct {
	codec Codec[T]
}

// NewMarshalled returns the marshalled layout policy for T under codec.
func NewMarshalled[T any](codec Codec[T]) Marshalled[T] {
	return Marshalled[T]{codec: codec}
}

func (m Marshalled[T]) Alloc(capacity int) api.Buffer[T] {
	width := m.codec.Width()
	size := capacity * width
	var data []byte
	mapped := false
	if size >= arenaMinBytes {
		data, mapped = arenaAlloc(size)
	} else {
		data = make([]byte, size)
	}
	return &marshalledBuffer[T]{
		codec:  m.codec,
		width:  width,
		data:   data,
		slots:  capacity,
		mapped: mapped,
	}
}

type marshalledBuffer[T any] struct {
	codec  Codec[T]
	width  int
	data   []byte
	slots  int
	mapped bool
}

func (b *marshalledBuffer[T]) slot(i int) []byte {
	off := i * b.width
	return b.data[off : off+b.width]
}

func (b *marshalledBuffer[T]) Cap() int {
	return b.slots
}

func (b *marshalledBuffer[T]) Load(i int) T {
	return b.codec.Decode(b.slot(i))
}

func (b *marshalledBuffer[T]) Store(i int, v T) {
	b.codec.Encode(b.slot(i), v)
}

func (b *marshalledBuffer[T]) Clear(i int) {
	s := b.slot(i)
	for j := range s {
		s[j] = 0
	}
}

func (b *marshalledBuffer[T]) Move(dst api.Buffer[T], dstIdx, srcIdx int) {
	if mb, ok := dst.(*marshalledBuffer[T]); ok && mb.width == b.width {
		copy(mb.slot(dstIdx), b.slot(srcIdx))
	} else {
		dst.Store(dstIdx, b.Load(srcIdx))
	}
	b.Clear(srcIdx)
}

func (b *marshalledBuffer[T]) Release() {
	if b.data == nil {
		return
	}
	if b.mapped {
		arenaFree(b.data)
	}
	b.data = nil
	b.slots = 0
}

var _ api.Strategy[uint64] = Marshalled[uint64]{}
var _ api.Buffer[uint64] = (*marshalledBuffer[uint64])(nil)
