// File: core/storage/packed.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Packed strategy: elements occupy their native in-memory layout in a
// plain slice. The fastest layout for fixed-width value types and the
// default choice unless elements must cross a byte boundary or vary in
// shape.

package storage

import "github.com/momentics/hioload-containers/api"

// Packed lays elements out in a native slice.
type Packed[T any] struct{}

// NewPacked returns the packed layout policy for T.
func NewPacked[T any]() Packed[T] {
	return Packed[T]{}
}

func (Packed[T]) Alloc(capacity int) api.Buffer[T] {
	return &packedBuffer[T]{data: make([]T, capacity)}
}

type packedBuffer[T any] struct {
	data []T
}

func (b *packedBuffer[T]) Cap() int {
	return len(b.data)
}

func (b *packedBuffer[T]) Load(i int) T {
	return b.data[i]
}

func (b *packedBuffer[T]) Store(i int, v T) {
	b.data[i] = v
}

func (b *packedBuffer[T]) Clear(i int) {
	var zero T
	b.data[i] = zero
}

func (b *packedBuffer[T]) Move(dst api.Buffer[T], dstIdx, srcIdx int) {
	if pb, ok := dst.(*packedBuffer[T]); ok {
		pb.data[dstIdx] = b.data[srcIdx]
	} else {
		dst.Store(dstIdx, b.data[srcIdx])
	}
	b.Clear(srcIdx)
}

func (b *packedBuffer[T]) Release() {
	b.data = nil
}

var _ api.Strategy[int] = Packed[int]{}
var _ api.Buffer[int] = (*packedBuffer[int])(nil)
