// File: core/storage/indirect.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Indirected strategy: the buffer stores ownership handles to heap-boxed
// elements, so any element type works regardless of shape or size. Slots
// hold at most one handle; Clear drops it so the buffer never keeps a
// popped element alive.

package storage

import "github.com/momentics/hioload-containers/api"

// Indirect boxes each element behind an owned handle.
type Indirect[T any] struct{}

// NewIndirect returns the indirected layout policy for T.
func NewIndirect[T any]() Indirect[T] {
	return Indirect[T]{}
}

func (Indirect[T]) Alloc(capacity int) api.Buffer[T] {
	return &indirectBuffer[T]{handles: make([]*T, capacity)}
}

type indirectBuffer[T any] struct {
	handles []*T
}

func (b *indirectBuffer[T]) Cap() int {
	return len(b.handles)
}

func (b *indirectBuffer[T]) Load(i int) T {
	return *b.handles[i]
}

// Store boxes v into a fresh handle. A live occupant must be cleared
// first; Store never releases one.
func (b *indirectBuffer[T]) Store(i int, v T) {
	h := new(T)
	*h = v
	b.handles[i] = h
}

func (b *indirectBuffer[T]) Clear(i int) {
	b.handles[i] = nil
}

// Move transfers the handle itself, so the payload is never reboxed and
// the source slot cannot retain it.
func (b *indirectBuffer[T]) Move(dst api.Buffer[T], dstIdx, srcIdx int) {
	if ib, ok := dst.(*indirectBuffer[T]); ok {
		ib.handles[dstIdx] = b.handles[srcIdx]
	} else {
		dst.Store(dstIdx, *b.handles[srcIdx])
	}
	b.handles[srcIdx] = nil
}

func (b *indirectBuffer[T]) Release() {
	b.handles = nil
}

var _ api.Strategy[string] = Indirect[string]{}
var _ api.Buffer[string] = (*indirectBuffer[string])(nil)
