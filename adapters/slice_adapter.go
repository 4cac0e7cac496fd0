// File: adapters/slice_adapter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SliceAdapter presents a native Go slice through the full double-ended
// capability set. The slice lives in a MutableCell, so the adapter is a
// pure pass-through: all mutation flows through the cell's storage slot.
// Front operations are O(n); this adapter exists for interoperability,
// not speed.

package adapters

import (
	"github.com/momentics/hioload-containers/api"
	"github.com/momentics/hioload-containers/cell"
	"github.com/momentics/hioload-containers/core/storage"
	"github.com/momentics/hioload-containers/scope"
)

// SliceAdapter adapts a slice held in a cell to api.Deque.
type SliceAdapter[T any] struct {
	c *cell.Cell[[]T]
}

// NewSliceAdapter creates an empty adapter in the default scope.
func NewSliceAdapter[T any]() *SliceAdapter[T] {
	return NewSliceAdapterIn[T](nil)
}

// NewSliceAdapterIn creates an empty adapter in s.
func NewSliceAdapterIn[T any](s *scope.Scope) *SliceAdapter[T] {
	return &SliceAdapter[T]{
		c: cell.NewIn(s, storage.NewPacked[[]T](), nil),
	}
}

// PushBack appends v.
func (a *SliceAdapter[T]) PushBack(v T) {
	a.c.Modify(func(s []T) []T { return append(s, v) })
}

// PushFront prepends v. O(n).
func (a *SliceAdapter[T]) PushFront(v T) {
	a.c.Modify(func(s []T) []T { return append([]T{v}, s...) })
}

// PopFront removes the first element; ok==false if empty. O(n).
func (a *SliceAdapter[T]) PopFront() (v T, ok bool) {
	s := a.c.Get()
	if len(s) == 0 {
		return v, false
	}
	v = s[0]
	a.c.Set(append([]T(nil), s[1:]...))
	return v, true
}

// PopBack removes the last element; ok==false if empty.
func (a *SliceAdapter[T]) PopBack() (v T, ok bool) {
	s := a.c.Get()
	if len(s) == 0 {
		return v, false
	}
	v = s[len(s)-1]
	a.c.Set(s[:len(s)-1])
	return v, true
}

// Len returns the number of elements.
func (a *SliceAdapter[T]) Len() int {
	return len(a.c.Get())
}

// IsEmpty reports whether the slice is empty.
func (a *SliceAdapter[T]) IsEmpty() bool {
	return a.Len() == 0
}

var _ api.Deque[int] = (*SliceAdapter[int])(nil)
