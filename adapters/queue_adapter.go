// File: adapters/queue_adapter.go
// Package adapters presents external sequence types through the
// capability set.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// QueueAdapter wraps an eapache FIFO queue behind PushBack/PopFront, so
// algorithms written against the capability interfaces can consume it
// next to the library's own containers. A FIFO ring has no front
// insertion or back removal, hence only the subset is implemented.

package adapters

import (
	"github.com/eapache/queue"

	"github.com/momentics/hioload-containers/api"
	"github.com/momentics/hioload-containers/scope"
)

// QueueAdapter adapts queue.Queue to the PushBack/PopFront capabilities.
type QueueAdapter[T any] struct {
	guard scope.Guard
	q     *queue.Queue
}

// NewQueueAdapter wraps a fresh FIFO queue in the default scope.
func NewQueueAdapter[T any]() *QueueAdapter[T] {
	return NewQueueAdapterIn[T](nil)
}

// NewQueueAdapterIn wraps a fresh FIFO queue in s.
func NewQueueAdapterIn[T any](s *scope.Scope) *QueueAdapter[T] {
	return &QueueAdapter[T]{
		guard: scope.Bind(s),
		q:     queue.New(),
	}
}

// PushBack appends v.
func (a *QueueAdapter[T]) PushBack(v T) {
	a.guard.Check()
	a.q.Add(v)
}

// PopFront removes the oldest element; ok==false if empty.
func (a *QueueAdapter[T]) PopFront() (v T, ok bool) {
	a.guard.Check()
	if a.q.Length() == 0 {
		return v, false
	}
	return a.q.Remove().(T), true
}

// PeekFront returns the oldest element without removal; ok==false if empty.
func (a *QueueAdapter[T]) PeekFront() (v T, ok bool) {
	a.guard.Check()
	if a.q.Length() == 0 {
		return v, false
	}
	return a.q.Peek().(T), true
}

// Len returns the number of queued elements.
func (a *QueueAdapter[T]) Len() int {
	return a.q.Length()
}

// IsEmpty reports whether the queue holds no elements.
func (a *QueueAdapter[T]) IsEmpty() bool {
	return a.q.Length() == 0
}

var (
	_ api.Collection    = (*QueueAdapter[int])(nil)
	_ api.PushBack[int] = (*QueueAdapter[int])(nil)
	_ api.PopFront[int] = (*QueueAdapter[int])(nil)
)
