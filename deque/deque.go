// File: deque/deque.go
// Package deque
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Growable ring-buffer deque over a storage strategy. Capacity is always
// zero or a power of two, so wraparound indexing is a mask operation.
// Push/pop at both ends is amortized O(1): the buffer doubles when full
// and halves when occupancy drops to a quarter, and every reallocation
// re-lays the live elements out from slot 0 in logical order.

package deque

import (
	"github.com/momentics/hioload-containers/api"
	"github.com/momentics/hioload-containers/scope"
)

// minCapacity is the smallest allocated capacity. Shrinking never goes
// below it; an empty deque defers allocation until the first push.
const minCapacity = 4

// Deque is a double-ended queue on a circular buffer.
type Deque[T any] struct {
	guard scope.Guard
	strat api.Strategy[T]

	buf      api.Buffer[T] // nil until first push
	head     int           // buffer slot of the logical front element
	length   int
	released bool

	stats Stats
}

// Stats counts reallocation work. Moved is the total number of elements
// copied by grow/shrink; across n pushes from empty it stays within a
// small constant multiple of n.
type Stats struct {
	Grows   uint64
	Shrinks uint64
	Moved   uint64
}

// New creates an empty deque in the default scope.
func New[T any](strat api.Strategy[T]) *Deque[T] {
	return NewIn(nil, strat)
}

// NewIn creates an empty deque in s; it is released when s closes.
func NewIn[T any](s *scope.Scope, strat api.Strategy[T]) *Deque[T] {
	d := &Deque[T]{
		guard: scope.Bind(s),
		strat: strat,
	}
	if s != nil {
		s.OnClose(d.Release)
	}
	return d
}

// slot maps logical index i to a buffer slot. Capacity is a power of two.
func (d *Deque[T]) slot(i int) int {
	return (d.head + i) & (d.buf.Cap() - 1)
}

// PushBack appends v at the logical back. Amortized O(1).
func (d *Deque[T]) PushBack(v T) {
	d.guard.Check()
	d.ensureSpace()
	d.buf.Store(d.slot(d.length), v)
	d.length++
}

// PushFront inserts v at the logical front. Amortized O(1).
func (d *Deque[T]) PushFront(v T) {
	d.guard.Check()
	d.ensureSpace()
	d.head = (d.head - 1) & (d.buf.Cap() - 1)
	d.buf.Store(d.head, v)
	d.length++
}

// PopFront removes and returns the front element; ok==false if empty.
func (d *Deque[T]) PopFront() (v T, ok bool) {
	d.guard.Check()
	if d.length == 0 {
		return v, false
	}
	v = d.buf.Load(d.head)
	d.buf.Clear(d.head)
	d.head = d.slot(1)
	d.length--
	d.maybeShrink()
	return v, true
}

// PopBack removes and returns the back element; ok==false if empty.
func (d *Deque[T]) PopBack() (v T, ok bool) {
	d.guard.Check()
	if d.length == 0 {
		return v, false
	}
	idx := d.slot(d.length - 1)
	v = d.buf.Load(idx)
	d.buf.Clear(idx)
	d.length--
	d.maybeShrink()
	return v, true
}

// PeekFront returns the front element without removal; ok==false if empty.
func (d *Deque[T]) PeekFront() (v T, ok bool) {
	d.guard.Check()
	if d.length == 0 {
		return v, false
	}
	return d.buf.Load(d.head), true
}

// PeekBack returns the back element without removal; ok==false if empty.
func (d *Deque[T]) PeekBack() (v T, ok bool) {
	d.guard.Check()
	if d.length == 0 {
		return v, false
	}
	return d.buf.Load(d.slot(d.length - 1)), true
}

// Len returns the number of live elements.
func (d *Deque[T]) Len() int {
	return d.length
}

// IsEmpty reports whether the deque holds no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.length == 0
}

// Cap returns the current buffer capacity.
func (d *Deque[T]) Cap() int {
	if d.buf == nil {
		return 0
	}
	return d.buf.Cap()
}

// Stats returns a snapshot of reallocation counters.
func (d *Deque[T]) Stats() Stats {
	return d.stats
}

// Snapshot exposes the counters for a control registry probe.
func (d *Deque[T]) Snapshot() map[string]any {
	return map[string]any{
		"len":     d.length,
		"cap":     d.Cap(),
		"grows":   d.stats.Grows,
		"shrinks": d.stats.Shrinks,
		"moved":   d.stats.Moved,
	}
}

// Clear drains every element, releasing indirected occupants. Capacity is
// kept; the deque stays usable.
func (d *Deque[T]) Clear() {
	d.guard.Check()
	for i := 0; i < d.length; i++ {
		d.buf.Clear(d.slot(i))
	}
	d.head = 0
	d.length = 0
}

// Release drops the buffer and every live element. Terminal: any further
// operation panics. Idempotent.
func (d *Deque[T]) Release() {
	if d.released {
		return
	}
	if d.buf != nil {
		for i := 0; i < d.length; i++ {
			d.buf.Clear(d.slot(i))
		}
		d.buf.Release()
		d.buf = nil
	}
	d.head = 0
	d.length = 0
	d.released = true
}

// ensureSpace guarantees one free slot, allocating lazily on first push
// and doubling when full. The new buffer is fully allocated before any
// state changes, so a failed allocation leaves the deque intact.
func (d *Deque[T]) ensureSpace() {
	switch {
	case d.released:
		panic(api.ErrBufferReleased)
	case d.buf == nil:
		d.buf = d.strat.Alloc(minCapacity)
	case d.length == d.buf.Cap():
		d.realloc(d.buf.Cap() * 2)
		d.stats.Grows++
	}
}

// maybeShrink halves capacity once occupancy drops to a quarter, never
// below minCapacity.
func (d *Deque[T]) maybeShrink() {
	c := d.buf.Cap()
	if c > minCapacity && d.length <= c/4 {
		d.realloc(c / 2)
		d.stats.Shrinks++
	}
}

// realloc moves the live elements into a fresh buffer of newCap slots,
// in logical order starting at slot 0, then releases the old buffer.
// Move transfers ownership handles, so no element is retained twice.
func (d *Deque[T]) realloc(newCap int) {
	next := d.strat.Alloc(newCap)
	mask := d.buf.Cap() - 1
	for i := 0; i < d.length; i++ {
		d.buf.Move(next, i, (d.head+i)&mask)
	}
	d.buf.Release()
	d.buf = next
	d.head = 0
	d.stats.Moved += uint64(d.length)
}

var _ api.Deque[int] = (*Deque[int])(nil)
