// File: cell/cell.go
// Package cell
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Single-slot mutable container over a storage strategy. The simplest
// consumer of the strategy abstraction; also the substrate for adapting
// host sequence types to the capability set (see adapters).

package cell

import (
	"github.com/momentics/hioload-containers/api"
	"github.com/momentics/hioload-containers/scope"
)

// Cell holds exactly one element under a storage strategy.
// Not a sequence: it implements none of the push/pop capabilities.
type Cell[T any] struct {
	guard scope.Guard
	buf   api.Buffer[T]
}

// New creates a cell in the default scope holding initial.
func New[T any](strat api.Strategy[T], initial T) *Cell[T] {
	return NewIn(nil, strat, initial)
}

// NewIn creates a cell in s holding initial. The cell releases its slot
// when s closes.
func NewIn[T any](s *scope.Scope, strat api.Strategy[T], initial T) *Cell[T] {
	c := &Cell[T]{
		guard: scope.Bind(s),
		buf:   strat.Alloc(1),
	}
	c.buf.Store(0, initial)
	// The default scope never closes; registering there would pin the cell.
	if s != nil {
		s.OnClose(c.Release)
	}
	return c
}

// Get returns the current element. Never mutates.
func (c *Cell[T]) Get() T {
	c.guard.Check()
	return c.buf.Load(0)
}

// Set replaces the element, releasing the prior occupant first.
func (c *Cell[T]) Set(v T) {
	c.guard.Check()
	c.buf.Clear(0)
	c.buf.Store(0, v)
}

// Modify applies f to the element in place. Not atomic; single-owner only.
func (c *Cell[T]) Modify(f func(T) T) {
	c.guard.Check()
	v := c.buf.Load(0)
	c.buf.Clear(0)
	c.buf.Store(0, f(v))
}

// Release drops the slot and its resources. Idempotent; the cell must not
// be used afterwards.
func (c *Cell[T]) Release() {
	if c.buf == nil {
		return
	}
	c.buf.Clear(0)
	c.buf.Release()
	c.buf = nil
}
