// File: scope/scope.go
// Package scope
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Scope identity for containers. Every container is tagged at construction
// with the scope it belongs to; operations on a container whose scope has
// been closed fail fast. This keeps a container allocated for one isolated
// computation from being mutated by an unrelated one, without any locking
// on the hot path.

package scope

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-containers/api"
)

var nextID atomic.Uint64

// Scope identifies one isolated execution context.
type Scope struct {
	id    uint64
	label string

	closed    atomic.Bool
	mu        sync.Mutex
	releasers []func()
}

// New creates an open scope. The label is informational only.
func New(label string) *Scope {
	return &Scope{id: nextID.Add(1), label: label}
}

// ID returns the unique scope identifier.
func (s *Scope) ID() uint64 {
	return s.id
}

// Label returns the informational label given at creation.
func (s *Scope) Label() string {
	return s.label
}

// Closed reports whether the scope has been closed.
func (s *Scope) Closed() bool {
	return s.closed.Load()
}

// OnClose registers a release hook, run exactly once when the scope closes.
// Containers register their Release here so closing a scope reclaims every
// resource created inside it.
func (s *Scope) OnClose(release func()) {
	s.mu.Lock()
	s.releasers = append(s.releasers, release)
	s.mu.Unlock()
}

// Close marks the scope closed and runs release hooks in reverse
// registration order. Idempotent.
func (s *Scope) Close() {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}
	s.mu.Lock()
	rs := s.releasers
	s.releasers = nil
	s.mu.Unlock()
	for i := len(rs) - 1; i >= 0; i-- {
		rs[i]()
	}
}

var defaultScope = New("default")

// Default returns the process-wide scope used by containers constructed
// without an explicit scope. It is never closed.
func Default() *Scope {
	return defaultScope
}

// Guard is the per-container scope tag. The zero Guard is unbound and
// must not be used; containers obtain one through Bind.
type Guard struct {
	s *Scope
}

// Bind tags a container with s, falling back to the default scope when
// s is nil.
func Bind(s *Scope) Guard {
	if s == nil {
		s = defaultScope
	}
	return Guard{s: s}
}

// Scope returns the bound scope.
func (g Guard) Scope() *Scope {
	return g.s
}

// Check panics if the bound scope has been closed. Called on every
// container operation; a single atomic load when the scope is open.
func (g Guard) Check() {
	if g.s.closed.Load() {
		panic(api.ErrScopeClosed)
	}
}

// Same reports whether two guards are bound to the same scope.
func (g Guard) Same(other Guard) bool {
	return g.s == other.s
}
