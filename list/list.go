// File: list/list.go
// Package list
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Doubly-linked double-ended queue with O(1) worst-case push/pop at both
// ends and O(1) removal by node handle. Forward links carry ownership of
// the chain; prev links are navigation only. Every node is tagged with
// the identity of its owning list, so a stale or foreign handle is
// rejected instead of corrupting the chain.

package list

import (
	"sync/atomic"

	"github.com/momentics/hioload-containers/api"
	"github.com/momentics/hioload-containers/scope"
)

var nextListID atomic.Uint64

// Node is an opaque handle to one resident element. Valid only for the
// list that produced it, and only while the element is resident.
type Node[T any] struct {
	value      T
	next, prev *Node[T]
	owner      uint64 // identity of the owning list; zero once unlinked
}

// Value returns the element held by the node.
func (n *Node[T]) Value() T {
	return n.value
}

// Next returns the next resident node, or nil at the back.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the previous resident node, or nil at the front.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// List is a doubly-linked deque.
type List[T any] struct {
	guard  scope.Guard
	id     uint64
	front  *Node[T]
	back   *Node[T]
	length int
}

// New creates an empty list in the default scope.
func New[T any]() *List[T] {
	return NewIn[T](nil)
}

// NewIn creates an empty list in s; it is cleared when s closes.
func NewIn[T any](s *scope.Scope) *List[T] {
	l := &List[T]{
		guard: scope.Bind(s),
		id:    nextListID.Add(1),
	}
	if s != nil {
		s.OnClose(l.clearNodes)
	}
	return l
}

// PushFront links v as the new front element. O(1).
func (l *List[T]) PushFront(v T) {
	l.guard.Check()
	n := &Node[T]{value: v, owner: l.id}
	n.next = l.front
	if l.front != nil {
		l.front.prev = n
	} else {
		l.back = n
	}
	l.front = n
	l.length++
}

// PushBack links v as the new back element. O(1).
func (l *List[T]) PushBack(v T) {
	l.guard.Check()
	n := &Node[T]{value: v, owner: l.id}
	n.prev = l.back
	if l.back != nil {
		l.back.next = n
	} else {
		l.front = n
	}
	l.back = n
	l.length++
}

// PopFront unlinks and returns the front element; ok==false if empty.
func (l *List[T]) PopFront() (v T, ok bool) {
	l.guard.Check()
	if l.front == nil {
		return v, false
	}
	return l.unlink(l.front), true
}

// PopBack unlinks and returns the back element; ok==false if empty.
func (l *List[T]) PopBack() (v T, ok bool) {
	l.guard.Check()
	if l.back == nil {
		return v, false
	}
	return l.unlink(l.back), true
}

// PeekFront returns the front element without removal; ok==false if empty.
func (l *List[T]) PeekFront() (v T, ok bool) {
	l.guard.Check()
	if l.front == nil {
		return v, false
	}
	return l.front.value, true
}

// PeekBack returns the back element without removal; ok==false if empty.
func (l *List[T]) PeekBack() (v T, ok bool) {
	l.guard.Check()
	if l.back == nil {
		return v, false
	}
	return l.back.value, true
}

// Front returns a handle to the front node, or nil if empty.
func (l *List[T]) Front() *Node[T] {
	return l.front
}

// Back returns a handle to the back node, or nil if empty.
func (l *List[T]) Back() *Node[T] {
	return l.back
}

// Remove unlinks an arbitrary resident node and returns its element.
// O(1). Panics with api.ErrForeignHandle if n is nil, already removed,
// or belongs to another list; the chain is never touched in that case.
func (l *List[T]) Remove(n *Node[T]) T {
	l.guard.Check()
	if n == nil || n.owner != l.id {
		panic(api.ErrForeignHandle)
	}
	return l.unlink(n)
}

// Len returns the number of resident nodes.
func (l *List[T]) Len() int {
	return l.length
}

// IsEmpty reports whether the list holds no nodes.
func (l *List[T]) IsEmpty() bool {
	return l.length == 0
}

// Clear unlinks every node. O(n); the list stays usable.
func (l *List[T]) Clear() {
	l.guard.Check()
	l.clearNodes()
}

// unlink detaches n from the chain, fixes both neighbor links, and marks
// the handle dead. Exactly one node's links are released per call.
func (l *List[T]) unlink(n *Node[T]) T {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.front = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.back = n.prev
	}
	n.next = nil
	n.prev = nil
	n.owner = 0
	l.length--
	return n.value
}

func (l *List[T]) clearNodes() {
	// Break links so dead handles cannot reach resident nodes.
	for n := l.front; n != nil; {
		next := n.next
		n.next = nil
		n.prev = nil
		n.owner = 0
		n = next
	}
	l.front = nil
	l.back = nil
	l.length = 0
}

var _ api.Deque[int] = (*List[int])(nil)
