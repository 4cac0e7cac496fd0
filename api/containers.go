// File: api/containers.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Double-ended container capability set. Each capability is a narrow,
// independently implementable contract; generic algorithms are written
// against capabilities, never against concrete container types.

package api

// Collection is the root capability: element count and emptiness.
type Collection interface {
	// Len returns the number of live elements.
	Len() int
	// IsEmpty reports whether the collection holds no elements.
	IsEmpty() bool
}

// Factory constructs a fresh, empty collection instance.
type Factory[C Collection] func() C

// PushFront inserts an element at the logical front.
type PushFront[T any] interface {
	PushFront(T)
}

// PushBack inserts an element at the logical back.
type PushBack[T any] interface {
	PushBack(T)
}

// PopFront removes the front element; ok==false if empty.
type PopFront[T any] interface {
	PopFront() (T, bool)
}

// PopBack removes the back element; ok==false if empty.
type PopBack[T any] interface {
	PopBack() (T, bool)
}

// Deque aggregates the full double-ended capability set.
type Deque[T any] interface {
	Collection
	PushFront[T]
	PushBack[T]
	PopFront[T]
	PopBack[T]
}
