// File: seq/seq.go
// Package seq
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Generic algorithms over the container capability set. Written once
// against api capabilities, they run unchanged over the ring deque, the
// linked list, and any adapted external sequence.

package seq

import "github.com/momentics/hioload-containers/api"

// Fill pushes items onto the back of dst in order.
func Fill[T any](dst api.PushBack[T], items ...T) {
	for _, v := range items {
		dst.PushBack(v)
	}
}

// Drain pops every element from the front of src, front first.
func Drain[T any](src api.PopFront[T]) []T {
	var out []T
	for {
		v, ok := src.PopFront()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// Transfer moves elements front-of-src to back-of-dst until src is
// empty, preserving order. Returns the number moved.
func Transfer[T any](src api.PopFront[T], dst api.PushBack[T]) int {
	n := 0
	for {
		v, ok := src.PopFront()
		if !ok {
			return n
		}
		dst.PushBack(v)
		n++
	}
}

// Reverse moves elements front-of-src to front-of-dst, so dst ends up
// holding src's elements in reverse order. Returns the number moved.
func Reverse[T any](src api.PopFront[T], dst api.PushFront[T]) int {
	n := 0
	for {
		v, ok := src.PopFront()
		if !ok {
			return n
		}
		dst.PushFront(v)
		n++
	}
}

// Collect builds a fresh collection from a factory and fills it.
func Collect[T any, C interface {
	api.Collection
	api.PushBack[T]
}](factory api.Factory[C], items ...T) C {
	c := factory()
	Fill[T](c, items...)
	return c
}
