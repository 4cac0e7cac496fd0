// File: api/storage.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Storage-strategy contracts. A Strategy decides how a contiguous buffer
// lays out elements of one type; containers are written once against
// Buffer and work over every layout policy.

package api

// Strategy is an element-layout policy for contiguous buffers.
type Strategy[T any] interface {
	// Alloc allocates a buffer of exactly capacity slots. All slots start
	// cleared. Allocation failure is fatal and surfaces as a runtime panic;
	// callers must not mutate their own state before Alloc returns.
	Alloc(capacity int) Buffer[T]
}

// Buffer is a fixed-capacity slot array under one layout policy.
//
// Index bounds are the caller's obligation: buffers do not defend against
// out-of-range slots, and containers must never construct one.
type Buffer[T any] interface {
	// Cap returns the slot capacity.
	Cap() int

	// Load returns the element at slot i.
	// Load after Store at the same slot, with no intervening Store or Clear
	// to that slot, returns an equivalent element.
	Load(i int) T

	// Store places v at slot i. For indirected layouts this installs a new
	// ownership handle without releasing a previous occupant; callers clear
	// live slots first.
	Store(i int, v T)

	// Clear drops slot i's occupant. Indirected layouts must not retain the
	// handle afterwards.
	Clear(i int)

	// Move transfers slot srcIdx of this buffer into slot dstIdx of dst,
	// clearing the source slot. Ownership handles move without reboxing,
	// byte layouts copy without a decode/encode round trip.
	Move(dst Buffer[T], dstIdx, srcIdx int)

	// Release returns the buffer's resources. Live slots must have been
	// moved out or cleared first. Release is idempotent.
	Release()
}
