// File: core/storage/arena_stub.go
//go:build !linux

//
// Package storage: heap fallback for platforms without the mmap arena.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package storage

func arenaAlloc(size int) ([]byte, bool) {
	return make([]byte, size), false
}

func arenaFree([]byte) {}
