// File: core/storage/arena_linux.go
//go:build linux

//
// Package storage: Linux byte arena for marshalled buffers.
//
// Large slot regions are allocated via anonymous mmap, with a hugepage
// attempt first for 2 MiB-aligned sizes. Fallback to the Go heap if the
// kernel refuses the mapping.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package storage

import "golang.org/x/sys/unix"

const hugePageSize = 2 << 20

// arenaAlloc maps a region of at least size bytes. The returned slice has
// len==size and cap equal to the full mapped length; mapped==false means
// the heap fallback was taken and arenaFree must not be called.
func arenaAlloc(size int) ([]byte, bool) {
	length := pageRound(size)

	prot := unix.PROT_READ | unix.PROT_WRITE
	flags := unix.MAP_ANONYMOUS | unix.MAP_PRIVATE
	if length%hugePageSize == 0 {
		if data, err := unix.Mmap(-1, 0, length, prot, flags|unix.MAP_HUGETLB); err == nil {
			return data[:size:length], true
		}
	}
	data, err := unix.Mmap(-1, 0, length, prot, flags)
	if err != nil {
		return make([]byte, size), false
	}
	return data[:size:length], true
}

// arenaFree returns a mapped region to the OS.
func arenaFree(data []byte) {
	unix.Munmap(data[:cap(data)])
}

func pageRound(size int) int {
	page := unix.Getpagesize()
	return ((size + page - 1) / page) * page
}
