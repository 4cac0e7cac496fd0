// Package benchmarks
// Author: momentics <momentics@gmail.com>
//
// Performance benchmarks for hioload-containers components.

package benchmarks

import (
	"testing"

	"github.com/momentics/hioload-containers/adapters"
	"github.com/momentics/hioload-containers/core/storage"
	"github.com/momentics/hioload-containers/deque"
	"github.com/momentics/hioload-containers/list"
)

// BenchmarkDequePushPopPacked measures the ring deque hot path on the
// packed layout.
func BenchmarkDequePushPopPacked(b *testing.B) {
	d := deque.New(storage.NewPacked[int]())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.PushBack(i)
		d.PopFront()
	}
}

// BenchmarkDequePushPopMarshalled measures the encode/decode overhead of
// the marshalled layout against the packed baseline.
func BenchmarkDequePushPopMarshalled(b *testing.B) {
	d := deque.New(storage.NewMarshalled[uint64](storage.Uint64Codec{}))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.PushBack(uint64(i))
		d.PopFront()
	}
}

// BenchmarkDequePushPopIndirect measures the boxing cost of the
// indirected layout.
func BenchmarkDequePushPopIndirect(b *testing.B) {
	d := deque.New(storage.NewIndirect[int]())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.PushBack(i)
		d.PopFront()
	}
}

// BenchmarkDequeGrowth measures amortized push cost including all
// reallocation work.
func BenchmarkDequeGrowth(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		d := deque.New(storage.NewPacked[int]())
		for j := 0; j < 1024; j++ {
			d.PushBack(j)
		}
		d.Release()
	}
}

// BenchmarkListPushPop measures the linked list hot path.
func BenchmarkListPushPop(b *testing.B) {
	l := list.New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.PushBack(i)
		l.PopFront()
	}
}

// BenchmarkQueueAdapter measures the adapted eapache FIFO for
// comparison with the native containers.
func BenchmarkQueueAdapter(b *testing.B) {
	q := adapters.NewQueueAdapter[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.PushBack(i)
		q.PopFront()
	}
}
