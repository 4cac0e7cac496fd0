package list_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-containers/api"
	"github.com/momentics/hioload-containers/list"
	"github.com/momentics/hioload-containers/scope"
)

// forward collects elements front to back; backward collects back to front.
func forward[T any](l *list.List[T]) []T {
	var out []T
	for n := l.Front(); n != nil; n = n.Next() {
		out = append(out, n.Value())
	}
	return out
}

func backward[T any](l *list.List[T]) []T {
	var out []T
	for n := l.Back(); n != nil; n = n.Prev() {
		out = append(out, n.Value())
	}
	return out
}

func TestPushPopEnds(t *testing.T) {
	l := list.New[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.PushFront(0)

	v, ok := l.PopFront()
	require.True(t, ok)
	require.Equal(t, 0, v)
	v, ok = l.PopFront()
	require.True(t, ok)
	require.Equal(t, 1, v)
	v, ok = l.PopBack()
	require.True(t, ok)
	require.Equal(t, 2, v)
	_, ok = l.PopFront()
	require.False(t, ok)
}

func TestTraversalSymmetry(t *testing.T) {
	l := list.New[int]()
	for i := 0; i < 20; i++ {
		if i%2 == 0 {
			l.PushBack(i)
		} else {
			l.PushFront(i)
		}
	}
	fwd := forward(l)
	bwd := backward(l)
	require.Len(t, fwd, l.Len())
	for i := range fwd {
		require.Equal(t, fwd[i], bwd[len(bwd)-1-i])
	}
}

func TestLengthMatchesReachableNodes(t *testing.T) {
	l := list.New[string]()
	l.PushBack("a")
	l.PushBack("b")
	l.PushBack("c")
	l.PopFront()
	require.Equal(t, len(forward(l)), l.Len())
	l.PopBack()
	require.Equal(t, len(forward(l)), l.Len())
}

func TestRemoveMiddleNode(t *testing.T) {
	l := list.New[int]()
	for i := 0; i < 5; i++ {
		l.PushBack(i)
	}
	n := l.Front().Next().Next() // node holding 2
	require.Equal(t, 2, l.Remove(n))
	require.Equal(t, []int{0, 1, 3, 4}, forward(l))
	require.Equal(t, []int{4, 3, 1, 0}, backward(l))
	require.Equal(t, 4, l.Len())
}

func TestRemoveEndsViaHandle(t *testing.T) {
	l := list.New[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.PushBack(3)
	require.Equal(t, 1, l.Remove(l.Front()))
	require.Equal(t, 3, l.Remove(l.Back()))
	require.Equal(t, []int{2}, forward(l))
}

func TestRemoveForeignHandleRejected(t *testing.T) {
	a := list.New[int]()
	b := list.New[int]()
	a.PushBack(1)
	b.PushBack(2)

	require.PanicsWithValue(t, api.ErrForeignHandle, func() { a.Remove(b.Front()) })
	require.PanicsWithValue(t, api.ErrForeignHandle, func() { a.Remove(nil) })

	// Structure intact after the rejected calls.
	require.Equal(t, []int{1}, forward(a))
	require.Equal(t, []int{2}, forward(b))
}

func TestRemoveStaleHandleRejected(t *testing.T) {
	l := list.New[int]()
	l.PushBack(1)
	n := l.Front()
	l.PopFront()
	require.PanicsWithValue(t, api.ErrForeignHandle, func() { l.Remove(n) })
	require.True(t, l.IsEmpty())
}

func TestEmptyPopsIdempotent(t *testing.T) {
	l := list.New[int]()
	for i := 0; i < 5; i++ {
		_, ok := l.PopFront()
		require.False(t, ok)
		_, ok = l.PopBack()
		require.False(t, ok)
	}
	require.True(t, l.IsEmpty())
}

func TestPeek(t *testing.T) {
	l := list.New[int]()
	_, ok := l.PeekFront()
	require.False(t, ok)
	l.PushBack(1)
	l.PushBack(2)
	v, ok := l.PeekFront()
	require.True(t, ok)
	require.Equal(t, 1, v)
	v, ok = l.PeekBack()
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.Equal(t, 2, l.Len())
}

func TestClearInvalidatesHandles(t *testing.T) {
	l := list.New[int]()
	l.PushBack(1)
	l.PushBack(2)
	n := l.Back()
	l.Clear()
	require.True(t, l.IsEmpty())
	require.PanicsWithValue(t, api.ErrForeignHandle, func() { l.Remove(n) })
	l.PushBack(3)
	require.Equal(t, []int{3}, forward(l))
}

func TestScopedListFailsFastAfterClose(t *testing.T) {
	s := scope.New("t")
	l := list.NewIn[int](s)
	l.PushBack(1)
	s.Close()
	require.Panics(t, func() { l.PushBack(2) })
}
