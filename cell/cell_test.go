package cell_test

import (
	"testing"

	"github.com/momentics/hioload-containers/cell"
	"github.com/momentics/hioload-containers/core/storage"
	"github.com/momentics/hioload-containers/scope"
)

func TestCellGetSet(t *testing.T) {
	c := cell.New(storage.NewPacked[int](), 10)
	if c.Get() != 10 {
		t.Errorf("Get = %d, want 10", c.Get())
	}
	c.Set(20)
	if c.Get() != 20 {
		t.Errorf("Get = %d, want 20", c.Get())
	}
}

func TestCellModify(t *testing.T) {
	c := cell.New(storage.NewIndirect[string](), "a")
	c.Modify(func(s string) string { return s + "b" })
	if c.Get() != "ab" {
		t.Errorf("Get = %q, want ab", c.Get())
	}
}

func TestCellMarshalled(t *testing.T) {
	c := cell.New(storage.NewMarshalled[uint64](storage.Uint64Codec{}), 5)
	c.Modify(func(v uint64) uint64 { return v * v })
	if c.Get() != 25 {
		t.Errorf("Get = %d, want 25", c.Get())
	}
}

func TestCellReleasedOnScopeClose(t *testing.T) {
	s := scope.New("t")
	c := cell.NewIn(s, storage.NewPacked[int](), 1)
	s.Close()
	defer func() {
		if recover() == nil {
			t.Error("expected panic using cell after scope close")
		}
	}()
	c.Get()
}
