package scope_test

import (
	"testing"

	"github.com/momentics/hioload-containers/scope"
)

func TestGuardCheckOpenScope(t *testing.T) {
	s := scope.New("t")
	g := scope.Bind(s)
	g.Check() // must not panic
	if g.Scope() != s {
		t.Error("guard bound to wrong scope")
	}
}

func TestGuardCheckClosedScopePanics(t *testing.T) {
	s := scope.New("t")
	g := scope.Bind(s)
	s.Close()
	defer func() {
		if recover() == nil {
			t.Error("expected panic on closed scope")
		}
	}()
	g.Check()
}

func TestCloseRunsReleasersOnce(t *testing.T) {
	s := scope.New("t")
	var order []int
	s.OnClose(func() { order = append(order, 1) })
	s.OnClose(func() { order = append(order, 2) })
	s.Close()
	s.Close()
	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Errorf("releasers ran %v, want reverse order exactly once", order)
	}
}

func TestBindNilUsesDefault(t *testing.T) {
	g := scope.Bind(nil)
	if g.Scope() != scope.Default() {
		t.Error("nil scope should bind to default")
	}
	g.Check()
}
