package control_test

import (
	"testing"

	"github.com/momentics/hioload-containers/control"
)

type fakeProbe map[string]any

func (p fakeProbe) Snapshot() map[string]any { return p }

func TestRegistrySnapshotFlattensKeys(t *testing.T) {
	r := control.NewRegistry()
	r.Register("dq", fakeProbe{"len": 3})
	snap := r.Snapshot()
	if snap["dq.len"] != 3 {
		t.Errorf("snapshot = %v, want dq.len=3", snap)
	}
}

func TestRegistryUnregister(t *testing.T) {
	r := control.NewRegistry()
	r.Register("dq", fakeProbe{"len": 1})
	r.Unregister("dq")
	if len(r.Snapshot()) != 0 {
		t.Error("unregistered probe still visible")
	}
}
