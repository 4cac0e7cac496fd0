// control/stats.go
// Author: momentics <momentics@gmail.com>
//
// Container stats registry. Probes are registered under a name and read
// lazily at snapshot time, so the containers' hot paths never touch the
// registry lock.

package control

import (
	"sync"
	"time"
)

// Probe exposes point-in-time counters for one container.
type Probe interface {
	Snapshot() map[string]any
}

// Registry aggregates probes by name.
type Registry struct {
	mu      sync.RWMutex
	probes  map[string]Probe
	updated time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		probes: make(map[string]Probe),
	}
}

// Register adds or replaces the probe under name.
func (r *Registry) Register(name string, p Probe) {
	r.mu.Lock()
	r.probes[name] = p
	r.updated = time.Now()
	r.mu.Unlock()
}

// Unregister removes the probe under name.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	delete(r.probes, name)
	r.updated = time.Now()
	r.mu.Unlock()
}

// Snapshot reads every probe and returns keys flattened as "name.key".
func (r *Registry) Snapshot() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]any, len(r.probes))
	for name, p := range r.probes {
		for k, v := range p.Snapshot() {
			out[name+"."+k] = v
		}
	}
	return out
}

// Updated returns the time of the last registration change.
func (r *Registry) Updated() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.updated
}
