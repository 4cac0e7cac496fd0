// File: facade/containers.go
// Unified facade layer for hioload-containers.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The Containers facade aggregates a scope, a stats registry, and
// convenience constructors behind one entry point. Containers created
// through a facade share its scope and are released together when the
// facade closes; with stats enabled, each named container is registered
// as a probe in the facade's registry.

package facade

import (
	"github.com/momentics/hioload-containers/api"
	"github.com/momentics/hioload-containers/cell"
	"github.com/momentics/hioload-containers/control"
	"github.com/momentics/hioload-containers/core/storage"
	"github.com/momentics/hioload-containers/deque"
	"github.com/momentics/hioload-containers/list"
	"github.com/momentics/hioload-containers/scope"
)

// Config holds parameters immutable per facade.
type Config struct {
	Label       string // Scope label, informational only
	EnableStats bool   // Whether named deques register stats probes
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Label:       "containers",
		EnableStats: true,
	}
}

// Containers is the facade instance.
type Containers struct {
	cfg      *Config
	scope    *scope.Scope
	registry *control.Registry
}

// New builds a facade from cfg; nil means DefaultConfig.
func New(cfg *Config) *Containers {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Containers{
		cfg:      cfg,
		scope:    scope.New(cfg.Label),
		registry: control.NewRegistry(),
	}
}

// Scope returns the facade's scope.
func (c *Containers) Scope() *scope.Scope {
	return c.scope
}

// Registry returns the facade's stats registry.
func (c *Containers) Registry() *control.Registry {
	return c.registry
}

// Close closes the facade's scope, releasing every container created
// through it. Idempotent.
func (c *Containers) Close() {
	c.scope.Close()
}

// NewDeque creates a ring deque in the facade's scope. With stats
// enabled and a non-empty name, the deque is registered as a probe.
func NewDeque[T any](c *Containers, name string, strat api.Strategy[T]) *deque.Deque[T] {
	d := deque.NewIn(c.scope, strat)
	if c.cfg.EnableStats && name != "" {
		c.registry.Register(name, d)
	}
	return d
}

// NewPackedDeque creates a ring deque over the packed layout.
func NewPackedDeque[T any](c *Containers, name string) *deque.Deque[T] {
	return NewDeque[T](c, name, storage.NewPacked[T]())
}

// NewList creates a linked list in the facade's scope.
func NewList[T any](c *Containers) *list.List[T] {
	return list.NewIn[T](c.scope)
}

// NewCell creates a mutable cell in the facade's scope over the packed
// layout.
func NewCell[T any](c *Containers, initial T) *cell.Cell[T] {
	return cell.NewIn(c.scope, storage.NewPacked[T](), initial)
}
