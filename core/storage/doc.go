// Package storage
// Author: momentics <momentics@gmail.com>
//
// The three element-layout strategies behind api.Strategy/api.Buffer:
// Packed (native slice layout), Marshalled (fixed-width byte encoding,
// arena-backed for large buffers), Indirected (owned pointer handles for
// unconstrained element types).
// See packed.go, marshalled.go, indirect.go for implementation details.
package storage
