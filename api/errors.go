// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values for the hioload-containers library.

package api

import "errors"

// Common errors used across the library. Precondition violations
// (foreign handles, closed scopes, released buffers) surface as panics
// carrying these values so misuse fails fast instead of corrupting state.
var (
	ErrScopeClosed    = errors.New("containers: scope is closed")
	ErrForeignHandle  = errors.New("containers: node handle does not belong to this list")
	ErrBufferReleased = errors.New("containers: buffer used after release")
)
