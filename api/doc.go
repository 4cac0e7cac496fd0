// Package api
// Author: momentics <momentics@gmail.com>
//
// Capability contracts for the hioload-containers library.
// Defines the double-ended container capability set, the storage-strategy
// contracts that decouple element layout from container logic, and the
// common error values shared across packages.
package api
