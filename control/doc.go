// Package control
// Author: momentics <momentics@gmail.com>
//
// Observability surface for hioload-containers. Containers do not log;
// they expose counters through probes registered here, and harnesses
// read point-in-time snapshots.
package control
