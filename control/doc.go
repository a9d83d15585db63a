// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime telemetry for ring pipelines: a concurrent-safe metrics registry
// and probe hooks for exporting ring/pool state snapshots. The library core
// stays metrics-free; producers and consumers publish here themselves.
package control
