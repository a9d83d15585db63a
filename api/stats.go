// File: api/stats.go
// Author: momentics <momentics@gmail.com>
//
// Accounting snapshots for rings and pools.

package api

// Stats is a point-in-time snapshot of a single ring buffer.
//
// Pending and Free are taken from the live cursors and may already be stale
// by the time the caller inspects them; BytesIn/BytesOut are cumulative
// totals maintained by the producer and consumer sides respectively.
type Stats struct {
	Capacity int
	Usable   int // Capacity-1, the full-slot-sacrifice ceiling
	Pending  int
	Free     int
	BytesIn  uint64
	BytesOut uint64
}

// PoolStats aggregates ring allocation/reuse accounting.
type PoolStats struct {
	TotalAlloc int64
	TotalReuse int64
	InUse      int64
}
