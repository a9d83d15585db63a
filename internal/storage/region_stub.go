// File: internal/storage/region_stub.go
//go:build !linux

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Heap fallback for platforms without the mapped allocator.

package storage

func allocMapped(size int) (*Region, error) {
	return AllocHeap(size)
}
