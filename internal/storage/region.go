// File: internal/storage/region.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Storage regions backing ring buffers. A region owns a contiguous zeroed
// byte slice for its entire lifetime and knows how to give it back.

package storage

// Region is an exclusively owned contiguous byte area.
type Region struct {
	buf     []byte
	release func([]byte) error
}

// Bytes returns the backing slice. The ring owns it until Release.
func (r *Region) Bytes() []byte {
	return r.buf
}

// Release returns the memory to its allocator. The region must not be used
// afterwards.
func (r *Region) Release() error {
	if r.buf == nil {
		return nil
	}
	buf := r.buf
	r.buf = nil
	if r.release == nil {
		return nil
	}
	return r.release(buf)
}

// AllocHeap allocates a garbage-collected region.
func AllocHeap(size int) (*Region, error) {
	return &Region{buf: make([]byte, size)}, nil
}

// AllocMapped allocates a page-mapped region where the platform supports it,
// falling back to the heap elsewhere. Mapped regions sit outside the Go heap
// and must be released explicitly.
func AllocMapped(size int) (*Region, error) {
	return allocMapped(size)
}
