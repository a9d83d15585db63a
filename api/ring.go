// File: api/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Contract for the lock-free single-producer/single-consumer byte ring.

package api

// ByteRing is the byte-oriented SPSC ring buffer contract.
//
// Exactly one goroutine may act as producer (Write, AvailableToWrite) and
// exactly one as consumer (Read, AvailableToRead). The lock-freedom of any
// implementation rests on this one-writer/one-reader discipline; introducing
// a second producer or a second consumer breaks it.
//
// No operation ever blocks. Callers poll availability themselves, and each
// Write/Read must be preceded by a fresh availability check on the same
// goroutine; availability values must not be cached across calls.
type ByteRing interface {
	// Capacity returns the fixed storage size in bytes.
	Capacity() int

	// AvailableToWrite returns how many bytes the producer may write now.
	// At most Capacity()-1: cursor equality is reserved to mean empty.
	AvailableToWrite() int

	// AvailableToRead returns how many bytes the consumer may read now.
	AvailableToRead() int

	// Write copies all of p into the ring, or nothing at all.
	// len(p) == 0 is a no-op success.
	Write(p []byte) error

	// Read fills all of p from the ring, or nothing at all.
	// len(p) == 0 is a no-op success.
	Read(p []byte) error

	// Close releases the storage. Not synchronized with Write/Read; the
	// caller must guarantee both sides are quiescent.
	Close() error
}
