// File: ringbuf/ringbuf.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Public SPSC ring buffer facade: capacity validation, storage lifetime,
// and the api.ByteRing surface over the lock-free core.

package ringbuf

import (
	"github.com/momentics/hioload-rb/api"
	"github.com/momentics/hioload-rb/internal/concurrency"
	"github.com/momentics/hioload-rb/internal/storage"
)

// Ensure compile-time interface compliance.
var _ api.ByteRing = (*RingBuffer)(nil)

// capacityAlign is the required capacity granularity. Keeping capacities on
// a 256-byte grid keeps wrap arithmetic cheap and matches the block sizes of
// the transports these rings typically feed.
const capacityAlign = 256

// RingBuffer is a fixed-capacity byte ring for one producer and one
// consumer. One goroutine may write, one may read; both may query
// availability. See api.ByteRing for the full contract.
type RingBuffer struct {
	ring   *concurrency.SPSC
	region *storage.Region
}

// New allocates a ring of the given capacity, which must be a positive
// multiple of 256. The storage starts zeroed and the ring starts empty.
func New(capacity int, opts ...Option) (*RingBuffer, error) {
	if capacity <= 0 || capacity%capacityAlign != 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "ring capacity must be a positive multiple of 256").
			WithContext("capacity", capacity).
			WithCause(api.ErrInvalidCapacity)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	region, err := cfg.alloc(capacity)
	if err != nil {
		return nil, api.NewError(api.ErrCodeResourceExhausted, "ring storage allocation failed").
			WithContext("capacity", capacity).
			WithCause(err)
	}
	return &RingBuffer{
		ring:   concurrency.NewSPSC(region.Bytes()),
		region: region,
	}, nil
}

// Capacity returns the fixed storage size. Usable capacity is one byte less.
func (rb *RingBuffer) Capacity() int {
	if rb == nil || rb.ring == nil {
		return 0
	}
	return rb.ring.Size()
}

// AvailableToWrite returns how many bytes the producer may write right now,
// at most Capacity()-1. A nil or closed ring yields 0.
func (rb *RingBuffer) AvailableToWrite() int {
	if rb == nil || rb.ring == nil {
		return 0
	}
	return rb.ring.Free()
}

// AvailableToRead returns how many bytes the consumer may read right now.
// A nil or closed ring yields 0.
//
// The call doubles as the acquire fence for a subsequent Read: a consumer
// must re-query before every Read rather than reuse a cached value.
func (rb *RingBuffer) AvailableToRead() int {
	if rb == nil || rb.ring == nil {
		return 0
	}
	return rb.ring.Pending()
}

// Write copies all of p into the ring, or nothing at all. Producer side
// only. len(p) == 0 succeeds without touching the cursors.
func (rb *RingBuffer) Write(p []byte) error {
	if rb == nil || rb.ring == nil {
		return api.ErrClosed
	}
	return rb.ring.Push(p)
}

// Read fills all of p from the ring, or nothing at all. Consumer side only.
// len(p) == 0 succeeds without touching the cursors.
func (rb *RingBuffer) Read(p []byte) error {
	if rb == nil || rb.ring == nil {
		return api.ErrClosed
	}
	return rb.ring.Pop(p)
}

// Stats returns a point-in-time accounting snapshot.
func (rb *RingBuffer) Stats() api.Stats {
	if rb == nil || rb.ring == nil {
		return api.Stats{}
	}
	return api.Stats{
		Capacity: rb.ring.Size(),
		Usable:   rb.ring.Size() - 1,
		Pending:  rb.ring.Pending(),
		Free:     rb.ring.Free(),
		BytesIn:  rb.ring.BytesIn(),
		BytesOut: rb.ring.BytesOut(),
	}
}

// Reset empties the ring and zeroes its storage. Both sides must be
// quiescent; Reset is not synchronized with Write/Read.
func (rb *RingBuffer) Reset() {
	if rb == nil || rb.ring == nil {
		return
	}
	rb.ring.Reset()
}

// Close releases the storage. Not synchronized with Write/Read: the caller
// must guarantee no operation is in flight on either side. Subsequent
// operations return api.ErrClosed; availability queries return 0.
func (rb *RingBuffer) Close() error {
	if rb == nil || rb.ring == nil {
		return nil
	}
	rb.ring = nil
	region := rb.region
	rb.region = nil
	return region.Release()
}
