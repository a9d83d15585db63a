// File: internal/concurrency/spsc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Single-producer/single-consumer byte ring over a caller-supplied storage
// slice. Cursors stay within [0, size); cursor equality means empty, so the
// usable capacity is size-1 (full-slot sacrifice). Each cursor is mutated by
// exactly one side and read by both; they are the only shared mutable state.

package concurrency

import (
	"sync/atomic"

	"github.com/momentics/hioload-rb/api"
)

// SPSC is the lock-free byte ring core.
//
// The producer side owns wr and bytesIn; the consumer side owns rd and
// bytesOut. Padding keeps the two cursors on separate cache lines.
type SPSC struct {
	wr      atomic.Int64
	bytesIn atomic.Uint64
	_       [48]byte // padding for hot/cold separation

	rd       atomic.Int64
	bytesOut atomic.Uint64
	_        [48]byte // padding

	buf  []byte
	size int64
}

// NewSPSC wraps buf as a ring. len(buf) is the capacity; the caller has
// already validated it. Both cursors start at zero (empty).
func NewSPSC(buf []byte) *SPSC {
	return &SPSC{buf: buf, size: int64(len(buf))}
}

// Size returns the fixed storage size in bytes.
func (r *SPSC) Size() int {
	return int(r.size)
}

// Free returns the bytes the producer may push right now.
//
// The largest possible result is size-1 because rd == wr is reserved to mean
// empty. Both cursors are loaded atomically so that the producer observes
// the consumer's latest publication; the load pairs with the CAS in Pop and
// acts as the acquire side of that hand-off.
func (r *SPSC) Free() int {
	rd := r.rd.Load()
	wr := r.wr.Load()
	return int((r.size + rd - wr - 1) % r.size)
}

// Pending returns the bytes the consumer may pop right now.
//
// The atomic load of wr pairs with the publishing CAS in Push: once the
// consumer observes the advanced write cursor, every byte copied before that
// publication is visible too.
func (r *SPSC) Pending() int {
	rd := r.rd.Load()
	wr := r.wr.Load()
	return int((r.size + wr - rd) % r.size)
}

// Push copies all of src into the ring, or nothing at all.
//
// Producer side only. Returns api.ErrNoSpace when len(src) exceeds Free();
// no partial transfer is ever performed.
func (r *SPSC) Push(src []byte) error {
	n := int64(len(src))
	if n == 0 {
		return nil
	}
	if n > int64(r.Free()) {
		return api.ErrNoSpace
	}
	// Own cursor: only this side mutates wr, so a plain value read of the
	// atomic is race-free here.
	wr := r.wr.Load()
	if wr+n <= r.size {
		copy(r.buf[wr:], src)
	} else {
		d := r.size - wr
		copy(r.buf[wr:], src[:d])
		copy(r.buf, src[d:])
	}
	// Publish via CAS rather than a plain store: the swap carries the
	// release barrier that orders the copies above before the new cursor
	// value. With a single producer the swap cannot lose.
	r.wr.CompareAndSwap(wr, (wr+n)%r.size)
	r.bytesIn.Add(uint64(n))
	return nil
}

// Pop fills all of dst from the ring, or nothing at all.
//
// Consumer side only. Returns api.ErrNoData when len(dst) exceeds Pending().
// The Pending check above doubles as the acquire fence that makes the
// producer's byte copies visible before we touch the storage.
func (r *SPSC) Pop(dst []byte) error {
	n := int64(len(dst))
	if n == 0 {
		return nil
	}
	if n > int64(r.Pending()) {
		return api.ErrNoData
	}
	rd := r.rd.Load()
	if rd+n <= r.size {
		copy(dst, r.buf[rd:])
	} else {
		d := r.size - rd
		copy(dst[:d], r.buf[rd:])
		copy(dst[d:], r.buf)
	}
	// Release the freed region to the producer.
	r.rd.CompareAndSwap(rd, (rd+n)%r.size)
	r.bytesOut.Add(uint64(n))
	return nil
}

// BytesIn returns the cumulative bytes pushed since creation or Reset.
func (r *SPSC) BytesIn() uint64 {
	return r.bytesIn.Load()
}

// BytesOut returns the cumulative bytes popped since creation or Reset.
func (r *SPSC) BytesOut() uint64 {
	return r.bytesOut.Load()
}

// Reset reinitializes the ring to empty. Both sides must be quiescent; this
// is not synchronized with Push/Pop.
func (r *SPSC) Reset() {
	r.wr.Store(0)
	r.rd.Store(0)
	r.bytesIn.Store(0)
	r.bytesOut.Store(0)
	for i := range r.buf {
		r.buf[i] = 0
	}
}
