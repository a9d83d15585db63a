// File: pool/ringpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Capacity-keyed pool of ring buffers. Rings come back reset and zeroed.

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-rb/api"
	"github.com/momentics/hioload-rb/ringbuf"
)

// idleRings bounds how many rings of one capacity the pool retains.
const idleRings = 64

// RingPool hands out empty ring buffers by capacity.
type RingPool struct {
	mu    sync.Mutex
	pools map[int]chan *ringbuf.RingBuffer
	opts  []ringbuf.Option

	alloc atomic.Int64
	reuse atomic.Int64
	inUse atomic.Int64
}

// NewRingPool creates an empty pool. opts apply to every ring the pool
// allocates itself.
func NewRingPool(opts ...ringbuf.Option) *RingPool {
	return &RingPool{
		pools: make(map[int]chan *ringbuf.RingBuffer),
		opts:  opts,
	}
}

func (p *RingPool) channel(capacity int) chan *ringbuf.RingBuffer {
	p.mu.Lock()
	ch, ok := p.pools[capacity]
	if !ok {
		ch = make(chan *ringbuf.RingBuffer, idleRings)
		p.pools[capacity] = ch
	}
	p.mu.Unlock()
	return ch
}

// Get returns an empty ring of the given capacity, reusing a pooled one
// when available. Capacity validation is the same as ringbuf.New.
func (p *RingPool) Get(capacity int) (*ringbuf.RingBuffer, error) {
	select {
	case rb := <-p.channel(capacity):
		p.reuse.Add(1)
		p.inUse.Add(1)
		return rb, nil
	default:
	}
	rb, err := ringbuf.New(capacity, p.opts...)
	if err != nil {
		return nil, err
	}
	p.alloc.Add(1)
	p.inUse.Add(1)
	return rb, nil
}

// Put returns a ring to the pool. Both sides must be quiescent: Put resets
// the ring, which is not synchronized with Write/Read. Rings beyond the
// retention bound are closed instead.
func (p *RingPool) Put(rb *ringbuf.RingBuffer) {
	if rb == nil || rb.Capacity() == 0 {
		return
	}
	p.inUse.Add(-1)
	rb.Reset()
	select {
	case p.channel(rb.Capacity()) <- rb:
	default:
		rb.Close()
	}
}

// Stats returns allocation and reuse accounting.
func (p *RingPool) Stats() api.PoolStats {
	return api.PoolStats{
		TotalAlloc: p.alloc.Load(),
		TotalReuse: p.reuse.Load(),
		InUse:      p.inUse.Load(),
	}
}

// Close releases every idle ring. Rings still checked out stay valid and
// are closed by their owners.
func (p *RingPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, ch := range p.pools {
		for drained := false; !drained; {
			select {
			case rb := <-ch:
				rb.Close()
			default:
				drained = true
			}
		}
	}
	p.pools = make(map[int]chan *ringbuf.RingBuffer)
}
