// File: ringbuf/spill.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Producer-side writer that never rejects bytes: whatever does not fit in
// the ring is staged in an unbounded FIFO and drained on later writes. Used
// by producers that cannot drop data and cannot block the source either.

package ringbuf

import (
	"io"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-rb/api"
)

var _ io.Writer = (*SpillWriter)(nil)

// SpillWriter accepts every write, moving bytes ring-ward as space appears.
//
// Like StreamWriter it belongs to the producer goroutine only. Staged bytes
// live on the heap until the consumer frees ring space, so a consumer that
// stalls forever turns the spill queue into unbounded growth; Buffered lets
// callers watch for that.
type SpillWriter struct {
	rb       *RingBuffer
	head     []byte       // partially drained front chunk
	overflow *queue.Queue // staged []byte chunks, FIFO
	staged   int
}

// NewSpillWriter binds the producer side of rb.
func NewSpillWriter(rb *RingBuffer) *SpillWriter {
	return &SpillWriter{
		rb:       rb,
		overflow: queue.New(),
	}
}

// Write accepts all of p. Bytes go to the ring in order: previously staged
// chunks first, then p; whatever still does not fit is copied and staged.
func (w *SpillWriter) Write(p []byte) (int, error) {
	if w.rb == nil || w.rb.ring == nil {
		return 0, api.ErrClosed
	}
	w.drain()
	if w.staged == 0 {
		n := len(p)
		if free := w.rb.AvailableToWrite(); free < n {
			n = free
		}
		if err := w.rb.Write(p[:n]); err != nil {
			return 0, err
		}
		if n < len(p) {
			w.stage(p[n:])
		}
		return len(p), nil
	}
	// Ring is behind; keep ordering by staging everything.
	w.stage(p)
	return len(p), nil
}

// Flush moves as many staged bytes as currently fit into the ring and
// returns the number of bytes still staged.
func (w *SpillWriter) Flush() int {
	if w.rb != nil && w.rb.ring != nil {
		w.drain()
	}
	return w.staged
}

// Buffered returns the number of staged bytes not yet in the ring.
func (w *SpillWriter) Buffered() int {
	return w.staged
}

func (w *SpillWriter) stage(p []byte) {
	chunk := make([]byte, len(p))
	copy(chunk, p)
	w.overflow.Add(chunk)
	w.staged += len(chunk)
}

func (w *SpillWriter) drain() {
	for {
		if len(w.head) == 0 {
			if w.overflow.Length() == 0 {
				return
			}
			w.head = w.overflow.Remove().([]byte)
		}
		n := len(w.head)
		if free := w.rb.AvailableToWrite(); free < n {
			n = free
		}
		if n == 0 {
			return
		}
		if err := w.rb.Write(w.head[:n]); err != nil {
			return
		}
		w.head = w.head[n:]
		w.staged -= n
	}
}
