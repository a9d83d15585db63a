// File: ringbuf/io.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Best-effort io.Writer/io.Reader adapters over the all-or-nothing ring
// core. Each adapter binds one side of the ring to exactly one goroutine,
// giving callers a construction-time handle that encodes the
// one-writer/one-reader discipline.

package ringbuf

import (
	"io"

	"github.com/momentics/hioload-rb/api"
)

var (
	_ io.Writer = (*StreamWriter)(nil)
	_ io.Reader = (*StreamReader)(nil)
)

// StreamWriter adapts the producer side of a ring to io.Writer.
//
// Write transfers as many bytes as currently fit and reports a short write
// with api.ErrNoSpace when the ring cannot take all of p. It never blocks.
type StreamWriter struct {
	rb *RingBuffer
}

// NewStreamWriter binds the producer side of rb. Only the goroutine using
// the returned writer may write to rb.
func NewStreamWriter(rb *RingBuffer) *StreamWriter {
	return &StreamWriter{rb: rb}
}

// Write copies min(len(p), available) bytes into the ring.
func (w *StreamWriter) Write(p []byte) (int, error) {
	if w.rb == nil || w.rb.ring == nil {
		return 0, api.ErrClosed
	}
	n := len(p)
	if free := w.rb.AvailableToWrite(); free < n {
		n = free
	}
	if err := w.rb.Write(p[:n]); err != nil {
		return 0, err
	}
	if n < len(p) {
		return n, api.ErrNoSpace
	}
	return n, nil
}

// StreamReader adapts the consumer side of a ring to io.Reader.
//
// Read transfers as many bytes as are currently pending. An empty ring
// yields api.ErrNoData rather than blocking; there is no EOF concept.
type StreamReader struct {
	rb *RingBuffer
}

// NewStreamReader binds the consumer side of rb. Only the goroutine using
// the returned reader may read from rb.
func NewStreamReader(rb *RingBuffer) *StreamReader {
	return &StreamReader{rb: rb}
}

// Read fills p with min(len(p), pending) bytes from the ring.
func (r *StreamReader) Read(p []byte) (int, error) {
	if r.rb == nil || r.rb.ring == nil {
		return 0, api.ErrClosed
	}
	n := len(p)
	if pending := r.rb.AvailableToRead(); pending < n {
		n = pending
	}
	if n == 0 && len(p) > 0 {
		return 0, api.ErrNoData
	}
	if err := r.rb.Read(p[:n]); err != nil {
		return 0, err
	}
	return n, nil
}
