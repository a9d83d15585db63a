// Package ringbuf
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity lock-free byte ring buffer for exactly one producer and one
// consumer. The public RingBuffer wraps the SPSC core with storage lifetime
// management, functional options, io.Reader/io.Writer adapters, and a
// spill-to-queue writer for producers that must never drop bytes.
//
// Nothing here ever blocks: operations either complete immediately or report
// a precondition violation, and backoff policy belongs to the caller.
package ringbuf
