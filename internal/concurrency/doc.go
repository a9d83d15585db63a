// File: internal/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-free concurrency primitives for hioload-rb. The package holds the
// single-producer/single-consumer byte ring core: two atomic cursors over a
// fixed storage slice, acquire loads on the availability paths and
// compare-and-swap publication on the transfer paths. No locks anywhere;
// correctness rests on the one-writer/one-reader discipline enforced by the
// public wrappers.
package concurrency
