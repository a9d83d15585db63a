// Copyright 2025 momentics@gmail.com
// License: Apache 2.0

// stress_test.go — concurrent producer/consumer stress over the public API.
package ringbuf

import (
	"sync"
	"testing"
)

// TestRingBuffer_ConcurrentStress streams a byte sequence far larger than
// the ring through one producer and one consumer goroutine and verifies
// every byte arrives intact and in order.
func TestRingBuffer_ConcurrentStress(t *testing.T) {
	const total = 1 << 20 // bytes, vs. a 512-byte ring

	rb, err := New(512)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer rb.Close()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		chunk := make([]byte, 97)
		sent := 0
		for sent < total {
			n := len(chunk)
			if left := total - sent; left < n {
				n = left
			}
			if free := rb.AvailableToWrite(); free < n {
				n = free
			}
			if n == 0 {
				continue
			}
			for i := 0; i < n; i++ {
				chunk[i] = byte(sent + i)
			}
			if err := rb.Write(chunk[:n]); err != nil {
				t.Errorf("write at %d: %v", sent, err)
				return
			}
			sent += n
		}
	}()

	go func() {
		defer wg.Done()
		chunk := make([]byte, 131)
		received := 0
		for received < total {
			n := rb.AvailableToRead()
			if n == 0 {
				continue
			}
			if n > len(chunk) {
				n = len(chunk)
			}
			if left := total - received; n > left {
				n = left
			}
			if err := rb.Read(chunk[:n]); err != nil {
				t.Errorf("read at %d: %v", received, err)
				return
			}
			for i := 0; i < n; i++ {
				if chunk[i] != byte(received+i) {
					t.Errorf("corrupted byte at offset %d: got %d, want %d",
						received+i, chunk[i], byte(received+i))
					return
				}
			}
			received += n
		}
	}()

	wg.Wait()

	if pending := rb.AvailableToRead(); pending != 0 {
		t.Errorf("ring not drained: %d bytes left", pending)
	}
}
