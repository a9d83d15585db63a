// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// bench_test.go — throughput benchmarks for the public ring surface.
package ringbuf

import "testing"

func benchmarkWriteRead(b *testing.B, chunkSize int, opts ...Option) {
	rb, err := New(4096, opts...)
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	defer rb.Close()

	chunk := make([]byte, chunkSize)
	b.SetBytes(int64(chunkSize))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := rb.Write(chunk); err != nil {
			b.Fatal(err)
		}
		if err := rb.Read(chunk); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWriteRead64(b *testing.B)   { benchmarkWriteRead(b, 64) }
func BenchmarkWriteRead512(b *testing.B)  { benchmarkWriteRead(b, 512) }
func BenchmarkWriteRead4095(b *testing.B) { benchmarkWriteRead(b, 4095) }

func BenchmarkWriteRead64Mapped(b *testing.B) {
	benchmarkWriteRead(b, 64, WithMappedStorage())
}

func BenchmarkAvailability(b *testing.B) {
	rb, err := New(4096)
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	defer rb.Close()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = rb.AvailableToWrite()
		_ = rb.AvailableToRead()
	}
}

func BenchmarkConcurrentTransfer(b *testing.B) {
	rb, err := New(4096)
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	defer rb.Close()

	const chunkSize = 256
	b.SetBytes(chunkSize)

	done := make(chan struct{})
	go func() {
		defer close(done)
		chunk := make([]byte, chunkSize)
		for i := 0; i < b.N; i++ {
			for rb.AvailableToRead() < chunkSize {
			}
			if err := rb.Read(chunk); err != nil {
				b.Error(err)
				return
			}
		}
	}()

	chunk := make([]byte, chunkSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for rb.AvailableToWrite() < chunkSize {
		}
		if err := rb.Write(chunk); err != nil {
			b.Fatal(err)
		}
	}
	<-done
}
