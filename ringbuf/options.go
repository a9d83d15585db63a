// File: ringbuf/options.go
// Package ringbuf defines functional options for ring construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ringbuf

import "github.com/momentics/hioload-rb/internal/storage"

type config struct {
	alloc func(size int) (*storage.Region, error)
}

func defaultConfig() config {
	return config{alloc: storage.AllocHeap}
}

// Option customizes ring construction.
type Option func(*config)

// WithMappedStorage backs the ring with an anonymous page mapping instead of
// the Go heap where the platform supports it (Linux). Mapped storage stays
// out of the garbage collector's working set and is unmapped on Close.
func WithMappedStorage() Option {
	return func(c *config) {
		c.alloc = storage.AllocMapped
	}
}
