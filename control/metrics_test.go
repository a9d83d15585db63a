// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// metrics_test.go — metrics registry with ring stat probes.
package control

import (
	"testing"

	"github.com/momentics/hioload-rb/api"
	"github.com/momentics/hioload-rb/ringbuf"
)

func TestMetricsRegistry_SetAndSnapshot(t *testing.T) {
	mr := NewMetricsRegistry()
	mr.Set("records", 42)
	snap := mr.GetSnapshot()
	if snap["records"] != 42 {
		t.Errorf("snapshot records = %v, want 42", snap["records"])
	}
	if mr.UpdatedAt().IsZero() {
		t.Errorf("UpdatedAt not tracked")
	}
}

func TestMetricsRegistry_RingProbe(t *testing.T) {
	rb, err := ringbuf.New(256)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer rb.Close()

	mr := NewMetricsRegistry()
	mr.RegisterProbe("ring", func() any { return rb.Stats() })

	if err := rb.Write(make([]byte, 10)); err != nil {
		t.Fatalf("write: %v", err)
	}
	snap := mr.GetSnapshot()
	st, ok := snap["ring"].(api.Stats)
	if !ok {
		t.Fatalf("ring probe missing from snapshot")
	}
	if st.Pending != 10 {
		t.Errorf("probe pending = %d, want 10", st.Pending)
	}
}
