// File: internal/storage/region_linux.go
//go:build linux

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Anonymous private mappings for ring storage on Linux.

package storage

import (
	"golang.org/x/sys/unix"
)

// allocMapped maps an anonymous read-write region. mmap zeroes the pages, so
// the empty-on-creation guarantee holds without an extra pass.
func allocMapped(size int) (*Region, error) {
	buf, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, err
	}
	return &Region{
		buf:     buf,
		release: unix.Munmap,
	}, nil
}
