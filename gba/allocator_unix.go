//go:build unix

package gba

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// MmapAllocator maps anonymous private pages from the host.
type MmapAllocator struct{}

// Acquire maps size bytes of anonymous memory. The kernel hands back zeroed pages.
func (MmapAllocator) Acquire(size int) ([]byte, error) {
	buf, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("mmap %d bytes: %w", size, err)
	}
	return buf, nil
}

// Release unmaps a buffer returned by Acquire.
func (MmapAllocator) Release(buf []byte) error {
	if buf == nil {
		return nil
	}
	if err := unix.Munmap(buf); err != nil {
		return fmt.Errorf("munmap %d bytes: %w", len(buf), err)
	}
	return nil
}

func defaultAllocator() Allocator {
	return MmapAllocator{}
}
