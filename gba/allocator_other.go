//go:build !unix

package gba

// HeapAllocator serves buffers from the Go heap on hosts without mmap.
type HeapAllocator struct{}

func (HeapAllocator) Acquire(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func (HeapAllocator) Release(buf []byte) error {
	return nil
}

func defaultAllocator() Allocator {
	return HeapAllocator{}
}
