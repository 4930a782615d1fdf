package gba

// Allocator hands out the backing buffers for Work RAM and Internal Work RAM.
// Buffers returned by Acquire are zero-filled and exactly size bytes long.
type Allocator interface {
	Acquire(size int) ([]byte, error)
	Release(buf []byte) error
}
