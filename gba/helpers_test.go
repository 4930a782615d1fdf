package gba

import (
	"errors"
	"testing"
)

// recordingAllocator serves heap buffers, can refuse the n-th Acquire and
// records what was handed out and given back.
type recordingAllocator struct {
	failOn   int // 1-based Acquire call to fail, 0 never fails
	nilOn    int // 1-based Acquire call to return a nil buffer without error
	calls    int
	acquired [][]byte
	released [][]byte
}

func (a *recordingAllocator) Acquire(size int) ([]byte, error) {
	a.calls++
	if a.calls == a.failOn {
		return nil, errors.New("cannot allocate memory")
	}
	if a.calls == a.nilOn {
		return nil, nil
	}
	buf := make([]byte, size)
	a.acquired = append(a.acquired, buf)
	return buf, nil
}

func (a *recordingAllocator) Release(buf []byte) error {
	a.released = append(a.released, buf)
	return nil
}

type ioWrite struct {
	offset uint32
	value  uint16
}

// ioRecorder records every halfword store forwarded by the bus.
type ioRecorder struct {
	writes []ioWrite
}

func (r *ioRecorder) Write16(offset uint32, value uint16) {
	r.writes = append(r.writes, ioWrite{offset, value})
}

func newTestMemory(t *testing.T, io IORegisters) *Memory {
	t.Helper()
	m, err := NewMemory(io)
	if err != nil {
		t.Fatalf("NewMemory: %v", err)
	}
	t.Cleanup(func() {
		if err := m.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return m
}

// makeROM builds a ROM image of size bytes with a valid header.
func makeROM(size int, title string) []byte {
	rom := make([]byte, size)
	// b 0x080000C0
	copy(rom[0x00:0x04], []byte{0x2E, 0x00, 0x00, 0xEA})
	copy(rom[0xA0:0xAC], title)
	copy(rom[0xAC:0xB0], "AJGE")
	copy(rom[0xB0:0xB2], "01")
	rom[0xB2] = headerFixedValue
	rom[0xBC] = 1
	rom[headerChecksumIndex] = headerChecksum(rom)
	return rom
}
