package gba

import (
	"errors"
	"fmt"

	"github.com/golang/glog"
)

// Memory is the bus between the CPU and everything it can address. It owns
// Work RAM and Internal Work RAM. BIOS and ROM buffers are attached by the
// loader and stay owned by it.
//
// Loads from regions that are not backed here return zero and stores to them
// are dropped. Bad addresses never produce an error.
type Memory struct {
	alloc Allocator
	io    IORegisters

	wram  RAM
	iwram RAM
	bios  []byte
	rom   []byte

	active ActiveRegion
}

// Option configures a Memory.
type Option func(*Memory)

// WithAllocator replaces the host allocator used for the RAM banks.
func WithAllocator(a Allocator) Option {
	return func(m *Memory) {
		m.alloc = a
	}
}

// NewMemory creates a bus and maps both RAM banks. Halfword stores to the I/O
// region are forwarded to io, which may be nil.
//
// If either bank cannot be mapped, the one that was mapped is released and
// the returned error wraps ErrOutOfMemory.
func NewMemory(io IORegisters, opts ...Option) (*Memory, error) {
	m := &Memory{io: io}
	for _, opt := range opts {
		opt(m)
	}
	if m.alloc == nil {
		m.alloc = defaultAllocator()
	}
	wram, werr := m.alloc.Acquire(SizeWorkRAM)
	iwram, ierr := m.alloc.Acquire(SizeInternalWorkRAM)
	m.wram = newRAM(wram, SizeWorkRAM-1)
	m.iwram = newRAM(iwram, SizeInternalWorkRAM-1)
	if werr != nil || ierr != nil || wram == nil || iwram == nil {
		if err := m.Close(); err != nil {
			glog.Warningf("Failed to release RAM after mapping failure: %v\n", err)
		}
		cause := errors.Join(werr, ierr)
		if cause == nil {
			cause = errors.New("allocator returned no buffer")
		}
		return nil, fmt.Errorf("%w: %v", ErrOutOfMemory, cause)
	}
	glog.Infof("Mapped WRAM (%d bytes) and IWRAM (%d bytes)\n", SizeWorkRAM, SizeInternalWorkRAM)
	return m, nil
}

// Close releases both RAM banks. It is safe to call more than once.
func (m *Memory) Close() error {
	var errs []error
	if m.wram.data != nil {
		errs = append(errs, m.alloc.Release(m.wram.data))
	}
	if m.iwram.data != nil {
		errs = append(errs, m.alloc.Release(m.iwram.data))
	}
	m.wram = RAM{}
	m.iwram = RAM{}
	m.active = ActiveRegion{}
	return errors.Join(errs...)
}

// AttachBIOS points the BIOS region at buf. The bus does not copy or free it.
func (m *Memory) AttachBIOS(buf []byte) {
	m.bios = buf
	m.reselect()
}

// AttachROM points every cartridge alias at buf. The bus does not copy or free it.
func (m *Memory) AttachROM(buf []byte) {
	m.rom = buf
	m.reselect()
}

// Load32 reads a word.
func (m *Memory) Load32(address uint32) int32 {
	if ram, ok := m.readable(address); ok {
		return int32(ram.read32(address))
	}
	return 0
}

// Load16 reads a signed halfword.
func (m *Memory) Load16(address uint32) int16 {
	return int16(m.LoadU16(address))
}

// LoadU16 reads an unsigned halfword.
func (m *Memory) LoadU16(address uint32) uint16 {
	if ram, ok := m.readable(address); ok {
		return ram.read16(address)
	}
	return 0
}

// Load8 reads a signed byte.
func (m *Memory) Load8(address uint32) int8 {
	return int8(m.LoadU8(address))
}

// LoadU8 reads an unsigned byte.
func (m *Memory) LoadU8(address uint32) uint8 {
	if ram, ok := m.readable(address); ok {
		return ram.read8(address)
	}
	return 0
}

// Store32 writes a word.
func (m *Memory) Store32(address uint32, value int32) {
	if ram, ok := m.writable(address); ok {
		ram.write32(address, uint32(value))
	}
}

// Store16 writes a halfword. This is the only width at which the I/O
// registers can be written.
func (m *Memory) Store16(address uint32, value int16) {
	if d := m.Decode(address); d.Region == IORegion {
		if m.io != nil {
			m.io.Write16(d.Offset(address), uint16(value))
		}
		return
	}
	if ram, ok := m.writable(address); ok {
		ram.write16(address, uint16(value))
	}
}

// Store8 writes a byte.
func (m *Memory) Store8(address uint32, value int8) {
	if ram, ok := m.writable(address); ok {
		ram.write8(address, uint8(value))
	}
}

// readable returns the buffer a load from address is served from.
// BIOS reads are protected and always read zero.
func (m *Memory) readable(address uint32) (RAM, bool) {
	d := m.Decode(address)
	switch {
	case d.Region == WorkRAM, d.Region == InternalWorkRAM, d.Region.IsCartridge():
		return newRAM(d.Base, d.Mask), true
	}
	if glog.V(4) {
		glog.Infof("Unmapped bus read: address=0x%08x, region=%s\n", address, d.Region)
	}
	return RAM{}, false
}

// writable returns the buffer a store to address goes to. Only the RAM banks
// take writes.
func (m *Memory) writable(address uint32) (RAM, bool) {
	d := m.Decode(address)
	switch d.Region {
	case WorkRAM, InternalWorkRAM:
		return newRAM(d.Base, d.Mask), true
	}
	if glog.V(4) {
		glog.Infof("Unmapped bus write: address=0x%08x, region=%s\n", address, d.Region)
	}
	return RAM{}, false
}
