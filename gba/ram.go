package gba

import "encoding/binary"

// RAM is a byte buffer accessed at 8, 16 and 32-bit widths. Addresses are
// mirrored through mask and aligned down to the access width, so a 32-bit
// access at address a touches element a>>2 of the buffer. Accesses past the
// end of data read zero and drop writes, which covers ROM images shorter than
// the region they are mapped into.
type RAM struct {
	data []byte
	mask uint32
}

func newRAM(data []byte, mask uint32) RAM {
	return RAM{data: data, mask: mask}
}

// Len returns the size of the backing buffer.
func (r RAM) Len() int {
	return len(r.data)
}

func (r RAM) offset(address uint32, width uint32) (int, bool) {
	off := int(address & r.mask &^ (width - 1))
	return off, r.data != nil && off+int(width) <= len(r.data)
}

func (r RAM) read8(address uint32) uint8 {
	off, ok := r.offset(address, 1)
	if !ok {
		return 0
	}
	return r.data[off]
}

func (r RAM) read16(address uint32) uint16 {
	off, ok := r.offset(address, 2)
	if !ok {
		return 0
	}
	return binary.LittleEndian.Uint16(r.data[off:])
}

func (r RAM) read32(address uint32) uint32 {
	off, ok := r.offset(address, 4)
	if !ok {
		return 0
	}
	return binary.LittleEndian.Uint32(r.data[off:])
}

func (r RAM) write8(address uint32, x uint8) {
	if off, ok := r.offset(address, 1); ok {
		r.data[off] = x
	}
}

func (r RAM) write16(address uint32, x uint16) {
	if off, ok := r.offset(address, 2); ok {
		binary.LittleEndian.PutUint16(r.data[off:], x)
	}
}

func (r RAM) write32(address uint32, x uint32) {
	if off, ok := r.offset(address, 4); ok {
		binary.LittleEndian.PutUint32(r.data[off:], x)
	}
}
