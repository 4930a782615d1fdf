package gba

// Descriptor is the result of decoding an address: the region it falls in,
// the buffer backing that region on this bus (nil if none) and its mirror mask.
type Descriptor struct {
	Region Region
	Base   []byte
	Mask   uint32
}

// Offset returns the mirrored in-region offset of address.
func (d Descriptor) Offset(address uint32) uint32 {
	return address & d.Mask
}

// RegionOf selects a region from the upper bits of address.
func RegionOf(address uint32) Region {
	switch address &^ OffsetMask {
	case BaseBIOS:
		return BIOSRegion
	case BaseWorkRAM:
		return WorkRAM
	case BaseInternalWorkRAM:
		return InternalWorkRAM
	case BaseIO:
		return IORegion
	case BasePalette:
		return Palette
	case BaseVRAM:
		return VRAM
	case BaseOAM:
		return OAM
	case BaseCart0:
		return Cart0
	case BaseCart0Ex:
		return Cart0Ex
	case BaseCart1:
		return Cart1
	case BaseCart1Ex:
		return Cart1Ex
	case BaseCart2:
		return Cart2
	case BaseCart2Ex:
		return Cart2Ex
	case BaseCartSRAM:
		return CartSRAM
	}
	return Unmapped
}

// Decode maps address to the region descriptor every load and store goes
// through. It is total: unknown addresses decode to Unmapped with a nil base
// and a zero mask.
func (m *Memory) Decode(address uint32) Descriptor {
	r := RegionOf(address)
	d := Descriptor{Region: r, Mask: r.Mask()}
	switch {
	case r == BIOSRegion:
		d.Base = m.bios
	case r == WorkRAM:
		d.Base = m.wram.data
	case r == InternalWorkRAM:
		d.Base = m.iwram.data
	case r.IsCartridge():
		d.Base = m.rom
	}
	return d
}
