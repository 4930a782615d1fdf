package gba

// ActiveRegion caches the descriptor of the region the CPU last selected, so
// that sequential fetches can index the buffer without decoding every address.
// It is derived state only. Select it again whenever the program counter may
// have left the region, e.g. after a branch.
type ActiveRegion struct {
	Region Region
	Base   []byte
	Mask   uint32
	// selected is the address passed to the last Select.
	selected uint32
}

// Contains reports whether address decodes to the cached region.
func (a *ActiveRegion) Contains(address uint32) bool {
	return a.Base != nil && RegionOf(address) == a.Region
}

// Fetch32 reads a word through the cached base and mask.
func (a *ActiveRegion) Fetch32(address uint32) uint32 {
	return newRAM(a.Base, a.Mask).read32(address)
}

// Fetch16 reads a halfword through the cached base and mask.
func (a *ActiveRegion) Fetch16(address uint32) uint16 {
	return newRAM(a.Base, a.Mask).read16(address)
}

// Select decodes address and makes its region the active one.
func (m *Memory) Select(address uint32) *ActiveRegion {
	d := m.Decode(address)
	m.active = ActiveRegion{Region: d.Region, Base: d.Base, Mask: d.Mask, selected: address}
	return &m.active
}

// Active returns the current active region. It is empty until the first Select.
func (m *Memory) Active() *ActiveRegion {
	return &m.active
}

// reselect refreshes the cache after a buffer was attached.
func (m *Memory) reselect() {
	if m.active.Region != Unmapped {
		m.Select(m.active.selected)
	}
}
