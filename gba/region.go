package gba

// Region identifies a named area of the 32-bit address space.
type Region int

const (
	Unmapped Region = iota
	BIOSRegion
	WorkRAM
	InternalWorkRAM
	IORegion
	Palette
	VRAM
	OAM
	Cart0
	Cart0Ex
	Cart1
	Cart1Ex
	Cart2
	Cart2Ex
	CartSRAM
)

// OffsetMask covers the low bits of an address. The bits above it select the region.
const OffsetMask uint32 = 0x00FFFFFF

// Memory map
// 0x00000000 - 0x00003FFF	BIOS
// 0x02000000 - 0x0203FFFF	Work RAM (mirrored up to 0x02FFFFFF)
// 0x03000000 - 0x03007FFF	Internal Work RAM (mirrored up to 0x03FFFFFF)
// 0x04000000 - 0x040003FF	I/O Registers
// 0x05000000 - 0x050003FF	Palette RAM
// 0x06000000 - 0x06017FFF	VRAM
// 0x07000000 - 0x070003FF	OAM
// 0x08000000 - 0x09FFFFFF	Cartridge ROM, wait state 0
// 0x0A000000 - 0x0BFFFFFF	Cartridge ROM, wait state 1
// 0x0C000000 - 0x0DFFFFFF	Cartridge ROM, wait state 2
// 0x0E000000 - 0x0E00FFFF	Cartridge SRAM
// Reference: https://problemkaputt.de/gbatek.htm#gbamemorymap
const (
	BaseBIOS            uint32 = 0x00000000
	BaseWorkRAM         uint32 = 0x02000000
	BaseInternalWorkRAM uint32 = 0x03000000
	BaseIO              uint32 = 0x04000000
	BasePalette         uint32 = 0x05000000
	BaseVRAM            uint32 = 0x06000000
	BaseOAM             uint32 = 0x07000000
	BaseCart0           uint32 = 0x08000000
	BaseCart0Ex         uint32 = 0x09000000
	BaseCart1           uint32 = 0x0A000000
	BaseCart1Ex         uint32 = 0x0B000000
	BaseCart2           uint32 = 0x0C000000
	BaseCart2Ex         uint32 = 0x0D000000
	BaseCartSRAM        uint32 = 0x0E000000
)

// Physical sizes of each area on the real hardware.
const (
	SizeBIOS            = 0x00004000 // 16KB
	SizeWorkRAM         = 0x00040000 // 256KB
	SizeInternalWorkRAM = 0x00008000 // 32KB
	SizeIO              = 0x00000400 // 1KB
	SizePalette         = 0x00000400 // 1KB
	SizeVRAM            = 0x00018000 // 96KB
	SizeOAM             = 0x00000400 // 1KB
	SizeCart            = 0x02000000 // 32MB
	SizeCartSRAM        = 0x00010000 // 64KB
)

type regionInfo struct {
	name string
	base uint32
	// size is the span this bus serves. Areas owned by the graphics and
	// save-memory chips are zero here.
	size uint32
}

var regions = [...]regionInfo{
	Unmapped:        {"unmapped", 0, 0},
	BIOSRegion:      {"BIOS", BaseBIOS, SizeBIOS},
	WorkRAM:         {"WRAM", BaseWorkRAM, SizeWorkRAM},
	InternalWorkRAM: {"IWRAM", BaseInternalWorkRAM, SizeInternalWorkRAM},
	IORegion:        {"IO", BaseIO, SizeIO},
	Palette:         {"palette", BasePalette, 0},
	VRAM:            {"VRAM", BaseVRAM, 0},
	OAM:             {"OAM", BaseOAM, 0},
	Cart0:           {"cart0", BaseCart0, SizeCart},
	Cart0Ex:         {"cart0-ex", BaseCart0Ex, SizeCart},
	Cart1:           {"cart1", BaseCart1, SizeCart},
	Cart1Ex:         {"cart1-ex", BaseCart1Ex, SizeCart},
	Cart2:           {"cart2", BaseCart2, SizeCart},
	Cart2Ex:         {"cart2-ex", BaseCart2Ex, SizeCart},
	CartSRAM:        {"SRAM", BaseCartSRAM, 0},
}

// Regions lists every mapped region in address order.
var Regions = []Region{
	BIOSRegion, WorkRAM, InternalWorkRAM, IORegion, Palette, VRAM, OAM,
	Cart0, Cart0Ex, Cart1, Cart1Ex, Cart2, Cart2Ex, CartSRAM,
}

func (r Region) valid() bool {
	return r >= 0 && int(r) < len(regions)
}

func (r Region) String() string {
	if !r.valid() {
		return "undefined"
	}
	return regions[r].name
}

// Base returns the first address of the region.
func (r Region) Base() uint32 {
	if !r.valid() {
		return 0
	}
	return regions[r].base
}

// Size returns the number of bytes this bus serves for the region, zero for
// areas that are not backed here.
func (r Region) Size() uint32 {
	if !r.valid() {
		return 0
	}
	return regions[r].size
}

// Mask returns the mirroring mask, size-1, or zero for an unbacked region.
func (r Region) Mask() uint32 {
	if s := r.Size(); s != 0 {
		return s - 1
	}
	return 0
}

// IsCartridge reports whether r is one of the six cartridge ROM aliases.
func (r Region) IsCartridge() bool {
	return r >= Cart0 && r <= Cart2Ex
}
