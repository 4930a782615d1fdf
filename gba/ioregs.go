package gba

import "github.com/golang/glog"

// IORegisters receives halfword stores to the I/O register region. offset is
// relative to the start of the region and already mirrored.
type IORegisters interface {
	Write16(offset uint32, value uint16)
}

// Named I/O registers, by offset from BaseIO.
// Reference: https://problemkaputt.de/gbatek.htm#gbaiomap
const (
	DISPCNT  uint32 = 0x000
	DISPSTAT uint32 = 0x004
	VCOUNT   uint32 = 0x006
	BG0CNT   uint32 = 0x008
	BG1CNT   uint32 = 0x00A
	BG2CNT   uint32 = 0x00C
	BG3CNT   uint32 = 0x00E
	SOUNDCNT uint32 = 0x080
	TM0CNT   uint32 = 0x100
	KEYINPUT uint32 = 0x130
	IE       uint32 = 0x200
	IF       uint32 = 0x202
	WAITCNT  uint32 = 0x204
	IME      uint32 = 0x208
	POSTFLG  uint32 = 0x300
)

var ioRegisterNames = map[uint32]string{
	DISPCNT:  "DISPCNT",
	DISPSTAT: "DISPSTAT",
	VCOUNT:   "VCOUNT",
	BG0CNT:   "BG0CNT",
	BG1CNT:   "BG1CNT",
	BG2CNT:   "BG2CNT",
	BG3CNT:   "BG3CNT",
	SOUNDCNT: "SOUNDCNT",
	TM0CNT:   "TM0CNT",
	KEYINPUT: "KEYINPUT",
	IE:       "IE",
	IF:       "IF",
	WAITCNT:  "WAITCNT",
	IME:      "IME",
	POSTFLG:  "POSTFLG",
}

// IORegs is a plain register file standing in for the peripheral chips. It
// latches every halfword written to it and calls any hook registered for the
// offset.
type IORegs struct {
	regs  [SizeIO / 2]uint16
	hooks map[uint32]func(value uint16)
}

// NewIORegs creates an empty register file.
func NewIORegs() *IORegs {
	return &IORegs{hooks: make(map[uint32]func(uint16))}
}

// Hook registers f to be called after every write to offset.
func (r *IORegs) Hook(offset uint32, f func(value uint16)) {
	r.hooks[offset&(SizeIO-1)&^1] = f
}

// Write16 implements IORegisters.
func (r *IORegs) Write16(offset uint32, value uint16) {
	offset &= (SizeIO - 1) &^ 1
	r.regs[offset>>1] = value
	if _, ok := ioRegisterNames[offset]; !ok {
		glog.V(2).Infof("Write to unnamed I/O register: offset=0x%03x, data=0x%04x\n", offset, value)
	}
	if f, ok := r.hooks[offset]; ok {
		f(value)
	}
}

// Read16 returns the last value written to offset.
func (r *IORegs) Read16(offset uint32) uint16 {
	return r.regs[(offset&(SizeIO-1))>>1]
}

// RegisterName returns the name of the register at offset, or "" if it has none.
func RegisterName(offset uint32) string {
	return ioRegisterNames[offset]
}
