package gba

import (
	"errors"

	"github.com/golang/glog"
)

// StatusKind classifies the last failure of a Console.
type StatusKind int

const (
	StatusOK StatusKind = iota
	StatusOutOfMemory
	StatusFailed
)

func (k StatusKind) String() string {
	switch k {
	case StatusOK:
		return "ok"
	case StatusOutOfMemory:
		return "out of memory"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Status is what the console knows about its last failure.
type Status struct {
	Kind    StatusKind
	Message string
}

// Console wires the bus to its collaborators.
type Console struct {
	Memory    *Memory
	IO        *IORegs
	Status    Status
	cartridge *Cartridge
	bios      *BIOS
}

// NewConsole creates a console with an empty cartridge slot. If the bus
// cannot be created the error is returned and also recorded in Status.
func NewConsole(opts ...Option) (*Console, error) {
	c := &Console{IO: NewIORegs()}
	mem, err := NewMemory(c.IO, opts...)
	if err != nil {
		c.fail(err)
		return c, err
	}
	c.Memory = mem
	return c, nil
}

func (c *Console) fail(err error) {
	kind := StatusFailed
	if errors.Is(err, ErrOutOfMemory) {
		kind = StatusOutOfMemory
	}
	c.Status = Status{Kind: kind, Message: err.Error()}
	glog.Errorf("Console failed: %v\n", err)
}

// Insert attaches a cartridge, replacing any previous one.
func (c *Console) Insert(cartridge *Cartridge) {
	c.cartridge = cartridge
	c.Memory.AttachROM(cartridge.ROM())
	glog.Infof("Inserted cartridge %s\n", cartridge)
}

// LoadBIOS attaches a BIOS image.
func (c *Console) LoadBIOS(bios *BIOS) {
	c.bios = bios
	c.Memory.AttachBIOS(bios.Data())
	glog.Infoln("Loaded BIOS")
}

// Cartridge returns the inserted cartridge, or nil.
func (c *Console) Cartridge() *Cartridge {
	return c.cartridge
}

// Close releases the bus.
func (c *Console) Close() error {
	if c.Memory == nil {
		return nil
	}
	err := c.Memory.Close()
	c.Memory = nil
	return err
}
