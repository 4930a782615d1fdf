package gba

import (
	"fmt"
	"strings"
)

const (
	headerSizeBytes       int  = 0xC0 // The cartridge header occupies the first 192 bytes
	headerFixedValueIndex int  = 0xB2
	headerFixedValue      byte = 0x96
	headerChecksumIndex   int  = 0xBD
)

// Cartridge header fields.
// Reference: https://problemkaputt.de/gbatek.htm#gbacartridgeheader
type Cartridge struct {
	rom       []byte
	title     string // 0xA0-0xAB
	gameCode  string // 0xAC-0xAF
	makerCode string // 0xB0-0xB1
	version   byte   // 0xBC
}

// headerChecksum computes the complement check over 0xA0-0xBC.
func headerChecksum(data []byte) byte {
	var chk byte
	for _, b := range data[0xA0:headerChecksumIndex] {
		chk -= b
	}
	return chk - 0x19
}

// isValid checks whether data starts with a valid cartridge header.
func isValid(data []byte) error {
	if len(data) < headerSizeBytes {
		return fmt.Errorf("%w: %d bytes is shorter than the header", ErrInvalidCartridge, len(data))
	}
	if len(data) > SizeCart {
		return fmt.Errorf("%w: %d bytes does not fit in the cartridge space", ErrInvalidCartridge, len(data))
	}
	if data[headerFixedValueIndex] != headerFixedValue {
		return fmt.Errorf("%w: fixed value is 0x%02x, want 0x%02x", ErrInvalidCartridge, data[headerFixedValueIndex], headerFixedValue)
	}
	if got, want := data[headerChecksumIndex], headerChecksum(data); got != want {
		return fmt.Errorf("%w: header checksum is 0x%02x, want 0x%02x", ErrInvalidCartridge, got, want)
	}
	return nil
}

func headerString(b []byte) string {
	return strings.TrimRight(string(b), "\x00 ")
}

// NewCartridge creates a cartridge from a ROM image. The image is used as is,
// the bus reads straight out of data.
func NewCartridge(data []byte) (*Cartridge, error) {
	if err := isValid(data); err != nil {
		return nil, err
	}
	return &Cartridge{
		rom:       data,
		title:     headerString(data[0xA0:0xAC]),
		gameCode:  headerString(data[0xAC:0xB0]),
		makerCode: headerString(data[0xB0:0xB2]),
		version:   data[0xBC],
	}, nil
}

func (c *Cartridge) ROM() []byte       { return c.rom }
func (c *Cartridge) Title() string     { return c.title }
func (c *Cartridge) GameCode() string  { return c.gameCode }
func (c *Cartridge) MakerCode() string { return c.makerCode }
func (c *Cartridge) Version() byte     { return c.version }

func (c *Cartridge) String() string {
	return fmt.Sprintf("%q [%s] maker=%s version=%d size=%d", c.title, c.gameCode, c.makerCode, c.version, len(c.rom))
}
