package gba

import (
	"errors"
	"testing"
)

func TestNewCartridge(t *testing.T) {
	rom := makeROM(0x1000, "JGBA TEST")
	c, err := NewCartridge(rom)
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	if got, want := c.Title(), "JGBA TEST"; got != want {
		t.Errorf("Title: got=%q, want=%q", got, want)
	}
	if got, want := c.GameCode(), "AJGE"; got != want {
		t.Errorf("GameCode: got=%q, want=%q", got, want)
	}
	if got, want := c.MakerCode(), "01"; got != want {
		t.Errorf("MakerCode: got=%q, want=%q", got, want)
	}
	if got, want := c.Version(), byte(1); got != want {
		t.Errorf("Version: got=%d, want=%d", got, want)
	}
	if len(c.ROM()) != len(rom) {
		t.Errorf("ROM: got=%d bytes, want=%d", len(c.ROM()), len(rom))
	}
}

func TestNewCartridgeInvalid(t *testing.T) {
	badFixed := makeROM(0x1000, "BAD")
	badFixed[headerFixedValueIndex] = 0
	badChecksum := makeROM(0x1000, "BAD")
	badChecksum[headerChecksumIndex]++
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short", make([]byte, headerSizeBytes-1)},
		{"fixed value", badFixed},
		{"checksum", badChecksum},
		{"too large", make([]byte, SizeCart+1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCartridge(tt.data); !errors.Is(err, ErrInvalidCartridge) {
				t.Errorf("NewCartridge: got=%v, want ErrInvalidCartridge", err)
			}
		})
	}
}

func TestNewBIOS(t *testing.T) {
	if _, err := NewBIOS(make([]byte, SizeBIOS)); err != nil {
		t.Errorf("NewBIOS: %v", err)
	}
	if _, err := NewBIOS(make([]byte, SizeBIOS-1)); !errors.Is(err, ErrInvalidBIOS) {
		t.Errorf("NewBIOS short: got=%v, want ErrInvalidBIOS", err)
	}
}
