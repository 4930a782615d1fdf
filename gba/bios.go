package gba

import "fmt"

// BIOS is the boot firmware image.
type BIOS struct {
	data []byte
}

// NewBIOS wraps a BIOS image, which must be exactly 16KB.
func NewBIOS(data []byte) (*BIOS, error) {
	if len(data) != SizeBIOS {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidBIOS, len(data), SizeBIOS)
	}
	return &BIOS{data}, nil
}

func (b *BIOS) Data() []byte {
	return b.data
}
