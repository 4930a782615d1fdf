package gba

import "errors"

var (
	// ErrOutOfMemory is returned when the host refuses to map a RAM bank.
	ErrOutOfMemory = errors.New("could not map memory")
	// ErrInvalidCartridge is returned for ROM images without a valid header.
	ErrInvalidCartridge = errors.New("not a valid GBA cartridge")
	// ErrInvalidBIOS is returned for BIOS images of the wrong size.
	ErrInvalidBIOS = errors.New("not a valid GBA BIOS")
)
