//go:build unix

package gba

import "testing"

func TestMmapAllocator(t *testing.T) {
	var a MmapAllocator
	buf, err := a.Acquire(SizeInternalWorkRAM)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if len(buf) != SizeInternalWorkRAM {
		t.Errorf("len: got=%d, want=%d", len(buf), SizeInternalWorkRAM)
	}
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("buf[%d]: got=0x%02x, want=0", i, b)
		}
	}
	buf[len(buf)-1] = 0xFF
	if err := a.Release(buf); err != nil {
		t.Errorf("Release: %v", err)
	}
	if err := a.Release(nil); err != nil {
		t.Errorf("Release(nil): %v", err)
	}
}
