package gba

import (
	"bytes"
	"strings"
	"testing"
)

func runMonitor(t *testing.T, c *Console, commands string) string {
	t.Helper()
	var out bytes.Buffer
	if err := NewMonitor(c, strings.NewReader(commands), &out).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func newTestConsole(t *testing.T) *Console {
	t.Helper()
	c, err := NewConsole(WithAllocator(&recordingAllocator{}))
	if err != nil {
		t.Fatalf("NewConsole: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestMonitorReadWrite(t *testing.T) {
	c := newTestConsole(t)
	got := runMonitor(t, c, strings.Join([]string{
		"w32 0x03000000 0x12345678",
		"r32 0x03000000",
		"w16 0x02000000 -2",
		"r16 0x02000000",
		"w8 0x02000010 0x80",
		"r8 0x02000010",
		"d 0x03000000 4",
		"q",
		"r32 0x03000000",
	}, "\n"))
	want := "0x03000000: 0x12345678 (305419896)\n" +
		"0x02000000: 0xfffe (-2)\n" +
		"0x02000010: 0x80 (-128)\n" +
		"0x03000000: 78 56 34 12\n" +
		"Quitting.\n"
	if got != want {
		t.Errorf("got=\n%s\nwant=\n%s", got, want)
	}
}

func TestMonitorDump(t *testing.T) {
	c := newTestConsole(t)
	for i := uint32(0); i < 20; i++ {
		c.Memory.Store8(BaseWorkRAM+i, int8(i))
	}
	got := runMonitor(t, c, "d 0x02000000 20\n")
	want := "0x02000000: 00 01 02 03 04 05 06 07 08 09 0a 0b 0c 0d 0e 0f\n" +
		"0x02000010: 10 11 12 13\n"
	if got != want {
		t.Errorf("got=\n%s\nwant=\n%s", got, want)
	}
}

func TestMonitorIOAndSelect(t *testing.T) {
	c := newTestConsole(t)
	got := runMonitor(t, c, "w16 0x04000208 1\nio 0x208\nsel 0x03000010\nsel 0x05000000\n")
	want := "IME 0x208: 0x0001\n" +
		"region=IWRAM backed=32768 bytes mask=0x00007fff\n" +
		"region=palette backed=0 bytes mask=0x00000000\n"
	if got != want {
		t.Errorf("got=\n%s\nwant=\n%s", got, want)
	}
}

func TestMonitorErrors(t *testing.T) {
	c := newTestConsole(t)
	got := runMonitor(t, c, "\nfoo\nr32\nr32 nowhere\nw8 0x02000000 zz\n")
	want := "error: unknown command foo\n" +
		"error: usage: r32 ADDR\n" +
		"error: bad address \"nowhere\"\n" +
		"error: bad value \"zz\"\n"
	if got != want {
		t.Errorf("got=\n%s\nwant=\n%s", got, want)
	}
}

func TestMonitorPrint(t *testing.T) {
	c := newTestConsole(t)
	cartridge, err := NewCartridge(makeROM(0x200, "PRINT"))
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	c.Insert(cartridge)
	got := runMonitor(t, c, "p\n")
	for _, line := range []string{
		"WRAM      base=0x02000000 size=0x00040000 mask=0x0003ffff\n",
		"cart0-ex  base=0x09000000 size=0x02000000 mask=0x01ffffff\n",
		"cartridge: \"PRINT\" [AJGE] maker=01 version=1 size=512\n",
	} {
		if !strings.Contains(got, line) {
			t.Errorf("output missing %q:\n%s", line, got)
		}
	}
}
