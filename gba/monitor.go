package gba

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Monitor is a line based console for peeking and poking the bus.
// commands:
//
//	r8, r16, r32 ADDR:
//	  load from ADDR at the given width.
//	w8, w16, w32 ADDR VALUE:
//	  store VALUE to ADDR at the given width.
//	d ADDR [LEN]:
//	  hex dump LEN bytes (default 64) starting at ADDR.
//	sel ADDR:
//	  select the region containing ADDR as the active region.
//	io OFFSET:
//	  print the last value written to an I/O register.
//	p:
//	  print the region table.
//	q:
//	  quit.
type Monitor struct {
	console *Console
	in      *bufio.Scanner
	out     io.Writer
	// Prompt is printed before reading each command.
	Prompt string
}

const defaultDumpLength = 64

// NewMonitor creates a monitor reading commands from in and printing to out.
func NewMonitor(console *Console, in io.Reader, out io.Writer) *Monitor {
	return &Monitor{console: console, in: bufio.NewScanner(in), out: out}
}

// Run executes commands until "q" or the end of input.
func (m *Monitor) Run() error {
	for {
		if m.Prompt != "" {
			fmt.Fprint(m.out, m.Prompt)
		}
		if !m.in.Scan() {
			return m.in.Err()
		}
		quit, err := m.Exec(m.in.Text())
		if err != nil {
			fmt.Fprintf(m.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

func parseAddress(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("bad address %q", s)
	}
	return uint32(v), nil
}

// parseValue accepts anything that fits in 32 bits, signed or unsigned.
func parseValue(s string) (uint32, error) {
	if v, err := strconv.ParseUint(s, 0, 32); err == nil {
		return uint32(v), nil
	}
	v, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("bad value %q", s)
	}
	return uint32(v), nil
}

// Exec runs a single command line. quit is true after "q".
func (m *Monitor) Exec(line string) (quit bool, err error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false, nil
	}
	mem := m.console.Memory
	switch args[0] {
	case "r8", "r16", "r32":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: %s ADDR", args[0])
		}
		address, err := parseAddress(args[1])
		if err != nil {
			return false, err
		}
		switch args[0] {
		case "r8":
			fmt.Fprintf(m.out, "0x%08x: 0x%02x (%d)\n", address, mem.LoadU8(address), mem.Load8(address))
		case "r16":
			fmt.Fprintf(m.out, "0x%08x: 0x%04x (%d)\n", address, mem.LoadU16(address), mem.Load16(address))
		case "r32":
			v := mem.Load32(address)
			fmt.Fprintf(m.out, "0x%08x: 0x%08x (%d)\n", address, uint32(v), v)
		}
	case "w8", "w16", "w32":
		if len(args) != 3 {
			return false, fmt.Errorf("usage: %s ADDR VALUE", args[0])
		}
		address, err := parseAddress(args[1])
		if err != nil {
			return false, err
		}
		value, err := parseValue(args[2])
		if err != nil {
			return false, err
		}
		switch args[0] {
		case "w8":
			mem.Store8(address, int8(value))
		case "w16":
			mem.Store16(address, int16(value))
		case "w32":
			mem.Store32(address, int32(value))
		}
	case "d", "dump":
		return false, m.dumpCommand(args)
	case "sel", "select":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: %s ADDR", args[0])
		}
		address, err := parseAddress(args[1])
		if err != nil {
			return false, err
		}
		a := mem.Select(address)
		fmt.Fprintf(m.out, "region=%s backed=%d bytes mask=0x%08x\n", a.Region, len(a.Base), a.Mask)
	case "io":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: io OFFSET")
		}
		offset, err := parseAddress(args[1])
		if err != nil {
			return false, err
		}
		offset &= (SizeIO - 1) &^ 1
		name := RegisterName(offset)
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(m.out, "%s 0x%03x: 0x%04x\n", name, offset, m.console.IO.Read16(offset))
	case "p", "print":
		m.printRegions()
	case "q", "quit":
		fmt.Fprintln(m.out, "Quitting.")
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %s", args[0])
	}
	return false, nil
}

func (m *Monitor) dumpCommand(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("usage: d ADDR [LEN]")
	}
	address, err := parseAddress(args[1])
	if err != nil {
		return err
	}
	length := uint32(defaultDumpLength)
	if len(args) == 3 {
		if length, err = parseAddress(args[2]); err != nil {
			return err
		}
	}
	mem := m.console.Memory
	var sb strings.Builder
	for i := uint32(0); i < length; i++ {
		if i%16 == 0 {
			if i != 0 {
				sb.WriteByte('\n')
			}
			fmt.Fprintf(&sb, "0x%08x:", address+i)
		}
		fmt.Fprintf(&sb, " %02x", mem.LoadU8(address+i))
	}
	if length > 0 {
		sb.WriteByte('\n')
	}
	_, err = io.WriteString(m.out, sb.String())
	return err
}

func (m *Monitor) printRegions() {
	for _, r := range Regions {
		fmt.Fprintf(m.out, "%-9s base=0x%08x size=0x%08x mask=0x%08x\n", r, r.Base(), r.Size(), r.Mask())
	}
	if c := m.console.Cartridge(); c != nil {
		fmt.Fprintf(m.out, "cartridge: %s\n", c)
	}
}
