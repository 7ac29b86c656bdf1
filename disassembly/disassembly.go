package disassembly

import (
	"fmt"
	"io"

	"github.com/jetsetilly/sparkler/hardware/chipset"
)

// Memory is the source of the copper list words
type Memory interface {
	ReadWord(addr uint32) (uint16, error)
}

type Entry struct {
	Address uint32

	// the two instruction words
	IR1 uint16
	IR2 uint16

	// string representations of the instruction. entry.String() applies
	// white spacing suitable for columnation
	Bytecode string
	Operator string
	Operand  string
}

func (e Entry) String() string {
	return fmt.Sprintf("$%06x  %9s  %-4s %s", e.Address, e.Bytecode, e.Operator, e.Operand)
}

// End returns true if the entry is the conventional end of a copper list
func (e Entry) End() bool {
	return e.IR1 == 0xffff && e.IR2 == 0xfffe
}

// Decode the two words of a copper instruction found at the address
func Decode(addr uint32, ir1, ir2 uint16) Entry {
	e := Entry{
		Address:  addr,
		IR1:      ir1,
		IR2:      ir2,
		Bytecode: fmt.Sprintf("%04x %04x", ir1, ir2),
	}

	if ir1&0x0001 == 0 {
		e.Operator = "MOVE"
		e.Operand = fmt.Sprintf("#$%04x,%s", ir2, chipset.Register(ir1&0x01fe))
		return e
	}

	if e.End() {
		e.Operator = "END"
		return e
	}

	if ir2&0x0001 == 0 {
		e.Operator = "WAIT"
	} else {
		e.Operator = "SKIP"
	}

	vp := ir1 >> 8
	hp := ir1 & 0x00fe
	e.Operand = fmt.Sprintf("$%02x,$%02x", vp, hp)

	// only show the mask when it's not the usual one
	if ir2&0xfffe != 0xfffe {
		e.Operand = fmt.Sprintf("%s mask $%04x", e.Operand, ir2&0xfffe)
	}

	return e
}

// Disassemble the copper list starting at the address. disassembly stops after
// the END instruction or when limit instructions have been decoded
func Disassemble(mem Memory, addr uint32, limit int) ([]Entry, error) {
	var entries []Entry

	for range limit {
		ir1, err := mem.ReadWord(addr)
		if err != nil {
			return entries, fmt.Errorf("disassembly: %w", err)
		}
		ir2, err := mem.ReadWord(addr + 2)
		if err != nil {
			return entries, fmt.Errorf("disassembly: %w", err)
		}

		e := Decode(addr, ir1, ir2)
		entries = append(entries, e)
		if e.End() {
			break
		}
		addr += 4
	}

	return entries, nil
}

// Write entries to the output, one per line
func Write(output io.Writer, entries []Entry) {
	for _, e := range entries {
		io.WriteString(output, e.String())
		io.WriteString(output, "\n")
	}
}
