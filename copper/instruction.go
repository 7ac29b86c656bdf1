package copper

import (
	"fmt"

	"github.com/jetsetilly/sparkler/hardware/chipset"
)

// Op is the type of copper instruction
type Op int

const (
	OpMove Op = iota
	OpWait
	OpEnd
)

// Instruction is a single copper instruction. only the fields relevant to the
// Op are used
type Instruction struct {
	Op       Op
	Register chipset.Register
	Value    uint16
	VPos     uint8
	HPos     uint8
}

// Move writes the value to the register
func Move(reg chipset.Register, value uint16) Instruction {
	return Instruction{Op: OpMove, Register: reg, Value: value}
}

// Wait for the beam to reach the position
func Wait(vpos, hpos uint8) Instruction {
	return Instruction{Op: OpWait, VPos: vpos, HPos: hpos}
}

// End is a wait for a position the beam never reaches
func End() Instruction {
	return Instruction{Op: OpEnd}
}

// Words returns the two instruction words as the copper sees them
func (ins Instruction) Words() (uint16, uint16) {
	switch ins.Op {
	case OpMove:
		return uint16(ins.Register) & 0x01fe, ins.Value
	case OpWait:
		return uint16(ins.VPos)<<8 | uint16(ins.HPos&0xfe) | 0x0001, 0xfffe
	}
	return 0xffff, 0xfffe
}

func (ins Instruction) String() string {
	switch ins.Op {
	case OpMove:
		return fmt.Sprintf("MOVE %s %#04x", ins.Register, ins.Value)
	case OpWait:
		return fmt.Sprintf("WAIT %#02x,%#02x", ins.VPos, ins.HPos)
	}
	return "END"
}
