package chipset

import (
	"fmt"

	"github.com/jetsetilly/sparkler/hardware/spec"
)

// the maximum number of instructions the copper will execute in a single
// field before it is considered to be running away
const maxCopperInstructions = 8192

type copper struct {
	pc uint32

	// the copper is waiting for the beam to reach the position in waitV and
	// waitH
	waiting bool
	waitV   uint8
	waitH   uint8

	// a halted copper does nothing until it is restarted by the vertical
	// blank or a COPJMP1 strobe
	halted bool

	// number of instructions executed since the last restart
	count int

	// the most recently executed instruction. used for status information
	last copperInstruction
}

func (cop *copper) reset() {
	*cop = copper{halted: true}
}

// restart the copper from the address at the start of a field
func (cop *copper) restart(addr uint32) {
	cop.jump(addr)
	cop.count = 0
}

// jump is the effect of a COPJMP1 strobe. the instruction count is not reset so
// that a program that loops on itself is still caught
func (cop *copper) jump(addr uint32) {
	cop.pc = addr
	cop.waiting = false
	cop.halted = false
}

// returns true if the wait condition is met on the scanline. the copper only
// sees the lower eight bits of the vertical beam position
func (cop *copper) satisfied(scanline int) bool {
	v := uint8(scanline & 0xff)
	if v > cop.waitV {
		return true
	}
	return v == cop.waitV && cop.waitH <= spec.LastHorizPos
}

func (cop *copper) String() string {
	if cop.halted {
		return fmt.Sprintf("copper: halted at %#06x", cop.pc)
	}
	if cop.waiting {
		return fmt.Sprintf("copper: %#06x WAIT v=%#02x h=%#02x", cop.pc, cop.waitV, cop.waitH)
	}
	return fmt.Sprintf("copper: %#06x %s", cop.pc, cop.last.String())
}

type copperInstruction struct {
	addr uint32
	w1   uint16
	w2   uint16
}

func (ins copperInstruction) isMove() bool {
	return ins.w1&0x0001 == 0
}

func (ins copperInstruction) isSkip() bool {
	return ins.w1&0x0001 == 0x0001 && ins.w2&0x0001 == 0x0001
}

func (ins copperInstruction) String() string {
	if ins.isMove() {
		return fmt.Sprintf("MOVE %s <- %#04x", Register(ins.w1&0x01fe), ins.w2)
	}
	if ins.w1 == 0xffff && ins.w2 == 0xfffe {
		return "END"
	}
	if ins.isSkip() {
		return fmt.Sprintf("SKIP v=%#02x h=%#02x", ins.w1>>8, ins.w1&0xfe)
	}
	return fmt.Sprintf("WAIT v=%#02x h=%#02x", ins.w1>>8, ins.w1&0xfe)
}

// runCopper executes copper instructions until the copper waits for a later
// beam position or halts
func (chip *Chipset) runCopper(scanline int) {
	cop := &chip.copper

	if !chip.dmaEnabled(DMACopper) {
		return
	}

	for !cop.halted {
		if cop.waiting {
			if !cop.satisfied(scanline) {
				return
			}
			cop.waiting = false
		}

		if cop.count >= maxCopperInstructions {
			chip.ctx.Break(fmt.Errorf("%w: copper running away at %#06x", ContextError, cop.pc))
			cop.halted = true
			return
		}
		cop.count++

		w1, err := chip.mem.ReadWord(cop.pc)
		if err != nil {
			chip.ctx.Break(fmt.Errorf("%w: copper: %w", ContextError, err))
			cop.halted = true
			return
		}
		w2, err := chip.mem.ReadWord(cop.pc + 2)
		if err != nil {
			chip.ctx.Break(fmt.Errorf("%w: copper: %w", ContextError, err))
			cop.halted = true
			return
		}

		cop.last = copperInstruction{addr: cop.pc, w1: w1, w2: w2}
		cop.pc += 4

		switch {
		case cop.last.isMove():
			reg := Register(w1 & 0x01fe)
			if reg < copperDanger {
				chip.ctx.Break(fmt.Errorf("%w: copper write to protected register %s", ContextError, reg))
				cop.halted = true
				return
			}
			err := chip.Write(reg, w2)
			if err != nil {
				chip.ctx.Break(fmt.Errorf("%w: copper: %w", ContextError, err))
			}

		case cop.last.isSkip():
			// skip instructions are not used by any program we generate
			chip.ctx.Break(fmt.Errorf("%w: copper SKIP instruction not supported", ContextError))

		default:
			cop.waitV = uint8(w1 >> 8)
			cop.waitH = uint8(w1 & 0xfe)
			cop.waiting = true
		}
	}
}
