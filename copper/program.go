package copper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jetsetilly/sparkler/hardware/chipset"
)

// ErrProgramTooLong is returned when a program will not fit in its buffer
var ErrProgramTooLong = errors.New("copper program too long")

// BufferSize is the number of bytes of chip memory reserved for each program
const BufferSize = 2000

// the size of an instruction in bytes
const instructionSize = 4

// the scanline on which a field hands over to the next field. it is after the
// end of the display window in both NTSC and PAL
const chainScanline = 0xf4

// Memory is the chip memory that programs are stored in
type Memory interface {
	AllocMem(size int, clear bool) (uint32, error)
	FreeMem(addr uint32, size int) error
	WriteWord(addr uint32, data uint16) error
}

// PatchOffsets are the positions in the program of the instructions that
// write the two user colours
type PatchOffsets struct {
	Colour0 int
	Colour1 int
}

// Program is a copper program and the chip memory it is committed to
type Program struct {
	label string
	mem   Memory
	addr  uint32

	Instructions []Instruction
	Patch        PatchOffsets
}

// NewProgram reserves chip memory for a program
func NewProgram(label string, mem Memory) (*Program, error) {
	addr, err := mem.AllocMem(BufferSize, true)
	if err != nil {
		return nil, fmt.Errorf("copper: %s: %w", label, err)
	}
	return &Program{
		label:        label,
		mem:          mem,
		addr:         addr,
		Instructions: make([]Instruction, 0, BufferSize/instructionSize),
	}, nil
}

// Free the chip memory used by the program
func (p *Program) Free() error {
	if p.mem == nil {
		return nil
	}
	err := p.mem.FreeMem(p.addr, BufferSize)
	p.mem = nil
	if err != nil {
		return fmt.Errorf("copper: %s: %w", p.label, err)
	}
	return nil
}

func (p *Program) Label() string {
	return p.label
}

// Address of the program in chip memory
func (p *Program) Address() uint32 {
	return p.addr
}

// Reset removes all instructions from the program. the committed program in
// chip memory is not changed until the next Commit()
func (p *Program) Reset() {
	p.Instructions = p.Instructions[:0]
	p.Patch = PatchOffsets{}
}

// Append instructions to the program and return the position of the first
// appended instruction
func (p *Program) Append(ins ...Instruction) int {
	cursor := len(p.Instructions)
	p.Instructions = append(p.Instructions, ins...)
	return cursor
}

// ChainTo appends the instructions that make the other program the one that
// runs on the next field
func (p *Program) ChainTo(other *Program) {
	addr := other.Address()
	p.Append(
		Wait(chainScanline, 0),
		Move(chipset.COP1LCH, uint16(addr>>16)),
		Move(chipset.COP1LCL, uint16(addr)),
	)
}

// Terminate the program
func (p *Program) Terminate() {
	p.Append(End())
}

// Commit writes the program to chip memory
func (p *Program) Commit() error {
	if p.mem == nil {
		return fmt.Errorf("copper: %s: program has been freed", p.label)
	}
	if len(p.Instructions)*instructionSize > BufferSize {
		return fmt.Errorf("%w: %s has %d instructions", ErrProgramTooLong, p.label, len(p.Instructions))
	}
	for i := range p.Instructions {
		err := p.write(i)
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *Program) write(i int) error {
	w1, w2 := p.Instructions[i].Words()
	addr := p.addr + uint32(i*instructionSize)
	err := p.mem.WriteWord(addr, w1)
	if err != nil {
		return fmt.Errorf("copper: %s: %w", p.label, err)
	}
	err = p.mem.WriteWord(addr+2, w2)
	if err != nil {
		return fmt.Errorf("copper: %s: %w", p.label, err)
	}
	return nil
}

// SetColour changes the value written by one of the two patchable colour
// instructions. the change is made to the program and to chip memory
func (p *Program) SetColour(n int, value uint16) error {
	var i int
	switch n {
	case 0:
		i = p.Patch.Colour0
	case 1:
		i = p.Patch.Colour1
	default:
		return fmt.Errorf("copper: %s: colour %d can not be patched", p.label, n)
	}

	if i >= len(p.Instructions) || p.Instructions[i].Register != chipset.COLOR(n) {
		return fmt.Errorf("copper: %s: no instruction for colour %d", p.label, n)
	}

	p.Instructions[i].Value = value
	return p.write(i)
}

func (p *Program) String() string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("%s: %#06x", p.label, p.addr))
	for i, ins := range p.Instructions {
		s.WriteString(fmt.Sprintf("\n%03d %s", i, ins.String()))
	}
	return s.String()
}
