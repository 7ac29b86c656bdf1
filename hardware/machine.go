package hardware

import (
	"fmt"

	"github.com/jetsetilly/sparkler/gui"
	"github.com/jetsetilly/sparkler/hardware/chipset"
	"github.com/jetsetilly/sparkler/hardware/memory"
	"github.com/jetsetilly/sparkler/hardware/spec"
)

// Context is the machine's view of the environment it's running in
type Context interface {
	chipset.Context
	Spec() spec.Spec
}

// the colour shown by the system display
const systemColour = 0x05a

// Machine is the emulated computer. it has chip memory and the custom chipset
type Machine struct {
	ctx     Context
	RAM     *memory.ChipRAM
	Chipset *chipset.Chipset

	// nil if the machine is not being limited
	limit *limiter

	// address of the copper list installed when the machine was booted. this
	// is the list that would be running if nothing else took over the display
	system uint32
}

// Snapshot is the state of the display hardware that must be handed back when
// a program gives up control of the display
type Snapshot struct {
	Cop1lc uint32
	DMACON uint16
	INTENA uint16
}

func (s Snapshot) String() string {
	return fmt.Sprintf("cop1lc=%#06x dmacon=%#04x intena=%#04x", s.Cop1lc, s.DMACON, s.INTENA)
}

// Create a new machine. if limited is true the machine runs at the speed of
// the television specification
func Create(ctx Context, g *gui.GUI, limited bool) (*Machine, error) {
	m := &Machine{
		ctx: ctx,
		RAM: memory.Create("chip", memory.DefaultSize),
	}

	if limited {
		m.limit = newLimiter(ctx.Spec().VBlankFrequency)
		m.Chipset = chipset.Create(ctx, g, m.RAM, ctx.Spec(), m.limit)
	} else {
		m.Chipset = chipset.Create(ctx, g, m.RAM, ctx.Spec(), nil)
	}

	err := m.Reset(false)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// Reset the machine and install the system display
func (m *Machine) Reset(random bool) error {
	m.RAM.Reset(random)
	m.Chipset.Reset()

	var err error

	if m.system == 0 {
		m.system, err = m.RAM.AllocMem(12, true)
		if err != nil {
			return fmt.Errorf("machine: %w", err)
		}
	}

	// the system display is a plain screen with no bitplanes
	program := []uint16{
		uint16(chipset.BPLCON0), chipset.BplconColour,
		uint16(chipset.COLOR00), systemColour,
		0xffff, 0xfffe,
	}
	for i, w := range program {
		err = m.RAM.WriteWord(m.system+uint32(i*2), w)
		if err != nil {
			return fmt.Errorf("machine: %w", err)
		}
	}

	err = m.Chipset.Write(chipset.DMACON, chipset.SetClr|chipset.DMAMaster)
	if err != nil {
		return fmt.Errorf("machine: %w", err)
	}

	err = m.Install(m.system)
	if err != nil {
		return err
	}

	return m.Chipset.Write(chipset.INTENA, chipset.SetClr|chipset.IntInten|chipset.IntVertb)
}

// Native returns the television specification the machine was created with
func (m *Machine) Native() spec.Spec {
	return m.ctx.Spec()
}

// PAL returns true if the machine's native vertical blank frequency is that of
// a PAL television
func (m *Machine) PAL() bool {
	return m.Native().VBlankFrequency == spec.PAL.VBlankFrequency
}

// Stop the machine's frame limiter
func (m *Machine) Stop() {
	if m.limit != nil {
		m.limit.stop()
	}
}

// WaitTOF runs the machine for one field
func (m *Machine) WaitTOF() {
	m.Chipset.WaitTOF()
}

func (m *Machine) AllocMem(size int, clear bool) (uint32, error) {
	return m.RAM.AllocMem(size, clear)
}

func (m *Machine) FreeMem(addr uint32, size int) error {
	return m.RAM.FreeMem(addr, size)
}

func (m *Machine) WriteWord(addr uint32, data uint16) error {
	return m.RAM.WriteWord(addr, data)
}

func (m *Machine) Slice(addr uint32, size int) ([]uint8, error) {
	return m.RAM.Slice(addr, size)
}

// Install the copper list at the address. DMA is disabled while the copper
// location register is changed
func (m *Machine) Install(addr uint32) error {
	writes := []struct {
		reg  chipset.Register
		data uint16
	}{
		{chipset.DMACON, chipset.DMAAll},
		{chipset.COP1LCH, uint16(addr >> 16)},
		{chipset.COP1LCL, uint16(addr)},
		{chipset.COPJMP1, 0},
		{chipset.DMACON, chipset.SetClr | chipset.DMARaster | chipset.DMACopper | chipset.DMABlitter},
	}
	for _, w := range writes {
		err := m.Chipset.Write(w.reg, w.data)
		if err != nil {
			return fmt.Errorf("machine: install: %w", err)
		}
	}
	return nil
}

// LongFrame returns true if the next field is a long frame. non-interlaced
// displays are always long frames
func (m *Machine) LongFrame() bool {
	v, _ := m.Chipset.Read(chipset.VPOSR)
	return v&0x8000 == 0x8000
}

// Capture the state of the display hardware
func (m *Machine) Capture() Snapshot {
	var s Snapshot
	s.Cop1lc = m.Chipset.Cop1lc()
	s.DMACON, _ = m.Chipset.Read(chipset.DMACONR)
	s.INTENA, _ = m.Chipset.Read(chipset.INTENAR)
	return s
}

// Restore the state of the display hardware from a previous Capture()
func (m *Machine) Restore(s Snapshot) error {
	writes := []struct {
		reg  chipset.Register
		data uint16
	}{
		{chipset.COP1LCH, uint16(s.Cop1lc >> 16)},
		{chipset.COP1LCL, uint16(s.Cop1lc)},
		{chipset.COPJMP1, 0},
		{chipset.DMACON, chipset.DMAAll},
		{chipset.DMACON, chipset.SetClr | s.DMACON},
		{chipset.INTENA, chipset.IntAll},
		{chipset.INTENA, chipset.SetClr | s.INTENA},
	}
	for _, w := range writes {
		err := m.Chipset.Write(w.reg, w.data)
		if err != nil {
			return fmt.Errorf("machine: restore: %w", err)
		}
	}
	return nil
}
