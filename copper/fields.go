package copper

import (
	"fmt"

	"github.com/jetsetilly/sparkler/display"
)

// Installer makes a committed program the one the copper runs
type Installer interface {
	Install(addr uint32) error

	// true if the next field is a long frame
	LongFrame() bool
}

// Fields is the pair of programs used to drive the display. the second
// program is only used for interlaced displays, where each program displays
// alternate lines of the bitmap and hands over to the other at the end of the
// field
type Fields struct {
	A *Program
	B *Program

	inst       Installer
	interlaced bool
}

// NewFields reserves the chip memory for both programs
func NewFields(mem Memory, inst Installer) (*Fields, error) {
	a, err := NewProgram("field A", mem)
	if err != nil {
		return nil, err
	}
	b, err := NewProgram("field B", mem)
	if err != nil {
		_ = a.Free()
		return nil, err
	}
	return &Fields{A: a, B: b, inst: inst}, nil
}

// Free the chip memory used by both programs. the programs must not be
// installed when they are freed
func (f *Fields) Free() error {
	errA := f.A.Free()
	errB := f.B.Free()
	if errA != nil {
		return errA
	}
	return errB
}

// Live returns the programs currently in use
func (f *Fields) Live() []*Program {
	if f.interlaced {
		return []*Program{f.A, f.B}
	}
	return []*Program{f.A}
}

// RebuildAll builds, commits and installs the programs for the display
func (f *Fields) RebuildAll(bm Bitplanes, cfg display.Config, pal display.Palette) error {
	if !cfg.Interlaced {
		Build(f.A, bm, cfg, pal, 0)
		f.A.Terminate()

		err := f.A.Commit()
		if err != nil {
			return err
		}

		f.interlaced = false
		return f.install(f.A)
	}

	// the second field starts one line into the bitmap
	Build(f.A, bm, cfg, pal, 0)
	Build(f.B, bm, cfg, pal, uint32(cfg.Modulo()))
	f.A.ChainTo(f.B)
	f.B.ChainTo(f.A)
	f.A.Terminate()
	f.B.Terminate()

	err := f.A.Commit()
	if err != nil {
		return err
	}
	err = f.B.Commit()
	if err != nil {
		return err
	}

	f.interlaced = true

	// the first program displays the long frame. if the next field is a
	// short frame then the second program starts the chain
	start := f.A
	if !f.inst.LongFrame() {
		start = f.B
	}
	err = f.install(start)
	if err != nil {
		return err
	}

	return f.PatchColours(pal)
}

func (f *Fields) install(p *Program) error {
	err := f.inst.Install(p.Address())
	if err != nil {
		return fmt.Errorf("copper: %w", err)
	}
	return nil
}

// PatchColours changes the two user colours in the live programs without
// rebuilding them
func (f *Fields) PatchColours(pal display.Palette) error {
	for _, p := range f.Live() {
		for n := range pal.Colours {
			err := p.SetColour(n, pal.Word(n))
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (f *Fields) String() string {
	if f.interlaced {
		return fmt.Sprintf("interlaced: %s (%d) %s (%d)", f.A.Label(), len(f.A.Instructions), f.B.Label(), len(f.B.Instructions))
	}
	return fmt.Sprintf("%s (%d)", f.A.Label(), len(f.A.Instructions))
}
