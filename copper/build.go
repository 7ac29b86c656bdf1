package copper

import (
	"github.com/jetsetilly/sparkler/display"
	"github.com/jetsetilly/sparkler/hardware/chipset"
	"github.com/jetsetilly/sparkler/hardware/spec"
)

// Bitplanes is the source of bitplane addresses for a program
type Bitplanes interface {
	PlaneAddress(p int) uint32
}

// bitplane control values. four bitplanes with colour enabled
const (
	bplconLores = 0x4200
	bplconHires = 0xc200
)

// Build the program for a single field. any existing instructions are removed.
// the field offset is added to every bitplane address
//
// the returned cursor is the number of instructions in the program. the
// program is not terminated and is not committed to chip memory
func Build(p *Program, bm Bitplanes, cfg display.Config, pal display.Palette, fieldOffset uint32) int {
	p.Reset()

	var beamcon uint16
	if cfg.PAL {
		beamcon = spec.BeamconPAL
	}

	var bplcon0 uint16 = bplconLores
	if cfg.Hires {
		bplcon0 = bplconHires
	}
	if cfg.Interlaced {
		bplcon0 |= chipset.BplconLace
	}

	p.Append(
		Move(chipset.BEAMCON0, beamcon),
		Move(chipset.BPLCON0, bplcon0),
		Move(chipset.BPL1MOD, cfg.Modulo()),
		Move(chipset.BPL2MOD, cfg.Modulo()),
		Move(chipset.DDFSTRT, spec.DisplayFetchStart),
		Move(chipset.DDFSTOP, spec.DisplayFetchStop),
	)

	for i := range chipset.NumColours {
		cursor := p.Append(Move(chipset.COLOR(i), pal.Word(i)))
		switch i {
		case 0:
			p.Patch.Colour0 = cursor
		case 1:
			p.Patch.Colour1 = cursor
		}
	}

	for i := range chipset.NumPlanes {
		addr := bm.PlaneAddress(i) + fieldOffset
		p.Append(
			Move(chipset.BPLPTH(i), uint16(addr>>16)),
			Move(chipset.BPLPTL(i), uint16(addr)),
		)
	}

	p.Append(
		Move(chipset.DIWSTRT, spec.DisplayWindowStart),
		Move(chipset.DIWSTOP, cfg.Spec().DisplayWindowStop),
	)

	return len(p.Instructions)
}
