// Package spec describes the two television standards the chipset can be
// timed for.
package spec

// the horizontal beam position at which a scanline ends. the copper compares
// the horizontal part of a WAIT instruction against this
const LastHorizPos = 0xe2

// the display window and data fetch positions are the same for both
// standards horizontally. only the vertical stop differs
const (
	DisplayWindowStart = 0x2c81
	DisplayFetchStart  = 0x38
	DisplayFetchStop   = 0xd0
)

// the value of the PAL bit in the BEAMCON0 register. when the bit is clear the
// chipset produces NTSC timing
const BeamconPAL = 0x0020

type Spec struct {
	ID string

	// rate at which vertical blank occurs
	VBlankFrequency float64

	// number of scanlines in a long frame. short frames (in interlaced mode)
	// have one fewer scanline
	Scanlines int

	// the range of scanlines presented to the user. this is larger than the
	// display window so that the border is visible
	VisibleTop    int
	VisibleBottom int

	// the value of the DIWSTOP register which closes the display window at the
	// bottom of the standard display
	DisplayWindowStop uint16

	// the height of the standard non-interlaced display
	Height int
}

var NTSC Spec
var PAL Spec

func init() {
	NTSC = Spec{
		ID:                "NTSC",
		VBlankFrequency:   59.94,
		Scanlines:         263,
		VisibleTop:        0x2c - 16,
		VisibleBottom:     0x2c + 200 + 16,
		DisplayWindowStop: 0xf4c1,
		Height:            200,
	}

	PAL = Spec{
		ID:                "PAL",
		VBlankFrequency:   50.0,
		Scanlines:         313,
		VisibleTop:        0x2c - 16,
		VisibleBottom:     0x2c + 256 + 16,
		DisplayWindowStop: 0x2cc1,
		Height:            256,
	}
}

// FromBeamcon returns the specification selected by the value of the BEAMCON0
// register
func FromBeamcon(beamcon uint16) Spec {
	if beamcon&BeamconPAL == BeamconPAL {
		return PAL
	}
	return NTSC
}

// FromID returns the specification matching the ID string. the boolean is
// false if the ID is not recognised
func FromID(id string) (Spec, bool) {
	switch id {
	case "NTSC":
		return NTSC, true
	case "PAL":
		return PAL, true
	}
	return Spec{}, false
}
