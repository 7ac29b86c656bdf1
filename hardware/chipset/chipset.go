package chipset

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/jetsetilly/sparkler/gui"
	"github.com/jetsetilly/sparkler/hardware/spec"
)

// Context allows the chipset to signal a break
type Context interface {
	Break(error)
}

type limiter interface {
	Wait()
	SetRate(hz float64)
}

// the wrapping error for any errors passed to Context.Break()
var ContextError = errors.New("chipset")

// Memory is the chipset's view of chip memory
type Memory interface {
	ReadWord(addr uint32) (uint16, error)
}

// the width of the image sent to the GUI. this is the width of a hires line
const frameWidth = 640

type frame struct {
	top    int
	bottom int
	main   *image.RGBA
}

// Chipset is the custom chip area. it contains the copper and the bitplane
// display hardware
type Chipset struct {
	ctx Context
	g   *gui.GUI

	// frame limiter. can be nil in which case the chipset runs as quickly as
	// possible
	limit limiter

	// interface to chip memory
	mem Memory

	// the specification the chipset was created with
	native spec.Spec

	// the current television specificaion. changed by writing to BEAMCON0
	Spec spec.Spec

	beamcon uint16
	bplcon0 bplcon0
	bplmod  [2]int16
	ddfstrt uint16
	ddfstop uint16
	diwstrt uint16
	diwstop uint16
	colour  [NumColours]uint16
	bplpt   [NumPlanes]uint32
	cop1lc  uint32
	dmacon  uint16
	intena  uint16
	copper  copper

	// the current coordinates of the beam
	Coords coords

	// the image that is sent to the user interface
	currentFrame frame
}

func Create(ctx Context, g *gui.GUI, mem Memory, native spec.Spec, limit limiter) *Chipset {
	chip := &Chipset{
		ctx:    ctx,
		g:      g,
		mem:    mem,
		native: native,
		limit:  limit,
	}
	chip.Reset()
	return chip
}

func (chip *Chipset) Reset() {
	chip.Coords.Reset()

	chip.beamcon = 0
	if chip.native.ID == spec.PAL.ID {
		chip.beamcon = spec.BeamconPAL
	}
	chip.setSpec(chip.native)

	chip.bplcon0.reset()
	chip.bplmod = [2]int16{}
	chip.ddfstrt = 0
	chip.ddfstop = 0
	chip.diwstrt = 0
	chip.diwstop = 0
	chip.colour = [NumColours]uint16{}
	chip.bplpt = [NumPlanes]uint32{}
	chip.cop1lc = 0
	chip.dmacon = 0
	chip.intena = 0
	chip.copper.reset()
}

func (chip *Chipset) Label() string {
	return "CHIPSET"
}

func (chip *Chipset) Status() string {
	return fmt.Sprintf("%s: %s %s", chip.Label(), chip.Coords.ShortString(), chip.copper.String())
}

func (chip *Chipset) String() string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("%s: %s beamcon=%#04x dmacon=%#04x intena=%#04x cop1lc=%#06x\n",
		chip.Label(), chip.Spec.ID, chip.beamcon, chip.dmacon, chip.intena, chip.cop1lc))
	s.WriteString(fmt.Sprintf("bplcon0=%#04x %s", chip.bplcon0.value(), chip.bplcon0.String()))
	s.WriteString(fmt.Sprintf("\nddf=%#02x-%#02x diw=%#04x-%#04x mod=%d/%d",
		chip.ddfstrt, chip.ddfstop, chip.diwstrt, chip.diwstop, chip.bplmod[0], chip.bplmod[1]))
	for p := range chip.bplpt {
		s.WriteString(fmt.Sprintf("\nbpl%dpt=%#06x", p+1, chip.bplpt[p]))
	}
	s.WriteString("\ncolours:")
	for c := range chip.colour {
		s.WriteString(fmt.Sprintf(" %#03x", chip.colour[c]))
	}
	return s.String()
}

// Cop1lc returns the current value of the copper's first location register
func (chip *Chipset) Cop1lc() uint32 {
	return chip.cop1lc
}

// Colour returns the value of the colour register
func (chip *Chipset) Colour(n int) uint16 {
	return chip.colour[n]
}

// Frame returns the image being drawn to. the image is replaced at the end of
// every field
func (chip *Chipset) Frame() *image.RGBA {
	return chip.currentFrame.main
}

func (chip *Chipset) setSpec(s spec.Spec) {
	if chip.Spec.ID == s.ID && chip.currentFrame.main != nil {
		return
	}
	chip.Spec = s
	if chip.limit != nil {
		chip.limit.SetRate(s.VBlankFrequency)
	}
	chip.newFrame()
}

// the number of scanlines in the current field. a short frame is one scanline
// shorter
func (chip *Chipset) scanlines() int {
	if chip.bplcon0.lace && !chip.Coords.LOF {
		return chip.Spec.Scanlines - 1
	}
	return chip.Spec.Scanlines
}

func (chip *Chipset) dmaEnabled(bit uint16) bool {
	return chip.dmacon&DMAMaster == DMAMaster && chip.dmacon&bit == bit
}

// setClr applies a write to a register that uses the SET/CLR convention
func setClr(reg uint16, data uint16) uint16 {
	if data&SetClr == SetClr {
		return reg | (data &^ SetClr)
	}
	return reg &^ data
}

func (chip *Chipset) Read(reg Register) (uint16, error) {
	switch reg {
	case DMACONR:
		return chip.dmacon, nil
	case INTENAR:
		return chip.intena, nil
	case VPOSR:
		var v uint16
		if chip.Coords.LOF {
			v = 0x8000
		}
		return v | uint16(chip.Coords.Scanline>>8)&0x01, nil
	case VHPOSR:
		return uint16(chip.Coords.Scanline&0xff) << 8, nil
	case COP1LCH, COP1LCL, COPJMP1, DIWSTRT, DIWSTOP, DDFSTRT, DDFSTOP,
		DMACON, INTENA, BPLCON0, BPL1MOD, BPL2MOD, BEAMCON0:
		// write only
		return 0, nil
	}

	if reg >= BPL1PTH && reg <= BPL4PTL {
		// write only
		return 0, nil
	}
	if reg >= COLOR00 && reg <= COLOR15 {
		// write only
		return 0, nil
	}

	return 0, fmt.Errorf("not a chipset register (%s)", reg)
}

func (chip *Chipset) Write(reg Register, data uint16) error {
	switch reg {
	case DMACONR, INTENAR, VPOSR, VHPOSR:
		// read only
	case COP1LCH:
		chip.cop1lc = (chip.cop1lc & 0x0000ffff) | uint32(data)<<16
	case COP1LCL:
		chip.cop1lc = (chip.cop1lc & 0xffff0000) | uint32(data&0xfffe)
	case COPJMP1:
		chip.copper.jump(chip.cop1lc)
	case DIWSTRT:
		chip.diwstrt = data
	case DIWSTOP:
		chip.diwstop = data
	case DDFSTRT:
		chip.ddfstrt = data & 0x00fc
	case DDFSTOP:
		chip.ddfstop = data & 0x00fc
	case DMACON:
		chip.dmacon = setClr(chip.dmacon, data) & (DMAAll | DMAMaster)
	case INTENA:
		chip.intena = setClr(chip.intena, data) & IntAll
	case BPLCON0:
		chip.bplcon0.write(data)
	case BPL1MOD:
		chip.bplmod[0] = int16(data & 0xfffe)
	case BPL2MOD:
		chip.bplmod[1] = int16(data & 0xfffe)
	case BEAMCON0:
		chip.beamcon = data
		chip.setSpec(spec.FromBeamcon(data))
	default:
		switch {
		case reg >= BPL1PTH && reg <= BPL4PTL:
			p := int(reg-BPL1PTH) / 4
			if (reg-BPL1PTH)&0x02 == 0 {
				chip.bplpt[p] = (chip.bplpt[p] & 0x0000ffff) | uint32(data)<<16
			} else {
				chip.bplpt[p] = (chip.bplpt[p] & 0xffff0000) | uint32(data&0xfffe)
			}
		case reg >= COLOR00 && reg <= COLOR15:
			chip.colour[(reg-COLOR00)/2] = data & 0x0fff
		default:
			return fmt.Errorf("not a chipset register (%s)", reg)
		}
	}

	return nil
}

func (chip *Chipset) newFrame() {
	prev := chip.currentFrame.main

	chip.currentFrame.top = chip.Spec.VisibleTop
	chip.currentFrame.bottom = chip.Spec.VisibleBottom

	// every scanline is drawn twice so that interlaced and non-interlaced
	// images are the same height
	chip.currentFrame.main = image.NewRGBA(image.Rect(0, 0,
		frameWidth,
		(chip.currentFrame.bottom-chip.currentFrame.top)*2),
	)

	// the lines of the previous field remain on screen in interlaced mode
	if prev != nil && prev.Bounds() == chip.currentFrame.main.Bounds() {
		copy(chip.currentFrame.main.Pix, prev.Pix)
	}
}

func (chip *Chipset) PushRender() {
	if chip.g == nil {
		return
	}

	// send current frame to renderer
	select {
	case chip.g.SetImage <- gui.Image{
		Main: chip.currentFrame.main,
		ID:   chip.Coords.ShortString(),
	}:
	default:
	}
}

// WaitTOF runs the chipset until the start of the next vertical blank. this
// is a complete field. the copper is restarted from COP1LC at the start of the
// field
func (chip *Chipset) WaitTOF() {
	chip.copper.restart(chip.cop1lc)

	// the number of scanlines is checked every line because the copper can
	// change the specification and the interlace bit during the field
	for chip.Coords.Scanline = 0; chip.Coords.Scanline < chip.scanlines(); chip.Coords.Scanline++ {
		chip.runCopper(chip.Coords.Scanline)
		chip.scanline(chip.Coords.Scanline)
	}

	chip.Coords.Frame++
	chip.Coords.Scanline = 0
	if chip.bplcon0.lace {
		chip.Coords.LOF = !chip.Coords.LOF
	} else {
		chip.Coords.LOF = true
	}

	if chip.limit != nil {
		chip.limit.Wait()
	}
	chip.PushRender()

	// it's no longer safe to use that frame in this context. create a new
	// image to use for current frame
	chip.newFrame()
}
