package chipset_test

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/jetsetilly/sparkler/hardware/chipset"
	"github.com/jetsetilly/sparkler/hardware/memory"
	"github.com/jetsetilly/sparkler/hardware/spec"
	"github.com/jetsetilly/sparkler/test"
)

type context struct {
	breaks []error
}

func (ctx *context) Break(e error) {
	ctx.breaks = append(ctx.breaks, e)
}

func create(t *testing.T) (*chipset.Chipset, *memory.ChipRAM, *context) {
	t.Helper()
	ram := memory.Create("chip", 0x20000)
	ctx := &context{}
	chip := chipset.Create(ctx, nil, ram, spec.NTSC, nil)
	return chip, ram, ctx
}

// program writes the words to a newly allocated area of chip memory
func program(t *testing.T, ram *memory.ChipRAM, words ...uint16) uint32 {
	t.Helper()
	addr, err := ram.AllocMem(len(words)*2, true)
	test.DemandSuccess(t, err)
	for i, w := range words {
		test.DemandSuccess(t, ram.WriteWord(addr+uint32(i*2), w))
	}
	return addr
}

// start the copper program at the address with all DMA enabled
func start(t *testing.T, chip *chipset.Chipset, addr uint32) {
	t.Helper()
	test.DemandSuccess(t, chip.Write(chipset.COP1LCH, uint16(addr>>16)))
	test.DemandSuccess(t, chip.Write(chipset.COP1LCL, uint16(addr)))
	test.DemandSuccess(t, chip.Write(chipset.DMACON,
		chipset.SetClr|chipset.DMAMaster|chipset.DMACopper|chipset.DMARaster))
}

func move(reg chipset.Register, data uint16) []uint16 {
	return []uint16{uint16(reg), data}
}

func list(ins ...[]uint16) []uint16 {
	var w []uint16
	for _, i := range ins {
		w = append(w, i...)
	}
	return append(w, 0xffff, 0xfffe)
}

func TestRegisterNames(t *testing.T) {
	test.ExpectEquality(t, chipset.BPLCON0.String(), "BPLCON0")
	test.ExpectEquality(t, chipset.COLOR(0).String(), "COLOR00")
	test.ExpectEquality(t, chipset.COLOR(15).String(), "COLOR15")
	test.ExpectEquality(t, chipset.COLOR(15), chipset.COLOR15)
	test.ExpectEquality(t, chipset.BPLPTH(3), chipset.BPL4PTH)
	test.ExpectEquality(t, chipset.BPLPTL(1), chipset.BPL2PTL)
	test.ExpectEquality(t, chipset.Register(0x1fe).String(), "0x1fe")
}

func TestSetClr(t *testing.T) {
	chip, _, _ := create(t)

	test.ExpectSuccess(t, chip.Write(chipset.DMACON, chipset.SetClr|chipset.DMAMaster|chipset.DMACopper))
	v, err := chip.Read(chipset.DMACONR)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint16(chipset.DMAMaster|chipset.DMACopper))

	test.ExpectSuccess(t, chip.Write(chipset.DMACON, chipset.DMACopper))
	v, _ = chip.Read(chipset.DMACONR)
	test.ExpectEquality(t, v, uint16(chipset.DMAMaster))

	test.ExpectSuccess(t, chip.Write(chipset.INTENA, chipset.SetClr|chipset.IntInten|chipset.IntVertb))
	v, _ = chip.Read(chipset.INTENAR)
	test.ExpectEquality(t, v, uint16(chipset.IntInten|chipset.IntVertb))

	test.ExpectSuccess(t, chip.Write(chipset.INTENA, chipset.IntAll))
	v, _ = chip.Read(chipset.INTENAR)
	test.ExpectEquality(t, v, uint16(0))
}

func TestBadRegister(t *testing.T) {
	chip, _, _ := create(t)
	test.ExpectFailure(t, chip.Write(chipset.Register(0x1fe), 0))
	_, err := chip.Read(chipset.Register(0x1fe))
	test.ExpectFailure(t, err)

	// write only registers can be read but always return zero
	v, err := chip.Read(chipset.BPLCON0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint16(0))
}

func TestRGB(t *testing.T) {
	test.ExpectEquality(t, chipset.RGB(0xfbf), color.RGBA{R: 255, G: 187, B: 255, A: 255})
	test.ExpectEquality(t, chipset.RGB(0x000), color.RGBA{A: 255})
}

func TestCopperMove(t *testing.T) {
	chip, ram, ctx := create(t)

	addr := program(t, ram, list(
		move(chipset.COLOR00, 0x0f00),
		move(chipset.COLOR01, 0x00f0),
	)...)
	start(t, chip, addr)
	chip.WaitTOF()

	test.ExpectEquality(t, chip.Colour(0), uint16(0x0f00))
	test.ExpectEquality(t, chip.Colour(1), uint16(0x00f0))
	test.ExpectEquality(t, len(ctx.breaks), 0)
}

func TestCopperWait(t *testing.T) {
	chip, ram, ctx := create(t)

	w := list(
		move(chipset.COLOR00, 0x0111),
		[]uint16{0x8001, 0xfffe},
		move(chipset.COLOR00, 0x0222),
	)
	start(t, chip, program(t, ram, w...))
	chip.WaitTOF()

	test.ExpectEquality(t, chip.Colour(0), uint16(0x0222))
	test.ExpectEquality(t, len(ctx.breaks), 0)

	// scanlines before the wait position are drawn in the first colour
	top := spec.NTSC.VisibleTop
	img := chip.Frame()
	test.ExpectEquality(t, img.RGBAAt(0, (0x7f-top)*2), chipset.RGB(0x0111))
	test.ExpectEquality(t, img.RGBAAt(0, (0x80-top)*2), chipset.RGB(0x0222))
	test.ExpectEquality(t, img.RGBAAt(0, (0x80-top)*2+1), chipset.RGB(0x0222))
}

func TestCopperDMA(t *testing.T) {
	chip, ram, _ := create(t)

	start(t, chip, program(t, ram, list(move(chipset.COLOR00, 0x0fff))...))
	test.DemandSuccess(t, chip.Write(chipset.DMACON, chipset.DMACopper))
	chip.WaitTOF()

	// the copper does nothing if copper DMA is disabled
	test.ExpectEquality(t, chip.Colour(0), uint16(0))
}

func TestProtectedRegister(t *testing.T) {
	chip, ram, ctx := create(t)

	start(t, chip, program(t, ram, list(
		move(chipset.Register(0x020), 0x1234),
		move(chipset.COLOR00, 0x0fff),
	)...))
	chip.WaitTOF()

	// the copper halts on the write to the protected register
	test.ExpectEquality(t, chip.Colour(0), uint16(0))
	test.DemandEquality(t, len(ctx.breaks), 1)
	test.ExpectSuccess(t, errors.Is(ctx.breaks[0], chipset.ContextError))
}

func TestCopperRunaway(t *testing.T) {
	chip, ram, ctx := create(t)

	// a program that jumps to itself forever
	addr, err := ram.AllocMem(8, true)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ram.WriteWord(addr, uint16(chipset.COPJMP1)))
	test.DemandSuccess(t, ram.WriteWord(addr+2, 0))
	start(t, chip, addr)
	chip.WaitTOF()

	test.DemandEquality(t, len(ctx.breaks), 1)
	test.ExpectSuccess(t, errors.Is(ctx.breaks[0], chipset.ContextError))
}

func bitplaneProgram(t *testing.T, ram *memory.ChipRAM, bplcon0 uint16, bp uint32) []uint16 {
	t.Helper()
	return list(
		move(chipset.BPLCON0, bplcon0),
		move(chipset.DDFSTRT, spec.DisplayFetchStart),
		move(chipset.DDFSTOP, spec.DisplayFetchStop),
		move(chipset.DIWSTRT, spec.DisplayWindowStart),
		move(chipset.DIWSTOP, spec.NTSC.DisplayWindowStop),
		move(chipset.BPL1MOD, 0),
		move(chipset.BPL1PTH, uint16(bp>>16)),
		move(chipset.BPL1PTL, uint16(bp)),
		move(chipset.COLOR00, 0x000f),
		move(chipset.COLOR01, 0x0fff),
	)
}

func TestBitplaneLores(t *testing.T) {
	chip, ram, ctx := create(t)

	bp, err := ram.AllocMem(40*200, true)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ram.Write(bp, 0xf0))

	start(t, chip, program(t, ram, bitplaneProgram(t, ram, 0x1200, bp)...))
	chip.WaitTOF()
	test.ExpectEquality(t, len(ctx.breaks), 0)

	top := spec.NTSC.VisibleTop
	img := chip.Frame()
	blue := chipset.RGB(0x000f)
	white := chipset.RGB(0x0fff)

	// border above the display window
	test.ExpectEquality(t, img.RGBAAt(0, 0), blue)

	// first line of the display window. lores pixels are two pixels wide
	y := (0x2c - top) * 2
	test.ExpectEquality(t, img.RGBAAt(0, y), white)
	test.ExpectEquality(t, img.RGBAAt(7, y), white)
	test.ExpectEquality(t, img.RGBAAt(8, y), blue)
	test.ExpectEquality(t, img.RGBAAt(7, y+1), white)

	// second line of the bitmap is empty
	test.ExpectEquality(t, img.RGBAAt(0, y+2), blue)

	// first line after the display window
	test.ExpectEquality(t, img.RGBAAt(0, (0xf4-top)*2), blue)
}

func TestBitplaneHires(t *testing.T) {
	chip, ram, _ := create(t)

	bp, err := ram.AllocMem(80*200, true)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ram.Write(bp, 0xf0))
	test.DemandSuccess(t, ram.Write(bp+79, 0x01))

	start(t, chip, program(t, ram, bitplaneProgram(t, ram, 0x9200, bp)...))
	chip.WaitTOF()

	img := chip.Frame()
	y := (0x2c - spec.NTSC.VisibleTop) * 2
	test.ExpectEquality(t, img.RGBAAt(3, y), chipset.RGB(0x0fff))
	test.ExpectEquality(t, img.RGBAAt(4, y), chipset.RGB(0x000f))
	test.ExpectEquality(t, img.RGBAAt(639, y), chipset.RGB(0x0fff))
	test.ExpectEquality(t, img.RGBAAt(638, y), chipset.RGB(0x000f))
}

func TestInterlace(t *testing.T) {
	chip, ram, _ := create(t)

	bp, err := ram.AllocMem(40*200, true)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ram.Write(bp, 0xff))

	start(t, chip, program(t, ram, bitplaneProgram(t, ram, 0x1200|chipset.BplconLace, bp)...))

	y := (0x2c - spec.NTSC.VisibleTop) * 2

	// long frame is drawn on the even rows only
	test.ExpectSuccess(t, chip.Coords.LOF)
	chip.WaitTOF()
	test.ExpectFailure(t, chip.Coords.LOF)
	test.ExpectEquality(t, chip.Frame().RGBAAt(0, y), chipset.RGB(0x0fff))
	test.ExpectEquality(t, chip.Frame().RGBAAt(0, y+1), color.RGBA{})

	v, err := chip.Read(chipset.VPOSR)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v&0x8000, uint16(0))

	// the short frame fills in the odd rows
	chip.WaitTOF()
	test.ExpectSuccess(t, chip.Coords.LOF)
	test.ExpectEquality(t, chip.Frame().RGBAAt(0, y), chipset.RGB(0x0fff))
	test.ExpectEquality(t, chip.Frame().RGBAAt(0, y+1), chipset.RGB(0x0fff))

	v, _ = chip.Read(chipset.VPOSR)
	test.ExpectEquality(t, v&0x8000, uint16(0x8000))
}

func TestBeamcon(t *testing.T) {
	chip, ram, _ := create(t)
	test.ExpectEquality(t, chip.Spec.ID, "NTSC")

	start(t, chip, program(t, ram, list(move(chipset.BEAMCON0, spec.BeamconPAL))...))
	chip.WaitTOF()
	test.ExpectEquality(t, chip.Spec.ID, "PAL")
	test.ExpectEquality(t, chip.Frame().Bounds().Dy(), (spec.PAL.VisibleBottom-spec.PAL.VisibleTop)*2)
	test.ExpectEquality(t, chip.Frame().Bounds().Dx(), 640)
}

func TestBeamconFirstField(t *testing.T) {
	chip, ram, ctx := create(t)

	// the field that switches to PAL is drawn with the PAL number of scanlines
	start(t, chip, program(t, ram, list(move(chipset.COLOR00, 0x0fff), move(chipset.BEAMCON0, spec.BeamconPAL))...))
	chip.WaitTOF()
	test.DemandEquality(t, chip.Spec.ID, "PAL")

	// scanline 300 is beyond the end of an NTSC field
	y := (300 - spec.PAL.VisibleTop) * 2
	test.ExpectEquality(t, chip.Frame().RGBAAt(0, 0), chipset.RGB(0x0fff))
	test.ExpectEquality(t, chip.Frame().RGBAAt(0, y), chipset.RGB(0x0fff))
	test.ExpectEquality(t, len(ctx.breaks), 0)
}

func TestStatus(t *testing.T) {
	chip, ram, _ := create(t)
	start(t, chip, program(t, ram, list(move(chipset.BPLCON0, 0xc204))...))
	chip.WaitTOF()

	test.ExpectSuccess(t, strings.HasPrefix(chip.Status(), "CHIPSET: 1/000"))
	test.ExpectSuccess(t, strings.Contains(chip.String(), "bplcon0=0xc204 hires=true bpu=4 colour=true lace=true"))
}
