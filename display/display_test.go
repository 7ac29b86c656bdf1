package display_test

import (
	"testing"

	"github.com/jetsetilly/sparkler/display"
	"github.com/jetsetilly/sparkler/hardware/spec"
	"github.com/jetsetilly/sparkler/pattern"
	"github.com/jetsetilly/sparkler/test"
)

func TestDimensions(t *testing.T) {
	for _, d := range []struct {
		cfg    display.Config
		width  int
		height int
		mod    uint16
	}{
		{display.Config{}, 320, 200, 0},
		{display.Config{Hires: true}, 640, 200, 0},
		{display.Config{PAL: true}, 320, 256, 0},
		{display.Config{Hires: true, PAL: true}, 640, 256, 0},
		{display.Config{Interlaced: true}, 320, 400, 0x28},
		{display.Config{Hires: true, Interlaced: true}, 640, 400, 0x50},
		{display.Config{Interlaced: true, PAL: true}, 320, 512, 0x28},
		{display.Config{Hires: true, Interlaced: true, PAL: true}, 640, 512, 0x50},
	} {
		test.ExpectEquality(t, d.cfg.Width(), d.width, d.cfg)
		test.ExpectEquality(t, d.cfg.Height(), d.height, d.cfg)
		test.ExpectEquality(t, d.cfg.Modulo(), d.mod, d.cfg)
	}
}

func TestConfigString(t *testing.T) {
	cfg := display.Config{Hires: true, Interlaced: true, LineMode: pattern.SolidFill}
	test.ExpectEquality(t, cfg.String(), "NTSC hires 640x400 interlaced: solid fill")
}

func TestColourWord(t *testing.T) {
	c := display.Colour{R: 15, G: 11, B: 15}
	test.ExpectEquality(t, c.Word(), uint16(0xfbf))
	test.ExpectEquality(t, c.String(), "R:f G:b B:f")
}

func TestSaturation(t *testing.T) {
	c := display.Colour{R: 15, G: 0, B: 7}

	test.ExpectFailure(t, c.Inc(display.Red))
	test.ExpectEquality(t, c.R, uint8(15))
	test.ExpectFailure(t, c.Dec(display.Green))
	test.ExpectEquality(t, c.G, uint8(0))

	test.ExpectSuccess(t, c.Inc(display.Blue))
	test.ExpectEquality(t, c.B, uint8(8))
	test.ExpectSuccess(t, c.Dec(display.Blue))
	test.ExpectSuccess(t, c.Dec(display.Red))
	test.ExpectEquality(t, c, display.Colour{R: 14, G: 0, B: 7})
}

func TestPalette(t *testing.T) {
	var p display.Palette
	p.Colours[1] = display.Colour{R: 15, G: 11, B: 15}
	test.ExpectEquality(t, p.Word(0), uint16(0x000))
	test.ExpectEquality(t, p.Word(1), uint16(0xfbf))
	test.ExpectEquality(t, p.Word(2), uint16(0x710))
	test.ExpectEquality(t, p.Word(15), uint16(0x888))
	test.ExpectEquality(t, p.String(), "C0(R:0 G:0 B:0) C1(R:f G:b B:f)")
}

func TestConfigSpec(t *testing.T) {
	test.ExpectEquality(t, display.Config{}.Spec().ID, spec.NTSC.ID)
	test.ExpectEquality(t, display.Config{PAL: true}.Spec().ID, spec.PAL.ID)
	test.ExpectEquality(t, display.Config{PAL: true}.Standard(), "PAL")
	test.ExpectEquality(t, display.Config{PAL: true}.Height(), spec.PAL.Height)
}
