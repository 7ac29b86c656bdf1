package overlay_test

import (
	"image"
	"testing"

	"github.com/jetsetilly/sparkler/display"
	"github.com/jetsetilly/sparkler/overlay"
	"github.com/jetsetilly/sparkler/pattern"
	"github.com/jetsetilly/sparkler/test"
)

// canvas is a simple chunky canvas for testing
type canvas struct {
	bounds image.Rectangle
	pixels []uint8
}

func newCanvas(w, h int, fill uint8) *canvas {
	c := &canvas{
		bounds: image.Rect(0, 0, w, h),
		pixels: make([]uint8, w*h),
	}
	for i := range c.pixels {
		c.pixels[i] = fill
	}
	return c
}

func (c *canvas) Bounds() image.Rectangle {
	return c.bounds
}

func (c *canvas) SetPixel(x, y int, idx uint8) {
	if !image.Pt(x, y).In(c.bounds) {
		return
	}
	c.pixels[y*c.bounds.Dx()+x] = idx
}

// count the pixels of the colour in the area
func (c *canvas) count(r image.Rectangle, idx uint8) int {
	var n int
	r = r.Intersect(c.bounds)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if c.pixels[y*c.bounds.Dx()+x] == idx {
				n++
			}
		}
	}
	return n
}

var palette = display.Palette{
	Colours: [2]display.Colour{{R: 0, G: 0, B: 0}, {R: 15, G: 11, B: 15}},
}

func TestStatusLine(t *testing.T) {
	cfg := display.Config{Hires: true, LineMode: pattern.AlternatingPixels}
	test.ExpectEquality(t, overlay.StatusLine(cfg, palette),
		"NTSC 640x200 I:0 P:1 C0(R:0 G:0 B:0) C1(R:f G:b B:f)")

	cfg = display.Config{Interlaced: true, PAL: true, LineMode: pattern.VerticalBars4}
	test.ExpectEquality(t, overlay.StatusLine(cfg, palette),
		"PAL 320x512 I:1 P:7 C0(R:0 G:0 B:0) C1(R:f G:b B:f)")
}

func TestText(t *testing.T) {
	c := newCanvas(320, 200, 1)
	overlay.Text(c, 10, 20, "HELLO")

	// the character cells are either pen or background
	cell := image.Rect(10, 20-11, 10+5*7, 20+2)
	test.ExpectInequality(t, c.count(cell, overlay.Pen), 0)
	test.ExpectInequality(t, c.count(cell, overlay.Background), 0)
	test.ExpectEquality(t, c.count(cell, 1), 0)

	// nothing outside of the cells is changed
	test.ExpectEquality(t, c.count(image.Rect(0, 0, 320, 200), 1), 320*200-cell.Dx()*cell.Dy())
}

func TestTextClipping(t *testing.T) {
	c := newCanvas(32, 16, 1)
	overlay.Text(c, 20, 10, "clipped text")
	overlay.Text(c, 100, 100, "outside")
	test.ExpectEquality(t, c.count(image.Rect(0, 0, 20, 16), 1), 20*16)
}

func TestHelp(t *testing.T) {
	cfg := display.Config{Hires: true}
	help := image.Rect(0, 30, 640, 200)

	c := newCanvas(640, 200, 1)
	overlay.Draw(c, cfg, palette, false)
	test.ExpectEquality(t, c.count(help, overlay.Pen), 0)
	test.ExpectInequality(t, c.count(image.Rect(20, 0, 640, 25), overlay.Pen), 0)

	// the title is indented in hires
	test.ExpectEquality(t, c.count(image.Rect(0, 0, 20, 25), 1), 20*25)

	c = newCanvas(640, 200, 1)
	overlay.Draw(c, cfg, palette, true)
	test.ExpectInequality(t, c.count(help, overlay.Pen), 0)

	// lores title starts at the left edge
	c = newCanvas(320, 200, 1)
	overlay.Draw(c, display.Config{}, palette, false)
	test.ExpectInequality(t, c.count(image.Rect(0, 0, 20, 25), overlay.Pen), 0)
}
