// Package overlay draws the information text over the test pattern. the text
// is drawn into the bitmap itself so it is part of the image being tested.
package overlay

import (
	"fmt"
	"image"

	"github.com/jetsetilly/sparkler/display"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Canvas is the surface text is drawn on
type Canvas interface {
	Bounds() image.Rectangle
	SetPixel(x, y int, idx uint8)
}

// the colour indexes used for text. the background of every character cell is
// filled in the same way as the text itself
const (
	Pen        = 15
	Background = 0
)

const Title = "Sparkler V1.0 - RGB2HDMI Test Tool - by Bloodmosher"

var HelpLines = [...]string{
	"F1: Toggle lores/hires",
	"F2: Toggle interlaced",
	"F3, F4, F5: Color 0 RGB - hold SHIFT for reverse direction",
	"F8, F9, F10: Color 1 RGB - hold SHIFT for reverse direction",
	"Number keys 1-7: Change image pattern",
	"SPACE: Toggle NTSC/PAL",
	"ESC: Exit",
	"HELP: Toggle help visibility",
}

// text positions. y values are the text baseline
const (
	titleY      = 10
	statusY     = 22
	hiresIndent = 20
	helpX       = 20
	helpY       = 35
	helpSpacing = 10
)

var face = basicfont.Face7x13

// StatusLine describes the display and the two user colours
func StatusLine(cfg display.Config, pal display.Palette) string {
	var interlaced int
	if cfg.Interlaced {
		interlaced = 1
	}
	c0 := pal.Colours[0]
	c1 := pal.Colours[1]
	return fmt.Sprintf("%s %dx%d I:%d P:%d C0(R:%x G:%x B:%x) C1(R:%x G:%x B:%x)",
		cfg.Standard(), cfg.Width(), cfg.Height(), interlaced, cfg.LineMode,
		c0.R, c0.G, c0.B, c1.R, c1.G, c1.B)
}

// Draw the title, the status line and optionally the help text
func Draw(c Canvas, cfg display.Config, pal display.Palette, showHelp bool) {
	var x int
	if cfg.Hires {
		x = hiresIndent
	}

	Text(c, x, titleY, Title)
	Text(c, x, statusY, StatusLine(cfg, pal))

	if showHelp {
		for i, s := range HelpLines {
			Text(c, helpX, helpY+i*helpSpacing, s)
		}
	}
}

// Text draws the string with its baseline at y. the character cells are
// cleared to the background colour before the text is drawn in the pen colour
func Text(c Canvas, x, y int, s string) {
	adv := font.MeasureString(face, s).Ceil()
	box := image.Rect(x, y-face.Ascent, x+adv, y+face.Descent).Intersect(c.Bounds())
	if box.Empty() {
		return
	}

	mask := image.NewAlpha(box)
	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)

	for py := box.Min.Y; py < box.Max.Y; py++ {
		for px := box.Min.X; px < box.Max.X; px++ {
			if mask.AlphaAt(px, py).A >= 0x80 {
				c.SetPixel(px, py, Pen)
			} else {
				c.SetPixel(px, py, Background)
			}
		}
	}
}
