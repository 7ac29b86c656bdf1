// Package display describes the display configuration chosen by the user and
// the colours used to draw the test pattern.
package display

import (
	"fmt"

	"github.com/jetsetilly/sparkler/hardware/spec"
	"github.com/jetsetilly/sparkler/pattern"
)

// Config is the display mode and the test pattern to show in it
type Config struct {
	Hires      bool
	Interlaced bool
	PAL        bool
	LineMode   pattern.LineMode
}

// Width of the display in pixels
func (c Config) Width() int {
	if c.Hires {
		return 640
	}
	return 320
}

// Height of the display in scanlines. interlaced displays have twice as many
// lines as a single field
func (c Config) Height() int {
	h := c.Spec().Height
	if c.Interlaced {
		h *= 2
	}
	return h
}

// BytesPerRow is the number of bytes in one line of a single bitplane
func (c Config) BytesPerRow() int {
	return c.Width() / 8
}

// Modulo is the value added to the bitplane pointers at the end of every line.
// an interlaced field skips every other line
func (c Config) Modulo() uint16 {
	if c.Interlaced {
		return uint16(c.BytesPerRow())
	}
	return 0
}

// Spec returns the television specification of the display
func (c Config) Spec() spec.Spec {
	if c.PAL {
		return spec.PAL
	}
	return spec.NTSC
}

// Standard returns the name of the television standard
func (c Config) Standard() string {
	return c.Spec().ID
}

func (c Config) String() string {
	res := "lores"
	if c.Hires {
		res = "hires"
	}
	s := fmt.Sprintf("%s %s %dx%d", c.Standard(), res, c.Width(), c.Height())
	if c.Interlaced {
		s = fmt.Sprintf("%s interlaced", s)
	}
	return fmt.Sprintf("%s: %s", s, c.LineMode)
}
