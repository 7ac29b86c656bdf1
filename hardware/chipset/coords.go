package chipset

import (
	"fmt"
)

type coords struct {
	Frame    int
	Scanline int

	// long frame. in interlaced mode long and short frames alternate
	LOF bool
}

func (c *coords) String() string {
	return fmt.Sprintf("frame: %d, scanline: %d, lof: %v", c.Frame, c.Scanline, c.LOF)
}

func (c *coords) ShortString() string {
	return fmt.Sprintf("%d/%03d", c.Frame, c.Scanline)
}

func (c *coords) Reset() {
	c.Frame = 0
	c.Scanline = 0
	c.LOF = true
}
