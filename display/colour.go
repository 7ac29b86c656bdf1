package display

import "fmt"

// Channel is one of the three components of a colour
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

func (ch Channel) String() string {
	switch ch {
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	}
	return "?"
}

// the maximum value of a colour channel
const MaxChannel = 0x0f

// Colour is a 12-bit colour. each channel is in the range 0 to 15
type Colour struct {
	R, G, B uint8
}

// Word packs the colour into the format used by the colour registers
func (c Colour) Word() uint16 {
	return uint16(c.R&0x0f)<<8 | uint16(c.G&0x0f)<<4 | uint16(c.B&0x0f)
}

func (c Colour) String() string {
	return fmt.Sprintf("R:%x G:%x B:%x", c.R, c.G, c.B)
}

func (c *Colour) channel(ch Channel) *uint8 {
	switch ch {
	case Red:
		return &c.R
	case Green:
		return &c.G
	case Blue:
		return &c.B
	}
	panic(fmt.Sprintf("display: unknown colour channel (%d)", ch))
}

// Inc increases the channel by one. the channel will not go above MaxChannel.
// returns true if the colour has changed
func (c *Colour) Inc(ch Channel) bool {
	v := c.channel(ch)
	if *v >= MaxChannel {
		return false
	}
	*v++
	return true
}

// Dec decreases the channel by one. the channel will not go below zero.
// returns true if the colour has changed
func (c *Colour) Dec(ch Channel) bool {
	v := c.channel(ch)
	if *v == 0 {
		return false
	}
	*v--
	return true
}

// FixedColours are the values of the sixteen colour registers. the first two
// are replaced by the colours in the Palette
var FixedColours = [16]uint16{
	0x000, 0xfbf, 0x710, 0xc10, 0x910, 0xe20, 0xfcb, 0xfff,
	0xf42, 0x000, 0xf98, 0xf65, 0xc54, 0x322, 0x444, 0x888,
}

// Palette holds the two colours that can be changed by the user
type Palette struct {
	Colours [2]Colour
}

// Word returns the register value for colour n. colours other than zero and
// one are taken from FixedColours
func (p Palette) Word(n int) uint16 {
	if n < len(p.Colours) {
		return p.Colours[n].Word()
	}
	return FixedColours[n]
}

func (p Palette) String() string {
	return fmt.Sprintf("C0(%s) C1(%s)", p.Colours[0], p.Colours[1])
}
