// Package pattern fills a bitplane with one of the test patterns. the patterns
// are chosen to show up sampling errors in video capture hardware: single
// pixel detail changing on every pixel and every line.
package pattern

// LineMode selects the pattern. modes are numbered from one
type LineMode int

const (
	AlternatingPixels LineMode = iota + 1
	VerticalBars
	HorizontalBars
	SolidFill
	VerticalBars2
	VerticalBars3
	VerticalBars4
)

// NumModes is the number of line modes
const NumModes = 7

func (m LineMode) String() string {
	switch m {
	case AlternatingPixels:
		return "alternating pixels"
	case VerticalBars:
		return "vertical bars"
	case HorizontalBars:
		return "horizontal bars"
	case SolidFill:
		return "solid fill"
	case VerticalBars2:
		return "vertical bars 2"
	case VerticalBars3:
		return "vertical bars 3"
	case VerticalBars4:
		return "vertical bars 4"
	}
	return "unknown"
}

// Valid returns true if the line mode is one of the defined modes
func (m LineMode) Valid() bool {
	return m >= AlternatingPixels && m <= VerticalBars4
}

// modes that are not recognised leave the plane clear. only the last line is
// written
const defaultFill = 0x00

// the value used for the last line of every pattern
const lastLine = 0xff

var bars2 = [...]uint8{0x92, 0x49, 0x24}
var bars4 = [...]uint8{0x84, 0x21, 0x08, 0x42, 0x10}

// value returns the byte for column x on line y. the last line of the bitmap is
// handled by Generate()
func (m LineMode) value(x, y int) uint8 {
	evenLine := y&0x01 == 0

	switch m {
	case AlternatingPixels:
		if evenLine {
			return 0x55
		}
		return 0xaa
	case VerticalBars:
		// the same value is used for odd and even columns
		return 0xaa
	case HorizontalBars:
		if evenLine {
			return 0xff
		}
		return 0x00
	case SolidFill:
		return 0xff
	case VerticalBars2:
		return bars2[x%len(bars2)]
	case VerticalBars3:
		return 0x88
	case VerticalBars4:
		return bars4[x%len(bars4)]
	}

	return defaultFill
}

// Generate fills the plane with the pattern. width is in pixels and must be a
// multiple of eight. the plane must be at least width/8*height bytes long
func Generate(plane []uint8, width, height int, mode LineMode) {
	bytesPerRow := width / 8

	for y := range height {
		row := plane[y*bytesPerRow : (y+1)*bytesPerRow]
		if y == height-1 {
			for x := range row {
				row[x] = lastLine
			}
			continue // for loop
		}
		for x := range row {
			row[x] = mode.value(x, y)
		}
	}
}
