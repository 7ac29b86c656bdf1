package chipset

import (
	"fmt"
	"image/color"
)

// RGB converts a 12-bit colour register value to a colour suitable for the
// GUI. each four bit channel is scaled to eight bits
func RGB(w uint16) color.RGBA {
	return color.RGBA{
		R: uint8((w>>8)&0x0f) * 17,
		G: uint8((w>>4)&0x0f) * 17,
		B: uint8(w&0x0f) * 17,
		A: 255,
	}
}

// the number of bytes fetched for each bitplane on every scanline of the
// display window
func (chip *Chipset) fetchBytes() int {
	if chip.ddfstop < chip.ddfstrt {
		return 0
	}
	d := int(chip.ddfstop - chip.ddfstrt)
	if chip.bplcon0.hires {
		return (d/4 + 2) * 2
	}
	return (d/8 + 1) * 2
}

// returns true if the scanline is inside the vertical display window
func (chip *Chipset) displayWindow(scanline int) bool {
	start := int(chip.diwstrt >> 8)
	stop := int(chip.diwstop >> 8)

	// the ninth bit of the stop position is the inverse of the eighth bit
	if stop&0x80 == 0 {
		stop |= 0x100
	}

	return scanline >= start && scanline < stop
}

// scanline fetches bitplane data for the scanline and draws it to the current
// frame. bitplane pointers are advanced even if the scanline is not visible
func (chip *Chipset) scanline(scanline int) {
	var data [NumPlanes][]uint8

	planes := min(chip.bplcon0.planes, NumPlanes)
	active := planes > 0 && chip.dmaEnabled(DMARaster) && chip.displayWindow(scanline)

	if active {
		n := chip.fetchBytes()
		for p := range planes {
			data[p] = make([]uint8, n)
			for i := 0; i < n; i += 2 {
				w, err := chip.mem.ReadWord(chip.bplpt[p] + uint32(i))
				if err != nil {
					chip.ctx.Break(fmt.Errorf("%w: bitplane %d: %w", ContextError, p+1, err))
					break // for loop
				}
				data[p][i] = uint8(w >> 8)
				if i+1 < n {
					data[p][i+1] = uint8(w)
				}
			}

			// odd numbered planes use BPL1MOD and even numbered planes use
			// BPL2MOD. planes are numbered from one
			mod := chip.bplmod[p&0x01]
			chip.bplpt[p] = uint32(int64(chip.bplpt[p]) + int64(n) + int64(mod))
		}
	}

	if scanline < chip.currentFrame.top || scanline >= chip.currentFrame.bottom {
		return
	}

	y := (scanline - chip.currentFrame.top) * 2
	rows := []int{y, y + 1}
	if chip.bplcon0.lace {
		if chip.Coords.LOF {
			rows = rows[:1]
		} else {
			rows = rows[1:]
		}
	}

	img := chip.currentFrame.main
	border := RGB(chip.colour[0])

	if !active {
		for _, row := range rows {
			for x := range frameWidth {
				img.SetRGBA(x, row, border)
			}
		}
		return
	}

	width := 2
	if chip.bplcon0.hires {
		width = 1
	}

	x := 0
	for b := range len(data[0]) {
		for bit := 7; bit >= 0; bit-- {
			var idx int
			for p := range planes {
				idx |= int((data[p][b]>>bit)&0x01) << p
			}
			col := RGB(chip.colour[idx])
			for range width {
				if x < frameWidth {
					for _, row := range rows {
						img.SetRGBA(x, row, col)
					}
				}
				x++
			}
		}
	}

	// the remainder of the line is border
	for ; x < frameWidth; x++ {
		for _, row := range rows {
			img.SetRGBA(x, row, border)
		}
	}
}
