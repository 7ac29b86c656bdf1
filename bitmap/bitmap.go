// Package bitmap is a planar bitmap allocated in chip memory. each of the
// bitplanes is stored one after the other in a single allocation.
package bitmap

import (
	"fmt"
	"image"
)

// Depth is the number of bitplanes in a bitmap
const Depth = 4

// Memory is the chip memory the bitmap is allocated in
type Memory interface {
	AllocMem(size int, clear bool) (uint32, error)
	FreeMem(addr uint32, size int) error
	Slice(addr uint32, size int) ([]uint8, error)
}

type Bitmap struct {
	mem    Memory
	addr   uint32
	width  int
	height int
	planes [Depth][]uint8
}

// Alloc creates a cleared bitmap of the given size. the width must be a
// multiple of sixteen
func Alloc(mem Memory, width, height int) (*Bitmap, error) {
	if width <= 0 || width%16 != 0 || height <= 0 {
		return nil, fmt.Errorf("bitmap: unsupported size %dx%d", width, height)
	}

	bm := &Bitmap{
		mem:    mem,
		width:  width,
		height: height,
	}

	var err error
	bm.addr, err = mem.AllocMem(bm.size(), true)
	if err != nil {
		return nil, fmt.Errorf("bitmap: %w", err)
	}

	for p := range Depth {
		bm.planes[p], err = mem.Slice(bm.PlaneAddress(p), bm.PlaneSize())
		if err != nil {
			_ = mem.FreeMem(bm.addr, bm.size())
			return nil, fmt.Errorf("bitmap: %w", err)
		}
	}

	return bm, nil
}

// Free returns the bitmap's memory. the bitmap must not be used afterwards
func (bm *Bitmap) Free() error {
	if bm.mem == nil {
		return fmt.Errorf("bitmap: already freed")
	}
	err := bm.mem.FreeMem(bm.addr, bm.size())
	bm.mem = nil
	bm.planes = [Depth][]uint8{}
	if err != nil {
		return fmt.Errorf("bitmap: %w", err)
	}
	return nil
}

func (bm *Bitmap) size() int {
	return bm.PlaneSize() * Depth
}

func (bm *Bitmap) String() string {
	return fmt.Sprintf("%dx%dx%d at %#06x", bm.width, bm.height, Depth, bm.addr)
}

func (bm *Bitmap) Width() int {
	return bm.width
}

func (bm *Bitmap) Height() int {
	return bm.height
}

func (bm *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, bm.width, bm.height)
}

func (bm *Bitmap) BytesPerRow() int {
	return bm.width / 8
}

// PlaneSize is the number of bytes in a single bitplane
func (bm *Bitmap) PlaneSize() int {
	return bm.BytesPerRow() * bm.height
}

// Plane returns the data for the bitplane. writes to the slice are writes to
// chip memory
func (bm *Bitmap) Plane(p int) []uint8 {
	return bm.planes[p]
}

// PlaneAddress returns the chip memory address of the bitplane
func (bm *Bitmap) PlaneAddress(p int) uint32 {
	return bm.addr + uint32(p*bm.PlaneSize())
}

// SetPixel sets the pixel to the colour index. pixels outside the bitmap are
// ignored
func (bm *Bitmap) SetPixel(x, y int, idx uint8) {
	if x < 0 || y < 0 || x >= bm.width || y >= bm.height {
		return
	}
	i := y*bm.BytesPerRow() + x/8
	m := uint8(0x80) >> (x % 8)
	for p := range Depth {
		if idx&(1<<p) != 0 {
			bm.planes[p][i] |= m
		} else {
			bm.planes[p][i] &^= m
		}
	}
}

// Pixel returns the colour index of the pixel
func (bm *Bitmap) Pixel(x, y int) uint8 {
	if x < 0 || y < 0 || x >= bm.width || y >= bm.height {
		return 0
	}
	i := y*bm.BytesPerRow() + x/8
	m := uint8(0x80) >> (x % 8)
	var idx uint8
	for p := range Depth {
		if bm.planes[p][i]&m != 0 {
			idx |= 1 << p
		}
	}
	return idx
}
