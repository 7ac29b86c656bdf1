package bitmap_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/sparkler/bitmap"
	"github.com/jetsetilly/sparkler/hardware/memory"
	"github.com/jetsetilly/sparkler/test"
)

func TestAlloc(t *testing.T) {
	ram := memory.Create("chip", memory.DefaultSize)
	avail := ram.Available()

	bm, err := bitmap.Alloc(ram, 640, 400)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, bm.BytesPerRow(), 80)
	test.ExpectEquality(t, bm.PlaneSize(), 80*400)
	test.ExpectEquality(t, ram.Available(), avail-80*400*bitmap.Depth)

	// planes are contiguous
	for p := 1; p < bitmap.Depth; p++ {
		test.ExpectEquality(t, bm.PlaneAddress(p), bm.PlaneAddress(p-1)+uint32(bm.PlaneSize()))
		test.ExpectEquality(t, len(bm.Plane(p)), bm.PlaneSize())
	}

	// writes to a plane are writes to chip memory
	bm.Plane(2)[1] = 0xaa
	v, err := ram.Read(bm.PlaneAddress(2) + 1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xaa))

	test.ExpectSuccess(t, bm.Free())
	test.ExpectEquality(t, ram.Available(), avail)
	test.ExpectFailure(t, bm.Free())
}

func TestAllocFailure(t *testing.T) {
	ram := memory.Create("chip", 0x4000)
	_, err := bitmap.Alloc(ram, 640, 512)
	test.ExpectSuccess(t, errors.Is(err, memory.ErrOutOfChipMem))

	_, err = bitmap.Alloc(ram, 100, 10)
	test.ExpectFailure(t, err)
}

func TestPixels(t *testing.T) {
	ram := memory.Create("chip", memory.DefaultSize)
	bm, err := bitmap.Alloc(ram, 320, 200)
	test.DemandSuccess(t, err)

	bm.SetPixel(0, 0, 15)
	bm.SetPixel(9, 1, 5)
	test.ExpectEquality(t, bm.Pixel(0, 0), uint8(15))
	test.ExpectEquality(t, bm.Pixel(9, 1), uint8(5))
	test.ExpectEquality(t, bm.Plane(0)[0], uint8(0x80))
	test.ExpectEquality(t, bm.Plane(0)[41], uint8(0x40))
	test.ExpectEquality(t, bm.Plane(1)[41], uint8(0x00))
	test.ExpectEquality(t, bm.Plane(2)[41], uint8(0x40))

	bm.SetPixel(0, 0, 0)
	test.ExpectEquality(t, bm.Pixel(0, 0), uint8(0))

	// outside of the bitmap
	bm.SetPixel(320, 0, 15)
	test.ExpectEquality(t, bm.Pixel(320, 0), uint8(0))
}
