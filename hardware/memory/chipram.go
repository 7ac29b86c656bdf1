// Package memory implements the chip RAM shared by the CPU side of the
// program and the chipset. Bitplanes and display programs must be placed in
// chip RAM for the chipset to be able to see them.
package memory

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

// sentinel errors returned by chip RAM. the caller should use errors.Is() to
// test for them because they are always wrapped
var (
	ErrOutOfChipMem = errors.New("out of chip memory")
	ErrAddress      = errors.New("address not in chip memory")
	ErrFree         = errors.New("free of unallocated memory")
)

// the lowest address returned by AllocMem(). the area below this is never
// allocated, which means that an address of zero can never be a valid
// allocation
const allocBase = 0x1000

// allocations are rounded up to this size
const alignment = 8

// DefaultSize is the amount of chip RAM in a standard machine
const DefaultSize = 0x80000

type block struct {
	addr uint32
	size uint32
}

type ChipRAM struct {
	label string
	data  []uint8

	// free list is kept sorted by address so that neighbouring blocks can be
	// joined when memory is freed
	free []block

	// allocations that have not yet been freed. indexed by address
	allocated map[uint32]uint32
}

func Create(label string, size int) *ChipRAM {
	r := &ChipRAM{
		label:     label,
		data:      make([]uint8, size),
		allocated: make(map[uint32]uint32),
	}
	r.free = []block{{addr: allocBase, size: uint32(size - allocBase)}}
	return r
}

// Reset the contents of chip RAM. allocations are not affected
func (r *ChipRAM) Reset(random bool) {
	if random {
		for i := range len(r.data) {
			r.data[i] = uint8(rand.IntN(255))
		}
	} else {
		clear(r.data)
	}
}

func (r *ChipRAM) Label() string {
	return r.label
}

func (r *ChipRAM) String() string {
	return fmt.Sprintf("%s: %d bytes, %d free, %d allocations", r.label, len(r.data), r.Available(), len(r.allocated))
}

// Available returns the number of unallocated bytes. the memory may be
// fragmented so an allocation of this size is not guaranteed to succeed
func (r *ChipRAM) Available() int {
	var n int
	for _, b := range r.free {
		n += int(b.size)
	}
	return n
}

// AllocMem reserves size bytes of chip RAM and returns the address of the
// reserved area. if clear is true the area is zeroed
func (r *ChipRAM) AllocMem(size int, clear bool) (uint32, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: allocation of %d bytes", ErrOutOfChipMem, size)
	}
	sz := (uint32(size) + alignment - 1) &^ (alignment - 1)

	for i, b := range r.free {
		if b.size < sz {
			continue
		}

		addr := b.addr
		if b.size == sz {
			r.free = slices.Delete(r.free, i, i+1)
		} else {
			r.free[i].addr += sz
			r.free[i].size -= sz
		}
		r.allocated[addr] = sz

		if clear {
			for j := range sz {
				r.data[addr+j] = 0
			}
		}
		return addr, nil
	}

	return 0, fmt.Errorf("%w: allocation of %d bytes (%d available)", ErrOutOfChipMem, size, r.Available())
}

// FreeMem releases memory previously reserved with AllocMem(). the size
// must match the size of the original request
func (r *ChipRAM) FreeMem(addr uint32, size int) error {
	sz, ok := r.allocated[addr]
	if !ok {
		return fmt.Errorf("%w: %#06x", ErrFree, addr)
	}
	if (uint32(size)+alignment-1)&^(alignment-1) != sz {
		return fmt.Errorf("%w: %#06x freed with size %d", ErrFree, addr, size)
	}
	delete(r.allocated, addr)

	i, _ := slices.BinarySearchFunc(r.free, addr, func(b block, a uint32) int {
		if b.addr < a {
			return -1
		}
		if b.addr > a {
			return 1
		}
		return 0
	})
	r.free = slices.Insert(r.free, i, block{addr: addr, size: sz})

	// join with following block
	if i+1 < len(r.free) && r.free[i].addr+r.free[i].size == r.free[i+1].addr {
		r.free[i].size += r.free[i+1].size
		r.free = slices.Delete(r.free, i+1, i+2)
	}

	// join with preceding block
	if i > 0 && r.free[i-1].addr+r.free[i-1].size == r.free[i].addr {
		r.free[i-1].size += r.free[i].size
		r.free = slices.Delete(r.free, i, i+1)
	}

	return nil
}

func (r *ChipRAM) check(addr uint32, size int) error {
	if int(addr)+size > len(r.data) {
		return fmt.Errorf("%w: %#06x", ErrAddress, addr)
	}
	return nil
}

func (r *ChipRAM) Read(addr uint32) (uint8, error) {
	if err := r.check(addr, 1); err != nil {
		return 0, err
	}
	return r.data[addr], nil
}

func (r *ChipRAM) Write(addr uint32, data uint8) error {
	if err := r.check(addr, 1); err != nil {
		return err
	}
	r.data[addr] = data
	return nil
}

// ReadWord returns the big-endian word at the address. the chipset only ever
// accesses memory a word at a time
func (r *ChipRAM) ReadWord(addr uint32) (uint16, error) {
	if err := r.check(addr, 2); err != nil {
		return 0, err
	}
	return (uint16(r.data[addr]) << 8) | uint16(r.data[addr+1]), nil
}

// WriteWord stores a big-endian word at the address
func (r *ChipRAM) WriteWord(addr uint32, data uint16) error {
	if err := r.check(addr, 2); err != nil {
		return err
	}
	r.data[addr] = uint8(data >> 8)
	r.data[addr+1] = uint8(data)
	return nil
}

// Slice returns the area of chip RAM as a byte slice. writes to the slice are
// writes to chip RAM
func (r *ChipRAM) Slice(addr uint32, size int) ([]uint8, error) {
	if err := r.check(addr, size); err != nil {
		return nil, err
	}
	return r.data[addr : int(addr)+size], nil
}
