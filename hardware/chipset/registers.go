package chipset

import "fmt"

// Register is the offset of a custom chip register from the base of the
// custom chip area
type Register uint16

const (
	DMACONR  Register = 0x002
	VPOSR    Register = 0x004
	VHPOSR   Register = 0x006
	INTENAR  Register = 0x01c
	COP1LCH  Register = 0x080
	COP1LCL  Register = 0x082
	COPJMP1  Register = 0x088
	DIWSTRT  Register = 0x08e
	DIWSTOP  Register = 0x090
	DDFSTRT  Register = 0x092
	DDFSTOP  Register = 0x094
	DMACON   Register = 0x096
	INTENA   Register = 0x09a
	BPL1PTH  Register = 0x0e0
	BPL1PTL  Register = 0x0e2
	BPL2PTH  Register = 0x0e4
	BPL2PTL  Register = 0x0e6
	BPL3PTH  Register = 0x0e8
	BPL3PTL  Register = 0x0ea
	BPL4PTH  Register = 0x0ec
	BPL4PTL  Register = 0x0ee
	BPLCON0  Register = 0x100
	BPL1MOD  Register = 0x108
	BPL2MOD  Register = 0x10a
	COLOR00  Register = 0x180
	COLOR01  Register = 0x182
	COLOR15  Register = 0x19e
	BEAMCON0 Register = 0x1dc
)

// the copper can not write to registers below this offset
const copperDanger Register = 0x040

// NumPlanes is the number of bitplanes supported by the chipset
const NumPlanes = 4

// NumColours is the number of colour registers
const NumColours = 16

// BPLPTH returns the register holding the high word of the address of the
// bitplane. bitplanes are numbered from zero
func BPLPTH(plane int) Register {
	return BPL1PTH + Register(plane*4)
}

// BPLPTL returns the register holding the low word of the address of the
// bitplane. bitplanes are numbered from zero
func BPLPTL(plane int) Register {
	return BPL1PTL + Register(plane*4)
}

// COLOR returns the colour register for the colour index
func COLOR(n int) Register {
	return COLOR00 + Register(n*2)
}

// bits in the DMACON and INTENA registers
const (
	SetClr     = 0x8000
	DMAMaster  = 0x0200
	DMARaster  = 0x0100
	DMACopper  = 0x0080
	DMABlitter = 0x0040
	DMAAll     = 0x01ff
	IntInten   = 0x4000
	IntVertb   = 0x0020
	IntAll     = 0x7fff
)

// bits in the BPLCON0 register
const (
	BplconHires  = 0x8000
	BplconColour = 0x0200
	BplconLace   = 0x0004
)

var registerNames = map[Register]string{
	DMACONR:  "DMACONR",
	VPOSR:    "VPOSR",
	VHPOSR:   "VHPOSR",
	INTENAR:  "INTENAR",
	COP1LCH:  "COP1LCH",
	COP1LCL:  "COP1LCL",
	COPJMP1:  "COPJMP1",
	DIWSTRT:  "DIWSTRT",
	DIWSTOP:  "DIWSTOP",
	DDFSTRT:  "DDFSTRT",
	DDFSTOP:  "DDFSTOP",
	DMACON:   "DMACON",
	INTENA:   "INTENA",
	BPL1PTH:  "BPL1PTH",
	BPL1PTL:  "BPL1PTL",
	BPL2PTH:  "BPL2PTH",
	BPL2PTL:  "BPL2PTL",
	BPL3PTH:  "BPL3PTH",
	BPL3PTL:  "BPL3PTL",
	BPL4PTH:  "BPL4PTH",
	BPL4PTL:  "BPL4PTL",
	BPLCON0:  "BPLCON0",
	BPL1MOD:  "BPL1MOD",
	BPL2MOD:  "BPL2MOD",
	BEAMCON0: "BEAMCON0",
}

func (r Register) String() string {
	if r >= COLOR00 && r <= COLOR15 && r&0x01 == 0 {
		return fmt.Sprintf("COLOR%02d", (r-COLOR00)/2)
	}
	if s, ok := registerNames[r]; ok {
		return s
	}
	return fmt.Sprintf("%#03x", uint16(r))
}
