package chipset

import (
	"fmt"
	"strings"
)

type bplcon0 struct {
	hires  bool
	planes int // 0 to 6 but only 4 are supported
	colour bool
	lace   bool
}

func (ctrl *bplcon0) reset() {
	ctrl.hires = false
	ctrl.planes = 0
	ctrl.colour = false
	ctrl.lace = false
}

func (ctrl *bplcon0) write(data uint16) {
	ctrl.hires = data&BplconHires == BplconHires
	ctrl.planes = int((data >> 12) & 0x07)
	ctrl.colour = data&BplconColour == BplconColour
	ctrl.lace = data&BplconLace == BplconLace
}

func (ctrl *bplcon0) value() uint16 {
	v := uint16(ctrl.planes&0x07) << 12
	if ctrl.hires {
		v |= BplconHires
	}
	if ctrl.colour {
		v |= BplconColour
	}
	if ctrl.lace {
		v |= BplconLace
	}
	return v
}

func (ctrl *bplcon0) String() string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("hires=%v ", ctrl.hires))
	s.WriteString(fmt.Sprintf("bpu=%d ", ctrl.planes))
	s.WriteString(fmt.Sprintf("colour=%v ", ctrl.colour))
	s.WriteString(fmt.Sprintf("lace=%v", ctrl.lace))
	return s.String()
}
