package ebiten

import (
	"github.com/jetsetilly/sparkler/gui"
	input "github.com/quasilyte/ebitengine-input"
)

// every logical key in the gui package has a corresponding input action
func action(k gui.Key) input.Action {
	return input.Action(k)
}

var keymap = input.Keymap{
	action(gui.KeyHires):        {input.KeyF1},
	action(gui.KeyInterlace):    {input.KeyF2},
	action(gui.KeyColour0Red):   {input.KeyF3},
	action(gui.KeyColour0Green): {input.KeyF4},
	action(gui.KeyColour0Blue):  {input.KeyF5},
	action(gui.KeyColour1Red):   {input.KeyF8},
	action(gui.KeyColour1Green): {input.KeyF9},
	action(gui.KeyColour1Blue):  {input.KeyF10},
	action(gui.KeyShift):        {input.KeyShift},
	action(gui.KeyPattern1):     {input.Key1},
	action(gui.KeyPattern2):     {input.Key2},
	action(gui.KeyPattern3):     {input.Key3},
	action(gui.KeyPattern4):     {input.Key4},
	action(gui.KeyPattern5):     {input.Key5},
	action(gui.KeyPattern6):     {input.Key6},
	action(gui.KeyPattern7):     {input.Key7},
	action(gui.KeyPAL):          {input.KeySpace},
	action(gui.KeyHelp):         {input.KeyH, input.KeyF12},
	action(gui.KeyExit):         {input.KeyEscape, input.KeyMouseLeft},
}

func (eg *guiEbiten) initialise() {
	eg.inputHandler = eg.inputSystem.NewHandler(uint8(0), keymap)
	eg.started = true
}

// the key matrix is rebuilt from scratch every update and handed to the
// emulation in one piece
func (eg *guiEbiten) input() {
	eg.inputSystem.Update()

	var m gui.Matrix
	for k := gui.Key(0); k < gui.NumKeys; k++ {
		if eg.inputHandler.ActionIsPressed(action(k)) {
			m = m.Press(k)
		}
	}
	eg.g.SetMatrix(m)
}
