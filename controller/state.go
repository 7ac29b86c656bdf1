package controller

import (
	"fmt"

	"github.com/jetsetilly/sparkler/display"
	"github.com/jetsetilly/sparkler/gui"
	"github.com/jetsetilly/sparkler/pattern"
)

// State is everything the user can change
type State struct {
	Display  display.Config
	Palette  display.Palette
	ShowHelp bool
}

// Initial returns the state at startup. the display mode and colours are the
// ones most likely to show sampling problems
func Initial(pal bool) State {
	return State{
		Display: display.Config{
			Hires:    true,
			PAL:      pal,
			LineMode: pattern.AlternatingPixels,
		},
		Palette: display.Palette{
			Colours: [2]display.Colour{
				{R: 0x0, G: 0x0, B: 0x0},
				{R: 0xf, G: 0xb, B: 0xf},
			},
		},
		ShowHelp: true,
	}
}

func (s State) String() string {
	return fmt.Sprintf("%s %s help=%v", s.Display, s.Palette, s.ShowHelp)
}

// Action is the work required after a change of state. actions are ordered so
// that a later action includes all the work of an earlier action
type Action int

const (
	Idle Action = iota
	ColourPatchPending
	FullRebuildPending
	Exit
)

func (a Action) String() string {
	switch a {
	case Idle:
		return "idle"
	case ColourPatchPending:
		return "colour patch"
	case FullRebuildPending:
		return "full rebuild"
	case Exit:
		return "exit"
	}
	return "unknown action"
}

var colourKeys = [...]struct {
	key    gui.Key
	colour int
	ch     display.Channel
}{
	{gui.KeyColour1Red, 1, display.Red},
	{gui.KeyColour1Green, 1, display.Green},
	{gui.KeyColour1Blue, 1, display.Blue},
	{gui.KeyColour0Red, 0, display.Red},
	{gui.KeyColour0Green, 0, display.Green},
	{gui.KeyColour0Blue, 0, display.Blue},
}

// Transition returns the new state and the action required by the keys
// currently held down. the state argument is not changed
func Transition(state State, keys gui.Matrix) (State, Action) {
	if keys.Pressed(gui.KeyExit) {
		return state, Exit
	}

	var patch bool
	var rebuild bool

	// colours are increased if shift is held and decreased otherwise. a
	// colour that can't change further does not need the display patching
	for _, c := range colourKeys {
		if !keys.Pressed(c.key) {
			continue // for loop
		}
		var changed bool
		if keys.Pressed(gui.KeyShift) {
			changed = state.Palette.Colours[c.colour].Inc(c.ch)
		} else {
			changed = state.Palette.Colours[c.colour].Dec(c.ch)
		}
		patch = patch || changed
	}

	if keys.Pressed(gui.KeyHires) {
		state.Display.Hires = !state.Display.Hires
		rebuild = true
	}

	if keys.Pressed(gui.KeyInterlace) {
		state.Display.Interlaced = !state.Display.Interlaced
		rebuild = true
	}

	for n := 1; n <= pattern.NumModes; n++ {
		if keys.Pressed(gui.PatternKey(n)) {
			state.Display.LineMode = pattern.LineMode(n)
			rebuild = true
		}
	}

	if keys.Pressed(gui.KeyPAL) {
		state.Display.PAL = !state.Display.PAL
		rebuild = true
	}

	// showing the help text only needs the text to be drawn but hiding it
	// needs the pattern to be redrawn underneath
	if keys.Pressed(gui.KeyHelp) {
		state.ShowHelp = !state.ShowHelp
		if state.ShowHelp {
			patch = true
		} else {
			rebuild = true
		}
	}

	if rebuild {
		return state, FullRebuildPending
	}
	if patch {
		return state, ColourPatchPending
	}
	return state, Idle
}
