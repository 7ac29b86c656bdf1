package gui

import "strings"

// Key is a logical key. the user interface maps physical keys and buttons onto
// these
type Key int

const (
	KeyHires Key = iota
	KeyInterlace
	KeyColour0Red
	KeyColour0Green
	KeyColour0Blue
	KeyColour1Red
	KeyColour1Green
	KeyColour1Blue
	KeyShift
	KeyPattern1
	KeyPattern2
	KeyPattern3
	KeyPattern4
	KeyPattern5
	KeyPattern6
	KeyPattern7
	KeyPAL
	KeyHelp
	KeyExit

	NumKeys
)

var keyNames = [NumKeys]string{
	"Hires",
	"Interlace",
	"C0Red",
	"C0Green",
	"C0Blue",
	"C1Red",
	"C1Green",
	"C1Blue",
	"Shift",
	"1",
	"2",
	"3",
	"4",
	"5",
	"6",
	"7",
	"PAL",
	"Help",
	"Exit",
}

func (k Key) String() string {
	if k < 0 || k >= NumKeys {
		return "unknown key"
	}
	return keyNames[k]
}

// PatternKey returns the key that selects the numbered pattern. patterns are
// numbered from one
func PatternKey(n int) Key {
	return KeyPattern1 + Key(n-1)
}

// Matrix is the state of every logical key at a single moment
type Matrix uint32

// Pressed returns true if the key is held down
func (m Matrix) Pressed(k Key) bool {
	return m&(1<<uint(k)) != 0
}

// Press returns a copy of the matrix with the keys held down
func (m Matrix) Press(keys ...Key) Matrix {
	for _, k := range keys {
		m |= 1 << uint(k)
	}
	return m
}

func (m Matrix) String() string {
	var s strings.Builder
	for k := range NumKeys {
		if m.Pressed(k) {
			if s.Len() > 0 {
				s.WriteString(" ")
			}
			s.WriteString(k.String())
		}
	}
	if s.Len() == 0 {
		return "none"
	}
	return s.String()
}
