package gui

import (
	"image"
	"sync"
)

// Image is a completed field sent from the chipset to the GUI
type Image struct {
	Main *image.RGBA

	// ID is a short string identifying the field. the GUI uses it to decide
	// whether the image is new
	ID string
}

// GUI is the channel of communication between the emulation and the user
// interface. the emulation and the user interface run in different goroutines
type GUI struct {
	// images are sent by the chipset at the end of every field. the send
	// is non-blocking so a slow GUI will miss fields rather than slow the
	// emulation
	SetImage chan Image

	keys keyState
}

func NewGUI() *GUI {
	return &GUI{
		SetImage: make(chan Image, 1),
	}
}

// ReadMatrix returns a snapshot of the keys currently held down
func (g *GUI) ReadMatrix() Matrix {
	return g.keys.read()
}

// SetMatrix replaces the current key state. it is called by the user interface
// once per update
func (g *GUI) SetMatrix(m Matrix) {
	g.keys.store(m)
}

type keyState struct {
	crit   sync.Mutex
	matrix Matrix
}

func (k *keyState) read() Matrix {
	k.crit.Lock()
	defer k.crit.Unlock()
	return k.matrix
}

func (k *keyState) store(m Matrix) {
	k.crit.Lock()
	defer k.crit.Unlock()
	k.matrix = m
}
