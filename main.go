package main

import (
	"fmt"
	"os"

	"github.com/jetsetilly/sparkler/gui"
	guiebiten "github.com/jetsetilly/sparkler/gui/ebiten"
)

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Printf("*** %s\n", err)
		os.Exit(10)
	}

	var endGui chan bool
	var endSparkler chan bool
	var resultSparkler chan error

	// buffered channels. this means we don't have to worry about the gui closing
	// before the emulation and vice versa
	endGui = make(chan bool, 1)
	endSparkler = make(chan bool, 1)
	resultSparkler = make(chan error, 1)

	g := gui.NewGUI()

	go func() {
		resultSparkler <- launch(endSparkler, g, opts)
		endGui <- true
	}()

	// the window must be run from the main goroutine
	errGui := guiebiten.Launch(endGui, g, opts.scale)
	endSparkler <- true

	if errGui != nil {
		fmt.Printf("*** %s\n", errGui)
	}
	if err := <-resultSparkler; err != nil {
		fmt.Printf("*** %s\n", err)
	}
}
