package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jetsetilly/sparkler/gui"
	"github.com/jetsetilly/sparkler/version"
	input "github.com/quasilyte/ebitengine-input"
)

type guiEbiten struct {
	g *gui.GUI

	started bool
	endGui  chan bool

	main   *ebiten.Image
	mainID string

	// width/height of incoming image from emulation. not to be confused with window dimensions
	width  int
	height int

	// window is resized to the image dimensions multiplied by scale whenever
	// the image dimensions change
	scale float64

	inputHandler *input.Handler
	inputSystem  input.System
}

func (eg *guiEbiten) Update() error {
	if !eg.started {
		eg.initialise()
	}

	// deal with quit condition
	select {
	case <-eg.endGui:
		return ebiten.Termination
	default:
	}

	// handle user input
	eg.input()

	// retrieve any pending images
	select {
	case img := <-eg.g.SetImage:
		if img.Main != nil {
			if eg.main == nil || eg.main.Bounds() != img.Main.Bounds() {
				eg.width = img.Main.Bounds().Dx()
				eg.height = img.Main.Bounds().Dy()
				eg.main = ebiten.NewImage(eg.width, eg.height)
				ebiten.SetWindowSize(int(float64(eg.width)*eg.scale), int(float64(eg.height)*eg.scale))
			}
			if img.ID != eg.mainID {
				eg.main.WritePixels(img.Main.Pix)
				eg.mainID = img.ID
			}
		}
	default:
	}

	return nil
}

func (eg *guiEbiten) Draw(screen *ebiten.Image) {
	if eg.main != nil {
		var op ebiten.DrawImageOptions
		screen.DrawImage(eg.main, &op)
	}
}

func (eg *guiEbiten) Layout(width, height int) (int, int) {
	if eg.main != nil {
		return eg.width, eg.height
	}
	return width, height
}

// Launch the user interface. must be called from the main goroutine. returns
// when the window is closed or when endGui is signalled
func Launch(endGui chan bool, g *gui.GUI, scale float64) error {
	if scale <= 0 {
		scale = 1
	}

	ebiten.SetWindowTitle(version.Title())
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowPosition(10, 10)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	eg := &guiEbiten{
		endGui: endGui,
		g:      g,
		scale:  scale,
	}

	eg.inputSystem.Init(input.SystemConfig{
		DevicesEnabled: input.AnyDevice,
	})

	return ebiten.RunGame(eg)
}
