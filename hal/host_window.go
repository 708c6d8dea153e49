//go:build cgo

package hal

import (
	"errors"
	"os"
	"time"

	"starfield/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrWindowClosed is returned when the window closes before the program finishes.
var ErrWindowClosed = errors.New("window closed")

// lingerTicks keeps the window open on the text screen after the program ends.
const lingerTicks = 2 * RefreshHz

// RunWindow opens a desktop window that scans out the display and runs prog
// alongside it. It blocks until prog has finished and the window is closed.
func RunWindow(prog func(HAL) error) error {
	h := newHost(os.Stdout, time.Now)

	g := &hostGame{
		h:    h,
		done: make(chan error, 1),
		pix:  make([]byte, VideoMemoryBytes*4),
	}
	go func() {
		g.done <- prog(h)
	}()

	ebiten.SetWindowTitle("Starfield (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(GraphicsWidth*3, GraphicsHeight*3)
	ebiten.SetTPS(RefreshHz)
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	if !g.finished {
		return ErrWindowClosed
	}
	return g.err
}

type hostGame struct {
	h      *hostHAL
	img    *ebiten.Image
	pix    []byte
	done   chan error
	err    error
	linger int

	finished bool
}

func (g *hostGame) Update() error {
	if !g.finished {
		select {
		case err := <-g.done:
			g.finished = true
			g.err = err
		default:
			return nil
		}
	}
	g.linger++
	if g.linger >= lingerTicks {
		return ebiten.Termination
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(GraphicsWidth, GraphicsHeight)
	}
	g.h.vga.snapshotRGBA(g.pix)
	g.img.WritePixels(g.pix)
	screen.DrawImage(g.img, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return GraphicsWidth, GraphicsHeight
}
