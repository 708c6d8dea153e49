package hal

import (
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// RunTerminal runs prog with graphics mode drawn into the controlling terminal.
// Each terminal cell shows two vertically stacked pixels using a half block.
func RunTerminal(prog func(HAL) error) error {
	h := newHost(os.Stdout, time.Now)
	d := newTTYDisplay(h.vga, tcell.NewScreen)
	h.disp = d

	err := prog(h)
	d.close()
	if err != nil {
		return err
	}
	return d.initErr()
}

// ttyDisplay mirrors video memory onto a tcell screen while in graphics mode.
// Text mode hands the terminal back.
type ttyDisplay struct {
	*vga

	newScreen func() (tcell.Screen, error)

	mu     sync.Mutex
	screen tcell.Screen
	err    error
	colors [256]tcell.Color
	cells  []byte
	frame  []byte
}

func newTTYDisplay(v *vga, newScreen func() (tcell.Screen, error)) *ttyDisplay {
	d := &ttyDisplay{
		vga:       v,
		newScreen: newScreen,
		frame:     make([]byte, VideoMemoryBytes),
	}
	for i, c := range v.palette {
		d.colors[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return d
}

func (d *ttyDisplay) SetMode(m Mode) {
	d.vga.SetMode(m)

	d.mu.Lock()
	defer d.mu.Unlock()
	switch m {
	case ModeGraphics:
		d.openLocked()
	default:
		d.closeLocked()
	}
}

func (d *ttyDisplay) BlockTransfer(src []byte) {
	d.vga.BlockTransfer(src)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.screen == nil {
		return
	}
	d.vga.snapshotIndexed(d.frame)
	d.drawLocked()
}

func (d *ttyDisplay) openLocked() {
	if d.screen != nil || d.err != nil {
		return
	}
	s, err := d.newScreen()
	if err == nil {
		err = s.Init()
	}
	if err != nil {
		d.err = err
		return
	}
	s.HideCursor()
	s.Clear()
	s.Show()
	d.screen = s
}

func (d *ttyDisplay) closeLocked() {
	if d.screen == nil {
		return
	}
	d.screen.Fini()
	d.screen = nil
}

func (d *ttyDisplay) close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closeLocked()
}

func (d *ttyDisplay) initErr() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}

// drawLocked scales the frame onto the screen. Any lit pixel inside a cell
// half lights that half, so single pixel stars survive the downscale.
func (d *ttyDisplay) drawLocked() {
	cols, rows := d.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	halves := rows * 2
	if need := cols * halves; len(d.cells) != need {
		d.cells = make([]byte, need)
	}
	for i := range d.cells {
		d.cells[i] = 0
	}

	for y := 0; y < GraphicsHeight; y++ {
		ty := y * halves / GraphicsHeight
		row := d.frame[y*GraphicsWidth : (y+1)*GraphicsWidth]
		for x, ix := range row {
			if ix == 0 {
				continue
			}
			d.cells[ty*cols+x*cols/GraphicsWidth] = ix
		}
	}

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := d.cells[(cy*2)*cols+cx]
			bottom := d.cells[(cy*2+1)*cols+cx]
			style := tcell.StyleDefault.Foreground(d.colors[top]).Background(d.colors[bottom])
			d.screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
	d.screen.Show()
}
