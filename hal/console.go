package hal

import (
	"image"
	"image/color"
	"sync"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

var consoleBG = color.RGBA{A: 0xFF}

// console is the text mode screen: a tinyterm terminal drawing into an RGBA plane.
type console struct {
	mu    sync.Mutex
	plane *textPlane
	term  *tinyterm.Terminal
}

func newConsole(width, height int) *console {
	c := &console{plane: newTextPlane(width, height)}
	c.reset()
	return c
}

func (c *console) reset() {
	_ = c.plane.FillRectangle(0, 0, int16(c.plane.img.Rect.Dx()), int16(c.plane.img.Rect.Dy()), consoleBG)
	c.term = tinyterm.NewTerminal(c.plane)
	c.term.Configure(&tinyterm.Config{
		Font:              &proggy.TinySZ8pt7b,
		FontHeight:        10,
		FontOffset:        6,
		UseSoftwareScroll: true,
	})
}

// Clear blanks the screen and homes the cursor, as a BIOS mode set does.
func (c *console) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
}

func (c *console) WriteLine(b []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = c.term.Write(b)
	_, _ = c.term.Write([]byte{'\n'})
	c.term.Display()
}

// snapshotRGBA copies the plane into dst, which must match its size.
func (c *console) snapshotRGBA(dst []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	copy(dst, c.plane.img.Pix)
}

// textPlane implements drivers.Displayer over an RGBA image.
type textPlane struct {
	img *image.RGBA
}

func newTextPlane(width, height int) *textPlane {
	return &textPlane{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (p *textPlane) Size() (x, y int16) {
	return int16(p.img.Rect.Dx()), int16(p.img.Rect.Dy())
}

func (p *textPlane) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= p.img.Rect.Dx() || iy < 0 || iy >= p.img.Rect.Dy() {
		return
	}
	p.img.SetRGBA(ix, iy, c)
}

func (p *textPlane) Display() error { return nil }

func (p *textPlane) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	w, h := p.img.Rect.Dx(), p.img.Rect.Dy()
	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			p.img.SetRGBA(px, py, c)
		}
	}
	return nil
}

func (p *textPlane) ScrollUp(lines int16, bg color.RGBA) error {
	n := int(lines)
	h := p.img.Rect.Dy()
	if n <= 0 {
		return nil
	}
	if n >= h {
		return p.FillRectangle(0, 0, int16(p.img.Rect.Dx()), int16(h), bg)
	}
	stride := p.img.Stride
	copy(p.img.Pix, p.img.Pix[n*stride:])
	return p.FillRectangle(0, int16(h-n), int16(p.img.Rect.Dx()), int16(n), bg)
}

func (p *textPlane) SetScroll(line int16) {
	_ = line
}

func (p *textPlane) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

var _ drivers.Displayer = (*textPlane)(nil)

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
