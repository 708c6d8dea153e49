package starfield

import (
	"fmt"

	"starfield/hal"
)

// Surface is the off-screen frame: one palette index per pixel, row major.
type Surface struct {
	mem    hal.Memory
	buf    []byte
	width  int
	height int
}

// NewSurface allocates a screen sized surface from mem.
func NewSurface(mem hal.Memory) (*Surface, error) {
	size := ScreenWidth * ScreenHeight
	buf, err := mem.Alloc(size)
	if err != nil {
		return nil, fmt.Errorf("%w: double buffer (%d bytes): %w", ErrAllocation, size, err)
	}
	if len(buf) < size {
		mem.Free(buf)
		return nil, fmt.Errorf("%w: double buffer: got %d of %d bytes", ErrAllocation, len(buf), size)
	}
	return &Surface{mem: mem, buf: buf[:size], width: ScreenWidth, height: ScreenHeight}, nil
}

func (s *Surface) Width() int  { return s.width }
func (s *Surface) Height() int { return s.height }

// Bytes exposes the frame for presenting. Nil after Release.
func (s *Surface) Bytes() []byte { return s.buf }

// Clear sets every pixel to c.
func (s *Surface) Clear(c uint8) {
	for i := range s.buf {
		s.buf[i] = c
	}
}

// Contains reports whether (x, y) lies on the surface.
func (s *Surface) Contains(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Plot sets pixel (x, y) to c. Off-surface coordinates are ignored.
func (s *Surface) Plot(x, y int, c uint8) {
	if !s.Contains(x, y) || s.buf == nil {
		return
	}
	s.buf[x+y*s.width] = c
}

// At returns pixel (x, y). ok is false off surface.
func (s *Surface) At(x, y int) (c uint8, ok bool) {
	if !s.Contains(x, y) || s.buf == nil {
		return 0, false
	}
	return s.buf[x+y*s.width], true
}

// Release returns the frame to memory.
func (s *Surface) Release() {
	if s.buf == nil {
		return
	}
	s.mem.Free(s.buf)
	s.buf = nil
}
