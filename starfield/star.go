// Package starfield simulates stars flying toward the viewer and draws them
// into an off-screen surface that is presented on vertical retrace.
package starfield

import "starfield/hal"

const (
	ScreenWidth  = hal.GraphicsWidth
	ScreenHeight = hal.GraphicsHeight
	HalfWidth    = ScreenWidth >> 1
	HalfHeight   = ScreenHeight >> 1

	// ZMax bounds the depth of a freshly reset star.
	ZMax        = 128
	NumStars    = 512
	TotalFrames = 128

	StarColor  uint8 = 15
	ClearColor uint8 = 0

	// Stars live in a space 32 times wider and taller than the screen,
	// centred on the view axis.
	spreadX = ScreenWidth << 5
	spreadY = ScreenHeight << 5
)

// Star is one particle. X and Y are oversampled lateral offsets, Z is depth.
type Star struct {
	X, Y, Z int16
}

// Advance moves the star one step toward the viewer.
func (s *Star) Advance() {
	s.Z--
}
