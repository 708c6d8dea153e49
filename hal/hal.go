package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// ErrOutOfMemory is returned by Memory when the arena cannot satisfy a request.
var ErrOutOfMemory = errors.New("out of memory")

// Mode selects what the display device scans out.
type Mode uint8

const (
	// ModeText is the 80x25 console (BIOS mode 03h).
	ModeText Mode = 0x03
	// ModeGraphics is 320x200 with one palette index per pixel (BIOS mode 13h).
	ModeGraphics Mode = 0x13
)

func (m Mode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModeGraphics:
		return "graphics"
	default:
		return "unknown"
	}
}

const (
	// GraphicsWidth and GraphicsHeight are the mode 13h raster dimensions.
	GraphicsWidth  = 320
	GraphicsHeight = 200
	// VideoMemoryBytes is the size of the mode 13h linear frame.
	VideoMemoryBytes = GraphicsWidth * GraphicsHeight
)

// Display is the output device.
//
// Retrace reports the vertical retrace status bit; callers poll it.
// BlockTransfer copies src into display memory in one step; bytes past
// the end of display memory are ignored.
type Display interface {
	SetMode(m Mode)
	Mode() Mode
	Retrace() bool
	BlockTransfer(src []byte)
}

// Memory hands out flat byte buffers from a fixed arena.
type Memory interface {
	Alloc(size int) ([]byte, error)
	Free(buf []byte)
}

// Timer is a free-running low resolution counter.
//
// It is only meant to be read once, e.g. to seed a generator.
type Timer interface {
	LowResTicks() uint16
}

// HAL provides the only contact point between the renderer and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Memory() Memory
	Timer() Timer
}
