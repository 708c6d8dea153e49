package hal

import (
	"sync"
	"time"
)

const (
	// RefreshHz is the mode 13h vertical refresh rate.
	RefreshHz = 70

	// 45 of the 449 scanlines of a 70Hz frame are vertical blank.
	totalScanlines = 449
	blankScanlines = 45
)

// beam derives the retrace status bit from a free-running clock.
type beam struct {
	period time.Duration
	blank  time.Duration
	start  time.Time
	now    func() time.Time
}

func newBeam(hz int, now func() time.Time) beam {
	if hz <= 0 {
		hz = RefreshHz
	}
	if now == nil {
		now = time.Now
	}
	period := time.Second / time.Duration(hz)
	return beam{
		period: period,
		blank:  period * blankScanlines / totalScanlines,
		start:  now(),
		now:    now,
	}
}

// inRetrace reports whether the beam is in the last blankScanlines of a frame.
func (b *beam) inRetrace() bool {
	elapsed := b.now().Sub(b.start)
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed%b.period >= b.period-b.blank
}

// vga is the host display device: video memory, a text console and a beam clock.
type vga struct {
	mu        sync.Mutex
	mode      Mode
	vram      []byte
	palette   Palette
	console   *console
	beam      beam
	transfers uint64
}

func newVGA(now func() time.Time) *vga {
	return &vga{
		mode:    ModeText,
		vram:    make([]byte, VideoMemoryBytes),
		palette: DefaultPalette(),
		console: newConsole(GraphicsWidth, GraphicsHeight),
		beam:    newBeam(RefreshHz, now),
	}
}

// SetMode switches modes and clears the newly selected screen.
func (v *vga) SetMode(m Mode) {
	v.mu.Lock()
	v.mode = m
	for i := range v.vram {
		v.vram[i] = 0
	}
	v.mu.Unlock()

	if m == ModeText {
		v.console.Clear()
	}
}

func (v *vga) Mode() Mode {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.mode
}

func (v *vga) Retrace() bool {
	return v.beam.inRetrace()
}

func (v *vga) BlockTransfer(src []byte) {
	v.mu.Lock()
	defer v.mu.Unlock()
	copy(v.vram, src)
	v.transfers++
}

// Transfers reports how many block transfers reached video memory.
func (v *vga) Transfers() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.transfers
}

// snapshotRGBA renders the current screen into dst (width*height*4 bytes).
func (v *vga) snapshotRGBA(dst []byte) Mode {
	v.mu.Lock()
	mode := v.mode
	if mode == ModeGraphics {
		v.palette.ExpandRGBA(dst, v.vram)
	}
	v.mu.Unlock()

	if mode != ModeGraphics {
		v.console.snapshotRGBA(dst)
	}
	return mode
}

// snapshotIndexed copies video memory into dst.
func (v *vga) snapshotIndexed(dst []byte) {
	v.mu.Lock()
	defer v.mu.Unlock()
	copy(dst, v.vram)
}
