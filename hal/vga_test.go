package hal

import (
	"testing"
	"time"
)

func TestBeamRetraceWindow(t *testing.T) {
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }

	b := newBeam(RefreshHz, clock)
	if b.inRetrace() {
		t.Fatal("expected active display at frame start")
	}

	now = now.Add(b.period - b.blank)
	if !b.inRetrace() {
		t.Fatal("expected retrace at start of blank")
	}

	now = now.Add(b.blank - time.Nanosecond)
	if !b.inRetrace() {
		t.Fatal("expected retrace at end of blank")
	}

	now = now.Add(time.Nanosecond) // next frame
	if b.inRetrace() {
		t.Fatal("expected active display after wrap")
	}
}

func TestBeamBlankIsFractionOfFrame(t *testing.T) {
	b := newBeam(RefreshHz, func() time.Time { return time.Unix(0, 0) })
	if b.blank <= 0 || b.blank >= b.period {
		t.Fatalf("blank = %v, period = %v", b.blank, b.period)
	}
}

func TestVGASetModeClearsVideoMemory(t *testing.T) {
	v := newVGA(nil)
	if v.Mode() != ModeText {
		t.Fatalf("power-on mode = %v, want text", v.Mode())
	}

	v.SetMode(ModeGraphics)
	src := make([]byte, VideoMemoryBytes)
	src[0] = 15
	src[len(src)-1] = 7
	v.BlockTransfer(src)

	got := make([]byte, VideoMemoryBytes)
	v.snapshotIndexed(got)
	if got[0] != 15 || got[len(got)-1] != 7 {
		t.Fatalf("vram not updated: first=%d last=%d", got[0], got[len(got)-1])
	}
	if v.Transfers() != 1 {
		t.Fatalf("Transfers = %d, want 1", v.Transfers())
	}

	v.SetMode(ModeText)
	v.snapshotIndexed(got)
	if got[0] != 0 || got[len(got)-1] != 0 {
		t.Fatal("expected mode set to clear video memory")
	}
}

func TestVGABlockTransferIgnoresOverrun(t *testing.T) {
	v := newVGA(nil)
	v.BlockTransfer(make([]byte, VideoMemoryBytes+16))
	if len(v.vram) != VideoMemoryBytes {
		t.Fatalf("vram grew to %d bytes", len(v.vram))
	}
}

func TestVGASnapshotRGBA(t *testing.T) {
	v := newVGA(nil)
	v.SetMode(ModeGraphics)
	src := make([]byte, VideoMemoryBytes)
	src[1] = 15
	v.BlockTransfer(src)

	dst := make([]byte, VideoMemoryBytes*4)
	if mode := v.snapshotRGBA(dst); mode != ModeGraphics {
		t.Fatalf("mode = %v, want graphics", mode)
	}
	if dst[0] != 0 || dst[4] != 0xFF || dst[5] != 0xFF || dst[6] != 0xFF {
		t.Fatalf("unexpected pixels: %v", dst[:8])
	}
}
