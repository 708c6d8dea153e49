package hal

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

func TestHostLoggerWritesLines(t *testing.T) {
	var out bytes.Buffer
	h := newHost(&out, time.Now)

	h.Logger().WriteLineString("hello")
	h.Logger().WriteLineBytes([]byte("world"))

	if got, want := out.String(), "hello\nworld\n"; got != want {
		t.Fatalf("log output = %q, want %q", got, want)
	}
}

func TestHostLoggerDrawsOnConsole(t *testing.T) {
	var out bytes.Buffer
	h := newHost(&out, time.Now)

	blank := make([]byte, VideoMemoryBytes*4)
	h.vga.console.snapshotRGBA(blank)

	h.Logger().WriteLineString("HELLO")

	drawn := make([]byte, VideoMemoryBytes*4)
	h.vga.console.snapshotRGBA(drawn)
	if bytes.Equal(blank, drawn) {
		t.Fatal("expected console pixels to change after a log line")
	}
}

func TestHostMemoryBudget(t *testing.T) {
	h := newHost(nil, time.Now)
	buf, err := h.Memory().Alloc(VideoMemoryBytes)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	defer h.Memory().Free(buf)

	if _, err := h.Memory().Alloc(ConventionalMemoryBytes); !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("expected ErrOutOfMemory, got %v", err)
	}
}

func TestHostDisplayStartsInTextMode(t *testing.T) {
	h := New()
	if got := h.Display().Mode(); got != ModeText {
		t.Fatalf("Mode = %v, want text", got)
	}
}
