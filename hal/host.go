package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type hostHAL struct {
	logger *hostLogger
	vga    *vga
	disp   Display
	mem    *Arena
	timer  *hostTimer
}

// New returns a host HAL whose display is not attached to any output.
func New() HAL {
	return newHost(os.Stdout, time.Now)
}

func newHost(w io.Writer, now func() time.Time) *hostHAL {
	v := newVGA(now)
	return &hostHAL{
		logger: &hostLogger{w: w, console: v.console},
		vga:    v,
		disp:   v,
		mem:    NewArena(ConventionalMemoryBytes),
		timer:  newHostTimer(now),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return h.disp }
func (h *hostHAL) Memory() Memory   { return h.mem }
func (h *hostHAL) Timer() Timer     { return h.timer }

// hostLogger writes to w and echoes every line on the text console.
type hostLogger struct {
	mu      sync.Mutex
	w       io.Writer
	console *console
}

func (l *hostLogger) WriteLineString(s string) {
	l.WriteLineBytes([]byte(s))
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.w != nil {
		fmt.Fprintf(l.w, "%s\n", b)
	}
	if l.console != nil {
		l.console.WriteLine(b)
	}
}
