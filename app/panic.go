package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"starfield/hal"
)

// restoreOnPanic puts the display back in text mode and logs the panic
// before letting it continue. It must be deferred directly.
func restoreOnPanic(h hal.HAL) {
	r := recover()
	if r == nil {
		return
	}

	if d := h.Display(); d != nil && d.Mode() != hal.ModeText {
		d.SetMode(hal.ModeText)
	}
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("starfield panic: %v", r))
		for _, line := range strings.Split(string(debug.Stack()), "\n") {
			if line == "" {
				continue
			}
			l.WriteLineString(line)
		}
	}
	panic(r)
}
