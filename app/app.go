package app

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"starfield/hal"
	"starfield/internal/buildinfo"
	"starfield/starfield"
)

// Process exit statuses.
const (
	ExitOK           = 0
	ExitAllocFailure = 1
	ExitFailure      = 2
)

// Run seeds the star generator from the HAL timer, then initializes and
// runs the frame loop on the HAL display.
func Run(h hal.HAL) error {
	defer restoreOnPanic(h)

	seed := h.Timer().LowResTicks()
	logf(h, "starfield %s: seed=%d stars=%d frames=%d", buildinfo.Short(), seed, starfield.NumStars, starfield.TotalFrames)

	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	l := starfield.NewLoop(h.Display(), h.Memory(), h.Logger(), rng)
	if err := l.Init(); err != nil {
		return err
	}
	return l.Run()
}

// ExitCode maps the result of Run to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, starfield.ErrAllocation):
		return ExitAllocFailure
	default:
		return ExitFailure
	}
}

func logf(h hal.HAL, format string, args ...any) {
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf(format, args...))
	}
}
