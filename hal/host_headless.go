package hal

import (
	"context"
	"os"
	"time"
)

// RunHeadless runs prog on a display that is not attached to any output.
// The display still keeps mode 13h timing, so prog is paced like on a monitor.
// It returns prog's error, or ctx.Err() if ctx is done first.
func RunHeadless(ctx context.Context, prog func(HAL) error) error {
	h := newHost(os.Stdout, time.Now)

	done := make(chan error, 1)
	go func() {
		done <- prog(h)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}
