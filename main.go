package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"starfield/app"
	"starfield/hal"
)

func main() {
	var headless, tty bool
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.BoolVar(&tty, "tty", false, "Draw into the terminal instead of a window.")
	flag.Parse()

	var err error
	switch {
	case headless:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		err = hal.RunHeadless(ctx, app.Run)
		stop()
	case tty:
		err = hal.RunTerminal(app.Run)
	default:
		err = hal.RunWindow(app.Run)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(app.ExitCode(err))
}
