package starfield

import (
	"fmt"
	"math/rand/v2"

	"starfield/hal"
)

// State is the frame loop lifecycle.
type State uint8

const (
	StateUninitialized State = iota
	StateReady
	StateRunning
	StateDone
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Loop renders TotalFrames frames of NumStars stars.
//
// It owns the surface and the pool from Init until the end of Run.
type Loop struct {
	disp hal.Display
	mem  hal.Memory
	log  hal.Logger
	rng  *rand.Rand

	state     State
	frame     int
	surface   *Surface
	pool      *Pool
	presenter *Presenter
	stats     Stats
}

// NewLoop returns an uninitialized loop. log may be nil.
func NewLoop(disp hal.Display, mem hal.Memory, log hal.Logger, rng *rand.Rand) *Loop {
	return &Loop{
		disp:      disp,
		mem:       mem,
		log:       log,
		rng:       rng,
		presenter: NewPresenter(disp),
		stats:     newStats(TotalFrames),
	}
}

// Init allocates the surface, then the pool. On failure nothing stays
// allocated and the display is left alone.
func (l *Loop) Init() error {
	if l.state != StateUninitialized {
		return fmt.Errorf("init: loop is %s", l.state)
	}

	surface, err := NewSurface(l.mem)
	if err != nil {
		l.logf("Not enough memory for double buffer: %v", err)
		return err
	}
	pool, err := NewPool(l.mem, NumStars, l.rng)
	if err != nil {
		surface.Release()
		l.logf("Not enough memory for stars: %v", err)
		return err
	}

	l.surface = surface
	l.pool = pool
	l.state = StateReady
	return nil
}

// Run switches to graphics mode, renders every frame, releases the
// buffers and restores text mode.
func (l *Loop) Run() error {
	if l.state != StateReady {
		return ErrNotReady
	}

	l.disp.SetMode(hal.ModeGraphics)
	l.state = StateRunning
	for l.frame < TotalFrames {
		l.step()
	}

	l.surface.Release()
	l.pool.Release()
	l.disp.SetMode(hal.ModeText)
	l.state = StateDone

	l.logf("starfield: %s", l.stats.Summary())
	return nil
}

func (l *Loop) step() {
	l.surface.Clear(ClearColor)

	visible, respawned := 0, 0
	l.pool.Each(func(_ int, s *Star) {
		if x, y, ok := Project(*s); ok {
			if l.surface.Contains(x, y) {
				visible++
			}
			l.surface.Plot(x, y, StarColor)
		} else {
			l.pool.Reset(s)
			respawned++
		}
		s.Advance()
	})

	l.presenter.Present(l.surface)
	l.stats.record(visible, respawned)
	l.frame++
}

func (l *Loop) State() State { return l.state }

// Frame returns how many frames have been rendered.
func (l *Loop) Frame() int { return l.frame }

func (l *Loop) Presents() int { return l.presenter.Presents() }

func (l *Loop) Stats() Summary { return l.stats.Summary() }

func (l *Loop) logf(format string, args ...any) {
	if l.log == nil {
		return
	}
	l.log.WriteLineString(fmt.Sprintf(format, args...))
}
