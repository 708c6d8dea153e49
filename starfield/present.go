package starfield

import "starfield/hal"

// Presenter copies finished frames to the display between scans.
type Presenter struct {
	disp     hal.Display
	presents int
}

func NewPresenter(disp hal.Display) *Presenter {
	return &Presenter{disp: disp}
}

// Present waits for the display to leave retrace, then for the next retrace
// to begin, and copies the whole surface across in one transfer.
//
// The wait spins on the status bit and has no timeout.
func (p *Presenter) Present(s *Surface) {
	for p.disp.Retrace() {
	}
	for !p.disp.Retrace() {
	}
	p.disp.BlockTransfer(s.Bytes())
	p.presents++
}

// Presents returns how many frames have been presented.
func (p *Presenter) Presents() int { return p.presents }
