package starfield

import (
	"math/rand/v2"

	"starfield/hal"
)

// fakeDisplay flips its retrace bit on every poll and records everything else.
type fakeDisplay struct {
	mode      hal.Mode
	modes     []hal.Mode
	retrace   bool
	polls     int
	transfers int
	last      []byte
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{mode: hal.ModeText}
}

func (d *fakeDisplay) SetMode(m hal.Mode) {
	d.mode = m
	d.modes = append(d.modes, m)
}

func (d *fakeDisplay) Mode() hal.Mode { return d.mode }

func (d *fakeDisplay) Retrace() bool {
	d.polls++
	d.retrace = !d.retrace
	return d.retrace
}

func (d *fakeDisplay) BlockTransfer(src []byte) {
	d.transfers++
	d.last = append(d.last[:0], src...)
}

// countingMemory records every allocation request.
type countingMemory struct {
	*hal.Arena
	requests []int
}

func newCountingMemory(limit int) *countingMemory {
	return &countingMemory{Arena: hal.NewArena(limit)}
}

func (m *countingMemory) Alloc(size int) ([]byte, error) {
	m.requests = append(m.requests, size)
	return m.Arena.Alloc(size)
}

type lineLog struct {
	lines []string
}

func (l *lineLog) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *lineLog) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
