package hal

import "time"

// pitHz is the 8253 PIT input clock; the BIOS tick fires every 65536 cycles.
const pitHz = 1193182

// hostTimer counts BIOS ticks (~18.2 Hz) since local midnight.
type hostTimer struct {
	now func() time.Time
}

func newHostTimer(now func() time.Time) *hostTimer {
	if now == nil {
		now = time.Now
	}
	return &hostTimer{now: now}
}

func (t *hostTimer) LowResTicks() uint16 {
	now := t.now()
	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	us := now.Sub(midnight).Microseconds()
	if us < 0 {
		us = 0
	}
	return uint16(us * pitHz / (65536 * 1_000_000))
}
