package starfield

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats accumulates per-frame counters for a run.
type Stats struct {
	visible  []float64
	respawns int
}

func newStats(frames int) Stats {
	return Stats{visible: make([]float64, 0, frames)}
}

func (st *Stats) record(visible, respawned int) {
	st.visible = append(st.visible, float64(visible))
	st.respawns += respawned
}

// Summary describes a finished or partial run.
type Summary struct {
	Frames      int
	MeanVisible float64
	StdVisible  float64
	MinVisible  int
	MaxVisible  int
	Respawns    int
}

func (st *Stats) Summary() Summary {
	sum := Summary{Frames: len(st.visible), Respawns: st.respawns}
	switch len(st.visible) {
	case 0:
		return sum
	case 1:
		sum.MeanVisible = st.visible[0]
	default:
		sum.MeanVisible, sum.StdVisible = stat.MeanStdDev(st.visible, nil)
	}
	sum.MinVisible = int(floats.Min(st.visible))
	sum.MaxVisible = int(floats.Max(st.visible))
	return sum
}

func (s Summary) String() string {
	return fmt.Sprintf("frames=%d visible mean=%.1f sd=%.1f min=%d max=%d respawns=%d",
		s.Frames, s.MeanVisible, s.StdVisible, s.MinVisible, s.MaxVisible, s.Respawns)
}
