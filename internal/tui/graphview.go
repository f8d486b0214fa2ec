package tui

import (
	"time"

	"github.com/dm/cpugraph/internal/model"
)

// Plot area bounds in terminal cells. SetSize clamps to the minimums so a
// shrinking terminal never produces a degenerate grid.
const (
	defaultGraphWidth  = 40
	defaultGraphHeight = 10
	minGraphWidth      = 10
	minGraphHeight     = 3
)

// GraphView is the contract shared by the two graph backends. Each view owns
// its own sliding window; views never reference each other, and only the
// Bubble Tea update loop calls into a view after construction.
type GraphView interface {
	// OnSample appends a sample to the view's window and redraws.
	OnSample(model.Sample)
	// Redraw re-rasterizes the current window against the current wall clock.
	Redraw()
	// SetSize sets the plot area in terminal cells and redraws.
	SetSize(width, height int)
	// Title reports the backend name and the last redraw duration,
	// e.g. "braille: 1.234 ms".
	Title() string
	// View returns the last rasterized frame.
	View() string
}

// series is a sample window transformed into plot space: x is seconds
// relative to now (0 at the right edge, negative to the left), y is the
// sampled value. Both axes rescale to fit the data on every redraw.
type series struct {
	x, y       []float64
	xMin       float64
	yMin, yMax float64
}

// newSeries converts samples to (Δt, value) pairs and computes plot bounds.
func newSeries(samples []model.Sample, now time.Time) series {
	s := series{
		x: make([]float64, len(samples)),
		y: make([]float64, len(samples)),
	}
	for i, sm := range samples {
		dt := sm.Timestamp.Sub(now).Seconds()
		s.x[i] = dt
		s.y[i] = sm.Value
		if i == 0 {
			s.xMin = dt
			s.yMin, s.yMax = sm.Value, sm.Value
			continue
		}
		if dt < s.xMin {
			s.xMin = dt
		}
		if sm.Value < s.yMin {
			s.yMin = sm.Value
		}
		if sm.Value > s.yMax {
			s.yMax = sm.Value
		}
	}
	return s
}

// xCol maps a Δt to a column in [0, cols-1]. Δt = 0 lands on the rightmost
// column; the oldest sample lands on column 0.
func (s series) xCol(dt float64, cols int) int {
	if s.xMin >= 0 {
		return cols - 1
	}
	frac := 1 - dt/s.xMin
	return clampInt(int(frac*float64(cols-1)+0.5), cols-1)
}

// yLevel maps a value to a vertical level in [0, levels-1], counted from the
// bottom. A flat window (all values equal) plots at mid-height.
func (s series) yLevel(v float64, levels int) int {
	if s.yMax <= s.yMin {
		return levels / 2
	}
	frac := (v - s.yMin) / (s.yMax - s.yMin)
	return clampInt(int(frac*float64(levels-1)+0.5), levels-1)
}

func clampInt(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

func clampSize(width, height int) (int, int) {
	if width < minGraphWidth {
		width = minGraphWidth
	}
	if height < minGraphHeight {
		height = minGraphHeight
	}
	return width, height
}
