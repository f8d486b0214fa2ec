package tui

import (
	"strings"
	"time"

	"github.com/dm/cpugraph/internal/format"
	"github.com/dm/cpugraph/internal/model"
)

// Braille cells pack a 2x4 dot matrix, giving the scatter plot twice the
// horizontal and four times the vertical resolution of one terminal cell.
// Unicode braille starts at U+2800 (blank) with one bit per dot.
const brailleBase = '⠀'

// brailleDots maps (subRow, subCol) to the dot's bit offset, subRow 0 at the
// top of the cell.
var brailleDots = [4][2]uint8{
	{0, 3},
	{1, 4},
	{2, 5},
	{6, 7},
}

// BrailleGraph renders the sample window as a high-resolution braille scatter
// plot, one dot per sample.
type BrailleGraph struct {
	window        *model.SlidingWindow
	width, height int
	title         string
	frame         string
}

// NewBrailleGraph creates a braille-backed graph view holding the windowSize
// most recent samples.
func NewBrailleGraph(windowSize int) (*BrailleGraph, error) {
	w, err := model.NewSlidingWindow(windowSize)
	if err != nil {
		return nil, err
	}
	g := &BrailleGraph{
		window: w,
		width:  defaultGraphWidth,
		height: defaultGraphHeight,
	}
	g.Redraw()
	return g, nil
}

// OnSample implements GraphView.
func (g *BrailleGraph) OnSample(s model.Sample) {
	g.window.Append(s)
	g.Redraw()
}

// SetSize implements GraphView.
func (g *BrailleGraph) SetSize(width, height int) {
	g.width, g.height = clampSize(width, height)
	g.Redraw()
}

// Title implements GraphView.
func (g *BrailleGraph) Title() string { return g.title }

// View implements GraphView.
func (g *BrailleGraph) View() string { return g.frame }

// Redraw implements GraphView. The measured duration covers the full
// transform-and-rasterize step and is surfaced through Title.
func (g *BrailleGraph) Redraw() {
	started := time.Now()
	g.frame = g.render(time.Now())
	g.title = "braille: " + format.Millis(time.Since(started))
}

func (g *BrailleGraph) render(now time.Time) string {
	grid := make([][]rune, g.height)
	for i := range grid {
		grid[i] = make([]rune, g.width)
		for j := range grid[i] {
			grid[i][j] = brailleBase
		}
	}

	if samples := g.window.Window(); len(samples) > 0 {
		ser := newSeries(samples, now)
		dotCols := g.width * 2
		dotRows := g.height * 4
		for i := range ser.x {
			dc := ser.xCol(ser.x[i], dotCols)
			dl := ser.yLevel(ser.y[i], dotRows)
			row := g.height - 1 - dl/4
			subRow := 3 - dl%4
			grid[row][dc/2] |= rune(1) << brailleDots[subRow][dc%2]
		}
	}

	lines := make([]string, g.height)
	for i, row := range grid {
		lines[i] = styleBraillePlot.Render(string(row))
	}
	return strings.Join(lines, "\n")
}
