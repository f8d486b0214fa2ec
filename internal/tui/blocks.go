package tui

import (
	"strings"
	"time"

	"github.com/dm/cpugraph/internal/format"
	"github.com/dm/cpugraph/internal/model"
)

// blockRunes are the 8-level partial block characters, lowest to highest.
var blockRunes = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// BlockGraph renders the sample window as a column chart built from partial
// block characters. Samples mapping to the same column keep the maximum
// value, so short spikes stay visible.
type BlockGraph struct {
	window        *model.SlidingWindow
	width, height int
	title         string
	frame         string
}

// NewBlockGraph creates a block-backed graph view holding the windowSize most
// recent samples.
func NewBlockGraph(windowSize int) (*BlockGraph, error) {
	w, err := model.NewSlidingWindow(windowSize)
	if err != nil {
		return nil, err
	}
	g := &BlockGraph{
		window: w,
		width:  defaultGraphWidth,
		height: defaultGraphHeight,
	}
	g.Redraw()
	return g, nil
}

// OnSample implements GraphView.
func (g *BlockGraph) OnSample(s model.Sample) {
	g.window.Append(s)
	g.Redraw()
}

// SetSize implements GraphView.
func (g *BlockGraph) SetSize(width, height int) {
	g.width, g.height = clampSize(width, height)
	g.Redraw()
}

// Title implements GraphView.
func (g *BlockGraph) Title() string { return g.title }

// View implements GraphView.
func (g *BlockGraph) View() string { return g.frame }

// Redraw implements GraphView.
func (g *BlockGraph) Redraw() {
	started := time.Now()
	g.frame = g.render(time.Now())
	g.title = "blocks: " + format.Millis(time.Since(started))
}

func (g *BlockGraph) render(now time.Time) string {
	// levels[c] is the filled sub-block count for column c, 0 for no sample.
	levels := make([]int, g.width)

	if samples := g.window.Window(); len(samples) > 0 {
		ser := newSeries(samples, now)
		colMax := make([]float64, g.width)
		occupied := make([]bool, g.width)
		for i := range ser.x {
			c := ser.xCol(ser.x[i], g.width)
			if !occupied[c] || ser.y[i] > colMax[c] {
				colMax[c] = ser.y[i]
				occupied[c] = true
			}
		}
		subLevels := g.height * len(blockRunes)
		for c := range levels {
			if occupied[c] {
				levels[c] = ser.yLevel(colMax[c], subLevels) + 1
			}
		}
	}

	lines := make([]string, g.height)
	for row := 0; row < g.height; row++ {
		rowFromBottom := g.height - 1 - row
		var sb strings.Builder
		for c := 0; c < g.width; c++ {
			full := levels[c] / len(blockRunes)
			rem := levels[c] % len(blockRunes)
			switch {
			case rowFromBottom < full:
				sb.WriteRune('█')
			case rowFromBottom == full && rem > 0:
				sb.WriteRune(blockRunes[rem-1])
			default:
				sb.WriteRune(' ')
			}
		}
		lines[row] = styleBlockPlot.Render(sb.String())
	}
	return strings.Join(lines, "\n")
}
