package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dm/cpugraph/internal/format"
	"github.com/dm/cpugraph/internal/model"
)

// App is the root Bubble Tea model. It owns the graph views and drains the
// sampler's channel; every view mutation happens inside Update, so the views
// and their windows only ever see a single writer.
type App struct {
	samples  <-chan model.Sample
	views    []GraphView
	interval time.Duration

	// Sampler state as observed through the channel.
	stopped     bool
	sampleCount int
	lastValue   float64

	// UI state
	paused   bool
	showHelp bool

	// Layout
	width, height int
}

// NewApp creates the coordinator. The sample channel and the views are
// injected; App never constructs or looks up either.
func NewApp(samples <-chan model.Sample, interval time.Duration, views ...GraphView) *App {
	return &App{
		samples:  samples,
		views:    views,
		interval: interval,
	}
}

// Init implements tea.Model. Arms the first wait on the sample channel.
func (app *App) Init() tea.Cmd {
	return waitForSample(app.samples)
}

// Update implements tea.Model — the single state-mutation entry point.
func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		app.width = msg.Width
		app.height = msg.Height
		w, h := app.panelPlotSize()
		for _, v := range app.views {
			v.SetSize(w, h)
		}

	case SampleMsg:
		if !app.paused {
			app.sampleCount++
			app.lastValue = msg.Value
			for _, v := range app.views {
				v.OnSample(model.Sample(msg))
			}
		}
		return app, waitForSample(app.samples)

	case SamplerStoppedMsg:
		// Channel closed: worker stopped or its metric read failed. The last
		// frame stays on screen; no more waits are armed.
		app.stopped = true
		return app, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return app, tea.Quit
		case key.Matches(msg, keys.Pause):
			app.paused = !app.paused
		case key.Matches(msg, keys.Help):
			app.showHelp = !app.showHelp
		}
	}

	return app, nil
}

// View implements tea.Model. Renders header, the two graph panels side by
// side, and the status footer.
func (app *App) View() string {
	panels := make([]string, len(app.views))
	for i, v := range app.views {
		panels[i] = lipgloss.JoinVertical(lipgloss.Left,
			StylePanelTitle.Render(v.Title()),
			StylePanel.Render(v.View()),
		)
	}

	parts := []string{
		StyleHeader.Render("cpugraph — live CPU utilization"),
		lipgloss.JoinHorizontal(lipgloss.Top, panels...),
		app.renderFooter(),
	}
	return strings.Join(parts, "\n")
}

func (app *App) renderFooter() string {
	var segs []string
	segs = append(segs, fmt.Sprintf("samples: %d", app.sampleCount))
	if app.sampleCount > 0 {
		segs = append(segs, "cpu: "+format.Percent(app.lastValue))
	}
	segs = append(segs, fmt.Sprintf("interval: %v", app.interval))
	if app.paused {
		segs = append(segs, StylePaused.Render("PAUSED"))
	}
	if app.stopped {
		segs = append(segs, StyleError.Render("sampler stopped"))
	}
	if app.showHelp {
		segs = append(segs, helpText)
	} else {
		segs = append(segs, StyleDim.Render("? for help"))
	}
	return strings.Join(segs, "  ")
}

// panelPlotSize derives each view's plot area from the terminal size:
// two bordered panels side by side under a header, above a footer.
func (app *App) panelPlotSize() (int, int) {
	n := len(app.views)
	if n == 0 {
		n = 1
	}
	// Each panel spends 4 columns on border+padding and 3 rows on
	// title+border.
	w := app.width/n - 4
	h := app.height - 5
	return clampSize(w, h)
}

// waitForSample returns a tea.Cmd that blocks on the next sample. A closed
// channel maps to SamplerStoppedMsg so the UI outlives a dead worker.
func waitForSample(ch <-chan model.Sample) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return SamplerStoppedMsg{}
		}
		return SampleMsg(s)
	}
}
