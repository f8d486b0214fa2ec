package tui

import "github.com/charmbracelet/lipgloss"

// Color constants — cpugraph palette.
var (
	colorGreen  = lipgloss.Color("#10b981")
	colorYellow = lipgloss.Color("#f59e0b")
	colorRed    = lipgloss.Color("#ef4444")
	colorGray   = lipgloss.Color("#6b7280")
	colorCyan   = lipgloss.Color("#06b6d4")
	colorWhite  = lipgloss.Color("#f8fafc")
	colorDark   = lipgloss.Color("#1e293b")
)

// StyleHeader — full-width dark header bar.
var StyleHeader = lipgloss.NewStyle().
	Background(colorDark).
	Foreground(colorWhite).
	Padding(0, 1)

// StylePanelTitle — backend name + redraw duration above each graph.
var StylePanelTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorWhite)

// StylePanel — bordered card around each graph.
var StylePanel = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorGray).
	Padding(0, 1)

// Plot accent colors, one per backend.
var (
	styleBraillePlot = lipgloss.NewStyle().Foreground(colorCyan)
	styleBlockPlot   = lipgloss.NewStyle().Foreground(colorGreen)
)

// Utility styles.
var (
	StyleError  = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	StylePaused = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	StyleDim    = lipgloss.NewStyle().Foreground(colorGray)
)
