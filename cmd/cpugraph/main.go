package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dm/cpugraph/internal/sampler"
	"github.com/dm/cpugraph/internal/tui"
)

// validateConfig rejects non-positive sampling intervals and window sizes
// before anything is constructed.
func validateConfig(interval time.Duration, windowSize int) error {
	if interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", interval)
	}
	if windowSize <= 0 {
		return fmt.Errorf("window size must be positive, got %d", windowSize)
	}
	return nil
}

func main() {
	var (
		interval = flag.Duration("interval", 100*time.Millisecond, "sampling interval (e.g. 100ms, 1s)")
		window   = flag.Int("window", 100, "sliding window size in samples")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: cpugraph [--interval 100ms] [--window 100]\n\n")
		fmt.Fprintf(os.Stderr, "Samples CPU utilization on a background goroutine and graphs the\n")
		fmt.Fprintf(os.Stderr, "recent history live in two panels (braille scatter, block columns).\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if args := flag.Args(); len(args) > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected argument %q\n", args[0])
		flag.Usage()
		os.Exit(1)
	}

	if err := validateConfig(*interval, *window); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	smp, err := sampler.New(sampler.CPUPercent, *interval)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	braille, err := tui.NewBrailleGraph(*window)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	blocks, err := tui.NewBlockGraph(*window)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	app := tui.NewApp(smp.Samples(), *interval, braille, blocks)

	smp.Start()
	prog := tea.NewProgram(app, tea.WithAltScreen())
	_, runErr := prog.Run()

	// Signal the worker and wait for its goroutine to exit before the
	// process does; a sample must never fire into a torn-down UI.
	stopErr := smp.Stop()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", runErr)
		os.Exit(1)
	}
	if stopErr != nil {
		fmt.Fprintf(os.Stderr, "error: sampler: %v\n", stopErr)
		os.Exit(1)
	}
}
