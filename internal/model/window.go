package model

import "fmt"

// DefaultBufferFactor is the backing-buffer size multiplier used when no
// explicit buffer size is given: bufferSize = DefaultBufferFactor * windowSize.
// Trading memory for rare compactions keeps Append O(1) amortized.
const DefaultBufferFactor = 10

// SlidingWindow gives access to the windowSize most recent samples appended
// to it. The backing buffer is preallocated once and never grows; when it
// fills up, the last windowSize-1 samples are compacted to the front and
// appending continues. Window returns a subslice of the backing buffer, so
// Append never reallocates and Window never copies.
//
// SlidingWindow is not safe for concurrent use. Each graph view owns its own
// window and only the UI update loop touches it.
type SlidingWindow struct {
	data       []Sample
	n          int // number of valid entries in data
	windowSize int
}

// NewSlidingWindow creates a SlidingWindow holding the windowSize most recent
// samples, backed by a buffer of DefaultBufferFactor * windowSize entries.
func NewSlidingWindow(windowSize int) (*SlidingWindow, error) {
	if windowSize <= 0 {
		return nil, fmt.Errorf("sliding window: window size must be positive, got %d", windowSize)
	}
	return NewSlidingWindowBuf(windowSize, DefaultBufferFactor*windowSize)
}

// NewSlidingWindowBuf creates a SlidingWindow with an explicit backing buffer
// size. bufferSize must be at least windowSize.
func NewSlidingWindowBuf(windowSize, bufferSize int) (*SlidingWindow, error) {
	if windowSize <= 0 {
		return nil, fmt.Errorf("sliding window: window size must be positive, got %d", windowSize)
	}
	if bufferSize < windowSize {
		return nil, fmt.Errorf("sliding window: buffer size %d smaller than window size %d", bufferSize, windowSize)
	}
	return &SlidingWindow{
		data:       make([]Sample, bufferSize),
		windowSize: windowSize,
	}, nil
}

// Append stores a new sample. When the backing buffer is full the last
// windowSize-1 samples are first copied to the front of the buffer, which
// happens once every bufferSize-windowSize appends.
func (w *SlidingWindow) Append(s Sample) {
	if w.n == len(w.data) {
		keep := w.windowSize - 1
		copy(w.data[:keep], w.data[w.n-keep:])
		w.n = keep
	}
	w.data[w.n] = s
	w.n++
}

// Window returns the last min(n, windowSize) samples, oldest first, as a view
// over the backing buffer. The slice is valid until the next Append.
func (w *SlidingWindow) Window() []Sample {
	start := w.n - w.windowSize
	if start < 0 {
		start = 0
	}
	return w.data[start:w.n]
}

// Len returns the number of valid entries currently in the backing buffer
// (not capped at the window size).
func (w *SlidingWindow) Len() int {
	return w.n
}

// WindowSize returns the configured window size.
func (w *SlidingWindow) WindowSize() int {
	return w.windowSize
}
