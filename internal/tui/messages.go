package tui

import "github.com/dm/cpugraph/internal/model"

// SampleMsg delivers one sample from the worker to the UI thread.
type SampleMsg model.Sample

// SamplerStoppedMsg signals that the sample channel has closed: the worker
// either failed its metric read or was stopped. The display freezes on the
// last frame.
type SamplerStoppedMsg struct{}
