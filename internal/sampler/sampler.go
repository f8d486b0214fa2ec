package sampler

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dm/cpugraph/internal/model"
)

// sampleChanBuffer bounds the worker→UI channel. Publishing is
// fire-and-forget: a full buffer drops the sample instead of blocking the
// sampling loop on a slow consumer.
const sampleChanBuffer = 64

// MetricFunc reads one instantaneous metric value. The production source is
// CPUPercent; tests inject their own.
type MetricFunc func() (float64, error)

// Sampler measures a metric at a fixed interval on its own goroutine and
// publishes timestamped samples on a bounded channel. The channel is the only
// thing shared with the consumer; it is closed when the loop exits, so no
// sample is ever delivered after Stop has returned.
type Sampler struct {
	metric   MetricFunc
	interval time.Duration

	out      chan model.Sample
	stop     chan struct{}
	stopOnce sync.Once
	g        errgroup.Group
}

// New creates a Sampler that reads metric every interval. The metric must be
// non-nil and the interval positive.
func New(metric MetricFunc, interval time.Duration) (*Sampler, error) {
	if metric == nil {
		return nil, fmt.Errorf("sampler: metric source is required")
	}
	if interval <= 0 {
		return nil, fmt.Errorf("sampler: interval must be positive, got %v", interval)
	}
	return &Sampler{
		metric:   metric,
		interval: interval,
		out:      make(chan model.Sample, sampleChanBuffer),
		stop:     make(chan struct{}),
	}, nil
}

// Samples returns the channel samples are published on. It is closed when the
// sampling loop exits, whether by Stop or by a metric-read failure.
func (s *Sampler) Samples() <-chan model.Sample {
	return s.out
}

// Interval returns the configured sampling interval.
func (s *Sampler) Interval() time.Duration {
	return s.interval
}

// Start launches the sampling loop. Call Stop to shut it down.
func (s *Sampler) Start() {
	s.g.Go(s.run)
}

// Stop signals the loop to exit and waits until its goroutine has fully
// terminated. At most one interval plus one metric read passes before the
// loop observes the signal. Returns the loop's terminal error, if any.
func (s *Sampler) Stop() error {
	s.stopOnce.Do(func() { close(s.stop) })
	return s.g.Wait()
}

// run is the sampling loop. A metric-read failure terminates the loop but not
// the host process; callers wanting resilience must wrap their MetricFunc.
func (s *Sampler) run() error {
	defer close(s.out)

	for {
		select {
		case <-s.stop:
			return nil
		default:
		}

		value, err := s.metric()
		if err != nil {
			return fmt.Errorf("metric read: %w", err)
		}
		s.publish(model.Sample{Timestamp: time.Now(), Value: value})

		select {
		case <-s.stop:
			return nil
		case <-time.After(s.interval):
		}
	}
}

// publish sends without blocking; if the consumer has fallen behind by a full
// buffer, the sample is dropped.
func (s *Sampler) publish(sample model.Sample) {
	select {
	case s.out <- sample:
	default:
	}
}
