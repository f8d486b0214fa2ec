package model

import "time"

// Sample is a single timestamped reading of the monitored metric.
type Sample struct {
	Timestamp time.Time
	Value     float64
}
