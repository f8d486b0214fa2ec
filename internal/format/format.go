package format

import (
	"fmt"
	"time"
)

// Millis formats a duration as milliseconds with three decimal places.
// Example: 1234µs → "1.234 ms". This is the redraw-cost format shown in the
// graph panel titles.
func Millis(d time.Duration) string {
	return fmt.Sprintf("%.3f ms", float64(d.Nanoseconds())/1e6)
}

// Percent formats a utilization percentage with one decimal place.
// Example: 42.35 → "42.4%".
func Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// Seconds formats a time offset in seconds for axis labels.
// Example: -9.97 → "-10s", 0 → "0s".
func Seconds(dt float64) string {
	return fmt.Sprintf("%.0fs", dt)
}
