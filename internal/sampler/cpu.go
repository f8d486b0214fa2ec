package sampler

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
)

// CPUPercent reads the system-wide instantaneous CPU utilization as a
// percentage in [0, 100]. A zero interval makes gopsutil report utilization
// since the previous call instead of blocking to measure.
func CPUPercent() (float64, error) {
	percents, err := cpu.Percent(0, false)
	if err != nil {
		return 0, fmt.Errorf("cpu utilization: %w", err)
	}
	if len(percents) == 0 {
		return 0, fmt.Errorf("cpu utilization: no data")
	}
	return percents[0], nil
}
