package sysinfo

import (
	"context"
	"fmt"
)

// Battery returns "{percent}%" with a " (Charging)" suffix while charging,
// or N/A. Missing hardware and a failed query are not distinguished.
func (p *Prober) Battery(ctx context.Context) string {
	readings, err := p.sensors.Batteries(ctx)
	if err != nil {
		p.probeFailed("battery", err)
		return NA
	}
	if len(readings) == 0 {
		return NA
	}
	return FormatBattery(readings[0])
}

// FormatBattery renders a battery reading. The percentage is truncated to
// a whole number and clamped to 0-100.
func FormatBattery(b BatteryReading) string {
	pct := int(b.Percent)
	switch {
	case pct < 0:
		pct = 0
	case pct > 100:
		pct = 100
	}
	if b.Charging {
		return fmt.Sprintf("%d%% (Charging)", pct)
	}
	return fmt.Sprintf("%d%%", pct)
}
