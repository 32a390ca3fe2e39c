package sysinfo

import (
	"context"
	"fmt"
)

// Uptime returns the time since boot formatted by FormatUptime, or Unknown.
func (p *Prober) Uptime(ctx context.Context) string {
	boot, err := p.sensors.BootTime(ctx)
	if err != nil {
		p.probeFailed("uptime", err)
		return Unknown
	}
	now := p.now().Unix()
	if now < 0 || uint64(now) < boot {
		return FormatUptime(0)
	}
	return FormatUptime(uint64(now) - boot)
}

// FormatUptime renders elapsed seconds as "{d}d {h}h {m}m" when at least a
// day has passed, otherwise "{h}h {m}m {s}s". Components are truncated.
func FormatUptime(seconds uint64) string {
	days := seconds / 86400
	seconds %= 86400
	hours := seconds / 3600
	seconds %= 3600
	minutes := seconds / 60
	seconds %= 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}
