package sysinfo

import (
	"context"
	"fmt"
	"strings"
)

const bytesPerGiB = 1 << 30

// apfsDataVolume holds user data on macOS, where "/" is the sealed system
// volume and reports container-level usage.
const apfsDataVolume = "/System/Volumes/Data"

// Memory reports virtual memory usage, or N/A.
func (p *Prober) Memory(ctx context.Context) string {
	vm, err := p.sensors.VirtualMemory(ctx)
	if err != nil {
		p.probeFailed("memory", err)
		return NA
	}
	return FormatMemory(vm.Used, vm.Total, vm.UsedPercent, p.opts.PercentMode)
}

// Disk reports usage of the configured mount point. When the disk probe is
// disabled it returns N/A without querying anything.
func (p *Prober) Disk(ctx context.Context) string {
	if !p.opts.ShowDisk {
		return NA
	}
	usage, err := p.sensors.DiskUsage(ctx, p.siDiskPath())
	if err != nil {
		p.probeFailed("disk", err)
		return NA
	}
	return FormatDisk(usage.Used, usage.Total, usage.UsedPercent, p.opts.PercentMode)
}

func (p *Prober) siDiskPath() string {
	if p.goos == "darwin" && p.opts.DiskPath == "/" {
		return apfsDataVolume
	}
	return p.opts.DiskPath
}

// Temperature reports the first reading of the configured sensor group in
// degrees Celsius. It is N/A when disabled, when the group is absent, or
// when the sensors cannot be read.
func (p *Prober) Temperature(ctx context.Context) string {
	if !p.opts.ShowTemp {
		return NA
	}
	temps, err := p.sensors.Temperatures(ctx)
	if err != nil {
		p.probeFailed("temperature", err)
		return NA
	}
	for _, t := range temps {
		if strings.HasPrefix(t.SensorKey, p.opts.TempSensor) {
			return FormatTemperature(t.Temperature)
		}
	}
	return NA
}

// FormatMemory renders memory usage as "12.5%" in percent mode or
// "2.0GB/8.0GB" otherwise, with GB meaning 2^30 bytes.
func FormatMemory(used, total uint64, pct float64, percentMode bool) string {
	if percentMode {
		return fmt.Sprintf("%.1f%%", pct)
	}
	return siGiBPair(used, total)
}

// FormatDisk is FormatMemory with the percentage always appended outside
// percent mode: "40.0GB/100.0GB (40.0%)".
func FormatDisk(used, total uint64, pct float64, percentMode bool) string {
	if percentMode {
		return fmt.Sprintf("%.1f%%", pct)
	}
	return fmt.Sprintf("%s (%.1f%%)", siGiBPair(used, total), pct)
}

// FormatTemperature renders a Celsius reading with one decimal.
func FormatTemperature(celsius float64) string {
	return fmt.Sprintf("%.1f°C", celsius)
}

func siGiBPair(used, total uint64) string {
	return fmt.Sprintf("%.1fGB/%.1fGB", float64(used)/bytesPerGiB, float64(total)/bytesPerGiB)
}
