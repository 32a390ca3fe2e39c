package sysinfo

import (
	"context"
	"errors"

	"github.com/distatus/battery"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/sensors"
)

// Sensors is the OS resource-usage API the probers read from. Each call
// returns data or an error, never partial garbage. The default
// implementation is backed by gopsutil and distatus/battery.
type Sensors interface {
	BootTime(ctx context.Context) (uint64, error)
	VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error)
	DiskUsage(ctx context.Context, path string) (*disk.UsageStat, error)
	Temperatures(ctx context.Context) ([]sensors.TemperatureStat, error)
	Interfaces(ctx context.Context) (net.InterfaceStatList, error)
	CPUInfo(ctx context.Context) ([]cpu.InfoStat, error)
	HostInfo(ctx context.Context) (*host.InfoStat, error)
	KernelVersion(ctx context.Context) (string, error)
	Batteries(ctx context.Context) ([]BatteryReading, error)
}

// BatteryReading is the normalized state of one battery.
type BatteryReading struct {
	Percent  float64 // 0-100
	Charging bool
}

type gopsutilSensors struct{}

func (gopsutilSensors) BootTime(ctx context.Context) (uint64, error) {
	return host.BootTimeWithContext(ctx)
}

func (gopsutilSensors) VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error) {
	return mem.VirtualMemoryWithContext(ctx)
}

func (gopsutilSensors) DiskUsage(ctx context.Context, path string) (*disk.UsageStat, error) {
	return disk.UsageWithContext(ctx, path)
}

// Temperatures tolerates gopsutil's partial-read warnings as long as some
// readings came back.
func (gopsutilSensors) Temperatures(ctx context.Context) ([]sensors.TemperatureStat, error) {
	temps, err := sensors.TemperaturesWithContext(ctx)
	if err != nil && len(temps) == 0 {
		return nil, err
	}
	return temps, nil
}

func (gopsutilSensors) Interfaces(ctx context.Context) (net.InterfaceStatList, error) {
	return net.InterfacesWithContext(ctx)
}

func (gopsutilSensors) CPUInfo(ctx context.Context) ([]cpu.InfoStat, error) {
	return cpu.InfoWithContext(ctx)
}

func (gopsutilSensors) HostInfo(ctx context.Context) (*host.InfoStat, error) {
	return host.InfoWithContext(ctx)
}

func (gopsutilSensors) KernelVersion(ctx context.Context) (string, error) {
	return host.KernelVersionWithContext(ctx)
}

// Batteries reads every battery the power subsystem exposes. A battery is
// reported only if its current and full-charge readings both succeeded.
func (gopsutilSensors) Batteries(context.Context) ([]BatteryReading, error) {
	bats, err := battery.GetAll()
	var perBattery battery.Errors
	if err != nil && !errors.As(err, &perBattery) {
		return nil, err
	}
	return siBatteryReadings(bats, perBattery), nil
}

// siBatteryReadings converts raw battery state. errs is indexed like bats
// and may be shorter or nil. Entries without a usable charge level are
// skipped.
func siBatteryReadings(bats []*battery.Battery, errs battery.Errors) []BatteryReading {
	var out []BatteryReading
	for i, b := range bats {
		if b == nil || b.Full <= 0 {
			continue
		}
		if i < len(errs) && !siChargeReadable(errs[i]) {
			continue
		}
		out = append(out, BatteryReading{
			Percent:  b.Current / b.Full * 100,
			Charging: b.State.Raw == battery.Charging,
		})
	}
	return out
}

// siChargeReadable reports whether a per-battery error leaves the charge
// fields intact. Only partial errors outside Current and Full qualify.
func siChargeReadable(err error) bool {
	if err == nil {
		return true
	}
	var partial battery.ErrPartial
	if !errors.As(err, &partial) {
		return false
	}
	return partial.Current == nil && partial.Full == nil
}
