// Package config provides TOML-based configuration for hostfetch.
package config

import (
	"fmt"
	"time"

	"gitlab.com/tinyland/lab/hostfetch/pkg/applog"
	"gitlab.com/tinyland/lab/hostfetch/pkg/sysinfo"
)

// Config is the root of config.toml.
type Config struct {
	General GeneralConfig `toml:"general"`
	Display DisplayConfig `toml:"display"`
	Probes  ProbesConfig  `toml:"probes"`
	Watch   WatchConfig   `toml:"watch"`
}

// GeneralConfig holds logging settings.
type GeneralConfig struct {
	LogLevel string `toml:"log_level"` // debug, info, warn, error; default error
	LogFile  string `toml:"log_file"`
}

// DisplayConfig controls how the report is rendered.
type DisplayConfig struct {
	// Distro forces the emblem and OS tag instead of detecting them.
	Distro      string `toml:"distro"`
	Percent     bool   `toml:"percent"`
	NoColor     bool   `toml:"no_color"`
	ShowNetwork bool   `toml:"show_network"`
}

// ProbesConfig gates and parameterizes individual probes.
type ProbesConfig struct {
	ShowDisk       bool     `toml:"show_disk"`
	DiskPath       string   `toml:"disk_path"`
	ShowTemp       bool     `toml:"show_temp"`
	TempSensor     string   `toml:"temp_sensor"`
	CommandTimeout Duration `toml:"command_timeout"`
}

// WatchConfig controls the refresh loop.
type WatchConfig struct {
	Interval Duration `toml:"interval"`
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := applog.ParseLevel(c.General.LogLevel); err != nil {
		return fmt.Errorf("general.log_level: %w", err)
	}
	if c.General.LogFile == "" {
		return fmt.Errorf("general.log_file: must not be empty")
	}
	if err := c.Probes.CommandTimeout.require("probes.command_timeout"); err != nil {
		return err
	}
	if err := c.Watch.Interval.require("watch.interval"); err != nil {
		return err
	}
	if c.Probes.DiskPath == "" {
		return fmt.Errorf("probes.disk_path: must not be empty")
	}
	return nil
}

// ProbeOptions converts the configuration into probe set options.
func (c *Config) ProbeOptions() sysinfo.Options {
	return sysinfo.Options{
		PercentMode:    c.Display.Percent,
		ShowDisk:       c.Probes.ShowDisk,
		DiskPath:       c.Probes.DiskPath,
		ShowTemp:       c.Probes.ShowTemp,
		TempSensor:     c.Probes.TempSensor,
		Distro:         c.Display.Distro,
		CommandTimeout: c.Probes.CommandTimeout.Duration,
	}
}

// RefreshInterval is the watch-mode refresh period.
func (c *Config) RefreshInterval() time.Duration {
	return c.Watch.Interval.Duration
}
