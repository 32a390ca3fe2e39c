package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const appName = "hostfetch"

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/hostfetch/config.toml
//  2. ~/.config/hostfetch/config.toml
//
// If no file exists, returns DefaultConfig().
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path. A missing
// file yields the defaults.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader reads configuration from an io.Reader. Keys absent from
// the input keep their default values.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()

	return &Config{
		General: GeneralConfig{
			LogLevel: "error",
			LogFile:  filepath.Join(Dir(home), appName+".log"),
		},
		Display: DisplayConfig{
			ShowNetwork: true,
		},
		Probes: ProbesConfig{
			ShowDisk:       true,
			DiskPath:       "/",
			TempSensor:     "coretemp",
			CommandTimeout: Duration{2 * time.Second},
		},
		Watch: WatchConfig{
			Interval: Duration{2 * time.Second},
		},
	}
}

// Dir returns the per-user hostfetch configuration directory.
func Dir(home string) string {
	return filepath.Join(xdgConfigHome(home), appName)
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HOSTFETCH_DISTRO"); v != "" {
		cfg.Display.Distro = v
	}
	if v := os.Getenv("HOSTFETCH_LOG_LEVEL"); v != "" {
		cfg.General.LogLevel = v
	}
	// https://no-color.org: any non-empty value disables color.
	if os.Getenv("NO_COLOR") != "" || os.Getenv("HOSTFETCH_NO_COLOR") != "" {
		cfg.Display.NoColor = true
	}
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, appName, "config.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, appName, "config.toml"))
	}

	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}
