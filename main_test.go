package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/hostfetch/pkg/applog"
	"gitlab.com/tinyland/lab/hostfetch/pkg/config"
	"gitlab.com/tinyland/lab/hostfetch/pkg/logo"
)

func TestApplyFlagsOnlyChanged(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Display.Percent = true
	cfg.Probes.DiskPath = "/srv"

	var f cliFlags
	fs := newFlagSet(&f)
	if err := fs.Parse([]string{"--distro", "arch", "--no-disk", "--interval", "5s"}); err != nil {
		t.Fatal(err)
	}
	applyFlags(cfg, &f, fs)

	if cfg.Display.Distro != "arch" {
		t.Errorf("Distro = %q, want arch", cfg.Display.Distro)
	}
	if cfg.Probes.ShowDisk {
		t.Error("--no-disk did not disable the disk probe")
	}
	if cfg.RefreshInterval() != 5*time.Second {
		t.Errorf("interval = %v, want 5s", cfg.RefreshInterval())
	}
	// Unset flags must not clobber file values with their defaults.
	if !cfg.Display.Percent {
		t.Error("unset --percent overrode config")
	}
	if cfg.Probes.DiskPath != "/srv" {
		t.Errorf("unset --disk-path overrode config: %q", cfg.Probes.DiskPath)
	}
}

func TestApplyFlagsVerbose(t *testing.T) {
	cfg := config.DefaultConfig()
	var f cliFlags
	fs := newFlagSet(&f)
	if err := fs.Parse([]string{"-v"}); err != nil {
		t.Fatal(err)
	}
	applyFlags(cfg, &f, fs)
	if cfg.General.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.General.LogLevel)
	}
}

func TestApplyFlagsZeroIntervalFailsValidation(t *testing.T) {
	cfg := config.DefaultConfig()
	var f cliFlags
	fs := newFlagSet(&f)
	if err := fs.Parse([]string{"--interval", "0s"}); err != nil {
		t.Fatal(err)
	}
	applyFlags(cfg, &f, fs)
	if err := cfg.Validate(); err == nil {
		t.Error("zero interval passed validation")
	}
}

func TestListDistros(t *testing.T) {
	var buf bytes.Buffer
	listDistros(&buf)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != len(logo.Tags()) {
		t.Fatalf("listed %d distros, want %d", len(lines), len(logo.Tags()))
	}
	if !strings.Contains(buf.String(), "Arch Linux") {
		t.Errorf("output missing Arch Linux:\n%s", buf.String())
	}
}

func TestWatchCancelled(t *testing.T) {
	if !watchCancelled(fmt.Errorf("run: %w", tea.ErrProgramKilled)) {
		t.Error("ErrProgramKilled should count as cancellation")
	}
	if watchCancelled(errors.New("tty gone")) {
		t.Error("unrelated error treated as cancellation")
	}
}

func TestCurrentUser(t *testing.T) {
	t.Setenv("USER", "")
	t.Setenv("LOGNAME", "jo")
	if got := currentUser(); got != "jo" {
		t.Errorf("currentUser() = %q, want jo", got)
	}
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestDefaultLogLevelKeepsOnlyErrors(t *testing.T) {
	cfg := config.DefaultConfig()
	path := filepath.Join(t.TempDir(), "hostfetch.log")

	l, err := applog.Open(path, cfg.General.LogLevel)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("report exported", "path", "out.json")
	l.Warn("ignoring unknown distro override", "distro", "bogus")
	l.Error("network interface enumeration failed", "error", "boom")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}

	out := readLog(t, path)
	if strings.Contains(out, "level=INFO") || strings.Contains(out, "level=WARN") {
		t.Errorf("default level let non-error records into the log:\n%s", out)
	}
	if strings.Count(out, "level=ERROR") != 1 {
		t.Errorf("want exactly one error record:\n%s", out)
	}
}

func TestLogStartupFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "hostfetch.log")
	logStartupFailure(path, "invalid config", errors.New("watch.interval: must be positive"))

	out := readLog(t, path)
	for _, want := range []string{"level=ERROR", `msg="invalid config"`, "watch.interval"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestStartupLogPath(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.General.LogFile = "/tmp/custom.log"
	if got := startupLogPath(cfg); got != "/tmp/custom.log" {
		t.Errorf("startupLogPath = %q, want configured file", got)
	}
	cfg.General.LogFile = ""
	if got, want := startupLogPath(cfg), config.DefaultConfig().General.LogFile; got != want {
		t.Errorf("startupLogPath = %q, want default %q", got, want)
	}
}
