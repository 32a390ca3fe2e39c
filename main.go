// hostfetch prints a snapshot of host attributes next to an ASCII emblem
// for the detected operating system.
//
// Usage:
//
//	hostfetch [flags]
//
// Flags:
//
//	--config string       Path to configuration file (default: ~/.config/hostfetch/config.toml)
//	--distro string       Force the OS emblem instead of detecting it
//	--percent             Show memory and disk as percentages
//	--no-disk             Skip the disk probe
//	--disk-path string    Mount point for the disk probe (default "/")
//	--temp                Probe the CPU temperature sensor
//	--temp-sensor string  Sensor key prefix for the temperature probe (default "coretemp")
//	--no-color            Disable colored output
//	--watch               Refresh the report until interrupted
//	--interval duration   Refresh period for --watch (default 2s)
//	--export string       Also write the report to a .json or .yaml file
//	--list-distros        List the known OS emblems and exit
//	--verbose             Enable debug logging
//	--version             Print version and exit
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"gitlab.com/tinyland/lab/hostfetch/pkg/applog"
	"gitlab.com/tinyland/lab/hostfetch/pkg/config"
	"gitlab.com/tinyland/lab/hostfetch/pkg/export"
	"gitlab.com/tinyland/lab/hostfetch/pkg/logo"
	"gitlab.com/tinyland/lab/hostfetch/pkg/render"
	"gitlab.com/tinyland/lab/hostfetch/pkg/sysinfo"
	"gitlab.com/tinyland/lab/hostfetch/pkg/watch"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

// cliFlags holds the parsed command line.
type cliFlags struct {
	configPath  string
	distro      string
	percent     bool
	noDisk      bool
	diskPath    string
	temp        bool
	tempSensor  string
	noColor     bool
	watch       bool
	interval    time.Duration
	exportPath  string
	listDistros bool
	verbose     bool
	version     bool
}

func newFlagSet(f *cliFlags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("hostfetch", pflag.ContinueOnError)
	fs.StringVar(&f.configPath, "config", "", "Path to configuration file")
	fs.StringVar(&f.distro, "distro", "", "Force the OS emblem instead of detecting it")
	fs.BoolVar(&f.percent, "percent", false, "Show memory and disk as percentages")
	fs.BoolVar(&f.noDisk, "no-disk", false, "Skip the disk probe")
	fs.StringVar(&f.diskPath, "disk-path", "/", "Mount point for the disk probe")
	fs.BoolVar(&f.temp, "temp", false, "Probe the CPU temperature sensor")
	fs.StringVar(&f.tempSensor, "temp-sensor", "coretemp", "Sensor key prefix for the temperature probe")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&f.watch, "watch", false, "Refresh the report until interrupted")
	fs.DurationVar(&f.interval, "interval", 2*time.Second, "Refresh period for --watch")
	fs.StringVar(&f.exportPath, "export", "", "Also write the report to a .json or .yaml file")
	fs.BoolVar(&f.listDistros, "list-distros", false, "List the known OS emblems and exit")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Enable debug logging")
	fs.BoolVar(&f.version, "version", false, "Print version and exit")
	return fs
}

// applyFlags copies explicitly set flags over the file configuration.
func applyFlags(cfg *config.Config, f *cliFlags, fs *pflag.FlagSet) {
	if fs.Changed("distro") {
		cfg.Display.Distro = f.distro
	}
	if fs.Changed("percent") {
		cfg.Display.Percent = f.percent
	}
	if fs.Changed("no-color") {
		cfg.Display.NoColor = f.noColor
	}
	if fs.Changed("no-disk") {
		cfg.Probes.ShowDisk = !f.noDisk
	}
	if fs.Changed("disk-path") {
		cfg.Probes.DiskPath = f.diskPath
	}
	if fs.Changed("temp") {
		cfg.Probes.ShowTemp = f.temp
	}
	if fs.Changed("temp-sensor") {
		cfg.Probes.TempSensor = f.tempSensor
	}
	if fs.Changed("interval") {
		cfg.Watch.Interval = config.Duration{Duration: f.interval}
	}
	if f.verbose {
		cfg.General.LogLevel = "debug"
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

func main() {
	var flags cliFlags
	fs := newFlagSet(&flags)
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if flags.version {
		fmt.Printf("hostfetch %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if flags.listDistros {
		listDistros(os.Stdout)
		os.Exit(0)
	}

	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		logStartupFailure(config.DefaultConfig().General.LogFile, "failed to load config", err)
		os.Exit(1)
	}
	applyFlags(cfg, &flags, fs)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		logStartupFailure(startupLogPath(cfg), "invalid config", err)
		os.Exit(1)
	}

	logger, err := applog.Open(cfg.General.LogFile, cfg.General.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := cfg.ProbeOptions()
	opts.Logger = logger.Logger
	prober := sysinfo.New(opts)

	rendering := render.Options{
		Profile:     render.DetectProfile(os.Stdout, cfg.Display.NoColor),
		Width:       render.Width(os.Stdout),
		ShowNetwork: cfg.Display.ShowNetwork,
		User:        currentUser(),
	}

	if flags.watch {
		logger.Info("starting watch mode", "interval", cfg.RefreshInterval())
		code := runWatch(ctx, prober, rendering, cfg.RefreshInterval(), logger)
		logger.Close()
		stop()
		os.Exit(code)
	}

	report := prober.Collect(ctx)
	fmt.Print(frame(report, rendering))

	if flags.exportPath != "" {
		if err := export.Write(flags.exportPath, report); err != nil {
			logger.Error("export failed", "path", flags.exportPath, "error", err)
			fmt.Fprintf(os.Stderr, "export failed: %v\n", err)
			logger.Close()
			os.Exit(1)
		}
		logger.Info("report exported", "path", flags.exportPath)
	}
}

// startupLogPath is where failures before log initialization go: the
// configured file when set, else the default location.
func startupLogPath(cfg *config.Config) string {
	if cfg.General.LogFile != "" {
		return cfg.General.LogFile
	}
	return config.DefaultConfig().General.LogFile
}

// logStartupFailure appends one error record to the log at path. The
// configured level may itself be invalid, so the record is always written
// at error level.
func logStartupFailure(path, msg string, err error) {
	l, openErr := applog.Open(path, "error")
	if openErr != nil {
		fmt.Fprintf(os.Stderr, "failed to open log: %v\n", openErr)
		return
	}
	defer l.Close()
	l.Error(msg, "error", err)
}

// frame renders one report with its emblem.
func frame(report *sysinfo.HostReport, opts render.Options) string {
	return render.Render(report, logo.Lookup(report.OS), opts) + "\n"
}

// runWatch drives the refresh loop and returns the process exit code.
func runWatch(ctx context.Context, prober *sysinfo.Prober, opts render.Options, interval time.Duration, logger *applog.Logger) int {
	fn := func(ctx context.Context) string {
		return frame(prober.Collect(ctx), opts)
	}

	var err error
	if render.IsTerminal(os.Stdout) {
		err = watch.Run(ctx, interval, fn)
	} else {
		err = watch.RunPlain(ctx, os.Stdout, interval, fn)
	}
	if err != nil && !watchCancelled(err) {
		logger.Error("watch failed", "error", err)
		fmt.Fprintf(os.Stderr, "watch failed: %v\n", err)
		return 1
	}
	logger.Info("watch stopped")
	return 0
}

// watchCancelled reports whether err only reflects a signal-driven stop.
func watchCancelled(err error) bool {
	return errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled)
}

func listDistros(w io.Writer) {
	for _, tag := range logo.Tags() {
		fmt.Fprintf(w, "%-12s %s\n", tag, logo.Lookup(tag).Name)
	}
}

func currentUser() string {
	for _, k := range []string{"USER", "LOGNAME"} {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
