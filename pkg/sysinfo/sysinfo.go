// Package sysinfo is the host-attribute probe set behind hostfetch. Each
// prober queries one attribute from a platform source (descriptor files,
// command-line utilities, kernel interfaces, gopsutil sensors) and normalizes
// the result. Probers never fail: a missing or broken source yields the
// attribute's placeholder so that the caller always gets a complete report.
package sysinfo

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"
)

// Placeholders substituted when a prober's source is absent or fails.
const (
	Unknown = "Unknown"
	NA      = "N/A"
)

// HostReport is the aggregate of every probed attribute for one report
// cycle. It is built fresh by Collect and owned by the caller.
type HostReport struct {
	OS          OSTag
	Kernel      string
	Hostname    string
	Uptime      string
	CPU         string
	GPU         string
	Memory      string
	Disk        string
	Temperature string
	Battery     string

	// Networks maps interface name to its IPv4 address.
	Networks map[string]string
}

// Options controls which probes run and how their values are formatted.
type Options struct {
	// PercentMode reports memory and disk as a percentage instead of
	// used/total gigabytes.
	PercentMode bool

	// ShowDisk gates the disk probe. When false no disk query is issued.
	ShowDisk bool

	// DiskPath is the mount point reported by the disk probe.
	DiskPath string

	// ShowTemp gates the temperature probe.
	ShowTemp bool

	// TempSensor is the sensor group key whose first reading is reported.
	TempSensor string

	// Distro overrides OS detection when it names a known tag.
	Distro string

	// CommandTimeout bounds every subprocess invocation.
	CommandTimeout time.Duration

	// Logger receives probe diagnostics. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		ShowDisk:       true,
		DiskPath:       "/",
		TempSensor:     "coretemp",
		CommandTimeout: 2 * time.Second,
	}
}

// Prober runs the probe set against a host. The zero value is not usable;
// construct one with New.
type Prober struct {
	opts     Options
	log      *slog.Logger
	sensors  Sensors
	runner   Runner
	readFile func(string) ([]byte, error)
	goos     string
	now      func() time.Time
	kernel   func() (string, error)
}

// Option customizes the sources a Prober reads from.
type Option func(*Prober)

// WithSensors replaces the gopsutil-backed sensor source.
func WithSensors(s Sensors) Option {
	return func(p *Prober) { p.sensors = s }
}

// WithRunner replaces the subprocess runner.
func WithRunner(r Runner) Option {
	return func(p *Prober) { p.runner = r }
}

// WithReadFile replaces the function used to read descriptor files.
func WithReadFile(fn func(string) ([]byte, error)) Option {
	return func(p *Prober) { p.readFile = fn }
}

// WithGOOS makes the prober behave as if running on the given platform.
func WithGOOS(goos string) Option {
	return func(p *Prober) { p.goos = goos }
}

// WithClock replaces the clock used to compute uptime.
func WithClock(now func() time.Time) Option {
	return func(p *Prober) { p.now = now }
}

// WithKernelRelease replaces the native kernel release lookup.
func WithKernelRelease(fn func() (string, error)) Option {
	return func(p *Prober) { p.kernel = fn }
}

// New creates a Prober. Zero-value fields in opts are replaced with
// defaults.
func New(opts Options, extra ...Option) *Prober {
	def := DefaultOptions()
	if opts.DiskPath == "" {
		opts.DiskPath = def.DiskPath
	}
	if opts.TempSensor == "" {
		opts.TempSensor = def.TempSensor
	}
	if opts.CommandTimeout <= 0 {
		opts.CommandTimeout = def.CommandTimeout
	}

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	p := &Prober{
		opts:     opts,
		log:      log,
		sensors:  gopsutilSensors{},
		runner:   execRunner{},
		readFile: os.ReadFile,
		goos:     runtime.GOOS,
		now:      time.Now,
		kernel:   siKernelRelease,
	}
	for _, o := range extra {
		o(p)
	}
	return p
}

// Collect runs every prober in turn and assembles the report. It never
// returns a partially populated report: failed probes carry placeholders.
func (p *Prober) Collect(ctx context.Context) *HostReport {
	return &HostReport{
		OS:          p.OSIdentity(ctx),
		Kernel:      p.Kernel(ctx),
		Hostname:    p.Hostname(ctx),
		Uptime:      p.Uptime(ctx),
		CPU:         p.CPUModel(ctx),
		GPU:         p.GPUModel(ctx),
		Memory:      p.Memory(ctx),
		Disk:        p.Disk(ctx),
		Temperature: p.Temperature(ctx),
		Battery:     p.Battery(ctx),
		Networks:    p.Networks(ctx),
	}
}

// Collect is a convenience wrapper that probes the local host with opts.
func Collect(ctx context.Context, opts Options) *HostReport {
	return New(opts).Collect(ctx)
}

// Hostname returns the host's name or Unknown.
func (p *Prober) Hostname(ctx context.Context) string {
	name, err := FirstOf[string](ctx,
		func(context.Context) (string, error) {
			h, err := os.Hostname()
			if err != nil {
				return "", err
			}
			return siNonEmpty(h)
		},
		func(ctx context.Context) (string, error) {
			info, err := p.sensors.HostInfo(ctx)
			if err != nil {
				return "", err
			}
			return siNonEmpty(info.Hostname)
		},
	)
	if err != nil {
		p.probeFailed("hostname", err)
		return Unknown
	}
	return name
}

// probeFailed records a degraded probe. These are expected on stripped-down
// hosts, so they stay at debug level.
func (p *Prober) probeFailed(probe string, err error) {
	p.log.Debug("probe degraded to placeholder", "probe", probe, "error", err)
}
