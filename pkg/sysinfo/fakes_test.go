package sysinfo

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/sensors"
)

var errSensor = errors.New("sensor unavailable")

// fakeSensors returns canned values. A nil pointer or nil slice field with
// a nil error is still returned as-is; set err to simulate failures.
type fakeSensors struct {
	err error

	bootTime  uint64
	vm        *mem.VirtualMemoryStat
	usage     *disk.UsageStat
	temps     []sensors.TemperatureStat
	ifaces    net.InterfaceStatList
	cpuInfo   []cpu.InfoStat
	hostInfo  *host.InfoStat
	kernel    string
	batteries []BatteryReading

	diskCalls  int
	diskPath   string
	tempCalls  int
	ifaceCalls int
}

func (f *fakeSensors) BootTime(context.Context) (uint64, error) {
	return f.bootTime, f.err
}

func (f *fakeSensors) VirtualMemory(context.Context) (*mem.VirtualMemoryStat, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.vm, nil
}

func (f *fakeSensors) DiskUsage(_ context.Context, path string) (*disk.UsageStat, error) {
	f.diskCalls++
	f.diskPath = path
	if f.err != nil {
		return nil, f.err
	}
	return f.usage, nil
}

func (f *fakeSensors) Temperatures(context.Context) ([]sensors.TemperatureStat, error) {
	f.tempCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.temps, nil
}

func (f *fakeSensors) Interfaces(context.Context) (net.InterfaceStatList, error) {
	f.ifaceCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.ifaces, nil
}

func (f *fakeSensors) CPUInfo(context.Context) ([]cpu.InfoStat, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.cpuInfo, nil
}

func (f *fakeSensors) HostInfo(context.Context) (*host.InfoStat, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.hostInfo == nil {
		return &host.InfoStat{}, nil
	}
	return f.hostInfo, nil
}

func (f *fakeSensors) KernelVersion(context.Context) (string, error) {
	return f.kernel, f.err
}

func (f *fakeSensors) Batteries(context.Context) ([]BatteryReading, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.batteries, nil
}

// fakeRunner serves canned command output keyed by the full command line.
// Commands absent from outputs behave like a missing binary.
type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
	path    map[string]bool
	calls   []string
}

func (r *fakeRunner) LookPath(file string) (string, error) {
	if r.path[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

func (r *fakeRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := strings.Join(append([]string{name}, args...), " ")
	r.calls = append(r.calls, cmd)
	if err := r.errs[cmd]; err != nil {
		return nil, err
	}
	out, ok := r.outputs[cmd]
	if !ok {
		return nil, errors.New("exec: " + name + ": executable file not found in $PATH")
	}
	return []byte(out), nil
}

// blockingRunner waits for the context to expire, like a hung utility.
type blockingRunner struct{}

func (blockingRunner) LookPath(file string) (string, error) { return "/usr/bin/" + file, nil }

func (blockingRunner) Output(ctx context.Context, _ string, _ ...string) ([]byte, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

// fakeFiles returns a readFile function serving the given contents; other
// paths report fs.ErrNotExist.
func fakeFiles(files map[string]string) func(string) ([]byte, error) {
	return func(path string) ([]byte, error) {
		if content, ok := files[path]; ok {
			return []byte(content), nil
		}
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
}

func noKernel() (string, error) { return "", errUnsupported }

// newTestProber builds a Prober isolated from the host: no files, no
// utilities, failing sensors unless overridden.
func newTestProber(opts Options, extra ...Option) *Prober {
	base := []Option{
		WithSensors(&fakeSensors{err: errSensor}),
		WithRunner(&fakeRunner{}),
		WithReadFile(fakeFiles(nil)),
		WithGOOS("linux"),
		WithClock(func() time.Time { return time.Unix(1_700_000_000, 0) }),
		WithKernelRelease(noKernel),
	}
	return New(opts, append(base, extra...)...)
}
