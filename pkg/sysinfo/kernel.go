package sysinfo

import (
	"context"
	"strings"
)

const procVersionPath = "/proc/version"

// Kernel returns the kernel release string or Unknown. The native lookup
// (uname on Linux, sysctl on darwin) is tried first, then /proc/version,
// then gopsutil.
func (p *Prober) Kernel(ctx context.Context) string {
	ver, err := FirstOf[string](ctx,
		func(context.Context) (string, error) {
			raw, err := p.kernel()
			if err != nil {
				return "", err
			}
			return siNonEmpty(raw)
		},
		func(context.Context) (string, error) {
			data, err := p.readFile(procVersionPath)
			if err != nil {
				return "", err
			}
			return siNonEmpty(siParseKernelVersion(string(data)))
		},
		func(ctx context.Context) (string, error) {
			raw, err := p.sensors.KernelVersion(ctx)
			if err != nil {
				return "", err
			}
			return siNonEmpty(raw)
		},
	)
	if err != nil {
		p.probeFailed("kernel", err)
		return Unknown
	}
	return ver
}

// siParseKernelVersion cleans a raw kernel version string by trimming
// whitespace and stripping the "Linux version " prefix of /proc/version.
func siParseKernelVersion(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	// "Linux version 6.1.0-27-amd64 (debian-kernel@...) (gcc ...) ..."
	if strings.HasPrefix(s, "Linux version ") {
		s = strings.TrimPrefix(s, "Linux version ")
		if idx := strings.IndexByte(s, ' '); idx >= 0 {
			s = s[:idx]
		}
	}

	return s
}
