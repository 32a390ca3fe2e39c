package sysinfo

import (
	"bufio"
	"context"
	"strings"
)

const cpuInfoPath = "/proc/cpuinfo"

// CPUModel returns the processor model name or Unknown. On darwin sysctl's
// brand string is preferred; elsewhere /proc/cpuinfo, then gopsutil.
func (p *Prober) CPUModel(ctx context.Context) string {
	model, err := FirstOf[string](ctx,
		p.cpuFromSysctl,
		p.cpuFromProc,
		p.cpuFromGopsutil,
	)
	if err != nil {
		p.probeFailed("cpu", err)
		return Unknown
	}
	return model
}

func (p *Prober) cpuFromSysctl(ctx context.Context) (string, error) {
	if p.goos != "darwin" {
		return "", errUnsupported
	}
	return p.siRun(ctx, "sysctl", "-n", "machdep.cpu.brand_string")
}

func (p *Prober) cpuFromProc(context.Context) (string, error) {
	data, err := p.readFile(cpuInfoPath)
	if err != nil {
		return "", err
	}
	return siParseCPUInfo(string(data))
}

func (p *Prober) cpuFromGopsutil(ctx context.Context) (string, error) {
	infos, err := p.sensors.CPUInfo(ctx)
	if err != nil {
		return "", err
	}
	for _, info := range infos {
		if model, err := siNonEmpty(info.ModelName); err == nil {
			return model, nil
		}
	}
	return "", errEmpty
}

// siParseCPUInfo returns the value of the first "model name" line of
// /proc/cpuinfo content, i.e. the trimmed text after its first colon:
//
//	model name	: Intel(R) Core(TM) i7-8650U CPU @ 1.90GHz
func siParseCPUInfo(content string) (string, error) {
	sc := bufio.NewScanner(strings.NewReader(content))
	for sc.Scan() {
		line := sc.Text()
		if !strings.Contains(line, "model name") {
			continue
		}
		_, value, ok := strings.Cut(line, ":")
		if !ok {
			return "", errNoMatch
		}
		return siNonEmpty(value)
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return "", errNoMatch
}
