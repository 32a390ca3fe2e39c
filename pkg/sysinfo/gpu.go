package sysinfo

import (
	"context"
	"strings"
)

// GPUModel returns the graphics adapter name or N/A. nvidia-smi is asked
// first when it is installed; otherwise the PCI bus listing from lspci is
// scanned for a display controller.
func (p *Prober) GPUModel(ctx context.Context) string {
	model, err := FirstOf[string](ctx,
		p.gpuFromNvidiaSMI,
		p.gpuFromLspci,
	)
	if err != nil {
		p.probeFailed("gpu", err)
		return NA
	}
	return model
}

func (p *Prober) gpuFromNvidiaSMI(ctx context.Context) (string, error) {
	if _, err := p.runner.LookPath("nvidia-smi"); err != nil {
		return "", err
	}
	out, err := p.siRun(ctx, "nvidia-smi", "--query-gpu=name", "--format=csv,noheader")
	if err != nil {
		return "", err
	}
	return siParseNvidiaSMI(out)
}

func (p *Prober) gpuFromLspci(ctx context.Context) (string, error) {
	out, err := p.siRun(ctx, "lspci")
	if err != nil {
		return "", err
	}
	return siParseLspci(out)
}

// siParseNvidiaSMI parses the output of:
//
//	nvidia-smi --query-gpu=name --format=csv,noheader
//
// One GPU name per line; the first is reported.
func siParseNvidiaSMI(output string) (string, error) {
	for _, line := range strings.Split(output, "\n") {
		if name, err := siNonEmpty(line); err == nil {
			return name, nil
		}
	}
	return "", errEmpty
}

// siParseLspci finds the first display controller in lspci output and
// returns the third colon-separated field, e.g. for
//
//	00:02.0 VGA compatible controller: Intel Corporation UHD Graphics 620 (rev 07)
//
// it returns "Intel Corporation UHD Graphics 620 (rev 07)".
func siParseLspci(output string) (string, error) {
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, "VGA compatible controller") &&
			!strings.Contains(line, "3D controller") {
			continue
		}
		fields := strings.Split(line, ":")
		if len(fields) < 3 {
			return "", errNoMatch
		}
		return siNonEmpty(fields[2])
	}
	return "", errNoMatch
}
