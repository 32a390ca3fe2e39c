package sysinfo

import (
	"context"
	"fmt"
	"os/exec"
)

// Runner invokes external utilities. Output must return an error for a
// missing binary or a non-zero exit.
type Runner interface {
	LookPath(file string) (string, error)
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Output runs the command with no stdin and returns its stdout.
func (execRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// siRun runs a utility under the configured timeout and returns its
// trimmed stdout. Empty output counts as failure.
func (p *Prober) siRun(ctx context.Context, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.opts.CommandTimeout)
	defer cancel()

	out, err := p.runner.Output(ctx, name, args...)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	s, err := siNonEmpty(string(out))
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}
