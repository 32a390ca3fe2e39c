package sysinfo

import (
	"context"
	"errors"
	"strings"
)

var (
	errEmpty       = errors.New("empty value")
	errUnsupported = errors.New("not supported on this platform")
	errNoMatch     = errors.New("no matching entry")
	errNoStrategy  = errors.New("no strategies")
)

// Strategy is one way of obtaining an attribute. Strategies for the same
// attribute are ordered by preference and combined with FirstOf.
type Strategy[T any] func(ctx context.Context) (T, error)

// FirstOf runs strategies in order and returns the first successful value.
// Later strategies are not run once one succeeds. If every strategy fails
// the joined errors are returned. A cancelled context stops the chain.
func FirstOf[T any](ctx context.Context, strategies ...Strategy[T]) (T, error) {
	var zero T
	if len(strategies) == 0 {
		return zero, errNoStrategy
	}

	errs := make([]error, 0, len(strategies))
	for _, s := range strategies {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		v, err := s(ctx)
		if err == nil {
			return v, nil
		}
		errs = append(errs, err)
	}
	return zero, errors.Join(errs...)
}

// siNonEmpty trims s and reports errEmpty when nothing is left.
func siNonEmpty(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errEmpty
	}
	return s, nil
}
