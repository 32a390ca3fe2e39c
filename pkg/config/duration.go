package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Duration is a time.Duration read from TOML text. It accepts Go duration
// strings ("500ms", "2s") and bare integers, which count seconds.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" {
		d.Duration = 0
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		d.Duration = time.Duration(n) * time.Second
	} else if d.Duration, err = time.ParseDuration(s); err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if d.Duration < 0 {
		return fmt.Errorf("negative duration %q", s)
	}
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// require reports an error naming key unless d is positive.
func (d Duration) require(key string) error {
	if d.Duration <= 0 {
		return fmt.Errorf("%s: must be positive, got %s", key, d.Duration)
	}
	return nil
}
