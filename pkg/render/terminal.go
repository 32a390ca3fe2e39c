package render

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// DetectProfile returns the color profile for output to f. Color is off
// when noColor is set or f is not a terminal.
func DetectProfile(f *os.File, noColor bool) termenv.Profile {
	if noColor || !IsTerminal(f) {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).EnvColorProfile()
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Width returns the column count of the terminal behind f, falling back
// to $COLUMNS. It returns 0 when output is not a terminal so that piped
// output is never truncated.
func Width(f *os.File) int {
	if !IsTerminal(f) {
		return 0
	}
	if w, _, err := term.GetSize(f.Fd()); err == nil && w > 0 {
		return w
	}
	return columnsFromEnv()
}

// columnsFromEnv reads the width a shell exports in $COLUMNS. Unset or
// malformed values mean unknown, reported as 0.
func columnsFromEnv() int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("COLUMNS")))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
