// Package render lays out a host report next to its OS emblem for terminal
// output.
package render

import (
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/hostfetch/pkg/export"
	"gitlab.com/tinyland/lab/hostfetch/pkg/logo"
	"gitlab.com/tinyland/lab/hostfetch/pkg/sysinfo"
)

// gap is the number of spaces between the emblem and the report lines.
const gap = 3

// Options controls rendering.
type Options struct {
	// Profile is the color profile; termenv.Ascii renders plain text.
	Profile termenv.Profile

	// Width truncates every output row to this many cells. Zero disables
	// truncation.
	Width int

	// ShowNetwork appends one line per interface address.
	ShowNetwork bool

	// User is shown in the header as user@hostname. Empty shows only the
	// hostname.
	User string
}

// Line is one row of the report column. Header rows have no label.
type Line struct {
	Label string
	Value string
}

// String renders the line as "Label: Value".
func (l Line) String() string {
	if l.Label == "" {
		return l.Value
	}
	return l.Label + ": " + l.Value
}

// Lines returns the report column: a user@host title, a rule, the labelled
// scalar fields and, when enabled, the network addresses sorted by
// interface name.
func Lines(r *sysinfo.HostReport, opts Options) []Line {
	title := r.Hostname
	if opts.User != "" {
		title = opts.User + "@" + r.Hostname
	}

	lines := []Line{
		{Value: title},
		{Value: strings.Repeat("-", ansi.StringWidth(title))},
	}
	for _, f := range export.Fields(r) {
		lines = append(lines, Line{Label: f.Label, Value: f.Value})
	}

	if opts.ShowNetwork {
		names := make([]string, 0, len(r.Networks))
		for name := range r.Networks {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			lines = append(lines, Line{Label: "Net (" + name + ")", Value: r.Networks[name]})
		}
	}
	return lines
}

// Render returns the emblem and report side by side, one row per line,
// terminated by a newline.
func Render(r *sysinfo.HostReport, e logo.Emblem, opts Options) string {
	renderer := lipgloss.NewRenderer(io.Discard)
	renderer.SetColorProfile(opts.Profile)

	artStyle := renderer.NewStyle().Foreground(e.Color).Bold(true)
	labelStyle := renderer.NewStyle().Foreground(e.Color).Bold(true)
	titleStyle := renderer.NewStyle().Bold(true)

	art := e.Lines()
	artWidth := e.Width()
	lines := Lines(r, opts)

	rows := len(art)
	if len(lines) > rows {
		rows = len(lines)
	}

	var b strings.Builder
	for i := 0; i < rows; i++ {
		var row strings.Builder

		left := ""
		if i < len(art) {
			left = artStyle.Render(art[i])
		}
		row.WriteString(left)
		row.WriteString(strings.Repeat(" ", artWidth-ansi.StringWidth(left)+gap))

		if i < len(lines) {
			l := lines[i]
			switch {
			case i == 0:
				row.WriteString(titleStyle.Render(l.Value))
			case l.Label == "":
				row.WriteString(l.Value)
			default:
				row.WriteString(labelStyle.Render(l.Label+":") + " " + l.Value)
			}
		}

		out := strings.TrimRight(row.String(), " ")
		if opts.Width > 0 {
			out = ansi.Truncate(out, opts.Width, "")
		}
		b.WriteString(out)
		b.WriteByte('\n')
	}
	return b.String()
}
