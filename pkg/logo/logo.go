// Package logo holds the static ASCII emblems and accent colors shown next
// to the host report, keyed by OS tag. The tables are read-only.
package logo

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"gitlab.com/tinyland/lab/hostfetch/pkg/sysinfo"
)

// Emblem is the art and accent color for one OS tag.
type Emblem struct {
	Tag   sysinfo.OSTag
	Name  string
	Color lipgloss.Color
	art   string
}

// Lines returns the emblem's art, one entry per row.
func (e Emblem) Lines() []string {
	return strings.Split(strings.Trim(e.art, "\n"), "\n")
}

// Width returns the display width of the widest art row.
func (e Emblem) Width() int {
	w := 0
	for _, l := range e.Lines() {
		if n := runewidth.StringWidth(l); n > w {
			w = n
		}
	}
	return w
}

// Lookup returns the emblem for tag, or the default emblem when the tag
// has none.
func Lookup(tag sysinfo.OSTag) Emblem {
	if e, ok := emblems[tag]; ok {
		return e
	}
	return emblems[sysinfo.TagDefault]
}

// Tags lists every tag that has a dedicated emblem, in probe match order.
func Tags() []sysinfo.OSTag {
	var tags []sysinfo.OSTag
	for _, t := range sysinfo.Tags() {
		if _, ok := emblems[t]; ok {
			tags = append(tags, t)
		}
	}
	return tags
}
