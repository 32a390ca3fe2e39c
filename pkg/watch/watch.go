// Package watch re-renders the host report at a fixed interval until the
// user quits or the context is cancelled.
package watch

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FrameFunc probes the host and returns one rendered frame.
type FrameFunc func(ctx context.Context) string

// TickEvent fires when the next refresh is due.
type TickEvent struct {
	Time time.Time
}

// FrameEvent carries a freshly rendered frame.
type FrameEvent struct {
	Frame string
	At    time.Time
}

type keyMap struct {
	Quit key.Binding
}

var defaultKeys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

// Model is the bubbletea model for watch mode. Only one probe cycle is in
// flight at a time: the next tick is scheduled after a frame arrives.
type Model struct {
	ctx      context.Context
	interval time.Duration
	frameFn  FrameFunc
	keys     keyMap

	frame   string
	updated time.Time
}

// NewModel creates a watch model refreshing every interval.
func NewModel(ctx context.Context, interval time.Duration, fn FrameFunc) Model {
	return Model{
		ctx:      ctx,
		interval: interval,
		frameFn:  fn,
		keys:     defaultKeys,
	}
}

// TickCmd returns a bubbletea Cmd that sends a TickEvent after the given
// duration.
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickEvent{Time: t}
	})
}

// Init renders the first frame immediately.
func (m Model) Init() tea.Cmd {
	return m.refreshCmd()
}

func (m Model) refreshCmd() tea.Cmd {
	ctx, fn := m.ctx, m.frameFn
	return func() tea.Msg {
		return FrameEvent{Frame: fn(ctx), At: time.Now()}
	}
}

// Update handles key presses, ticks and new frames.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	case FrameEvent:
		m.frame = msg.Frame
		m.updated = msg.At
		return m, TickCmd(m.interval)
	case TickEvent:
		if m.ctx.Err() != nil {
			return m, tea.Quit
		}
		return m, m.refreshCmd()
	}
	return m, nil
}

// View shows the latest frame and a status footer.
func (m Model) View() string {
	if m.frame == "" {
		return "probing host...\n"
	}
	footer := fmt.Sprintf("updated %s · every %s · %s to %s",
		m.updated.Format("15:04:05"), m.interval,
		m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc)
	return m.frame + "\n" + footerStyle.Render(footer) + "\n"
}

// Frame returns the most recent frame.
func (m Model) Frame() string {
	return m.frame
}

// Run starts the interactive watch program on the terminal.
func Run(ctx context.Context, interval time.Duration, fn FrameFunc) error {
	p := tea.NewProgram(NewModel(ctx, interval, fn), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// RunPlain writes a frame to w every interval until ctx is cancelled. It
// serves non-terminal output where a full-screen program makes no sense.
func RunPlain(ctx context.Context, w io.Writer, interval time.Duration, fn FrameFunc) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := io.WriteString(w, fn(ctx)); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}
