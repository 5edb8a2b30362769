// Package panel renders the framed cards that hold each view.
package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/apod/pkg/fetch"
	"tableflip.dev/apod/pkg/tui/theme"
)

// Model renders a card with a title, an optional hint and a body.
type Model struct {
	title   string
	hint    string
	width   int
	focused bool

	th theme.PanelTheme
}

// New returns a panel model titled title.
func New(th theme.PanelTheme, title string) Model {
	return Model{th: th, title: title}
}

// SetTitle updates the card title.
func (m *Model) SetTitle(title string) { m.title = title }

// SetHint sets the muted line under the title.
func (m *Model) SetHint(hint string) { m.hint = hint }

// SetFocused toggles the accent border.
func (m *Model) SetFocused(focused bool) { m.focused = focused }

// Focused reports whether the card has the accent border.
func (m Model) Focused() bool { return m.focused }

// SetWidth sets the outer width of the card. Zero lets content decide.
func (m *Model) SetWidth(width int) { m.width = width }

// InnerWidth is the content width left inside the frame.
func (m Model) InnerWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := m.width - m.frame().GetHorizontalFrameSize()
	if w < 1 {
		return 1
	}
	return w
}

// View frames the title, hint and the given sections.
func (m Model) View(sections ...string) string {
	content := make([]string, 0, len(sections)+2)
	if m.title != "" {
		content = append(content, m.th.Title.Render(m.title))
	}
	if m.hint != "" {
		content = append(content, m.th.Hint.Render(m.hint))
	}
	for _, s := range sections {
		if s == "" {
			continue
		}
		content = append(content, s)
	}

	frame := m.frame()
	if m.width > 0 {
		frame = frame.Width(m.width)
	}
	return frame.Render(strings.Join(content, "\n\n"))
}

// Body applies the shared render policy: the loading text while loading, the
// error while failed, ready() once a value is present and nothing otherwise.
func (m Model) Body(phase fetch.Phase, loading, errText string, ready func() string) string {
	switch phase {
	case fetch.Loading:
		return m.th.Loading.Render(loading)
	case fetch.Failed:
		return m.th.Error.Render(errText)
	case fetch.Ready:
		return ready()
	default:
		return ""
	}
}

func (m Model) frame() lipgloss.Style {
	if m.focused {
		return m.th.FocusedFrame
	}
	return m.th.Frame
}
