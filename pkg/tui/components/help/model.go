// Package help shows the key reference, rendered from markdown, in a
// scrollable frame.
package help

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss/v2"
)

//go:embed help.md
var keysMarkdown string

const (
	minWidth  = 32
	minHeight = 8
)

// Model is the help overlay. The markdown is rendered without colors so
// the frame style alone decides how it looks.
type Model struct {
	frame    lipgloss.Style
	viewport viewport.Model
	width    int
	height   int

	// rendered caches the markdown per wrap width.
	rendered map[int]string
	err      error
}

// New returns an overlay of at least 32x8 cells drawn inside frame.
func New(frame lipgloss.Style, width, height int) *Model {
	m := &Model{
		frame:    frame,
		viewport: viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		rendered: map[int]string{},
	}
	m.viewport.MouseWheelEnabled = true
	m.SetSize(width, height)
	return m
}

// Update scrolls the help text.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

func (m *Model) View() string {
	return m.frame.Width(m.width).Height(m.height).Render(m.viewport.View())
}

// Err is the markdown rendering failure, if any.
func (m *Model) Err() error { return m.err }

// SetSize resizes the overlay and rewraps the text.
func (m *Model) SetSize(width, height int) {
	width, height = max(width, minWidth), max(height, minHeight)
	if width == m.width && height == m.height {
		return
	}
	m.width, m.height = width, height

	inner := max(width-m.frame.GetHorizontalFrameSize(), 1)
	m.viewport.SetWidth(inner)
	m.viewport.SetHeight(max(height-m.frame.GetVerticalFrameSize(), 1))
	m.viewport.SetContent(m.render(inner))
	m.viewport.SetYOffset(0)
}

func (m *Model) render(wrap int) string {
	wrap = max(wrap, 10)
	if s, ok := m.rendered[wrap]; ok {
		return s
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(wrap),
	)
	if err == nil {
		var s string
		if s, err = r.Render(keysMarkdown); err == nil {
			m.err = nil
			m.rendered[wrap] = strings.Trim(s, "\n")
			return m.rendered[wrap]
		}
	}
	m.err = err
	return "help unavailable: " + err.Error()
}
