// Package picture renders one APOD record inside a card.
package picture

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	apod "tableflip.dev/apod/pkg/picture"
	"tableflip.dev/apod/pkg/tui/theme"
)

const (
	imageLabel = "Image"
	videoLabel = "Video (autoplay · fullscreen)"
)

// Model renders a picture's title, meta line, media link and explanation.
type Model struct {
	th theme.PictureTheme

	width      int
	hyperlinks bool
}

// New returns a renderer using th.
func New(th theme.PictureTheme) Model {
	return Model{th: th}
}

// SetWidth sets the wrap width for the explanation. Zero disables wrapping.
func (m *Model) SetWidth(width int) { m.width = width }

// EnableHyperlinks makes media URLs clickable in terminals that support
// OSC 8 links.
func (m *Model) EnableHyperlinks(on bool) { m.hyperlinks = on }

// View renders p.
func (m Model) View(p apod.Picture) string {
	lines := []string{
		m.th.Title.Render(m.wrap(p.Title)),
		m.th.Meta.Render(p.Meta()),
	}
	if media := m.Media(p); media != "" {
		lines = append(lines, media)
	}
	if p.Explanation != "" {
		lines = append(lines, "", m.th.Explanation.Render(m.wrap(p.Explanation)))
	}
	return strings.Join(lines, "\n")
}

// Media renders the media line for p, or "" when the media type has no
// renderer.
func (m Model) Media(p apod.Picture) string {
	var label string
	switch p.MediaType {
	case apod.Image:
		label = imageLabel
	case apod.Video:
		label = videoLabel
	default:
		return ""
	}
	// The link goes around the styled text so no style splits the OSC 8
	// sequence.
	link := m.th.Media.Render(p.URL)
	if m.hyperlinks {
		link = termenv.Hyperlink(p.URL, link)
	}
	return label + ": " + link
}

func (m Model) wrap(s string) string {
	if m.width <= 0 {
		return s
	}
	return wordwrap.String(s, m.width)
}
