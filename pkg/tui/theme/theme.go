package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header  HeaderTheme
	Footer  FooterTheme
	Panel   PanelTheme
	Picture PictureTheme
	Gallery GalleryTheme
	Input   InputTheme
}

// HeaderTheme styles the page banner.
type HeaderTheme struct {
	// Gradient endpoints for the title.
	From, To string
	Title    lipgloss.Style
	Subtitle lipgloss.Style
}

// FooterTheme groups styles used by the bottom help/status line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

// PanelTheme styles framed cards and headings.
type PanelTheme struct {
	Frame        lipgloss.Style
	FocusedFrame lipgloss.Style
	Title        lipgloss.Style
	Body         lipgloss.Style
	Loading      lipgloss.Style
	Error        lipgloss.Style
	Hint         lipgloss.Style
}

// PictureTheme styles a single picture.
type PictureTheme struct {
	Title       lipgloss.Style
	Meta        lipgloss.Style
	Media       lipgloss.Style
	Explanation lipgloss.Style
}

// GalleryTheme styles the recent grid.
type GalleryTheme struct {
	Cell         lipgloss.Style
	SelectedCell lipgloss.Style
	Title        lipgloss.Style
	Date         lipgloss.Style
	Thumb        lipgloss.Style
	VideoThumb   lipgloss.Style
}

// InputTheme styles the date picker.
type InputTheme struct {
	Field         lipgloss.Style
	FocusedField  lipgloss.Style
	Button        lipgloss.Style
	FocusedButton lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	accent := lipgloss.Color("212")
	muted := lipgloss.Color("244")

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	cell := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 1)
	button := lipgloss.NewStyle().
		Padding(0, 2).
		Background(lipgloss.Color("238")).
		Foreground(lipgloss.Color("252"))

	return Theme{
		Header: HeaderTheme{
			From:     "#5A56E0",
			To:       "#EE6FF8",
			Title:    lipgloss.NewStyle().Bold(true),
			Subtitle: lipgloss.NewStyle().Foreground(muted).Italic(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(muted),
		},
		Panel: PanelTheme{
			Frame:        frame,
			FocusedFrame: frame.BorderForeground(accent),
			Title:        lipgloss.NewStyle().Bold(true).Foreground(accent),
			Body:         lipgloss.NewStyle(),
			Loading:      lipgloss.NewStyle().Foreground(muted).Italic(true),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
			Hint:         lipgloss.NewStyle().Foreground(muted),
		},
		Picture: PictureTheme{
			Title:       lipgloss.NewStyle().Bold(true),
			Meta:        lipgloss.NewStyle().Foreground(muted),
			Media:       lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
			Explanation: lipgloss.NewStyle(),
		},
		Gallery: GalleryTheme{
			Cell:         cell,
			SelectedCell: cell.BorderForeground(accent),
			Title:        lipgloss.NewStyle().Bold(true),
			Date:         lipgloss.NewStyle().Foreground(muted),
			Thumb:        lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
			VideoThumb:   lipgloss.NewStyle().Foreground(lipgloss.Color("179")).Bold(true),
		},
		Input: InputTheme{
			Field:         lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
			FocusedField:  lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(accent).Padding(0, 1),
			Button:        button,
			FocusedButton: button.Background(accent).Foreground(lipgloss.Color("16")).Bold(true),
		},
	}
}

// Gradient renders s with a per-rune blend between the header colors.
func (h HeaderTheme) Gradient(s string) string {
	from, err1 := colorful.Hex(h.From)
	to, err2 := colorful.Hex(h.To)
	runes := []rune(s)
	if err1 != nil || err2 != nil || len(runes) < 2 {
		return h.Title.Render(s)
	}

	var out string
	for i, r := range runes {
		c := from.BlendLuv(to, float64(i)/float64(len(runes)-1)).Clamped()
		out += h.Title.Foreground(toColor(c)).Render(string(r))
	}
	return out
}

func toColor(c colorful.Color) color.Color {
	return lipgloss.Color(c.Hex())
}
