// Package gallery renders the recent window as a grid of cells, one per
// picture, keyed by date.
package gallery

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	apod "tableflip.dev/apod/pkg/picture"
	"tableflip.dev/apod/pkg/tui/theme"
)

const (
	defaultCellWidth = 24
	videoPlaceholder = "▶ Video"
	imageThumb       = "▣ Image"
)

// Cell is one rendered grid entry.
type Cell struct {
	Key  string
	View string
}

// Model holds the pictures in backend order and a cursor.
type Model struct {
	th theme.GalleryTheme

	items     []apod.Picture
	selected  int
	width     int
	cellWidth int
	focused   bool
}

// New returns an empty gallery.
func New(th theme.GalleryTheme) Model {
	return Model{th: th, cellWidth: defaultCellWidth}
}

// SetItems replaces the pictures. Order is kept as given.
func (m *Model) SetItems(items []apod.Picture) {
	m.items = items
	if m.selected >= len(items) {
		m.selected = max(len(items)-1, 0)
	}
}

// Items returns the pictures in display order.
func (m Model) Items() []apod.Picture { return m.items }

// Keys returns the render identity of each cell.
func (m Model) Keys() []string {
	keys := make([]string, 0, len(m.items))
	for _, p := range m.items {
		keys = append(keys, p.Key())
	}
	return keys
}

// SetWidth sets the available width for the grid.
func (m *Model) SetWidth(width int) { m.width = width }

// SetFocused shows or hides the selection highlight.
func (m *Model) SetFocused(focused bool) { m.focused = focused }

// Selected returns the picture under the cursor.
func (m Model) Selected() (apod.Picture, bool) {
	if m.selected < 0 || m.selected >= len(m.items) {
		return apod.Picture{}, false
	}
	return m.items[m.selected], true
}

// Columns is the number of cells per row at the current width.
func (m Model) Columns() int {
	outer := m.cellWidth + m.th.Cell.GetHorizontalBorderSize()
	if m.width <= 0 || outer <= 0 {
		return 4
	}
	return max(m.width/outer, 1)
}

// Move shifts the cursor by dx cells and dy rows, clamped to the grid.
func (m *Model) Move(dx, dy int) {
	if len(m.items) == 0 {
		return
	}
	next := m.selected + dx + dy*m.Columns()
	if next < 0 {
		next = 0
	}
	if next >= len(m.items) {
		next = len(m.items) - 1
	}
	m.selected = next
}

// Cells renders every picture into its own cell.
func (m Model) Cells() []Cell {
	cells := make([]Cell, 0, len(m.items))
	for i, p := range m.items {
		cells = append(cells, Cell{Key: p.Key(), View: m.cell(p, m.focused && i == m.selected)})
	}
	return cells
}

// View lays the cells out in rows.
func (m Model) View() string {
	cells := m.Cells()
	if len(cells) == 0 {
		return ""
	}
	cols := m.Columns()
	var rows []string
	for start := 0; start < len(cells); start += cols {
		end := min(start+cols, len(cells))
		row := make([]string, 0, end-start)
		for _, c := range cells[start:end] {
			row = append(row, c.View)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) innerWidth() int {
	return max(m.cellWidth-m.th.Cell.GetHorizontalPadding(), 1)
}

func (m Model) cell(p apod.Picture, selected bool) string {
	var thumb string
	switch p.MediaType {
	case apod.Image:
		thumb = m.th.Thumb.Render(imageThumb)
	case apod.Video:
		thumb = m.th.VideoThumb.Render(videoPlaceholder)
	}

	body := strings.Join([]string{
		thumb,
		m.th.Title.Render(truncate.StringWithTail(p.Title, uint(m.innerWidth()), "…")),
		m.th.Date.Render(p.Date),
	}, "\n")

	style := m.th.Cell
	if selected {
		style = m.th.SelectedCell
	}
	return style.Width(m.cellWidth).Render(body)
}
