package gallery

import (
	"fmt"
	"strings"
	"testing"

	apod "tableflip.dev/apod/pkg/picture"
	"tableflip.dev/apod/pkg/tui/theme"
)

func window(n int) []apod.Picture {
	out := make([]apod.Picture, 0, n)
	for i := n; i >= 1; i-- {
		mt := apod.Image
		if i%3 == 0 {
			mt = apod.Video
		}
		out = append(out, apod.Picture{
			Date:      fmt.Sprintf("2024-01-%02d", i),
			Title:     fmt.Sprintf("Picture %d", i),
			MediaType: mt,
			URL:       fmt.Sprintf("http://img/%d", i),
		})
	}
	return out
}

func TestCellsFollowItemsInOrder(t *testing.T) {
	m := New(theme.Default().Gallery)
	items := window(8)
	m.SetItems(items)

	cells := m.Cells()
	if len(cells) != len(items) {
		t.Fatalf("expected %d cells, got %d", len(items), len(cells))
	}
	for i, c := range cells {
		if c.Key != items[i].Date {
			t.Fatalf("cell %d keyed %q, want %q", i, c.Key, items[i].Date)
		}
		if !strings.Contains(c.View, items[i].Date) {
			t.Fatalf("cell %d missing date: %q", i, c.View)
		}
	}
	if got := strings.Join(m.Keys(), ","); got != "2024-01-08,2024-01-07,2024-01-06,2024-01-05,2024-01-04,2024-01-03,2024-01-02,2024-01-01" {
		t.Fatalf("unexpected key order %s", got)
	}
}

func TestVideoRendersPlaceholder(t *testing.T) {
	m := New(theme.Default().Gallery)
	m.SetItems([]apod.Picture{
		{Date: "2024-01-03", Title: "Launch", MediaType: apod.Video, URL: "https://youtube.com/embed/x"},
		{Date: "2024-01-02", Title: "Nebula", MediaType: apod.Image, URL: "http://img"},
		{Date: "2024-01-01", Title: "Odd", MediaType: "other"},
	})

	cells := m.Cells()
	if !strings.Contains(cells[0].View, "Video") || strings.Contains(cells[0].View, "youtube") {
		t.Fatalf("video cell should show placeholder only: %q", cells[0].View)
	}
	if strings.Contains(cells[1].View, "Video") {
		t.Fatalf("image cell shows video placeholder: %q", cells[1].View)
	}
	if strings.Contains(cells[2].View, "Video") || strings.Contains(cells[2].View, "Image") {
		t.Fatalf("unknown media should show neither: %q", cells[2].View)
	}
}

func TestMoveClampsToGrid(t *testing.T) {
	m := New(theme.Default().Gallery)
	m.SetWidth(60)
	m.SetItems(window(5))

	cols := m.Columns()
	if cols < 1 {
		t.Fatalf("expected at least one column")
	}
	m.Move(-1, 0)
	if p, _ := m.Selected(); p.Date != "2024-01-05" {
		t.Fatalf("expected first cell, got %s", p.Date)
	}
	m.Move(0, 10)
	if p, _ := m.Selected(); p.Date != "2024-01-01" {
		t.Fatalf("expected last cell, got %s", p.Date)
	}
	m.Move(1, 0)
	if p, _ := m.Selected(); p.Date != "2024-01-01" {
		t.Fatalf("cursor moved past the end: %s", p.Date)
	}
}

func TestEmptyGallery(t *testing.T) {
	m := New(theme.Default().Gallery)
	if m.View() != "" {
		t.Fatalf("expected empty view")
	}
	if _, ok := m.Selected(); ok {
		t.Fatalf("expected no selection")
	}
	m.Move(1, 1)
}
