package datepicker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/apod/pkg/tui/theme"
)

func TestTypingOnlyWhenFieldFocused(t *testing.T) {
	m := New(theme.Default().Input, "2024-01-0")

	m, _ = m.Update(tea.KeyPressMsg{Text: "1", Code: '1'})
	if m.Value() != "2024-01-0" {
		t.Fatalf("blurred field accepted input: %q", m.Value())
	}

	m.Focus(TargetField)
	m.SetValue("2024-01-0")
	m, _ = m.Update(tea.KeyPressMsg{Text: "1", Code: '1'})
	if m.Value() != "2024-01-01" {
		t.Fatalf("expected typed digit, got %q", m.Value())
	}

	m.Focus(TargetButton)
	m, _ = m.Update(tea.KeyPressMsg{Text: "9", Code: '9'})
	if m.Value() != "2024-01-01" {
		t.Fatalf("button focus must not edit the field: %q", m.Value())
	}
}

func TestViewShowsButton(t *testing.T) {
	m := New(theme.Default().Input, "2024-01-01")
	view := m.View()
	if !strings.Contains(view, ButtonLabel) || !strings.Contains(view, "2024-01-01") {
		t.Fatalf("expected field and button, got %q", view)
	}
	m.Blur()
	if m.Target() != TargetNone {
		t.Fatalf("expected no focus after blur")
	}
}

func TestViewShowsMonthForValidDate(t *testing.T) {
	m := New(theme.Default().Input, "2024-02-14")
	if !strings.Contains(m.View(), "February 2024") {
		t.Fatalf("expected month view for a valid date")
	}

	m.SetValue("2024-02-3")
	if strings.Contains(m.View(), "February 2024") {
		t.Fatalf("expected no month view for a partial date")
	}
}
