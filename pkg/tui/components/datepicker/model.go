// Package datepicker is the date field and "Load APOD" button of the date
// view.
package datepicker

import (
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	apod "tableflip.dev/apod/pkg/picture"
	"tableflip.dev/apod/pkg/tui/components/calendar"
	"tableflip.dev/apod/pkg/tui/theme"
)

// ButtonLabel is the text of the load action.
const ButtonLabel = "Load APOD"

// Target is the control that receives keys inside the picker.
type Target int

const (
	// TargetNone means the picker is not focused.
	TargetNone Target = iota
	TargetField
	TargetButton
)

// Model holds the date being edited. Editing never triggers a load.
type Model struct {
	input  textinput.Model
	target Target
	th     theme.InputTheme

	cal    calendar.Options
	marked []string
	now    func() time.Time
}

// New returns a picker holding initial.
func New(th theme.InputTheme, initial string) Model {
	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = 10
	ti.Prompt = ""
	ti.SetValue(initial)
	ti.Blur()
	return Model{input: ti, th: th, cal: calendar.DefaultOptions(), now: time.Now}
}

// SetMarked highlights dates (YYYY-MM-DD) in the month view.
func (m *Model) SetMarked(dates []string) { m.marked = dates }

// Value returns the date as typed.
func (m Model) Value() string { return m.input.Value() }

// SetValue replaces the date.
func (m *Model) SetValue(s string) {
	m.input.SetValue(s)
	m.input.CursorEnd()
}

// Target reports which control has focus.
func (m Model) Target() Target { return m.target }

// Focus moves focus to target.
func (m *Model) Focus(target Target) tea.Cmd {
	m.target = target
	if target == TargetField {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

// Blur removes focus from both controls.
func (m *Model) Blur() {
	m.target = TargetNone
	m.input.Blur()
}

// Update forwards key input to the field while it is focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.target != TargetField {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the field and the button side by side, with the month of a
// valid date beside them.
func (m Model) View() string {
	field := m.th.Field
	if m.target == TargetField {
		field = m.th.FocusedField
	}
	button := m.th.Button
	if m.target == TargetButton {
		button = m.th.FocusedButton
	}
	controls := lipgloss.JoinHorizontal(lipgloss.Center,
		field.Render(m.input.View()),
		"  ",
		button.Render(ButtonLabel),
	)

	selected, err := apod.ParseDate(m.input.Value())
	if err != nil {
		return controls
	}
	month := calendar.Month(selected, m.now(), m.marked, m.cal)
	return lipgloss.JoinHorizontal(lipgloss.Top, controls, "    ", month)
}
