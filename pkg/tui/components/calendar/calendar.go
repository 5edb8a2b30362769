// Package calendar draws the month around a date, Sunday first, with the
// selected day, today and any marked days highlighted.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
)

const (
	weekdays = "Su Mo Tu We Th Fr Sa"
	width    = len(weekdays)
)

// Options holds the styles. A day that is marked, today and selected
// layers the three styles in that order.
type Options struct {
	TitleStyle    lipgloss.Style
	HeaderStyle   lipgloss.Style
	DayStyle      lipgloss.Style
	MarkedStyle   lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
}

func DefaultOptions() Options {
	return Options{
		TitleStyle:    lipgloss.NewStyle().Bold(true),
		HeaderStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		DayStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		MarkedStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		TodayStyle:    lipgloss.NewStyle().Underline(true),
		SelectedStyle: lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
	}
}

// Month renders the month containing selected: a title, the weekday header
// and one line per week. marked holds YYYY-MM-DD dates; those outside the
// month or unparsable are ignored. A zero selected renders nothing.
func Month(selected, today time.Time, marked []string, opts Options) string {
	if selected.IsZero() {
		return ""
	}
	inMonth := func(t time.Time) bool {
		return t.Year() == selected.Year() && t.Month() == selected.Month()
	}

	marks := map[int]bool{}
	for _, s := range marked {
		if t, err := time.Parse(time.DateOnly, s); err == nil && inMonth(t) {
			marks[t.Day()] = true
		}
	}
	todayDay := 0
	if !today.IsZero() && inMonth(today) {
		todayDay = today.Day()
	}

	title := selected.Format("January 2006")
	lines := []string{
		opts.TitleStyle.Render(strings.Repeat(" ", (width-len(title))/2) + title),
		opts.HeaderStyle.Render(weekdays),
	}
	for _, week := range weeks(selected) {
		cells := make([]string, len(week))
		for i, d := range week {
			if d == 0 {
				cells[i] = "  "
				continue
			}
			style := opts.DayStyle
			if marks[d] {
				style = opts.MarkedStyle
			}
			if d == todayDay {
				style = style.Inherit(opts.TodayStyle)
			}
			if d == selected.Day() {
				style = style.Inherit(opts.SelectedStyle)
			}
			cells[i] = style.Render(fmt.Sprintf("%2d", d))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

// weeks lays the days of month out in rows of seven, zero padding the
// cells before the first and after the last day.
func weeks(month time.Time) [][7]int {
	lead := int(time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC).Weekday())
	n := DaysIn(month)

	var out [][7]int
	for cell := 0; cell < lead+n; cell += 7 {
		var w [7]int
		for i := range w {
			if d := cell + i - lead + 1; d >= 1 && d <= n {
				w[i] = d
			}
		}
		out = append(out, w)
	}
	return out
}

// DaysIn is the number of days in the month of t.
func DaysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
