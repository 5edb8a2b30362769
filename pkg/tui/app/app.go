// Package app is the interactive APOD page: today's picture, a picture by
// date and the recent gallery, stacked in one scrollable view.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/apod/pkg/fetch"
	"tableflip.dev/apod/pkg/logging"
	apod "tableflip.dev/apod/pkg/picture"
	"tableflip.dev/apod/pkg/tui/components/datepicker"
	"tableflip.dev/apod/pkg/tui/components/gallery"
	"tableflip.dev/apod/pkg/tui/components/help"
	"tableflip.dev/apod/pkg/tui/components/panel"
	picturecomp "tableflip.dev/apod/pkg/tui/components/picture"
	"tableflip.dev/apod/pkg/tui/theme"
	"tableflip.dev/apod/pkg/viewmodel"
)

const (
	title    = "NASA APOD Explorer"
	subtitle = "Astronomy Picture of the Day"

	todayTitle   = "Today's APOD"
	todayLoading = "Loading today's picture..."
	dateTitle    = "View APOD by Date"
	dateHint     = `Select a date and click "Load APOD" to see that day's picture.`
	recentTitle  = "Recent APOD Gallery (last %d days)"
	recentLoad   = "Loading recent APODs..."
)

// focus identifies the control that receives keys.
type focus int

const (
	focusToday focus = iota
	focusDateField
	focusDateButton
	focusGallery
	focusCount
)

type todayLoadedMsg struct {
	ticket  fetch.Ticket
	picture apod.Picture
	err     error
}

type dateLoadedMsg struct {
	ticket  fetch.Ticket
	picture apod.Picture
	err     error
}

type recentLoadedMsg struct {
	ticket   fetch.Ticket
	pictures []apod.Picture
	err      error
}

// Options configures the page.
type Options struct {
	Source     viewmodel.Source
	RecentDays int
	Logger     *slog.Logger
	// Hyperlinks turns media URLs into OSC 8 links.
	Hyperlinks bool
}

// Model is the root Bubble Tea model.
type Model struct {
	ctx context.Context
	th  theme.Theme

	today  *viewmodel.Today
	date   *viewmodel.Date
	recent *viewmodel.Recent

	todayPanel  panel.Model
	datePanel   panel.Model
	recentPanel panel.Model

	picture picturecomp.Model
	picker  datepicker.Model
	gallery gallery.Model

	viewport viewport.Model
	focus    focus
	status   string

	help     *help.Model
	showHelp bool

	width  int
	height int
}

// New returns the page. Nothing is fetched until Init.
func New(ctx context.Context, opts Options) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	th := theme.Default()

	m := &Model{
		ctx:    ctx,
		th:     th,
		today:  viewmodel.NewToday(opts.Source, logger),
		date:   viewmodel.NewDate(opts.Source, logger),
		recent: viewmodel.NewRecent(opts.Source, opts.RecentDays, logger),

		todayPanel:  panel.New(th.Panel, todayTitle),
		datePanel:   panel.New(th.Panel, dateTitle),
		recentPanel: panel.New(th.Panel, ""),

		picture: picturecomp.New(th.Picture),
		gallery: gallery.New(th.Gallery),
		viewport: viewport.New(
			viewport.WithWidth(80),
			viewport.WithHeight(20),
		),
	}
	m.picker = datepicker.New(th.Input, m.date.Selected)
	m.datePanel.SetHint(dateHint)
	m.recentPanel.SetTitle(fmt.Sprintf(recentTitle, m.recent.Days))
	m.picture.EnableHyperlinks(opts.Hyperlinks)
	m.applyFocus()
	m.syncViewport()
	return m
}

// Run launches the Bubble Tea program.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(ctx, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init starts the today and recent fetches together.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadToday(), m.loadRecent())
}

func (m *Model) loadToday() tea.Cmd {
	req := m.today.Load()
	ctx := m.ctx
	return func() tea.Msg {
		p, err := req.Fetch(ctx)
		return todayLoadedMsg{ticket: req.Ticket, picture: p, err: err}
	}
}

func (m *Model) loadDate() tea.Cmd {
	req, ok := m.date.Load()
	if !ok {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		p, err := req.Fetch(ctx)
		return dateLoadedMsg{ticket: req.Ticket, picture: p, err: err}
	}
}

func (m *Model) loadRecent() tea.Cmd {
	req := m.recent.Load()
	ctx := m.ctx
	return func() tea.Msg {
		pics, err := req.Fetch(ctx)
		return recentLoadedMsg{ticket: req.Ticket, pictures: pics, err: err}
	}
}

// Update handles fetch completions, resizing and keys.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applySizes()
	case todayLoadedMsg:
		m.today.State.Complete(msg.ticket, msg.picture, msg.err)
	case dateLoadedMsg:
		if m.date.State.Complete(msg.ticket, msg.picture, msg.err) && msg.err == nil {
			m.status = "Loaded APOD for " + msg.picture.Date
		}
	case recentLoadedMsg:
		if m.recent.State.Complete(msg.ticket, msg.pictures, msg.err) {
			pics, _ := m.recent.State.Value()
			m.gallery.SetItems(pics)
			m.picker.SetMarked(m.gallery.Keys())
		}
	case tea.KeyPressMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	m.syncViewport()
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		return tea.Quit
	}

	if m.showHelp {
		switch key {
		case "?", "esc", "q":
			m.showHelp = false
			return nil
		}
		return m.help.Update(msg)
	}

	switch key {
	case "tab":
		m.focus = (m.focus + 1) % focusCount
		return m.applyFocus()
	case "shift+tab":
		m.focus = (m.focus + focusCount - 1) % focusCount
		return m.applyFocus()
	}

	if m.focus == focusDateField {
		switch key {
		case "enter":
			m.focus = focusDateButton
			return m.applyFocus()
		case "esc":
			m.focus = focusToday
			return m.applyFocus()
		}
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		m.date.Select(m.picker.Value())
		return cmd
	}

	switch key {
	case "q":
		return tea.Quit
	case "?":
		m.showHelp = true
		if m.help == nil {
			m.help = help.New(m.th.Panel.FocusedFrame, m.width, m.pageHeight())
		}
		return nil
	case "r":
		m.status = "Refreshing today and recent"
		return tea.Batch(m.loadToday(), m.loadRecent())
	case "enter", " ":
		switch m.focus {
		case focusDateButton:
			return m.loadDate()
		case focusGallery:
			if p, ok := m.gallery.Selected(); ok {
				m.picker.SetValue(p.Date)
				m.date.Select(p.Date)
				m.focus = focusDateButton
				m.status = "Selected " + p.Date + `, press enter to "Load APOD"`
				return m.applyFocus()
			}
		}
		return nil
	}

	if m.focus == focusGallery {
		switch key {
		case "left", "h":
			m.gallery.Move(-1, 0)
			return nil
		case "right", "l":
			m.gallery.Move(1, 0)
			return nil
		case "up", "k":
			m.gallery.Move(0, -1)
			return nil
		case "down", "j":
			m.gallery.Move(0, 1)
			return nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

func (m *Model) applyFocus() tea.Cmd {
	m.todayPanel.SetFocused(m.focus == focusToday)
	m.datePanel.SetFocused(m.focus == focusDateField || m.focus == focusDateButton)
	m.recentPanel.SetFocused(m.focus == focusGallery)
	m.gallery.SetFocused(m.focus == focusGallery)

	switch m.focus {
	case focusDateField:
		return m.picker.Focus(datepicker.TargetField)
	case focusDateButton:
		return m.picker.Focus(datepicker.TargetButton)
	default:
		m.picker.Blur()
		return nil
	}
}

func (m *Model) applySizes() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.viewport.SetWidth(m.width)
	m.viewport.SetHeight(m.pageHeight())

	for _, p := range []*panel.Model{&m.todayPanel, &m.datePanel, &m.recentPanel} {
		p.SetWidth(m.width)
	}
	m.picture.SetWidth(m.todayPanel.InnerWidth())
	m.gallery.SetWidth(m.recentPanel.InnerWidth())
	if m.help != nil {
		m.help.SetSize(m.width, m.pageHeight())
	}
}

// pageHeight is the room left between header and footer.
func (m *Model) pageHeight() int {
	return max(m.height-lipgloss.Height(m.header())-1, 3)
}

func (m *Model) syncViewport() {
	m.viewport.SetContent(m.page())
}

// page renders the three cards.
func (m *Model) page() string {
	todayBody := m.todayPanel.Body(m.today.State.Phase(), todayLoading, m.today.State.Error(), func() string {
		p, _ := m.today.State.Value()
		return m.picture.View(p)
	})

	dateBody := m.datePanel.Body(m.date.State.Phase(), "Loading APOD for "+m.date.Selected+"...", m.date.State.Error(), func() string {
		p, _ := m.date.State.Value()
		return m.picture.View(p)
	})

	recentBody := m.recentPanel.Body(m.recent.State.Phase(), recentLoad, m.recent.State.Error(), m.gallery.View)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.todayPanel.View(todayBody),
		m.datePanel.View(m.picker.View(), dateBody),
		m.recentPanel.View(recentBody),
	)
}

func (m *Model) header() string {
	return m.th.Header.Gradient("🚀 "+title) + "\n" + m.th.Header.Subtitle.Render(subtitle)
}

func (m *Model) footer() string {
	var keys string
	switch {
	case m.showHelp:
		keys = "j/k scroll · ? or esc close"
	case m.focus == focusDateField:
		keys = "type a date · enter to confirm · esc to leave · tab next"
	case m.focus == focusDateButton:
		keys = "enter load APOD · tab next · ? help · q quit"
	case m.focus == focusGallery:
		keys = "←/→/↑/↓ pick · enter use date · r refresh · tab next · q quit"
	default:
		keys = "tab focus · j/k scroll · r refresh · ? help · q quit"
	}
	line := m.th.Footer.Help.Render(keys)
	if m.status != "" {
		line += "  " + m.th.Footer.Status.Render(m.status)
	}
	return line
}

// View renders header, the scrollable page and the footer.
func (m *Model) View() string {
	body := m.viewport.View()
	if m.showHelp && m.help != nil {
		body = m.help.View()
	}
	return strings.Join([]string{m.header(), body, m.footer()}, "\n")
}
