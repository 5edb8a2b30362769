// Package viewmodel holds the three APOD views as instances of the shared
// fetch lifecycle, independent of how they are rendered.
package viewmodel

import (
	"context"
	"log/slog"
	"strings"

	"tableflip.dev/apod/pkg/fetch"
	"tableflip.dev/apod/pkg/picture"
)

// Messages shown in place of any failure cause.
const (
	TodayErrorMessage  = "Failed to load today's APOD. Please try again."
	DateErrorMessage   = "Failed to load APOD for that date."
	RecentErrorMessage = "Failed to load recent APODs."
)

// DefaultRecentDays is the size of the recent window.
const DefaultRecentDays = 8

// Source is the backend the views read from. *client.Client satisfies it.
type Source interface {
	Today(ctx context.Context) (picture.Picture, error)
	ByDate(ctx context.Context, date string) (picture.Picture, error)
	Recent(ctx context.Context, days int) ([]picture.Picture, error)
}

// Today is the view of the current day's picture. It starts loading.
type Today struct {
	State fetch.State[picture.Picture]
	src   Source
}

// NewToday returns the today view.
func NewToday(src Source, logger *slog.Logger) *Today {
	return &Today{
		src: src,
		State: fetch.New[picture.Picture](fetch.Options{
			Name:         "today",
			ErrorMessage: TodayErrorMessage,
			StartLoading: true,
			Logger:       logger,
		}),
	}
}

// Load begins a fetch of today's picture.
func (v *Today) Load() fetch.Request[picture.Picture] {
	return v.State.Start(v.src.Today)
}

// Run loads synchronously.
func (v *Today) Run(ctx context.Context) error {
	return v.State.Run(ctx, v.src.Today)
}

// Date is the on-demand view of an arbitrary date. It starts idle and drops
// the previous picture whenever a new load begins.
type Date struct {
	State    fetch.State[picture.Picture]
	Selected string
	src      Source
}

// NewDate returns the date view with selected defaulting to today.
func NewDate(src Source, logger *slog.Logger) *Date {
	return &Date{
		src:      src,
		Selected: picture.Today(),
		State: fetch.New[picture.Picture](fetch.Options{
			Name:         "date",
			ErrorMessage: DateErrorMessage,
			ClearOnStart: true,
			Logger:       logger,
		}),
	}
}

// Select changes the selected date without fetching.
func (v *Date) Select(date string) {
	v.Selected = strings.TrimSpace(date)
}

// fetcher returns the by-date call for the selected date, or false when no
// date is selected.
func (v *Date) fetcher() (fetch.Func[picture.Picture], bool) {
	date := strings.TrimSpace(v.Selected)
	if date == "" {
		return nil, false
	}
	return func(ctx context.Context) (picture.Picture, error) {
		return v.src.ByDate(ctx, date)
	}, true
}

// Load begins a fetch for the selected date. With no date selected it does
// nothing and reports false.
func (v *Date) Load() (fetch.Request[picture.Picture], bool) {
	fn, ok := v.fetcher()
	if !ok {
		return fetch.Request[picture.Picture]{}, false
	}
	return v.State.Start(fn), true
}

// Run loads the selected date synchronously. With no date selected it does
// nothing.
func (v *Date) Run(ctx context.Context) error {
	fn, ok := v.fetcher()
	if !ok {
		return nil
	}
	return v.State.Run(ctx, fn)
}

// Recent is the gallery view of the last Days pictures. It starts loading.
type Recent struct {
	State fetch.State[[]picture.Picture]
	Days  int
	src   Source
}

// NewRecent returns the recent view; days below one fall back to
// DefaultRecentDays.
func NewRecent(src Source, days int, logger *slog.Logger) *Recent {
	if days < 1 {
		days = DefaultRecentDays
	}
	return &Recent{
		src:  src,
		Days: days,
		State: fetch.New[[]picture.Picture](fetch.Options{
			Name:         "recent",
			ErrorMessage: RecentErrorMessage,
			StartLoading: true,
			Logger:       logger,
		}),
	}
}

func (v *Recent) fetcher() fetch.Func[[]picture.Picture] {
	days := v.Days
	return func(ctx context.Context) ([]picture.Picture, error) {
		return v.src.Recent(ctx, days)
	}
}

// Load begins a fetch of the recent window.
func (v *Recent) Load() fetch.Request[[]picture.Picture] {
	return v.State.Start(v.fetcher())
}

// Run loads synchronously.
func (v *Recent) Run(ctx context.Context) error {
	return v.State.Run(ctx, v.fetcher())
}
