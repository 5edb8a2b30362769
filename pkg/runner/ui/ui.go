// Package ui launches the interactive APOD page.
package ui

import (
	"context"
	"errors"
	"log/slog"

	"github.com/muesli/termenv"

	"tableflip.dev/apod/pkg/tui/app"
	"tableflip.dev/apod/pkg/viewmodel"
)

// UI runs the Bubble Tea program until the user quits.
type UI struct {
	Source     viewmodel.Source
	RecentDays int
	Logger     *slog.Logger
}

// Do blocks until the program exits.
func (d *UI) Do(ctx context.Context) error {
	if d.Source == nil {
		return errors.New("can not start ui, no backend")
	}
	return app.Run(ctx, app.Options{
		Source:     d.Source,
		RecentDays: d.RecentDays,
		Logger:     d.Logger,
		Hyperlinks: termenv.EnvColorProfile() != termenv.Ascii,
	})
}
