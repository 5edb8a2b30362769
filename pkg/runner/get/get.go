// Package get prints the APOD views once, for scripts and non-interactive
// terminals.
package get

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"tableflip.dev/apod/pkg/printers"
	"tableflip.dev/apod/pkg/viewmodel"
)

// Get runs a single view against the backend and prints the result.
type Get struct {
	Source viewmodel.Source
	Logger *slog.Logger
	Out    io.Writer
	JSON   bool
	Width  int
}

func (g *Get) printer() *printers.PrettyPrint {
	return &printers.PrettyPrint{Out: g.Out, Width: g.Width}
}

func (g *Get) check() error {
	if g.Source == nil {
		return errors.New("can not get, no backend")
	}
	return nil
}

// Today prints today's picture.
func (g *Get) Today(ctx context.Context) error {
	if err := g.check(); err != nil {
		return err
	}
	v := viewmodel.NewToday(g.Source, g.Logger)
	if err := v.Run(ctx); err != nil {
		return errors.New(v.State.Error())
	}
	p, _ := v.State.Value()
	if g.JSON {
		return printers.JSON(g.Out, p)
	}

	pp := g.printer()
	pp.NewLine()
	pp.Title("Today's APOD")
	pp.Picture(p)
	return nil
}

// Date prints the picture for date. An empty date prints nothing.
func (g *Get) Date(ctx context.Context, date string) error {
	if err := g.check(); err != nil {
		return err
	}
	v := viewmodel.NewDate(g.Source, g.Logger)
	v.Select(date)
	if v.Selected == "" {
		return nil
	}
	if err := v.Run(ctx); err != nil {
		return errors.New(v.State.Error())
	}
	p, _ := v.State.Value()
	if g.JSON {
		return printers.JSON(g.Out, p)
	}

	pp := g.printer()
	pp.NewLine()
	pp.Title(fmt.Sprintf("APOD for %s", v.Selected))
	pp.Picture(p)
	return nil
}

// Recent prints the recent window as a table.
func (g *Get) Recent(ctx context.Context, days int) error {
	if err := g.check(); err != nil {
		return err
	}
	v := viewmodel.NewRecent(g.Source, days, g.Logger)
	if err := v.Run(ctx); err != nil {
		return errors.New(v.State.Error())
	}
	pics, _ := v.State.Value()
	if g.JSON {
		return printers.JSON(g.Out, pics)
	}

	pp := g.printer()
	pp.NewLine()
	pp.TitleWithCount(fmt.Sprintf("Recent APOD Gallery (last %d days)", v.Days), len(pics))
	pp.Gallery(pics...)
	return nil
}
