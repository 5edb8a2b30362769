// Package mcp provides the Model Context Protocol server integration for the
// APOD views.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"tableflip.dev/apod/pkg/logging"
	apod "tableflip.dev/apod/pkg/picture"
	"tableflip.dev/apod/pkg/viewmodel"
)

// MaxRecentDays bounds the recent window a tool caller may request.
const MaxRecentDays = 31

// ErrNoDate is returned when a by-date lookup has no date.
var ErrNoDate = errors.New("date is required")

// Service answers MCP requests through the same views the UI uses, so callers
// see the view messages and never the backend cause.
type Service struct {
	Source     viewmodel.Source
	RecentDays int
	Logger     *slog.Logger
}

// RecentResult is the payload of a recent-window lookup.
type RecentResult struct {
	Days     int            `json:"days"`
	Count    int            `json:"count"`
	Pictures []apod.Picture `json:"pictures"`
}

// NewService builds a service over src.
func NewService(src viewmodel.Source, recentDays int, logger *slog.Logger) *Service {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{Source: src, RecentDays: recentDays, Logger: logger}
}

func (s *Service) ready() error {
	if s.Source == nil {
		return errors.New("backend is not configured")
	}
	return nil
}

// Today returns the current day's picture.
func (s *Service) Today(ctx context.Context) (apod.Picture, error) {
	if err := s.ready(); err != nil {
		return apod.Picture{}, err
	}
	v := viewmodel.NewToday(s.Source, s.Logger)
	if err := v.Run(ctx); err != nil {
		return apod.Picture{}, errors.New(v.State.Error())
	}
	p, _ := v.State.Value()
	return p, nil
}

// ByDate returns the picture for date, which must be shaped YYYY-MM-DD.
// A well formed day without a picture fails with the date view message.
func (s *Service) ByDate(ctx context.Context, date string) (apod.Picture, error) {
	if err := s.ready(); err != nil {
		return apod.Picture{}, err
	}
	date = strings.TrimSpace(date)
	if date == "" {
		return apod.Picture{}, ErrNoDate
	}
	if !apod.IsDateShaped(date) {
		return apod.Picture{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}

	v := viewmodel.NewDate(s.Source, s.Logger)
	v.Select(date)
	if err := v.Run(ctx); err != nil {
		return apod.Picture{}, errors.New(v.State.Error())
	}
	p, _ := v.State.Value()
	return p, nil
}

// Recent returns the last days pictures in backend order. Zero days uses the
// configured window.
func (s *Service) Recent(ctx context.Context, days int) (RecentResult, error) {
	if err := s.ready(); err != nil {
		return RecentResult{}, err
	}
	if days == 0 {
		days = s.RecentDays
	}
	if days < 0 || days > MaxRecentDays {
		return RecentResult{}, fmt.Errorf("days must be between 1 and %d", MaxRecentDays)
	}

	v := viewmodel.NewRecent(s.Source, days, s.Logger)
	if err := v.Run(ctx); err != nil {
		return RecentResult{}, errors.New(v.State.Error())
	}
	pics, _ := v.State.Value()
	return RecentResult{Days: v.Days, Count: len(pics), Pictures: pics}, nil
}
