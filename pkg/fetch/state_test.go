package fetch

import (
	"context"
	"errors"
	"testing"
)

func TestNewInitialLoading(t *testing.T) {
	s := New[string](Options{StartLoading: true})
	if !s.Loading() || s.Phase() != Loading {
		t.Fatalf("expected loading state, got %v", s.Phase())
	}

	idle := New[string](Options{})
	if idle.Loading() || idle.Phase() != Idle {
		t.Fatalf("expected idle state, got %v", idle.Phase())
	}
}

func TestRunSuccess(t *testing.T) {
	s := New[string](Options{Name: "today", ErrorMessage: "boom"})

	var loadingDuring bool
	err := s.Run(context.Background(), func(ctx context.Context) (string, error) {
		loadingDuring = s.Loading()
		if s.Error() != "" {
			t.Fatalf("error must be cleared while loading")
		}
		return "value", nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !loadingDuring {
		t.Fatalf("expected loading while fetching")
	}
	if s.Loading() {
		t.Fatalf("expected loading released")
	}
	v, ok := s.Value()
	if !ok || v != "value" || s.Error() != "" || s.Phase() != Ready {
		t.Fatalf("unexpected state: %q %v %q %v", v, ok, s.Error(), s.Phase())
	}
}

func TestFailureKeepsPreviousValue(t *testing.T) {
	s := New[string](Options{ErrorMessage: "Failed to load recent APODs."})
	_ = s.Run(context.Background(), func(context.Context) (string, error) { return "first", nil })

	cause := errors.New("connection refused")
	err := s.Run(context.Background(), func(context.Context) (string, error) { return "", cause })
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be returned, got %v", err)
	}
	if s.Error() != "Failed to load recent APODs." {
		t.Fatalf("unexpected error message %q", s.Error())
	}
	if v, ok := s.Value(); !ok || v != "first" {
		t.Fatalf("expected previous value kept, got %q %v", v, ok)
	}
	if s.Loading() || s.Phase() != Failed {
		t.Fatalf("expected failed phase, got %v", s.Phase())
	}
}

func TestClearOnStartDropsValue(t *testing.T) {
	s := New[string](Options{ClearOnStart: true, ErrorMessage: "Failed to load APOD for that date."})
	_ = s.Run(context.Background(), func(context.Context) (string, error) { return "first", nil })

	s.Begin()
	if _, ok := s.Value(); ok {
		t.Fatalf("expected value cleared on begin")
	}
}

func TestLoadingAndErrorNeverCoexist(t *testing.T) {
	s := New[int](Options{ErrorMessage: "x"})
	t1 := s.Begin()
	s.Fail(t1, errors.New("nope"))
	if s.Error() == "" {
		t.Fatalf("expected error")
	}
	s.Begin()
	if s.Error() != "" {
		t.Fatalf("error must clear when loading begins")
	}
	if s.Phase() != Loading {
		t.Fatalf("expected loading, got %v", s.Phase())
	}
}

func TestSupersededCompletionIsDropped(t *testing.T) {
	s := New[string](Options{ClearOnStart: true, ErrorMessage: "x"})

	first := s.Begin()
	second := s.Begin()
	if first == second {
		t.Fatalf("tickets must be unique")
	}

	if s.Resolve(first, "stale") {
		t.Fatalf("stale ticket must not apply")
	}
	if !s.Loading() {
		t.Fatalf("latest request still outstanding")
	}
	if s.Fail(first, errors.New("late")) {
		t.Fatalf("stale failure must not apply")
	}
	if s.Error() != "" {
		t.Fatalf("stale failure leaked into state")
	}

	if !s.Complete(second, "fresh", nil) {
		t.Fatalf("latest ticket must apply")
	}
	if v, _ := s.Value(); v != "fresh" {
		t.Fatalf("expected fresh value, got %q", v)
	}
	if s.Resolve(second, "again") {
		t.Fatalf("completed ticket must not apply twice")
	}
}

func TestRunReleasesOnPanic(t *testing.T) {
	s := New[string](Options{})
	func() {
		defer func() { _ = recover() }()
		_ = s.Run(context.Background(), func(context.Context) (string, error) {
			panic("decoder exploded")
		})
	}()
	if s.Loading() {
		t.Fatalf("loading must be released after panic")
	}
}

func TestStartPairsTicket(t *testing.T) {
	s := New[string](Options{})
	req := s.Start(func(context.Context) (string, error) { return "ok", nil })
	if req.Ticket == "" || s.Pending() != req.Ticket {
		t.Fatalf("expected pending ticket %q, got %q", req.Ticket, s.Pending())
	}
	v, err := req.Fetch(context.Background())
	s.Complete(req.Ticket, v, err)
	if s.Pending() != "" {
		t.Fatalf("expected no pending ticket after completion")
	}
}
