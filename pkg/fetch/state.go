// Package fetch implements the request lifecycle shared by every view:
// a tri-state record of loading, error and last fetched value.
//
// A State is owned by exactly one goroutine (the Bubble Tea update loop, an
// HTTP handler, or a CLI runner) and is not safe for concurrent use.
package fetch

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// Ticket identifies one invocation of the lifecycle. Only the completion
// carrying the most recent ticket is applied.
type Ticket string

// Func performs the I/O of one request.
type Func[T any] func(ctx context.Context) (T, error)

// Phase is the render decision derived from a State.
type Phase int

const (
	// Idle means nothing has been requested yet, or nothing was ever loaded.
	Idle Phase = iota
	// Loading means a request is outstanding.
	Loading
	// Failed means the last request failed and nothing is outstanding.
	Failed
	// Ready means a value is present and the last request succeeded.
	Ready
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Failed:
		return "failed"
	case Ready:
		return "ready"
	default:
		return "idle"
	}
}

// Options parameterizes a State for one view.
type Options struct {
	// Name labels log lines.
	Name string
	// ErrorMessage replaces every failure cause in the rendered state.
	ErrorMessage string
	// StartLoading creates the state already loading, for views that fetch
	// on mount.
	StartLoading bool
	// ClearOnStart drops the previous value when a request begins.
	ClearOnStart bool
	Logger       *slog.Logger
}

// State is the per-view fetch record.
type State[T any] struct {
	opts Options

	value   T
	has     bool
	loading bool
	err     string

	current Ticket
}

// New returns a State configured by opts.
func New[T any](opts Options) State[T] {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return State[T]{opts: opts, loading: opts.StartLoading}
}

// Value returns the last successfully fetched value.
func (s State[T]) Value() (T, bool) {
	return s.value, s.has
}

// Loading reports whether a request is outstanding.
func (s State[T]) Loading() bool { return s.loading }

// Error returns the display message of the last failure, or "".
func (s State[T]) Error() string { return s.err }

// Name returns the label the state was created with.
func (s State[T]) Name() string { return s.opts.Name }

// Pending returns the ticket of the outstanding request, or "".
func (s State[T]) Pending() Ticket {
	if !s.loading {
		return ""
	}
	return s.current
}

// Phase folds the record into exactly one render decision.
func (s State[T]) Phase() Phase {
	switch {
	case s.loading:
		return Loading
	case s.err != "":
		return Failed
	case s.has:
		return Ready
	default:
		return Idle
	}
}

// Begin marks a new request as outstanding and returns its ticket. Any
// earlier outstanding request is superseded.
func (s *State[T]) Begin() Ticket {
	s.current = Ticket(uuid.NewString())
	s.loading = true
	s.err = ""
	if s.opts.ClearOnStart {
		var zero T
		s.value = zero
		s.has = false
	}
	return s.current
}

// Resolve stores v as the fetched value. It reports false, and changes
// nothing, when t is not the latest ticket.
func (s *State[T]) Resolve(t Ticket, v T) bool {
	if !s.accepts(t) {
		s.opts.Logger.Debug("dropping superseded response", "view", s.opts.Name, "ticket", t)
		return false
	}
	s.value = v
	s.has = true
	s.err = ""
	s.loading = false
	return true
}

// Fail records the view's failure message and logs cause. The previous value
// is kept. It reports false, and changes nothing, when t is not the latest
// ticket.
func (s *State[T]) Fail(t Ticket, cause error) bool {
	if !s.accepts(t) {
		s.opts.Logger.Debug("dropping superseded failure", "view", s.opts.Name, "ticket", t, "error", cause)
		return false
	}
	s.opts.Logger.Error("fetch failed", "view", s.opts.Name, "error", cause)
	s.err = s.opts.ErrorMessage
	if s.err == "" {
		s.err = "Failed to load."
	}
	s.loading = false
	return true
}

// Complete applies the outcome of the request identified by t.
func (s *State[T]) Complete(t Ticket, v T, err error) bool {
	if err != nil {
		return s.Fail(t, err)
	}
	return s.Resolve(t, v)
}

// Request is a begun lifecycle whose I/O has not run yet. Front-ends run
// Fetch wherever suits them and hand the outcome back through Complete.
type Request[T any] struct {
	Ticket Ticket
	Fetch  Func[T]
}

// Start begins a request and pairs its ticket with fn.
func (s *State[T]) Start(fn Func[T]) Request[T] {
	return Request[T]{Ticket: s.Begin(), Fetch: fn}
}

// Run performs Begin, fn and Resolve or Fail in sequence. The loading flag is
// released on every exit path, including a panic inside fn.
func (s *State[T]) Run(ctx context.Context, fn Func[T]) error {
	t := s.Begin()
	defer s.release(t)

	v, err := fn(ctx)
	if err != nil {
		s.Fail(t, err)
		return err
	}
	s.Resolve(t, v)
	return nil
}

func (s *State[T]) release(t Ticket) {
	if s.current == t {
		s.loading = false
	}
}

func (s *State[T]) accepts(t Ticket) bool {
	return t != "" && t == s.current && s.loading
}
