// Package serve runs the HTML page over HTTP.
package serve

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"tableflip.dev/apod/pkg/logging"
	"tableflip.dev/apod/pkg/viewmodel"
	"tableflip.dev/apod/pkg/web"
)

// DefaultAddr is where the page is served unless configured otherwise.
const DefaultAddr = "127.0.0.1:3000"

// Serve coordinates HTTP server startup and shutdown.
type Serve struct {
	Source     viewmodel.Source
	RecentDays int
	Logger     *slog.Logger
	Addr       string
	// OnListening is called once the listener is bound.
	OnListening func(net.Addr)
}

// Handler returns the routes: the page at "/" and a liveness probe.
func (s *Serve) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", &web.Handler{Source: s.Source, RecentDays: s.RecentDays, Logger: s.Logger})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// Do serves until ctx is cancelled.
func (s *Serve) Do(ctx context.Context) error {
	if s.Source == nil {
		return errors.New("can not serve, no backend")
	}
	logger := s.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	addr := s.Addr
	if addr == "" {
		addr = DefaultAddr
	}

	return ListenAndServe(ctx, addr, s.Handler(), func(a net.Addr) {
		logger.Info("serving apod page", "addr", a.String())
		if s.OnListening != nil {
			s.OnListening(a)
		}
	})
}

// ListenAndServe binds addr and serves h until ctx is done, then drains
// open requests for up to five seconds. onListening, if set, sees the bound
// address before the first request is accepted.
func ListenAndServe(ctx context.Context, addr string, h http.Handler, onListening func(net.Addr)) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	if onListening != nil {
		onListening(ln.Addr())
	}

	srv := &http.Server{Handler: h, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		drain, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(drain)
	}()

	if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
