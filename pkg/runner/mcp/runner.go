package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/apod/pkg/logging"
	"tableflip.dev/apod/pkg/runner/serve"
	"tableflip.dev/apod/pkg/viewmodel"
)

// Transport is how the MCP server talks to its client.
type Transport string

const (
	TransportHTTP  Transport = "http"
	TransportStdio Transport = "stdio"
)

const (
	// DefaultAddr stays clear of the backend's usual :8080.
	DefaultAddr = "127.0.0.1:8090"
	DefaultPath = "/mcp"
)

const instructions = "Look up NASA Astronomy Pictures of the Day. " +
	"Use apod_today for the current picture, apod_by_date for a YYYY-MM-DD date " +
	"and apod_recent for the gallery of the last days, newest first as the backend orders it."

// Runner serves the APOD views as MCP tools and resources.
type Runner struct {
	Source     viewmodel.Source
	RecentDays int
	Logger     *slog.Logger
	Version    string

	Transport Transport
	Addr      string
	Path      string
	// OnListening is called with the bound address when serving HTTP.
	OnListening func(net.Addr)
}

// NewServer builds the MCP server around svc with every tool and resource
// registered.
func NewServer(svc *Service, version string) *server.MCPServer {
	if version == "" {
		version = "dev"
	}
	srv := server.NewMCPServer(
		"apod MCP",
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions(instructions),
		server.WithRecovery(),
	)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}

// Do serves until ctx is done (http) or stdin closes (stdio).
func (r Runner) Do(ctx context.Context) error {
	if r.Source == nil {
		return errors.New("can not start mcp, no backend")
	}
	logger := r.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	srv := NewServer(NewService(r.Source, r.RecentDays, logger), r.Version)

	switch r.Transport {
	case "", TransportHTTP:
		return r.serveHTTP(ctx, srv, logger)
	case TransportStdio:
		logger.Info("starting mcp server", "transport", TransportStdio)
		return server.ServeStdio(srv)
	default:
		return fmt.Errorf("unknown mcp transport %q, expected http or stdio", r.Transport)
	}
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer, logger *slog.Logger) error {
	addr := r.Addr
	if addr == "" {
		addr = DefaultAddr
	}
	path := EndpointPath(r.Path)

	mux := http.NewServeMux()
	mux.Handle(path, server.NewStreamableHTTPServer(srv))

	return serve.ListenAndServe(ctx, addr, mux, func(a net.Addr) {
		logger.Info("starting mcp server", "transport", TransportHTTP, "addr", a.String(), "path", path)
		if r.OnListening != nil {
			r.OnListening(a)
		}
	})
}

// EndpointPath cleans a user supplied endpoint path, defaulting to /mcp.
func EndpointPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return DefaultPath
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
