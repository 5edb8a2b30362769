// Package client talks to the APOD backend over HTTP.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/apod/pkg/picture"
)

// DefaultBaseURL is the backend address used when none is configured.
const DefaultBaseURL = "http://localhost:8080"

// ErrMalformed is returned when a success response cannot be decoded.
var ErrMalformed = errors.New("client: malformed response body")

// StatusError reports a non-2xx response. The body is never read.
type StatusError struct {
	URL    string
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("client: GET %s: backend error: %s", e.URL, e.Status)
}

// Endpoint describes one backend resource: a path below the base URL and the
// query parameters to send.
type Endpoint struct {
	Path  string
	Query url.Values
}

// TodayEndpoint resolves today's picture.
func TodayEndpoint() Endpoint {
	return Endpoint{Path: "/api/apod/today"}
}

// ByDateEndpoint resolves the picture for a YYYY-MM-DD date. The date is
// passed through untouched; the backend decides whether it exists.
func ByDateEndpoint(date string) Endpoint {
	return Endpoint{Path: "/api/apod", Query: url.Values{"date": {date}}}
}

// RecentEndpoint resolves a window of the last days pictures.
func RecentEndpoint(days int) Endpoint {
	return Endpoint{Path: "/api/apod/recent", Query: url.Values{"days": {strconv.Itoa(days)}}}
}

// Options configures a Client.
type Options struct {
	BaseURL string
	// Timeout bounds a single request. Zero means no timeout.
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client issues GET requests against the backend.
type Client struct {
	base       *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// New returns a Client for the configured backend.
func New(opts Options) (*Client, error) {
	raw := strings.TrimSpace(opts.BaseURL)
	if raw == "" {
		raw = DefaultBaseURL
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("client: invalid backend url %q: %w", raw, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("client: backend url %q must include scheme and host", raw)
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{base: base, httpClient: hc, logger: logger}, nil
}

// BaseURL returns the backend address the client resolves endpoints against.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// URL resolves an endpoint to an absolute URL.
func (c *Client) URL(e Endpoint) string {
	u := *c.base
	u.Path = strings.TrimSuffix(c.base.Path, "/") + e.Path
	u.RawQuery = ""
	if len(e.Query) > 0 {
		u.RawQuery = e.Query.Encode()
	}
	return u.String()
}

// Today fetches today's picture.
func (c *Client) Today(ctx context.Context) (picture.Picture, error) {
	return Get[picture.Picture](ctx, c, TodayEndpoint())
}

// ByDate fetches the picture for the given YYYY-MM-DD date.
func (c *Client) ByDate(ctx context.Context, date string) (picture.Picture, error) {
	return Get[picture.Picture](ctx, c, ByDateEndpoint(date))
}

// Recent fetches the last days pictures in backend order.
func (c *Client) Recent(ctx context.Context, days int) ([]picture.Picture, error) {
	return Get[[]picture.Picture](ctx, c, RecentEndpoint(days))
}

// Get issues a GET for the endpoint and decodes the JSON body into T.
// Any non-2xx status fails with *StatusError without reading the body.
func Get[T any](ctx context.Context, c *Client, e Endpoint) (T, error) {
	var zero T

	target := c.URL(e)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return zero, fmt.Errorf("client: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, fmt.Errorf("client: GET %s: %w", target, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("backend response",
		"url", target,
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, &StatusError{URL: target, Code: resp.StatusCode, Status: resp.Status}
	}

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return zero, fmt.Errorf("%w: GET %s: %v", ErrMalformed, target, err)
	}
	return out, nil
}
