package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"tableflip.dev/apod/pkg/picture"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := New(Options{BaseURL: srv.URL})
	require.NoError(t, err)
	return c
}

func TestTodayDecodesRecord(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/apod/today", r.URL.Path)
		require.Empty(t, r.URL.RawQuery)
		fmt.Fprint(w, `{"date":"2024-01-01","title":"X","media_type":"image","url":"http://img","explanation":"E"}`)
	})

	got, err := c.Today(context.Background())
	require.NoError(t, err)
	require.Equal(t, picture.Picture{
		Date:        "2024-01-01",
		Title:       "X",
		MediaType:   picture.Image,
		URL:         "http://img",
		Explanation: "E",
	}, got)
}

func TestByDatePassesDateQuery(t *testing.T) {
	var gotDate string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/apod", r.URL.Path)
		gotDate = r.URL.Query().Get("date")
		fmt.Fprint(w, `{"date":"2023-07-04","title":"Fireworks","media_type":"video","url":"http://vid"}`)
	})

	got, err := c.ByDate(context.Background(), "2023-07-04")
	require.NoError(t, err)
	require.Equal(t, "2023-07-04", gotDate)
	require.True(t, got.IsVideo())
}

func TestRecentKeepsBackendOrder(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/apod/recent", r.URL.Path)
		require.Equal(t, "3", r.URL.Query().Get("days"))
		fmt.Fprint(w, `[{"date":"2024-01-03"},{"date":"2024-01-01"},{"date":"2024-01-02"}]`)
	})

	got, err := c.Recent(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, []string{"2024-01-03", "2024-01-01", "2024-01-02"},
		[]string{got[0].Date, got[1].Date, got[2].Date})
}

func TestNonSuccessStatusIsStatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"date":"2024-02-30","title":"should not be parsed"}`)
	})

	got, err := c.ByDate(context.Background(), "2024-02-30")
	require.Error(t, err)
	require.Equal(t, picture.Picture{}, got)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	require.Equal(t, http.StatusNotFound, se.Code)
	require.Contains(t, se.URL, "date=2024-02-30")
}

func TestMalformedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"date":`)
	})

	_, err := c.Today(context.Background())
	require.ErrorIs(t, err, ErrMalformed)
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := New(Options{BaseURL: base})
	require.NoError(t, err)

	_, err = c.Recent(context.Background(), 8)
	require.Error(t, err)

	var se *StatusError
	require.False(t, errors.As(err, &se))
}

func TestURLResolution(t *testing.T) {
	c, err := New(Options{BaseURL: "http://localhost:8080/proxy/"})
	require.NoError(t, err)

	require.Equal(t, "http://localhost:8080/proxy/api/apod/today", c.URL(TodayEndpoint()))
	require.Equal(t, "http://localhost:8080/proxy/api/apod?date=2024-01-01", c.URL(ByDateEndpoint("2024-01-01")))
	require.Equal(t, "http://localhost:8080/proxy/api/apod/recent?days=8", c.URL(RecentEndpoint(8)))
}

func TestNewDefaultsAndValidation(t *testing.T) {
	c, err := New(Options{})
	require.NoError(t, err)
	require.Equal(t, DefaultBaseURL, c.BaseURL())

	_, err = New(Options{BaseURL: "localhost"})
	require.Error(t, err)
}
