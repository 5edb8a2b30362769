package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"tableflip.dev/apod/pkg/client"
	apod "tableflip.dev/apod/pkg/picture"
)

func backend(t *testing.T, failToday bool) *client.Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/apod/today", func(w http.ResponseWriter, r *http.Request) {
		if failToday {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(apod.Picture{Date: "2024-01-01", Title: "Horsehead", MediaType: apod.Image, URL: "http://img/1", Copyright: "Jane"})
	})
	mux.HandleFunc("/api/apod", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("date") != "2024-01-02" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(apod.Picture{Date: "2024-01-02", Title: "Launch", MediaType: apod.Video, URL: "https://youtube.com/embed/x"})
	})
	mux.HandleFunc("/api/apod/recent", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]apod.Picture{
			{Date: "2024-01-02", Title: "Launch", MediaType: apod.Video},
			{Date: "2024-01-01", Title: "Horsehead", MediaType: apod.Image, URL: "http://img/1"},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c, err := client.New(client.Options{BaseURL: srv.URL})
	require.NoError(t, err)
	return c
}

func get(t *testing.T, h http.Handler, target string) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return rec.Code, string(body)
}

func TestPageWithoutDate(t *testing.T) {
	h := &Handler{Source: backend(t, false), RecentDays: 2}
	code, body := get(t, h, "/")

	require.Equal(t, http.StatusOK, code)
	require.Contains(t, body, `<img src="http://img/1" alt="Horsehead">`)
	require.Contains(t, body, "2024-01-01 · © Jane")
	require.Contains(t, body, "Recent APOD Gallery (last 2 days)")
	require.Contains(t, body, `<div class="video">Video</div>`)
	require.NotContains(t, body, "<iframe")

	// The date card stays idle until a date is submitted.
	dateCard := body[strings.Index(body, `id="date"`):strings.Index(body, `id="recent"`)]
	require.NotContains(t, dateCard, `class="loading"`)
	require.NotContains(t, dateCard, `class="error"`)
	require.NotContains(t, dateCard, "<h3>")

	require.Less(t, strings.Index(body, `data-key="2024-01-02"`), strings.Index(body, `data-key="2024-01-01"`))
}

func TestPageWithVideoDate(t *testing.T) {
	h := &Handler{Source: backend(t, false), RecentDays: 2}
	_, body := get(t, h, "/?date=2024-01-02")

	require.Contains(t, body, `<iframe src="https://youtube.com/embed/x"`)
	require.Contains(t, body, `allow="`+VideoAllow+`" allowfullscreen`)
	require.Contains(t, body, `value="2024-01-02"`)
}

func TestPageDateFailure(t *testing.T) {
	h := &Handler{Source: backend(t, false), RecentDays: 2}
	_, body := get(t, h, "/?date=2024-02-30")

	require.Contains(t, body, "Failed to load APOD for that date.")
	require.Contains(t, body, "Horsehead")
}

func TestPageTodayFailure(t *testing.T) {
	h := &Handler{Source: backend(t, true), RecentDays: 2}
	_, body := get(t, h, "/")

	require.Contains(t, body, "Failed to load today&#39;s APOD. Please try again.")
	require.NotContains(t, body, "boom")
}

func TestUnknownPathAndMethod(t *testing.T) {
	h := &Handler{Source: backend(t, false)}

	code, _ := get(t, h, "/favicon.ico")
	require.Equal(t, http.StatusNotFound, code)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
