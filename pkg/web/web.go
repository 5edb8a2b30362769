// Package web renders the three APOD cards as a single HTML page.
package web

import (
	"bytes"
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"tableflip.dev/apod/pkg/fetch"
	"tableflip.dev/apod/pkg/logging"
	apod "tableflip.dev/apod/pkg/picture"
	"tableflip.dev/apod/pkg/viewmodel"
)

// VideoAllow is the permission list of embedded video frames.
const VideoAllow = "accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture"

// Handler serves the page at "/". The optional "date" query parameter loads
// the date card; without it the card stays idle.
type Handler struct {
	Source     viewmodel.Source
	RecentDays int
	Logger     *slog.Logger
}

type card struct {
	Loading string
	Error   string
	Picture *apod.Picture
}

type page struct {
	Today     card
	Date      card
	Selected  string
	Days      int
	Recent    []apod.Picture
	RecentErr string
}

func (h *Handler) logger() *slog.Logger {
	if h.Logger == nil {
		return logging.Discard()
	}
	return h.Logger
}

// ServeHTTP renders the page. Today and recent load concurrently.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	p := h.load(r.Context(), r.URL.Query().Get("date"))

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, p); err != nil {
		h.logger().Error("render page", "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) load(ctx context.Context, date string) page {
	logger := h.logger()
	today := viewmodel.NewToday(h.Source, logger)
	recent := viewmodel.NewRecent(h.Source, h.RecentDays, logger)
	selected := viewmodel.NewDate(h.Source, logger)
	if date = strings.TrimSpace(date); date != "" {
		selected.Select(date)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = today.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		_ = recent.Run(ctx)
	}()
	if date != "" {
		_ = selected.Run(ctx)
	}
	wg.Wait()

	p := page{
		Today:    pictureCard(today.State, "Loading today's picture..."),
		Date:     pictureCard(selected.State, "Loading APOD for "+selected.Selected+"..."),
		Selected: selected.Selected,
		Days:     recent.Days,
	}
	switch recent.State.Phase() {
	case fetch.Failed:
		p.RecentErr = recent.State.Error()
	case fetch.Ready:
		p.Recent, _ = recent.State.Value()
	}
	return p
}

func pictureCard(s fetch.State[apod.Picture], loading string) card {
	switch s.Phase() {
	case fetch.Loading:
		return card{Loading: loading}
	case fetch.Failed:
		return card{Error: s.Error()}
	case fetch.Ready:
		v, _ := s.Value()
		return card{Picture: &v}
	default:
		return card{}
	}
}

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"videoAllow": func() string { return VideoAllow },
}).Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>NASA APOD Explorer</title>
<style>
body { font-family: system-ui, sans-serif; background: #0b0d17; color: #e6e6f0; margin: 0 auto; max-width: 960px; padding: 1rem; }
section { background: #161a2e; border-radius: 12px; padding: 1rem 1.5rem; margin-bottom: 1.5rem; }
img, iframe { max-width: 100%; border: 0; border-radius: 8px; }
iframe { width: 100%; aspect-ratio: 16 / 9; }
.meta, .hint, .loading { color: #9a9ab0; }
.error { color: #ff6b6b; font-weight: bold; }
.gallery { display: grid; grid-template-columns: repeat(auto-fill, minmax(200px, 1fr)); gap: 1rem; }
.cell { background: #1f2440; border-radius: 8px; padding: .5rem; }
.video { display: flex; align-items: center; justify-content: center; height: 120px; background: #000; border-radius: 6px; }
</style>
</head>
<body>
<header><h1>🚀 NASA APOD Explorer</h1></header>
{{define "picture"}}
<h3>{{.Title}}</h3>
<p class="meta">{{.Meta}}</p>
{{if .IsImage}}<img src="{{.URL}}" alt="{{.Title}}">{{end}}
{{if .IsVideo}}<iframe src="{{.URL}}" title="{{.Title}}" allow="{{videoAllow}}" allowfullscreen></iframe>{{end}}
<p>{{.Explanation}}</p>
{{end}}
{{define "card"}}
{{if .Loading}}<p class="loading">{{.Loading}}</p>
{{else if .Error}}<p class="error">{{.Error}}</p>
{{else if .Picture}}{{template "picture" .Picture}}{{end}}
{{end}}
<section id="today">
<h2>Today's APOD</h2>
{{template "card" .Today}}
</section>
<section id="date">
<h2>View APOD by Date</h2>
<p class="hint">Select a date and click "Load APOD" to see that day's picture.</p>
<form method="get" action="/">
<input type="date" name="date" value="{{.Selected}}">
<button type="submit">Load APOD</button>
</form>
{{template "card" .Date}}
</section>
<section id="recent">
<h2>Recent APOD Gallery (last {{.Days}} days)</h2>
{{if .RecentErr}}<p class="error">{{.RecentErr}}</p>
{{else if .Recent}}<div class="gallery">
{{range .Recent}}<div class="cell" data-key="{{.Key}}">
{{if .IsImage}}<img src="{{.URL}}" alt="{{.Title}}">{{end}}
{{if .IsVideo}}<div class="video">Video</div>{{end}}
<h4>{{.Title}}</h4>
<p class="meta">{{.Date}}</p>
</div>
{{end}}</div>{{end}}
</section>
</body>
</html>
`
