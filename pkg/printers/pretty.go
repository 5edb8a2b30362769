package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	apod "tableflip.dev/apod/pkg/picture"
)

const defaultWidth = 80

// PrettyPrint writes pictures for humans. A zero value writes to color.Output.
type PrettyPrint struct {
	Out   io.Writer
	Width int
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return defaultWidth
	}
	return pp.Width
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " picture")
	default:
		_, _ = c.Fprintln(pp.out(), " pictures")
	}
}

// Picture prints one picture: title, meta line, media and explanation.
func (pp *PrettyPrint) Picture(p apod.Picture) {
	w := pp.out()
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	link := color.New(color.FgHiBlue, color.Underline)

	_, _ = bold.Fprintln(w, p.Title)
	_, _ = faint.Fprintln(w, p.Meta())
	if media := Media(p); media != "" {
		label, url, _ := strings.Cut(media, ": ")
		_, _ = fmt.Fprintf(w, "%s: ", label)
		_, _ = link.Fprintln(w, url)
	}
	if p.Explanation != "" {
		_, _ = fmt.Fprintln(w, "")
		_, _ = fmt.Fprintln(w, wordwrap.String(p.Explanation, pp.width()))
	}
	_, _ = fmt.Fprintln(w, "")
}

// Gallery prints the pictures as a table in the order given.
func (pp *PrettyPrint) Gallery(pictures ...apod.Picture) {
	if len(pictures) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	bold := color.New(color.Bold)
	video := color.New(color.FgYellow, color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = uint(pp.width() / 2)
	tbl.AddRow(bold.Sprint("Date"), bold.Sprint("Media"), bold.Sprint("Title"))
	for _, p := range pictures {
		var media string
		switch p.MediaType {
		case apod.Image:
			media = "image"
		case apod.Video:
			media = video.Sprint("Video")
		}
		tbl.AddRow(p.Date, media, p.Title)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Media is the plain media line for p, empty for unknown media types.
func Media(p apod.Picture) string {
	switch p.MediaType {
	case apod.Image:
		return "Image: " + p.URL
	case apod.Video:
		return "Video: " + p.URL
	default:
		return ""
	}
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	if w == nil {
		w = color.Output
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
