// Package picture models a single Astronomy Picture of the Day record as the
// backend returns it.
package picture

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format used on the wire and in the UI.
const DateLayout = "2006-01-02"

// MediaType selects how a picture's URL is rendered.
type MediaType string

const (
	// Image pictures are shown inline from their URL.
	Image MediaType = "image"
	// Video pictures are embedded players; galleries show a placeholder.
	Video MediaType = "video"
)

// Known reports whether the media type has a renderer.
func (m MediaType) Known() bool {
	return m == Image || m == Video
}

func (m MediaType) String() string {
	return string(m)
}

// Picture is one day's record.
type Picture struct {
	Date           string    `json:"date"`
	Title          string    `json:"title"`
	Explanation    string    `json:"explanation"`
	URL            string    `json:"url"`
	HDURL          string    `json:"hdurl,omitempty"`
	MediaType      MediaType `json:"media_type"`
	Copyright      string    `json:"copyright,omitempty"`
	ServiceVersion string    `json:"service_version,omitempty"`
}

// Key is the identity of a picture inside a recent window.
func (p Picture) Key() string {
	return p.Date
}

// IsImage reports whether the picture renders as an image.
func (p Picture) IsImage() bool { return p.MediaType == Image }

// IsVideo reports whether the picture renders as an embedded video.
func (p Picture) IsVideo() bool { return p.MediaType == Video }

// Meta returns the "<date> · © <copyright>" line shown under the title.
func (p Picture) Meta() string {
	copyright := strings.TrimSpace(p.Copyright)
	if copyright == "" {
		return p.Date
	}
	return fmt.Sprintf("%s · © %s", p.Date, copyright)
}

// Today returns the current local date formatted with DateLayout.
func Today() string {
	return FormatDate(time.Now())
}

// FormatDate formats t as a calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

// IsDateShaped reports whether s has the YYYY-MM-DD shape. Whether that day
// exists, or has a picture, is for the backend to say.
func IsDateShaped(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	for i, r := range s {
		if i == 4 || i == 7 {
			if r != '-' {
				return false
			}
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
