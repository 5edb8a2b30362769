package picture

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDecodeBackendRecord(t *testing.T) {
	raw := `{"date":"2024-01-01","title":"X","explanation":"E","url":"http://img","media_type":"image","copyright":"Jane"}`

	var p Picture
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Date != "2024-01-01" || p.Title != "X" || p.URL != "http://img" {
		t.Fatalf("unexpected picture %#v", p)
	}
	if !p.IsImage() || p.IsVideo() {
		t.Fatalf("expected image media, got %q", p.MediaType)
	}
	if p.Key() != "2024-01-01" {
		t.Fatalf("expected key to be the date, got %q", p.Key())
	}
}

func TestMediaTypeKnown(t *testing.T) {
	tests := []struct {
		in   MediaType
		want bool
	}{
		{Image, true},
		{Video, true},
		{"other", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := tt.in.Known(); got != tt.want {
			t.Errorf("%q.Known() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMeta(t *testing.T) {
	p := Picture{Date: "2024-01-01"}
	if got := p.Meta(); got != "2024-01-01" {
		t.Fatalf("meta without copyright = %q", got)
	}
	p.Copyright = " Jane Doe\n"
	if got := p.Meta(); got != "2024-01-01 · © Jane Doe" {
		t.Fatalf("meta with copyright = %q", got)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !got.Equal(time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time %v", got)
	}
	if _, err := ParseDate("2024-02-30"); err == nil {
		t.Fatalf("expected error for impossible date")
	}
	if FormatDate(got) != "2024-02-29" {
		t.Fatalf("round trip mismatch")
	}
}

func TestIsDateShaped(t *testing.T) {
	for in, want := range map[string]bool{
		"2024-02-29": true,
		"2024-02-30": true,
		"2024-2-29":  false,
		"2024/02/29": false,
		"yesterday!": false,
		"":           false,
	} {
		if got := IsDateShaped(in); got != want {
			t.Errorf("IsDateShaped(%q) = %v, want %v", in, got, want)
		}
	}
}
