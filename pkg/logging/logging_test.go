package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseLevel("chatty"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestOpenFallback(t *testing.T) {
	var buf bytes.Buffer
	l, c, err := Open("", "debug", &buf)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer c.Close()

	l.Debug("hello", "view", "today")
	if !strings.Contains(buf.String(), "view=today") {
		t.Fatalf("expected structured output, got %q", buf.String())
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apod.log")
	l, c, err := Open(path, "info", nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	l.Info("fetch failed", "error", "boom")
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(b), "fetch failed") {
		t.Fatalf("expected log line in file, got %q", string(b))
	}
}
