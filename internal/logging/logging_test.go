package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{in: "debug", want: log.DebugLevel},
		{in: "info", want: log.InfoLevel},
		{in: "warn", want: log.WarnLevel},
		{in: "warning", want: log.WarnLevel},
		{in: "error", want: log.ErrorLevel},
		{in: "fatal", want: log.FatalLevel},
		{in: "", want: log.InfoLevel},
		{in: "bogus", want: log.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: log.WarnLevel, Prefix: "todoapp"})

	logger.Info("should be dropped")
	logger.Warn("should appear")

	out := buf.String()
	if strings.Contains(out, "should be dropped") {
		t.Error("info line leaked through a warn-level logger")
	}
	if !strings.Contains(out, "should appear") {
		t.Errorf("warn line missing from output: %q", out)
	}
}

func TestToFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todoapp.log")

	logger, closer, err := ToFile(path, Options{Level: log.DebugLevel})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	logger.Debug("first run")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	logger, closer, err = ToFile(path, Options{Level: log.DebugLevel})
	if err != nil {
		t.Fatalf("expected no error on reopen, got %v", err)
	}
	logger.Debug("second run")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(b)
	if !strings.Contains(out, "first run") || !strings.Contains(out, "second run") {
		t.Errorf("expected both runs in the file, got %q", out)
	}
}

func TestDiscardNeverPanics(t *testing.T) {
	logger := Discard()
	logger.Info("nowhere", "key", "value")
	logger.Error("still nowhere")
}
