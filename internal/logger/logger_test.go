package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mohamedlefliti/projetennaciria/internal/config"
)

func TestNew_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l, closer, err := New(config.LogConfig{Level: "warn"}, &buf)
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	defer closer.Close()

	l.Info().Msg("hidden")
	l.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	var buf bytes.Buffer
	l, closer, err := New(config.LogConfig{Level: "info", File: path}, &buf)
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	l.Info().Str("action", "add").Msg("transaction added")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"action":"add"`) {
		t.Errorf("log file = %q, want JSON field action", data)
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, _, err := New(config.LogConfig{Level: "loud"}, &bytes.Buffer{}); err == nil {
		t.Error("New() with bad level error = nil, want error")
	}
}
