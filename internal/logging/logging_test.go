package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{LevelQuiet, slog.LevelWarn},
		{LevelNormal, slog.LevelInfo},
		{LevelVerbose, slog.LevelDebug},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNew_FiltersByVerbosity(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf, LevelQuiet)

	logger.Info("records built", "count", 3)
	logger.Warn("template has no sending_address", "path", "label_template.html")

	out := buf.String()
	if strings.Contains(out, "records built") {
		t.Errorf("quiet logger wrote info record:\n%s", out)
	}
	if !strings.Contains(out, "sending_address") {
		t.Errorf("quiet logger dropped warning:\n%s", out)
	}
}

func TestNew_NoColorForBuffers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(&buf, LevelVerbose).Debug("rendering", "labels", 2)

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected no ANSI escapes for non-terminal writer, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "labels=2") {
		t.Errorf("expected attribute in output, got %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	logger := Discard()
	if logger.Enabled(t.Context(), slog.LevelError) {
		t.Error("Discard logger should not be enabled")
	}
}
