package main

// Notes:
// - getenv is injected, so nothing here touches the process environment.

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-tcglabels/internal/config"
)

func getenvFrom(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vars map[string]string
		want envConfig
	}{
		{name: "empty", vars: nil, want: envConfig{}},
		{
			name: "all set",
			vars: map[string]string{
				"TCGLABELS_CONFIG":     "/etc/labels.yaml",
				"TCGLABELS_TIMEOUT":    "2m",
				"TCGLABELS_OUTPUT_DIR": "/srv/labels",
			},
			want: envConfig{ConfigPath: "/etc/labels.yaml", Timeout: 2 * time.Minute, OutputDir: "/srv/labels"},
		},
		{name: "invalid timeout ignored", vars: map[string]string{"TCGLABELS_TIMEOUT": "later"}, want: envConfig{}},
		{name: "negative timeout ignored", vars: map[string]string{"TCGLABELS_TIMEOUT": "-5s"}, want: envConfig{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := loadEnvConfig(getenvFrom(tt.vars)); *got != tt.want {
				t.Errorf("loadEnvConfig() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Env wins over the config file
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("overrides", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Output.Dir = "/from/file"
		applyEnvConfig(&envConfig{OutputDir: "/from/env", Timeout: 90 * time.Second}, cfg)

		if cfg.Output.Dir != "/from/env" {
			t.Errorf("Output.Dir = %q, want /from/env", cfg.Output.Dir)
		}
		if cfg.Render.Timeout != "1m30s" {
			t.Errorf("Render.Timeout = %q, want 1m30s", cfg.Render.Timeout)
		}
	})

	t.Run("empty env keeps config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Output.Dir = "/from/file"
		applyEnvConfig(&envConfig{}, cfg)

		if cfg.Output.Dir != "/from/file" || cfg.Render.Timeout != config.DefaultTimeout.String() {
			t.Errorf("config changed: %+v", cfg)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	warnUnknownEnvVars(logger, []string{
		"TCGLABELS_CONFIG=labels",
		"TCGLABELS_TIMEOUT=1m",
		"TCGLABELS_OUTPUT_DIR=/out",
		"TCGLABELS_OUTPT_DIR=/typo",
		"TCGLABELS_TIMOUT=1m",
		"PATH=/usr/bin",
		"MY_TCGLABELS_THING=x",
	})

	out := buf.String()
	for _, want := range []string{"TCGLABELS_OUTPT_DIR", "TCGLABELS_TIMOUT"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing warning for %s:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "unknown environment variable"); n != 2 {
		t.Errorf("got %d warnings, want 2:\n%s", n, out)
	}
}
