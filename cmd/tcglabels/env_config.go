package main

import (
	"log/slog"
	"strings"
	"time"

	"github.com/alnah/go-tcglabels/internal/config"
)

// envPrefix starts every variable this tool reads.
const envPrefix = "TCGLABELS_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // TCGLABELS_CONFIG: config file name or path
	Timeout    time.Duration // TCGLABELS_TIMEOUT: render timeout
	OutputDir  string        // TCGLABELS_OUTPUT_DIR: where the PDF goes
}

// knownEnvVars lists valid TCGLABELS_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"TCGLABELS_CONFIG":     true,
	"TCGLABELS_TIMEOUT":    true,
	"TCGLABELS_OUTPUT_DIR": true,
	"TCGLABELS_CONTAINER":  true, // read by doctor
}

// loadEnvConfig reads configuration through getenv.
// Unparsable or non-positive timeouts are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("TCGLABELS_CONFIG"),
		OutputDir:  getenv("TCGLABELS_OUTPUT_DIR"),
	}

	if timeout := getenv("TCGLABELS_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// warnUnknownEnvVars logs a warning for each unrecognized TCGLABELS_* variable,
// e.g. TCGLABELS_OUTPUTDIR for TCGLABELS_OUTPUT_DIR.
func warnUnknownEnvVars(logger *slog.Logger, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", "name", name)
		}
	}
}

// applyEnvConfig applies environment values on top of the config file.
// Precedence: defaults < config file < env vars < flags.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Timeout > 0 {
		cfg.Render.Timeout = env.Timeout.String()
	}
}
