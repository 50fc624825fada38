package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-tcglabels/internal/dateutil"
	"github.com/alnah/go-tcglabels/internal/fileutil"
	"github.com/alnah/go-tcglabels/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength      = 4096 // PATH_MAX on Linux
	MaxPrefixLength    = 100
	MaxExtensionLength = 10 // "pdf"
	MaxDialectLength   = 10 // "jinja", "go"
	MaxTimeoutLength   = 20 // "1m30s"
)

// Page geometry bounds and defaults, in inches.
const (
	MinPageDimensionIn  = 1.0
	MaxPageDimensionIn  = 48.0
	DefaultPageWidthIn  = 4.0
	DefaultPageHeightIn = 6.0
)

// DefaultTimeout bounds a render when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// Supported template dialects.
const (
	DialectJinja = "jinja"
	DialectGo    = "go"
)

// configDirName is the directory under os.UserConfigDir searched for named configs.
const configDirName = "go-tcglabels"

// Config holds all configuration for label generation.
type Config struct {
	Files    FilesConfig    `yaml:"files"`
	Output   OutputConfig   `yaml:"output"`
	Page     PageConfig     `yaml:"page"`
	Template TemplateConfig `yaml:"template"`
	Render   RenderConfig   `yaml:"render"`
}

// FilesConfig locates the fixed collaborators of a run.
type FilesConfig struct {
	ReturnAddress string `yaml:"returnAddress"`
	Template      string `yaml:"template"`
	Stylesheet    string `yaml:"stylesheet"`
}

// OutputConfig controls where the PDF goes and how it is named.
type OutputConfig struct {
	Dir        string `yaml:"dir"`        // Empty = working directory
	Prefix     string `yaml:"prefix"`     // "tcg_labels_"
	DateFormat string `yaml:"dateFormat"` // dateutil pattern or preset
	Extension  string `yaml:"extension"`  // without the dot
}

// PageConfig defines the label stock geometry, in inches.
type PageConfig struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	Margin            float64 `yaml:"margin"`
	PreferCSSPageSize bool    `yaml:"preferCSSPageSize"`
}

// TemplateConfig selects the label template language.
type TemplateConfig struct {
	Dialect string `yaml:"dialect"` // "jinja" or "go"
}

// RenderConfig bounds the PDF rendering step.
type RenderConfig struct {
	Timeout string `yaml:"timeout"` // Go duration, e.g. "30s"
}

// TimeoutDuration parses Timeout. An empty value yields DefaultTimeout.
func (r RenderConfig) TimeoutDuration() (time.Duration, error) {
	if r.Timeout == "" {
		return DefaultTimeout, nil
	}
	d, err := time.ParseDuration(r.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: render.timeout %q", ErrInvalidValue, r.Timeout)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: render.timeout must be positive, got %s", ErrInvalidValue, d)
	}
	return d, nil
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for callers
// that build a Config by hand or merge overrides into one.
func (c *Config) Validate() error {
	for _, f := range []struct {
		name  string
		value string
		max   int
	}{
		{"files.returnAddress", c.Files.ReturnAddress, MaxPathLength},
		{"files.template", c.Files.Template, MaxPathLength},
		{"files.stylesheet", c.Files.Stylesheet, MaxPathLength},
		{"output.dir", c.Output.Dir, MaxPathLength},
		{"output.prefix", c.Output.Prefix, MaxPrefixLength},
		{"output.dateFormat", c.Output.DateFormat, dateutil.MaxDateFormatLength},
		{"output.extension", c.Output.Extension, MaxExtensionLength},
		{"template.dialect", c.Template.Dialect, MaxDialectLength},
		{"render.timeout", c.Render.Timeout, MaxTimeoutLength},
	} {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if strings.ContainsAny(c.Output.Prefix, "/\\\x00") {
		return fmt.Errorf("%w: output.prefix %q must not contain path separators", ErrInvalidValue, c.Output.Prefix)
	}
	if c.Output.Extension != "" {
		if err := fileutil.ValidateExtension(c.Output.Extension); err != nil {
			return fmt.Errorf("%w: output.extension: %v", ErrInvalidValue, err)
		}
	}
	if c.Output.DateFormat != "" {
		if _, err := dateutil.FormatForFilename(time.Time{}, c.Output.DateFormat); err != nil {
			return fmt.Errorf("%w: output.dateFormat: %v", ErrInvalidValue, err)
		}
	}

	if err := validateDimension("page.width", c.Page.Width); err != nil {
		return err
	}
	if err := validateDimension("page.height", c.Page.Height); err != nil {
		return err
	}
	if c.Page.Margin < 0 {
		return fmt.Errorf("%w: page.margin must not be negative, got %.2f", ErrInvalidValue, c.Page.Margin)
	}
	if c.Page.Width > 0 && c.Page.Height > 0 &&
		(2*c.Page.Margin >= c.Page.Width || 2*c.Page.Margin >= c.Page.Height) {
		return fmt.Errorf("%w: page.margin %.2f leaves no printable area", ErrInvalidValue, c.Page.Margin)
	}

	if c.Template.Dialect != "" {
		switch strings.ToLower(c.Template.Dialect) {
		case DialectJinja, DialectGo:
		default:
			return fmt.Errorf("%w: template.dialect %q (must be jinja or go)", ErrInvalidValue, c.Template.Dialect)
		}
	}

	if c.Render.Timeout != "" {
		if _, err := c.Render.TimeoutDuration(); err != nil {
			return err
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateDimension accepts zero (use default) or a value within the stock range.
func validateDimension(fieldName string, v float64) error {
	if v == 0 {
		return nil
	}
	if v < MinPageDimensionIn || v > MaxPageDimensionIn {
		return fmt.Errorf("%w: %s must be between %.0f and %.0f inches, got %.2f",
			ErrInvalidValue, fieldName, MinPageDimensionIn, MaxPageDimensionIn, v)
	}
	return nil
}

// DefaultConfig returns the configuration of a bare run: fixed collaborator
// names in the working directory and tcg_labels_MM-DD-YYYY.pdf on 4x6 stock.
func DefaultConfig() *Config {
	return &Config{
		Files: FilesConfig{
			ReturnAddress: "return_address.txt",
			Template:      "label_template.html",
			Stylesheet:    "style.css",
		},
		Output: OutputConfig{
			Dir:        "",
			Prefix:     "tcg_labels_",
			DateFormat: dateutil.DefaultDateFormat,
			Extension:  "pdf",
		},
		Page: PageConfig{
			Width:             DefaultPageWidthIn,
			Height:            DefaultPageHeightIn,
			Margin:            0,
			PreferCSSPageSize: true,
		},
		Template: TemplateConfig{Dialect: DialectJinja},
		Render:   RenderConfig{Timeout: DefaultTimeout.String()},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// The file is decoded on top of DefaultConfig, so omitted keys keep their defaults.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Marshal renders cfg as YAML, in the same shape LoadConfig reads.
func Marshal(cfg *Config) ([]byte, error) {
	return yamlutil.Marshal(cfg)
}

// SearchPaths lists where a bare config name is looked up, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-tcglabels/
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
