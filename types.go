package tcglabels

import (
	"fmt"
	"log/slog"
	"time"
)

// Label stock defaults in inches: 4x6 thermal labels, printed edge to edge.
const (
	DefaultPageWidth  = 4.0
	DefaultPageHeight = 6.0
	DefaultMargin     = 0.0
)

// Page size bounds in inches.
const (
	MinPageDimension = 1.0
	MaxPageDimension = 48.0
)

// PageSettings configures PDF paper size. Margins apply to all sides.
type PageSettings struct {
	Width             float64 // inches
	Height            float64 // inches
	Margin            float64 // inches
	PreferCSSPageSize bool    // an @page size rule in the stylesheet wins
}

// DefaultPageSettings returns 4x6 stock with no margin, deferring to the
// stylesheet's @page rule when it has one.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Width:             DefaultPageWidth,
		Height:            DefaultPageHeight,
		Margin:            DefaultMargin,
		PreferCSSPageSize: true,
	}
}

// Validate checks that page settings are usable.
// Returns nil if p is nil (nil means use defaults).
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	for _, d := range []struct {
		name  string
		value float64
	}{{"width", p.Width}, {"height", p.Height}} {
		if d.value < MinPageDimension || d.value > MaxPageDimension {
			return fmt.Errorf("%w: %s %.2fin (must be between %.0f and %.0f)",
				ErrInvalidPageSize, d.name, d.value, MinPageDimension, MaxPageDimension)
		}
	}

	if p.Margin < 0 {
		return fmt.Errorf("%w: %.2fin is negative", ErrInvalidMargin, p.Margin)
	}
	if 2*p.Margin >= p.Width || 2*p.Margin >= p.Height {
		return fmt.Errorf("%w: %.2fin leaves no printable area on %.2fx%.2fin",
			ErrInvalidMargin, p.Margin, p.Width, p.Height)
	}
	return nil
}

// Job describes one label run. Empty paths take the defaults, relative to
// the working directory.
type Job struct {
	OrderFile         string // required
	ReturnAddressFile string // default return_address.txt
	TemplateFile      string // default label_template.html
	StylesheetFile    string // default style.css
	OutputDir         string // default working directory

	FilenamePrefix string // default "tcg_labels_"
	DateFormat     string // default "MM-DD-YYYY"
	Extension      string // default "pdf"

	// KeepHTML also writes the assembled HTML document next to the PDF.
	KeepHTML bool
}

// withDefaults returns a copy of j with empty paths filled in.
func (j Job) withDefaults() Job {
	if j.ReturnAddressFile == "" {
		j.ReturnAddressFile = DefaultReturnAddressFile
	}
	if j.TemplateFile == "" {
		j.TemplateFile = DefaultTemplateFile
	}
	if j.StylesheetFile == "" {
		j.StylesheetFile = DefaultStylesheetFile
	}
	return j
}

// Result describes a finished run.
type Result struct {
	Path     string // the PDF written
	Labels   int    // one per order row
	HTML     string // document the PDF was printed from, when the renderer exposes it
	HTMLPath string // set when Job.KeepHTML wrote the HTML
}

// Option configures a LabelWriter.
type Option func(*LabelWriter)

// writerConfig holds internal configuration for LabelWriter.
type writerConfig struct {
	timeout time.Duration
	now     func() time.Time
	logger  *slog.Logger
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout bounds the render step.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("tcglabels: WithTimeout duration must be positive")
	}
	return func(w *LabelWriter) {
		w.cfg.timeout = d
	}
}

// WithClock sets the clock used to date the output file.
func WithClock(now func() time.Time) Option {
	return func(w *LabelWriter) {
		if now != nil {
			w.cfg.now = now
		}
	}
}

// WithLogger sets the logger for progress messages. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(w *LabelWriter) {
		if l != nil {
			w.cfg.logger = l
		}
	}
}

// WithRenderer replaces the headless Chrome renderer, e.g. with a fake in tests.
// The writer takes ownership and closes it in Close.
func WithRenderer(r Renderer) Option {
	return func(w *LabelWriter) {
		w.renderer = r
	}
}

// WithRendererOptions configures the default Chrome renderer.
// Ignored when WithRenderer is also given.
func WithRendererOptions(opts ...RendererOption) Option {
	return func(w *LabelWriter) {
		w.rendererOpts = append(w.rendererOpts, opts...)
	}
}
