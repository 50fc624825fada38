package tcglabels

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alnah/go-tcglabels/internal/fileutil"
	"github.com/alnah/go-tcglabels/internal/logging"
	"github.com/alnah/go-tcglabels/internal/pipeline"
)

// Default label collaborators, read from the working directory.
const (
	DefaultTemplateFile   = "label_template.html"
	DefaultStylesheetFile = "style.css"
)

// Template dialects understood by ChromeRenderer.
const (
	DialectJinja = pipeline.DialectJinja
	DialectGo    = pipeline.DialectGo
)

// Renderer turns label records into a PDF using an HTML template and a
// stylesheet, both given by path.
type Renderer interface {
	Render(ctx context.Context, records []Record, templatePath, stylesheetPath string) ([]byte, error)
	Close() error
}

// DocumentRenderer is a Renderer that also hands back the HTML document it
// printed. LabelWriter uses it to fill Result.HTML.
type DocumentRenderer interface {
	Renderer
	RenderDocument(ctx context.Context, records []Record, templatePath, stylesheetPath string) (*Rendering, error)
}

// Rendering is a PDF together with the HTML it was printed from.
type Rendering struct {
	PDF  []byte
	HTML string
}

// Compile-time interface checks.
var (
	_ DocumentRenderer = (*ChromeRenderer)(nil)
	_ pdfRenderer      = (*rodRenderer)(nil)
)

// ChromeRenderer renders one label per record through a label template,
// assembles them into a single HTML document styled by the stylesheet, and
// prints it to PDF with headless Chrome.
type ChromeRenderer struct {
	dialect     string
	page        *PageSettings
	timeout     time.Duration
	logger      *slog.Logger
	cssInjector pipeline.CSSInjector
	pdf         pdfRenderer
}

// RendererOption configures a ChromeRenderer.
type RendererOption func(*ChromeRenderer)

// WithDialect selects the label template language: "jinja" (default) or "go".
func WithDialect(dialect string) RendererOption {
	return func(r *ChromeRenderer) {
		r.dialect = dialect
	}
}

// WithPage sets the PDF paper size and margin.
func WithPage(p *PageSettings) RendererOption {
	return func(r *ChromeRenderer) {
		if p != nil {
			r.page = p
		}
	}
}

// WithPageLoadTimeout bounds page loading when the context has no deadline.
func WithPageLoadTimeout(d time.Duration) RendererOption {
	return func(r *ChromeRenderer) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// withRendererLogger passes the writer's logger down.
func withRendererLogger(l *slog.Logger) RendererOption {
	return func(r *ChromeRenderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// withPDFRenderer replaces headless Chrome, for tests.
func withPDFRenderer(p pdfRenderer) RendererOption {
	return func(r *ChromeRenderer) {
		r.pdf = p
	}
}

// NewChromeRenderer returns a renderer for the jinja dialect on 4x6 stock
// unless options say otherwise. Chrome is not started until the first render.
func NewChromeRenderer(opts ...RendererOption) (*ChromeRenderer, error) {
	r := &ChromeRenderer{
		dialect:     DialectJinja,
		page:        DefaultPageSettings(),
		timeout:     defaultTimeout,
		logger:      logging.Discard(),
		cssInjector: &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(r)
	}

	if err := pipeline.ValidateDialect(r.dialect); err != nil {
		return nil, err
	}
	if err := r.page.Validate(); err != nil {
		return nil, err
	}

	if r.pdf == nil {
		r.pdf = newRodRenderer(r.timeout)
	}
	return r, nil
}

// Render implements Renderer.
func (r *ChromeRenderer) Render(ctx context.Context, records []Record, templatePath, stylesheetPath string) ([]byte, error) {
	out, err := r.RenderDocument(ctx, records, templatePath, stylesheetPath)
	if err != nil {
		return nil, err
	}
	return out.PDF, nil
}

// RenderDocument renders records to HTML, then prints the HTML to PDF.
func (r *ChromeRenderer) RenderDocument(ctx context.Context, records []Record, templatePath, stylesheetPath string) (*Rendering, error) {
	doc, err := r.RenderHTML(ctx, records, templatePath, stylesheetPath)
	if err != nil {
		return nil, err
	}

	pdf, err := r.toPDF(ctx, doc, filepath.Dir(templatePath))
	if err != nil {
		return nil, err
	}
	return &Rendering{PDF: pdf, HTML: doc}, nil
}

// RenderHTML builds the printable HTML document without starting Chrome.
func (r *ChromeRenderer) RenderHTML(ctx context.Context, records []Record, templatePath, stylesheetPath string) (string, error) {
	src, err := os.ReadFile(templatePath) // #nosec G304 -- template path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadTemplate, err)
	}
	css, err := os.ReadFile(stylesheetPath) // #nosec G304 -- stylesheet path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadStylesheet, err)
	}

	tmpl, err := pipeline.ParseLabelTemplate(r.dialect, string(src))
	if err != nil {
		return "", fmt.Errorf("%s: %w", templatePath, err)
	}

	labels, err := pipeline.RenderLabels(ctx, tmpl, toLabelData(records))
	if err != nil {
		return "", fmt.Errorf("%s: %w", templatePath, err)
	}
	r.logger.Debug("rendered labels", "count", len(labels), "dialect", r.dialect)

	doc := pipeline.AssembleDocument(labels)
	doc = r.cssInjector.InjectCSS(ctx, doc, string(css))
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return doc, nil
}

// toPDF writes doc next to the template, so relative images and fonts
// resolve, and prints it. Falls back to the system temp directory when the
// template directory is not writable.
func (r *ChromeRenderer) toPDF(ctx context.Context, doc, baseDir string) ([]byte, error) {
	tmpPath, cleanup, err := fileutil.WriteTempFile(baseDir, doc, "html")
	if err != nil {
		r.logger.Warn("template directory not writable, relative resources may not load",
			"dir", baseDir, "error", err)
		tmpPath, cleanup, err = fileutil.WriteTempFile("", doc, "html")
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPDFGeneration, err)
		}
	}
	defer cleanup()

	absPath, err := filepath.Abs(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPDFGeneration, err)
	}

	r.logger.Debug("printing PDF", "html", absPath)
	return r.pdf.RenderFromFile(ctx, absPath, r.page)
}

// Close releases the browser.
func (r *ChromeRenderer) Close() error {
	if r.pdf != nil {
		return r.pdf.Close()
	}
	return nil
}

func toLabelData(records []Record) []pipeline.LabelData {
	data := make([]pipeline.LabelData, len(records))
	for i, rec := range records {
		data[i] = pipeline.LabelData{
			ReturnAddress:  rec.ReturnAddress,
			SendingAddress: rec.SendingAddress,
		}
	}
	return data
}
