package tcglabels

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-tcglabels/internal/fileutil"
	"github.com/alnah/go-tcglabels/internal/logging"
)

// outputPermissions is rw-r--r--.
const outputPermissions = 0o644

// LabelWriter turns an order export into a PDF of shipping labels.
// Create with NewLabelWriter, run CreateLabels, and Close when done.
type LabelWriter struct {
	cfg          writerConfig
	renderer     Renderer
	rendererOpts []RendererOption
}

// NewLabelWriter returns a writer backed by headless Chrome unless
// WithRenderer supplies another renderer.
func NewLabelWriter(opts ...Option) (*LabelWriter, error) {
	w := &LabelWriter{
		cfg: writerConfig{
			timeout: defaultTimeout,
			now:     time.Now,
			logger:  logging.Discard(),
		},
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.renderer == nil {
		rendererOpts := append([]RendererOption{
			withRendererLogger(w.cfg.logger),
			WithPageLoadTimeout(w.cfg.timeout),
		}, w.rendererOpts...)

		r, err := NewChromeRenderer(rendererOpts...)
		if err != nil {
			return nil, err
		}
		w.renderer = r
	}

	return w, nil
}

// CreateLabels runs a job: load the return address, read the orders, build
// one record per order, render them in a single call and write the PDF under
// a dated, non-clobbering file name. No PDF is written unless every step
// succeeds. With Job.KeepHTML, a failed HTML write returns the result of the
// PDF already written alongside the error. Internal panics are returned as errors.
func (w *LabelWriter) CreateLabels(ctx context.Context, job Job) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if job.OrderFile == "" {
		return nil, ErrMissingOrderFile
	}
	job = job.withDefaults()
	log := w.cfg.logger

	returnAddress, err := LoadReturnAddress(job.ReturnAddressFile)
	if err != nil {
		return nil, err
	}
	log.Debug("loaded return address", "path", job.ReturnAddressFile)

	orders, err := ReadOrders(job.OrderFile)
	if err != nil {
		return nil, err
	}
	log.Info("read orders", "path", job.OrderFile, "count", len(orders))
	if len(orders) == 0 {
		log.Warn("order file has no rows, the PDF will have no labels", "path", job.OrderFile)
	}

	records := BuildRecords(returnAddress, orders)

	name, err := OutputFilename(w.cfg.now(), job.FilenamePrefix, job.DateFormat, job.Extension)
	if err != nil {
		return nil, err
	}
	target := fileutil.UniquePath(filepath.Join(job.OutputDir, name))
	log.Debug("output path", "path", target)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	renderCtx, cancel := context.WithTimeout(ctx, w.cfg.timeout)
	defer cancel()

	rendering, err := w.render(renderCtx, records, job)
	if err != nil {
		return nil, fmt.Errorf("rendering labels: %w", err)
	}

	// Cancellation after rendering still leaves no file behind.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := fileutil.WriteFileAtomic(target, rendering.PDF, outputPermissions); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteLabels, err)
	}

	result = &Result{
		Path:   target,
		Labels: len(records),
		HTML:   rendering.HTML,
	}

	if job.KeepHTML && rendering.HTML != "" {
		htmlPath := fileutil.UniquePath(strings.TrimSuffix(target, filepath.Ext(target)) + ".html")
		if err := fileutil.WriteFileAtomic(htmlPath, []byte(rendering.HTML), outputPermissions); err != nil {
			return result, fmt.Errorf("%w: %w", ErrWriteLabels, err)
		}
		result.HTMLPath = htmlPath
	}

	log.Info("wrote labels", "path", target, "labels", result.Labels)
	return result, nil
}

// render calls the renderer once for the whole record set.
func (w *LabelWriter) render(ctx context.Context, records []Record, job Job) (*Rendering, error) {
	if dr, ok := w.renderer.(DocumentRenderer); ok {
		return dr.RenderDocument(ctx, records, job.TemplateFile, job.StylesheetFile)
	}

	pdf, err := w.renderer.Render(ctx, records, job.TemplateFile, job.StylesheetFile)
	if err != nil {
		return nil, err
	}
	return &Rendering{PDF: pdf}, nil
}

// Close releases the renderer.
func (w *LabelWriter) Close() error {
	if w.renderer == nil {
		return nil
	}
	err := w.renderer.Close()
	w.renderer = nil
	return err
}
