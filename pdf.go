package tcglabels

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-tcglabels/internal/hints"
	"github.com/alnah/go-tcglabels/internal/process"
)

// pdfRenderer prints a local HTML file to PDF. It lets tests run without a browser.
type pdfRenderer interface {
	RenderFromFile(ctx context.Context, filePath string, page *PageSettings) ([]byte, error)
	Close() error
}

// rodRenderer implements pdfRenderer using go-rod.
// Rod downloads Chromium on first run if no browser is found.
type rodRenderer struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	timeout  time.Duration
}

func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// needsNoSandbox reports whether Chrome must run without its sandbox:
// explicitly requested, in CI, in a container, or with a system browser.
func needsNoSandbox() bool {
	return os.Getenv("ROD_NO_SANDBOX") == "1" ||
		os.Getenv("CI") != "" ||
		os.Getenv("ROD_BROWSER_BIN") != "" ||
		hints.IsInContainer()
}

// ensureBrowser lazily launches and connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}
	if needsNoSandbox() {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		l.Kill()
		return fmt.Errorf("%w: %v%s", ErrBrowserConnect, err, hints.ForBrowserConnect())
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("%w: %v%s", ErrBrowserConnect, err, hints.ForBrowserConnect())
	}

	r.launcher = l
	r.browser = browser
	return nil
}

// Close releases browser resources. When the browser does not shut down
// cleanly, its process group is killed so no Chrome children are left behind.
func (r *rodRenderer) Close() error {
	if r.browser == nil {
		return nil
	}

	var errs []error
	if err := r.browser.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing browser: %w", err))
		if r.launcher != nil {
			process.KillProcessGroup(r.launcher.PID())
			r.launcher.Kill()
		}
	}
	if r.launcher != nil {
		r.launcher.Cleanup()
	}

	r.browser = nil
	r.launcher = nil
	return errors.Join(errs...)
}

// RenderFromFile opens a local HTML file in headless Chrome and prints it.
// Browser failures come back as errors, never panics.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string, settings *PageSettings) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: fileURL(filePath)})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer func() { _ = page.Close() }()

	// Timeout from the context deadline, or the default.
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}
	p := page.Context(ctx).Timeout(timeout)

	if err := p.WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v%s", ErrPageLoad, err, timeoutHint(ctx, err))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := p.PDF(buildPDFOptions(settings))
	if err != nil {
		return nil, fmt.Errorf("%w: %v%s", ErrPDFGeneration, err, timeoutHint(ctx, err))
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return pdfBuf, nil
}

// buildPDFOptions maps page settings to Chrome's print options.
// A nil page prints on default label stock.
func buildPDFOptions(page *PageSettings) *proto.PagePrintToPDF {
	if page == nil {
		page = DefaultPageSettings()
	}

	return &proto.PagePrintToPDF{
		PaperWidth:        floatPtr(page.Width),
		PaperHeight:       floatPtr(page.Height),
		MarginTop:         floatPtr(page.Margin),
		MarginBottom:      floatPtr(page.Margin),
		MarginLeft:        floatPtr(page.Margin),
		MarginRight:       floatPtr(page.Margin),
		PrintBackground:   true,
		PreferCSSPageSize: page.PreferCSSPageSize,
	}
}

// timeoutHint returns the timeout hint when err looks like a deadline.
func timeoutHint(ctx context.Context, err error) string {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return hints.ForTimeout()
	}
	return ""
}

// fileURL converts an absolute path to a file:// URL.
func fileURL(absPath string) string {
	p := filepath.ToSlash(absPath)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p // Windows drive letter
	}
	return "file://" + p
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
