package main

import (
	"errors"
	"os"

	tcglabels "github.com/alnah/go-tcglabels"
	"github.com/alnah/go-tcglabels/internal/assets"
	"github.com/alnah/go-tcglabels/internal/config"
)

// Exit codes for the tcglabels CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Labels written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, template, or order data
	ExitIO      = 3 // Missing input file, permission denied, write failure
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, tcglabels.ErrBrowserConnect) ||
		errors.Is(err, tcglabels.ErrPageCreate) ||
		errors.Is(err, tcglabels.ErrPageLoad) ||
		errors.Is(err, tcglabels.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, tcglabels.ErrReturnAddress) ||
		errors.Is(err, tcglabels.ErrReadOrders) ||
		errors.Is(err, tcglabels.ErrReadTemplate) ||
		errors.Is(err, tcglabels.ErrReadStylesheet) ||
		errors.Is(err, tcglabels.ErrWriteLabels) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, assets.ErrUnknownDialect) ||
		errors.Is(err, tcglabels.ErrMissingOrderFile) ||
		errors.Is(err, tcglabels.ErrParseOrders) ||
		errors.Is(err, tcglabels.ErrUnknownDialect) ||
		errors.Is(err, tcglabels.ErrTemplateParse) ||
		errors.Is(err, tcglabels.ErrTemplateRender) ||
		errors.Is(err, tcglabels.ErrInvalidPageSize) ||
		errors.Is(err, tcglabels.ErrInvalidMargin) ||
		errors.Is(err, tcglabels.ErrOutputName) {
		return ExitUsage
	}

	return ExitGeneral
}
