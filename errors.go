package tcglabels

import (
	"errors"

	"github.com/alnah/go-tcglabels/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrReturnAddress  = errors.New("failed to read return address")
	ErrReadOrders     = errors.New("failed to read order file")
	ErrParseOrders    = errors.New("failed to parse order file")
	ErrReadTemplate   = errors.New("failed to read label template")
	ErrReadStylesheet = errors.New("failed to read stylesheet")
	ErrOutputName     = errors.New("failed to build output file name")
	ErrWriteLabels    = errors.New("failed to write labels")

	// Rendering errors.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Page settings validation errors.
	ErrInvalidPageSize = errors.New("invalid page size")
	ErrInvalidMargin   = errors.New("invalid margin")

	// Job validation errors.
	ErrMissingOrderFile = errors.New("order file is required")
)

// Label template errors, shared with the template engines.
var (
	ErrUnknownDialect = pipeline.ErrUnknownDialect
	ErrTemplateParse  = pipeline.ErrTemplateParse
	ErrTemplateRender = pipeline.ErrTemplateRender
)
