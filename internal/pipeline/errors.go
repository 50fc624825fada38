package pipeline

import "errors"

// Sentinel errors for template handling.
var (
	ErrUnknownDialect = errors.New("unknown template dialect")
	ErrTemplateParse  = errors.New("label template parsing failed")
	ErrTemplateRender = errors.New("label template rendering failed")
)
