package pipeline

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/Masterminds/sprig/v3"
	"github.com/flosch/pongo2/v6"
)

// Template dialect names.
const (
	DialectJinja = "jinja"
	DialectGo    = "go"
)

// Variable names visible to label templates in both dialects.
const (
	varReturnAddress  = "return_address"
	varSendingAddress = "sending_address"
)

// LabelData is what one label template execution sees. Both fields are
// already markup-safe and are inserted without escaping.
type LabelData struct {
	ReturnAddress  string
	SendingAddress []string
}

// LabelTemplate renders a single label.
type LabelTemplate interface {
	Execute(data LabelData) (string, error)
}

// Compile-time interface checks.
var (
	_ LabelTemplate = (*JinjaTemplate)(nil)
	_ LabelTemplate = (*GoTemplate)(nil)
)

// ParseLabelTemplate compiles src in the given dialect. Dialect names are
// case-insensitive; an empty dialect means jinja.
func ParseLabelTemplate(dialect, src string) (LabelTemplate, error) {
	switch strings.ToLower(dialect) {
	case "", DialectJinja:
		return NewJinjaTemplate(src)
	case DialectGo:
		return NewGoTemplate(src)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}
}

// ValidateDialect reports whether ParseLabelTemplate accepts dialect.
func ValidateDialect(dialect string) error {
	switch strings.ToLower(dialect) {
	case "", DialectJinja, DialectGo:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}
}

// JinjaTemplate executes Jinja/Django-style templates through pongo2.
type JinjaTemplate struct {
	tpl *pongo2.Template
}

// NewJinjaTemplate compiles src with autoescaping disabled, matching Jinja's
// default environment.
func NewJinjaTemplate(src string) (*JinjaTemplate, error) {
	tpl, err := pongo2.FromString("{% autoescape off %}" + src + "{% endautoescape %}")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	return &JinjaTemplate{tpl: tpl}, nil
}

// Execute renders one label.
func (j *JinjaTemplate) Execute(data LabelData) (string, error) {
	out, err := j.tpl.Execute(pongo2.Context{
		varReturnAddress:  data.ReturnAddress,
		varSendingAddress: data.SendingAddress,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return out, nil
}

// GoTemplate executes html/template label templates with the sprig function map.
type GoTemplate struct {
	tmpl *template.Template
}

// NewGoTemplate compiles src. Missing keys are an error.
func NewGoTemplate(src string) (*GoTemplate, error) {
	tmpl, err := template.New("label").
		Funcs(sprig.FuncMap()).
		Option("missingkey=error").
		Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	return &GoTemplate{tmpl: tmpl}, nil
}

// Execute renders one label. Fields are typed template.HTML so the
// markup-safe entities pass through unescaped.
func (g *GoTemplate) Execute(data LabelData) (string, error) {
	lines := make([]template.HTML, len(data.SendingAddress))
	for i, l := range data.SendingAddress {
		lines[i] = template.HTML(l) // #nosec G203 -- markup-safe label text
	}

	var buf strings.Builder
	err := g.tmpl.Execute(&buf, map[string]any{
		varReturnAddress:  template.HTML(data.ReturnAddress), // #nosec G203 -- markup-safe label text
		varSendingAddress: lines,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}

// RenderLabels executes tmpl once per record, in order. It stops at the
// first failure or when ctx is cancelled.
func RenderLabels(ctx context.Context, tmpl LabelTemplate, records []LabelData) ([]string, error) {
	labels := make([]string, 0, len(records))
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out, err := tmpl.Execute(rec)
		if err != nil {
			return nil, fmt.Errorf("label %d: %w", i+1, err)
		}
		labels = append(labels, out)
	}
	return labels, nil
}
