package tcglabels

import "strings"

// markupReplacer applies the three whitespace substitutions in one pass.
// The result matches replacing spaces, then newlines, then tabs in turn: the
// space inside <br /> is introduced after spaces have been replaced, and no
// replacement introduces a newline or tab.
var markupReplacer = strings.NewReplacer(
	" ", "&nbsp;",
	"\n", "<br />",
	"\t", "&nbsp;&nbsp;&nbsp;&nbsp;",
)

// FormatMarkup makes text safe to embed in a label template: spaces become
// &nbsp;, newlines become <br /> and tabs become four &nbsp;. Every other
// character, including <, > and &, is left as is.
//
// FormatMarkup is stable on text without newlines. A second pass over a
// formatted newline turns "<br />" into "<br&nbsp;/>", so format raw text once.
func FormatMarkup(s string) string {
	return markupReplacer.Replace(s)
}
