// Package pipeline implements the HTML stages of label rendering.
//
// This package turns label records into one printable HTML document:
//   - Label template parsing and execution (Jinja/Django dialect via pongo2,
//     or Go html/template with sprig functions)
//   - Document assembly, one <article class="label"> per record
//   - Stylesheet injection into the document head
//
// PDF generation is handled separately by the root tcglabels package using
// headless Chrome (go-rod). Page geometry belongs to the stylesheet and the
// PDF settings; this package only deals with markup.
package pipeline
