// Package tcglabels prints 4x6 shipping labels from a marketplace order export.
//
// # Quick Start
//
// Create a writer, run a job, and close when done:
//
//	w, err := tcglabels.NewLabelWriter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Close()
//
//	res, err := w.CreateLabels(ctx, tcglabels.Job{OrderFile: "orders.csv"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Path) // tcg_labels_10-18-2026.pdf
//
// The working directory must hold return_address.txt, label_template.html
// and style.css, unless the Job names other files.
//
// # Pipeline
//
//  1. The return address file is read verbatim and made markup-safe
//  2. The CSV export is parsed; its header names the columns
//  3. Each row becomes a Record: the return address plus four address lines
//  4. The label template renders every record, and the labels are assembled
//     into one HTML document with the stylesheet inlined
//  5. Headless Chrome (go-rod) prints the document to PDF
//  6. The PDF is written atomically as tcg_labels_<MM-DD-YYYY>.pdf, or
//     "tcg_labels_<MM-DD-YYYY> (n).pdf" when that name is taken
//
// # Markup-safe Text
//
// FormatMarkup is the only transformation applied to order data: spaces become
// &nbsp;, newlines become <br /> and tabs become four &nbsp;. Nothing else is
// escaped, so the label template inserts the text as is.
//
// # Label Templates
//
// Templates see two variables: return_address (a string) and
// sending_address (a list of lines). The default "jinja" dialect is rendered
// with pongo2:
//
//	<div class="return-address">{{ return_address }}</div>
//	{% for line in sending_address %}<div>{{ line }}</div>{% endfor %}
//
// The "go" dialect uses html/template with sprig functions:
//
//	<div class="return-address">{{ .return_address }}</div>
//	{{ range .sending_address }}<div>{{ . }}</div>{{ end }}
//
// Each rendered label is wrapped in <article class="label">; the stylesheet
// decides pagination.
//
// # Custom Renderers
//
// Any Renderer can replace headless Chrome:
//
//	w, err := tcglabels.NewLabelWriter(tcglabels.WithRenderer(myRenderer))
//
// # Error Handling
//
// Errors wrap sentinel values and can be checked with errors.Is:
//
//	if errors.Is(err, tcglabels.ErrReturnAddress) {
//	    // return_address.txt is missing or unreadable
//	}
package tcglabels
