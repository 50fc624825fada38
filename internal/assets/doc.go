// Package assets embeds the default label template, stylesheet and sample
// return address, and scaffolds them into a working directory.
//
// # Layout
//
//	defaults/
//	├── common/
//	│   ├── return_address.txt   # sample return address
//	│   └── style.css            # 4x6 label stylesheet
//	├── jinja/
//	│   └── label_template.html  # Jinja/Django dialect (pongo2)
//	└── go/
//	    └── label_template.html  # html/template dialect
//
// Scaffold never overwrites: files that already exist are reported as skipped.
package assets
