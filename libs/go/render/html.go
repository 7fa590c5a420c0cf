package render

import (
	"embed"
	"html/template"
	"io"
	"strings"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var quoteTemplate = template.Must(
	template.New("quote.html.tmpl").
		Funcs(template.FuncMap{"paragraphs": paragraphs}).
		ParseFS(templateFS, "templates/quote.html.tmpl"),
)

func paragraphs(s string) []string {
	var out []string
	for _, p := range strings.Split(strings.TrimSpace(s), "\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// HTML writes the quote as a standalone HTML page.
func HTML(w io.Writer, inv *Invoice) error {
	return quoteTemplate.Execute(w, inv)
}
