package render

import (
	"fmt"
	"io"
	"strings"
)

// Format selects an output representation.
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
)

// ParseFormat accepts text, html or pdf; empty means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatHTML, FormatPDF:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q", s)
	}
}

// ContentType is the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Write renders inv in the given format.
func Write(w io.Writer, inv *Invoice, f Format) error {
	switch f {
	case FormatHTML:
		return HTML(w, inv)
	case FormatPDF:
		return PDF(w, inv)
	case FormatText, "":
		return Text(w, inv)
	default:
		return fmt.Errorf("unsupported format %q", f)
	}
}
