package report

import (
	"fmt"
	"io"
	"strings"
)

// Format names an output document type.
type Format string

// Supported formats.
const (
	FormatPDF      Format = "pdf"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatText     Format = "text"
)

// Extension returns the file extension, without the dot, for f.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return "md"
	case FormatText:
		return "txt"
	default:
		return string(f)
	}
}

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatPDF, FormatMarkdown, FormatJSON, FormatText}
}

// ParseFormat accepts a format name or its file extension, case-insensitively.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, f := range Formats() {
		if name == string(f) || name == f.Extension() {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q (supported: pdf, markdown, json, text)", ErrUnknownFormat, s)
}

// ParseFormats parses each entry, dropping duplicates while keeping order.
// Entries may themselves be comma-separated lists.
func ParseFormats(list []string) ([]Format, error) {
	var out []Format
	seen := make(map[Format]bool)
	for _, item := range list {
		for _, part := range strings.Split(item, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			f, err := ParseFormat(part)
			if err != nil {
				return nil, err
			}
			if !seen[f] {
				seen[f] = true
				out = append(out, f)
			}
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no format given", ErrUnknownFormat)
	}
	return out, nil
}

// Renderer writes a Report in one document format.
type Renderer interface {
	Render(w io.Writer, r Report) error
}

// NewRenderer returns the renderer for f.
func NewRenderer(f Format) (Renderer, error) {
	switch f {
	case FormatPDF:
		return PDFRenderer{}, nil
	case FormatMarkdown:
		return MarkdownRenderer{}, nil
	case FormatJSON:
		return JSONRenderer{}, nil
	case FormatText:
		return TextRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}
