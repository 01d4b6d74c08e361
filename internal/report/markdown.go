package report

import (
	"fmt"
	"io"
	"strings"
)

// MarkdownRenderer writes a Report as GitHub-flavored Markdown.
type MarkdownRenderer struct{}

// Render writes the Markdown document to w.
func (MarkdownRenderer) Render(w io.Writer, r Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n", r.Title)
	if !r.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, "\n_Generated %s (report %s)_\n", r.GeneratedAt.UTC().Format("2006-01-02 15:04 MST"), r.ID)
	}

	for _, s := range r.Sections {
		fmt.Fprintf(&b, "\n## %s\n", s.Title)
		if s.Body != "" {
			fmt.Fprintf(&b, "\n%s\n", markdownBody(s.Body))
		}
		if s.Table != nil && len(s.Table.Headers) > 0 {
			b.WriteString("\n")
			writeMarkdownTable(&b, s.Table)
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing markdown: %w", err)
	}
	return nil
}

// markdownBody keeps single newlines as line breaks.
func markdownBody(body string) string {
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	for i, line := range lines {
		if line != "" && i < len(lines)-1 && lines[i+1] != "" {
			lines[i] = line + "  "
		}
	}
	return strings.Join(lines, "\n")
}

func writeMarkdownTable(b *strings.Builder, t *Table) {
	b.WriteString("|")
	for _, h := range t.Headers {
		fmt.Fprintf(b, " %s |", escapeCell(h))
	}
	b.WriteString("\n|")
	for i := range t.Headers {
		if i == 0 {
			b.WriteString(" --- |")
		} else {
			b.WriteString(" ---: |")
		}
	}
	b.WriteString("\n")

	for _, row := range t.Rows {
		b.WriteString("|")
		for i := range t.Headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			fmt.Fprintf(b, " %s |", escapeCell(cell))
		}
		b.WriteString("\n")
	}
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
