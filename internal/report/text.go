package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// tabwriterPadding is the minimum gap between table columns.
const tabwriterPadding = 2

// TextRenderer writes a Report as plain text with aligned tables.
type TextRenderer struct{}

// Render writes the text document to w.
func (TextRenderer) Render(w io.Writer, r Report) error {
	if _, err := fmt.Fprintf(w, "%s\n%s\n", r.Title, strings.Repeat("=", len([]rune(r.Title)))); err != nil {
		return fmt.Errorf("writing title: %w", err)
	}

	for _, s := range r.Sections {
		if _, err := fmt.Fprintf(w, "\n%s\n%s\n", s.Title, strings.Repeat("-", len([]rune(s.Title)))); err != nil {
			return fmt.Errorf("writing section title: %w", err)
		}
		if s.Body != "" {
			if _, err := fmt.Fprintf(w, "%s\n", strings.TrimRight(s.Body, "\n")); err != nil {
				return fmt.Errorf("writing section body: %w", err)
			}
		}
		if s.Table != nil {
			if err := writeTextTable(w, s.Table); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeTextTable(w io.Writer, t *Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	if _, err := fmt.Fprintf(tw, "%s\t\n", strings.Join(t.Headers, "\t")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	rules := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		rules[i] = strings.Repeat("-", len([]rune(h)))
	}
	if _, err := fmt.Fprintf(tw, "%s\t\n", strings.Join(rules, "\t")); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}
	for _, row := range t.Rows {
		if _, err := fmt.Fprintf(tw, "%s\t\n", strings.Join(row, "\t")); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	return tw.Flush()
}
