package report

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// JSONRenderer writes a Report as indented JSON.
type JSONRenderer struct{}

// Render writes the JSON document to w.
func (JSONRenderer) Render(w io.Writer, r Report) error {
	sections := r.Sections
	if sections == nil {
		sections = []Section{}
	}
	r.Sections = sections

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}
