// Package report renders a finished carbon footprint report into documents.
//
// A Report is plain data: a title, ordered sections and optional tables.
// Renderers and the file Sink know nothing about how the numbers were
// produced.
package report

import "time"

// Report is the content of one generated document.
type Report struct {
	// ID uniquely identifies this generation run (a ULID).
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Organization string    `json:"organization"`
	GeneratedAt  time.Time `json:"generated_at"`
	Sections     []Section `json:"sections"`
}

// Section is a titled block of text, optionally followed by a table.
type Section struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Table *Table `json:"table,omitempty"`
}

// Table is a simple grid of pre-formatted cells.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}
