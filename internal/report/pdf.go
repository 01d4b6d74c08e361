package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// PDF layout, in millimeters and points.
const (
	pdfFontFamily      = "Arial"
	pdfTitleSize       = 16
	pdfSectionSize     = 12
	pdfBodySize        = 12
	pdfFooterSize      = 8
	pdfLineHeight      = 10
	pdfTitleGap        = 10
	pdfSectionGap      = 5
	pdfFooterOffset    = -15
	pdfPageBreakMargin = 15
)

// PDFRenderer lays a Report out as an A4 PDF: a centered title on every
// page, a page number footer, and each section as a bold heading over
// wrapped body text.
type PDFRenderer struct{}

// Render writes the PDF to w.
func (PDFRenderer) Render(w io.Writer, r Report) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	// Core fonts are Latin-1; translate so names like "Müller GmbH" survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(r.Title, true)
	pdf.SetSubject(r.ID, false)
	pdf.SetCreator("carbonreport", false)
	if !r.GeneratedAt.IsZero() {
		pdf.SetCreationDate(r.GeneratedAt)
	}

	pdf.SetHeaderFunc(func() {
		pdf.SetFont(pdfFontFamily, "B", pdfTitleSize)
		pdf.CellFormat(0, pdfLineHeight, tr(r.Title), "", 1, "C", false, 0, "")
		pdf.Ln(pdfTitleGap)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(pdfFooterOffset)
		pdf.SetFont(pdfFontFamily, "I", pdfFooterSize)
		pdf.CellFormat(0, pdfLineHeight, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.SetAutoPageBreak(true, pdfPageBreakMargin)
	pdf.AddPage()

	for _, s := range r.Sections {
		pdf.SetFont(pdfFontFamily, "B", pdfSectionSize)
		pdf.CellFormat(0, pdfLineHeight, tr(s.Title), "", 1, "L", false, 0, "")
		pdf.Ln(pdfSectionGap)

		pdf.SetFont(pdfFontFamily, "", pdfBodySize)
		if s.Body != "" {
			pdf.MultiCell(0, pdfLineHeight, tr(s.Body), "", "L", false)
			pdf.Ln(-1)
		}

		if s.Table != nil {
			writePDFTable(pdf, tr, s.Table)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

// writePDFTable draws a bordered grid spanning the printable width.
func writePDFTable(pdf *fpdf.Fpdf, tr func(string) string, t *Table) {
	if len(t.Headers) == 0 {
		return
	}
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(t.Headers))

	for _, h := range t.Headers {
		pdf.CellFormat(colWidth, pdfLineHeight, tr(h), "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	for _, row := range t.Rows {
		for i := range t.Headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pdf.CellFormat(colWidth, pdfLineHeight, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(pdfSectionGap)
}
