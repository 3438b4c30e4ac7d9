// Package sheet renders a printable list of texture paths as a PDF.
package sheet

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"
)

const (
	margin     = 36.0
	titleSize  = 16
	groupSize  = 11
	labelSize  = 8
	pathSize   = 8
	lineHeight = 12.0
	labelWidth = 150.0
)

// Row is one path on the sheet. Rows sharing a Group are listed under a
// single heading, in the order given.
type Row struct {
	Group string
	Label string
	Path  string
}

// Generate returns PDF bytes listing rows under title. An empty rows
// slice still yields a one-page PDF with a note.
func Generate(title string, rows []Row) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetTitle(title, true)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-margin + 8)
		pdf.SetFont("Helvetica", "I", 7)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	// Core fonts are cp1252; labels carry UTF-8 such as "·".
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	pathWidth := pageW - 2*margin - labelWidth

	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.SetTextColor(30, 30, 30)
	pdf.CellFormat(0, 20, tr(title), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	if len(rows) == 0 {
		pdf.SetFont("Helvetica", "I", labelSize+2)
		pdf.CellFormat(0, lineHeight, "No paths are listed for this combination.", "", 1, "L", false, 0, "")
	}

	group := ""
	shade := false
	for i, r := range rows {
		if i == 0 || r.Group != group {
			group = r.Group
			shade = false
			pdf.Ln(4)
			pdf.SetFont("Helvetica", "B", groupSize)
			pdf.SetTextColor(60, 40, 110)
			pdf.CellFormat(0, 16, tr(group), "B", 1, "L", false, 0, "")
			pdf.Ln(2)
		}
		pdf.SetFillColor(242, 240, 248)
		pdf.SetTextColor(30, 30, 30)
		pdf.SetFont("Helvetica", "", labelSize)
		pdf.CellFormat(labelWidth, lineHeight, tr(r.Label), "", 0, "L", shade, 0, "")
		pdf.SetFont("Courier", "", pathSize)
		pdf.CellFormat(pathWidth, lineHeight, r.Path, "", 1, "L", shade, 0, "")
		shade = !shade
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
