package exporter

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"piigen/internal/generator"
)

// PDF layout constants, in points on a US-Letter page.
const (
	pdfLineHeight   = 14.0
	pdfLinesPerRec  = 6 // five field lines plus the separator
	pdfTopMargin    = 72.0
	pdfBottomMargin = 72.0
	pdfLeftMargin   = 72.0
)

// PDFExporter writes the batch as raw text lines on fixed-size pages. A
// running vertical cursor advances a fixed per-entry height; when the next
// entry would cross the bottom margin a new page starts and the cursor
// resets. Lines are not wrapped; overlong lines run off the page edge.
type PDFExporter struct{}

func (p *PDFExporter) Format() Format { return FormatPDF }
func (p *PDFExporter) Extension() string { return "pdf" }

func (p *PDFExporter) Export(batch generator.Batch, path string) error {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont("Helvetica", "", 10)
	pdf.AddPage()

	_, pageHeight := pdf.GetPageSize()
	entryHeight := float64(pdfLinesPerRec) * pdfLineHeight
	y := pdfTopMargin

	for _, record := range batch {
		if y+entryHeight > pageHeight-pdfBottomMargin {
			pdf.AddPage()
			y = pdfTopMargin
		}

		for _, line := range record.Lines() {
			pdf.Text(pdfLeftMargin, y, line)
			y += pdfLineHeight
		}
		pdf.Text(pdfLeftMargin, y, separatorLine)
		y += pdfLineHeight
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}
