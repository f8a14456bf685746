package exporter

import (
	"fmt"
	"os"

	"github.com/fumiama/go-docx"

	"piigen/internal/generator"
)

// WordExporter writes the batch as a .docx document: per record, the five
// "Label: value" lines then a dash separator line, appended in record order.
type WordExporter struct{}

func (w *WordExporter) Format() Format { return FormatWord }
func (w *WordExporter) Extension() string { return "docx" }

func (w *WordExporter) Export(batch generator.Batch, path string) error {
	doc := docx.New().WithDefaultTheme()

	for _, record := range batch {
		// One paragraph per line; the docx body model represents line
		// breaks as separate paragraphs.
		for _, line := range record.Lines() {
			doc.AddParagraph().AddText(line)
		}
		doc.AddParagraph().AddText(separatorLine)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create document file: %w", err)
	}
	defer f.Close()

	if _, err := doc.WriteTo(f); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}
