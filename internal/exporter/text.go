package exporter

import (
	"bufio"
	"fmt"
	"os"

	"piigen/internal/generator"
)

// TextExporter writes the batch as newline-terminated plain text: per
// record, the five "Label: value" lines then a dash separator line.
type TextExporter struct{}

func (t *TextExporter) Format() Format { return FormatText }
func (t *TextExporter) Extension() string { return "txt" }

func (t *TextExporter) Export(batch generator.Batch, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create text file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, record := range batch {
		for _, line := range record.Lines() {
			if _, err := w.WriteString(line + "\n"); err != nil {
				return fmt.Errorf("failed to write record line: %w", err)
			}
		}
		if _, err := w.WriteString(separatorLine + "\n"); err != nil {
			return fmt.Errorf("failed to write separator: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush text file: %w", err)
	}
	return nil
}
