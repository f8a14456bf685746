package exporter

import (
	"fmt"
	"log/slog"
	"os"

	"piigen/internal/config"
	"piigen/internal/generator"
)

// Format identifies one supported output format.
type Format string

const (
	FormatExcel Format = "excel"
	FormatWord  Format = "word"
	FormatPDF   Format = "pdf"
	FormatText  Format = "text"
)

// FormatOrder is the fixed order in which exports run.
var FormatOrder = []Format{FormatExcel, FormatWord, FormatPDF, FormatText}

// separatorLine terminates each record block in the block-oriented formats.
const separatorLine = "----------------------------------------"

// Exporter serializes a record batch into one output file.
type Exporter interface {
	Format() Format
	Extension() string
	Export(batch generator.Batch, path string) error
}

// entry binds an exporter to its target directory.
type entry struct {
	exporter Exporter
	dir      string
}

// Registry maps format tags to exporters and their target directories.
type Registry struct {
	entries map[Format]entry
}

// NewRegistry builds the full exporter registry against the given paths.
func NewRegistry(paths *config.Paths) *Registry {
	r := &Registry{entries: make(map[Format]entry)}
	r.register(&ExcelExporter{}, paths.ExcelDir)
	r.register(&WordExporter{}, paths.WordDir)
	r.register(&PDFExporter{}, paths.PDFDir)
	r.register(&TextExporter{}, paths.TextDir)
	return r
}

func (r *Registry) register(e Exporter, dir string) {
	r.entries[e.Format()] = entry{exporter: e, dir: dir}
}

// Export serializes the batch for one format. The output filename is
// customer_responses_<label>.<ext>, disambiguated against existing files.
// Returns the final path actually written.
func (r *Registry) Export(format Format, batch generator.Batch, label string) (string, error) {
	ent, ok := r.entries[format]
	if !ok {
		return "", fmt.Errorf("unknown export format: %s", format)
	}

	if err := os.MkdirAll(ent.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.%s", config.FilenamePrefix, label, ent.exporter.Extension())
	path := uniquePath(ent.dir, filename)

	slog.Info("Writing export file",
		slog.String("format", string(format)),
		slog.String("path", path),
		slog.Int("record_count", len(batch)))

	if err := ent.exporter.Export(batch, path); err != nil {
		return "", fmt.Errorf("%s export failed: %w", format, err)
	}

	return path, nil
}
