// Package exporter serializes record batches to the supported output
// formats.
//
// A Registry maps each format tag to its exporter and target directory and
// is the single entry point for writing: it builds the output filename from
// the run label, resolves filename collisions by inserting a numeric
// disambiguator before the extension, and reports the final path written.
//
// Four exporters are registered:
//
// ExcelExporter: rectangular .xlsx table via excelize, header row of field
// names, one row per record.
//
// WordExporter, PDFExporter, TextExporter: the same six-line record block
// (five "Label: value" lines plus a dash separator) rendered as docx
// paragraphs, raw PDF text lines, and plain text respectively.
package exporter
