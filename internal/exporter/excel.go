package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"piigen/internal/generator"
)

// ExcelExporter writes the batch as a rectangular .xlsx table: a header row
// of field names, one row per record, no index column.
type ExcelExporter struct{}

func (e *ExcelExporter) Format() Format { return FormatExcel }
func (e *ExcelExporter) Extension() string { return "xlsx" }

func (e *ExcelExporter) Export(batch generator.Batch, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(generator.FieldNames))
	for i, name := range generator.FieldNames {
		header[i] = name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, record := range batch {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to resolve cell for row %d: %w", i+2, err)
		}

		values := record.Values()
		row := make([]interface{}, len(values))
		for j, v := range values {
			row[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
