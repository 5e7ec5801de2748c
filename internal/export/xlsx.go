package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"payvlo/internal/port"
)

const registerSheet = "Invoice Register"

// XLSXExporter writes the register as an Excel workbook with numeric
// money columns and a totals row.
type XLSXExporter struct{}

// NewXLSXExporter creates an XLSXExporter.
func NewXLSXExporter() *XLSXExporter { return &XLSXExporter{} }

func (e *XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *XLSXExporter) Extension() string { return ".xlsx" }

func (e *XLSXExporter) Export(w io.Writer, entries []port.RegisterEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), registerSheet); err != nil {
		return fmt.Errorf("xlsx: rename sheet: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(registerSheet, "A1", &header); err != nil {
		return fmt.Errorf("xlsx: header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("xlsx: style: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(columns))
	if err := f.SetCellStyle(registerSheet, "A1", lastCol+"1", bold); err != nil {
		return fmt.Errorf("xlsx: header style: %w", err)
	}

	numeric := make([]bool, len(columns))
	for i := range entries {
		cells := entryCells(&entries[i])
		values := make([]interface{}, len(cells))
		for j, c := range cells {
			if c.isNum {
				values[j] = c.number
				numeric[j] = true
			} else {
				values[j] = c.text
			}
		}
		axis, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(registerSheet, axis, &values); err != nil {
			return fmt.Errorf("xlsx: row %d: %w", i+1, err)
		}
	}

	if len(entries) > 0 {
		if err := writeTotals(f, numeric, len(entries)+2, bold); err != nil {
			return err
		}
	}

	if err := f.SetPanes(registerSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("xlsx: panes: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx: write: %w", err)
	}
	return nil
}

// writeTotals adds a SUM row under the numeric columns.
func writeTotals(f *excelize.File, numeric []bool, totalRow, style int) error {
	first, _ := excelize.CoordinatesToCellName(1, totalRow)
	if err := f.SetCellValue(registerSheet, first, "Total"); err != nil {
		return fmt.Errorf("xlsx: totals: %w", err)
	}
	for j, isNum := range numeric {
		if !isNum {
			continue
		}
		colName, _ := excelize.ColumnNumberToName(j + 1)
		cellName := fmt.Sprintf("%s%d", colName, totalRow)
		formula := fmt.Sprintf("SUM(%s2:%s%d)", colName, colName, totalRow-1)
		if err := f.SetCellFormula(registerSheet, cellName, formula); err != nil {
			return fmt.Errorf("xlsx: totals: %w", err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(numeric), totalRow)
	if err := f.SetCellStyle(registerSheet, first, last, style); err != nil {
		return fmt.Errorf("xlsx: totals style: %w", err)
	}
	return nil
}
