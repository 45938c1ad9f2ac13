package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Screening Results"

// WriteXLSX renders the rows into an XLSX workbook and returns its bytes.
// Rows should come from BuildRow so they line up with Headers.
func WriteXLSX(rows [][]any) ([]byte, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("xlsx sheet: %w", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	for i, h := range Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, h)
	}

	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = f.SetCellValue(sheetName, cell, v)
		}
	}

	_ = f.SetColWidth(sheetName, "A", "A", 38) // call ID
	_ = f.SetColWidth(sheetName, "B", "B", 24) // candidate
	_ = f.SetColWidth(sheetName, "C", "D", 20) // phone, role
	_ = f.SetColWidth(sheetName, "G", "G", 60) // reasons

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
