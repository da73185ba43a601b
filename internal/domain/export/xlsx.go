package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"wingmann/internal/domain/submission"
)

const sheetName = "Submissions"

// columnWidths are display-width hints per column, in the same order as
// columnLabels.
var columnWidths = []float64{5, 20, 5, 10, 15, 30, 40, 40, 40, 40, 25, 25}

// BuildXLSX renders the record list as a single-sheet workbook with the same
// columns and sort order as the CSV export. The ID cell is numeric, every
// other cell a string.
func BuildXLSX(records []submission.Submission) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for col, label := range columnLabels {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, label); err != nil {
			return nil, fmt.Errorf("set header %q: %w", label, err)
		}
	}

	for i, rec := range sorted(records) {
		row := i + 2
		values := rowValues(rec)
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, fmt.Errorf("data cell: %w", err)
			}
			if col == 0 {
				err = f.SetCellValue(sheetName, cell, rec.ID)
			} else {
				err = f.SetCellValue(sheetName, cell, value)
			}
			if err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	for col, width := range columnWidths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(sheetName, name, name, width); err != nil {
			return nil, fmt.Errorf("set width %s: %w", name, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
