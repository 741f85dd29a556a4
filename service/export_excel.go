package service

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"sanchez-brick/models"
)

// compareSheetName is the sheet holding the comparison
const compareSheetName = "Comparativa"

// GenerateComparisonExcel writes the comparison table as a spreadsheet:
// attribute labels in column A, one column per product in selection order.
func GenerateComparisonExcel(table models.ComparisonTable) ([]byte, error) {
	if !table.HasTable() {
		return nil, ErrNotEnoughSelected
	}

	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, compareSheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#9C4A2F"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	labelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create label style: %w", err)
	}

	if err := f.SetColWidth(compareSheetName, "A", "A", 26); err != nil {
		return nil, fmt.Errorf("set label width: %w", err)
	}

	for i, header := range table.Headers {
		cell, err := excelize.CoordinatesToCellName(i+2, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(compareSheetName, cell, header); err != nil {
			return nil, fmt.Errorf("set header %s: %w", cell, err)
		}
		col, _ := excelize.ColumnNumberToName(i + 2)
		if err := f.SetColWidth(compareSheetName, col, col, 24); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(table.Headers)+1, 1)
	if err := f.SetCellStyle(compareSheetName, "A1", lastHeader, headerStyle); err != nil {
		return nil, fmt.Errorf("apply header style: %w", err)
	}

	for r, row := range table.Rows {
		labelCell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetCellValue(compareSheetName, labelCell, row.Label); err != nil {
			return nil, fmt.Errorf("set label %s: %w", labelCell, err)
		}
		if err := f.SetCellStyle(compareSheetName, labelCell, labelCell, labelStyle); err != nil {
			return nil, fmt.Errorf("apply label style: %w", err)
		}
		for c, value := range row.Values {
			cell, _ := excelize.CoordinatesToCellName(c+2, r+2)
			if err := f.SetCellValue(compareSheetName, cell, value); err != nil {
				return nil, fmt.Errorf("set value %s: %w", cell, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
