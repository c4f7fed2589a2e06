package parser

import (
	"fmt"

	"github.com/extrame/xls"
)

// readXLS reads a legacy BIFF workbook.
func readXLS(path, sheetName string) ([][]string, string, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, "", fmt.Errorf("open workbook: %w", err)
	}

	var sheet *xls.WorkSheet
	for i := 0; i < wb.NumSheets(); i++ {
		s := wb.GetSheet(i)
		if s == nil {
			continue
		}
		if sheetName == "" || s.Name == sheetName {
			sheet = s
			break
		}
	}
	if sheet == nil {
		if sheetName != "" {
			return nil, "", fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
		}
		return nil, "", ErrEmptySheet
	}

	var grid [][]string
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			grid = append(grid, nil)
			continue
		}
		cells := make([]string, row.LastCol())
		for j := row.FirstCol(); j < row.LastCol(); j++ {
			cells[j] = row.Col(j)
		}
		grid = append(grid, cells)
	}
	return grid, sheet.Name, nil
}
