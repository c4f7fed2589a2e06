package parser

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// readXLSX returns the formatted cell text of one sheet.
func readXLSX(path, sheetName string) ([][]string, string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, "", ErrEmptySheet
	}
	if sheetName == "" {
		sheetName = sheetList[0]
	} else if idx, _ := f.GetSheetIndex(sheetName); idx < 0 {
		return nil, "", fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, "", fmt.Errorf("read sheet %q: %w", sheetName, err)
	}
	return rows, sheetName, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
