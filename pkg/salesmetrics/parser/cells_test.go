package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadFileXLSX(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Date")
	f.SetCellValue(sheetName, "B1", "Qty")
	f.SetCellValue(sheetName, "C1", "Net Sales")
	f.SetCellValue(sheetName, "A2", "2025-01-15")
	f.SetCellValue(sheetName, "B2", 3)
	f.SetCellValue(sheetName, "C2", "£1,234.50")
	f.SetCellValue(sheetName, "A3", "2025-02-01")
	f.SetCellValue(sheetName, "B3", 200.5)

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))

	table, err := ReadFile(tmpFile, Options{})
	require.NoError(t, err)

	assert.Equal(t, "test.xlsx", table.Source)
	assert.Equal(t, "Sheet1", table.Sheet)
	assert.Equal(t, []string{"Date", "Qty", "Net Sales"}, table.Columns)
	require.Len(t, table.Rows, 2)

	assert.Equal(t, "2025-01-15", table.Rows[0]["Date"])
	assert.Equal(t, int64(3), table.Rows[0]["Qty"])
	assert.Equal(t, "£1,234.50", table.Rows[0]["Net Sales"])
	assert.Equal(t, 200.5, table.Rows[1]["Qty"])

	// Missing cells are present as nil
	v, ok := table.Rows[1]["Net Sales"]
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestReadFileXLSXSheetSelection(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet("Sales")
	require.NoError(t, err)
	f.SetCellValue("Sheet1", "A1", "Notes")
	f.SetCellValue("Sales", "B3", "Qty")
	f.SetCellValue("Sales", "C3", "Net Sales")
	f.SetCellValue("Sales", "B4", 7)
	f.SetCellValue("Sales", "C4", 70)

	tmpFile := filepath.Join(t.TempDir(), "sheets.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))

	table, err := ReadFile(tmpFile, Options{Sheet: "Sales"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Qty", "Net Sales"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, int64(70), table.Rows[0]["Net Sales"])

	_, err = ReadFile(tmpFile, Options{Sheet: "Missing"})
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestReadFileXLSXRange(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "Report title")
	f.SetCellValue("Sheet1", "A3", "Qty")
	f.SetCellValue("Sheet1", "B3", "Net Sales")
	f.SetCellValue("Sheet1", "A4", 1)
	f.SetCellValue("Sheet1", "B4", 10)
	f.SetCellValue("Sheet1", "A10", "Total")

	tmpFile := filepath.Join(t.TempDir(), "range.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))

	table, err := ReadFile(tmpFile, Options{Range: "A3:B4"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Qty", "Net Sales"}, table.Columns)
	assert.Len(t, table.Rows, 1)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"£1,234.50", "£1,234.50"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}
