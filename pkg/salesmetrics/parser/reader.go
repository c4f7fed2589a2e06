// Package parser reads spreadsheet and delimited text files into raw tables.
package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/salesmetrics-go/pkg/salesmetrics/models"
)

// Format identifies how a file is read.
type Format string

const (
	FormatXLSX      Format = "xlsx"
	FormatXLS       Format = "xls"
	FormatDelimited Format = "delimited"
)

// Options configures reading.
type Options struct {
	// Sheet selects the worksheet by name. Empty means the first sheet.
	Sheet string
	// Range restricts spreadsheet reading to a cell range such as "A1:H500".
	Range string
}

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".xls":
		return FormatXLS, nil
	case ".csv", ".tsv", ".txt":
		return FormatDelimited, nil
	default:
		return "", &UnsupportedFormatError{Path: path, Ext: ext}
	}
}

// ReadFile reads the file at path into a RawTable.
// The first non-empty row inside the data bounds is taken as the header.
func ReadFile(path string, opts Options) (*models.RawTable, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	var area *models.CellRange
	if opts.Range != "" {
		area, err = ParseRange(opts.Range)
		if err != nil {
			return nil, err
		}
	}

	var (
		grid  [][]string
		sheet string
	)
	switch format {
	case FormatXLSX:
		grid, sheet, err = readXLSX(path, opts.Sheet)
	case FormatXLS:
		grid, sheet, err = readXLS(path, opts.Sheet)
	case FormatDelimited:
		grid, err = readDelimited(path)
	}
	if err != nil {
		return nil, err
	}

	if area != nil {
		grid = clipGrid(grid, *area)
	}

	table, err := BuildTable(grid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	table.Source = filepath.Base(path)
	table.Sheet = sheet
	return table, nil
}
