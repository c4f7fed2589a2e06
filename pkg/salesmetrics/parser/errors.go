package parser

import (
	"errors"
	"fmt"
)

// ErrEmptySheet indicates the sheet holds no header row.
var ErrEmptySheet = errors.New("sheet has no data")

// ErrSheetNotFound indicates the requested sheet does not exist in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// UnsupportedFormatError is returned for files that are neither spreadsheets
// nor delimited text.
type UnsupportedFormatError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q for %s (use .xlsx, .xlsm, .xls, .csv, .tsv or .txt)", e.Ext, e.Path)
}
