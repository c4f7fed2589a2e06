// Package models defines data structures for sales table ingestion and analysis.
package models

// Row maps column name to cell value.
// Raw cells hold string, int64, float64, or nil.
type Row map[string]interface{}

// RawTable represents a sheet as loaded from a file, before cleaning.
type RawTable struct {
	// Source is the file name the table was read from (no path).
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	// Sheet is the sheet name, empty for delimited text.
	Sheet string `json:"sheet,omitempty" yaml:"sheet,omitempty"`
	// Columns holds header names in file order.
	Columns []string `json:"columns" yaml:"columns"`
	// Rows contains data rows. Every row carries every column key.
	Rows []Row `json:"rows" yaml:"rows"`
}

// Len returns the number of data rows.
func (t *RawTable) Len() int {
	return len(t.Rows)
}

// Column returns the values of a column in row order.
func (t *RawTable) Column(name string) []interface{} {
	values := make([]interface{}, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[name]
	}
	return values
}

// HasColumn reports whether name is one of the table's columns.
func (t *RawTable) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
