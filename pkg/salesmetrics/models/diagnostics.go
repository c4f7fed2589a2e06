package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// NumericSummary describes the result of cleaning one numeric column.
type NumericSummary struct {
	// Column is the header of the cleaned column.
	Column string `json:"column" yaml:"column"`
	// Role is the role the column was resolved to.
	Role Role `json:"role" yaml:"role"`
	// DType is the raw cell type before cleaning: empty, int, float, text, or mixed.
	DType string `json:"dtype" yaml:"dtype"`
	// Total is the number of cells in the column.
	Total int `json:"total" yaml:"total"`
	// NonNull is the number of cells that parsed to a number.
	NonNull int `json:"non_null" yaml:"non_null"`
	// Sum is the sum of parsed cells.
	Sum decimal.Decimal `json:"sum" yaml:"sum"`
	// Mean is the mean of parsed cells, 0 when none parsed.
	Mean float64 `json:"mean" yaml:"mean"`
	// Median is the median of parsed cells, 0 when none parsed.
	Median float64 `json:"median" yaml:"median"`
	// Samples holds the first raw values as text.
	Samples []string `json:"samples,omitempty" yaml:"samples,omitempty"`
}

// Nulls returns the number of cells that did not parse.
func (s NumericSummary) Nulls() int {
	return s.Total - s.NonNull
}

// DateSummary describes the result of cleaning the date column.
type DateSummary struct {
	// Column is the header of the cleaned column.
	Column string `json:"column" yaml:"column"`
	// Method names the pass that parsed the column: "auto", a layout, or "mixed".
	Method string `json:"method" yaml:"method"`
	// NonNull is the number of parsed cells.
	NonNull int `json:"non_null" yaml:"non_null"`
	// Min is the earliest parsed date (nil if no cell parsed).
	Min *time.Time `json:"min,omitempty" yaml:"min,omitempty"`
	// Max is the latest parsed date (nil if no cell parsed).
	Max *time.Time `json:"max,omitempty" yaml:"max,omitempty"`
}
