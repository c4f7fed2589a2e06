package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CleanedTable is a RawTable whose numeric role columns hold decimal.Decimal
// (or nil) and whose date column holds time.Time (or nil).
type CleanedTable struct {
	// Source is the file name the table was read from.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	// Columns holds header names in file order.
	Columns []string `json:"columns" yaml:"columns"`
	// Rows contains the cleaned rows.
	Rows []Row `json:"-" yaml:"-"`
	// Roles maps resolved roles to columns.
	Roles RoleMap `json:"roles" yaml:"roles"`
	// Numeric holds cleaning diagnostics keyed by column name.
	Numeric map[string]NumericSummary `json:"numeric,omitempty" yaml:"numeric,omitempty"`
	// Dates holds the date column diagnostics, nil when no date role was resolved.
	Dates *DateSummary `json:"dates,omitempty" yaml:"dates,omitempty"`
}

// Len returns the number of rows.
func (t *CleanedTable) Len() int {
	return len(t.Rows)
}

// WithRows returns a copy of the table sharing columns, roles and
// diagnostics but holding rows instead.
func (t *CleanedTable) WithRows(rows []Row) *CleanedTable {
	cp := *t
	cp.Rows = rows
	return &cp
}

// Decimal returns the cleaned numeric value of role in row.
// ok is false for nil cells and unresolved roles.
func (t *CleanedTable) Decimal(row Row, role Role) (decimal.Decimal, bool) {
	col, ok := t.Roles[role]
	if !ok {
		return decimal.Zero, false
	}
	d, ok := row[col].(decimal.Decimal)
	return d, ok
}

// Date returns the cleaned date of row.
func (t *CleanedTable) Date(row Row) (time.Time, bool) {
	col, ok := t.Roles[RoleDate]
	if !ok {
		return time.Time{}, false
	}
	d, ok := row[col].(time.Time)
	return d, ok
}

// Summaries returns the numeric summaries of the given roles that are resolved.
func (t *CleanedTable) Summaries(roles ...Role) []NumericSummary {
	var out []NumericSummary
	for _, r := range roles {
		col, ok := t.Roles[r]
		if !ok {
			continue
		}
		if s, ok := t.Numeric[col]; ok {
			out = append(out, s)
		}
	}
	return out
}
