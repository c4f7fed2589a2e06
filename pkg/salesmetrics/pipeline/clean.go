package pipeline

import (
	"github.com/ukaji3/salesmetrics-go/pkg/salesmetrics/models"
)

// Options configures cleaning.
type Options struct {
	// CurrencySymbols are stripped from numeric cells.
	CurrencySymbols []string
	// SampleSize is the number of raw values kept per column in diagnostics.
	SampleSize int
}

// Clean resolves roles on raw and coerces the numeric and date role columns.
// raw is not modified. Unparseable numeric cells become nil; an unparseable
// date column fails with a DateParseError.
func Clean(raw *models.RawTable, opts Options) (*models.CleanedTable, error) {
	roles := Resolve(raw)
	return CleanWithRoles(raw, roles, opts)
}

// CleanWithRoles is Clean with an explicit role mapping.
func CleanWithRoles(raw *models.RawTable, roles models.RoleMap, opts Options) (*models.CleanedTable, error) {
	rows := make([]models.Row, len(raw.Rows))
	for i, r := range raw.Rows {
		row := make(models.Row, len(r))
		for k, v := range r {
			row[k] = v
		}
		rows[i] = row
	}

	table := &models.CleanedTable{
		Source:  raw.Source,
		Columns: raw.Columns,
		Rows:    rows,
		Roles:   roles,
		Numeric: make(map[string]models.NumericSummary),
	}

	cleaner := NewNumericCleaner(opts.CurrencySymbols, opts.SampleSize)
	for _, role := range models.AllRoles {
		col, ok := roles[role]
		if !ok || !role.IsNumeric() || !raw.HasColumn(col) {
			continue
		}
		if _, done := table.Numeric[col]; done {
			continue
		}
		values, summary := cleaner.Clean(col, raw.Column(col))
		summary.Role = role
		for i := range rows {
			rows[i][col] = values[i]
		}
		table.Numeric[col] = summary
	}

	if col, ok := roles[models.RoleDate]; ok && raw.HasColumn(col) {
		values, summary, err := CleanDates(col, raw.Column(col))
		if err != nil {
			return nil, err
		}
		for i := range rows {
			rows[i][col] = values[i]
		}
		table.Dates = summary
	}

	return table, nil
}
