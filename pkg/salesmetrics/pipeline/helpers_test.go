package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/salesmetrics-go/pkg/salesmetrics/models"
)

// rawTable builds a RawTable from a header and positional rows.
func rawTable(columns []string, rows ...[]interface{}) *models.RawTable {
	table := &models.RawTable{Columns: columns}
	for _, r := range rows {
		row := make(models.Row, len(columns))
		for i, c := range columns {
			if i < len(r) {
				row[c] = r[i]
			} else {
				row[c] = nil
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

// cleanTable resolves and cleans a table built by rawTable.
func cleanTable(t *testing.T, columns []string, rows ...[]interface{}) *models.CleanedTable {
	t.Helper()
	table, err := Clean(rawTable(columns, rows...), Options{})
	require.NoError(t, err)
	return table
}

var salesColumns = []string{"Date", "Product Description", "Department", "Qty", "Net Sales", "Cost of Sale"}
