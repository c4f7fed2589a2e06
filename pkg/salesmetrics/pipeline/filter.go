package pipeline

import (
	"strings"
	"time"

	"github.com/ukaji3/salesmetrics-go/pkg/salesmetrics/models"
)

// FilterByDate keeps the rows whose date lies within rng, both ends
// inclusive, compared by calendar day. A nil or blank range returns table
// as is; a blank endpoint leaves that side open.
//
// If an endpoint does not parse, the unfiltered table is returned together
// with a DateRangeParseError so callers can carry on and report it.
func FilterByDate(table *models.CleanedTable, rng *models.DateRange) (*models.CleanedTable, error) {
	if rng.IsBlank() {
		return table, nil
	}
	if err := Require(table.Roles, table.Columns, "date filter", models.RoleDate); err != nil {
		return table, err
	}

	start, hasStart, err := parseEndpoint("start", rng.Start)
	if err != nil {
		return table, err
	}
	end, hasEnd, err := parseEndpoint("end", rng.End)
	if err != nil {
		return table, err
	}

	rows := make([]models.Row, 0, table.Len())
	for _, row := range table.Rows {
		t, ok := table.Date(row)
		if !ok {
			continue
		}
		day := truncateDay(t)
		if hasStart && day.Before(start) {
			continue
		}
		if hasEnd && day.After(end) {
			continue
		}
		rows = append(rows, row)
	}
	return table.WithRows(rows), nil
}

func parseEndpoint(name, text string) (time.Time, bool, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, false, nil
	}
	t, ok := ParseDate(s)
	if !ok {
		return time.Time{}, false, &DateRangeParseError{Endpoint: name, Text: text}
	}
	return truncateDay(t), true, nil
}
