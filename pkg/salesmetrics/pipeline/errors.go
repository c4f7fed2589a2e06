package pipeline

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/salesmetrics-go/pkg/salesmetrics/models"
)

// MissingColumnError names every required role that could not be resolved.
type MissingColumnError struct {
	// Operation is what needed the roles, e.g. "metrics" or "aggregate by product".
	Operation string
	Missing   []models.Role
	// Available lists the table's columns for troubleshooting.
	Available []string
}

func (e *MissingColumnError) Error() string {
	names := make([]string, len(e.Missing))
	for i, r := range e.Missing {
		names[i] = string(r)
	}
	return fmt.Sprintf("missing columns for %s: %s (available: %s)",
		e.Operation, strings.Join(names, ", "), strings.Join(e.Available, ", "))
}

// DateParseError is returned when a date column cannot be parsed as a whole.
type DateParseError struct {
	Column string
	// Samples holds up to five values no date format accepted.
	Samples []string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("could not parse dates in column %q; unparseable values: %s",
		e.Column, strings.Join(e.Samples, ", "))
}

// DateRangeParseError is returned for a filter endpoint that is not a date.
type DateRangeParseError struct {
	// Endpoint is "start" or "end".
	Endpoint string
	Text     string
}

func (e *DateRangeParseError) Error() string {
	return fmt.Sprintf("invalid %s date %q", e.Endpoint, e.Text)
}

// EmptyMetricsError is returned when revenue, cost and units all total zero.
type EmptyMetricsError struct {
	TotalRevenue decimal.Decimal
	TotalCost    decimal.Decimal
	TotalUnits   decimal.Decimal
	// Columns holds the cleaning diagnostics of the quantity, revenue and cost columns.
	Columns []models.NumericSummary
}

func (e *EmptyMetricsError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "all totals are zero (revenue %s, cost %s, units %s)",
		e.TotalRevenue, e.TotalCost, e.TotalUnits)
	for _, c := range e.Columns {
		fmt.Fprintf(&b, "; %s: dtype=%s non-null=%d/%d", c.Column, c.DType, c.NonNull, c.Total)
	}
	return b.String()
}

// MetricsComputationError wraps an unexpected failure while computing metrics.
type MetricsComputationError struct {
	Err error
}

func (e *MetricsComputationError) Error() string {
	return fmt.Sprintf("failed to calculate metrics: %v", e.Err)
}

func (e *MetricsComputationError) Unwrap() error {
	return e.Err
}
