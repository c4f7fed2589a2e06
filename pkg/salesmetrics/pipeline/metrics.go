package pipeline

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/salesmetrics-go/pkg/salesmetrics/models"
)

var hundred = decimal.NewFromInt(100)

// MetricRoles are the roles ComputeMetrics requires.
var MetricRoles = []models.Role{models.RoleQuantity, models.RoleRevenue, models.RoleCost}

// ComputeMetrics derives the financial aggregates of table. Null cells count
// as zero. When revenue, cost and units all total zero it returns an
// EmptyMetricsError carrying the column diagnostics.
func ComputeMetrics(table *models.CleanedTable) (*models.MetricsRecord, error) {
	if err := Require(table.Roles, table.Columns, "metrics", MetricRoles...); err != nil {
		return nil, err
	}

	units, err := sumRole(table, models.RoleQuantity)
	if err != nil {
		return nil, &MetricsComputationError{Err: err}
	}
	revenue, err := sumRole(table, models.RoleRevenue)
	if err != nil {
		return nil, &MetricsComputationError{Err: err}
	}
	cost, err := sumRole(table, models.RoleCost)
	if err != nil {
		return nil, &MetricsComputationError{Err: err}
	}

	if revenue.IsZero() && cost.IsZero() && units.IsZero() {
		return nil, &EmptyMetricsError{
			TotalRevenue: revenue,
			TotalCost:    cost,
			TotalUnits:   units,
			Columns:      table.Summaries(MetricRoles...),
		}
	}

	profit := revenue.Sub(cost)
	return &models.MetricsRecord{
		TotalRevenue:     revenue,
		TotalCost:        cost,
		TotalProfit:      profit,
		TotalUnits:       units,
		ProfitMarginPct:  percent(profit, revenue),
		MarkupPct:        percent(profit, cost),
		AvgProfitPerUnit: ratio(profit, units),
		AvgUnitPrice:     ratio(revenue, units),
		AvgCostPrice:     ratio(cost, units),
		RowCount:         table.Len(),
	}, nil
}

// sumRole adds up the cleaned values of role. A cell that is neither nil nor
// a decimal means the column was never cleaned.
func sumRole(table *models.CleanedTable, role models.Role) (decimal.Decimal, error) {
	col := table.Roles[role]
	total := decimal.Zero
	for i, row := range table.Rows {
		switch v := row[col].(type) {
		case nil:
		case decimal.Decimal:
			total = total.Add(v)
		default:
			return decimal.Zero, fmt.Errorf("row %d column %q holds %T, not a cleaned number", i+1, col, v)
		}
	}
	return total, nil
}

// percent returns 100*num/den, or 0 when den is zero.
func percent(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Mul(hundred).Div(den)
}

// ratio returns num/den, or 0 when den is zero.
func ratio(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den)
}
