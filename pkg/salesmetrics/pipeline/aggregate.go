package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/salesmetrics-go/pkg/salesmetrics/models"
)

// AggregateBy groups rows by the column resolved for role and sums quantity
// and revenue per group, plus cost and profit when a cost column exists.
// Groups are sorted by revenue, highest first; ties keep first-seen order.
// Rows with a blank group key are skipped.
func AggregateBy(table *models.CleanedTable, role models.Role) (*models.Aggregation, error) {
	if !role.IsGrouping() {
		return nil, fmt.Errorf("cannot aggregate by %q", role)
	}
	operation := "aggregate by " + string(role)
	if err := Require(table.Roles, table.Columns, operation, role, models.RoleQuantity, models.RoleRevenue); err != nil {
		return nil, err
	}
	keyCol := table.Roles[role]
	_, hasCost := table.Roles[models.RoleCost]

	index := make(map[string]int)
	var groups []models.GroupTotal
	for _, row := range table.Rows {
		key := strings.TrimSpace(cellText(row[keyCol]))
		if key == "" {
			continue
		}
		idx, ok := index[key]
		if !ok {
			idx = len(groups)
			index[key] = idx
			groups = append(groups, models.GroupTotal{
				Key:      key,
				Quantity: decimal.Zero,
				Revenue:  decimal.Zero,
				Cost:     decimal.Zero,
				HasCost:  hasCost,
			})
		}
		g := &groups[idx]
		g.Rows++
		if q, ok := table.Decimal(row, models.RoleQuantity); ok {
			g.Quantity = g.Quantity.Add(q)
		}
		if r, ok := table.Decimal(row, models.RoleRevenue); ok {
			g.Revenue = g.Revenue.Add(r)
		}
		if c, ok := table.Decimal(row, models.RoleCost); ok {
			g.Cost = g.Cost.Add(c)
		}
	}

	for i := range groups {
		g := &groups[i]
		if g.HasCost {
			g.Profit = g.Revenue.Sub(g.Cost)
			g.MarginPct = percent(g.Profit, g.Revenue)
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Revenue.GreaterThan(groups[j].Revenue)
	})

	return &models.Aggregation{Role: role, Column: keyCol, Groups: groups}, nil
}

// MonthlyTrend sums revenue and cost per calendar month, oldest first.
// Rows without a date are skipped.
func MonthlyTrend(table *models.CleanedTable) ([]models.MonthTotal, error) {
	if err := Require(table.Roles, table.Columns, "monthly trend",
		models.RoleDate, models.RoleRevenue, models.RoleCost); err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var months []models.MonthTotal
	for _, row := range table.Rows {
		t, ok := table.Date(row)
		if !ok {
			continue
		}
		key := t.Format("2006-01")
		idx, ok := index[key]
		if !ok {
			idx = len(months)
			index[key] = idx
			months = append(months, models.MonthTotal{Month: key, Revenue: decimal.Zero, Cost: decimal.Zero})
		}
		m := &months[idx]
		m.Rows++
		if r, ok := table.Decimal(row, models.RoleRevenue); ok {
			m.Revenue = m.Revenue.Add(r)
		}
		if c, ok := table.Decimal(row, models.RoleCost); ok {
			m.Cost = m.Cost.Add(c)
		}
	}

	for i := range months {
		months[i].Profit = months[i].Revenue.Sub(months[i].Cost)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })
	return months, nil
}
