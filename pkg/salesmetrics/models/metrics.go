package models

import "github.com/shopspring/decimal"

// MetricsRecord holds the financial aggregates computed from one table snapshot.
type MetricsRecord struct {
	TotalRevenue     decimal.Decimal `json:"total_revenue" yaml:"total_revenue"`
	TotalCost        decimal.Decimal `json:"total_cost" yaml:"total_cost"`
	TotalProfit      decimal.Decimal `json:"total_profit" yaml:"total_profit"`
	TotalUnits       decimal.Decimal `json:"total_units" yaml:"total_units"`
	ProfitMarginPct  decimal.Decimal `json:"profit_margin_pct" yaml:"profit_margin_pct"`
	MarkupPct        decimal.Decimal `json:"markup_pct" yaml:"markup_pct"`
	AvgProfitPerUnit decimal.Decimal `json:"avg_profit_per_unit" yaml:"avg_profit_per_unit"`
	// AvgUnitPrice is revenue per unit, 0 when no units were sold.
	AvgUnitPrice decimal.Decimal `json:"avg_unit_price" yaml:"avg_unit_price"`
	// AvgCostPrice is cost per unit, 0 when no units were sold.
	AvgCostPrice decimal.Decimal `json:"avg_cost_price" yaml:"avg_cost_price"`
	// RowCount is the number of rows the metrics were computed from.
	RowCount int `json:"row_count" yaml:"row_count"`
}
