package models

import "github.com/shopspring/decimal"

// GroupTotal is one row of a per-category aggregation.
type GroupTotal struct {
	// Key is the group value, e.g. a product description.
	Key      string          `json:"key" yaml:"key"`
	Quantity decimal.Decimal `json:"quantity" yaml:"quantity"`
	Revenue  decimal.Decimal `json:"revenue" yaml:"revenue"`
	// Cost, Profit and MarginPct are only meaningful when HasCost is true.
	Cost      decimal.Decimal `json:"cost" yaml:"cost"`
	Profit    decimal.Decimal `json:"profit" yaml:"profit"`
	MarginPct decimal.Decimal `json:"margin_pct" yaml:"margin_pct"`
	HasCost   bool            `json:"has_cost" yaml:"has_cost"`
	// Rows is the number of rows in the group.
	Rows int `json:"rows" yaml:"rows"`
}

// Aggregation is an ordered per-category breakdown.
type Aggregation struct {
	Role   Role         `json:"role" yaml:"role"`
	Column string       `json:"column" yaml:"column"`
	Groups []GroupTotal `json:"groups" yaml:"groups"`
}

// Top returns the aggregation truncated to at most n groups. n <= 0 keeps all.
func (a Aggregation) Top(n int) Aggregation {
	if n <= 0 || n >= len(a.Groups) {
		return a
	}
	a.Groups = a.Groups[:n]
	return a
}

// MonthTotal is one month of the revenue/profit trend.
type MonthTotal struct {
	// Month is formatted YYYY-MM.
	Month   string          `json:"month" yaml:"month"`
	Revenue decimal.Decimal `json:"revenue" yaml:"revenue"`
	Cost    decimal.Decimal `json:"cost" yaml:"cost"`
	Profit  decimal.Decimal `json:"profit" yaml:"profit"`
	Rows    int             `json:"rows" yaml:"rows"`
}
