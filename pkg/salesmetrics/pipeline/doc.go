// Package pipeline cleans raw sales tables and computes metrics from them.
//
// The flow is Resolve (find the date, quantity, revenue, cost and grouping
// columns from their headers), Clean (coerce numeric and date columns),
// FilterByDate, and then ComputeMetrics, AggregateBy or MonthlyTrend.
//
// Numeric cells that cannot be parsed become nil and are counted as zero.
// A date column that cannot be parsed fails as a whole.
package pipeline
