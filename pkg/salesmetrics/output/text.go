package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"github.com/ukaji3/salesmetrics-go/pkg/salesmetrics/models"
)

// DefaultCurrency prefixes amounts when no other symbol is configured.
const DefaultCurrency = "$"

// Text renders analysis results as aligned text tables.
type Text struct {
	// Currency prefixes every amount.
	Currency string
}

// NewText returns a Text writer using currency, or DefaultCurrency if empty.
func NewText(currency string) *Text {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Text{Currency: currency}
}

// FormatCurrency renders d with thousands separators and two decimals, e.g. $1,234.50.
func (p *Text) FormatCurrency(d decimal.Decimal) string {
	s := humanize.FormatFloat("#,###.##", d.Abs().Round(2).InexactFloat64())
	if d.Round(2).IsNegative() {
		return "-" + p.Currency + s
	}
	return p.Currency + s
}

// FormatPercent renders d with one decimal, e.g. 40.0%.
func FormatPercent(d decimal.Decimal) string {
	return d.StringFixed(1) + "%"
}

// FormatUnits renders a quantity with thousands separators.
func FormatUnits(d decimal.Decimal) string {
	if d.IsInteger() {
		return humanize.Comma(d.IntPart())
	}
	return humanize.FormatFloat("#,###.##", d.InexactFloat64())
}

// WriteMetrics prints a metrics record.
func (p *Text) WriteMetrics(w io.Writer, m *models.MetricsRecord) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Financial Metrics")
	fmt.Fprintln(tw, strings.Repeat("=", 50))
	fmt.Fprintf(tw, "Total Revenue:\t%s\n", p.FormatCurrency(m.TotalRevenue))
	fmt.Fprintf(tw, "Total Cost:\t%s\n", p.FormatCurrency(m.TotalCost))
	fmt.Fprintf(tw, "Total Profit:\t%s\n", p.FormatCurrency(m.TotalProfit))
	fmt.Fprintf(tw, "Total Units Sold:\t%s\n", FormatUnits(m.TotalUnits))
	fmt.Fprintf(tw, "Profit Margin:\t%s\n", FormatPercent(m.ProfitMarginPct))
	fmt.Fprintf(tw, "Markup:\t%s\n", FormatPercent(m.MarkupPct))
	fmt.Fprintf(tw, "Average Unit Price:\t%s\n", p.FormatCurrency(m.AvgUnitPrice))
	fmt.Fprintf(tw, "Average Cost Price:\t%s\n", p.FormatCurrency(m.AvgCostPrice))
	fmt.Fprintf(tw, "Average Profit per Unit:\t%s\n", p.FormatCurrency(m.AvgProfitPerUnit))
	fmt.Fprintf(tw, "Rows:\t%d\n", m.RowCount)
	return tw.Flush()
}

// WriteAggregation prints a per-category table.
func (p *Text) WriteAggregation(w io.Writer, a *models.Aggregation) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	hasCost := len(a.Groups) > 0 && a.Groups[0].HasCost
	title := strings.ToUpper(string(a.Role[:1])) + string(a.Role[1:])
	if hasCost {
		fmt.Fprintf(tw, "%s\tRevenue\tUnits\tProfit\tMargin\n", title)
	} else {
		fmt.Fprintf(tw, "%s\tRevenue\tUnits\n", title)
	}
	for _, g := range a.Groups {
		if hasCost {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", g.Key, p.FormatCurrency(g.Revenue),
				FormatUnits(g.Quantity), p.FormatCurrency(g.Profit), FormatPercent(g.MarginPct))
		} else {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", g.Key, p.FormatCurrency(g.Revenue), FormatUnits(g.Quantity))
		}
	}
	return tw.Flush()
}

// WriteTrend prints monthly totals.
func (p *Text) WriteTrend(w io.Writer, months []models.MonthTotal) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Month\tRevenue\tCost\tProfit")
	for _, m := range months {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.Month,
			p.FormatCurrency(m.Revenue), p.FormatCurrency(m.Cost), p.FormatCurrency(m.Profit))
	}
	return tw.Flush()
}

// WriteDiagnostics prints per-column cleaning summaries.
func WriteDiagnostics(w io.Writer, summaries []models.NumericSummary) error {
	var b strings.Builder
	for _, s := range summaries {
		fmt.Fprintf(&b, "\n%s (%s):\n", s.Column, s.Role)
		fmt.Fprintf(&b, "  Type: %s\n", s.DType)
		fmt.Fprintf(&b, "  Non-null count: %d of %d\n", s.NonNull, s.Total)
		fmt.Fprintf(&b, "  Sum: %s\n", s.Sum.String())
		fmt.Fprintf(&b, "  Sample values: [%s]\n", strings.Join(s.Samples, ", "))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteTable prints the columns, resolved roles and cleaning diagnostics of a table.
func WriteTable(w io.Writer, t *models.CleanedTable) error {
	fmt.Fprintf(w, "Loaded %d rows and %d columns", t.Len(), len(t.Columns))
	if t.Source != "" {
		fmt.Fprintf(w, " from %s", t.Source)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "\nColumns:")
	for _, c := range t.Columns {
		fmt.Fprintf(w, "- %s\n", c)
	}

	fmt.Fprintln(w, "\nRoles:")
	for _, r := range models.AllRoles {
		col, ok := t.Roles[r]
		if !ok {
			col = "(unresolved)"
		}
		fmt.Fprintf(w, "  %-11s %s\n", r, col)
	}

	if t.Dates != nil {
		fmt.Fprintf(w, "\nDates: %s parsed %d values", t.Dates.Column, t.Dates.NonNull)
		if t.Dates.Min != nil && t.Dates.Max != nil {
			fmt.Fprintf(w, " from %s to %s", t.Dates.Min.Format("2006-01-02"), t.Dates.Max.Format("2006-01-02"))
		}
		fmt.Fprintf(w, " (%s)\n", t.Dates.Method)
	}

	return WriteDiagnostics(w, t.Summaries(models.RoleQuantity, models.RoleRevenue, models.RoleCost))
}
