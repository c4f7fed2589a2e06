package output

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/salesmetrics-go/pkg/salesmetrics/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"1234.5", "$1,234.50"},
		{"0", "$0.00"},
		{"1000000", "$1,000,000.00"},
		{"-50.25", "-$50.25"},
		{"99.999", "$100.00"},
	}

	p := NewText("")
	for _, tt := range tests {
		assert.Equal(t, tt.expected, p.FormatCurrency(dec(tt.in)), tt.in)
	}
}

func TestTextCurrency(t *testing.T) {
	gbp := NewText("£")
	usd := NewText("$")

	assert.Equal(t, "£1,234.50", gbp.FormatCurrency(dec("1234.5")))
	assert.Equal(t, "-£3.00", gbp.FormatCurrency(dec("-3")))
	assert.Equal(t, "$1,234.50", usd.FormatCurrency(dec("1234.5")), "writers do not share a symbol")
}

func TestFormatPercentAndUnits(t *testing.T) {
	assert.Equal(t, "40.0%", FormatPercent(dec("40")))
	assert.Equal(t, "66.7%", FormatPercent(dec("66.6666")))
	assert.Equal(t, "12,345", FormatUnits(dec("12345")))
	assert.Equal(t, "2.50", FormatUnits(dec("2.5")))
}

func TestWriteMetrics(t *testing.T) {
	m := &models.MetricsRecord{
		TotalRevenue:    dec("1000"),
		TotalCost:       dec("600"),
		TotalProfit:     dec("400"),
		TotalUnits:      dec("10"),
		ProfitMarginPct: dec("40"),
		MarkupPct:       dec("66.6667"),
		RowCount:        3,
	}

	var buf bytes.Buffer
	require.NoError(t, NewText("").WriteMetrics(&buf, m))
	out := buf.String()
	assert.Contains(t, out, "$1,000.00")
	assert.Contains(t, out, "40.0%")
	assert.Contains(t, out, "66.7%")
	assert.Contains(t, out, "Rows:")
}

func TestWriteAggregation(t *testing.T) {
	agg := &models.Aggregation{
		Role: models.RoleDepartment,
		Groups: []models.GroupTotal{
			{Key: "Interior", Revenue: dec("1500"), Quantity: dec("5")},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewText("").WriteAggregation(&buf, agg))
	assert.Contains(t, buf.String(), "Department")
	assert.Contains(t, buf.String(), "Interior")
	assert.NotContains(t, buf.String(), "Margin")
}

func TestWriteDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDiagnostics(&buf, []models.NumericSummary{
		{Column: "Net Sales", Role: models.RoleRevenue, DType: "text", Total: 2, Sum: dec("0"), Samples: []string{"n/a", "-"}},
	}))
	assert.Contains(t, buf.String(), "Net Sales (revenue):")
	assert.Contains(t, buf.String(), "Non-null count: 0 of 2")

	assert.Error(t, WriteDiagnostics(failingWriter{}, []models.NumericSummary{{Column: "Qty"}}))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWrite(t *testing.T) {
	m := &models.MetricsRecord{TotalRevenue: dec("1000"), RowCount: 2}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, false, m, nil))
	assert.Contains(t, buf.String(), `"total_revenue":"1000"`)
	assert.Contains(t, buf.String(), `"row_count":2`)

	buf.Reset()
	require.NoError(t, Write(&buf, FormatYAML, false, m, nil))
	assert.Contains(t, buf.String(), "total_revenue:")
	assert.Contains(t, buf.String(), "row_count: 2")

	buf.Reset()
	called := false
	require.NoError(t, Write(&buf, FormatText, false, m, func(w io.Writer) error {
		called = true
		return nil
	}))
	assert.True(t, called)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("yaml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}
