package pipeline

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
	"github.com/ukaji3/salesmetrics-go/pkg/salesmetrics/models"
)

// DefaultCurrencySymbols are stripped from numeric cells when no other set is configured.
var DefaultCurrencySymbols = []string{"£", "$", "€"}

// DefaultSampleSize is the number of raw values kept in diagnostics.
const DefaultSampleSize = 5

// maxExponent bounds the decimal exponent of a parsed cell. Text such as
// 1e2000000000 would otherwise expand to billions of digits when summed.
const maxExponent = 28

// NumericCleaner coerces raw cells into decimals.
type NumericCleaner struct {
	Symbols    []string
	SampleSize int
}

// NewNumericCleaner returns a cleaner stripping symbols. Empty symbols selects
// DefaultCurrencySymbols; sampleSize <= 0 selects DefaultSampleSize.
func NewNumericCleaner(symbols []string, sampleSize int) *NumericCleaner {
	if len(symbols) == 0 {
		symbols = DefaultCurrencySymbols
	}
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}
	return &NumericCleaner{Symbols: symbols, SampleSize: sampleSize}
}

// Clean converts values to decimal.Decimal. Cells that do not parse become nil;
// that is never an error.
func (c *NumericCleaner) Clean(column string, values []interface{}) ([]interface{}, models.NumericSummary) {
	out := make([]interface{}, len(values))
	summary := models.NumericSummary{
		Column: column,
		Total:  len(values),
		Sum:    decimal.Zero,
		DType:  rawDType(values),
	}

	var floats stats.Float64Data
	for i, v := range values {
		if len(summary.Samples) < c.SampleSize {
			summary.Samples = append(summary.Samples, cellText(v))
		}
		d, ok := c.Parse(v)
		if !ok {
			continue
		}
		out[i] = d
		summary.NonNull++
		summary.Sum = summary.Sum.Add(d)
		floats = append(floats, d.InexactFloat64())
	}

	if len(floats) > 0 {
		summary.Mean, _ = stats.Mean(floats)
		summary.Median, _ = stats.Median(floats)
	}
	return out, summary
}

// Parse cleans a single cell.
func (c *NumericCleaner) Parse(v interface{}) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case nil:
		return decimal.Zero, false
	case decimal.Decimal:
		return n, true
	case int64:
		return decimal.NewFromInt(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	}

	s := c.strip(cellText(v))
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.Exponent() > maxExponent || d.Exponent() < -maxExponent {
		return decimal.Zero, false
	}
	return d, true
}

// strip removes currency symbols, thousands separators and all whitespace.
func (c *NumericCleaner) strip(s string) string {
	for _, sym := range c.Symbols {
		s = strings.ReplaceAll(s, sym, "")
	}
	return strings.Map(func(r rune) rune {
		if r == ',' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// cellText renders a raw cell as text.
func cellText(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

func rawDType(values []interface{}) string {
	kinds := make(map[string]bool)
	for _, v := range values {
		switch v.(type) {
		case nil:
		case int64, int:
			kinds["int"] = true
		case float64:
			kinds["float"] = true
		default:
			kinds["text"] = true
		}
	}
	switch {
	case len(kinds) == 0:
		return "empty"
	case len(kinds) == 1:
		for k := range kinds {
			return k
		}
	case len(kinds) == 2 && kinds["int"] && kinds["float"]:
		return "float"
	}
	return "mixed"
}
