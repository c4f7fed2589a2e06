package pipeline

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/ukaji3/salesmetrics-go/pkg/salesmetrics/models"
	"github.com/xuri/excelize/v2"
)

// DateLayouts is the ordered list of explicit layouts tried after the
// automatic parser. Day-first layouts precede month-first ones.
var DateLayouts = []string{
	// ISO
	"2006-01-02",
	// day/month/year
	"2/1/2006", "2-1-2006", "2.1.2006",
	// month/day/year
	"1/2/2006", "1-2-2006", "1.2.2006",
	// day month-name year
	"2-Jan-2006", "2 Jan 2006", "2-January-2006", "2 January 2006",
	// month-name day year
	"Jan-2-2006", "Jan 2 2006", "January-2-2006", "January 2 2006",
	// two-digit year
	"2/1/06", "1/2/06",
	// with time of day
	"2006-01-02 15:04:05", "2/1/2006 15:04:05", "1/2/2006 15:04:05",
}

const (
	// MethodAuto names the automatic parsing pass.
	MethodAuto = "auto"
	// MethodMixed names the per-cell pass.
	MethodMixed = "mixed"
)

// Excel serial day numbers accepted by the per-cell pass: 1954-09-08 to 9999-12-31.
const (
	minExcelSerial = 20000
	maxExcelSerial = 2958465
)

const maxDateSamples = 5

// CleanDates parses a whole date column. Passes run in order and the first
// one that accepts every non-blank cell wins: automatic parsing, each of
// DateLayouts, then a per-cell pass allowing rows to differ. Blank cells stay nil.
// If the per-cell pass rejects any cell the column fails with a DateParseError.
func CleanDates(column string, values []interface{}) ([]interface{}, *models.DateSummary, error) {
	texts := make([]string, len(values))
	for i, v := range values {
		texts[i] = strings.TrimSpace(cellText(v))
	}

	if out, ok := parseColumn(texts, parseAuto); ok {
		return out, summarizeDates(column, MethodAuto, out), nil
	}

	for _, layout := range DateLayouts {
		layout := layout
		parse := func(s string) (time.Time, bool) { return parseLayout(layout, s) }
		if out, ok := parseColumn(texts, parse); ok {
			return out, summarizeDates(column, layout, out), nil
		}
	}

	out := make([]interface{}, len(texts))
	var failed []string
	for i, s := range texts {
		if s == "" {
			continue
		}
		t, ok := ParseDate(s)
		if !ok {
			if len(failed) < maxDateSamples {
				failed = append(failed, s)
			}
			continue
		}
		out[i] = t
	}
	if len(failed) > 0 {
		return nil, nil, &DateParseError{Column: column, Samples: failed}
	}
	return out, summarizeDates(column, MethodMixed, out), nil
}

// ParseDate parses a single value with the automatic parser, then each of
// DateLayouts, then as an Excel serial day number.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, ok := parseAuto(s); ok {
		return t, true
	}
	for _, layout := range DateLayouts {
		if t, ok := parseLayout(layout, s); ok {
			return t, true
		}
	}
	return parseSerial(s)
}

func parseColumn(texts []string, parse func(string) (time.Time, bool)) ([]interface{}, bool) {
	out := make([]interface{}, len(texts))
	for i, s := range texts {
		if s == "" {
			continue
		}
		t, ok := parse(s)
		if !ok {
			return nil, false
		}
		out[i] = t
	}
	return out, true
}

func parseAuto(s string) (time.Time, bool) {
	// Bare numbers are left to the serial pass; dateparse reads them as
	// years or unix timestamps.
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func parseLayout(layout, s string) (time.Time, bool) {
	t, err := time.ParseInLocation(layout, s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func parseSerial(s string) (time.Time, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < minExcelSerial || f > maxExcelSerial {
		return time.Time{}, false
	}
	t, err := excelize.ExcelDateToTime(f, false)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

func summarizeDates(column, method string, values []interface{}) *models.DateSummary {
	summary := &models.DateSummary{Column: column, Method: method}
	for _, v := range values {
		t, ok := v.(time.Time)
		if !ok {
			continue
		}
		summary.NonNull++
		if summary.Min == nil || t.Before(*summary.Min) {
			tt := t
			summary.Min = &tt
		}
		if summary.Max == nil || t.After(*summary.Max) {
			tt := t
			summary.Max = &tt
		}
	}
	return summary
}

// truncateDay drops the time of day.
func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
