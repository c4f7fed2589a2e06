package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayouts(t *testing.T) {
	tests := []struct {
		layout string
		input  string
	}{
		{"2006-01-02", "2025-04-11"},
		{"2/1/2006", "11/04/2025"},
		{"2-1-2006", "11-04-2025"},
		{"2.1.2006", "11.04.2025"},
		{"1/2/2006", "04/11/2025"},
		{"1-2-2006", "04-11-2025"},
		{"1.2.2006", "04.11.2025"},
		{"2-Jan-2006", "11-Apr-2025"},
		{"2 Jan 2006", "11 Apr 2025"},
		{"2-January-2006", "11-April-2025"},
		{"2 January 2006", "11 April 2025"},
		{"Jan-2-2006", "Apr-11-2025"},
		{"Jan 2 2006", "Apr 11 2025"},
		{"January-2-2006", "April-11-2025"},
		{"January 2 2006", "April 11 2025"},
		{"2/1/06", "11/04/25"},
		{"1/2/06", "04/11/25"},
		{"2006-01-02 15:04:05", "2025-04-11 09:30:00"},
		{"2/1/2006 15:04:05", "11/04/2025 09:30:00"},
		{"1/2/2006 15:04:05", "04/11/2025 09:30:00"},
	}

	require.Len(t, tests, len(DateLayouts), "every layout is covered")
	for i, tt := range tests {
		assert.Equal(t, DateLayouts[i], tt.layout)
		got, ok := parseLayout(tt.layout, tt.input)
		require.True(t, ok, "%s with %s", tt.input, tt.layout)
		assert.Equal(t, "2025-04-11", got.Format("2006-01-02"), "%s with %s", tt.input, tt.layout)
	}
}

func TestCleanDatesAuto(t *testing.T) {
	values := []interface{}{"2025-01-15", nil, "2025-03-02", "  "}

	out, summary, err := CleanDates("Date", values)
	require.NoError(t, err)

	assert.Equal(t, MethodAuto, summary.Method)
	assert.Equal(t, 2, summary.NonNull)
	assert.Equal(t, "2025-01-15", out[0].(time.Time).Format("2006-01-02"))
	assert.Nil(t, out[1])
	assert.Nil(t, out[3])
	assert.Equal(t, "2025-01-15", summary.Min.Format("2006-01-02"))
	assert.Equal(t, "2025-03-02", summary.Max.Format("2006-01-02"))
}

func TestCleanDatesExplicitLayout(t *testing.T) {
	// Days above 12 leave day-first as the only valid reading.
	values := []interface{}{"13.04.2025", "25.12.2025"}

	out, summary, err := CleanDates("Sold On", values)
	require.NoError(t, err)
	assert.NotEqual(t, MethodMixed, summary.Method)
	assert.Equal(t, "2025-04-13", out[0].(time.Time).Format("2006-01-02"))
	assert.Equal(t, "2025-12-25", out[1].(time.Time).Format("2006-01-02"))
}

func TestCleanDatesMixed(t *testing.T) {
	values := []interface{}{"2025-04-11", "11 April 2025", "45758", "13/04/2025"}

	out, summary, err := CleanDates("Date", values)
	require.NoError(t, err)
	assert.Equal(t, MethodMixed, summary.Method)
	for i, v := range out {
		require.IsType(t, time.Time{}, v, "row %d", i)
	}
	assert.Equal(t, "2025-04-11", out[0].(time.Time).Format("2006-01-02"))
	assert.Equal(t, "2025-04-11", out[1].(time.Time).Format("2006-01-02"))
	assert.Equal(t, "2025-04-11", out[2].(time.Time).Format("2006-01-02"))
	assert.Equal(t, "2025-04-13", out[3].(time.Time).Format("2006-01-02"))
}

func TestCleanDatesFailure(t *testing.T) {
	values := []interface{}{"2025-01-01", "not a date", "soon", "2025-01-03"}

	out, summary, err := CleanDates("Date", values)
	assert.Nil(t, out)
	assert.Nil(t, summary)

	var dateErr *DateParseError
	require.ErrorAs(t, err, &dateErr)
	assert.Equal(t, "Date", dateErr.Column)
	assert.Equal(t, []string{"not a date", "soon"}, dateErr.Samples)
}

func TestParseDate(t *testing.T) {
	valid := []string{"2025-04-11", "11-Apr-2025", "April 11 2025", "45758", " 2025-04-11 "}
	for _, s := range valid {
		got, ok := ParseDate(s)
		require.True(t, ok, s)
		assert.Equal(t, "2025-04-11", got.Format("2006-01-02"), s)
	}

	for _, s := range []string{"", "Matte White", "12", "3.5", "£1,200"} {
		_, ok := ParseDate(s)
		assert.False(t, ok, s)
	}
}
