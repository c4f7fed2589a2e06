// Package salesmetrics loads sales spreadsheets and computes financial metrics from them.
package salesmetrics

import (
	"io"
	"log/slog"

	"github.com/ukaji3/salesmetrics-go/pkg/salesmetrics/parser"
	"github.com/ukaji3/salesmetrics-go/pkg/salesmetrics/pipeline"
)

// Options configures a Session.
type Options struct {
	// Sheet selects the worksheet by name. Empty means the first sheet.
	Sheet string
	// Range restricts reading to a cell range such as "A1:H500".
	Range string
	// CurrencySymbols are stripped from numeric cells.
	// If empty, pipeline.DefaultCurrencySymbols is used.
	CurrencySymbols []string
	// SampleSize is the number of raw values kept per column in diagnostics.
	// If zero, pipeline.DefaultSampleSize is used.
	SampleSize int
	// Logger receives load and cleaning events. If nil, logs are discarded.
	Logger *slog.Logger
}

// DefaultOptions returns default session options.
func DefaultOptions() Options {
	return Options{
		CurrencySymbols: pipeline.DefaultCurrencySymbols,
		SampleSize:      pipeline.DefaultSampleSize,
	}
}

func (o Options) parserOptions() parser.Options {
	return parser.Options{Sheet: o.Sheet, Range: o.Range}
}

func (o Options) pipelineOptions() pipeline.Options {
	return pipeline.Options{CurrencySymbols: o.CurrencySymbols, SampleSize: o.SampleSize}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
