package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/salesmetrics-go/internal/config"
	"github.com/ukaji3/salesmetrics-go/internal/logging"
	"github.com/ukaji3/salesmetrics-go/pkg/salesmetrics"
	"github.com/ukaji3/salesmetrics-go/pkg/salesmetrics/models"
	"github.com/ukaji3/salesmetrics-go/pkg/salesmetrics/output"
	"github.com/ukaji3/salesmetrics-go/pkg/salesmetrics/pipeline"
)

// app bundles what every command needs.
type app struct {
	cfg     *config.Config
	log     *slog.Logger
	session *salesmetrics.Session
	text    *output.Text
	stdout  io.Writer
	stderr  io.Writer
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if logLevel != "" {
		level = logLevel
	}
	stderr := cmd.ErrOrStderr()
	logger, err := logging.New(stderr, level, cfg.Logging.Format)
	if err != nil {
		return nil, err
	}

	sheet := cfg.Sheet
	if sheetName != "" {
		sheet = sheetName
	}

	session := salesmetrics.NewSession(salesmetrics.Options{
		Sheet:           sheet,
		Range:           cellRange,
		CurrencySymbols: cfg.CurrencySymbols,
		SampleSize:      cfg.SampleSize,
		Logger:          logger,
	})
	return &app{
		cfg:     cfg,
		log:     logger,
		session: session,
		text:    output.NewText(cfg.DisplayCurrency),
		stdout:  cmd.OutOrStdout(),
		stderr:  stderr,
	}, nil
}

// load reads path and applies the --start/--end filter. A bad date range is
// reported and the unfiltered table is used.
func (a *app) load(path string) (*models.CleanedTable, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	if _, err := a.session.Load(path); err != nil {
		return nil, err
	}

	table, err := a.session.Filter(&models.DateRange{Start: startDate, End: endDate})
	var (
		rangeErr   *pipeline.DateRangeParseError
		missingErr *pipeline.MissingColumnError
	)
	if errors.As(err, &rangeErr) || errors.As(err, &missingErr) {
		fmt.Fprintf(a.stderr, "Warning: %v; showing all dates\n", err)
		return table, nil
	}
	if err != nil {
		return nil, err
	}
	return table, nil
}

// writeResult renders v in the selected format to --output or stdout.
func (a *app) writeResult(v interface{}, text func(io.Writer) error) (err error) {
	f, err := output.ParseFormat(format)
	if err != nil {
		return err
	}

	if outputPath == "" {
		return output.Write(a.stdout, f, pretty, v, text)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to write output: %w", cerr)
		}
	}()
	return output.Write(file, f, pretty, v, text)
}
