package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/salesmetrics-go/pkg/salesmetrics/models"
	"github.com/ukaji3/salesmetrics-go/pkg/salesmetrics/output"
	"github.com/ukaji3/salesmetrics-go/pkg/salesmetrics/pipeline"
	"github.com/ukaji3/salesmetrics-go/pkg/salesmetrics/report"
)

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [input]",
		Short: "Compute revenue, cost, profit and margin",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}
}

func newAggregateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aggregate [input]",
		Short: "Sum units and revenue per product, department, brand or color",
		Args:  cobra.ExactArgs(1),
		RunE:  runAggregate,
	}
	cmd.Flags().StringVar(&groupBy, "by", "product", "Grouping: product, department, brand, color")
	cmd.Flags().IntVar(&topN, "top", 0, "Show only the first N groups (0: all)")
	return cmd
}

func newTrendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trend [input]",
		Short: "Monthly revenue, cost and profit",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrend,
	}
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [input]",
		Short: "Show columns, resolved roles and cleaning diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
}

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [input]",
		Short: "Write an xlsx report with charts",
		Args:  cobra.ExactArgs(1),
		RunE:  runReport,
	}
	cmd.Flags().IntVar(&reportTop, "top", -1, "Chart only the first N groups per category (default: from config)")
	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	table, err := app.load(args[0])
	if err != nil {
		return err
	}

	metrics, err := app.session.ComputeMetrics(table)
	var empty *pipeline.EmptyMetricsError
	if errors.As(err, &empty) {
		fmt.Fprintln(app.stderr, "Column information for debugging:")
		if derr := output.WriteDiagnostics(app.stderr, empty.Columns); derr != nil {
			return errors.Join(err, derr)
		}
	}
	if err != nil {
		return err
	}

	return app.writeResult(metrics, func(w io.Writer) error {
		return app.text.WriteMetrics(w, metrics)
	})
}

func runAggregate(cmd *cobra.Command, args []string) error {
	role, ok := models.ParseRole(strings.ToLower(groupBy))
	if !ok || !role.IsGrouping() {
		return fmt.Errorf("invalid grouping: %s (must be product, department, brand, or color)", groupBy)
	}

	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	table, err := app.load(args[0])
	if err != nil {
		return err
	}

	agg, err := app.session.AggregateBy(table, role)
	if err != nil {
		return err
	}
	top := agg.Top(topN)
	return app.writeResult(top, func(w io.Writer) error {
		return app.text.WriteAggregation(w, &top)
	})
}

func runTrend(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	table, err := app.load(args[0])
	if err != nil {
		return err
	}

	months, err := app.session.MonthlyTrend(table)
	if err != nil {
		return err
	}
	return app.writeResult(months, func(w io.Writer) error {
		return app.text.WriteTrend(w, months)
	})
}

func runInspect(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	table, err := app.load(args[0])
	if err != nil {
		return err
	}
	return app.writeResult(table, func(w io.Writer) error {
		return output.WriteTable(w, table)
	})
}

func runReport(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	table, err := app.load(args[0])
	if err != nil {
		return err
	}

	data := report.Data{Source: table.Source, TopN: app.cfg.ReportTop}
	if reportTop >= 0 {
		data.TopN = reportTop
	}

	// Each part is optional; a part that cannot be computed is reported and skipped.
	if data.Metrics, err = app.session.ComputeMetrics(table); err != nil {
		app.log.Warn("metrics skipped", "error", err)
	}
	for _, role := range models.GroupingRoles {
		agg, err := app.session.AggregateBy(table, role)
		if err != nil {
			app.log.Info("category skipped", "role", role, "error", err)
			continue
		}
		data.Aggregations = append(data.Aggregations, agg)
	}
	if data.Monthly, err = app.session.MonthlyTrend(table); err != nil {
		app.log.Info("monthly trend skipped", "error", err)
	}

	path := outputPath
	if path == "" {
		path = "sales_report.xlsx"
	}
	if err := report.Write(path, data); err != nil {
		return err
	}
	fmt.Fprintf(app.stderr, "Report written to %s\n", path)
	return nil
}
