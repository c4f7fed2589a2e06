// Package main provides the CLI entry point for salesmetrics.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	outputPath string
	format     string
	pretty     bool
	sheetName  string
	cellRange  string
	logLevel   string
	startDate  string
	endDate    string
	groupBy    string
	topN       int
	reportTop  int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "salesmetrics",
		Short: "Analyze sales spreadsheets",
		Long: `salesmetrics loads sales records from Excel or CSV files with inconsistent
column names and number formats, cleans them, and reports revenue, cost,
profit, margin and per-category breakdowns.`,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	pf.StringVar(&format, "format", "text", "Output format: text, json, yaml")
	pf.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	pf.StringVar(&sheetName, "sheet", "", "Worksheet name (default: first sheet)")
	pf.StringVar(&cellRange, "range", "", "Cell range to read, e.g. A1:H500")
	pf.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&startDate, "start", "", "Only include rows on or after this date")
	pf.StringVar(&endDate, "end", "", "Only include rows on or before this date")

	rootCmd.AddCommand(
		newAnalyzeCmd(),
		newAggregateCmd(),
		newTrendCmd(),
		newInspectCmd(),
		newReportCmd(),
	)
	return rootCmd
}
