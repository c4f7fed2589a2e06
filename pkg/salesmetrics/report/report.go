// Package report writes analysis results to an xlsx workbook with native charts.
package report

import (
	"fmt"

	"github.com/ukaji3/salesmetrics-go/pkg/salesmetrics/models"
	"github.com/xuri/excelize/v2"
)

// Sheet names used in the workbook.
const (
	SheetSummary = "Summary"
	SheetMonthly = "Monthly"
)

// CategorySheets maps grouping roles to their sheet names.
var CategorySheets = map[models.Role]string{
	models.RoleProduct:    "Products",
	models.RoleDepartment: "Departments",
	models.RoleBrand:      "Brands",
	models.RoleColor:      "Colors",
}

// Data is everything a report can contain. Nil or empty parts are skipped.
type Data struct {
	Source       string
	Metrics      *models.MetricsRecord
	Aggregations []*models.Aggregation
	Monthly      []models.MonthTotal
	// TopN limits the groups charted per category; 0 charts all.
	TopN int
}

// Write builds the workbook and saves it to path.
func Write(path string, data Data) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return err
	}
	if err := writeSummary(f, data); err != nil {
		return fmt.Errorf("summary sheet: %w", err)
	}

	for _, agg := range data.Aggregations {
		if agg == nil || len(agg.Groups) == 0 {
			continue
		}
		if err := writeAggregation(f, agg.Top(data.TopN)); err != nil {
			return fmt.Errorf("%s sheet: %w", agg.Role, err)
		}
	}

	if len(data.Monthly) > 0 {
		if err := writeMonthly(f, data.Monthly); err != nil {
			return fmt.Errorf("monthly sheet: %w", err)
		}
	}

	f.SetActiveSheet(0)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, data Data) error {
	rows := [][]interface{}{{"Metric", "Value"}}
	if data.Source != "" {
		rows = append(rows, []interface{}{"Source", data.Source})
	}
	if m := data.Metrics; m != nil {
		rows = append(rows,
			[]interface{}{"Total Revenue", m.TotalRevenue.InexactFloat64()},
			[]interface{}{"Total Cost", m.TotalCost.InexactFloat64()},
			[]interface{}{"Total Profit", m.TotalProfit.InexactFloat64()},
			[]interface{}{"Total Units Sold", m.TotalUnits.InexactFloat64()},
			[]interface{}{"Profit Margin (%)", m.ProfitMarginPct.Round(2).InexactFloat64()},
			[]interface{}{"Markup (%)", m.MarkupPct.Round(2).InexactFloat64()},
			[]interface{}{"Average Unit Price", m.AvgUnitPrice.Round(2).InexactFloat64()},
			[]interface{}{"Average Cost Price", m.AvgCostPrice.Round(2).InexactFloat64()},
			[]interface{}{"Average Profit per Unit", m.AvgProfitPerUnit.Round(2).InexactFloat64()},
			[]interface{}{"Rows", m.RowCount},
		)
	}
	return setRows(f, SheetSummary, rows)
}

func writeAggregation(f *excelize.File, agg models.Aggregation) error {
	sheet, ok := CategorySheets[agg.Role]
	if !ok {
		sheet = string(agg.Role)
	}
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{{agg.Column, "Revenue", "Units", "Cost", "Profit", "Margin (%)"}}
	for _, g := range agg.Groups {
		row := []interface{}{g.Key, g.Revenue.InexactFloat64(), g.Quantity.InexactFloat64()}
		if g.HasCost {
			row = append(row, g.Cost.InexactFloat64(), g.Profit.InexactFloat64(), g.MarginPct.Round(2).InexactFloat64())
		}
		rows = append(rows, row)
	}
	if err := setRows(f, sheet, rows); err != nil {
		return err
	}

	last := len(agg.Groups) + 1
	chartType := excelize.Col
	if agg.Role == models.RoleColor {
		chartType = excelize.Pie
	}
	return f.AddChart(sheet, "H2", &excelize.Chart{
		Type: chartType,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$B$1", sheet),
			Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", sheet, last),
			Values:     fmt.Sprintf("'%s'!$B$2:$B$%d", sheet, last),
		}},
		Title: []excelize.RichTextRun{{Text: fmt.Sprintf("Revenue by %s", agg.Role)}},
	})
}

func writeMonthly(f *excelize.File, months []models.MonthTotal) error {
	if _, err := f.NewSheet(SheetMonthly); err != nil {
		return err
	}
	rows := [][]interface{}{{"Month", "Revenue", "Cost", "Profit"}}
	for _, m := range months {
		rows = append(rows, []interface{}{
			m.Month, m.Revenue.InexactFloat64(), m.Cost.InexactFloat64(), m.Profit.InexactFloat64(),
		})
	}
	if err := setRows(f, SheetMonthly, rows); err != nil {
		return err
	}

	last := len(months) + 1
	categories := fmt.Sprintf("'%s'!$A$2:$A$%d", SheetMonthly, last)
	return f.AddChart(SheetMonthly, "F2", &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{
			{
				Name:       fmt.Sprintf("'%s'!$B$1", SheetMonthly),
				Categories: categories,
				Values:     fmt.Sprintf("'%s'!$B$2:$B$%d", SheetMonthly, last),
			},
			{
				Name:       fmt.Sprintf("'%s'!$D$1", SheetMonthly),
				Categories: categories,
				Values:     fmt.Sprintf("'%s'!$D$2:$D$%d", SheetMonthly, last),
			},
		},
		Title: []excelize.RichTextRun{{Text: "Monthly Revenue and Profit Trends"}},
	})
}

func setRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
