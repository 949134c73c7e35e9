// formatters.go
package analytics

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pivolan/sales_analyzer/domain/models"
	coretable "github.com/pivolan/sales_analyzer/table"
)

// GenerateGroupedTable renders grouped aggregate rows as a text table.
func GenerateGroupedTable(rows []models.GroupedRow) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Group", "TotalSales", "TotalQuantity", "AvgDiscount", "TotalProfit"})
	for _, row := range rows {
		group := row.Group
		if group == "" {
			group = "(missing)"
		}
		t.AppendRows([]table.Row{
			{group, fmt.Sprintf("%.2f", row.TotalSales), row.TotalQuantity,
				fmt.Sprintf("%.3f", row.AvgDiscount), fmt.Sprintf("%.2f", row.TotalProfit)},
		})
	}
	t.SetStyle(table.StyleDefault)
	return t.Render()
}

// GenerateKPITable renders the KPI summary as a two column text table.
func GenerateKPITable(kpi *models.KPIResult) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"KPI", "Value"})
	t.AppendRows([]table.Row{
		{"TotalSales", fmt.Sprintf("%.2f", kpi.TotalSales)},
		{"AvgProfitPct", fmt.Sprintf("%.4f", kpi.AvgProfitPct)},
		{"SaleCount", kpi.SaleCount},
		{"AvgSales", fmt.Sprintf("%.2f", kpi.AvgSales)},
	})
	t.SetStyle(table.StyleDefault)
	return t.Render()
}

// GenerateColumnSummary renders per-column type and missing-count info, used
// by the simulator CLI summary flag.
func GenerateColumnSummary(src *coretable.Table, types map[string]coretable.ColumnType) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Column", "Type", "Rows", "Missing"})
	for _, col := range src.Columns {
		t.AppendRows([]table.Row{
			{col.Name, string(types[col.Name]), len(col.Cells), col.MissingCount()},
		})
	}
	t.SetStyle(table.StyleDefault)
	return t.Render()
}
