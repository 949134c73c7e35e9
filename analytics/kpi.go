// kpi.go
package analytics

import (
	"github.com/pivolan/sales_analyzer/domain/models"
	"github.com/pivolan/sales_analyzer/table"
)

// KPIs computes the headline indicators over the filtered table: total sales,
// mean per-row profit share, row count and mean sale value.
func KPIs(t *table.Table, f Filter) (*models.KPIResult, error) {
	filtered, err := f.apply(t)
	if err != nil {
		return nil, err
	}
	salesCol, err := require(filtered, "sales")
	if err != nil {
		return nil, err
	}
	profitCol, err := require(filtered, "profit")
	if err != nil {
		return nil, err
	}

	sales := filtered.Column(salesCol)
	profit := filtered.Column(profitCol)

	result := &models.KPIResult{SaleCount: filtered.NumRows()}
	salesSum, salesCount := 0.0, 0
	pctSum, pctCount := 0.0, 0
	for i := 0; i < filtered.NumRows(); i++ {
		s, okSales := cellFloat(sales.Cells[i])
		if okSales {
			salesSum += s
			salesCount++
		}
		p, okProfit := cellFloat(profit.Cells[i])
		if okSales && okProfit && s != 0 {
			pctSum += p / s
			pctCount++
		}
	}
	result.TotalSales = salesSum
	if salesCount > 0 {
		result.AvgSales = salesSum / float64(salesCount)
	}
	if result.TotalSales != 0 && pctCount > 0 {
		result.AvgProfitPct = pctSum / float64(pctCount)
	}
	return result, nil
}
