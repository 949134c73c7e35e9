// grouped.go
package analytics

import (
	"fmt"
	"sort"

	"github.com/pivolan/sales_analyzer/domain/models"
	"github.com/pivolan/sales_analyzer/table"
)

// Grouped aggregates the filtered table by one field: sum of sales, sum of
// quantity, mean of discount and sum of profit per distinct group value.
// Missing group values form their own group. Rows come back sorted by total
// sales descending, ties keeping first-seen group order.
func Grouped(t *table.Table, field string, f Filter) ([]models.GroupedRow, error) {
	filtered, err := f.apply(t)
	if err != nil {
		return nil, err
	}
	if !filtered.HasColumn(field) {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, field)
	}

	salesCol, err := require(filtered, "sales")
	if err != nil {
		return nil, err
	}
	quantityCol, err := require(filtered, "quantity")
	if err != nil {
		return nil, err
	}
	discountCol, err := require(filtered, "discount")
	if err != nil {
		return nil, err
	}
	profitCol, err := require(filtered, "profit")
	if err != nil {
		return nil, err
	}

	type accumulator struct {
		row           models.GroupedRow
		discountSum   float64
		discountCount int
		quantitySum   float64
	}
	groups := map[string]*accumulator{}
	order := []string{}

	groupCol := filtered.Column(field)
	sales := filtered.Column(salesCol)
	quantity := filtered.Column(quantityCol)
	discount := filtered.Column(discountCol)
	profit := filtered.Column(profitCol)

	for i := 0; i < filtered.NumRows(); i++ {
		key := ""
		if !groupCol.Cells[i].Missing {
			key = groupCol.Cells[i].Value
		}
		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{row: models.GroupedRow{Group: key}}
			groups[key] = acc
			order = append(order, key)
		}
		if v, ok := cellFloat(sales.Cells[i]); ok {
			acc.row.TotalSales += v
		}
		if v, ok := cellFloat(quantity.Cells[i]); ok {
			acc.quantitySum += v
		}
		if v, ok := cellFloat(discount.Cells[i]); ok {
			acc.discountSum += v
			acc.discountCount++
		}
		if v, ok := cellFloat(profit.Cells[i]); ok {
			acc.row.TotalProfit += v
		}
	}

	rows := make([]models.GroupedRow, 0, len(order))
	for _, key := range order {
		acc := groups[key]
		acc.row.TotalQuantity = int(acc.quantitySum)
		if acc.discountCount > 0 {
			acc.row.AvgDiscount = acc.discountSum / float64(acc.discountCount)
		}
		rows = append(rows, acc.row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalSales > rows[j].TotalSales
	})
	return rows, nil
}

func cellFloat(cell table.Cell) (float64, bool) {
	if cell.Missing {
		return 0, false
	}
	return table.ParseFloat(cell.Value)
}
