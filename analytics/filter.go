// filter.go
package analytics

import (
	"fmt"
	"time"

	"github.com/pivolan/sales_analyzer/table"
)

// AllSentinel is the vendor/product value meaning "no filter".
const AllSentinel = "Todos"

// Filter restricts a table before aggregation. Filters apply in fixed order:
// month, then vendor, then product; each is an exact-match predicate.
type Filter struct {
	Month   string // YYYY-MM, empty means no time filter
	Vendor  string
	Product string
}

func (f Filter) apply(t *table.Table) (*table.Table, error) {
	out := t
	if f.Month != "" {
		period, err := time.Parse("2006-01", f.Month)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadPeriod, f.Month)
		}
		dateCol, err := require(out, "date")
		if err != nil {
			return nil, err
		}
		col := out.Column(dateCol)
		out = out.FilterRows(func(i int) bool {
			cell := col.Cells[i]
			if cell.Missing {
				return false
			}
			ts, ok := table.ParseTime(cell.Value)
			return ok && ts.Year() == period.Year() && ts.Month() == period.Month()
		})
	}
	if active(f.Vendor) {
		var err error
		out, err = filterExact(out, "vendor", f.Vendor)
		if err != nil {
			return nil, err
		}
	}
	if active(f.Product) {
		var err error
		out, err = filterExact(out, "product", f.Product)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func active(value string) bool {
	return value != "" && value != AllSentinel
}

func filterExact(t *table.Table, role, value string) (*table.Table, error) {
	name, err := require(t, role)
	if err != nil {
		return nil, err
	}
	col := t.Column(name)
	return t.FilterRows(func(i int) bool {
		cell := col.Cells[i]
		return !cell.Missing && cell.Value == value
	}), nil
}
