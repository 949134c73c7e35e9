// trend.go
package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/pivolan/sales_analyzer/domain/models"
	"github.com/pivolan/sales_analyzer/table"
)

// Trend builds a gap-filled sales time series for one year: per-month when
// month is empty, per-day over the exact calendar days of the month (leap
// years included) otherwise. One dataset per distinct vendor, zero-filled for
// periods with no matching rows.
func Trend(t *table.Table, year int, month, vendor string) (*models.TrendResult, error) {
	dateCol, err := require(t, "date")
	if err != nil {
		return nil, err
	}
	salesCol, err := require(t, "sales")
	if err != nil {
		return nil, err
	}
	vendorCol, err := require(t, "vendor")
	if err != nil {
		return nil, err
	}

	var labels []string
	labelOf := func(ts time.Time) string { return ts.Format("2006-01") }

	if month != "" {
		period, err := time.Parse("2006-01", month)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadPeriod, month)
		}
		// day 0 of the next month is the last day of this one
		days := time.Date(period.Year(), period.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
		for day := 1; day <= days; day++ {
			labels = append(labels, fmt.Sprintf("%s-%02d", month, day))
		}
		labelOf = func(ts time.Time) string { return ts.Format("2006-01-02") }
	} else {
		for m := 1; m <= 12; m++ {
			labels = append(labels, fmt.Sprintf("%04d-%02d", year, m))
		}
	}

	labelIdx := map[string]int{}
	for i, label := range labels {
		labelIdx[label] = i
	}

	dates := t.Column(dateCol)
	sales := t.Column(salesCol)
	vendors := t.Column(vendorCol)

	sums := map[string][]float64{}
	for i := 0; i < t.NumRows(); i++ {
		if dates.Cells[i].Missing {
			continue
		}
		ts, ok := table.ParseTime(dates.Cells[i].Value)
		if !ok || ts.Year() != year {
			continue
		}
		if active(vendor) && (vendors.Cells[i].Missing || vendors.Cells[i].Value != vendor) {
			continue
		}
		idx, ok := labelIdx[labelOf(ts)]
		if !ok {
			continue
		}
		name := ""
		if !vendors.Cells[i].Missing {
			name = vendors.Cells[i].Value
		}
		if _, ok := sums[name]; !ok {
			sums[name] = make([]float64, len(labels))
		}
		if v, ok := cellFloat(sales.Cells[i]); ok {
			sums[name][idx] += v
		}
	}

	names := make([]string, 0, len(sums))
	for name := range sums {
		names = append(names, name)
	}
	sort.Strings(names)

	result := &models.TrendResult{Labels: labels}
	for _, name := range names {
		result.Datasets = append(result.Datasets, models.TrendSeries{
			Vendor: name,
			Values: sums[name],
		})
	}
	return result, nil
}
