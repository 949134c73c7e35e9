// extend.go
package simulate

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pivolan/sales_analyzer/table"
)

// Extend appends one synthetic row per period strictly after the column's
// maximum observed date, up to and including end. Existing rows are never
// touched. The date column is coerced to the canonical date format first;
// cells that do not parse become missing.
func (s *Simulator) Extend(name string, end time.Time, freq string) error {
	col := s.Table.Column(name)
	if col == nil {
		return fmt.Errorf("column %q not found", name)
	}
	if freq == "" {
		freq = "D"
	}
	if end.IsZero() {
		end = today()
	}

	var last time.Time
	anchored := false
	for i, cell := range col.Cells {
		if cell.Missing {
			continue
		}
		ts, ok := table.ParseTime(cell.Value)
		if !ok {
			col.Cells[i] = table.MissingCell()
			continue
		}
		col.Cells[i] = table.Cell{Value: ts.Format(table.DateFormat)}
		if !anchored || ts.After(last) {
			last = ts
			anchored = true
		}
	}
	if !anchored {
		return fmt.Errorf("%w: column %q", ErrNoAnchor, name)
	}
	s.Types[name] = table.Datetime

	// Sampling pools are frozen before any row is appended, so synthetic rows
	// draw only from the original data.
	pools := s.samplePools(name)

	for next, err := addPeriod(last, freq); ; next, err = addPeriod(next, freq) {
		if err != nil {
			return err
		}
		if next.After(end) {
			break
		}
		row := map[string]table.Cell{
			name: {Value: next.Format(table.DateFormat)},
		}
		for colName, pool := range pools {
			row[colName] = pool.sample(s.rng)
		}
		s.Table.AppendRow(row)
	}
	return nil
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func addPeriod(ts time.Time, freq string) (time.Time, error) {
	switch freq {
	case "D":
		return ts.AddDate(0, 0, 1), nil
	case "W":
		return ts.AddDate(0, 0, 7), nil
	case "M":
		return ts.AddDate(0, 1, 0), nil
	}
	return time.Time{}, fmt.Errorf("unsupported frequency %q", freq)
}

// samplePool draws synthetic cell values for one column. Numeric and datetime
// columns sample observed values uniformly; categorical, boolean and text
// columns sample the empirical frequency distribution.
type samplePool struct {
	values  []string
	weights []int
	total   int
}

func (p *samplePool) sample(rng *rand.Rand) table.Cell {
	if p.total == 0 {
		return table.MissingCell()
	}
	r := rng.Intn(p.total)
	for i, w := range p.weights {
		r -= w
		if r < 0 {
			return table.Cell{Value: p.values[i]}
		}
	}
	return table.Cell{Value: p.values[len(p.values)-1]}
}

func (s *Simulator) samplePools(dateCol string) map[string]*samplePool {
	pools := map[string]*samplePool{}
	for _, col := range s.Table.Columns {
		if col.Name == dateCol {
			continue
		}
		observed := col.Observed()
		pool := &samplePool{}
		switch s.Types[col.Name] {
		case table.Numeric, table.Datetime:
			// one entry per observed row, uniform draw
			for _, v := range observed {
				pool.values = append(pool.values, v)
				pool.weights = append(pool.weights, 1)
				pool.total++
			}
		default:
			counts := map[string]int{}
			order := []string{}
			for _, v := range observed {
				if counts[v] == 0 {
					order = append(order, v)
				}
				counts[v]++
			}
			for _, v := range order {
				pool.values = append(pool.values, v)
				pool.weights = append(pool.weights, counts[v])
				pool.total += counts[v]
			}
		}
		pools[col.Name] = pool
	}
	return pools
}
