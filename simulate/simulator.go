// simulator.go
package simulate

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"time"

	"github.com/pivolan/go_utils"
	"gonum.org/v1/gonum/stat"

	"github.com/pivolan/sales_analyzer/table"
)

var (
	// ErrBadStrategy marks an imputation strategy outside the valid set for
	// the column's type.
	ErrBadStrategy = errors.New("unsupported strategy")
	// ErrNoAnchor marks a temporal extension with no observed date to extend
	// from.
	ErrNoAnchor = errors.New("no observed date to extend from")
	// ErrEmptyRange marks random_uniform on a column with no observed values.
	ErrEmptyRange = errors.New("empty numeric range")
)

// strategyOptions lists the valid strategies per inferred type, in the order
// weighted-random selection considers them.
var strategyOptions = map[table.ColumnType][]string{
	table.Numeric:     {"mean", "median", "mode", "constant", "iterative", "knn", "random_uniform"},
	table.Categorical: {"mode", "constant"},
	table.Boolean:     {"mode", "constant"},
	table.Text:        {"mode", "constant"},
	table.Datetime:    {"ffill", "bfill", "interpolate", "generate_range"},
}

// defaultStrategy is used when the caller passes neither a strategy nor a
// weight map. Datetime columns have no default and are left untouched.
var defaultStrategy = map[table.ColumnType]string{
	table.Numeric:     "median",
	table.Categorical: "mode",
	table.Boolean:     "mode",
	table.Text:        "mode",
}

// Options controls a single FillMissing pass.
type Options struct {
	// Strategy forces one strategy; it must be valid for the column type.
	Strategy string
	// RandomWeights, when set, takes precedence over Strategy: one of the
	// type-valid options is drawn with the given weights (unlisted options
	// weigh 1).
	RandomWeights map[string]float64
	// FillValue is used by the constant strategy. Defaults: "0" for numeric,
	// "missing" otherwise.
	FillValue string
	// EndDate bounds generate_range; zero means today.
	EndDate time.Time
	// Freq is the generate_range period: "D", "W" or "M". Defaults to "D".
	Freq string
	// Neighbors is the knn window size, default 5.
	Neighbors int
}

// Simulator owns one working table, its inferred column types and the
// strategy log for the pass. It is not safe for concurrent use; each
// invocation owns the table for its duration.
type Simulator struct {
	Table *table.Table
	Types map[string]table.ColumnType

	rng  *rand.Rand
	logs []string
}

func New(t *table.Table) *Simulator {
	return NewWithRand(t, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand injects the random source so weighted selection and sampling
// are reproducible in tests.
func NewWithRand(t *table.Table, rng *rand.Rand) *Simulator {
	return &Simulator{
		Table: t,
		Types: table.InferTypes(t),
		rng:   rng,
	}
}

// SetType overrides the inferred type of one column, used when a caller
// declares a date column up front.
func (s *Simulator) SetType(col string, typ table.ColumnType) {
	s.Types[col] = typ
}

// Log returns the strategy decisions recorded so far.
func (s *Simulator) Log() []string {
	return s.logs
}

// FillMissing fills every missing value of one column in place and records
// the applied strategy. generate_range on a datetime column extends the table
// instead of filling.
func (s *Simulator) FillMissing(name string, opts Options) error {
	col := s.Table.Column(name)
	if col == nil {
		return fmt.Errorf("column %q not found", name)
	}
	colType, ok := s.Types[name]
	if !ok {
		colType = table.InferType(col)
		s.Types[name] = colType
	}
	options := strategyOptions[colType]

	strategy := opts.Strategy
	switch {
	case opts.RandomWeights != nil:
		strategy = s.weightedChoice(options, opts.RandomWeights)
	case strategy == "":
		strategy = defaultStrategy[colType]
	}
	if strategy != "" && !go_utils.InArray(strategy, options) {
		return fmt.Errorf("%w %q for type %s", ErrBadStrategy, strategy, colType)
	}
	s.logs = append(s.logs, fmt.Sprintf("%s (%s) -> %s", name, colType, strategy))
	if strategy == "" {
		return nil
	}

	if colType == table.Datetime && strategy == "generate_range" {
		return s.Extend(name, opts.EndDate, opts.Freq)
	}

	switch colType {
	case table.Numeric:
		return s.fillNumeric(col, strategy, opts)
	case table.Categorical, table.Boolean, table.Text:
		return s.fillCategorical(col, strategy, opts)
	case table.Datetime:
		return s.fillDatetime(col, strategy)
	}
	return fmt.Errorf("%w %q for type %s", ErrBadStrategy, strategy, colType)
}

// AutoImputeAll runs FillMissing over every column in table order. Columns in
// skip are left alone.
func (s *Simulator) AutoImputeAll(skip []string, weights map[string]float64) error {
	for _, name := range s.Table.Names() {
		if go_utils.InArray(name, skip) {
			continue
		}
		if err := s.FillMissing(name, Options{RandomWeights: weights}); err != nil {
			return err
		}
	}
	return nil
}

func (s *Simulator) weightedChoice(options []string, weights map[string]float64) string {
	if len(options) == 0 {
		return ""
	}
	total := 0.0
	for _, opt := range options {
		total += weightOf(weights, opt)
	}
	r := s.rng.Float64() * total
	for _, opt := range options {
		r -= weightOf(weights, opt)
		if r < 0 {
			return opt
		}
	}
	return options[len(options)-1]
}

func weightOf(weights map[string]float64, option string) float64 {
	if w, ok := weights[option]; ok {
		return w
	}
	return 1
}

func (s *Simulator) fillNumeric(col *table.Column, strategy string, opts Options) error {
	observed := []float64{}
	observedIdx := []float64{}
	for i, cell := range col.Cells {
		if cell.Missing {
			continue
		}
		if v, ok := table.ParseFloat(cell.Value); ok {
			observed = append(observed, v)
			observedIdx = append(observedIdx, float64(i))
		}
	}

	var fillAt func(i int) float64
	switch strategy {
	case "mean":
		v := mean(observed)
		fillAt = func(int) float64 { return v }
	case "median":
		v := median(observed)
		fillAt = func(int) float64 { return v }
	case "mode":
		m, ok := mode(col.Observed())
		if !ok {
			return nil
		}
		v, _ := table.ParseFloat(m)
		fillAt = func(int) float64 { return v }
	case "constant":
		raw := opts.FillValue
		if raw == "" {
			raw = "0"
		}
		v, ok := table.ParseFloat(raw)
		if !ok {
			return fmt.Errorf("constant fill value %q is not numeric", raw)
		}
		fillAt = func(int) float64 { return v }
	case "iterative":
		// The single column is the only feature, so the multivariate fill
		// degenerates to a regression on row position. Known limitation,
		// kept on purpose.
		if len(observed) == 0 {
			return nil
		}
		alpha, beta := stat.LinearRegression(observedIdx, observed, nil, false)
		fillAt = func(i int) float64 { return alpha + beta*float64(i) }
	case "knn":
		k := opts.Neighbors
		if k <= 0 {
			k = 5
		}
		fillAt = func(i int) float64 { return knnFill(observedIdx, observed, i, k) }
	case "random_uniform":
		if len(observed) == 0 {
			return fmt.Errorf("%w: column %q has no observed values", ErrEmptyRange, col.Name)
		}
		lo, hi := observed[0], observed[0]
		for _, v := range observed {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		fillAt = func(int) float64 { return lo + s.rng.Float64()*(hi-lo) }
	default:
		return fmt.Errorf("%w %q for type %s", ErrBadStrategy, strategy, table.Numeric)
	}

	for i, cell := range col.Cells {
		if !cell.Missing {
			continue
		}
		col.Cells[i] = table.Cell{Value: strconv.FormatFloat(fillAt(i), 'g', -1, 64)}
	}
	return nil
}

// knnFill averages the k observed values closest to row i.
func knnFill(observedIdx, observed []float64, i, k int) float64 {
	if len(observed) == 0 {
		return 0
	}
	type neighbor struct {
		dist  float64
		value float64
	}
	neighbors := make([]neighbor, len(observed))
	for j := range observed {
		d := observedIdx[j] - float64(i)
		if d < 0 {
			d = -d
		}
		neighbors[j] = neighbor{dist: d, value: observed[j]}
	}
	sort.SliceStable(neighbors, func(a, b int) bool { return neighbors[a].dist < neighbors[b].dist })
	if k > len(neighbors) {
		k = len(neighbors)
	}
	sum := 0.0
	for _, n := range neighbors[:k] {
		sum += n.value
	}
	return sum / float64(k)
}

func (s *Simulator) fillCategorical(col *table.Column, strategy string, opts Options) error {
	var fill string
	switch strategy {
	case "mode":
		m, ok := mode(col.Observed())
		if !ok {
			return nil
		}
		fill = m
	case "constant":
		fill = opts.FillValue
		if fill == "" {
			fill = "missing"
		}
	default:
		return fmt.Errorf("%w %q for type %s", ErrBadStrategy, strategy, s.Types[col.Name])
	}
	for i, cell := range col.Cells {
		if cell.Missing {
			col.Cells[i] = table.Cell{Value: fill}
		}
	}
	return nil
}

func (s *Simulator) fillDatetime(col *table.Column, strategy string) error {
	switch strategy {
	case "ffill":
		last := table.MissingCell()
		for i, cell := range col.Cells {
			if cell.Missing {
				col.Cells[i] = last
			} else {
				last = cell
			}
		}
	case "bfill":
		next := table.MissingCell()
		for i := len(col.Cells) - 1; i >= 0; i-- {
			if col.Cells[i].Missing {
				col.Cells[i] = next
			} else {
				next = col.Cells[i]
			}
		}
	case "interpolate":
		interpolateDates(col)
	default:
		return fmt.Errorf("%w %q for type %s", ErrBadStrategy, strategy, table.Datetime)
	}
	return nil
}

// interpolateDates fills gaps linearly in time between the nearest observed
// neighbors. Leading and trailing gaps stay missing.
func interpolateDates(col *table.Column) {
	type point struct {
		idx int
		ts  time.Time
	}
	points := []point{}
	for i, cell := range col.Cells {
		if cell.Missing {
			continue
		}
		if ts, ok := table.ParseTime(cell.Value); ok {
			points = append(points, point{idx: i, ts: ts})
		}
	}
	if len(points) < 2 {
		return
	}
	for p := 0; p < len(points)-1; p++ {
		left, right := points[p], points[p+1]
		span := right.idx - left.idx
		if span < 2 {
			continue
		}
		delta := right.ts.Sub(left.ts)
		for i := left.idx + 1; i < right.idx; i++ {
			frac := float64(i-left.idx) / float64(span)
			ts := left.ts.Add(time.Duration(float64(delta) * frac))
			col.Cells[i] = table.Cell{Value: formatTime(ts)}
		}
	}
}

func formatTime(ts time.Time) string {
	if ts.Hour() == 0 && ts.Minute() == 0 && ts.Second() == 0 {
		return ts.Format(table.DateFormat)
	}
	return ts.Format("2006-01-02 15:04:05")
}
