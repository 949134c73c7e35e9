// infer.go
package table

import (
	"strconv"
	"strings"
	"time"
)

type ColumnType string

const (
	Numeric     ColumnType = "numeric"
	Boolean     ColumnType = "boolean"
	Categorical ColumnType = "categorical"
	Text        ColumnType = "text"
	Datetime    ColumnType = "datetime"
)

// DateFormat is the canonical text form for datetime cells written back into
// a table.
const DateFormat = "2006-01-02"

// timeFormats is the parse cascade, most specific first.
var timeFormats = []string{
	"2006-01-02 15:04:05.999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"02.01.2006",
}

// ParseTime tries each known layout in order.
func ParseTime(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timeFormats {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// ParseFloat reports whether raw is a plain number.
func ParseFloat(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	return v, err == nil
}

func isBoolToken(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "0", "1", "true", "false":
		return true
	}
	return false
}

// InferType classifies a column into exactly one type. The checks run in
// priority order: boolean, numeric, datetime, then categorical vs text by
// cardinality. The result depends only on the column's current cells, so it
// must be recomputed after any coercion.
func InferType(col *Column) ColumnType {
	observed := col.Observed()

	allBool := true
	for _, v := range observed {
		if !isBoolToken(v) {
			allBool = false
			break
		}
	}
	if allBool {
		return Boolean
	}

	allNumeric := true
	for _, v := range observed {
		if _, ok := ParseFloat(v); !ok {
			allNumeric = false
			break
		}
	}
	if allNumeric {
		return Numeric
	}

	allDates := true
	for _, v := range observed {
		if _, ok := ParseTime(v); !ok {
			allDates = false
			break
		}
	}
	if allDates {
		return Datetime
	}

	distinct := map[string]bool{}
	for _, v := range observed {
		distinct[v] = true
	}
	total := len(col.Cells)
	if total > 0 && (float64(len(distinct))/float64(total) < 0.05 || len(distinct) < 50) {
		return Categorical
	}
	return Text
}

// InferTypes classifies every column of the table.
func InferTypes(t *Table) map[string]ColumnType {
	types := make(map[string]ColumnType, len(t.Columns))
	for _, col := range t.Columns {
		types[col.Name] = InferType(col)
	}
	return types
}
