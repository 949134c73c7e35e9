package table

import (
	"fmt"
	"testing"
)

func colOf(name string, values ...string) *Column {
	col := &Column{Name: name}
	for _, v := range values {
		col.Cells = append(col.Cells, NewCell(v))
	}
	return col
}

func TestInferType(t *testing.T) {
	tests := []struct {
		name string
		col  *Column
		want ColumnType
	}{
		{
			name: "zeros and ones are boolean not numeric",
			col:  colOf("flag", "0", "1", "1", "0"),
			want: Boolean,
		},
		{
			name: "true false tokens",
			col:  colOf("flag", "true", "False", "TRUE"),
			want: Boolean,
		},
		{
			name: "plain numbers",
			col:  colOf("price", "12.5", "7", "-3.25"),
			want: Numeric,
		},
		{
			name: "numbers with missing cells stay numeric",
			col:  colOf("price", "12.5", "", "7"),
			want: Numeric,
		},
		{
			name: "iso dates",
			col:  colOf("day", "2020-01-01", "2020-02-29", "2021-12-31"),
			want: Datetime,
		},
		{
			name: "us dates",
			col:  colOf("day", "11/8/2016", "01/02/2017"),
			want: Datetime,
		},
		{
			name: "mixed strings with dates are not datetime",
			col:  colOf("note", "2020-01-01", "hello"),
			want: Categorical,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferType(tt.col); got != tt.want {
				t.Errorf("InferType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInferTypeCardinality(t *testing.T) {
	// 3 distinct values over 1000 rows -> categorical
	low := &Column{Name: "region"}
	for i := 0; i < 1000; i++ {
		low.Cells = append(low.Cells, NewCell([]string{"West", "East", "South"}[i%3]))
	}
	if got := InferType(low); got != Categorical {
		t.Errorf("low cardinality column = %v, want categorical", got)
	}

	// 900 distinct values over 1000 rows -> text
	high := &Column{Name: "comment"}
	for i := 0; i < 1000; i++ {
		high.Cells = append(high.Cells, NewCell(fmt.Sprintf("free text value %d", i%900)))
	}
	if got := InferType(high); got != Text {
		t.Errorf("high cardinality column = %v, want text", got)
	}
}

func TestInferTypes(t *testing.T) {
	tbl := &Table{Columns: []*Column{
		colOf("Sales", "10", "20"),
		colOf("Region", "West", "East"),
	}}
	types := InferTypes(tbl)
	if types["Sales"] != Numeric {
		t.Errorf("Sales = %v, want numeric", types["Sales"])
	}
	if types["Region"] != Categorical {
		t.Errorf("Region = %v, want categorical", types["Region"])
	}
}
