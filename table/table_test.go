package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCell(t *testing.T) {
	tests := []struct {
		raw     string
		missing bool
	}{
		{"hello", false},
		{"0", false},
		{"", true},
		{"  ", true},
		{"NA", true},
		{"n/a", true},
		{"NaN", true},
		{"null", true},
		{"navy", false},
	}
	for _, tt := range tests {
		cell := NewCell(tt.raw)
		if cell.Missing != tt.missing {
			t.Errorf("NewCell(%q).Missing = %v, want %v", tt.raw, cell.Missing, tt.missing)
		}
	}
}

func TestColumnObserved(t *testing.T) {
	col := colOf("x", "a", "", "b", "na")
	assert.Equal(t, []string{"a", "b"}, col.Observed())
	assert.Equal(t, 2, col.MissingCount())
}

func TestTableAppendRow(t *testing.T) {
	tbl := New("a", "b")
	tbl.AppendRow(map[string]Cell{"a": NewCell("1"), "b": NewCell("2")})
	tbl.AppendRow(map[string]Cell{"a": NewCell("3")})

	require.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, "3", tbl.Column("a").Cells[1].Value)
	assert.True(t, tbl.Column("b").Cells[1].Missing)
}

func TestTableClone(t *testing.T) {
	tbl := New("a")
	tbl.AppendRow(map[string]Cell{"a": NewCell("1")})

	clone := tbl.Clone()
	clone.Columns[0].Name = "renamed"
	clone.Columns[0].Cells[0] = NewCell("changed")

	assert.Equal(t, "a", tbl.Columns[0].Name)
	assert.Equal(t, "1", tbl.Columns[0].Cells[0].Value)
}

func TestTableRename(t *testing.T) {
	tbl := New("Fecha", "Ventas", "Extra")
	tbl.Rename(map[string]string{"Fecha": "date", "Ventas": "sales"})
	assert.Equal(t, []string{"date", "sales", "Extra"}, tbl.Names())
}

func TestTableFilterRows(t *testing.T) {
	tbl := New("n")
	for _, v := range []string{"1", "2", "3", "4"} {
		tbl.AppendRow(map[string]Cell{"n": NewCell(v)})
	}
	even := tbl.FilterRows(func(i int) bool { return i%2 == 0 })
	require.Equal(t, 2, even.NumRows())
	assert.Equal(t, "1", even.Column("n").Cells[0].Value)
	assert.Equal(t, "3", even.Column("n").Cells[1].Value)
	assert.Equal(t, 4, tbl.NumRows())
}

func TestTableValidate(t *testing.T) {
	ok := New("a", "b")
	ok.AppendRow(map[string]Cell{"a": NewCell("1"), "b": NewCell("2")})
	assert.NoError(t, ok.Validate())

	dup := &Table{Columns: []*Column{{Name: "a"}, {Name: "a"}}}
	assert.Error(t, dup.Validate())

	ragged := &Table{Columns: []*Column{
		colOf("a", "1", "2"),
		colOf("b", "1"),
	}}
	assert.Error(t, ragged.Validate())
}
