// table.go
package table

import (
	"fmt"
	"strings"
)

// Cell is a single value of a column. Values are kept in their CSV text form
// until an operation needs a typed interpretation.
type Cell struct {
	Value   string
	Missing bool
}

// NewCell builds a cell from raw CSV text, detecting the usual NA tokens.
func NewCell(raw string) Cell {
	if isMissingToken(raw) {
		return Cell{Missing: true}
	}
	return Cell{Value: raw}
}

// MissingCell returns an explicitly empty cell.
func MissingCell() Cell {
	return Cell{Missing: true}
}

func isMissingToken(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "na", "n/a", "nan", "null":
		return true
	}
	return false
}

type Column struct {
	Name  string
	Cells []Cell
}

// Observed returns the non-missing values of the column in row order.
func (c *Column) Observed() []string {
	values := make([]string, 0, len(c.Cells))
	for _, cell := range c.Cells {
		if !cell.Missing {
			values = append(values, cell.Value)
		}
	}
	return values
}

// MissingCount returns how many cells are missing.
func (c *Column) MissingCount() int {
	n := 0
	for _, cell := range c.Cells {
		if cell.Missing {
			n++
		}
	}
	return n
}

// Table is an ordered set of equally long named columns.
type Table struct {
	Columns []*Column
}

func New(names ...string) *Table {
	t := &Table{}
	for _, name := range names {
		t.Columns = append(t.Columns, &Column{Name: name})
	}
	return t
}

// Column returns the column with the given name, or nil.
func (t *Table) Column(name string) *Column {
	for _, col := range t.Columns {
		if col.Name == name {
			return col
		}
	}
	return nil
}

func (t *Table) HasColumn(name string) bool {
	return t.Column(name) != nil
}

func (t *Table) Names() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

func (t *Table) NumColumns() int {
	return len(t.Columns)
}

func (t *Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// Clone makes a deep copy, so callers can rename or mutate without touching
// the source table.
func (t *Table) Clone() *Table {
	out := &Table{Columns: make([]*Column, len(t.Columns))}
	for i, col := range t.Columns {
		cells := make([]Cell, len(col.Cells))
		copy(cells, col.Cells)
		out.Columns[i] = &Column{Name: col.Name, Cells: cells}
	}
	return out
}

// Rename applies an old-name -> new-name mapping in place. Names not present
// in the mapping keep their original value.
func (t *Table) Rename(mapping map[string]string) {
	for _, col := range t.Columns {
		if name, ok := mapping[col.Name]; ok {
			col.Name = name
		}
	}
}

// AppendRow appends one row. Columns absent from the row get a missing cell.
func (t *Table) AppendRow(row map[string]Cell) {
	for _, col := range t.Columns {
		if cell, ok := row[col.Name]; ok {
			col.Cells = append(col.Cells, cell)
		} else {
			col.Cells = append(col.Cells, MissingCell())
		}
	}
}

// Row returns the cells of row i keyed by column name.
func (t *Table) Row(i int) map[string]Cell {
	row := make(map[string]Cell, len(t.Columns))
	for _, col := range t.Columns {
		row[col.Name] = col.Cells[i]
	}
	return row
}

// FilterRows returns a new table holding only the rows for which keep is true.
func (t *Table) FilterRows(keep func(i int) bool) *Table {
	out := New(t.Names()...)
	for i := 0; i < t.NumRows(); i++ {
		if !keep(i) {
			continue
		}
		for j, col := range t.Columns {
			out.Columns[j].Cells = append(out.Columns[j].Cells, col.Cells[i])
		}
	}
	return out
}

// Validate checks that all columns are row aligned and names are unique.
func (t *Table) Validate() error {
	seen := map[string]bool{}
	for _, col := range t.Columns {
		if seen[col.Name] {
			return fmt.Errorf("duplicate column name %q", col.Name)
		}
		seen[col.Name] = true
		if len(col.Cells) != t.NumRows() {
			return fmt.Errorf("column %q has %d rows, expected %d", col.Name, len(col.Cells), t.NumRows())
		}
	}
	return nil
}
