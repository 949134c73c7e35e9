package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	tfrequire "github.com/stretchr/testify/require"

	coretable "github.com/pivolan/sales_analyzer/table"
)

func TestGenerateGroupedTable(t *testing.T) {
	rows, err := Grouped(fixture(), "Region", Filter{})
	tfrequire.NoError(t, err)

	out := GenerateGroupedTable(rows)
	assert.Contains(t, out, "30.00")
	assert.Contains(t, out, "5.00")
	assert.Contains(t, out, "A")
}

func TestGenerateGroupedTableMissingGroup(t *testing.T) {
	src := makeTable(salesHeaders, [][]string{
		{"2020-01-10", "", "Widget", "1", "2", "10", "0.1", "Alice"},
	})
	rows, err := Grouped(src, "Region", Filter{})
	tfrequire.NoError(t, err)

	assert.Contains(t, GenerateGroupedTable(rows), "(missing)")
}

func TestGenerateKPITable(t *testing.T) {
	kpis, err := KPIs(fixture(), Filter{})
	tfrequire.NoError(t, err)

	out := GenerateKPITable(kpis)
	assert.Contains(t, out, "35.00")
	assert.Contains(t, out, "0.2000")
}

func TestGenerateColumnSummary(t *testing.T) {
	src := fixture()
	out := GenerateColumnSummary(src, coretable.InferTypes(src))
	assert.Contains(t, out, "Order Date")
	assert.Contains(t, out, "numeric")
	assert.Contains(t, out, "categorical")
}
