package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	tfrequire "github.com/stretchr/testify/require"
)

func TestKPIs(t *testing.T) {
	kpis, err := KPIs(fixture(), Filter{})
	tfrequire.NoError(t, err)

	assert.Equal(t, 35.0, kpis.TotalSales)
	assert.Equal(t, 3, kpis.SaleCount)
	assert.InDelta(t, 35.0/3, kpis.AvgSales, 1e-9)
	assert.InDelta(t, 0.2, kpis.AvgProfitPct, 1e-9)
}

func TestKPIsMonthFilter(t *testing.T) {
	kpis, err := KPIs(fixture(), Filter{Month: "2020-01"})
	tfrequire.NoError(t, err)

	assert.Equal(t, 30.0, kpis.TotalSales)
	assert.Equal(t, 2, kpis.SaleCount)
	assert.Equal(t, 15.0, kpis.AvgSales)
}

func TestKPIsSkipZeroSalesInProfitShare(t *testing.T) {
	src := makeTable(salesHeaders, [][]string{
		{"2020-01-10", "A", "Widget", "1", "2", "10", "0", "Alice"},
		{"2020-01-11", "A", "Widget", "1", "9", "0", "0", "Alice"},
	})
	kpis, err := KPIs(src, Filter{})
	tfrequire.NoError(t, err)

	assert.Equal(t, 10.0, kpis.TotalSales)
	assert.InDelta(t, 0.2, kpis.AvgProfitPct, 1e-9, "zero-sale rows are excluded from the share")
}

func TestKPIsEmptyAfterFilter(t *testing.T) {
	kpis, err := KPIs(fixture(), Filter{Vendor: "Nobody"})
	tfrequire.NoError(t, err)

	assert.Equal(t, 0.0, kpis.TotalSales)
	assert.Equal(t, 0, kpis.SaleCount)
	assert.Equal(t, 0.0, kpis.AvgSales)
	assert.Equal(t, 0.0, kpis.AvgProfitPct)
}

func TestResolveAliases(t *testing.T) {
	name, ok := Resolve(fixture(), "date")
	assert.True(t, ok)
	assert.Equal(t, "Order Date", name)

	spanish := makeTable([]string{"fecha", "ventas"}, [][]string{{"2020-01-01", "5"}})
	name, ok = Resolve(spanish, "sales")
	assert.True(t, ok)
	assert.Equal(t, "ventas", name)

	_, ok = Resolve(spanish, "discount")
	assert.False(t, ok)
}
