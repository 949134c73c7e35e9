package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pivolan/sales_analyzer/table"
)

func TestTokenSortRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"date", "date", 100},
		{"date", "DATE", 100},
		{"date", " Date ", 100},
		{"customer_name", "Name Customer", 100},
		{"region", "Región", 100},
		{"product", "producto", 87},
	}
	for _, tt := range tests {
		if got := TokenSortRatio(tt.a, tt.b); got != tt.want {
			t.Errorf("TokenSortRatio(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestTokenSortRatioRejectsUnrelated(t *testing.T) {
	assert.Less(t, TokenSortRatio("date", "fecha"), DefaultThreshold)
	assert.Less(t, TokenSortRatio("sales", "region"), DefaultThreshold)
}

func TestNormalizeFuzzyVariants(t *testing.T) {
	src := table.New("DATE", " Región ", "producto", "Postal Code")
	got := Normalize(src, DefaultThreshold)

	assert.Equal(t, []string{"date", "region", "product", "Postal Code"}, got.Names())
	// source table keeps its original names
	assert.Equal(t, []string{"DATE", " Región ", "producto", "Postal Code"}, src.Names())
}

func TestNormalizeSynonyms(t *testing.T) {
	src := table.New("Fecha", "Ventas", "Cliente", "Cantidad")
	got := Normalize(src, DefaultThreshold)

	assert.Equal(t, []string{"date", "sales", "customer_name", "quantity"}, got.Names())
}

func TestNormalizeConsumesEachColumnOnce(t *testing.T) {
	// "date" wins the date role exactly, "Day" must not be renamed as well
	src := table.New("date", "Day")
	got := Normalize(src, DefaultThreshold)

	assert.Equal(t, []string{"date", "Day"}, got.Names())
}

func TestNormalizeToCustomRoles(t *testing.T) {
	src := table.New("Income", "Zona")
	got := NormalizeTo(src, []string{"sales", "region"}, DefaultThreshold)

	assert.Equal(t, []string{"sales", "region"}, got.Names())
}

func TestResolveTarget(t *testing.T) {
	both := table.New("ventas", "Sales")
	name, ok := ResolveTarget(both)
	assert.True(t, ok)
	assert.Equal(t, "Sales", name)

	spanish := table.New("id", "Ventas")
	name, ok = ResolveTarget(spanish)
	assert.True(t, ok)
	assert.Equal(t, "Ventas", name)

	_, ok = ResolveTarget(table.New("id", "price"))
	assert.False(t, ok)
}
