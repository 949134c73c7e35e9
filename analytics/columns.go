// columns.go
package analytics

import (
	"errors"
	"fmt"

	"github.com/pivolan/sales_analyzer/table"
)

var (
	// ErrMissingColumn marks a dimension or metric column absent from the
	// table.
	ErrMissingColumn = errors.New("missing required column")
	// ErrBadPeriod marks a time filter that does not parse as YYYY-MM.
	ErrBadPeriod = errors.New("invalid period format")
)

// columnAliases maps each semantic role onto the accepted column names, in
// priority order. Lookups resolve once per table instead of scattering
// multi-name conditionals through every operation.
var columnAliases = map[string][]string{
	"date":     {"Order Date", "order_date", "order date", "date", "Date", "Fecha", "fecha"},
	"sales":    {"Sales", "sales", "Ventas", "ventas", "total_sales", "revenue", "Revenue"},
	"quantity": {"Quantity", "quantity", "Cantidad", "cantidad", "qty", "units"},
	"discount": {"Discount", "discount", "Descuento", "descuento"},
	"profit":   {"Profit", "profit", "Beneficio", "beneficio", "Ganancia", "ganancia"},
	"vendor":   {"Customer Name", "customer_name", "customer name", "Customer", "customer", "Cliente", "cliente"},
	"product":  {"Product Name", "product_name", "product name", "Product", "product", "Producto", "producto"},
}

// Resolve returns the first alias of the role present in the table.
func Resolve(t *table.Table, role string) (string, bool) {
	for _, alias := range columnAliases[role] {
		if t.HasColumn(alias) {
			return alias, true
		}
	}
	return "", false
}

func require(t *table.Table, role string) (string, error) {
	name, ok := Resolve(t, role)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingColumn, role)
	}
	return name, nil
}
