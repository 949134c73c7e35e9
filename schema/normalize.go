// normalize.go
package schema

import (
	"regexp"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/mozillazg/go-unidecode"

	"github.com/pivolan/sales_analyzer/table"
)

// StandardColumns is the canonical role vocabulary, in matching priority
// order. Each original column is consumed by at most one role.
var StandardColumns = []string{
	"date",
	"region",
	"product",
	"quantity",
	"profit",
	"sales",
	"discount",
	"customer_name",
}

// DefaultThreshold is the minimum token-sort similarity (0..100) for a fuzzy
// match to be accepted.
const DefaultThreshold = 80

// Normalize renames the table's columns onto StandardColumns. It works on a
// copy; columns that match no role are left with their original names.
func Normalize(t *table.Table, threshold int) *table.Table {
	return NormalizeTo(t, StandardColumns, threshold)
}

// NormalizeTo maps columns onto the given role list. For every role, the best
// fuzzy candidate wins if it reaches the threshold; otherwise the synonym
// dictionary is consulted. First match consumes the column.
func NormalizeTo(t *table.Table, roles []string, threshold int) *table.Table {
	out := t.Clone()
	mapping := map[string]string{}
	consumed := map[string]bool{}

	for _, role := range roles {
		best, score := "", -1
		for _, name := range out.Names() {
			if consumed[name] {
				continue
			}
			if s := TokenSortRatio(role, name); s > score {
				best, score = name, s
			}
		}
		if best != "" && score >= threshold {
			mapping[best] = role
			consumed[best] = true
			continue
		}
		for _, name := range out.Names() {
			if consumed[name] {
				continue
			}
			if synonymsOf(name)[normalizeName(role)] {
				mapping[name] = role
				consumed[name] = true
				break
			}
		}
	}

	out.Rename(mapping)
	return out
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// normalizeName transliterates and lowercases a column name, collapsing all
// separators to single spaces.
func normalizeName(name string) string {
	s := strings.ToLower(unidecode.Unidecode(name))
	s = nonAlnum.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// TokenSortRatio scores two names 0..100, insensitive to case, accents,
// separators and token order.
func TokenSortRatio(a, b string) int {
	sa := sortedTokens(a)
	sb := sortedTokens(b)
	if sa == "" && sb == "" {
		return 100
	}
	longest := len(sa)
	if len(sb) > longest {
		longest = len(sb)
	}
	if longest == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(sa, sb)
	return (longest - dist) * 100 / longest
}

func sortedTokens(name string) string {
	tokens := strings.Fields(normalizeName(name))
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// TargetAliases is the priority-ordered list of accepted names for the sales
// target column.
var TargetAliases = []string{
	"Sales", "sales", "Ventas", "ventas", "Total_Sales", "total_sales",
	"Total Ventas", "total ventas", "sale", "ventas_totales", "ventasTotal",
	"ventas total", "sales_total", "sales amount", "amount_sold",
	"revenue", "Revenue", "valor_ventas", "valor ventas", "monto_ventas",
	"monto ventas",
}

// ResolveTarget finds the sales target column by exact alias match, resolved
// once per table instead of scattered lookups.
func ResolveTarget(t *table.Table) (string, bool) {
	for _, alias := range TargetAliases {
		if t.HasColumn(alias) {
			return alias, true
		}
	}
	return "", false
}
