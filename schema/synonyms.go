// synonyms.go
package schema

import "strings"

// synonymTable is a small lexical dictionary standing in for a full thesaurus.
// Keys and values are normalized names; values list the alternate names a
// word can stand for, in English and Spanish, because the sales exports mix
// both.
var synonymTable = map[string][]string{
	// date
	"day":        {"date", "time"},
	"time":       {"date", "day"},
	"fecha":      {"date"},
	"dia":        {"date", "day"},
	"order date": {"date"},
	// region
	"area":      {"region", "zone"},
	"zone":      {"region", "area"},
	"territory": {"region"},
	"zona":      {"region"},
	"state":     {"region"},
	// product
	"item":     {"product", "article"},
	"article":  {"product", "item"},
	"goods":    {"product"},
	"producto": {"product"},
	"articulo": {"product", "item"},
	// quantity
	"amount":   {"quantity", "sum", "total"},
	"count":    {"quantity", "number"},
	"units":    {"quantity"},
	"cantidad": {"quantity"},
	"unidades": {"quantity", "units"},
	// profit
	"gain":      {"profit", "earnings"},
	"earnings":  {"profit", "gain"},
	"margin":    {"profit"},
	"beneficio": {"profit"},
	"ganancia":  {"profit", "gain"},
	// sales
	"revenue": {"sales", "income"},
	"income":  {"sales", "revenue"},
	"ventas":  {"sales"},
	// discount
	"rebate":    {"discount"},
	"descuento": {"discount"},
	// customer_name
	"client":  {"customer name", "customer"},
	"buyer":   {"customer name", "customer"},
	"cliente": {"customer name", "customer"},
	"vendor":  {"customer name"},
}

// synonymsOf returns the normalized synonym set of a column name: the name
// itself, the synonyms of the whole name, and the synonyms of each token.
func synonymsOf(name string) map[string]bool {
	set := map[string]bool{}
	normalized := normalizeName(name)
	set[normalized] = true
	for _, syn := range synonymTable[normalized] {
		set[syn] = true
	}
	for _, token := range strings.Fields(normalized) {
		set[token] = true
		for _, syn := range synonymTable[token] {
			set[syn] = true
		}
	}
	return set
}
