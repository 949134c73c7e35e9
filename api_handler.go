// api_handler.go
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/pivolan/sales_analyzer/analytics"
	"github.com/pivolan/sales_analyzer/config"
	"github.com/pivolan/sales_analyzer/domain/models"
	"github.com/pivolan/sales_analyzer/model"
	"github.com/pivolan/sales_analyzer/plot"
	"github.com/pivolan/sales_analyzer/schema"
	"github.com/pivolan/sales_analyzer/table"
)

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// writeError maps the engine error kinds onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, analytics.ErrBadPeriod):
		status = http.StatusBadRequest
	case errors.Is(err, analytics.ErrMissingColumn):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errNoDataset):
		status = http.StatusBadRequest
	}
	http.Error(w, err.Error(), status)
}

func requestFilter(r *http.Request) analytics.Filter {
	return analytics.Filter{
		Month:   r.URL.Query().Get("month"),
		Vendor:  r.URL.Query().Get("vendor"),
		Product: r.URL.Query().Get("product"),
	}
}

func handleKPIs(w http.ResponseWriter, r *http.Request) {
	t, err := current.snapshot()
	if err != nil {
		writeError(w, err)
		return
	}
	kpis, err := analytics.KPIs(t, requestFilter(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, kpis)
}

func handleGrouped(w http.ResponseWriter, r *http.Request) {
	t, err := current.snapshot()
	if err != nil {
		writeError(w, err)
		return
	}
	field := r.URL.Query().Get("field")
	if field == "" {
		http.Error(w, "field parameter is required", http.StatusBadRequest)
		return
	}
	rows, err := analytics.Grouped(t, field, requestFilter(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]interface{}{"data": rows})
}

func trendFromRequest(r *http.Request) (*analyticsTrend, error) {
	t, err := current.snapshot()
	if err != nil {
		return nil, err
	}
	year := 2020
	if raw := r.URL.Query().Get("year"); raw != "" {
		year, err = strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: year %q", analytics.ErrBadPeriod, raw)
		}
	}
	month := r.URL.Query().Get("month")
	vendor := r.URL.Query().Get("vendor")
	trend, err := analytics.Trend(t, year, month, vendor)
	if err != nil {
		return nil, err
	}
	title := fmt.Sprintf("Sales trend %d", year)
	if month != "" {
		title = "Sales trend " + month
	}
	return &analyticsTrend{result: trend, title: title}, nil
}

type analyticsTrend struct {
	result *models.TrendResult
	title  string
}

func handleSalesTrend(w http.ResponseWriter, r *http.Request) {
	trend, err := trendFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, trend.result)
}

func handleSalesTrendPNG(w http.ResponseWriter, r *http.Request) {
	trend, err := trendFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}
	png, err := plot.TrendPNG(trend.result, trend.title)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func handleTrendChart(w http.ResponseWriter, r *http.Request) {
	trend, err := trendFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := plot.TrendHTML(w, trend.result, trend.title); err != nil {
		writeError(w, err)
	}
}

func handlePredictCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Error uploading file", http.StatusBadRequest)
		return
	}
	defer file.Close()
	t, err := table.Read(file)
	if err != nil {
		http.Error(w, "Error reading CSV: "+err.Error(), http.StatusBadRequest)
		return
	}
	predictTable(w, t)
}

func handlePredictJSON(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var rows []map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
		http.Error(w, "Invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return
	}
	predictTable(w, tableFromRows(rows))
}

// tableFromRows builds a table from JSON records, columns in sorted key
// order so output is deterministic.
func tableFromRows(rows []map[string]interface{}) *table.Table {
	names := map[string]bool{}
	for _, row := range rows {
		for key := range row {
			names[key] = true
		}
	}
	ordered := make([]string, 0, len(names))
	for name := range names {
		ordered = append(ordered, name)
	}
	sort.Strings(ordered)

	t := table.New(ordered...)
	for _, row := range rows {
		cells := map[string]table.Cell{}
		for key, value := range row {
			if value == nil {
				continue
			}
			cells[key] = table.NewCell(fmt.Sprintf("%v", value))
		}
		t.AppendRow(cells)
	}
	return t
}

func predictTable(w http.ResponseWriter, t *table.Table) {
	artifact, err := model.Load(config.GetConfig().ModelPath)
	if err != nil {
		writeError(w, err)
		return
	}
	normalized := schema.Normalize(t, schema.DefaultThreshold)
	writeJSON(w, map[string]interface{}{
		"predictions": artifact.PredictTable(normalized),
	})
}

func handleMetrics(w http.ResponseWriter, r *http.Request) {
	t, err := current.snapshot()
	if err != nil {
		writeError(w, err)
		return
	}
	artifact, err := model.Load(config.GetConfig().ModelPath)
	if err != nil {
		writeError(w, err)
		return
	}
	metrics, err := artifact.Evaluate(t)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]interface{}{"metrics": metrics})
}
