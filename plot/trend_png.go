// trend_png.go
package plot

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/pivolan/sales_analyzer/domain/models"
)

// TrendPNG renders one line per vendor over the trend labels as a PNG image.
func TrendPNG(trend *models.TrendResult, title string) ([]byte, error) {
	if len(trend.Labels) == 0 {
		return nil, fmt.Errorf("trend has no labels")
	}

	xValues := make([]float64, len(trend.Labels))
	ticks := make([]chart.Tick, len(trend.Labels))
	for i, label := range trend.Labels {
		xValues[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: label}
	}

	series := make([]chart.Series, 0, len(trend.Datasets))
	for _, ds := range trend.Datasets {
		series = append(series, chart.ContinuousSeries{
			Name:    ds.Vendor,
			XValues: xValues,
			YValues: ds.Values,
		})
	}
	var yRange chart.Range
	if len(series) == 0 {
		// keep the axes visible even with no data; a fixed range avoids the
		// zero-delta render error on the flat placeholder line
		series = append(series, chart.ContinuousSeries{
			XValues: xValues,
			YValues: make([]float64, len(xValues)),
		})
		yRange = &chart.ContinuousRange{Min: 0, Max: 1}
	}

	graph := chart.Chart{
		Title:  title,
		Width:  1600,
		Height: 800,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 80},
		},
		XAxis: chart.XAxis{
			Ticks: ticks,
			Style: chart.Style{TextRotationDegrees: 45},
		},
		YAxis: chart.YAxis{
			Name:  "Sales",
			Range: yRange,
			ValueFormatter: func(v interface{}) string {
				if vf, isFloat := v.(float64); isFloat {
					return fmt.Sprintf("%.0f", vf)
				}
				return ""
			},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	buffer := bytes.NewBuffer(nil)
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("error rendering chart: %v", err)
	}
	return buffer.Bytes(), nil
}
