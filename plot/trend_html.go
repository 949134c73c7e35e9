// trend_html.go
package plot

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/pivolan/sales_analyzer/domain/models"
)

// TrendHTML writes an interactive line chart page for the trend result.
func TrendHTML(w io.Writer, trend *models.TrendResult, title string) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)
	line.SetXAxis(trend.Labels)
	for _, ds := range trend.Datasets {
		points := make([]opts.LineData, len(ds.Values))
		for i, v := range ds.Values {
			points[i] = opts.LineData{Value: v}
		}
		line.AddSeries(ds.Vendor, points)
	}
	return line.Render(w)
}
