package models

import "time"

// GroupedRow is one output row of a grouped aggregate.
type GroupedRow struct {
	Group         string  `json:"group"`
	TotalSales    float64 `json:"total_sales"`
	TotalQuantity int     `json:"total_quantity"`
	AvgDiscount   float64 `json:"avg_discount"`
	TotalProfit   float64 `json:"total_profit"`
}

// TrendSeries is one vendor's values aligned to the trend labels.
type TrendSeries struct {
	Vendor string    `json:"vendor"`
	Values []float64 `json:"values"`
}

// TrendResult is a gap-filled time series: labels cover every period of the
// requested axis, datasets are zero-filled where no rows matched.
type TrendResult struct {
	Labels   []string      `json:"labels"`
	Datasets []TrendSeries `json:"datasets"`
}

// KPIResult holds the headline sales indicators.
type KPIResult struct {
	TotalSales   float64 `json:"total_sales"`
	AvgProfitPct float64 `json:"avg_profit_pct"`
	SaleCount    int     `json:"sale_count"`
	AvgSales     float64 `json:"avg_sales"`
}

// DatasetRecord is one registered upload in the dataset registry.
type DatasetRecord struct {
	ID         uint   `gorm:"primaryKey"`
	UploadID   string `gorm:"size:64;index"`
	FileName   string `gorm:"size:255"`
	Path       string `gorm:"size:512"`
	Rows       int
	Columns    int
	UploadedAt time.Time
}

// ModelMetrics is the evaluation summary of the prediction artifact.
type ModelMetrics struct {
	R2   float64 `json:"r2"`
	MAE  float64 `json:"mae"`
	RMSE float64 `json:"rmse"`
}
