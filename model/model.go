// model.go
package model

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/stat"

	"github.com/pivolan/sales_analyzer/domain/models"
	"github.com/pivolan/sales_analyzer/schema"
	"github.com/pivolan/sales_analyzer/table"
)

// Artifact is a pre-trained regression model loaded from disk. The model
// itself is opaque here: feature names plus a linear weight vector, applied
// to one-hot encoded rows aligned to the training features.
type Artifact struct {
	Features  []string  `json:"features"`
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

// Load reads the serialized artifact.
func Load(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse model: %w", err)
	}
	if len(a.Features) != len(a.Weights) {
		return nil, fmt.Errorf("model has %d features but %d weights", len(a.Features), len(a.Weights))
	}
	return &a, nil
}

// PredictTable scores every row. The sales target column, if present, is
// dropped; categorical values are one-hot encoded as "<column>_<value>" and
// reindexed onto the trained features with zero fill.
func (a *Artifact) PredictTable(t *table.Table) []float64 {
	target, _ := schema.ResolveTarget(t)
	types := table.InferTypes(t)

	featureIdx := make(map[string]int, len(a.Features))
	for i, name := range a.Features {
		featureIdx[name] = i
	}

	preds := make([]float64, t.NumRows())
	row := make([]float64, len(a.Features))
	for i := 0; i < t.NumRows(); i++ {
		for j := range row {
			row[j] = 0
		}
		for _, col := range t.Columns {
			if col.Name == target {
				continue
			}
			cell := col.Cells[i]
			if cell.Missing {
				continue
			}
			switch types[col.Name] {
			case table.Numeric, table.Boolean:
				if idx, ok := featureIdx[col.Name]; ok {
					v, _ := table.ParseFloat(cell.Value)
					row[idx] = v
				}
			default:
				if idx, ok := featureIdx[col.Name+"_"+cell.Value]; ok {
					row[idx] = 1
				}
			}
		}
		pred := a.Intercept
		for j, w := range a.Weights {
			pred += w * row[j]
		}
		preds[i] = pred
	}
	return preds
}

// Evaluate scores the table against its own target column and reports the
// usual regression metrics.
func (a *Artifact) Evaluate(t *table.Table) (*models.ModelMetrics, error) {
	target, ok := schema.ResolveTarget(t)
	if !ok {
		return nil, fmt.Errorf("no sales target column found, expected one of %v", schema.TargetAliases)
	}
	preds := a.PredictTable(t)
	col := t.Column(target)

	actual := []float64{}
	estimated := []float64{}
	for i, cell := range col.Cells {
		if cell.Missing {
			continue
		}
		if v, ok := table.ParseFloat(cell.Value); ok {
			actual = append(actual, v)
			estimated = append(estimated, preds[i])
		}
	}
	if len(actual) == 0 {
		return nil, fmt.Errorf("target column %q has no observed values", target)
	}

	maeSum, mseSum := 0.0, 0.0
	for i := range actual {
		diff := estimated[i] - actual[i]
		maeSum += math.Abs(diff)
		mseSum += diff * diff
	}
	n := float64(len(actual))
	return &models.ModelMetrics{
		R2:   stat.RSquaredFrom(estimated, actual, nil),
		MAE:  maeSum / n,
		RMSE: math.Sqrt(mseSum / n),
	}, nil
}
