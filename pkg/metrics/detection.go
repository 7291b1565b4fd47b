package metrics

import (
	"context"
	"fmt"

	"github.com/toyinlola/idsrank/pkg/interfaces"
)

// DetectionCalculator produces the detection dimension value on a 0-100
// scale: (Accuracy x F1) / 100. Both factors contribute, so a model with a
// high accuracy but a collapsed F1 does not score as a strong detector.
type DetectionCalculator struct{}

// NewDetectionCalculator creates a detection performance calculator.
func NewDetectionCalculator() *DetectionCalculator {
	return &DetectionCalculator{}
}

func (c *DetectionCalculator) Name() string { return "detection" }

func (c *DetectionCalculator) Compute(ctx context.Context, models []interfaces.ModelMetrics) (*interfaces.MetricResult, error) {
	values := make(map[string]float64, len(models))
	breakdown := make(map[string]map[string]float64, len(models))

	for _, m := range models {
		if m.Accuracy < 0 || m.Accuracy > 100 {
			return nil, fmt.Errorf("model %q: accuracy must be in [0,100], got %g", m.Name, m.Accuracy)
		}
		if m.F1Score < 0 || m.F1Score > 100 {
			return nil, fmt.Errorf("model %q: f1_score must be in [0,100], got %g", m.Name, m.F1Score)
		}

		values[m.Name] = m.Accuracy * m.F1Score / 100
		breakdown[m.Name] = map[string]float64{
			"accuracy": m.Accuracy,
			"f1_score": m.F1Score,
		}
	}

	return &interfaces.MetricResult{
		CalculatorName: c.Name(),
		Dimension:      interfaces.DimensionDetection,
		Values:         values,
		Breakdown:      breakdown,
	}, nil
}
