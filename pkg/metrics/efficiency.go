package metrics

import (
	"context"
	"fmt"

	"github.com/toyinlola/idsrank/pkg/interfaces"
)

// EfficiencyCalculator produces the computational efficiency dimension:
// E = (1 / training time) x (1 / inference time). Like deployment, the raw
// value only carries meaning relative to the comparison set.
type EfficiencyCalculator struct{}

// NewEfficiencyCalculator creates a computational efficiency calculator.
func NewEfficiencyCalculator() *EfficiencyCalculator {
	return &EfficiencyCalculator{}
}

func (c *EfficiencyCalculator) Name() string { return "efficiency" }

func (c *EfficiencyCalculator) Compute(ctx context.Context, models []interfaces.ModelMetrics) (*interfaces.MetricResult, error) {
	values := make(map[string]float64, len(models))
	breakdown := make(map[string]map[string]float64, len(models))

	for _, m := range models {
		if m.TrainingTimeSec <= 0 {
			return nil, fmt.Errorf("model %q: training_time_s must be positive, got %g", m.Name, m.TrainingTimeSec)
		}
		if m.InferenceTimeSec <= 0 {
			return nil, fmt.Errorf("model %q: inference_time_s must be positive, got %g", m.Name, m.InferenceTimeSec)
		}

		values[m.Name] = (1 / m.TrainingTimeSec) * (1 / m.InferenceTimeSec)
		breakdown[m.Name] = map[string]float64{
			"training_time_s":  m.TrainingTimeSec,
			"inference_time_s": m.InferenceTimeSec,
		}
	}

	return &interfaces.MetricResult{
		CalculatorName: c.Name(),
		Dimension:      interfaces.DimensionEfficiency,
		Values:         values,
		Breakdown:      breakdown,
	}, nil
}
