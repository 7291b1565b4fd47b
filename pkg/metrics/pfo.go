package metrics

import (
	"context"
	"fmt"

	"github.com/toyinlola/idsrank/pkg/interfaces"
	"github.com/toyinlola/idsrank/pkg/synthesis"
)

// PFOCalculator produces the Pareto frontier optimization diagnostic:
// C = (D + E_n + P_n) / 3, where D = (Accuracy x F1) / 10000 and E_n/P_n are
// the efficiency and deployment raw scores min-max normalized to [0,1]
// across the set. The composite is reported for diagnosis only; it does not
// feed the synthesis engine, which weighs the underlying dimensions
// directly.
type PFOCalculator struct{}

// NewPFOCalculator creates a Pareto frontier diagnostic calculator.
func NewPFOCalculator() *PFOCalculator {
	return &PFOCalculator{}
}

func (c *PFOCalculator) Name() string { return "pfo" }

func (c *PFOCalculator) Compute(ctx context.Context, models []interfaces.ModelMetrics) (*interfaces.MetricResult, error) {
	type rawScores struct {
		detection  float64
		efficiency float64
		deployment float64
	}

	raw := make(map[string]rawScores, len(models))
	var effMin, effMax, depMin, depMax float64

	for i, m := range models {
		if m.TrainingTimeSec <= 0 || m.InferenceTimeSec <= 0 {
			return nil, fmt.Errorf("model %q: training and inference times must be positive", m.Name)
		}
		if m.ModelSizeMB <= 0 {
			return nil, fmt.Errorf("model %q: model_size_mb must be positive, got %g", m.Name, m.ModelSizeMB)
		}

		r := rawScores{
			detection:  m.Accuracy * m.F1Score / 10000,
			efficiency: (1 / m.TrainingTimeSec) * (1 / m.InferenceTimeSec),
			deployment: (1 / m.ModelSizeMB) * EdgeCompatibility(m),
		}
		raw[m.Name] = r

		if i == 0 {
			effMin, effMax = r.efficiency, r.efficiency
			depMin, depMax = r.deployment, r.deployment
			continue
		}
		if r.efficiency < effMin {
			effMin = r.efficiency
		}
		if r.efficiency > effMax {
			effMax = r.efficiency
		}
		if r.deployment < depMin {
			depMin = r.deployment
		}
		if r.deployment > depMax {
			depMax = r.deployment
		}
	}

	values := make(map[string]float64, len(models))
	breakdown := make(map[string]map[string]float64, len(models))

	for _, m := range models {
		r := raw[m.Name]

		// Same normalizer as the synthesis stage, rescaled to [0,1].
		effNorm := synthesis.Normalize(r.efficiency, effMin, effMax, false) / 100
		depNorm := synthesis.Normalize(r.deployment, depMin, depMax, false) / 100

		values[m.Name] = (r.detection + effNorm + depNorm) / 3
		breakdown[m.Name] = map[string]float64{
			"detection":       r.detection,
			"efficiency_norm": effNorm,
			"deployment_norm": depNorm,
		}
	}

	return &interfaces.MetricResult{
		CalculatorName: c.Name(),
		Values:         values,
		Breakdown:      breakdown,
	}, nil
}
