package metrics

import (
	"context"
	"fmt"

	"github.com/toyinlola/idsrank/pkg/interfaces"
)

// ASC component weights. The composite is
// ASC = 0.35*TPR + 0.35*FPR_min + 0.15*NovelAttack + 0.15*InferenceEfficiency.
const (
	ascWeightTPR          = 0.35
	ascWeightFPRMin       = 0.35
	ascWeightNovelAttack  = 0.15
	ascWeightInferenceEff = 0.15
)

// Novel-attack adaptability scores by architecture class.
const (
	NovelAttackAttention   = 90
	NovelAttackHybrid      = 80
	NovelAttackTraditional = 70
)

// NovelAttackScore returns the adaptability score for an architecture class,
// falling back to the traditional-ML score for unknown classes.
func NovelAttackScore(a interfaces.Architecture) float64 {
	switch a {
	case interfaces.ArchitectureAttention:
		return NovelAttackAttention
	case interfaces.ArchitectureHybrid:
		return NovelAttackHybrid
	default:
		return NovelAttackTraditional
	}
}

// ASCCalculator produces the attack surface coverage composite. Inference
// efficiency is relative to the fastest model in the set, so the whole set
// is needed to score any one model.
type ASCCalculator struct{}

// NewASCCalculator creates an attack surface coverage calculator.
func NewASCCalculator() *ASCCalculator {
	return &ASCCalculator{}
}

func (c *ASCCalculator) Name() string { return "asc" }

func (c *ASCCalculator) Compute(ctx context.Context, models []interfaces.ModelMetrics) (*interfaces.MetricResult, error) {
	fastest, err := fastestInference(models)
	if err != nil {
		return nil, err
	}

	values := make(map[string]float64, len(models))
	breakdown := make(map[string]map[string]float64, len(models))

	for _, m := range models {
		if m.FPR < 0 || m.FPR > 1 {
			return nil, fmt.Errorf("model %q: fpr must be a fraction in [0,1], got %g", m.Name, m.FPR)
		}
		if m.Recall < 0 || m.Recall > 100 {
			return nil, fmt.Errorf("model %q: recall must be in [0,100], got %g", m.Name, m.Recall)
		}

		tpr := m.Recall
		fprMin := (1 - m.FPR) * 100
		novel := NovelAttackScore(m.Architecture)
		inferenceEff := (fastest / m.InferenceTimeSec) * 100

		asc := ascWeightTPR*tpr +
			ascWeightFPRMin*fprMin +
			ascWeightNovelAttack*novel +
			ascWeightInferenceEff*inferenceEff

		values[m.Name] = asc
		breakdown[m.Name] = map[string]float64{
			"tpr":                  tpr,
			"fpr_min":              fprMin,
			"novel_attack":         novel,
			"inference_efficiency": inferenceEff,
		}
	}

	return &interfaces.MetricResult{
		CalculatorName: c.Name(),
		Dimension:      interfaces.DimensionASC,
		Values:         values,
		Breakdown:      breakdown,
	}, nil
}

// fastestInference returns the smallest inference time in the set.
// Every model must report a positive inference time.
func fastestInference(models []interfaces.ModelMetrics) (float64, error) {
	fastest := 0.0
	for i, m := range models {
		if m.InferenceTimeSec <= 0 {
			return 0, fmt.Errorf("model %q: inference_time_s must be positive, got %g", m.Name, m.InferenceTimeSec)
		}
		if i == 0 || m.InferenceTimeSec < fastest {
			fastest = m.InferenceTimeSec
		}
	}
	return fastest, nil
}
