package metrics

import (
	"context"
	"fmt"

	"github.com/toyinlola/idsrank/pkg/interfaces"
)

// Edge compatibility factors.
const (
	EdgeFactorValidated = 1.0 // validated for edge deployment
	EdgeFactorSmall     = 0.8 // not validated but under 10 MB
	EdgeFactorLarge     = 0.2 // centralized-only
)

// edgeSmallModelMB is the size under which an unvalidated model still gets
// partial edge credit.
const edgeSmallModelMB = 10

// EdgeCompatibility returns the edge compatibility factor for a model.
func EdgeCompatibility(m interfaces.ModelMetrics) float64 {
	switch {
	case m.EdgeDeployable:
		return EdgeFactorValidated
	case m.ModelSizeMB < edgeSmallModelMB:
		return EdgeFactorSmall
	default:
		return EdgeFactorLarge
	}
}

// DeploymentCalculator produces the deployment feasibility dimension:
// P = (1 / model size) x edge compatibility. The value is an unbounded raw
// magnitude meaningful only relative to the comparison set.
type DeploymentCalculator struct{}

// NewDeploymentCalculator creates a deployment feasibility calculator.
func NewDeploymentCalculator() *DeploymentCalculator {
	return &DeploymentCalculator{}
}

func (c *DeploymentCalculator) Name() string { return "deployment" }

func (c *DeploymentCalculator) Compute(ctx context.Context, models []interfaces.ModelMetrics) (*interfaces.MetricResult, error) {
	values := make(map[string]float64, len(models))
	breakdown := make(map[string]map[string]float64, len(models))

	for _, m := range models {
		if m.ModelSizeMB <= 0 {
			return nil, fmt.Errorf("model %q: model_size_mb must be positive, got %g", m.Name, m.ModelSizeMB)
		}

		alpha := EdgeCompatibility(m)
		values[m.Name] = (1 / m.ModelSizeMB) * alpha
		breakdown[m.Name] = map[string]float64{
			"model_size_mb":      m.ModelSizeMB,
			"edge_compatibility": alpha,
		}
	}

	return &interfaces.MetricResult{
		CalculatorName: c.Name(),
		Dimension:      interfaces.DimensionDeployment,
		Values:         values,
		Breakdown:      breakdown,
	}, nil
}
