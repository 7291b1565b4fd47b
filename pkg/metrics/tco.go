package metrics

import (
	"context"
	"fmt"

	"github.com/toyinlola/idsrank/pkg/interfaces"
)

// CostParams holds the deployment-economics parameter table for the TCO
// calculation. Zero-valued fields are filled from DefaultCostParams by the
// config layer; construct directly only in tests.
type CostParams struct {
	// System parameters.
	NumDevices           float64
	EvaluationYears      float64
	FlowsPerDevicePerDay float64

	// Deployment costs.
	BaseInfrastructure     float64
	HardwareCostPerMB      float64
	NetworkCostEdge        float64
	NetworkCostCentralized float64
	IntegrationCostEdge    float64
	IntegrationCostDL      float64

	// Operational costs.
	RetrainingPerYear           float64
	TrainingComputeRatePerHour  float64
	InferenceComputeRatePerHour float64
	EnergyCostPerDevice         float64

	// Incident response.
	AlertInvestigationMinutes float64
	SOCAnalystRatePerHour     float64

	// Scalability.
	ExpansionFeeEdge    float64
	ExpansionFeeNonEdge float64

	// Compliance.
	BaseAuditFee           float64
	InterpretabilityHigh   float64
	InterpretabilityMedium float64
	InterpretabilityLow    float64
}

// DefaultCostParams returns the default cost parameter table: a 1000-device
// fleet evaluated over five years.
func DefaultCostParams() CostParams {
	return CostParams{
		NumDevices:           1000,
		EvaluationYears:      5,
		FlowsPerDevicePerDay: 10000,

		BaseInfrastructure:     50000,
		HardwareCostPerMB:      350,
		NetworkCostEdge:        10000,
		NetworkCostCentralized: 50000,
		IntegrationCostEdge:    20000,
		IntegrationCostDL:      100000,

		RetrainingPerYear:           1,
		TrainingComputeRatePerHour:  2,
		InferenceComputeRatePerHour: 0.5,
		EnergyCostPerDevice:         90,

		AlertInvestigationMinutes: 10,
		SOCAnalystRatePerHour:     75,

		ExpansionFeeEdge:    80000,
		ExpansionFeeNonEdge: 50000,

		BaseAuditFee:           120000,
		InterpretabilityHigh:   1.0,
		InterpretabilityMedium: 0.5,
		InterpretabilityLow:    0.2,
	}
}

// interpretabilityFactor returns the explainability factor used in the
// compliance cost, falling back to the low factor for unknown levels.
func (p CostParams) interpretabilityFactor(i interfaces.Interpretability) float64 {
	switch i {
	case interfaces.InterpretabilityHigh:
		return p.InterpretabilityHigh
	case interfaces.InterpretabilityMedium:
		return p.InterpretabilityMedium
	default:
		return p.InterpretabilityLow
	}
}

// TCOCalculator produces the five-component total cost of ownership:
// TCO = DEP + OP + IR + SC + CC, in dollars over the evaluation period.
type TCOCalculator struct {
	params CostParams
}

// TCOOption configures the TCOCalculator.
type TCOOption func(*TCOCalculator)

// WithCostParams overrides the default cost parameter table.
func WithCostParams(p CostParams) TCOOption {
	return func(c *TCOCalculator) {
		c.params = p
	}
}

// NewTCOCalculator creates a total-cost-of-ownership calculator with
// optional configuration.
func NewTCOCalculator(opts ...TCOOption) *TCOCalculator {
	c := &TCOCalculator{params: DefaultCostParams()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *TCOCalculator) Name() string { return "tco" }

func (c *TCOCalculator) Compute(ctx context.Context, models []interfaces.ModelMetrics) (*interfaces.MetricResult, error) {
	values := make(map[string]float64, len(models))
	breakdown := make(map[string]map[string]float64, len(models))

	for _, m := range models {
		if m.ModelSizeMB < 0 {
			return nil, fmt.Errorf("model %q: model_size_mb must be non-negative, got %g", m.Name, m.ModelSizeMB)
		}
		if m.FPR < 0 || m.FPR > 1 {
			return nil, fmt.Errorf("model %q: fpr must be a fraction in [0,1], got %g", m.Name, m.FPR)
		}

		dep := c.deploymentCost(m)
		op := c.operationalCost(m)
		ir := c.incidentResponseCost(m)
		sc := c.scalabilityCost(m)
		cc := c.complianceCost(m)
		total := dep + op + ir + sc + cc

		values[m.Name] = total
		breakdown[m.Name] = map[string]float64{
			"deployment":        dep,
			"operational":       op,
			"incident_response": ir,
			"scalability":       sc,
			"compliance":        cc,
		}
	}

	return &interfaces.MetricResult{
		CalculatorName: c.Name(),
		Dimension:      interfaces.DimensionTCO,
		Values:         values,
		Breakdown:      breakdown,
	}, nil
}

// deploymentCost: DEP = C_infra + C_hw + C_net + C_int.
func (c *TCOCalculator) deploymentCost(m interfaces.ModelMetrics) float64 {
	p := c.params

	infra := p.BaseInfrastructure
	hw := p.HardwareCostPerMB * m.ModelSizeMB

	network := p.NetworkCostCentralized
	integration := p.IntegrationCostDL
	if m.EdgeDeployable {
		network = p.NetworkCostEdge
		integration = p.IntegrationCostEdge
	}

	return infra + hw + network + integration
}

// operationalCost: OP = C_train + C_infer + C_energy.
func (c *TCOCalculator) operationalCost(m interfaces.ModelMetrics) float64 {
	p := c.params

	trainingHours := m.TrainingTimeSec / 3600
	train := trainingHours * p.NumDevices * p.RetrainingPerYear * p.EvaluationYears * p.TrainingComputeRatePerHour

	inferenceHours := (c.totalFlows() * m.InferenceTimeSec) / 3600
	infer := inferenceHours * p.InferenceComputeRatePerHour

	energy := p.EnergyCostPerDevice * p.NumDevices * p.EvaluationYears

	return train + infer + energy
}

// incidentResponseCost: IR = false alerts x cost per alert.
func (c *TCOCalculator) incidentResponseCost(m interfaces.ModelMetrics) float64 {
	p := c.params

	falseAlerts := m.FPR * c.totalFlows()
	costPerAlert := (p.AlertInvestigationMinutes / 60) * p.SOCAnalystRatePerHour

	return falseAlerts * costPerAlert
}

// scalabilityCost: SC = expansion fee x edge compatibility factor.
// Non-edge models pay the flat non-edge fee.
func (c *TCOCalculator) scalabilityCost(m interfaces.ModelMetrics) float64 {
	if m.EdgeDeployable {
		return c.params.ExpansionFeeEdge * EdgeCompatibility(m)
	}
	return c.params.ExpansionFeeNonEdge
}

// complianceCost: CC = audit fee / interpretability factor. Opaque models
// cost more to audit.
func (c *TCOCalculator) complianceCost(m interfaces.ModelMetrics) float64 {
	factor := c.params.interpretabilityFactor(m.Interpretability)
	return c.params.BaseAuditFee / factor
}

func (c *TCOCalculator) totalFlows() float64 {
	p := c.params
	return p.FlowsPerDevicePerDay * p.NumDevices * 365 * p.EvaluationYears
}
