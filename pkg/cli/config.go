// Package cli provides CLI-specific logic including configuration loading.
package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/toyinlola/idsrank/pkg/interfaces"
	"github.com/toyinlola/idsrank/pkg/metrics"
	"github.com/toyinlola/idsrank/pkg/synthesis"
)

// Config represents the .idsrank.yml configuration file.
type Config struct {
	Version string        `yaml:"version"`
	Weights WeightsConfig `yaml:"weights"`
	Costs   CostsConfig   `yaml:"costs"`
	Output  OutputConfig  `yaml:"output"`
}

// WeightsConfig holds the synthesis weight overrides. Unset dimensions fall
// back to the defaults, so a file may override a single weight (the result
// is renormalized by the synthesis engine if the sum drifts).
type WeightsConfig struct {
	Detection  *float64 `yaml:"detection"`
	ASC        *float64 `yaml:"asc"`
	TCO        *float64 `yaml:"tco"`
	Deployment *float64 `yaml:"deployment"`
	Efficiency *float64 `yaml:"efficiency"`
}

// IsSet reports whether any weight was supplied.
func (w WeightsConfig) IsSet() bool {
	return w.Detection != nil || w.ASC != nil || w.TCO != nil ||
		w.Deployment != nil || w.Efficiency != nil
}

// Map returns the weight mapping, using the default weight for any unset
// dimension.
func (w WeightsConfig) Map() map[interfaces.Dimension]float64 {
	pick := func(v *float64, def float64) float64 {
		if v != nil {
			return *v
		}
		return def
	}
	return map[interfaces.Dimension]float64{
		interfaces.DimensionDetection:  pick(w.Detection, synthesis.DefaultWeightDetection),
		interfaces.DimensionASC:        pick(w.ASC, synthesis.DefaultWeightASC),
		interfaces.DimensionTCO:        pick(w.TCO, synthesis.DefaultWeightTCO),
		interfaces.DimensionDeployment: pick(w.Deployment, synthesis.DefaultWeightDeployment),
		interfaces.DimensionEfficiency: pick(w.Efficiency, synthesis.DefaultWeightEfficiency),
	}
}

// CostsConfig holds the TCO cost parameter overrides. Zero-valued fields fall
// back to the defaults.
type CostsConfig struct {
	NumDevices           float64 `yaml:"num_devices"`
	EvaluationYears      float64 `yaml:"evaluation_years"`
	FlowsPerDevicePerDay float64 `yaml:"flows_per_device_per_day"`

	BaseInfrastructure     float64 `yaml:"base_infrastructure"`
	HardwareCostPerMB      float64 `yaml:"hardware_cost_per_mb"`
	NetworkCostEdge        float64 `yaml:"network_cost_edge"`
	NetworkCostCentralized float64 `yaml:"network_cost_centralized"`
	IntegrationCostEdge    float64 `yaml:"integration_cost_edge"`
	IntegrationCostDL      float64 `yaml:"integration_cost_dl"`

	RetrainingPerYear           float64 `yaml:"retraining_frequency_per_year"`
	TrainingComputeRatePerHour  float64 `yaml:"training_compute_rate_per_hour"`
	InferenceComputeRatePerHour float64 `yaml:"inference_compute_rate_per_hour"`
	EnergyCostPerDevice         float64 `yaml:"energy_cost_per_device"`

	AlertInvestigationMinutes float64 `yaml:"alert_investigation_time_min"`
	SOCAnalystRatePerHour     float64 `yaml:"soc_analyst_rate_per_hour"`

	ExpansionFeeEdge    float64 `yaml:"expansion_fee_edge"`
	ExpansionFeeNonEdge float64 `yaml:"expansion_fee_non_edge"`

	BaseAuditFee float64 `yaml:"base_audit_fee"`
}

// Params converts the config into a metrics parameter table, filling unset
// fields from the defaults.
func (c CostsConfig) Params() metrics.CostParams {
	p := metrics.DefaultCostParams()

	set := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	set(&p.NumDevices, c.NumDevices)
	set(&p.EvaluationYears, c.EvaluationYears)
	set(&p.FlowsPerDevicePerDay, c.FlowsPerDevicePerDay)
	set(&p.BaseInfrastructure, c.BaseInfrastructure)
	set(&p.HardwareCostPerMB, c.HardwareCostPerMB)
	set(&p.NetworkCostEdge, c.NetworkCostEdge)
	set(&p.NetworkCostCentralized, c.NetworkCostCentralized)
	set(&p.IntegrationCostEdge, c.IntegrationCostEdge)
	set(&p.IntegrationCostDL, c.IntegrationCostDL)
	set(&p.RetrainingPerYear, c.RetrainingPerYear)
	set(&p.TrainingComputeRatePerHour, c.TrainingComputeRatePerHour)
	set(&p.InferenceComputeRatePerHour, c.InferenceComputeRatePerHour)
	set(&p.EnergyCostPerDevice, c.EnergyCostPerDevice)
	set(&p.AlertInvestigationMinutes, c.AlertInvestigationMinutes)
	set(&p.SOCAnalystRatePerHour, c.SOCAnalystRatePerHour)
	set(&p.ExpansionFeeEdge, c.ExpansionFeeEdge)
	set(&p.ExpansionFeeNonEdge, c.ExpansionFeeNonEdge)
	set(&p.BaseAuditFee, c.BaseAuditFee)

	return p
}

// OutputConfig controls report output settings.
type OutputConfig struct {
	Format  string `yaml:"format"`
	Verbose bool   `yaml:"verbose"`
}

// LoadConfig reads and parses a .idsrank.yml configuration file.
// If path is empty, it looks for .idsrank.yml in the current directory.
// If the default config file is not found, sensible defaults are returned.
// If an explicitly specified config file is not found, an error is returned.
func LoadConfig(path string) (*Config, error) {
	useDefault := path == ""
	if useDefault {
		path = ".idsrank.yml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && useDefault {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("cli: reading config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cli: parsing config %s: %w", path, err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

// DefaultConfig returns a Config with sensible defaults matching the
// documented .idsrank.yml schema.
func DefaultConfig() *Config {
	cfg := &Config{Version: "1"}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in zero-value fields with sensible defaults.
func applyDefaults(cfg *Config) {
	if cfg.Output.Format == "" {
		cfg.Output.Format = "terminal"
	}
}
