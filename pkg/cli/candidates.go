package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/toyinlola/idsrank/pkg/interfaces"
)

// CandidateFile is the YAML input for `idsrank rank`: candidates whose five
// dimension values have already been computed, plus optional weight
// overrides scoped to this file.
type CandidateFile struct {
	Candidates []CandidateEntry `yaml:"candidates"`
	Weights    *WeightsConfig   `yaml:"weights,omitempty"`
}

// CandidateEntry is one pre-scored candidate row.
type CandidateEntry struct {
	Name       string  `yaml:"name"`
	Detection  float64 `yaml:"detection"`
	ASC        float64 `yaml:"asc"`
	TCO        float64 `yaml:"tco"`
	Deployment float64 `yaml:"deployment"`
	Efficiency float64 `yaml:"efficiency"`
}

// Candidate converts the entry to the synthesis input type.
func (e CandidateEntry) Candidate() interfaces.Candidate {
	return interfaces.Candidate{
		Name: e.Name,
		Scores: map[interfaces.Dimension]float64{
			interfaces.DimensionDetection:  e.Detection,
			interfaces.DimensionASC:        e.ASC,
			interfaces.DimensionTCO:        e.TCO,
			interfaces.DimensionDeployment: e.Deployment,
			interfaces.DimensionEfficiency: e.Efficiency,
		},
	}
}

// LoadCandidates reads and parses a pre-scored candidates file.
func LoadCandidates(path string) (*CandidateFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cli: reading candidates %s: %w", path, err)
	}

	file := &CandidateFile{}
	if err := yaml.Unmarshal(data, file); err != nil {
		return nil, fmt.Errorf("cli: parsing candidates %s: %w", path, err)
	}
	if len(file.Candidates) == 0 {
		return nil, fmt.Errorf("cli: %s contains no candidates", path)
	}

	return file, nil
}

// ModelFile is the YAML input for `idsrank evaluate`: raw model measurements
// from which the metric calculators derive all five dimensions.
type ModelFile struct {
	Models  []ModelEntry   `yaml:"models"`
	Weights *WeightsConfig `yaml:"weights,omitempty"`
}

// ModelEntry is one model's raw measurements.
type ModelEntry struct {
	Name             string  `yaml:"name"`
	Accuracy         float64 `yaml:"accuracy"`
	F1Score          float64 `yaml:"f1_score"`
	Recall           float64 `yaml:"recall"`
	FPR              float64 `yaml:"fpr"`
	TrainingTimeSec  float64 `yaml:"training_time_s"`
	InferenceTimeSec float64 `yaml:"inference_time_s"`
	ModelSizeMB      float64 `yaml:"model_size_mb"`
	EdgeDeployable   bool    `yaml:"edge_deployable"`
	Architecture     string  `yaml:"architecture"`
	Interpretability string  `yaml:"interpretability"`
}

// Metrics converts the entry to the calculator input type.
func (e ModelEntry) Metrics() interfaces.ModelMetrics {
	return interfaces.ModelMetrics{
		Name:             e.Name,
		Accuracy:         e.Accuracy,
		F1Score:          e.F1Score,
		Recall:           e.Recall,
		FPR:              e.FPR,
		TrainingTimeSec:  e.TrainingTimeSec,
		InferenceTimeSec: e.InferenceTimeSec,
		ModelSizeMB:      e.ModelSizeMB,
		EdgeDeployable:   e.EdgeDeployable,
		Architecture:     interfaces.Architecture(e.Architecture),
		Interpretability: interfaces.Interpretability(e.Interpretability),
	}
}

// LoadModels reads and parses a raw model metrics file.
func LoadModels(path string) (*ModelFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cli: reading models %s: %w", path, err)
	}

	file := &ModelFile{}
	if err := yaml.Unmarshal(data, file); err != nil {
		return nil, fmt.Errorf("cli: parsing models %s: %w", path, err)
	}
	if len(file.Models) == 0 {
		return nil, fmt.Errorf("cli: %s contains no models", path)
	}

	return file, nil
}

// SaveModels writes a model metrics file, as produced by the entry wizard.
func SaveModels(path string, file *ModelFile) error {
	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("cli: encoding models: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cli: writing models %s: %w", path, err)
	}
	return nil
}
