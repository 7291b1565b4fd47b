// Package interfaces defines the shared types and contracts for all idsrank modules.
// This package has ZERO dependencies on any other pkg/ package.
// All cross-module communication goes through types defined here.
package interfaces

import "time"

// Dimension identifies one of the five evaluation dimensions combined by the
// synthesis engine.
type Dimension string

const (
	DimensionDetection  Dimension = "detection"
	DimensionASC        Dimension = "asc"
	DimensionTCO        Dimension = "tco"
	DimensionDeployment Dimension = "deployment"
	DimensionEfficiency Dimension = "efficiency"
)

// Dimensions returns all synthesis dimensions in canonical order.
// The order is stable so that reports and iteration are reproducible.
func Dimensions() []Dimension {
	return []Dimension{
		DimensionDetection,
		DimensionASC,
		DimensionTCO,
		DimensionDeployment,
		DimensionEfficiency,
	}
}

// LowerIsBetter reports whether smaller raw values rank higher for this
// dimension. Only TCO is cost-like.
func (d Dimension) LowerIsBetter() bool {
	return d == DimensionTCO
}

// RequiresNormalization reports whether raw values for this dimension are
// unbounded magnitudes that must be min-max scaled across the candidate set.
// Detection and ASC arrive pre-scaled to 0-100 and pass through unchanged.
func (d Dimension) RequiresNormalization() bool {
	switch d {
	case DimensionTCO, DimensionDeployment, DimensionEfficiency:
		return true
	}
	return false
}

// Candidate is one model entering a ranking run: a name unique within the run
// plus a raw value per dimension. Candidates are owned by the caller; the
// synthesis engine never retains or mutates them.
type Candidate struct {
	Name   string                `json:"name"`
	Scores map[Dimension]float64 `json:"scores"`
}

// Band is the qualitative interpretation of a composite score.
type Band string

const (
	BandExcellent Band = "Excellent" // Top-tier model for balanced deployment
	BandVeryGood  Band = "Very Good" // Suitable for most deployment scenarios
	BandGood      Band = "Good"      // Adequate performance with some trade-offs
	BandModerate  Band = "Moderate"  // Consider optimizing specific dimensions
)

// RankedEntry is one row of a ranking: the candidate's normalized scores,
// its weighted composite, and its position. Rank 1 is the highest composite.
type RankedEntry struct {
	Rank       int                   `json:"rank"`
	Name       string                `json:"name"`
	Normalized map[Dimension]float64 `json:"normalized"`
	Composite  float64               `json:"composite"`
	Band       Band                  `json:"band"`
}

// RankedResult is the total order produced by one ranking run.
// Ties are broken by original input order, so re-ranking the same input
// yields an identical result.
type RankedResult struct {
	Entries []RankedEntry `json:"entries"`
}

// Architecture classifies a model's detection architecture for the
// novel-attack adaptability score.
type Architecture string

const (
	ArchitectureAttention   Architecture = "attention"
	ArchitectureHybrid      Architecture = "hybrid"
	ArchitectureTraditional Architecture = "traditional"
)

// Interpretability classifies how explainable a model's decisions are,
// which drives compliance cost.
type Interpretability string

const (
	InterpretabilityHigh   Interpretability = "high"   // Decision trees, rule-based
	InterpretabilityMedium Interpretability = "medium" // Hybrid with some explainability
	InterpretabilityLow    Interpretability = "low"    // Deep neural networks
)

// ModelMetrics holds the raw measurements for one model, as collected by the
// caller. The metric calculators derive all five dimension values from these.
type ModelMetrics struct {
	Name             string           `json:"name"`
	Accuracy         float64          `json:"accuracy"`           // 0-100
	F1Score          float64          `json:"f1_score"`           // 0-100
	Recall           float64          `json:"recall"`             // TPR, 0-100
	FPR              float64          `json:"fpr"`                // fraction in [0,1]
	TrainingTimeSec  float64          `json:"training_time_s"`    // seconds
	InferenceTimeSec float64          `json:"inference_time_s"`   // seconds per sample
	ModelSizeMB      float64          `json:"model_size_mb"`
	EdgeDeployable   bool             `json:"edge_deployable"`
	Architecture     Architecture     `json:"architecture"`
	Interpretability Interpretability `json:"interpretability"`
}

// MetricResult is what each metric calculator returns: one raw value per
// model, keyed by model name, plus named component breakdowns.
// Dimension is empty for diagnostic calculators whose output does not feed
// the synthesis engine.
type MetricResult struct {
	CalculatorName string                        `json:"calculator_name"`
	Dimension      Dimension                     `json:"dimension,omitempty"`
	Values         map[string]float64            `json:"values"`
	Breakdown      map[string]map[string]float64 `json:"breakdown,omitempty"`
	Duration       time.Duration                 `json:"duration"`
	Error          error                         `json:"-"`
}

// Report is the final output of an idsrank run, consumable by any formatter
// without further numeric work.
type Report struct {
	ID          string                `json:"id"`
	Timestamp   time.Time             `json:"timestamp"`
	Weights     map[Dimension]float64 `json:"weights"`
	Entries     []RankedEntry         `json:"rankings"`
	Adjustments []string              `json:"adjustments,omitempty"`
	Metrics     []MetricResult        `json:"metrics,omitempty"`
	Duration    time.Duration         `json:"duration"`
}
