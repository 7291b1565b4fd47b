package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toyinlola/idsrank/pkg/interfaces"
)

// stubCalculator is a configurable calculator for engine tests.
type stubCalculator struct {
	name      string
	dimension interfaces.Dimension
	value     float64
	err       error
	delay     time.Duration
}

func (s *stubCalculator) Name() string { return s.name }

func (s *stubCalculator) Compute(ctx context.Context, models []interfaces.ModelMetrics) (*interfaces.MetricResult, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	values := make(map[string]float64, len(models))
	for _, m := range models {
		values[m.Name] = s.value
	}
	return &interfaces.MetricResult{
		CalculatorName: s.name,
		Dimension:      s.dimension,
		Values:         values,
	}, nil
}

func testModels() []interfaces.ModelMetrics {
	return []interfaces.ModelMetrics{
		{Name: "alpha"},
		{Name: "beta"},
	}
}

func TestRegistry_RegisterDuplicate_Error(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.Register(&stubCalculator{name: "tco"}))
	err := registry.Register(&stubCalculator{name: "tco"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegistry_SetEnabled_FiltersCalculators(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(&stubCalculator{name: "asc"}))
	require.NoError(t, registry.Register(&stubCalculator{name: "tco"}))

	require.NoError(t, registry.SetEnabled("tco", false))

	assert.True(t, registry.IsEnabled("asc"))
	assert.False(t, registry.IsEnabled("tco"))
	assert.Len(t, registry.EnabledCalculators(), 1)
	assert.Error(t, registry.SetEnabled("unknown", true))
}

func TestEngine_RunsAllEnabledCalculators(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(&stubCalculator{name: "detection", dimension: interfaces.DimensionDetection, value: 90}))
	require.NoError(t, registry.Register(&stubCalculator{name: "asc", dimension: interfaces.DimensionASC, value: 85}))

	results, err := NewEngine(registry).Run(context.Background(), testModels())

	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.NoError(t, r.Error)
		assert.Len(t, r.Values, 2)
	}
}

func TestEngine_FailingCalculator_IsolatedFromOthers(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(&stubCalculator{name: "detection", dimension: interfaces.DimensionDetection, value: 90}))
	require.NoError(t, registry.Register(&stubCalculator{name: "tco", err: errors.New("bad input")}))

	results, err := NewEngine(registry).Run(context.Background(), testModels())
	require.NoError(t, err)
	require.Len(t, results, 2)

	var failed, succeeded int
	for _, r := range results {
		if r.Error != nil {
			failed++
			assert.Equal(t, "tco", r.CalculatorName)
			assert.Contains(t, r.Error.Error(), "bad input")
		} else {
			succeeded++
		}
	}
	assert.Equal(t, 1, failed)
	assert.Equal(t, 1, succeeded)
}

func TestEngine_EmptyModelSet_Error(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(&stubCalculator{name: "detection"}))

	_, err := NewEngine(registry).Run(context.Background(), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be empty")
}

func TestEngine_ContextCancellation(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(&stubCalculator{name: "slow", delay: 5 * time.Second}))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := NewEngine(registry).Run(ctx, testModels())

	assert.ErrorIs(t, err, context.Canceled)
}

func TestCandidates_AssemblesAllDimensionsInInputOrder(t *testing.T) {
	models := testModels()
	results := []*interfaces.MetricResult{
		{Dimension: interfaces.DimensionDetection, Values: map[string]float64{"alpha": 90, "beta": 80}},
		{Dimension: interfaces.DimensionASC, Values: map[string]float64{"alpha": 95, "beta": 85}},
		{Dimension: interfaces.DimensionTCO, Values: map[string]float64{"alpha": 500000, "beta": 300000}},
		{Dimension: interfaces.DimensionDeployment, Values: map[string]float64{"alpha": 0.5, "beta": 0.8}},
		{Dimension: interfaces.DimensionEfficiency, Values: map[string]float64{"alpha": 0.002, "beta": 0.004}},
		// Diagnostic results are skipped.
		{CalculatorName: "pfo", Values: map[string]float64{"alpha": 0.3, "beta": 0.9}},
	}

	candidates, err := Candidates(models, results)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	assert.Equal(t, "alpha", candidates[0].Name)
	assert.Equal(t, "beta", candidates[1].Name)
	assert.Equal(t, 90.0, candidates[0].Scores[interfaces.DimensionDetection])
	assert.Equal(t, 300000.0, candidates[1].Scores[interfaces.DimensionTCO])
}

func TestCandidates_MissingDimension_Error(t *testing.T) {
	results := []*interfaces.MetricResult{
		{Dimension: interfaces.DimensionDetection, Values: map[string]float64{"alpha": 90, "beta": 80}},
	}

	_, err := Candidates(testModels(), results)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no result for dimension")
}

func TestCandidates_ErroredResultIgnored(t *testing.T) {
	results := []*interfaces.MetricResult{
		{Dimension: interfaces.DimensionDetection, Values: map[string]float64{"alpha": 90, "beta": 80}, Error: errors.New("boom")},
	}

	_, err := Candidates(testModels(), results)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "detection")
}

func TestDetectionCalculator_AccuracyTimesF1(t *testing.T) {
	models := []interfaces.ModelMetrics{
		{Name: "m", Accuracy: 99.1, F1Score: 98.7},
	}

	result, err := NewDetectionCalculator().Compute(context.Background(), models)
	require.NoError(t, err)

	assert.Equal(t, interfaces.DimensionDetection, result.Dimension)
	assert.InDelta(t, 99.1*98.7/100, result.Values["m"], 1e-9)
}

func TestDetectionCalculator_AccuracyOutOfRange_Error(t *testing.T) {
	_, err := NewDetectionCalculator().Compute(context.Background(), []interfaces.ModelMetrics{
		{Name: "broken", Accuracy: 120, F1Score: 90},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accuracy must be in [0,100]")
}
