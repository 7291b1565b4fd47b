package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toyinlola/idsrank/pkg/interfaces"
)

func TestASCCalculator_WorkedExample(t *testing.T) {
	models := []interfaces.ModelMetrics{
		{
			Name:             "cnn-lstm",
			Recall:           98.9,
			FPR:              0.002,
			Architecture:     interfaces.ArchitectureHybrid,
			InferenceTimeSec: 0.004,
		},
		{
			Name:             "transformer",
			Recall:           95.0,
			FPR:              0.010,
			Architecture:     interfaces.ArchitectureAttention,
			InferenceTimeSec: 0.002,
		},
	}

	result, err := NewASCCalculator().Compute(context.Background(), models)
	require.NoError(t, err)
	assert.Equal(t, interfaces.DimensionASC, result.Dimension)

	// cnn-lstm: .35*98.9 + .35*99.8 + .15*80 + .15*(0.002/0.004*100) = 89.045
	assert.InDelta(t, 89.045, result.Values["cnn-lstm"], 1e-6)
	// transformer is the fastest: inference efficiency 100.
	// .35*95 + .35*99 + .15*90 + .15*100 = 96.4
	assert.InDelta(t, 96.4, result.Values["transformer"], 1e-6)

	cnn := result.Breakdown["cnn-lstm"]
	assert.InDelta(t, 98.9, cnn["tpr"], 1e-9)
	assert.InDelta(t, 99.8, cnn["fpr_min"], 1e-9)
	assert.InDelta(t, 80, cnn["novel_attack"], 1e-9)
	assert.InDelta(t, 50, cnn["inference_efficiency"], 1e-9)
}

func TestASCCalculator_ZeroInferenceTime_Error(t *testing.T) {
	models := []interfaces.ModelMetrics{
		{Name: "broken", Recall: 90, FPR: 0.01, InferenceTimeSec: 0},
	}

	_, err := NewASCCalculator().Compute(context.Background(), models)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "inference_time_s must be positive")
}

func TestASCCalculator_FPRAboveOne_Error(t *testing.T) {
	models := []interfaces.ModelMetrics{
		{Name: "broken", Recall: 90, FPR: 1.5, InferenceTimeSec: 0.01},
	}

	_, err := NewASCCalculator().Compute(context.Background(), models)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fpr must be a fraction")
}

func TestNovelAttackScore_UnknownArchitecture_FallsBackToTraditional(t *testing.T) {
	assert.Equal(t, float64(NovelAttackAttention), NovelAttackScore(interfaces.ArchitectureAttention))
	assert.Equal(t, float64(NovelAttackHybrid), NovelAttackScore(interfaces.ArchitectureHybrid))
	assert.Equal(t, float64(NovelAttackTraditional), NovelAttackScore(interfaces.ArchitectureTraditional))
	assert.Equal(t, float64(NovelAttackTraditional), NovelAttackScore("quantum"))
}
