package synthesis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_HigherIsBetter_LinearScaling(t *testing.T) {
	assert.InDelta(t, 0, Normalize(10, 10, 20, false), 1e-9)
	assert.InDelta(t, 50, Normalize(15, 10, 20, false), 1e-9)
	assert.InDelta(t, 100, Normalize(20, 10, 20, false), 1e-9)
}

func TestNormalize_LowerIsBetter_InvertedScaling(t *testing.T) {
	// Lowest cost wins.
	assert.InDelta(t, 100, Normalize(300000, 300000, 500000, true), 1e-9)
	assert.InDelta(t, 50, Normalize(400000, 300000, 500000, true), 1e-9)
	assert.InDelta(t, 0, Normalize(500000, 300000, 500000, true), 1e-9)
}

func TestNormalize_DegenerateRange_FixedPolicy(t *testing.T) {
	// All candidates share the value: 100 for inverse (cost) direction,
	// 0 for the direct direction.
	assert.Equal(t, 100.0, Normalize(42, 42, 42, true))
	assert.Equal(t, 0.0, Normalize(42, 42, 42, false))
}

func TestNormalize_OutOfRangeValue_Clamped(t *testing.T) {
	assert.Equal(t, 100.0, Normalize(25, 10, 20, false))
	assert.Equal(t, 0.0, Normalize(5, 10, 20, false))
	assert.Equal(t, 100.0, Normalize(5, 10, 20, true))
	assert.Equal(t, 0.0, Normalize(25, 10, 20, true))
}

func TestNormalize_Monotonicity(t *testing.T) {
	const min, max = 1.0, 9.0

	prev := Normalize(min, min, max, false)
	for v := min + 0.5; v <= max; v += 0.5 {
		cur := Normalize(v, min, max, false)
		assert.GreaterOrEqual(t, cur, prev, "higher-is-better must be non-decreasing at %v", v)
		prev = cur
	}

	prev = Normalize(min, min, max, true)
	for v := min + 0.5; v <= max; v += 0.5 {
		cur := Normalize(v, min, max, true)
		assert.LessOrEqual(t, cur, prev, "lower-is-better must be non-increasing at %v", v)
		prev = cur
	}
}

func TestBandFromScore_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{90.25, "Excellent"},
		{78, "Excellent"},
		{77.99, "Very Good"},
		{72, "Very Good"},
		{71.99, "Good"},
		{65, "Good"},
		{64.99, "Moderate"},
		{0, "Moderate"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, string(BandFromScore(tt.score)), "score %v", tt.score)
	}
}
