package synthesis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toyinlola/idsrank/pkg/interfaces"
)

func weightSum(ws WeightSet) float64 {
	var sum float64
	for _, v := range ws.Map() {
		sum += v
	}
	return sum
}

func TestDefaultWeightSet_SumsToOne(t *testing.T) {
	ws := DefaultWeightSet()

	assert.InDelta(t, 1.0, weightSum(ws), 1e-9)
	assert.Equal(t, 0.30, ws.Weight(interfaces.DimensionDetection))
	assert.Equal(t, 0.25, ws.Weight(interfaces.DimensionASC))
	assert.Equal(t, 0.20, ws.Weight(interfaces.DimensionTCO))
	assert.Equal(t, 0.15, ws.Weight(interfaces.DimensionDeployment))
	assert.Equal(t, 0.10, ws.Weight(interfaces.DimensionEfficiency))
}

func TestNewWeightSet_ValidWeights_NoAdjustment(t *testing.T) {
	ws, adj, err := NewWeightSet(map[interfaces.Dimension]float64{
		interfaces.DimensionDetection:  0.30,
		interfaces.DimensionASC:        0.25,
		interfaces.DimensionTCO:        0.20,
		interfaces.DimensionDeployment: 0.15,
		interfaces.DimensionEfficiency: 0.10,
	})

	require.NoError(t, err)
	assert.Nil(t, adj)
	assert.InDelta(t, 1.0, weightSum(ws), 1e-9)
}

func TestNewWeightSet_SumDrift_RenormalizesAndSignals(t *testing.T) {
	ws, adj, err := NewWeightSet(map[interfaces.Dimension]float64{
		interfaces.DimensionDetection:  0.4,
		interfaces.DimensionASC:        0.3,
		interfaces.DimensionTCO:        0.3,
		interfaces.DimensionDeployment: 0.3,
		interfaces.DimensionEfficiency: 0.3,
	})

	require.NoError(t, err)
	require.NotNil(t, adj)
	assert.InDelta(t, 1.6, adj.OriginalSum, 1e-9)
	assert.InDelta(t, 1.0, weightSum(ws), 1e-9)
	assert.InDelta(t, 0.4/1.6, ws.Weight(interfaces.DimensionDetection), 1e-9)
	assert.InDelta(t, 0.3/1.6, ws.Weight(interfaces.DimensionEfficiency), 1e-9)
	assert.Contains(t, adj.String(), "renormalized")
}

func TestNewWeightSet_SmallDriftWithinTolerance_Accepted(t *testing.T) {
	// Sum is 1.005, inside the 0.01 tolerance: no renormalization.
	ws, adj, err := NewWeightSet(map[interfaces.Dimension]float64{
		interfaces.DimensionDetection:  0.305,
		interfaces.DimensionASC:        0.25,
		interfaces.DimensionTCO:        0.20,
		interfaces.DimensionDeployment: 0.15,
		interfaces.DimensionEfficiency: 0.10,
	})

	require.NoError(t, err)
	assert.Nil(t, adj)
	assert.Equal(t, 0.305, ws.Weight(interfaces.DimensionDetection))
}

func TestNewWeightSet_NegativeWeight_InvalidWeightError(t *testing.T) {
	_, _, err := NewWeightSet(map[interfaces.Dimension]float64{
		interfaces.DimensionDetection:  0.55,
		interfaces.DimensionASC:        0.25,
		interfaces.DimensionTCO:        -0.20,
		interfaces.DimensionDeployment: 0.25,
		interfaces.DimensionEfficiency: 0.15,
	})

	var invalidErr *InvalidWeightError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, interfaces.DimensionTCO, invalidErr.Dimension)
	assert.Equal(t, -0.20, invalidErr.Weight)
}

func TestNewWeightSet_AllZero_ErrZeroWeightSum(t *testing.T) {
	_, _, err := NewWeightSet(map[interfaces.Dimension]float64{})

	assert.True(t, errors.Is(err, ErrZeroWeightSum))
}

func TestNewWeightSet_MissingDimension_TreatedAsZeroThenRenormalized(t *testing.T) {
	// Efficiency omitted: sum is 0.9, so the rest scale up and efficiency
	// stays at zero.
	ws, adj, err := NewWeightSet(map[interfaces.Dimension]float64{
		interfaces.DimensionDetection:  0.30,
		interfaces.DimensionASC:        0.25,
		interfaces.DimensionTCO:        0.20,
		interfaces.DimensionDeployment: 0.15,
	})

	require.NoError(t, err)
	require.NotNil(t, adj)
	assert.Zero(t, ws.Weight(interfaces.DimensionEfficiency))
	assert.InDelta(t, 1.0, weightSum(ws), 1e-9)
}

func TestWeightSet_Immutable(t *testing.T) {
	input := map[interfaces.Dimension]float64{
		interfaces.DimensionDetection:  0.30,
		interfaces.DimensionASC:        0.25,
		interfaces.DimensionTCO:        0.20,
		interfaces.DimensionDeployment: 0.15,
		interfaces.DimensionEfficiency: 0.10,
	}
	ws, _, err := NewWeightSet(input)
	require.NoError(t, err)

	// Mutating the caller's map must not affect the constructed set.
	input[interfaces.DimensionDetection] = 99

	assert.Equal(t, 0.30, ws.Weight(interfaces.DimensionDetection))

	// Mutating a Map() copy must not affect the set either.
	m := ws.Map()
	m[interfaces.DimensionASC] = 99
	assert.Equal(t, 0.25, ws.Weight(interfaces.DimensionASC))
}
