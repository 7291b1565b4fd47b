// Package synthesis combines per-dimension model scores into a single ranked
// ordering: min-max normalization across the candidate set, a weighted-sum
// composite, and a deterministic rank assignment.
package synthesis

import (
	"fmt"
	"math"

	"github.com/toyinlola/idsrank/pkg/interfaces"
)

// Default dimension weights for the composite score.
const (
	DefaultWeightDetection  = 0.30
	DefaultWeightASC        = 0.25
	DefaultWeightTCO        = 0.20
	DefaultWeightDeployment = 0.15
	DefaultWeightEfficiency = 0.10
)

// WeightSumTolerance is the maximum drift from 1.0 a supplied weight sum may
// have before the set is renormalized.
const WeightSumTolerance = 0.01

// WeightSet is an immutable convex combination of the five dimension weights.
// The zero value is not usable; construct via NewWeightSet or DefaultWeightSet.
type WeightSet struct {
	weights map[interfaces.Dimension]float64
}

// Adjustment describes a recoverable correction applied during WeightSet
// construction. A nil *Adjustment means the supplied weights were accepted
// as-is.
type Adjustment struct {
	OriginalSum float64
}

func (a *Adjustment) String() string {
	return fmt.Sprintf("weights summed to %.4f, not 1.0; renormalized", a.OriginalSum)
}

// DefaultWeightSet returns a fresh WeightSet with the default weights.
// Each call returns an independent value; there is no shared mutable default.
func DefaultWeightSet() WeightSet {
	ws, _, err := NewWeightSet(map[interfaces.Dimension]float64{
		interfaces.DimensionDetection:  DefaultWeightDetection,
		interfaces.DimensionASC:        DefaultWeightASC,
		interfaces.DimensionTCO:        DefaultWeightTCO,
		interfaces.DimensionDeployment: DefaultWeightDeployment,
		interfaces.DimensionEfficiency: DefaultWeightEfficiency,
	})
	if err != nil {
		panic(err) // defaults are constants that always validate
	}
	return ws
}

// NewWeightSet validates and copies the supplied weights. A missing dimension
// counts as weight zero. Any negative weight fails with InvalidWeightError.
// If the sum deviates from 1.0 by more than WeightSumTolerance, every weight
// is divided by the sum and the returned Adjustment records the original sum.
// Postcondition: the returned set's weights sum to 1.0 within 1e-9.
func NewWeightSet(weights map[interfaces.Dimension]float64) (WeightSet, *Adjustment, error) {
	w := make(map[interfaces.Dimension]float64, len(interfaces.Dimensions()))

	var sum float64
	for _, d := range interfaces.Dimensions() {
		v := weights[d]
		if v < 0 {
			return WeightSet{}, nil, &InvalidWeightError{Dimension: d, Weight: v}
		}
		w[d] = v
		sum += v
	}

	var adj *Adjustment
	if math.Abs(sum-1.0) > WeightSumTolerance {
		if sum == 0 {
			return WeightSet{}, nil, ErrZeroWeightSum
		}
		for d := range w {
			w[d] /= sum
		}
		adj = &Adjustment{OriginalSum: sum}
	}

	return WeightSet{weights: w}, adj, nil
}

// Weight returns the weight for a dimension.
func (w WeightSet) Weight(d interfaces.Dimension) float64 {
	return w.weights[d]
}

// Map returns a copy of the weights, safe for callers to hold or serialize.
func (w WeightSet) Map() map[interfaces.Dimension]float64 {
	out := make(map[interfaces.Dimension]float64, len(w.weights))
	for d, v := range w.weights {
		out[d] = v
	}
	return out
}
