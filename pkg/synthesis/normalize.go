package synthesis

// Normalize converts a raw metric value into a 0-100 score using min-max
// scaling against the observed bounds of the comparison set.
//
// When lowerIsBetter is set (cost-like metrics), the scale is inverted so the
// smallest raw value maps to 100.
//
// Degenerate range policy: when max == min the dimension carries no
// discriminating signal. Every candidate shares the metric value, so the
// score is the fixed neutral value for the direction: 100 for lowerIsBetter
// (the common value is the lowest cost achievable in the set), 0 otherwise.
// This applies uniformly, including single-candidate sets.
//
// The result is clamped to [0,100] to absorb floating-point drift at the
// boundaries.
func Normalize(value, min, max float64, lowerIsBetter bool) float64 {
	if max == min {
		if lowerIsBetter {
			return 100
		}
		return 0
	}

	var score float64
	if lowerIsBetter {
		score = ((max - value) / (max - min)) * 100
	} else {
		score = ((value - min) / (max - min)) * 100
	}

	return clamp(score, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
