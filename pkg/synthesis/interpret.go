package synthesis

import "github.com/toyinlola/idsrank/pkg/interfaces"

// Default interpretation band thresholds for composite scores.
const (
	DefaultExcellentThreshold = 78
	DefaultVeryGoodThreshold  = 72
	DefaultGoodThreshold      = 65
)

// bandFor maps a composite score to its interpretation band using the
// engine's thresholds.
func (e *Engine) bandFor(score float64) interfaces.Band {
	switch {
	case score >= e.excellentThreshold:
		return interfaces.BandExcellent
	case score >= e.veryGoodThreshold:
		return interfaces.BandVeryGood
	case score >= e.goodThreshold:
		return interfaces.BandGood
	default:
		return interfaces.BandModerate
	}
}

// BandFromScore returns the interpretation band for a composite score using
// the default thresholds.
func BandFromScore(score float64) interfaces.Band {
	e := Engine{
		excellentThreshold: DefaultExcellentThreshold,
		veryGoodThreshold:  DefaultVeryGoodThreshold,
		goodThreshold:      DefaultGoodThreshold,
	}
	return e.bandFor(score)
}
