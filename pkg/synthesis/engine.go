package synthesis

import (
	"sort"

	"github.com/toyinlola/idsrank/pkg/interfaces"
)

// Engine ranks a candidate set under a weight set. It holds no per-run state,
// so a single Engine may be shared across concurrent ranking runs.
type Engine struct {
	excellentThreshold float64
	veryGoodThreshold  float64
	goodThreshold      float64
}

// Option configures the Engine.
type Option func(*Engine)

// WithBandThresholds overrides the default interpretation band boundaries.
func WithBandThresholds(excellent, veryGood, good float64) Option {
	return func(e *Engine) {
		e.excellentThreshold = excellent
		e.veryGoodThreshold = veryGood
		e.goodThreshold = good
	}
}

// NewEngine creates a ranking engine with optional configuration.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		excellentThreshold: DefaultExcellentThreshold,
		veryGoodThreshold:  DefaultVeryGoodThreshold,
		goodThreshold:      DefaultGoodThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// dimensionBounds holds the observed min/max of one dimension across the set.
type dimensionBounds struct {
	min, max float64
}

// Rank produces a total order over the candidates.
//
// Per normalized dimension the min and max raw value are computed across the
// whole input, each candidate's raw values are converted to 0-100 scores
// (detection and ASC pass through unchanged), and the composite is the
// weighted sum over all five dimensions. Candidates are sorted by composite
// descending with a stable sort, so equal composites keep their original
// relative input order. Ranks run 1..N.
//
// A single-candidate input is valid: every normalized dimension degenerates
// to its fixed neutral value.
//
// Rank fails with ErrEmptyCandidateSet on zero candidates and with
// DuplicateNameError when two candidates share a name. The input slice and
// its candidates are never mutated or retained.
func (e *Engine) Rank(candidates []interfaces.Candidate, weights WeightSet) (*interfaces.RankedResult, error) {
	if len(candidates) == 0 {
		return nil, ErrEmptyCandidateSet
	}

	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		if _, dup := seen[c.Name]; dup {
			return nil, &DuplicateNameError{Name: c.Name}
		}
		seen[c.Name] = struct{}{}
	}

	bounds := make(map[interfaces.Dimension]dimensionBounds)
	for _, d := range interfaces.Dimensions() {
		if !d.RequiresNormalization() {
			continue
		}
		lo, hi := candidates[0].Scores[d], candidates[0].Scores[d]
		for _, c := range candidates[1:] {
			v := c.Scores[d]
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		bounds[d] = dimensionBounds{min: lo, max: hi}
	}

	entries := make([]interfaces.RankedEntry, 0, len(candidates))
	for _, c := range candidates {
		normalized := make(map[interfaces.Dimension]float64, len(interfaces.Dimensions()))
		var composite float64

		for _, d := range interfaces.Dimensions() {
			v := c.Scores[d]
			if d.RequiresNormalization() {
				b := bounds[d]
				v = Normalize(v, b.min, b.max, d.LowerIsBetter())
			}
			normalized[d] = v
			composite += weights.Weight(d) * v
		}

		entries = append(entries, interfaces.RankedEntry{
			Name:       c.Name,
			Normalized: normalized,
			Composite:  composite,
			Band:       e.bandFor(composite),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Composite > entries[j].Composite
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return &interfaces.RankedResult{Entries: entries}, nil
}
