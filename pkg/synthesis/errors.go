package synthesis

import (
	"errors"
	"fmt"

	"github.com/toyinlola/idsrank/pkg/interfaces"
)

// ErrEmptyCandidateSet is returned by Rank when given zero candidates.
var ErrEmptyCandidateSet = errors.New("synthesis: candidate set is empty")

// ErrZeroWeightSum is returned by NewWeightSet when every weight is zero,
// leaving nothing to renormalize.
var ErrZeroWeightSum = errors.New("synthesis: weights sum to zero")

// InvalidWeightError reports a negative weight in a proposed weight set.
type InvalidWeightError struct {
	Dimension interfaces.Dimension
	Weight    float64
}

func (e *InvalidWeightError) Error() string {
	return fmt.Sprintf("synthesis: weight for %s is negative (%g)", e.Dimension, e.Weight)
}

// DuplicateNameError reports two candidates sharing a name, which would make
// the ranking identity ambiguous.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("synthesis: duplicate candidate name %q", e.Name)
}
