// Package report generates ranking reports from synthesis results and metric details.
package report

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/toyinlola/idsrank/pkg/interfaces"
)

// Generator builds reports from ranked results and metric calculator output.
type Generator struct{}

// NewGenerator creates a report generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate produces a Report from a ranked result, the weights that produced
// it, any weight adjustment notices, and optional per-calculator metric
// details. The metric slice may be nil when ranking pre-computed scores.
func (g *Generator) Generate(result *interfaces.RankedResult, weights map[interfaces.Dimension]float64, adjustments []string, metrics []*interfaces.MetricResult) *interfaces.Report {
	start := time.Now()

	return &interfaces.Report{
		ID:          generateID(),
		Timestamp:   time.Now(),
		Weights:     weights,
		Entries:     result.Entries,
		Adjustments: adjustments,
		Metrics:     collectMetrics(metrics),
		Duration:    time.Since(start),
	}
}

// collectMetrics keeps the successful metric results, dropping failures.
func collectMetrics(results []*interfaces.MetricResult) []interfaces.MetricResult {
	var kept []interfaces.MetricResult
	for _, r := range results {
		if r == nil || r.Error != nil {
			continue
		}
		kept = append(kept, *r)
	}
	return kept
}

// generateID creates a unique report identifier.
func generateID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b) // best-effort; crypto/rand is reliable
	return fmt.Sprintf("rpt-%x", b)
}
