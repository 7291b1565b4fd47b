// Package tests provides integration test utilities for the idsrank pipeline.
package tests

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/toyinlola/idsrank/pkg/cli"
	"github.com/toyinlola/idsrank/pkg/interfaces"
	"github.com/toyinlola/idsrank/pkg/metrics"
	"github.com/toyinlola/idsrank/pkg/report"
	"github.com/toyinlola/idsrank/pkg/synthesis"
)

// fixturesDir returns the absolute path to the test fixtures directory.
func fixturesDir() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "fixtures")
}

// LoadFixtureModels loads a fixture models file by name (e.g., "balanced"
// loads "models/balanced.yml").
func LoadFixtureModels(t *testing.T, name string) []interfaces.ModelMetrics {
	t.Helper()

	path := filepath.Join(fixturesDir(), "models", name+".yml")
	file, err := cli.LoadModels(path)
	if err != nil {
		t.Fatalf("LoadFixtureModels(%q): %v", name, err)
	}

	models := make([]interfaces.ModelMetrics, 0, len(file.Models))
	for _, entry := range file.Models {
		models = append(models, entry.Metrics())
	}
	return models
}

// PipelineResult holds the output of a full pipeline run.
type PipelineResult struct {
	Models     []interfaces.ModelMetrics
	Results    []*interfaces.MetricResult
	Candidates []interfaces.Candidate
	Ranked     *interfaces.RankedResult
	Report     *interfaces.Report
}

// RunPipeline executes the full evaluation pipeline (calculate → assemble →
// rank → report) with default weights and returns all intermediate results.
func RunPipeline(t *testing.T, models []interfaces.ModelMetrics) *PipelineResult {
	return RunPipelineWeighted(t, models, synthesis.DefaultWeightSet())
}

// RunPipelineWeighted is RunPipeline with explicit weights.
func RunPipelineWeighted(t *testing.T, models []interfaces.ModelMetrics, weights synthesis.WeightSet) *PipelineResult {
	t.Helper()
	ctx := context.Background()

	// Set up the calculator registry with all calculators.
	registry := metrics.NewRegistry()
	for _, c := range []metrics.Calculator{
		metrics.NewDetectionCalculator(),
		metrics.NewASCCalculator(),
		metrics.NewTCOCalculator(),
		metrics.NewDeploymentCalculator(),
		metrics.NewEfficiencyCalculator(),
		metrics.NewPFOCalculator(),
	} {
		if err := registry.Register(c); err != nil {
			t.Fatalf("registering calculator %s: %v", c.Name(), err)
		}
	}

	// Run all calculators.
	engine := metrics.NewEngine(registry)
	results, err := engine.Run(ctx, models)
	if err != nil {
		t.Fatalf("engine.Run: %v", err)
	}

	// Assemble candidates and rank.
	candidates, err := metrics.Candidates(models, results)
	if err != nil {
		t.Fatalf("metrics.Candidates: %v", err)
	}

	synth := synthesis.NewEngine()
	ranked, err := synth.Rank(candidates, weights)
	if err != nil {
		t.Fatalf("synth.Rank: %v", err)
	}

	// Generate report.
	gen := report.NewGenerator()
	rpt := gen.Generate(ranked, weights.Map(), nil, results)

	return &PipelineResult{
		Models:     models,
		Results:    results,
		Candidates: candidates,
		Ranked:     ranked,
		Report:     rpt,
	}
}

// AssertRankOrder asserts that the ranked result lists exactly these names,
// in this order.
func AssertRankOrder(t *testing.T, ranked *interfaces.RankedResult, names ...string) {
	t.Helper()
	if len(ranked.Entries) != len(names) {
		t.Fatalf("ranking has %d entries, want %d", len(ranked.Entries), len(names))
	}
	for i, want := range names {
		if got := ranked.Entries[i].Name; got != want {
			t.Errorf("rank %d = %q, want %q", i+1, got, want)
		}
	}
}

// AssertBand asserts that the named entry carries the expected band.
func AssertBand(t *testing.T, ranked *interfaces.RankedResult, name string, want interfaces.Band) {
	t.Helper()
	for _, e := range ranked.Entries {
		if e.Name == name {
			if e.Band != want {
				t.Errorf("band for %q = %q, want %q", name, e.Band, want)
			}
			return
		}
	}
	t.Errorf("no entry named %q in ranking", name)
}

// NormalizedScore returns the normalized value of one dimension for one entry.
func NormalizedScore(t *testing.T, ranked *interfaces.RankedResult, name string, d interfaces.Dimension) float64 {
	t.Helper()
	for _, e := range ranked.Entries {
		if e.Name == name {
			return e.Normalized[d]
		}
	}
	t.Fatalf("no entry named %q in ranking", name)
	return 0
}

// Formatter is the interface shared by all report formatters.
type Formatter interface {
	Format(w io.Writer, report *interfaces.Report) error
}

// FormatReport formats a report using the given formatter and returns the output as a string.
func FormatReport(t *testing.T, formatter Formatter, rpt *interfaces.Report) string {
	t.Helper()
	var buf bytes.Buffer
	if err := formatter.Format(&buf, rpt); err != nil {
		t.Fatalf("formatter.Format: %v", err)
	}
	return buf.String()
}
