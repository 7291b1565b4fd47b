package metrics

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/toyinlola/idsrank/pkg/interfaces"
)

// Engine orchestrates running all enabled calculators against a model set.
type Engine struct {
	registry *Registry
}

// NewEngine creates a metrics engine backed by the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{registry: registry}
}

// Run executes all enabled calculators against the model set in parallel.
// A failing calculator does not stop other calculators from running.
// Returns results for every enabled calculator, including those that errored.
// Respects context cancellation.
func (e *Engine) Run(ctx context.Context, models []interfaces.ModelMetrics) ([]*interfaces.MetricResult, error) {
	if len(models) == 0 {
		return nil, fmt.Errorf("metrics: model set must not be empty")
	}

	calculators := e.registry.EnabledCalculators()
	if len(calculators) == 0 {
		slog.Info("no enabled calculators to run")
		return nil, nil
	}

	slog.Info("starting metric computation", "calculator_count", len(calculators), "models", len(models))

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make([]*interfaces.MetricResult, 0, len(calculators))
	)

	for _, c := range calculators {
		wg.Add(1)
		go func(c Calculator) {
			defer wg.Done()

			// Check for context cancellation before starting.
			if ctx.Err() != nil {
				return
			}

			name := c.Name()
			start := time.Now()
			slog.Debug("running calculator", "name", name)

			result, err := c.Compute(ctx, models)
			elapsed := time.Since(start)

			if err != nil {
				slog.Error("calculator failed", "name", name, "error", err, "duration", elapsed)
				result = &interfaces.MetricResult{
					CalculatorName: name,
					Duration:       elapsed,
					Error:          fmt.Errorf("calculator %s: %w", name, err),
				}
			} else {
				result.Duration = elapsed
				slog.Debug("calculator complete", "name", name, "duration", elapsed)
			}

			mu.Lock()
			results = append(results, result)
			mu.Unlock()
		}(c)
	}

	// Wait for all calculators or context cancellation.
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		// All calculators finished.
	case <-ctx.Done():
		slog.Warn("metric computation cancelled", "error", ctx.Err())
		// Wait for in-flight goroutines to notice cancellation and finish.
		<-done
		return results, ctx.Err()
	}

	return results, nil
}

// Candidates assembles synthesis candidates from metric results, preserving
// the input order of the model set. It fails if any synthesis dimension is
// missing a value for any model, which happens when the owning calculator
// errored or was disabled.
func Candidates(models []interfaces.ModelMetrics, results []*interfaces.MetricResult) ([]interfaces.Candidate, error) {
	byDimension := make(map[interfaces.Dimension]*interfaces.MetricResult)
	for _, r := range results {
		if r == nil || r.Error != nil || r.Dimension == "" {
			continue
		}
		byDimension[r.Dimension] = r
	}

	candidates := make([]interfaces.Candidate, 0, len(models))
	for _, m := range models {
		scores := make(map[interfaces.Dimension]float64, len(interfaces.Dimensions()))
		for _, d := range interfaces.Dimensions() {
			r, ok := byDimension[d]
			if !ok {
				return nil, fmt.Errorf("metrics: no result for dimension %s", d)
			}
			v, ok := r.Values[m.Name]
			if !ok {
				return nil, fmt.Errorf("metrics: calculator %s produced no value for model %q", r.CalculatorName, m.Name)
			}
			scores[d] = v
		}
		candidates = append(candidates, interfaces.Candidate{Name: m.Name, Scores: scores})
	}
	return candidates, nil
}
