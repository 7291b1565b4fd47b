// Package metrics derives the five evaluation dimension values from raw
// model measurements. Each calculator owns one scoring formula and computes
// it for every model in the comparison set, since several formulas (inference
// efficiency, min-max diagnostics) only carry meaning relative to the set.
package metrics

import (
	"context"
	"fmt"
	"sync"

	"github.com/toyinlola/idsrank/pkg/interfaces"
)

// Calculator is the interface individual metric computations implement.
type Calculator interface {
	// Name returns the unique identifier for this calculator.
	Name() string

	// Compute derives per-model values across the whole comparison set.
	Compute(ctx context.Context, models []interfaces.ModelMetrics) (*interfaces.MetricResult, error)
}

// Registry manages a collection of calculators and tracks which are enabled.
type Registry struct {
	mu          sync.RWMutex
	calculators map[string]Calculator
	enabled     map[string]bool
}

// NewRegistry creates an empty calculator registry.
func NewRegistry() *Registry {
	return &Registry{
		calculators: make(map[string]Calculator),
		enabled:     make(map[string]bool),
	}
}

// Register adds a calculator to the registry. It is enabled by default.
// Returns an error if a calculator with the same name is already registered.
func (r *Registry) Register(c Calculator) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := c.Name()
	if _, exists := r.calculators[name]; exists {
		return fmt.Errorf("metrics: %q is already registered", name)
	}

	r.calculators[name] = c
	r.enabled[name] = true
	return nil
}

// Get returns a calculator by name. Returns nil if not found.
func (r *Registry) Get(name string) Calculator {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.calculators[name]
}

// List returns the names of all registered calculators.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.calculators))
	for name := range r.calculators {
		names = append(names, name)
	}
	return names
}

// SetEnabled enables or disables a calculator by name.
// Returns an error if the calculator is not registered.
func (r *Registry) SetEnabled(name string, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.calculators[name]; !exists {
		return fmt.Errorf("metrics: %q is not registered", name)
	}
	r.enabled[name] = enabled
	return nil
}

// IsEnabled reports whether the named calculator is enabled.
func (r *Registry) IsEnabled(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.enabled[name]
}

// EnabledCalculators returns all calculators that are currently enabled.
func (r *Registry) EnabledCalculators() []Calculator {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []Calculator
	for name, c := range r.calculators {
		if r.enabled[name] {
			result = append(result, c)
		}
	}
	return result
}
