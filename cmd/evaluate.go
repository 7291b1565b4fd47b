package cmd

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toyinlola/idsrank/pkg/cli"
	"github.com/toyinlola/idsrank/pkg/interfaces"
	"github.com/toyinlola/idsrank/pkg/metrics"
	"github.com/toyinlola/idsrank/pkg/report"
	"github.com/toyinlola/idsrank/pkg/synthesis"
)

var disabledCalculators []string

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <models.yml>",
	Short: "Evaluate raw model measurements and rank the results",
	Long: `Evaluate reads raw model measurements, runs the metric calculators to
derive all five dimension scores, and ranks the models by weighted
composite.

  idsrank evaluate ./models.yml
  idsrank evaluate ./models.yml --format markdown -o report.md

Disabling a diagnostic calculator skips its computation; disabling one
that feeds a synthesis dimension makes the run fail, since every
dimension needs a value:

  idsrank evaluate ./models.yml --disable pfo`,
	Args: cobra.ExactArgs(1),
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringSliceVar(&disabledCalculators, "disable", nil, "calculator to skip, repeatable")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. Load configuration.
	cfg, err := cli.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}

	// 2. Load the raw measurements.
	file, err := cli.LoadModels(args[0])
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}

	modelMetrics := make([]interfaces.ModelMetrics, 0, len(file.Models))
	for _, entry := range file.Models {
		modelMetrics = append(modelMetrics, entry.Metrics())
	}

	slog.Info("models loaded", "path", args[0], "count", len(modelMetrics))

	// 3. Build the calculator registry and run everything in parallel.
	registry := metrics.NewRegistry()
	registerCalculators(registry, cfg)

	for _, name := range disabledCalculators {
		if registry.Get(name) == nil {
			names := registry.List()
			sort.Strings(names)
			return fmt.Errorf("evaluate: unknown calculator %q (available: %s)", name, strings.Join(names, ", "))
		}
		_ = registry.SetEnabled(name, false)
		slog.Debug("calculator disabled", "name", name)
	}

	engine := metrics.NewEngine(registry)
	results, err := engine.Run(ctx, modelMetrics)
	if err != nil {
		return fmt.Errorf("evaluate: running calculators: %w", err)
	}

	for _, r := range results {
		if r.Error != nil {
			slog.Warn("calculator failed", "calculator", r.CalculatorName, "error", r.Error)
		}
	}

	// 4. Assemble candidates from the calculator output.
	candidates, err := metrics.Candidates(modelMetrics, results)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}

	// 5. Resolve weights and rank.
	weights, adjustments, err := resolveWeights(file.Weights, cfg)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}

	synth := synthesis.NewEngine()
	result, err := synth.Rank(candidates, weights)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}

	// 6. Generate and write the report, with per-calculator details attached.
	gen := report.NewGenerator()
	rpt := gen.Generate(result, weights.Map(), adjustments, results)

	if err := writeReport(rpt); err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}
	return nil
}

// registerCalculators adds all metric calculators to the registry, with TCO
// parameters taken from config.
func registerCalculators(registry *metrics.Registry, cfg *cli.Config) {
	_ = registry.Register(metrics.NewDetectionCalculator())
	_ = registry.Register(metrics.NewASCCalculator())
	_ = registry.Register(metrics.NewTCOCalculator(
		metrics.WithCostParams(cfg.Costs.Params()),
	))
	_ = registry.Register(metrics.NewDeploymentCalculator())
	_ = registry.Register(metrics.NewEfficiencyCalculator())
	_ = registry.Register(metrics.NewPFOCalculator())
}
