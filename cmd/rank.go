package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/toyinlola/idsrank/pkg/cli"
	"github.com/toyinlola/idsrank/pkg/interfaces"
	"github.com/toyinlola/idsrank/pkg/report"
	"github.com/toyinlola/idsrank/pkg/synthesis"
)

var rankCmd = &cobra.Command{
	Use:   "rank <candidates.yml>",
	Short: "Rank pre-scored candidates by weighted composite",
	Long: `Rank reads a candidates file with one score per dimension per model,
normalizes the cost-like dimensions across the set, and prints the
weighted ranking.

Weights come from the candidates file if present, then the config file,
then the built-in defaults:

  idsrank rank ./candidates.yml
  idsrank rank ./candidates.yml --format json -o ranking.json`,
	Args: cobra.ExactArgs(1),
	RunE: runRank,
}

func init() {
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	// 1. Load configuration.
	cfg, err := cli.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("rank: %w", err)
	}

	// 2. Load the candidate scores.
	file, err := cli.LoadCandidates(args[0])
	if err != nil {
		return fmt.Errorf("rank: %w", err)
	}

	candidates := make([]interfaces.Candidate, 0, len(file.Candidates))
	for _, entry := range file.Candidates {
		candidates = append(candidates, entry.Candidate())
	}

	slog.Info("candidates loaded", "path", args[0], "count", len(candidates))

	// 3. Resolve weights: file > config > defaults.
	weights, adjustments, err := resolveWeights(file.Weights, cfg)
	if err != nil {
		return fmt.Errorf("rank: %w", err)
	}

	// 4. Rank.
	engine := synthesis.NewEngine()
	result, err := engine.Rank(candidates, weights)
	if err != nil {
		return fmt.Errorf("rank: %w", err)
	}

	slog.Debug("ranking complete", "entries", len(result.Entries))

	// 5. Generate and write the report.
	gen := report.NewGenerator()
	rpt := gen.Generate(result, weights.Map(), adjustments, nil)

	if err := writeReport(rpt); err != nil {
		return fmt.Errorf("rank: %w", err)
	}
	return nil
}
