package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/toyinlola/idsrank/pkg/cli"
	"github.com/toyinlola/idsrank/pkg/interfaces"
	"github.com/toyinlola/idsrank/pkg/report"
	"github.com/toyinlola/idsrank/pkg/synthesis"
)

// formatter writes a structured report to a writer.
type formatter interface {
	Format(w io.Writer, report *interfaces.Report) error
}

// selectFormatter returns the appropriate report formatter for the given format name.
func selectFormatter(name string) formatter {
	switch name {
	case "json":
		return report.NewJSONFormatter()
	case "markdown":
		return report.NewMarkdownFormatter()
	default:
		return report.NewTerminalFormatter()
	}
}

// writeReport formats the report to the --output file, or stdout when unset.
func writeReport(rpt *interfaces.Report) error {
	f := selectFormatter(format)

	var w io.Writer = os.Stdout
	if output != "" {
		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer file.Close() // best-effort cleanup
		w = file
	}

	if err := f.Format(w, rpt); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// resolveWeights builds the weight set with file weights taking precedence
// over config weights, falling back to the defaults. A renormalization is
// logged and reported, not fatal.
func resolveWeights(fileWeights *cli.WeightsConfig, cfg *cli.Config) (synthesis.WeightSet, []string, error) {
	var raw map[interfaces.Dimension]float64

	switch {
	case fileWeights != nil && fileWeights.IsSet():
		raw = fileWeights.Map()
	case cfg.Weights.IsSet():
		raw = cfg.Weights.Map()
	default:
		return synthesis.DefaultWeightSet(), nil, nil
	}

	weights, adj, err := synthesis.NewWeightSet(raw)
	if err != nil {
		return synthesis.WeightSet{}, nil, err
	}

	var adjustments []string
	if adj != nil {
		slog.Warn("weights renormalized", "original_sum", adj.OriginalSum)
		adjustments = append(adjustments, adj.String())
	}
	return weights, adjustments, nil
}
