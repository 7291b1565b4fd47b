package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/toyinlola/idsrank/pkg/cli"
	"github.com/toyinlola/idsrank/pkg/wizard"
	"golang.org/x/term"
)

var force bool

var newCmd = &cobra.Command{
	Use:   "new [file]",
	Short: "Create a models file, interactively when possible",
	Long: `New creates a models file for the evaluate command.

When running in a terminal (TTY), launches an interactive wizard that
collects measurements model by model. In non-interactive environments
(CI, pipes), writes a sample file to edit by hand.

The file defaults to models.yml in the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().BoolVar(&force, "force", false, "overwrite the file if it already exists")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	path := "models.yml"
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("new: %s already exists (use --force to overwrite)", path)
	}

	var file *cli.ModelFile

	// Check TTY from the command's input stream, not os.Stdin directly.
	if isTerminal(cmd.InOrStdin()) {
		entries, err := wizard.RunModelWizard(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return fmt.Errorf("new: %w", err)
		}
		file = &cli.ModelFile{Models: entries}
	} else {
		file = sampleModelFile()
	}

	if err := cli.SaveModels(path, file); err != nil {
		return fmt.Errorf("new: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created %s with %d model(s)\n", path, len(file.Models))
	return nil
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// sampleModelFile returns a two-model starter file with plausible numbers.
func sampleModelFile() *cli.ModelFile {
	return &cli.ModelFile{
		Models: []cli.ModelEntry{
			{
				Name:             "cnn-lstm",
				Accuracy:         97.8,
				F1Score:          97.1,
				Recall:           96.5,
				FPR:              0.018,
				TrainingTimeSec:  5400,
				InferenceTimeSec: 0.004,
				ModelSizeMB:      45,
				EdgeDeployable:   false,
				Architecture:     "hybrid",
				Interpretability: "medium",
			},
			{
				Name:             "random-forest",
				Accuracy:         95.2,
				F1Score:          94.6,
				Recall:           93.8,
				FPR:              0.031,
				TrainingTimeSec:  420,
				InferenceTimeSec: 0.0008,
				ModelSizeMB:      8,
				EdgeDeployable:   true,
				Architecture:     "traditional",
				Interpretability: "high",
			},
		},
	}
}
