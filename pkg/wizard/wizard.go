// Package wizard collects model measurements interactively.
package wizard

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/toyinlola/idsrank/pkg/cli"
	"golang.org/x/term"
)

// RunModelWizard runs an interactive huh form collecting one or more models.
// It loops with an "add another" confirm until the user stops.
func RunModelWizard(in io.Reader, out io.Writer) ([]cli.ModelEntry, error) {
	var entries []cli.ModelEntry

	for {
		entry, err := runModelForm(in, out)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)

		more, err := askAddAnother(in, out)
		if err != nil {
			return nil, err
		}
		if !more {
			return entries, nil
		}
	}
}

func runModelForm(in io.Reader, out io.Writer) (*cli.ModelEntry, error) {
	var (
		name          string
		accuracy      string
		f1            string
		recall        string
		fpr           string
		trainingTime  string
		inferenceTime string
		modelSize     string
		edge          bool
		arch          string
		interp        string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Model name").
				Placeholder("cnn-lstm").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Accuracy (%)").
				Placeholder("97.5").
				Value(&accuracy).
				Validate(validatePercent),
			huh.NewInput().
				Title("F1 score (%)").
				Placeholder("96.8").
				Value(&f1).
				Validate(validatePercent),
			huh.NewInput().
				Title("Recall / TPR (%)").
				Placeholder("95.0").
				Value(&recall).
				Validate(validatePercent),
			huh.NewInput().
				Title("False positive rate (fraction)").
				Description("Between 0 and 1, e.g. 0.02").
				Placeholder("0.02").
				Value(&fpr).
				Validate(validateFraction),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Training time (seconds)").
				Placeholder("3600").
				Value(&trainingTime).
				Validate(validatePositive),
			huh.NewInput().
				Title("Inference time per sample (seconds)").
				Placeholder("0.002").
				Value(&inferenceTime).
				Validate(validatePositive),
			huh.NewInput().
				Title("Model size (MB)").
				Placeholder("45").
				Value(&modelSize).
				Validate(validatePositive),
			huh.NewConfirm().
				Title("Validated on edge hardware?").
				Value(&edge),
			huh.NewSelect[string]().
				Title("Architecture").
				Options(
					huh.NewOption("attention", "attention"),
					huh.NewOption("hybrid", "hybrid"),
					huh.NewOption("traditional", "traditional"),
				).
				Value(&arch),
			huh.NewSelect[string]().
				Title("Interpretability").
				Options(
					huh.NewOption("high (trees, rules)", "high"),
					huh.NewOption("medium (hybrid)", "medium"),
					huh.NewOption("low (deep networks)", "low"),
				).
				Value(&interp),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if !isTTY(in) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	return &cli.ModelEntry{
		Name:             strings.TrimSpace(name),
		Accuracy:         mustFloat(accuracy),
		F1Score:          mustFloat(f1),
		Recall:           mustFloat(recall),
		FPR:              mustFloat(fpr),
		TrainingTimeSec:  mustFloat(trainingTime),
		InferenceTimeSec: mustFloat(inferenceTime),
		ModelSizeMB:      mustFloat(modelSize),
		EdgeDeployable:   edge,
		Architecture:     arch,
		Interpretability: interp,
	}, nil
}

func askAddAnother(in io.Reader, out io.Writer) (bool, error) {
	var more bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Add another model?").
				Value(&more),
		),
	).
		WithInput(in).
		WithOutput(out)

	if !isTTY(in) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("wizard failed: %w", err)
	}
	return more, nil
}

func isTTY(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// mustFloat parses a value already accepted by a form validator.
func mustFloat(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

func validatePercent(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v < 0 || v > 100 {
		return fmt.Errorf("must be between 0 and 100")
	}
	return nil
}

func validateFraction(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v < 0 || v > 1 {
		return fmt.Errorf("must be between 0 and 1")
	}
	return nil
}

func validatePositive(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v <= 0 {
		return fmt.Errorf("must be greater than zero")
	}
	return nil
}
