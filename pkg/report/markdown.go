package report

import (
	"fmt"
	"io"

	"github.com/toyinlola/idsrank/pkg/interfaces"
)

// MarkdownFormatter writes a report as Markdown suitable for docs or PR comments.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a Markdown report formatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format writes the report as Markdown to the given writer.
func (f *MarkdownFormatter) Format(w io.Writer, report *interfaces.Report) error {
	f.writeHeader(w, report)
	f.writeRankings(w, report)
	f.writeScores(w, report)
	f.writeWeights(w, report)
	f.writeCostBreakdown(w, report)
	f.writeFooter(w, report)
	return nil
}

func (f *MarkdownFormatter) writeHeader(w io.Writer, report *interfaces.Report) {
	fmt.Fprintf(w, "# IDS Model Ranking Report %s\n\n", topBandBadge(report))
	for _, adj := range report.Adjustments {
		fmt.Fprintf(w, "> ⚠️ %s\n\n", adj)
	}
}

func (f *MarkdownFormatter) writeRankings(w io.Writer, report *interfaces.Report) {
	fmt.Fprintln(w, "| Rank | Model | Composite | Band |")
	fmt.Fprintln(w, "|------|-------|-----------|------|")
	for _, e := range report.Entries {
		name := e.Name
		if e.Rank == 1 {
			name = fmt.Sprintf("**%s** ★", name)
		}
		fmt.Fprintf(w, "| %d | %s | %.2f | %s |\n", e.Rank, name, e.Composite, e.Band)
	}
	fmt.Fprintln(w)
}

func (f *MarkdownFormatter) writeScores(w io.Writer, report *interfaces.Report) {
	fmt.Fprintln(w, "## Normalized Scores")
	fmt.Fprintln(w)

	fmt.Fprint(w, "| Model |")
	for _, d := range interfaces.Dimensions() {
		fmt.Fprintf(w, " %s |", dimensionLabel(d))
	}
	fmt.Fprintln(w)

	fmt.Fprint(w, "|-------|")
	for range interfaces.Dimensions() {
		fmt.Fprint(w, "------|")
	}
	fmt.Fprintln(w)

	for _, e := range report.Entries {
		fmt.Fprintf(w, "| %s |", e.Name)
		for _, d := range interfaces.Dimensions() {
			fmt.Fprintf(w, " %.2f |", e.Normalized[d])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

func (f *MarkdownFormatter) writeWeights(w io.Writer, report *interfaces.Report) {
	fmt.Fprintln(w, "## Weights")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Dimension | Weight |")
	fmt.Fprintln(w, "|-----------|--------|")
	for _, d := range interfaces.Dimensions() {
		fmt.Fprintf(w, "| %s | %.2f |\n", dimensionLabel(d), report.Weights[d])
	}
	fmt.Fprintln(w)
}

func (f *MarkdownFormatter) writeCostBreakdown(w io.Writer, report *interfaces.Report) {
	tco := findMetric(report, interfaces.DimensionTCO)
	if tco == nil || len(tco.Breakdown) == 0 {
		return
	}

	fmt.Fprintln(w, "## 5-Year TCO Breakdown")
	fmt.Fprintln(w)

	for _, e := range report.Entries {
		components, ok := tco.Breakdown[e.Name]
		if !ok {
			continue
		}

		fmt.Fprintf(w, "<details>\n")
		fmt.Fprintf(w, "<summary><strong>%s</strong> — %s</summary>\n\n", e.Name, FormatCurrency(tco.Values[e.Name]))
		fmt.Fprintln(w, "| Component | Cost |")
		fmt.Fprintln(w, "|-----------|------|")
		for _, key := range costComponentOrder {
			value, ok := components[key]
			if !ok {
				continue
			}
			fmt.Fprintf(w, "| %s | %s |\n", costComponentLabel(key), FormatCurrency(value))
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "</details>")
		fmt.Fprintln(w)
	}
}

func (f *MarkdownFormatter) writeFooter(w io.Writer, report *interfaces.Report) {
	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "*Report ID: %s | Generated: %s*\n",
		report.ID, report.Timestamp.Format("2006-01-02 15:04:05"))
}

// topBandBadge returns a text badge based on the top-ranked model's band.
func topBandBadge(report *interfaces.Report) string {
	if len(report.Entries) == 0 {
		return "⚪"
	}
	switch report.Entries[0].Band {
	case interfaces.BandExcellent:
		return "🟢"
	case interfaces.BandVeryGood, interfaces.BandGood:
		return "🟡"
	default:
		return "🔴"
	}
}
