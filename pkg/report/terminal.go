package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/toyinlola/idsrank/pkg/interfaces"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

// costComponentOrder fixes the display order of TCO breakdown components.
var costComponentOrder = []string{
	"deployment",
	"operational",
	"incident_response",
	"scalability",
	"compliance",
}

// TerminalFormatter writes a color-coded report to a terminal.
type TerminalFormatter struct{}

// NewTerminalFormatter creates a terminal report formatter.
func NewTerminalFormatter() *TerminalFormatter {
	return &TerminalFormatter{}
}

// Format writes the report to the given writer using ANSI colors.
func (f *TerminalFormatter) Format(w io.Writer, report *interfaces.Report) error {
	f.writeHeader(w)
	f.writeScores(w, report)
	f.writeContributions(w, report)
	f.writeCostBreakdown(w, report)
	f.writeRankings(w, report)
	f.writeFooter(w, report)
	return nil
}

func (f *TerminalFormatter) writeHeader(w io.Writer) {
	fmt.Fprintf(w, "\n%s%s══════════════════════════════════════════%s\n", colorBold, colorCyan, colorReset)
	fmt.Fprintf(w, "%s%s  IDS Model Ranking Report%s\n", colorBold, colorCyan, colorReset)
	fmt.Fprintf(w, "%s%s══════════════════════════════════════════%s\n\n", colorBold, colorCyan, colorReset)
}

func (f *TerminalFormatter) writeScores(w io.Writer, report *interfaces.Report) {
	fmt.Fprintf(w, "  %s%sNormalized Scores (0-100)%s\n", colorBold, colorCyan, colorReset)

	nameW := nameColumnWidth(report.Entries)
	fmt.Fprintf(w, "  %s%s", colorDim, pad("Model", nameW))
	for _, d := range interfaces.Dimensions() {
		fmt.Fprintf(w, "  %10s", dimensionLabel(d))
	}
	fmt.Fprintf(w, "%s\n", colorReset)

	for _, e := range report.Entries {
		fmt.Fprintf(w, "  %s", pad(e.Name, nameW))
		for _, d := range interfaces.Dimensions() {
			fmt.Fprintf(w, "  %10.2f", e.Normalized[d])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

func (f *TerminalFormatter) writeContributions(w io.Writer, report *interfaces.Report) {
	fmt.Fprintf(w, "  %s%sWeighted Contributions%s\n", colorBold, colorCyan, colorReset)

	for _, e := range report.Entries {
		fmt.Fprintf(w, "  %s%s%s\n", colorBold, e.Name, colorReset)
		for _, d := range interfaces.Dimensions() {
			weight := report.Weights[d]
			fmt.Fprintf(w, "    %-12s %7.2f × %.2f = %6.2f\n",
				string(d), e.Normalized[d], weight, e.Normalized[d]*weight)
		}
		fmt.Fprintf(w, "    %-12s %s= %6.2f%s\n", "composite", strings.Repeat(" ", 15), e.Composite, colorReset)
	}
	fmt.Fprintln(w)
}

func (f *TerminalFormatter) writeCostBreakdown(w io.Writer, report *interfaces.Report) {
	tco := findMetric(report, interfaces.DimensionTCO)
	if tco == nil || len(tco.Breakdown) == 0 {
		return
	}

	fmt.Fprintf(w, "  %s%s5-Year TCO Breakdown%s\n", colorBold, colorCyan, colorReset)

	for _, e := range report.Entries {
		components, ok := tco.Breakdown[e.Name]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %s%s%s — %s\n", colorBold, e.Name, colorReset, FormatCurrency(tco.Values[e.Name]))
		for _, key := range costComponentOrder {
			value, ok := components[key]
			if !ok {
				continue
			}
			fmt.Fprintf(w, "    %s%-18s %12s%s\n", colorDim, costComponentLabel(key), FormatCurrency(value), colorReset)
		}
	}
	fmt.Fprintln(w)
}

func (f *TerminalFormatter) writeRankings(w io.Writer, report *interfaces.Report) {
	fmt.Fprintf(w, "  %s%sFinal Rankings%s\n", colorBold, colorCyan, colorReset)

	nameW := nameColumnWidth(report.Entries)
	for _, e := range report.Entries {
		color := bandColor(e.Band)
		star := "  "
		if e.Rank == 1 {
			star = " ★"
		}
		fmt.Fprintf(w, "  %s%d. %s  %6.2f  %s%s%s\n",
			color, e.Rank, pad(e.Name, nameW), e.Composite, e.Band, star, colorReset)
	}
	fmt.Fprintln(w)
}

func (f *TerminalFormatter) writeFooter(w io.Writer, report *interfaces.Report) {
	for _, adj := range report.Adjustments {
		fmt.Fprintf(w, "  %s⚠ %s%s\n", colorYellow, adj, colorReset)
	}
	fmt.Fprintf(w, "  %s%s──────────────────────────────────────────%s\n", colorDim, colorCyan, colorReset)
	fmt.Fprintf(w, "  %sModels: %d | Report: %s%s\n",
		colorDim, len(report.Entries), report.ID, colorReset)
	fmt.Fprintf(w, "  %sGenerated: %s%s\n\n",
		colorDim, report.Timestamp.Format("2006-01-02 15:04:05"), colorReset)
}

// bandColor returns the ANSI color for an interpretation band.
func bandColor(b interfaces.Band) string {
	switch b {
	case interfaces.BandExcellent:
		return colorGreen
	case interfaces.BandVeryGood:
		return colorCyan
	case interfaces.BandGood:
		return colorYellow
	default:
		return colorReset
	}
}

// dimensionLabel returns the short column header for a dimension.
func dimensionLabel(d interfaces.Dimension) string {
	switch d {
	case interfaces.DimensionDetection:
		return "Detection"
	case interfaces.DimensionASC:
		return "ASC"
	case interfaces.DimensionTCO:
		return "TCO"
	case interfaces.DimensionDeployment:
		return "Deployment"
	case interfaces.DimensionEfficiency:
		return "Efficiency"
	default:
		return string(d)
	}
}

// costComponentLabel returns a human-readable label for a TCO component key.
func costComponentLabel(key string) string {
	switch key {
	case "deployment":
		return "Deployment"
	case "operational":
		return "Operational"
	case "incident_response":
		return "Incident response"
	case "scalability":
		return "Scalability"
	case "compliance":
		return "Compliance"
	default:
		return key
	}
}

// findMetric returns the metric result feeding the given dimension, or nil.
func findMetric(report *interfaces.Report, d interfaces.Dimension) *interfaces.MetricResult {
	for i := range report.Metrics {
		if report.Metrics[i].Dimension == d {
			return &report.Metrics[i]
		}
	}
	return nil
}

// nameColumnWidth returns the display width of the widest model name.
func nameColumnWidth(entries []interfaces.RankedEntry) int {
	width := runewidth.StringWidth("Model")
	for _, e := range entries {
		if w := runewidth.StringWidth(e.Name); w > width {
			width = w
		}
	}
	return width
}

// pad right-pads s with spaces to the given display width.
func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
