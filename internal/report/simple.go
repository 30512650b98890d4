package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/passcheck/passcheck/internal/charset"
	"github.com/passcheck/passcheck/internal/model"
)

// SimpleWriter outputs human-readable text reports for terminal display,
// with the tier verdict and break time color-coded by severity.
type SimpleWriter struct {
	baseWriter

	// colored enables ANSI colors on the tier verdict and break time.
	// Disabled output stays pipe- and file-friendly.
	colored bool

	// verbose adds the raw combination count to the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithColor enables or disables colored output.
func WithColor(colored bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.colored = colored
	}
}

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		colored:    true,
		verbose:    false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// tierColor maps each security tier to its display color, from magenta
// for the weakest to green for the strongest.
func tierColor(tier model.Tier) *color.Color {
	switch tier {
	case model.TierVeryWeak:
		return color.New(color.FgMagenta)
	case model.TierWeak:
		return color.New(color.FgRed)
	case model.TierModerate:
		return color.New(color.FgYellow)
	case model.TierStrong:
		return color.New(color.FgCyan)
	case model.TierVeryStrong:
		return color.New(color.FgGreen)
	default:
		return color.New(color.Reset)
	}
}

// paint colors the text with the tier color when coloring is enabled.
func (w *SimpleWriter) paint(tier model.Tier, text string) string {
	if !w.colored {
		return text
	}
	return tierColor(tier).Sprint(text)
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)

	if report.Failed() {
		sb.WriteString(fmt.Sprintf("Analysis failed: %s\n\n", report.Err))
		return w.output.Write([]byte(sb.String()))
	}

	w.writeVerdict(&sb, report)
	w.writeComposition(&sb, report)
	w.writeSuggestions(&sb, report)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report banner.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.Report) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                         PASSWORD ANALYSIS\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	if !report.AnalyzedAt.IsZero() {
		sb.WriteString(fmt.Sprintf("Analyzed:  %s\n", report.AnalyzedAt.Format("2006-01-02 15:04:05 MST")))
	}
	sb.WriteString("\n")
}

// writeVerdict writes the tier, break time, and optional combination count.
func (w *SimpleWriter) writeVerdict(sb *strings.Builder, report *model.Report) {
	sb.WriteString(fmt.Sprintf("Length:        %d characters\n", report.Profile.Length))
	sb.WriteString(fmt.Sprintf("Security tier: %s\n", w.paint(report.Tier, report.Tier.String())))
	sb.WriteString(fmt.Sprintf("Break time:    %s\n", w.paint(report.Tier, report.BreakTime())))
	if w.verbose {
		sb.WriteString(fmt.Sprintf("Combinations:  %s\n", formatCount(report.Combinations)))
	}
	sb.WriteString("\n")
}

// writeComposition writes the per-class presence checklist.
func (w *SimpleWriter) writeComposition(sb *strings.Builder, report *model.Report) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("COMPOSITION\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, c := range charset.Classes() {
		marker := "[ ]"
		if report.Profile.Has(c) {
			marker = "[+]"
		}
		sb.WriteString(fmt.Sprintf("  %s %s\n", marker, c.String()))
	}
	sb.WriteString("\n")
}

// writeSuggestions writes the ordered improvement messages.
func (w *SimpleWriter) writeSuggestions(sb *strings.Builder, report *model.Report) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("SUGGESTIONS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, suggestion := range report.Suggestions {
		sb.WriteString(fmt.Sprintf("  [*] %s\n", suggestion))
	}
	sb.WriteString("\n")
}
