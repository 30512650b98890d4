package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/passcheck/passcheck/internal/charset"
	"github.com/passcheck/passcheck/internal/model"
)

// MarkdownWriter outputs reports in GitHub Flavored Markdown.
// This format is designed for documentation and sharing, for example
// pasting an audit result into an issue.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Password Analysis Report")
	md.PlainText("")

	if report.Failed() {
		md.Cautionf("Analysis failed: %s", report.Err)
		md.PlainText("")
		return len(md.String()), md.Build()
	}

	w.writeSummary(md, report)
	w.writeComposition(md, report)
	w.writeSuggestions(md, report)

	return len(md.String()), md.Build()
}

// writeSummary writes the verdict table and a tier-driven alert.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.Report) {
	rows := [][]string{
		{"Length", strconv.Itoa(report.Profile.Length) + " characters"},
		{"Security tier", report.Tier.String()},
		{"Estimated break time", report.BreakTime()},
		{"Combinations", formatCount(report.Combinations)},
	}
	if !report.AnalyzedAt.IsZero() {
		rows = append(rows, []string{"Analyzed", report.AnalyzedAt.Format("2006-01-02 15:04:05 MST")})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")

	switch report.Tier {
	case model.TierVeryWeak:
		md.Cautionf("This password falls almost immediately to brute force (%s). Replace it now.", report.BreakTime())
	case model.TierWeak:
		md.Warningf("This password offers little resistance to brute force (%s).", report.BreakTime())
	case model.TierModerate:
		md.Importantf("This password resists casual attacks but not a determined attacker (%s).", report.BreakTime())
	case model.TierStrong:
		md.Note("This password holds up well against brute force.")
	case model.TierVeryStrong:
		md.Tip("This password exceeds every configured break-time boundary.")
	}
	md.PlainText("")
}

// writeComposition writes the per-class presence table.
func (w *MarkdownWriter) writeComposition(md *markdown.Markdown, report *model.Report) {
	md.H2("Composition")
	md.PlainText("")

	rows := make([][]string, 0, len(charset.Classes()))
	for _, c := range charset.Classes() {
		present := "no"
		if report.Profile.Has(c) {
			present = "yes"
		}
		rows = append(rows, []string{c.String(), present})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Character class", "Present"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeSuggestions writes the ordered improvement list.
func (w *MarkdownWriter) writeSuggestions(md *markdown.Markdown, report *model.Report) {
	md.H2("Suggestions")
	md.PlainText("")
	md.BulletList(report.Suggestions...)
	md.PlainText("")
}
