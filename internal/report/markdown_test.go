package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/passcheck/passcheck/internal/model"
)

func TestMarkdownWriterSections(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewMarkdownWriter(&buf)

	if _, err := w.Write(testReport()); err != nil {
		t.Fatalf("Write() error = %v, want nil", err)
	}

	out := buf.String()
	for _, want := range []string{
		"# Password Analysis Report",
		"## Composition",
		"## Suggestions",
		"WEAK",
		"4 minutes",
		"2,821,109,907,456",
		"Use at least 12 characters.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\noutput:\n%s", want, out)
		}
	}
}

func TestMarkdownWriterAlertFollowsTier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tier model.Tier
		want string
	}{
		{
			name: "very weak uses caution alert",
			tier: model.TierVeryWeak,
			want: "CAUTION",
		},
		{
			name: "weak uses warning alert",
			tier: model.TierWeak,
			want: "WARNING",
		},
		{
			name: "moderate uses important alert",
			tier: model.TierModerate,
			want: "IMPORTANT",
		},
		{
			name: "strong uses note alert",
			tier: model.TierStrong,
			want: "NOTE",
		},
		{
			name: "very strong uses tip alert",
			tier: model.TierVeryStrong,
			want: "TIP",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			report := testReport()
			report.Tier = tt.tier

			var buf bytes.Buffer
			if _, err := NewMarkdownWriter(&buf).Write(report); err != nil {
				t.Fatalf("Write() error = %v, want nil", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output missing %q alert\noutput:\n%s", tt.want, buf.String())
			}
		})
	}
}

func TestMarkdownWriterCompositionMarks(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).Write(testReport()); err != nil {
		t.Fatalf("Write() error = %v, want nil", err)
	}

	out := buf.String()
	if !strings.Contains(out, "digits") || !strings.Contains(out, "uppercase letters") {
		t.Errorf("composition table missing class rows\noutput:\n%s", out)
	}
	if !strings.Contains(out, "yes") || !strings.Contains(out, "no") {
		t.Errorf("composition table missing presence values\noutput:\n%s", out)
	}
}

func TestMarkdownWriterFailedReport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).Write(failedReport()); err != nil {
		t.Fatalf("Write() error = %v, want nil", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Analysis failed: password contains unsupported characters") {
		t.Errorf("output missing failure message\noutput:\n%s", out)
	}
	if strings.Contains(out, "## Suggestions") {
		t.Error("failed report still renders suggestion section")
	}
}
