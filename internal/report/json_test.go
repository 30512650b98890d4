package report

import (
	"bytes"
	"encoding/json"
	"math/big"
	"strings"
	"testing"

	"github.com/passcheck/passcheck/internal/model"
)

func TestJSONWriterOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewJSONWriter(&buf)

	n, err := w.Write(testReport())
	if err != nil {
		t.Fatalf("Write() error = %v, want nil", err)
	}
	if n != buf.Len() {
		t.Errorf("Write() bytes = %d, want %d", n, buf.Len())
	}
	if !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
		t.Error("output does not end with newline")
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got["combinations"] != "2821109907456" {
		t.Errorf("combinations = %v, want %q", got["combinations"], "2821109907456")
	}
	if got["tier_name"] != "WEAK" {
		t.Errorf("tier_name = %v, want %q", got["tier_name"], "WEAK")
	}
	if got["break_time"] != "4 minutes" {
		t.Errorf("break_time = %v, want %q", got["break_time"], "4 minutes")
	}
}

func TestJSONWriterHugeCombinationsStayExact(t *testing.T) {
	t.Parallel()

	report := testReport()
	report.Combinations = new(big.Int).Exp(big.NewInt(105), big.NewInt(64), nil)

	var buf bytes.Buffer
	if _, err := NewJSONWriter(&buf).Write(report); err != nil {
		t.Fatalf("Write() error = %v, want nil", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got["combinations"] != report.Combinations.String() {
		t.Errorf("combinations = %v, want %q", got["combinations"], report.Combinations.String())
	}
}

func TestJSONWriterIndent(t *testing.T) {
	t.Parallel()

	var compact, pretty bytes.Buffer
	if _, err := NewJSONWriter(&compact).Write(testReport()); err != nil {
		t.Fatalf("Write() error = %v, want nil", err)
	}
	if _, err := NewJSONWriter(&pretty, WithPrettyPrint()).Write(testReport()); err != nil {
		t.Fatalf("Write() error = %v, want nil", err)
	}

	if strings.Count(compact.String(), "\n") != 1 {
		t.Error("compact output spans multiple lines")
	}
	if strings.Count(pretty.String(), "\n") <= 1 {
		t.Error("pretty-printed output is not indented")
	}
}

func TestJSONWriterFailedReport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewJSONWriter(&buf).Write(failedReport()); err != nil {
		t.Fatalf("Write() error = %v, want nil", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got["error"] != "password contains unsupported characters" {
		t.Errorf("error = %v, want failure message", got["error"])
	}
	if _, ok := got["break_time"]; ok && got["break_time"] != "" {
		t.Errorf("failed report has break_time = %v, want empty", got["break_time"])
	}
}

func TestFullJSONWriterWrapsVersion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewFullJSONWriter(&buf, "v1.2.3")

	if _, err := w.Write(testReport()); err != nil {
		t.Fatalf("Write() error = %v, want nil", err)
	}

	var got struct {
		Version string        `json:"version"`
		Report  *model.Report `json:"report"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.Version != "v1.2.3" {
		t.Errorf("version = %q, want %q", got.Version, "v1.2.3")
	}
	if got.Report == nil {
		t.Fatal("report field missing from versioned output")
	}
	if got.Report.Tier != model.TierWeak {
		t.Errorf("report tier = %v, want %v", got.Report.Tier, model.TierWeak)
	}
}
