package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kapilank-k/product-comparator/internal/model"
)

func sampleReport() *model.Report {
	return &model.Report{
		PairID:      7,
		Left:        "OPC53",
		Right:       "ORDINARY PORTLAND CEMENT; GRADE :- 53; FORM :- Bulk;",
		Mode:        "annotated",
		GeneratedAt: time.Now().UTC(),
		Rows: []model.Row{
			{Aspect: model.FieldFullForm, Left: "OPC (abbreviated)", Right: "ORDINARY PORTLAND CEMENT (full form)"},
			{Aspect: model.FieldGrade, Left: "53 (implied)", Right: "GRADE :- 53"},
		},
	}
}

func TestRender_Table(t *testing.T) {
	var buf strings.Builder
	NewRenderer(&buf).Render(sampleReport())
	out := buf.String()

	for _, want := range []string{
		"Pair 7",
		"String 1: OPC53",
		"Aspect", "String 1", "String 2",
		"OPC (abbreviated)", "53 (implied)", "GRADE :- 53",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Match Status") {
		t.Error("status column must be absent when no row carries a status")
	}
}

func TestRender_StatusColumnAndFallback(t *testing.T) {
	rep := sampleReport()
	rep.Mode = "normalized"
	rep.Rows = []model.Row{
		{Aspect: model.FieldGrade, Left: "53", Right: "53", Status: model.StatusExact},
		{Aspect: model.FieldLength, Left: model.NotMentioned, Right: model.NotMentioned, Status: model.StatusNotMentioned},
	}
	rep.Fallback = &model.FallbackResult{Provider: "groq", Output: "Grade: 53 for both"}

	var buf strings.Builder
	NewRenderer(&buf).Render(rep)
	out := buf.String()

	for _, want := range []string{"Match Status", "Exact Match", "Not Mentioned", "LLM Fallback Output:", "Grade: 53 for both"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRender_EmptyOrder(t *testing.T) {
	rep := sampleReport()
	rep.Rows = nil

	var buf strings.Builder
	NewRenderer(&buf).Render(rep)

	if !strings.Contains(buf.String(), "(no aspects to display)") {
		t.Errorf("expected empty-order notice, got:\n%s", buf.String())
	}
}

func TestRenderJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	if err := NewRenderer(os.Stdout).RenderJSON(sampleReport(), path); err != nil {
		t.Fatalf("RenderJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}

	var decoded model.Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if decoded.PairID != 7 || len(decoded.Rows) != 2 {
		t.Errorf("round-tripped report differs: %+v", decoded)
	}
}
