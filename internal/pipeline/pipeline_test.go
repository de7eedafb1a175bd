package pipeline

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"

	"github.com/kapilank-k/product-comparator/internal/model"
)

func rowFor(t *testing.T, rows []model.Row, aspect model.Field) model.Row {
	t.Helper()
	for _, row := range rows {
		if row.Aspect == aspect {
			return row
		}
	}
	t.Fatalf("no row for aspect %s in %v", aspect, rows)
	return model.Row{}
}

func TestCompareAnnotated_CementPair(t *testing.T) {
	p := NewPipeline(model.DefaultConfig())

	rep := p.CompareAnnotated(context.Background(),
		"OPC53",
		"ORDINARY PORTLAND CEMENT; GRADE :- 53; FORM :- Bulk;",
		7)

	fullForm := rowFor(t, rep.Rows, model.FieldFullForm)
	if fullForm.Left != "OPC (abbreviated)" || fullForm.Right != "ORDINARY PORTLAND CEMENT (full form)" {
		t.Errorf("Full Form = (%q, %q)", fullForm.Left, fullForm.Right)
	}

	grade := rowFor(t, rep.Rows, model.FieldGrade)
	if grade.Left != "53 (implied)" || grade.Right != "GRADE :- 53" {
		t.Errorf("Grade = (%q, %q)", grade.Left, grade.Right)
	}

	form := rowFor(t, rep.Rows, model.FieldForm)
	if form.Left != model.NotMentioned || form.Right != "FORM :- Bulk" {
		t.Errorf("Form = (%q, %q)", form.Left, form.Right)
	}
	if form.Status != model.StatusMismatch {
		t.Errorf("Form status = %s, want Mismatch", form.Status)
	}

	structure := rowFor(t, rep.Rows, model.FieldStructure)
	if structure.Left != "Very short" || structure.Right != "Fully structured" {
		t.Errorf("Structure = (%q, %q)", structure.Left, structure.Right)
	}
}

func TestCompareAnnotated_UnknownPairShowsNothing(t *testing.T) {
	p := NewPipeline(model.DefaultConfig())

	rep := p.CompareAnnotated(context.Background(), "OPC53", "OPC53", 42)
	if len(rep.Rows) != 0 {
		t.Errorf("unknown pair id must degrade to an empty report, got %d rows", len(rep.Rows))
	}
}

func TestCompareNormalized_SteelBarPair(t *testing.T) {
	p := NewPipeline(model.DefaultConfig())

	rep := p.CompareNormalized(context.Background(),
		"TMT-FE_500D-32mm-11.000mtr.",
		"REINFORCEMENT STEEL BAR; TYPE :- Thermo mechanically treated (TMT); GRADE :- Fe 500D; DIAMETER :- 32 mm; FORM :- Straight bars (specific length); STANDARD :- IS 1786;")

	grade := rowFor(t, rep.Rows, model.FieldGrade)
	if grade.Left != "FE500D" || grade.Status != model.StatusExact {
		t.Errorf("Grade = (%q, %s), want (FE500D, Exact Match)", grade.Left, grade.Status)
	}

	diameter := rowFor(t, rep.Rows, model.FieldDiameter)
	if diameter.Left != "32.00 mm" || diameter.Right != "32.00 mm" || diameter.Status != model.StatusExact {
		t.Errorf("Diameter = (%q, %q, %s)", diameter.Left, diameter.Right, diameter.Status)
	}

	material := rowFor(t, rep.Rows, model.FieldMaterial)
	if material.Left != "TMT" || material.Status != model.StatusExact {
		t.Errorf("Material = (%q, %s)", material.Left, material.Status)
	}

	form := rowFor(t, rep.Rows, model.FieldForm)
	if form.Left != model.NotMentioned || form.Right != "Straight bars" || form.Status != model.StatusMismatch {
		t.Errorf("Form = (%q, %q, %s)", form.Left, form.Right, form.Status)
	}

	standard := rowFor(t, rep.Rows, model.FieldStandard)
	if standard.Right != "IS 1786" || standard.Status != model.StatusMismatch {
		t.Errorf("Standard = (%q, %s)", standard.Right, standard.Status)
	}

	// Fallback is disabled by default even though fields are missing.
	if rep.Fallback != nil {
		t.Errorf("fallback must stay off without a provider, got %+v", rep.Fallback)
	}
}

func TestCompareNormalized_FallbackFiresOnce(t *testing.T) {
	var completions int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/chat/completions" {
			completions++
			resp := openai.ChatCompletionResponse{
				Choices: []openai.ChatCompletionChoice{
					{Message: openai.ChatCompletionMessage{Role: "assistant", Content: "no recognizable fields"}},
				},
			}
			_ = json.NewEncoder(w).Encode(resp)
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	cfg := model.DefaultConfig()
	cfg.LLM.Provider = "groq"
	cfg.LLM.APIKey = "test-key"
	cfg.LLM.BaseURL = server.URL
	cfg.LLM.Timeout = 5

	p := NewPipeline(cfg)
	rep := p.CompareNormalized(context.Background(), "unknown alpha rod", "unknown beta rod")

	if len(rep.Rows) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(rep.Rows))
	}
	for _, row := range rep.Rows {
		if row.Status != model.StatusNotMentioned {
			t.Errorf("%s status = %s, want Not Mentioned", row.Aspect, row.Status)
		}
	}

	if rep.Fallback == nil {
		t.Fatal("expected fallback to fire")
	}
	if rep.Fallback.Output != "no recognizable fields" {
		t.Errorf("unexpected fallback output %q", rep.Fallback.Output)
	}
	if completions != 1 {
		t.Errorf("fallback must issue exactly one request, saw %d", completions)
	}
}

func TestCompareAnnotated_BrandRowSuppressed(t *testing.T) {
	p := NewPipeline(model.DefaultConfig())

	// Pair 4's curated order lists Brand, but no rule produces it.
	rep := p.CompareAnnotated(context.Background(),
		"TISCON-TMT IS 1786 FE550D CRS# 32.00 mm",
		"REINFORCEMENT STEEL BAR; TYPE :- Corrosion resistant steel (CRS); GRADE :- Fe 550D; DIAMETER :- 32 mm; FORM :- Straight bars (standard length); STANDARD :- IS 1786;",
		4)

	for _, row := range rep.Rows {
		if row.Aspect == model.FieldBrand {
			t.Error("Brand row must be suppressed when absent from both records")
		}
	}
}
