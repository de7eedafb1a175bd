package match

import (
	"context"
	"errors"
	"testing"

	"github.com/kapilank-k/product-comparator/internal/model"
)

// countingOracle records invocations and returns a fixed score
type countingOracle struct {
	calls int
	score float64
	err   error
}

func (o *countingOracle) Similarity(_ context.Context, _, _ string) (float64, error) {
	o.calls++
	return o.score, o.err
}

func gradedConfig() model.MatchConfig {
	return model.MatchConfig{FuzzyThreshold: 85, SemanticThreshold: 0.85}
}

func TestCompare_BothAbsent(t *testing.T) {
	oracle := &countingOracle{score: 0.99}
	c := NewComparator(gradedConfig(), oracle)

	if got := c.Compare(context.Background(), "", "", false, false); got != model.StatusNotMentioned {
		t.Errorf("expected Not Mentioned, got %s", got)
	}
	if oracle.calls != 0 {
		t.Errorf("oracle must not run for absent values, called %d times", oracle.calls)
	}
}

func TestCompare_EqualityShortCircuits(t *testing.T) {
	// The oracle would also qualify these, but equality must win first.
	oracle := &countingOracle{score: 0.99}
	c := NewComparator(gradedConfig(), oracle)

	if got := c.Compare(context.Background(), "FE500D", "FE500D", true, true); got != model.StatusExact {
		t.Errorf("expected Exact Match, got %s", got)
	}
	if oracle.calls != 0 {
		t.Errorf("oracle must not run when values are equal, called %d times", oracle.calls)
	}
}

func TestCompare_FuzzyTierSkipsOracle(t *testing.T) {
	oracle := &countingOracle{score: 0.99}
	c := NewComparator(gradedConfig(), oracle)

	// One edit over eight characters: ratio 87.5, above the threshold.
	got := c.Compare(context.Background(), "12.00 mm", "12.10 mm", true, true)
	if got != model.StatusFuzzy {
		t.Errorf("expected Fuzzy Match, got %s", got)
	}
	if oracle.calls != 0 {
		t.Errorf("oracle must not run once the fuzzy tier succeeds, called %d times", oracle.calls)
	}
}

func TestCompare_SemanticTier(t *testing.T) {
	oracle := &countingOracle{score: 0.9}
	c := NewComparator(gradedConfig(), oracle)

	got := c.Compare(context.Background(), "OPC", "ordinary portland cement", true, true)
	if got != model.StatusSemantic {
		t.Errorf("expected Semantic Match, got %s", got)
	}
	if oracle.calls != 1 {
		t.Errorf("expected exactly one oracle call, got %d", oracle.calls)
	}
}

func TestCompare_Mismatch(t *testing.T) {
	tests := []struct {
		name      string
		oracle    *countingOracle
		left      string
		right     string
		leftOK    bool
		rightOK   bool
		wantCalls int
	}{
		{"low scores everywhere", &countingOracle{score: 0.2}, "OPC", "TMT bar", true, true, 1},
		{"oracle error degrades locally", &countingOracle{score: 0.99, err: errors.New("model offline")}, "OPC", "TMT bar", true, true, 1},
		{"one side absent skips oracle", &countingOracle{score: 0.99}, "OPC", "", true, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewComparator(gradedConfig(), tt.oracle)
			got := c.Compare(context.Background(), tt.left, tt.right, tt.leftOK, tt.rightOK)
			if got != model.StatusMismatch {
				t.Errorf("expected Mismatch, got %s", got)
			}
			if tt.oracle.calls != tt.wantCalls {
				t.Errorf("expected %d oracle calls, got %d", tt.wantCalls, tt.oracle.calls)
			}
		})
	}
}

func TestCompare_NilOracle(t *testing.T) {
	c := NewComparator(gradedConfig(), nil)

	if got := c.Compare(context.Background(), "OPC", "TMT bar", true, true); got != model.StatusMismatch {
		t.Errorf("expected Mismatch with nil oracle, got %s", got)
	}
}

func TestStrictComparator(t *testing.T) {
	c := NewStrictComparator()
	ctx := context.Background()

	tests := []struct {
		name    string
		left    string
		right   string
		leftOK  bool
		rightOK bool
		want    model.MatchStatus
	}{
		{"both absent", "", "", false, false, model.StatusNotMentioned},
		{"equal", "LOOSE", "LOOSE", true, true, model.StatusExact},
		{"near miss is still mismatch", "12.00 mm", "12.10 mm", true, true, model.StatusMismatch},
		{"one absent", "LOOSE", "", true, false, model.StatusMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Compare(ctx, tt.left, tt.right, tt.leftOK, tt.rightOK); got != tt.want {
				t.Errorf("Compare = %s, want %s", got, tt.want)
			}
		})
	}
}
