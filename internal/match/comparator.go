package match

import (
	"context"

	"github.com/kapilank-k/product-comparator/internal/model"
)

// Comparator classifies the agreement between two extracted field
// values. One implementation covers both comparison policies: strict
// mode reports presence/equality only, graded mode adds the fuzzy and
// semantic tiers in strict priority order.
type Comparator struct {
	fuzzyThreshold    float64
	semanticThreshold float64
	oracle            Oracle
	strict            bool
}

// NewComparator creates a graded (tiered) comparator. The oracle may be
// nil, in which case the semantic tier is skipped and dissimilar values
// fall through to Mismatch.
func NewComparator(cfg model.MatchConfig, oracle Oracle) *Comparator {
	return &Comparator{
		fuzzyThreshold:    cfg.FuzzyThreshold,
		semanticThreshold: cfg.SemanticThreshold,
		oracle:            oracle,
	}
}

// NewStrictComparator creates an equality/presence-only comparator,
// used on annotated display values that are already normalized by the
// rule table.
func NewStrictComparator() *Comparator {
	return &Comparator{strict: true}
}

// Compare classifies two values. ok flags mark presence: a field with
// no matching extractor passes ok=false and an empty value.
//
// Graded priority: both absent, byte equality, fuzzy ratio, semantic
// similarity, mismatch. The oracle runs only after the cheaper tiers
// fail and never when either side is absent; an oracle error degrades
// to Mismatch locally.
func (c *Comparator) Compare(ctx context.Context, left, right string, leftOK, rightOK bool) model.MatchStatus {
	if !leftOK && !rightOK {
		return model.StatusNotMentioned
	}
	if leftOK && rightOK && left == right {
		return model.StatusExact
	}
	if c.strict || !leftOK || !rightOK {
		return model.StatusMismatch
	}

	if Ratio(left, right) > c.fuzzyThreshold {
		return model.StatusFuzzy
	}

	if c.oracle != nil {
		sim, err := c.oracle.Similarity(ctx, left, right)
		if err == nil && sim > c.semanticThreshold {
			return model.StatusSemantic
		}
	}

	return model.StatusMismatch
}
