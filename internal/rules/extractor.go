package rules

import (
	"github.com/dlclark/regexp2"

	"github.com/kapilank-k/product-comparator/internal/model"
)

// Extractor applies a rule table to free-text product descriptions
type Extractor struct {
	table Table
}

// NewExtractor creates an extractor over the default rule table
func NewExtractor() *Extractor {
	return &Extractor{table: Default()}
}

// NewExtractorWithTable creates an extractor over a custom table
func NewExtractorWithTable(t Table) *Extractor {
	return &Extractor{table: t}
}

// Extract scans each field's rule list in order and records the output
// of the first matching rule's formatter. Fields with no matching rule
// are omitted. The returned record is fresh per call.
func (e *Extractor) Extract(text string) model.Record {
	rec := make(model.Record, len(e.table))
	for _, fr := range e.table {
		for _, rule := range fr.Rules {
			m, err := rule.pattern.FindStringMatch(text)
			if err != nil || m == nil {
				continue
			}
			rec[fr.Field] = rule.format(groupStrings(m), text)
			break
		}
	}
	return rec
}

// groupStrings flattens a match into indexed group texts; index 0 is
// the full match, unmatched optional groups are empty strings.
func groupStrings(m *regexp2.Match) []string {
	groups := m.Groups()
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.String()
	}
	return out
}
