package rules

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/kapilank-k/product-comparator/internal/model"
)

// Formatter renders a successful pattern match into a display value.
// groups[0] is the full matched text, groups[i] the i-th capture (empty
// when the group did not participate). source is the complete input
// text: some formatters disambiguate on substrings outside the match span.
type Formatter func(groups []string, source string) string

// Rule pairs a pattern with the formatter applied on its first match
type Rule struct {
	pattern *regexp2.Regexp
	format  Formatter
}

// New compiles a rule. Patterns are case-insensitive and multiline, and
// may use backreferences (the length rules rely on them), which is why
// the engine is regexp2 rather than stdlib RE2.
func New(pattern string, format Formatter) Rule {
	return Rule{
		pattern: regexp2.MustCompile(pattern, regexp2.IgnoreCase|regexp2.Multiline),
		format:  format,
	}
}

// FieldRules is the ordered rule list for one field. Order is load-bearing:
// the first matching rule wins and later rules are never consulted.
type FieldRules struct {
	Field model.Field
	Rules []Rule
}

// Table is an ordered set of per-field rule lists
type Table []FieldRules

// NewTable validates rule ordering: a catch-all pattern (one that
// matches the empty string, and therefore any input) terminates its
// field's list, so it must come last. A misordered table is a
// programming error and panics at construction.
func NewTable(fields ...FieldRules) Table {
	for _, fr := range fields {
		for i, r := range fr.Rules {
			if i == len(fr.Rules)-1 {
				continue
			}
			if m, err := r.pattern.FindStringMatch(""); err == nil && m != nil {
				panic(fmt.Sprintf("rules: catch-all pattern %q for field %q is not last", r.pattern.String(), fr.Field))
			}
		}
	}
	return Table(fields)
}

// literal builds a formatter that ignores the match and returns a fixed string
func literal(s string) Formatter {
	return func([]string, string) string { return s }
}

// group1 builds a formatter that interpolates the first capture group
func group1(format string) Formatter {
	return func(groups []string, _ string) string {
		return fmt.Sprintf(format, groups[1])
	}
}

// group1Trimmed is group1 with surrounding whitespace stripped
func group1Trimmed(format string) Formatter {
	return func(groups []string, _ string) string {
		return fmt.Sprintf(format, strings.TrimSpace(groups[1]))
	}
}

// defaultTable is the process-wide rule registry, built once at startup
// and never mutated. The patterns and annotations mirror the curated
// construction-material vocabulary: cement (OPC), TMT bars, PC strand
// and rib bars.
var defaultTable = NewTable(
	FieldRules{Field: model.FieldFullForm, Rules: []Rule{
		New(`ORDINARY PORTLAND CEMENT`, literal("ORDINARY PORTLAND CEMENT (full form)")),
		New(`\bOPC`, literal("OPC (abbreviated)")),
		New(`TMT`, literal(`Abbreviated: "TMT"`)),
		New(`HT STEEL STRAND`, literal(`Full form: "HT STEEL STRAND"`)),
		New(`LRPCF`, literal(`Abbreviated: "LRPCF"`)),
		New(`RIB BAR`, literal("Abbreviated: RIB BAR + CRS")),
	}},
	FieldRules{Field: model.FieldGrade, Rules: []Rule{
		New(`GRADE\s*[:-]*\s*(\w+)`, group1("GRADE :- %s")),
		New(`GRADE:-(\w+)`, group1("GRADE:- %s")),
		New(`(FE_?500D|FE550D|1860)`, group1(`Inline: "%s"`)),
		New(`53`, func(_ []string, source string) string {
			// "inline" only when the grade travels with an inline LOOSE
			// marker; a bare code like OPC53 merely implies it.
			if strings.Contains(source, "LOOSE") {
				return "53 (inline)"
			}
			return "53 (implied)"
		}),
	}},
	FieldRules{Field: model.FieldForm, Rules: []Rule{
		New(`FORM\s*[:-]*\s*([^;]+)`, group1Trimmed("FORM :- %s")),
		New(`FORM:-([^;]+)`, group1Trimmed("FORM:- %s")),
		New(`LOOSELOOSE`, literal(`"LOOSELOOSE" (redundant)`)),
		New(`LOOSE`, literal("LOOSE")),
		New(`BULK`, literal("FORM :- Bulk")),
	}},
	FieldRules{Field: model.FieldType, Rules: []Rule{
		New(`TYPE\s*[:-]*\s*([^;]+)`, group1Trimmed("TYPE :- %s")),
		New(`TYPE:-([^;]+)`, group1Trimmed("TYPE:- %s")),
		New(`TYPE OF STRAND\s*[:-]*\s*([^;]+)`, group1Trimmed("TYPE OF STRAND :- %s")),
		New(`Corrosion resistant steel`, literal("TYPE:- Corrosion resistant steel (CRS)")),
		New(`Thermo mechanically treated`, literal("TYPE :- Thermo mechanically treated (TMT)")),
		New(`TMT.*CRS`, literal("TMT + CRS")),
		New(`RIB BAR.*CRS`, literal("RIB BAR + CRS")),
	}},
	FieldRules{Field: model.FieldDiameter, Rules: []Rule{
		New(`NOMINAL DIAMETER OF STRAND\s*[:-]*\s*(\d+(?:\.\d+)?)\s*MM`, group1("NOMINAL DIAMETER :- %s mm")),
		New(`DIAMETER\s*[:-]*\s*(\d+(?:\.\d+)?)\s*MM`, group1("DIAMETER :- %s mm")),
		New(`(\d+(?:\.\d+)?)\s*MM`, group1(`Inline: "%s mm"`)),
	}},
	FieldRules{Field: model.FieldLength, Rules: []Rule{
		New(`Length:\s*(\d+\.\d+)\s*M`, group1(`clearly "%s m"`)),
		New(`(\d+)-\1-\1.*Length:\s*(\d+\.\d+)\s*M`, func(groups []string, _ string) string {
			return fmt.Sprintf(`Repeated as "%s", clearly "%s m"`, groups[1], groups[2])
		}),
		New(`(\d+)-\1-\1`, func(groups []string, _ string) string {
			return fmt.Sprintf(`Repeated as "%s", clearly "%s.000 m"`, groups[1], groups[1])
		}),
		New(`FORM.*Standard length`, literal("FORM:- Straight bars (standard length)")),
		New(`FORM.*Specific length`, literal("FORM :- Straight bars (specific length)")),
	}},
	FieldRules{Field: model.FieldStandard, Rules: []Rule{
		New(`STANDARD\s*[:-]*\s*([^;]+)`, func(groups []string, source string) string {
			if strings.Contains(source, "STANDARD :-") {
				return fmt.Sprintf("STANDARD :- %s", strings.TrimSpace(groups[1]))
			}
			return fmt.Sprintf("STANDARD:- %s", strings.TrimSpace(groups[1]))
		}),
		New(`IS 1786`, literal("STANDARD :- IS 1786")),
		New(`BIS \d+_\d+`, func(groups []string, _ string) string {
			return fmt.Sprintf("Mentioned: BIS %s", groups[0])
		}),
	}},
	FieldRules{Field: model.FieldStructure, Rules: []Rule{
		New(`;.*:-`, literal("Fully structured")),
		New(`^OPC\d+$`, literal("Very short")),
		New(`^OPC\d+\s+LOOSE$`, literal("Short & inline")),
		New(`-`, literal("Coded inline")),
		New(`/`, literal("Mixed inline + natural language")),
		New(`.*`, literal("Unstructured free text")),
	}},
	FieldRules{Field: model.FieldExtraInfo, Rules: []Rule{
		New(`6C11M0007000000`, literal("Ends with code: 6C11M0007000000")),
		New(`Oiled\.`, literal(`"Oiled." suffix`)),
		New(`JVBTLCD201 P1`, literal("Codes: JVBTLCD201, P1")),
		New(`;`, literal("Not present")),
	}},
)

// Default returns the process-wide rule table
func Default() Table {
	return defaultTable
}
