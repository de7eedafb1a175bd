// Package normalize implements the canonical-value extraction path:
// inputs are case-folded and lightly cleaned, then one targeted pattern
// per field produces a normalized value suitable for graded comparison.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kapilank-k/product-comparator/internal/model"
)

var (
	gradeRe = regexp.MustCompile(`fe[\s_]?500d?|\b43\b|\b53\b`)
	// Diameter and length share the "<number>mm" shape and are told
	// apart purely by digit count. A coarse heuristic, kept as-is.
	diameterRe = regexp.MustCompile(`(\d{1,3}\.?\d*)\s?mm`)
	lengthRe   = regexp.MustCompile(`(\d{4,5}\.?\d*)\s?mm`)
	standardRe = regexp.MustCompile(`is\s?\d{4}`)
)

// Preprocess canonicalizes raw text before field extraction: lowercase,
// trimmed, underscores as spaces, ":-" collapsed to ":", and a space
// forced after every semicolon.
func Preprocess(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = strings.ReplaceAll(text, "_", " ")
	text = strings.ReplaceAll(text, ":-", ":")
	text = strings.ReplaceAll(text, ";", "; ")
	return text
}

// Grade extracts a steel or cement grade (FE500, FE500D, 43, 53)
func Grade(text string) (string, bool) {
	m := gradeRe.FindString(text)
	if m == "" {
		return "", false
	}
	return strings.ReplaceAll(strings.ToUpper(m), " ", ""), true
}

// Diameter extracts a 1-3 digit millimeter value, two-decimal canonical form
func Diameter(text string) (string, bool) {
	return millimeters(diameterRe, text)
}

// Length extracts a 4-5 digit millimeter value, two-decimal canonical form
func Length(text string) (string, bool) {
	return millimeters(lengthRe, text)
}

func millimeters(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%.2f mm", f), true
}

// Material classifies by keyword containment in fixed priority order
func Material(text string) (string, bool) {
	switch {
	case strings.Contains(text, "opc"):
		return "OPC", true
	case strings.Contains(text, "tmt"):
		return "TMT", true
	case strings.Contains(text, "strand"), strings.Contains(text, "lrpc"):
		return "PC Strand", true
	}
	return "", false
}

// Form classifies the delivery form by keyword containment
func Form(text string) (string, bool) {
	switch {
	case strings.Contains(text, "bulk"), strings.Contains(text, "loose"):
		return "Loose", true
	case strings.Contains(text, "straight"):
		return "Straight bars", true
	case strings.Contains(text, "bag"):
		return "Bag", true
	}
	return "", false
}

// Standard extracts an IS standard reference ("is" plus a 4-digit code)
func Standard(text string) (string, bool) {
	m := standardRe.FindString(text)
	if m == "" {
		return "", false
	}
	return strings.ToUpper(m), true
}

// FieldExtractor binds a field name to its extraction function
type FieldExtractor struct {
	Field   model.Field
	Extract func(string) (string, bool)
}

// Extractors returns the normalized-path extractors in report order
func Extractors() []FieldExtractor {
	return []FieldExtractor{
		{model.FieldGrade, Grade},
		{model.FieldDiameter, Diameter},
		{model.FieldMaterial, Material},
		{model.FieldForm, Form},
		{model.FieldLength, Length},
		{model.FieldStandard, Standard},
	}
}
