package model

// Field names a product attribute the extractors know how to recognize
type Field string

const (
	FieldFullForm  Field = "Full Form"
	FieldGrade     Field = "Grade"
	FieldForm      Field = "Form"
	FieldType      Field = "Type"
	FieldDiameter  Field = "Diameter"
	FieldLength    Field = "Length"
	FieldStandard  Field = "Standard"
	FieldStructure Field = "Structure"
	FieldExtraInfo Field = "Extra Info"
	FieldBrand     Field = "Brand"

	// Normalized-path fields (Tier B extractors). Grade, Diameter,
	// Length and Standard are shared with the annotated path above.
	FieldMaterial Field = "Material"
)

// NotMentioned is the display sentinel substituted for a field that is
// absent from a record. Rows where both sides carry it are suppressed.
const NotMentioned = "Not mentioned"

// Record maps fields to their display values for a single input text.
// Fields with no matching rule are simply absent; a record is created
// fresh per extraction and never mutated afterwards.
type Record map[Field]string

// Get returns the record's value for a field, or NotMentioned
func (r Record) Get(f Field) string {
	if v, ok := r[f]; ok {
		return v
	}
	return NotMentioned
}

// MatchStatus classifies the agreement between two field values
type MatchStatus string

const (
	StatusNotMentioned MatchStatus = "Not Mentioned"
	StatusExact        MatchStatus = "Exact Match"
	StatusFuzzy        MatchStatus = "Fuzzy Match"
	StatusSemantic     MatchStatus = "Semantic Match"
	StatusMismatch     MatchStatus = "Mismatch"
)

// Row is one line of a comparison report
type Row struct {
	Aspect Field       `json:"aspect"`
	Left   string      `json:"string_1"`
	Right  string      `json:"string_2"`
	Status MatchStatus `json:"status,omitempty"` // empty when status reporting is off
}

// Missing reports whether either side of the row is the absence sentinel
func (r Row) Missing() bool {
	return r.Left == NotMentioned || r.Right == NotMentioned
}
