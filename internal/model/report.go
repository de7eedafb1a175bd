package model

import "time"

// Report represents one complete field-by-field comparison of two
// product descriptions
type Report struct {
	PairID      int       `json:"pair_id,omitempty"` // curated pair label, 0 for ad-hoc input
	Left        string    `json:"string_1"`          // raw input text, side 1
	Right       string    `json:"string_2"`          // raw input text, side 2
	Mode        string    `json:"mode"`              // "annotated" or "normalized"
	GeneratedAt time.Time `json:"generated_at"`

	Rows []Row `json:"rows"`

	// Fallback holds the LLM recovery attempt, present only when at
	// least one field was missing on either side and the fallback was
	// enabled. Its output is raw model text, surfaced for human
	// inspection, never parsed.
	Fallback *FallbackResult `json:"fallback,omitempty"`
}

// FallbackResult contains the raw output of the LLM extraction fallback
type FallbackResult struct {
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
	Output   string `json:"output"` // raw completion text, or "LLM call failed: <reason>"
}
