package llm

import (
	"context"
	"fmt"
	"strings"
)

// Provider defines the interface for completion providers backing the
// extraction fallback
type Provider interface {
	// Name returns the provider name
	Name() string

	// ExtractFields asks the model to recover structured fields from
	// both raw descriptions. The response content is raw model text,
	// surfaced for human inspection and never parsed.
	ExtractFields(ctx context.Context, req ExtractRequest) (*ExtractResponse, error)
}

// ExtractRequest contains the input for a fallback extraction call
type ExtractRequest struct {
	// String1 and String2 are the raw, unpreprocessed descriptions.
	String1 string
	String2 string

	// Fields are the field names the model should extract.
	Fields []string

	// Prompt is an optional custom prompt (if empty, use the default)
	Prompt string

	// Model overrides the provider's configured model.
	Model string

	// MaxTokens limits the response length.
	MaxTokens int

	// Temperature controls sampling (the fallback wants focused output).
	Temperature float32
}

// ExtractResponse contains the raw fallback output
type ExtractResponse struct {
	Content    string
	Model      string
	TokensUsed int
}

// DefaultFields are the six attributes the fallback asks for
func DefaultFields() []string {
	return []string{"Grade", "Diameter", "Material", "Form", "Length", "Standard"}
}

// BuildPrompt constructs the default extraction prompt embedding both
// raw descriptions and the requested field names
func BuildPrompt(string1, string2 string, fields []string) string {
	var b strings.Builder
	b.WriteString("Compare the following two product descriptions and extract these fields:\n")
	for _, f := range fields {
		fmt.Fprintf(&b, "- %s\n", f)
	}
	b.WriteString("\nReturn a JSON object for each string with field-value pairs.\n\n")
	fmt.Fprintf(&b, "String 1: %s\n", string1)
	fmt.Fprintf(&b, "String 2: %s\n", string2)
	return b.String()
}
