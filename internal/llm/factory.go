package llm

import (
	"fmt"
	"strings"

	"github.com/kapilank-k/product-comparator/internal/model"
)

const (
	groqBaseURL      = "https://api.groq.com/openai/v1"
	groqDefaultModel = "llama3-70b-8192"

	openaiDefaultModel = "gpt-4o-mini"
)

// NewProvider creates a completion provider based on configuration.
// An empty provider name disables the fallback and returns (nil, nil).
func NewProvider(config model.LLMConfig) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "groq":
		if config.BaseURL == "" {
			config.BaseURL = groqBaseURL
		}
		if config.Model == "" {
			config.Model = groqDefaultModel
		}
		return NewChatProvider("groq", config)

	case "openai":
		if config.Model == "" {
			config.Model = openaiDefaultModel
		}
		return NewChatProvider("openai", config)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: groq, openai)", config.Provider)
	}
}
