package model

import "time"

// Config holds the complete application configuration
type Config struct {
	LLM    LLMConfig    `yaml:"llm" mapstructure:"llm"`
	Match  MatchConfig  `yaml:"match" mapstructure:"match"`
	Cache  CacheConfig  `yaml:"cache" mapstructure:"cache"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// LLMConfig configures the completion endpoint used for the extraction
// fallback and the embeddings endpoint used for semantic matching
type LLMConfig struct {
	Provider    string  `yaml:"provider" mapstructure:"provider"` // "groq", "openai", "" = disabled
	Model       string  `yaml:"model" mapstructure:"model"`
	BaseURL     string  `yaml:"base_url" mapstructure:"base_url"`
	APIKey      string  `yaml:"-" mapstructure:"-"` // from env only, never written to config files
	Timeout     int     `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens   int     `yaml:"max_tokens" mapstructure:"max_tokens"`
	Temperature float32 `yaml:"temperature" mapstructure:"temperature"`
}

// MatchConfig configures the tiered field comparator
type MatchConfig struct {
	// FuzzyThreshold is the edit-distance ratio (0-100) above which two
	// values count as a fuzzy match.
	FuzzyThreshold float64 `yaml:"fuzzy_threshold" mapstructure:"fuzzy_threshold"`

	// SemanticThreshold is the cosine similarity (0-1) above which two
	// values count as a semantic match.
	SemanticThreshold float64 `yaml:"semantic_threshold" mapstructure:"semantic_threshold"`

	// EmbeddingModel names the embeddings model backing the semantic oracle.
	EmbeddingModel string `yaml:"embedding_model" mapstructure:"embedding_model"`
}

// CacheConfig configures embedding memoization
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// OutputConfig configures report rendering
type OutputConfig struct {
	Verbose    bool `yaml:"verbose" mapstructure:"verbose"`
	ShowStatus bool `yaml:"show_status" mapstructure:"show_status"` // include the Match Status column
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:    "", // disabled by default
			Model:       "",
			Timeout:     30,
			MaxTokens:   1000,
			Temperature: 0.2,
		},
		Match: MatchConfig{
			FuzzyThreshold:    85,
			SemanticThreshold: 0.85,
			EmbeddingModel:    "text-embedding-3-small",
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     1 * time.Hour,
		},
		Output: OutputConfig{
			Verbose:    false,
			ShowStatus: true,
		},
	}
}
