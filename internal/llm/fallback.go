package llm

import (
	"context"
	"fmt"

	"github.com/kapilank-k/product-comparator/internal/model"
)

// Orchestrator decides when the extraction fallback fires and shields
// the comparison from every possible failure of the external call:
// missing credentials, transport errors and malformed responses all
// become a diagnostic string in the report, never an error return.
type Orchestrator struct {
	provider Provider
	config   model.LLMConfig
	initErr  error
}

// NewOrchestrator creates the fallback orchestrator. Construction never
// fails; a misconfigured provider surfaces later as a failure string
// when (and only when) the fallback actually fires.
func NewOrchestrator(config model.LLMConfig) *Orchestrator {
	provider, err := NewProvider(config)
	return &Orchestrator{
		provider: provider,
		config:   config,
		initErr:  err,
	}
}

// Enabled reports whether a fallback provider is configured
func (o *Orchestrator) Enabled() bool {
	return o.config.Provider != ""
}

// Needed reports whether any row is missing a value on either side
func (o *Orchestrator) Needed(rows []model.Row) bool {
	for _, row := range rows {
		if row.Missing() {
			return true
		}
	}
	return false
}

// Run issues exactly one extraction request for the raw input pair and
// returns the raw model output. Failures degrade to a "LLM call failed"
// result.
func (o *Orchestrator) Run(ctx context.Context, string1, string2 string) *model.FallbackResult {
	if o.initErr != nil {
		return o.failure(o.initErr)
	}
	if o.provider == nil {
		return o.failure(fmt.Errorf("no provider configured"))
	}

	resp, err := o.provider.ExtractFields(ctx, ExtractRequest{
		String1: string1,
		String2: string2,
		Fields:  DefaultFields(),
	})
	if err != nil {
		return o.failure(err)
	}

	return &model.FallbackResult{
		Provider: o.provider.Name(),
		Model:    resp.Model,
		Output:   resp.Content,
	}
}

func (o *Orchestrator) failure(err error) *model.FallbackResult {
	return &model.FallbackResult{
		Provider: o.config.Provider,
		Output:   fmt.Sprintf("LLM call failed: %v", err),
	}
}
