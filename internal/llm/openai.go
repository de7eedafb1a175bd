package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/kapilank-k/product-comparator/internal/model"
)

// ChatProvider implements Provider over any OpenAI-compatible chat
// completions endpoint. Groq exposes the same wire protocol, so both
// the "openai" and "groq" providers are this type with different base
// URLs and default models.
type ChatProvider struct {
	name   string
	client *openai.Client
	config model.LLMConfig
}

// NewChatProvider creates a chat-completions provider
func NewChatProvider(name string, config model.LLMConfig) (*ChatProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("%s API key is required", name)
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = strings.TrimSuffix(config.BaseURL, "/")
	}

	return &ChatProvider{
		name:   name,
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Name returns the provider name
func (p *ChatProvider) Name() string {
	return p.name
}

// ExtractFields issues one chat completion carrying the extraction prompt
func (p *ChatProvider) ExtractFields(ctx context.Context, req ExtractRequest) (*ExtractResponse, error) {
	prompt := req.Prompt
	if prompt == "" {
		fields := req.Fields
		if len(fields) == 0 {
			fields = DefaultFields()
		}
		prompt = BuildPrompt(req.String1, req.String2, fields)
	}

	chatModel := req.Model
	if chatModel == "" {
		chatModel = p.config.Model
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = p.config.MaxTokens
	}

	temperature := req.Temperature
	if temperature == 0 {
		temperature = p.config.Temperature
	}

	timeout := time.Duration(p.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%s API error: %w", p.name, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("unexpected response structure: no completion choices")
	}

	return &ExtractResponse{
		Content:    strings.TrimSpace(resp.Choices[0].Message.Content),
		Model:      chatModel,
		TokensUsed: resp.Usage.TotalTokens,
	}, nil
}
