package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"

	"github.com/kapilank-k/product-comparator/internal/model"
)

func completionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("expected path /chat/completions, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("unexpected Authorization header %q", r.Header.Get("Authorization"))
		}

		var req openai.ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if len(req.Messages) != 1 {
			t.Errorf("expected a single user message, got %d", len(req.Messages))
		}
		prompt := req.Messages[0].Content
		for _, want := range []string{"String 1: OPC53", "String 2: TMT bar", "- Grade", "- Standard"} {
			if !strings.Contains(prompt, want) {
				t.Errorf("prompt missing %q:\n%s", want, prompt)
			}
		}
		if req.Temperature != 0.2 {
			t.Errorf("expected temperature 0.2, got %v", req.Temperature)
		}

		resp := openai.ChatCompletionResponse{
			ID:     "chatcmpl-123",
			Object: "chat.completion",
			Model:  req.Model,
			Choices: []openai.ChatCompletionChoice{
				{
					Index:        0,
					Message:      openai.ChatCompletionMessage{Role: "assistant", Content: content},
					FinishReason: "stop",
				},
			},
			Usage: openai.Usage{TotalTokens: 42},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestChatProvider_ExtractFields(t *testing.T) {
	server := completionServer(t, `{"String 1": {"Grade": "53"}}`)
	defer server.Close()

	provider, err := NewChatProvider("groq", model.LLMConfig{
		APIKey:      "test-key",
		BaseURL:     server.URL,
		Model:       "llama3-70b-8192",
		Timeout:     5,
		Temperature: 0.2,
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}

	resp, err := provider.ExtractFields(context.Background(), ExtractRequest{
		String1: "OPC53",
		String2: "TMT bar",
	})
	if err != nil {
		t.Fatalf("ExtractFields failed: %v", err)
	}

	if resp.Content != `{"String 1": {"Grade": "53"}}` {
		t.Errorf("unexpected content: %s", resp.Content)
	}
	if resp.Model != "llama3-70b-8192" {
		t.Errorf("unexpected model: %s", resp.Model)
	}
	if resp.TokensUsed != 42 {
		t.Errorf("unexpected token count: %d", resp.TokensUsed)
	}
}

func TestChatProvider_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{ID: "x"})
	}))
	defer server.Close()

	provider, err := NewChatProvider("openai", model.LLMConfig{
		APIKey: "test-key", BaseURL: server.URL, Model: "gpt-4o-mini", Timeout: 5,
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}

	_, err = provider.ExtractFields(context.Background(), ExtractRequest{String1: "a", String2: "b"})
	if err == nil || !strings.Contains(err.Error(), "no completion choices") {
		t.Errorf("expected malformed-response error, got %v", err)
	}
}

func TestChatProvider_RequiresKey(t *testing.T) {
	if _, err := NewChatProvider("groq", model.LLMConfig{}); err == nil {
		t.Error("expected error for missing API key")
	}
}

func TestNewProvider(t *testing.T) {
	t.Run("groq defaults", func(t *testing.T) {
		p, err := NewProvider(model.LLMConfig{Provider: "groq", APIKey: "k"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cp := p.(*ChatProvider)
		if cp.config.BaseURL != groqBaseURL {
			t.Errorf("expected groq base URL, got %s", cp.config.BaseURL)
		}
		if cp.config.Model != groqDefaultModel {
			t.Errorf("expected default groq model, got %s", cp.config.Model)
		}
	})

	t.Run("openai defaults", func(t *testing.T) {
		p, err := NewProvider(model.LLMConfig{Provider: "openai", APIKey: "k"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.(*ChatProvider).config.Model != openaiDefaultModel {
			t.Errorf("expected default openai model, got %s", p.(*ChatProvider).config.Model)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		p, err := NewProvider(model.LLMConfig{})
		if err != nil || p != nil {
			t.Errorf("expected (nil, nil) for empty provider, got (%v, %v)", p, err)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if _, err := NewProvider(model.LLMConfig{Provider: "mistral"}); err == nil {
			t.Error("expected error for unknown provider")
		}
	})
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("OPC53", "TMT bar", DefaultFields())

	for _, want := range []string{
		"- Grade", "- Diameter", "- Material", "- Form", "- Length", "- Standard",
		"String 1: OPC53", "String 2: TMT bar", "JSON object",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
