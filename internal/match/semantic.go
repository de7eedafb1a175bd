package match

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/kapilank-k/product-comparator/internal/cache"
	"github.com/kapilank-k/product-comparator/internal/model"
)

// Oracle scores the semantic similarity of two strings in [0, 1].
// Implementations may call out to a model; the comparator invokes the
// oracle lazily and treats any error as a non-match.
type Oracle interface {
	Similarity(ctx context.Context, a, b string) (float64, error)
}

// EmbeddingOracle implements Oracle over an OpenAI-compatible
// embeddings endpoint: both strings are embedded and compared by cosine
// similarity. Vectors are memoized so repeated field values across
// comparisons are embedded once.
type EmbeddingOracle struct {
	client  *openai.Client
	model   string
	cache   cache.Cache
	ttl     time.Duration
	limiter *rate.Limiter
}

// NewEmbeddingOracle creates the process-wide semantic oracle. Pass a
// nil cache to disable memoization.
func NewEmbeddingOracle(llmCfg model.LLMConfig, matchCfg model.MatchConfig, c cache.Cache, ttl time.Duration) (*EmbeddingOracle, error) {
	if llmCfg.APIKey == "" {
		return nil, fmt.Errorf("embeddings API key is required")
	}

	clientConfig := openai.DefaultConfig(llmCfg.APIKey)
	if llmCfg.BaseURL != "" {
		clientConfig.BaseURL = llmCfg.BaseURL
	}

	return &EmbeddingOracle{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   matchCfg.EmbeddingModel,
		cache:   c,
		ttl:     ttl,
		limiter: rate.NewLimiter(rate.Limit(5), 5),
	}, nil
}

// Similarity embeds both strings and returns their cosine similarity
func (o *EmbeddingOracle) Similarity(ctx context.Context, a, b string) (float64, error) {
	va, err := o.embed(ctx, a)
	if err != nil {
		return 0, fmt.Errorf("embed first value: %w", err)
	}
	vb, err := o.embed(ctx, b)
	if err != nil {
		return 0, fmt.Errorf("embed second value: %w", err)
	}
	return cosine(va, vb), nil
}

func (o *EmbeddingOracle) embed(ctx context.Context, text string) ([]float32, error) {
	key := cache.EmbeddingKey(o.model, text)
	if o.cache != nil {
		if data, found := o.cache.Get(key); found {
			var vec []float32
			if err := json.Unmarshal(data, &vec); err == nil {
				return vec, nil
			}
			// Corrupt entry, fall through to a fresh embedding
			_ = o.cache.Delete(key)
		}
	}

	if err := o.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := o.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(o.model),
	})
	if err != nil {
		return nil, fmt.Errorf("embeddings API error: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("embeddings API returned no data")
	}

	vec := resp.Data[0].Embedding
	if o.cache != nil {
		if data, err := json.Marshal(vec); err == nil {
			_ = o.cache.Set(key, data, o.ttl)
		}
	}
	return vec, nil
}

// cosine computes cosine similarity between two vectors
func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
