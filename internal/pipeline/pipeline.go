package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/kapilank-k/product-comparator/internal/cache"
	"github.com/kapilank-k/product-comparator/internal/llm"
	"github.com/kapilank-k/product-comparator/internal/match"
	"github.com/kapilank-k/product-comparator/internal/model"
	"github.com/kapilank-k/product-comparator/internal/normalize"
	"github.com/kapilank-k/product-comparator/internal/report"
	"github.com/kapilank-k/product-comparator/internal/rules"
)

// Pipeline orchestrates the complete comparison process: extraction on
// both inputs, per-aspect comparison, aspect selection, report assembly
// and the missing-field fallback.
type Pipeline struct {
	extractor *rules.Extractor
	strictCmp *match.Comparator
	gradedCmp *match.Comparator
	fallback  *llm.Orchestrator
	config    *model.Config
}

// NewPipeline creates a pipeline with the given configuration. The
// semantic oracle is built once here and reused for every comparison;
// if it cannot be constructed the graded comparator simply loses its
// semantic tier.
func NewPipeline(cfg *model.Config) *Pipeline {
	var oracle match.Oracle
	if cfg.LLM.APIKey != "" {
		var c cache.Cache
		if cfg.Cache.Enabled {
			c = cache.NewMemoryCache(cfg.Cache.TTL, 2*cfg.Cache.TTL)
		}
		o, err := match.NewEmbeddingOracle(cfg.LLM, cfg.Match, c, cfg.Cache.TTL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: semantic matching disabled: %v\n", err)
		} else {
			oracle = o
		}
	}

	return &Pipeline{
		extractor: rules.NewExtractor(),
		strictCmp: match.NewStrictComparator(),
		gradedCmp: match.NewComparator(cfg.Match, oracle),
		fallback:  llm.NewOrchestrator(cfg.LLM),
		config:    cfg,
	}
}

// CompareAnnotated runs the rule-table path: annotated display values,
// presence/equality comparison, aspect order selected by pair id
// (0 = generic order).
func (p *Pipeline) CompareAnnotated(ctx context.Context, string1, string2 string, pairID int) *model.Report {
	d1 := p.extractor.Extract(string1)
	d2 := p.extractor.Extract(string2)

	order := report.Order(pairID)
	rows := report.Build(order, d1, d2)

	if p.config.Output.ShowStatus {
		for i := range rows {
			v1, ok1 := d1[rows[i].Aspect]
			v2, ok2 := d2[rows[i].Aspect]
			rows[i].Status = p.strictCmp.Compare(ctx, v1, v2, ok1, ok2)
		}
	}

	return &model.Report{
		PairID:      pairID,
		Left:        string1,
		Right:       string2,
		Mode:        "annotated",
		GeneratedAt: time.Now().UTC(),
		Rows:        rows,
	}
}

// CompareNormalized runs the canonical-value path: preprocessing, the
// six targeted extractors, graded comparison, and the LLM fallback when
// any field is missing on either side.
func (p *Pipeline) CompareNormalized(ctx context.Context, string1, string2 string) *model.Report {
	t1 := normalize.Preprocess(string1)
	t2 := normalize.Preprocess(string2)

	rec1 := make(model.Record)
	rec2 := make(model.Record)
	for _, fe := range normalize.Extractors() {
		if v, ok := fe.Extract(t1); ok {
			rec1[fe.Field] = v
		}
		if v, ok := fe.Extract(t2); ok {
			rec2[fe.Field] = v
		}
	}

	rows := report.BuildGraded(ctx, report.NormalizedOrder, rec1, rec2, p.gradedCmp)

	rep := &model.Report{
		Left:        string1,
		Right:       string2,
		Mode:        "normalized",
		GeneratedAt: time.Now().UTC(),
		Rows:        rows,
	}

	// The fallback sees the raw originals, not the preprocessed text:
	// the model may well recover detail the cleanup discarded.
	if p.fallback.Enabled() && p.fallback.Needed(rows) {
		rep.Fallback = p.fallback.Run(ctx, string1, string2)
	}

	return rep
}
