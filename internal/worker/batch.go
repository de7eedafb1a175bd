package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/kapilank-k/product-comparator/internal/model"
)

// Comparer produces a comparison report for one description pair.
type Comparer interface {
	CompareNormalized(ctx context.Context, string1, string2 string) *model.Report
}

// Pair is one description pair read from a batch file.
type Pair struct {
	Left  string
	Right string
}

// BatchProcessor compares multiple description pairs concurrently.
type BatchProcessor struct {
	comparer    Comparer
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(comparer Comparer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		comparer:    comparer,
		concurrency: concurrency,
	}
}

// ProcessPairs compares the given pairs concurrently. Reports come back
// in the same order as the input pairs. Pairs whose job never ran
// because the context was cancelled are dropped from the result.
func (b *BatchProcessor) ProcessPairs(ctx context.Context, pairs []Pair) []*model.Report {
	if len(pairs) == 0 {
		return []*model.Report{}
	}

	reports := make([]*model.Report, len(pairs))

	pool := NewPool(b.concurrency)
	pool.Run(ctx, len(pairs), func(ctx context.Context, i int) {
		reports[i] = b.comparer.CompareNormalized(ctx, pairs[i].Left, pairs[i].Right)
	})

	// Cancellation leaves nil holes where jobs were skipped.
	out := reports[:0]
	for _, rep := range reports {
		if rep != nil {
			out = append(out, rep)
		}
	}

	return out
}

// ProcessFile reads description pairs from a file and compares them
// concurrently.
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*model.Report, error) {
	pairs, err := ReadPairsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read pairs: %w", err)
	}

	return b.ProcessPairs(ctx, pairs), nil
}

// ReadPairsFromFile reads description pairs from a file, one pair per
// line, the two descriptions separated by a tab. Empty lines and lines
// starting with # are skipped.
func ReadPairsFromFile(filePath string) ([]Pair, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var pairs []Pair
	lineNo := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		left, right, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("line %d: expected two tab-separated descriptions", lineNo)
		}

		pairs = append(pairs, Pair{
			Left:  strings.TrimSpace(left),
			Right: strings.TrimSpace(right),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return pairs, nil
}
