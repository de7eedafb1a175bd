package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kapilank-k/product-comparator/internal/pipeline"
	"github.com/kapilank-k/product-comparator/internal/report"
	"github.com/kapilank-k/product-comparator/internal/worker"
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Compare description pairs from a file",
	Long: `Batch compares description pairs read from a file, one pair per line,
the two descriptions separated by a tab. Empty lines and lines starting
with # are skipped. Pairs run concurrently in normalized mode; reports
print in input order.

Example:
  prodcompare batch pairs.tsv
  prodcompare batch pairs.tsv --concurrency 8 --json results.json`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

var (
	batchConcurrency int
	batchTimeout     time.Duration
	batchJSON        string
)

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "number of pairs to compare concurrently")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for the batch")
	batchCmd.Flags().StringVar(&batchJSON, "json", "", "write all reports as JSON to the given file")
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := buildConfig()
	p := pipeline.NewPipeline(cfg)

	processor := worker.NewBatchProcessor(p, batchConcurrency)
	reports, err := processor.ProcessFile(ctx, args[0])
	if err != nil {
		return err
	}
	if ctx.Err() != nil {
		fmt.Fprintf(os.Stderr, "Warning: batch cut short after %d pairs: %v\n", len(reports), ctx.Err())
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Compared %d pairs with concurrency %d\n\n", len(reports), batchConcurrency)
	}

	renderer := report.NewRenderer(os.Stdout)
	for i, rep := range reports {
		rep.PairID = i + 1
		renderer.Render(rep)
		fmt.Println("---")
	}

	if batchJSON != "" {
		if err := report.RenderJSONAll(reports, batchJSON); err != nil {
			return fmt.Errorf("write JSON output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %d reports to %s\n", len(reports), batchJSON)
	}

	return nil
}
