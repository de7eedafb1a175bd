package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kapilank-k/product-comparator/internal/model"
	"github.com/kapilank-k/product-comparator/internal/pipeline"
	"github.com/kapilank-k/product-comparator/internal/report"
)

var (
	compareMode string
	pairID      int
	outJSON     string
	timeout     time.Duration
	noStatus    bool
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare [string1 string2]",
	Short: "Compare two product descriptions field by field",
	Long: `Compare extracts structured fields from both descriptions and prints
a per-aspect comparison table.

Two extraction modes exist:
- annotated:  the full rule table with human-readable annotations
              ("53 (implied)", "FORM :- Bulk", ...)
- normalized: canonical values (FE500D, 32.00 mm, ...) with graded
              matching (exact, fuzzy, semantic)

With no arguments the command reads description pairs interactively;
type "exit" at either prompt to quit.

Example:
  prodcompare compare "OPC53" "ORDINARY PORTLAND CEMENT; GRADE :- 53; FORM :- Bulk;"
  prodcompare compare --mode normalized --llm "TMT-FE_500D-32mm" "REINFORCEMENT STEEL BAR; GRADE :- Fe 500D;"`,
	Args: cobra.RangeArgs(0, 2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringVar(&compareMode, "mode", "annotated", "extraction mode (annotated, normalized)")
	compareCmd.Flags().IntVar(&pairID, "pair", 0, "curated pair id selecting the aspect order (annotated mode, 0 = generic)")
	compareCmd.Flags().StringVar(&outJSON, "json", "", "also write the report as JSON to this path")
	compareCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall comparison timeout")
	compareCmd.Flags().BoolVar(&noStatus, "no-status", false, "hide the match status column")

	// LLM flags
	compareCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable the LLM extraction fallback for missing fields")
	compareCmd.Flags().StringVar(&llmProvider, "llm-provider", "groq", "LLM provider (groq, openai)")
	compareCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default when empty)")
}

// buildConfig assembles the configuration from defaults, config file
// and flags. A missing API credential is not an error here: the
// fallback orchestrator surfaces it as a failure string in the report.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()

	if v := viper.GetFloat64("match.fuzzy_threshold"); v != 0 {
		cfg.Match.FuzzyThreshold = v
	}
	if v := viper.GetFloat64("match.semantic_threshold"); v != 0 {
		cfg.Match.SemanticThreshold = v
	}
	if v := viper.GetString("match.embedding_model"); v != "" {
		cfg.Match.EmbeddingModel = v
	}
	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}

	if v := viper.GetString("llm.provider"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := viper.GetString("llm.model"); v != "" {
		cfg.LLM.Model = v
	}
	if v := viper.GetString("llm.base_url"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := viper.GetInt("llm.timeout"); v != 0 {
		cfg.LLM.Timeout = v
	}
	if v := viper.GetInt("llm.max_tokens"); v != 0 {
		cfg.LLM.MaxTokens = v
	}
	if viper.IsSet("llm.temperature") {
		cfg.LLM.Temperature = float32(viper.GetFloat64("llm.temperature"))
	}

	cfg.Output.Verbose = verbose
	cfg.Output.ShowStatus = !noStatus

	// Flags beat the config file.
	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		if llmModel != "" {
			cfg.LLM.Model = llmModel
		}
	}

	if cfg.LLM.Provider != "" {
		switch cfg.LLM.Provider {
		case "groq":
			cfg.LLM.APIKey = os.Getenv("GROQ_API_KEY")
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		if cfg.LLM.APIKey == "" && verbose {
			fmt.Fprintf(os.Stderr, "Warning: no API key for provider %s; fallback will report the failure\n", cfg.LLM.Provider)
		}
	}

	return cfg
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg := buildConfig()
	p := pipeline.NewPipeline(cfg)
	renderer := report.NewRenderer(os.Stdout)

	if len(args) == 2 {
		return runOnce(ctx, p, renderer, args[0], args[1])
	}

	return runInteractive(ctx, p, renderer)
}

func runOnce(ctx context.Context, p *pipeline.Pipeline, renderer *report.Renderer, s1, s2 string) error {
	rep, err := compareOne(ctx, p, s1, s2)
	if err != nil {
		return err
	}
	renderer.Render(rep)

	if outJSON != "" {
		if err := renderer.RenderJSON(rep, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote JSON: %s\n", outJSON)
		}
	}
	return nil
}

func runInteractive(ctx context.Context, p *pipeline.Pipeline, renderer *report.Renderer) error {
	fmt.Println("Product Comparator - enter two descriptions per round")
	fmt.Println(`Type "exit" at any prompt to quit.`)

	scanner := bufio.NewScanner(os.Stdin)
	for round := 1; ; round++ {
		fmt.Printf("\n--- Comparison %d ---\n", round)

		s1, ok := prompt(scanner, "Enter String 1: ")
		if !ok {
			break
		}
		s2, ok := prompt(scanner, "Enter String 2: ")
		if !ok {
			break
		}

		rep, err := compareOne(ctx, p, s1, s2)
		if err != nil {
			return err
		}
		renderer.Render(rep)
	}

	fmt.Println("Thank you for using the tool. Goodbye!")
	return nil
}

// prompt reads one trimmed line; ok is false on EOF or the exit sentinel
func prompt(scanner *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	if !scanner.Scan() {
		return "", false
	}
	line := strings.TrimSpace(scanner.Text())
	if strings.EqualFold(line, "exit") {
		return "", false
	}
	return line, true
}

func compareOne(ctx context.Context, p *pipeline.Pipeline, s1, s2 string) (*model.Report, error) {
	switch compareMode {
	case "annotated":
		return p.CompareAnnotated(ctx, s1, s2, pairID), nil
	case "normalized":
		return p.CompareNormalized(ctx, s1, s2), nil
	default:
		return nil, fmt.Errorf("unknown mode: %s (supported: annotated, normalized)", compareMode)
	}
}
