package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	outJSON           string
	analyzeTimeout    time.Duration
	noCache           bool
	noRobots          bool
	narrativeEnabled  bool
	narrativeProvider string
	narrativeModel    string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <url-or-text>",
	Short: "Analyze a URL or claim and generate a risk report",
	Long: `Analyze runs the full pipeline against a single input:
- Extract verifiable claims from the content
- Check each claim against structured knowledge and tiered web evidence
- Measure sentiment and coordinated-messaging similarity
- Score source credibility
- Combine the signals into a risk assessment with corrections

Example:
  crosscheck analyze https://example.com/article
  crosscheck analyze "Elon Musk is the CEO of Apple"
  crosscheck analyze "some claim" --narrative openai --narrative-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (default: stdout)")

	// Pipeline flags
	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable knowledge-lookup cache")
	analyzeCmd.Flags().BoolVar(&noRobots, "no-robots", false, "ignore robots.txt when fetching pages")

	// Narrative flags
	analyzeCmd.Flags().BoolVar(&narrativeEnabled, "narrative", false, "enable generative narrative verdict")
	analyzeCmd.Flags().StringVar(&narrativeProvider, "narrative-provider", "openai", "narrative provider (openai, anthropic, ollama)")
	analyzeCmd.Flags().StringVar(&narrativeModel, "narrative-model", "", "narrative model name (provider default if empty)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	cfg := loadConfig()
	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache
	cfg.HTTP.RespectRobots = cfg.HTTP.RespectRobots && !noRobots

	if narrativeEnabled {
		if err := configureNarrative(cfg, narrativeProvider, narrativeModel); err != nil {
			return err
		}
	}

	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	analyzer, err := buildAnalyzer(cfg, log)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", input)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", analyzeTimeout)
		fmt.Fprintln(os.Stderr)
	}

	analysis, err := analyzer.Analyze(ctx, input)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Checked %d claims\n", analysis.CrossCheck.ClaimsChecked)
		fmt.Fprintf(os.Stderr, "✓ Overall reliability: %s\n", analysis.CrossCheck.OverallReliability)
		fmt.Fprintf(os.Stderr, "✓ Risk level: %s\n", analysis.Risk.RiskLevel)
		if analysis.Narrative != nil {
			fmt.Fprintf(os.Stderr, "✓ Narrative verdict: %s\n", analysis.Narrative.Verdict)
		}
		fmt.Fprintln(os.Stderr)
	}

	return writeAnalysis(analysis, outJSON)
}

// writeAnalysis renders the result as indented JSON to the path or stdout
func writeAnalysis(analysis interface{}, path string) error {
	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Report written to %s\n", path)
	}
	return nil
}
