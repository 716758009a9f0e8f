package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ananya/intern-match/internal/catalog"
	"github.com/ananya/intern-match/internal/llm"
	"github.com/ananya/intern-match/internal/observability"
	"github.com/ananya/intern-match/internal/ranking"
	"github.com/ananya/intern-match/internal/schemas"
	"github.com/ananya/intern-match/internal/scoring"
	"github.com/ananya/intern-match/internal/types"
)

var (
	rankProfilePath string
	rankCatalogPath string
	rankOutputPath  string
	rankTopN        int
	rankVerbose     bool
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank catalog opportunities against a candidate profile",
	Long:  "Score every active opportunity in a catalog file against a profile file and write the ranked matches as JSON. Uses the LLM scorer when GEMINI_API_KEY is set, heuristic scoring otherwise.",
	RunE:  runRank,
}

func init() {
	rankCmd.Flags().StringVarP(&rankProfilePath, "profile", "i", "", "Path to candidate profile JSON (required)")
	rankCmd.Flags().StringVarP(&rankCatalogPath, "catalog", "f", "", "Path to opportunity catalog JSON (required)")
	rankCmd.Flags().StringVarP(&rankOutputPath, "out", "o", "", "Path for ranked output JSON (required)")
	rankCmd.Flags().IntVarP(&rankTopN, "top", "n", 10, "Number of top matches to return")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print a readable match summary to stdout")

	if err := rankCmd.MarkFlagRequired("profile"); err != nil {
		panic(err)
	}
	if err := rankCmd.MarkFlagRequired("catalog"); err != nil {
		panic(err)
	}
	if err := rankCmd.MarkFlagRequired("out"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	profile, err := loadProfile(rankProfilePath)
	if err != nil {
		return err
	}

	provider := catalog.NewFileProvider(rankCatalogPath)
	opportunities, err := provider.ActiveOpportunities(ctx)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	scorer, closeScorer, err := buildScorer(ctx)
	if err != nil {
		return err
	}
	defer closeScorer()

	engine := ranking.NewEngine(scorer, ranking.DefaultConfig())
	results, err := engine.Rank(ctx, profile, opportunities, rankTopN)
	if err != nil {
		return fmt.Errorf("ranking opportunities: %w", err)
	}
	stats := ranking.Summarize(results)

	output := types.Ranking{Results: results, Stats: stats}
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling results: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(rankOutputPath), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(rankOutputPath, data, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if rankVerbose {
		observability.NewPrinter(os.Stdout).PrintMatches(results, stats)
	}

	fmt.Printf("Ranked %d matches -> %s\n", len(results), rankOutputPath)
	return nil
}

// loadProfile reads and schema-validates a candidate profile file.
func loadProfile(path string) (*types.Profile, error) {
	schemaPath := schemas.ResolveSchemaPath("schemas/profile.schema.json")
	if _, err := os.Stat(schemaPath); err == nil {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, fmt.Errorf("profile validation failed: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	var profile types.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}
	return &profile, nil
}

// buildScorer returns an LLM-backed scorer when GEMINI_API_KEY is set,
// nil otherwise. The returned close function is always safe to call.
func buildScorer(ctx context.Context) (scoring.Scorer, func(), error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, func() {}, nil
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing LLM client: %w", err)
	}
	return scoring.NewGeminiScorer(client), func() { _ = client.Close() }, nil
}
