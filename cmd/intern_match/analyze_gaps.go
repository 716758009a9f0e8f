package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ananya/intern-match/internal/gap"
	"github.com/ananya/intern-match/internal/observability"
)

var (
	gapsProfilePath string
	gapsOutputPath  string
	gapsCategories  []string
	gapsVerbose     bool
)

var analyzeGapsCmd = &cobra.Command{
	Use:   "analyze-gaps",
	Short: "Analyze a candidate's skill gaps per role category",
	Long:  "Compare a profile's skills against role category requirements and write per-category gap reports with prioritized learning resources as JSON.",
	RunE:  runAnalyzeGaps,
}

func init() {
	analyzeGapsCmd.Flags().StringVarP(&gapsProfilePath, "profile", "i", "", "Path to candidate profile JSON (required)")
	analyzeGapsCmd.Flags().StringVarP(&gapsOutputPath, "out", "o", "", "Path for gap analysis output JSON (required)")
	analyzeGapsCmd.Flags().StringSliceVarP(&gapsCategories, "category", "c", nil, "Role category to analyze (repeatable; defaults derive from interests)")
	analyzeGapsCmd.Flags().BoolVarP(&gapsVerbose, "verbose", "v", false, "Print a readable gap summary to stdout")

	if err := analyzeGapsCmd.MarkFlagRequired("profile"); err != nil {
		panic(err)
	}
	if err := analyzeGapsCmd.MarkFlagRequired("out"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(analyzeGapsCmd)
}

func runAnalyzeGaps(cmd *cobra.Command, args []string) error {
	profile, err := loadProfile(gapsProfilePath)
	if err != nil {
		return err
	}

	analysis := gap.Analyze(profile, gapsCategories, gap.DefaultConfig())

	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling analysis: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(gapsOutputPath), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(gapsOutputPath, data, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if gapsVerbose {
		observability.NewPrinter(os.Stdout).PrintGapAnalysis(analysis)
	}

	fmt.Printf("Analyzed %d categories -> %s\n", len(analysis.Reports), gapsOutputPath)
	return nil
}
