package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	appconfig "github.com/ananya/intern-match/internal/config"
	"github.com/ananya/intern-match/internal/gap"
	"github.com/ananya/intern-match/internal/ranking"
	"github.com/ananya/intern-match/internal/server"
)

var (
	servePort    int
	serveConfig  string
	serveCatalog string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the matching API server",
	Long:  "Start the HTTP API server exposing ranking, gap analysis, and opportunity catalog endpoints.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default 8080, or PORT env var)")
	serveCmd.Flags().StringVarP(&serveConfig, "config", "c", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveCatalog, "catalog", "", "Path to a JSON catalog file (used when DATABASE_URL is not set)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := appconfig.Defaults()

	if serveConfig != "" {
		loaded, err := appconfig.LoadConfig(serveConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		cfg = loaded.MergeWithDefaults(cfg)
	}

	// Flags and environment override the config file.
	port := cfg.Port
	if envPort := os.Getenv("PORT"); envPort != "" {
		p, err := strconv.Atoi(envPort)
		if err != nil {
			return fmt.Errorf("invalid PORT value %q: %w", envPort, err)
		}
		port = p
	}
	if servePort != 0 {
		port = servePort
	}

	catalogPath := cfg.CatalogFile
	if serveCatalog != "" {
		catalogPath = serveCatalog
	}

	srv, err := server.New(server.Config{
		Port:        port,
		DatabaseURL: envOr("DATABASE_URL", cfg.DatabaseURL),
		CatalogPath: catalogPath,
		GeminiKey:   envOr("GEMINI_API_KEY", cfg.APIKey),
		DefaultTopN: cfg.TopN,
		Ranking: ranking.Config{
			HighStipendThreshold: cfg.HighStipendThreshold,
			RemoteCategory:       cfg.RemoteCategory,
		},
		Gap: gap.Config{
			MaxPrioritySkills: cfg.MaxPrioritySkills,
			ResourcesPerSkill: cfg.ResourcesPerSkill,
		},
	})
	if err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	return srv.Start()
}

// envOr returns the environment value for key, falling back to the
// config-file value when the variable is unset or empty.
func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
