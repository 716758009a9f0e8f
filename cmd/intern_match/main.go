// Package main provides the intern-match CLI: an HTTP API server plus
// file-based ranking and gap analysis commands.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "intern_match",
	Short: "Internship matching and skill gap engine",
	Long:  "intern-match ranks internship opportunities against candidate profiles and analyzes skill gaps with curated learning resources, via REST API or local files.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
