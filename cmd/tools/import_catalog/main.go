// Command import_catalog fetches an internship listing page, parses the
// opportunity cards, and upserts them into the opportunities table. It also
// deactivates rows whose application deadline has passed.
//
// Usage:
//
//	go run cmd/tools/import_catalog/main.go -url https://example.com/internships -category tech
//	go run cmd/tools/import_catalog/main.go -file listings.html -category business
//
// Requires DATABASE_URL environment variable to be set.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ananya/intern-match/internal/db"
	"github.com/ananya/intern-match/internal/ingest"
)

func main() {
	urlFlag := flag.String("url", "", "Listing page URL to fetch")
	fileFlag := flag.String("file", "", "Local HTML file to parse instead of fetching")
	categoryFlag := flag.String("category", "tech", "Category to assign to imported opportunities")
	dryRunFlag := flag.Bool("dry-run", false, "Parse and print without writing to the database")
	flag.Parse()

	if *urlFlag == "" && *fileFlag == "" {
		fmt.Fprintln(os.Stderr, "ERROR: one of -url or -file is required")
		flag.Usage()
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	html, err := loadHTML(ctx, *urlFlag, *fileFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	opportunities, err := ingest.ParseListing(html, *categoryFlag, ingest.DefaultSelectors())
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to parse listing: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("=== Catalog Import ===\n\n")
	fmt.Printf("Parsed %d opportunities\n\n", len(opportunities))

	if *dryRunFlag {
		for _, opp := range opportunities {
			fmt.Printf("  • %s @ %s (%s, stipend %d, skills %v)\n",
				opp.Title, opp.Company, opp.Location, opp.Stipend, opp.RequiredSkills)
		}
		return
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "ERROR: DATABASE_URL environment variable not set")
		os.Exit(1)
	}

	database, err := db.Connect(ctx, dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	imported := 0
	failed := 0
	for _, opp := range opportunities {
		id, err := database.UpsertOpportunity(ctx, &opp)
		if err != nil {
			fmt.Printf("  ✗ %s @ %s: %v\n", opp.Title, opp.Company, err)
			failed++
			continue
		}
		fmt.Printf("  ✓ %s @ %s (ID: %s)\n", opp.Title, opp.Company, id)
		imported++
	}

	deactivated, err := database.DeactivateExpired(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "WARNING: Failed to deactivate expired rows: %v\n", err)
	}

	fmt.Println()
	fmt.Println("=== Import Summary ===")
	fmt.Printf("  Imported: %d\n", imported)
	fmt.Printf("  Failed: %d\n", failed)
	fmt.Printf("  Deactivated (past deadline): %d\n", deactivated)
}

func loadHTML(ctx context.Context, urlStr, path string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		return string(data), nil
	}

	result, err := ingest.FetchURL(ctx, urlStr, nil)
	if err != nil {
		return "", err
	}
	return result.HTML, nil
}
