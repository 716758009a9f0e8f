// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/ananya/intern-match/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatches outputs the top ranked matches with scores and badges.
func (p *Printer) PrintMatches(results []types.MatchResult, stats types.RankStats) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := results[i]
		sb.WriteString(fmt.Sprintf("%d. [%3d] %s @ %s\n", i+1, r.Score, r.Opportunity.Title, r.Opportunity.Company))
		if len(r.MatchedSkills) > 0 {
			sb.WriteString(fmt.Sprintf("   skills: %s\n", strings.Join(r.MatchedSkills, ", ")))
		}
		if len(r.Badges) > 0 {
			sb.WriteString(fmt.Sprintf("   badges: %s\n", strings.Join(r.Badges, " | ")))
		}
	}
	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(results)-maxItemsToShow))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("avg score: %d  high matches: %d  avg stipend: %d",
		stats.AverageScore, stats.HighMatches, stats.AverageStipend))

	p.printBox("RANKED MATCHES", sb.String())
}

// PrintGapAnalysis outputs per-category gap reports and learning priorities.
func (p *Printer) PrintGapAnalysis(analysis *types.GapAnalysis) {
	if analysis == nil || len(analysis.Reports) == 0 {
		return
	}

	var sb strings.Builder
	for _, report := range analysis.Reports {
		sb.WriteString(fmt.Sprintf("%s (%d%% complete)\n", report.Category, report.Completion))
		if len(report.MissingRequired) > 0 {
			sb.WriteString(fmt.Sprintf("  missing required: %s\n", strings.Join(report.MissingRequired, ", ")))
		}
		if len(report.MissingPreferred) > 0 {
			sb.WriteString(fmt.Sprintf("  missing preferred: %s\n", strings.Join(report.MissingPreferred, ", ")))
		}
	}

	if len(analysis.Priority) > 0 {
		sb.WriteString("\nLearn next:\n")
		for i, ps := range analysis.Priority {
			sb.WriteString(fmt.Sprintf("  %d. %s", i+1, ps.Skill))
			if len(ps.Resources) > 0 {
				sb.WriteString(fmt.Sprintf(" (%s)", ps.Resources[0].Name))
			}
			sb.WriteString("\n")
		}
	}
	sb.WriteString(fmt.Sprintf("\navg completion: %d%%  missing skills: %d",
		analysis.AverageCompletion, analysis.TotalMissing))

	p.printBox("SKILL GAP ANALYSIS", sb.String())
}
