// Package gap implements skill gap analysis: comparing a candidate's skills
// against the taxonomy requirements of target job categories and binding
// learning resources to the highest-priority missing skills.
package gap

import (
	"errors"
	"log"
	"math"

	"github.com/ananya/intern-match/internal/parsing"
	"github.com/ananya/intern-match/internal/taxonomy"
	"github.com/ananya/intern-match/internal/types"
)

// Config holds the tunable gap analysis limits.
type Config struct {
	// MaxPrioritySkills caps the priority list length.
	MaxPrioritySkills int
	// ResourcesPerSkill is how many taxonomy resources each priority
	// skill carries.
	ResourcesPerSkill int
}

// DefaultConfig returns the gap analysis limits used in production.
func DefaultConfig() Config {
	return Config{
		MaxPrioritySkills: 6,
		ResourcesPerSkill: 2,
	}
}

// Analyze compares the profile against each target category's requirements.
// When categories is empty, targets are derived from the profile's
// interests; if no category matches an interest the analyzer falls back to
// taxonomy.DefaultCategories. Unknown categories are skipped rather than
// failing the whole analysis.
func Analyze(profile *types.Profile, categories []string, cfg Config) *types.GapAnalysis {
	if profile == nil {
		profile = &types.Profile{}
	}
	if len(categories) == 0 {
		categories = taxonomy.CategoriesMatchingInterests(profile.Interests)
		if len(categories) == 0 {
			categories = taxonomy.DefaultCategories
		}
	}

	reports := make([]types.SkillGapReport, 0, len(categories))
	for _, category := range categories {
		reqs, err := taxonomy.RequirementsFor(category)
		if err != nil {
			if errors.Is(err, taxonomy.ErrUnknownCategory) {
				log.Printf("[gap] Skipping category with no taxonomy entry: %q", category)
				continue
			}
			log.Printf("[gap] Skipping category %q: %v", category, err)
			continue
		}
		reports = append(reports, reportFor(profile, category, reqs))
	}

	return &types.GapAnalysis{
		Reports:           reports,
		Priority:          priorityList(reports, cfg),
		TotalMissing:      countMissing(reports),
		AverageCompletion: averageCompletion(reports),
	}
}

// reportFor partitions one category's skills against the profile. Possessed
// preferred skills are not reported separately; only the gaps matter.
func reportFor(profile *types.Profile, category string, reqs taxonomy.Requirements) types.SkillGapReport {
	report := types.SkillGapReport{
		Category:         category,
		HasRequired:      []string{},
		MissingRequired:  []string{},
		MissingPreferred: []string{},
	}

	for _, skill := range reqs.Required {
		if parsing.ContainsSkill(profile.Skills, skill) {
			report.HasRequired = append(report.HasRequired, skill)
		} else {
			report.MissingRequired = append(report.MissingRequired, skill)
		}
	}
	for _, skill := range reqs.Preferred {
		if !parsing.ContainsSkill(profile.Skills, skill) {
			report.MissingPreferred = append(report.MissingPreferred, skill)
		}
	}

	// A category with no required skills is trivially complete.
	if len(reqs.Required) == 0 {
		report.Completion = 100
	} else {
		report.Completion = int(math.Round(100 * float64(len(report.HasRequired)) / float64(len(reqs.Required))))
	}
	return report
}

// priorityList builds the learning priorities: every missing-required skill
// across categories, then every missing-preferred, deduplicated in
// first-seen order, kept only when the taxonomy has resources for it.
func priorityList(reports []types.SkillGapReport, cfg Config) []types.PrioritySkill {
	var missing []string
	for _, r := range reports {
		missing = append(missing, r.MissingRequired...)
	}
	for _, r := range reports {
		missing = append(missing, r.MissingPreferred...)
	}
	missing = parsing.Dedup(missing)

	priority := make([]types.PrioritySkill, 0, cfg.MaxPrioritySkills)
	for _, skill := range missing {
		if len(priority) >= cfg.MaxPrioritySkills {
			break
		}
		resources := taxonomy.ResourcesFor(skill)
		if len(resources) == 0 {
			continue
		}
		if len(resources) > cfg.ResourcesPerSkill {
			resources = resources[:cfg.ResourcesPerSkill]
		}
		priority = append(priority, types.PrioritySkill{Skill: skill, Resources: resources})
	}
	return priority
}

func countMissing(reports []types.SkillGapReport) int {
	var all []string
	for _, r := range reports {
		all = append(all, r.MissingRequired...)
		all = append(all, r.MissingPreferred...)
	}
	return len(parsing.Dedup(all))
}

func averageCompletion(reports []types.SkillGapReport) int {
	if len(reports) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reports {
		sum += r.Completion
	}
	return int(math.Round(float64(sum) / float64(len(reports))))
}
