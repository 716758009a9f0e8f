// Package taxonomy provides the curated skill taxonomy: per-category skill
// requirements and learning resources for individual skills. The data is
// stored as a JSON file and embedded at compile time.
package taxonomy

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/ananya/intern-match/internal/parsing"
	"github.com/ananya/intern-match/internal/types"
)

//go:embed taxonomy.json
var taxonomyFiles embed.FS

// ErrUnknownCategory is returned when a category has no taxonomy entry.
var ErrUnknownCategory = errors.New("unknown category")

// Requirements lists the skills expected for a job category.
type Requirements struct {
	Required  []string `json:"required"`
	Preferred []string `json:"preferred"`
}

// DefaultCategories are the fallback analysis targets when a profile's
// interests match no category.
var DefaultCategories = []string{"Data Analytics Intern", "Software Development Intern"}

type taxonomyData struct {
	Categories map[string]Requirements             `json:"categories"`
	Resources  map[string][]types.LearningResource `json:"resources"`
}

// cache holds the parsed taxonomy file. Loading failures are sticky; the
// embedded file is validated by tests so a failure here means a broken build.
var (
	cache     *taxonomyData
	cacheErr  error
	cacheOnce sync.Once
)

func load() (*taxonomyData, error) {
	cacheOnce.Do(func() {
		data, err := taxonomyFiles.ReadFile("taxonomy.json")
		if err != nil {
			cacheErr = fmt.Errorf("failed to read taxonomy file: %w", err)
			return
		}
		var parsed taxonomyData
		if err := json.Unmarshal(data, &parsed); err != nil {
			cacheErr = fmt.Errorf("failed to parse taxonomy file: %w", err)
			return
		}
		cache = &parsed
	})
	return cache, cacheErr
}

// RequirementsFor returns the skill requirements for a job category.
// Returns ErrUnknownCategory when the category has no entry.
func RequirementsFor(category string) (Requirements, error) {
	data, err := load()
	if err != nil {
		return Requirements{}, err
	}
	reqs, ok := data.Categories[category]
	if !ok {
		return Requirements{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return reqs, nil
}

// ResourcesFor returns the curated learning resources for a skill, or nil
// when the taxonomy has none for it.
func ResourcesFor(skill string) []types.LearningResource {
	data, err := load()
	if err != nil {
		return nil
	}
	return data.Resources[skill]
}

// Categories returns all known category names in sorted order.
func Categories() []string {
	data, err := load()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(data.Categories))
	for name := range data.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CategoriesMatchingInterests returns the categories whose names contain
// any of the given interests, case-insensitively, in sorted order.
func CategoriesMatchingInterests(interests []string) []string {
	var matched []string
	for _, name := range Categories() {
		for _, interest := range interests {
			if parsing.ContainsFold(name, interest) {
				matched = append(matched, name)
				break
			}
		}
	}
	return matched
}
