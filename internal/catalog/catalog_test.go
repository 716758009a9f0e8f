package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ananya/intern-match/internal/types"
)

func sampleCatalog() []types.Opportunity {
	return []types.Opportunity{
		{Title: "Data Analytics Intern", Company: "DataWorks", Category: "tech", Location: "Mumbai, Maharashtra", Description: "Dashboards and reporting", IsActive: true},
		{Title: "Marketing Intern", Company: "AdLift", Category: "business", Location: "Remote", Description: "Social campaigns", IsActive: true},
		{Title: "Closed Intern", Company: "OldCo", Category: "tech", Location: "Pune", IsActive: false},
	}
}

func TestStaticProviderFiltersInactive(t *testing.T) {
	provider := &Static{Opportunities: sampleCatalog()}

	active, err := provider.ActiveOpportunities(context.Background())
	require.NoError(t, err)
	require.Len(t, active, 2)
	for _, opp := range active {
		assert.True(t, opp.IsActive)
	}
}

func TestFileProviderLoadsAndFilters(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")

	data, err := json.Marshal(sampleCatalog())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	provider := NewFileProvider(path)
	active, err := provider.ActiveOpportunities(context.Background())
	require.NoError(t, err)
	assert.Len(t, active, 2)
}

func TestFileProviderMissingFile(t *testing.T) {
	provider := NewFileProvider(filepath.Join(t.TempDir(), "nope.json"))
	_, err := provider.ActiveOpportunities(context.Background())
	assert.Error(t, err)
}

func TestFileProviderMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	provider := NewFileProvider(path)
	_, err := provider.ActiveOpportunities(context.Background())
	assert.Error(t, err)
}

func TestFilterMatches(t *testing.T) {
	catalog := sampleCatalog()

	tests := []struct {
		name     string
		filter   Filter
		expected int
	}{
		{"no constraints", Filter{}, 3},
		{"search title", Filter{Search: "analytics"}, 1},
		{"search company", Filter{Search: "adlift"}, 1},
		{"search description", Filter{Search: "dashboards"}, 1},
		{"category exact", Filter{Category: "tech"}, 2},
		{"location substring", Filter{Location: "mumbai"}, 1},
		{"combined", Filter{Search: "intern", Category: "business"}, 1},
		{"no match", Filter{Search: "astronaut"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.filter.Apply(catalog), tt.expected)
		})
	}
}
