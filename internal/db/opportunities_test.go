package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildListQueryDefaults(t *testing.T) {
	query, args := buildListQuery(OpportunityFilters{})
	assert.Contains(t, query, "WHERE is_active = true")
	assert.Contains(t, query, "ORDER BY created_at DESC LIMIT $1")
	assert.Equal(t, []any{50}, args)
}

func TestBuildListQueryAllFilters(t *testing.T) {
	query, args := buildListQuery(OpportunityFilters{
		Search:   "data",
		Category: "tech",
		Location: "mumbai",
		Limit:    10,
	})

	assert.Contains(t, query, "title ILIKE $1")
	assert.Contains(t, query, "category = $2")
	assert.Contains(t, query, "location ILIKE $3")
	assert.Contains(t, query, "LIMIT $4")
	assert.Equal(t, []any{"%data%", "tech", "%mumbai%", 10}, args)
}

func TestBuildListQueryPlaceholdersMatchArgs(t *testing.T) {
	query, args := buildListQuery(OpportunityFilters{Category: "design"})
	assert.Equal(t, len(args), strings.Count(query, "$"))
}
