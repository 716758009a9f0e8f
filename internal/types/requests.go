package types

import (
	"github.com/go-playground/validator/v10"
)

// RankRequest represents a ranking request. Catalog, when set, is a
// caller-supplied snapshot ranked instead of the server's catalog.
type RankRequest struct {
	// Profile may be empty; an empty profile still ranks, at base scores.
	Profile Profile       `json:"profile"`
	TopN    int           `json:"top_n,omitempty" validate:"omitempty,min=1,max=100"`
	Catalog []Opportunity `json:"catalog,omitempty"`
}

// AnalyzeRequest represents a skill gap analysis request. When Categories is
// empty the analyzer derives target categories from the profile's interests.
type AnalyzeRequest struct {
	Profile    Profile  `json:"profile"`
	Categories []string `json:"categories,omitempty" validate:"omitempty,max=20,dive,min=1"`
}

// Validate validates the RankRequest using the validator.
func (r *RankRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
