package types

import (
	"time"

	"github.com/google/uuid"
)

// Category constants for the opportunity taxonomy
const (
	CategoryTech     = "tech"
	CategoryBusiness = "business"
	CategoryDesign   = "design"
	CategoryRemote   = "remote"
)

// Difficulty constants
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Opportunity represents an internship position being matched against.
type Opportunity struct {
	ID                  uuid.UUID  `json:"id"`
	Title               string     `json:"title"`
	Company             string     `json:"company"`
	Category            string     `json:"category"`
	Location            string     `json:"location"`
	Duration            string     `json:"duration,omitempty"`
	Type                string     `json:"type,omitempty"` // full_time, hybrid, remote
	Stipend             int        `json:"stipend"`        // monthly, in currency minor units or whole rupees
	RequiredSkills      []string   `json:"required_skills"`
	PreferredSkills     []string   `json:"preferred_skills,omitempty"`
	Description         string     `json:"description"`
	DifficultyLevel     string     `json:"difficulty_level,omitempty"`
	MinQualification    string     `json:"min_qualification,omitempty"`
	CurrentApplications int        `json:"current_applications,omitempty"`
	MaxApplications     int        `json:"max_applications,omitempty"`
	IsActive            bool       `json:"is_active"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	StartDate           *time.Time `json:"start_date,omitempty"`
	CreatedAt           time.Time  `json:"created_at,omitempty"`
	UpdatedAt           time.Time  `json:"updated_at,omitempty"`
}

// AllSkills returns the union of required and preferred skills, in
// declaration order. Duplicates are preserved; callers that need a set
// should deduplicate via the parsing package.
func (o *Opportunity) AllSkills() []string {
	all := make([]string, 0, len(o.RequiredSkills)+len(o.PreferredSkills))
	all = append(all, o.RequiredSkills...)
	all = append(all, o.PreferredSkills...)
	return all
}

// IsFull reports whether the opportunity has reached its application cap.
func (o *Opportunity) IsFull() bool {
	return o.MaxApplications > 0 && o.CurrentApplications >= o.MaxApplications
}
