// Package types provides type definitions for structured data used throughout the intern-match system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Profile represents a candidate: the skills, interests, and contextual
// attributes used for matching. It carries no identity information.
type Profile struct {
	Skills     []string `json:"skills"`
	Interests  []string `json:"interests"`
	ResumeText string   `json:"resume_text,omitempty"`
	Location   string   `json:"location,omitempty"`  // preferred location
	Education  string   `json:"education,omitempty"` // education level
	Institute  string   `json:"institute,omitempty"`
}

// IsEmpty reports whether the profile carries no matchable signal at all.
// An empty profile is still valid input; it simply yields base scores.
func (p *Profile) IsEmpty() bool {
	return len(p.Skills) == 0 && len(p.Interests) == 0 && p.Location == "" && p.ResumeText == ""
}
