package types

// SkillGapReport describes how a profile's skills compare against the
// requirements of one target job category.
type SkillGapReport struct {
	Category         string   `json:"category"`
	HasRequired      []string `json:"has_required"`
	MissingRequired  []string `json:"missing_required"`
	MissingPreferred []string `json:"missing_preferred"`
	Completion       int      `json:"completion"` // 0-100, required skills only
}

// LearningResource is a curated pointer for closing a skill gap.
type LearningResource struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"` // course, tutorial, video, bootcamp
	Duration string `json:"duration"`
	Free     bool   `json:"free"`
	URL      string `json:"url"`
}

// PrioritySkill pairs a missing skill with resources for learning it.
type PrioritySkill struct {
	Skill     string             `json:"skill"`
	Resources []LearningResource `json:"resources"`
}

// GapAnalysis is the full response of a gap analysis request.
type GapAnalysis struct {
	Reports           []SkillGapReport `json:"reports"`
	Priority          []PrioritySkill  `json:"priority"`
	TotalMissing      int              `json:"total_missing"`
	AverageCompletion int              `json:"average_completion"`
}
