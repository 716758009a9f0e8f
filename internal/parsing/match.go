package parsing

import "strings"

// SkillMatches reports whether two skill names refer to the same skill.
// Matching is case-insensitive and accepts a substring relationship in
// either direction, so "SQL" matches "MySQL" and "React Native" matches
// "React". This looseness is intentional: catalogs and profiles name
// skills inconsistently, and a near miss is better than a false negative.
func SkillMatches(a, b string) bool {
	la := strings.ToLower(strings.TrimSpace(a))
	lb := strings.ToLower(strings.TrimSpace(b))
	if la == "" || lb == "" {
		return false
	}
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

// ContainsSkill reports whether any skill in the list matches the target
// under the SkillMatches rule.
func ContainsSkill(skills []string, target string) bool {
	for _, s := range skills {
		if SkillMatches(s, target) {
			return true
		}
	}
	return false
}

// MatchedSkills returns the profile skills that match at least one of the
// wanted skills, preserving profile order without duplicates.
func MatchedSkills(profileSkills, wanted []string) []string {
	matched := make([]string, 0, len(profileSkills))
	for _, ps := range profileSkills {
		if ContainsSkill(wanted, ps) {
			matched = append(matched, ps)
		}
	}
	return Dedup(matched)
}

// ContainsFold reports whether s contains substr, ignoring case. It is the
// substring test used for interest and location matching.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
