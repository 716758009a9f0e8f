// Package parsing provides skill name normalization and the loose matching
// rules used by the scorer and the gap analyzer.
package parsing

import "strings"

// skillNormalizations maps common skill name variants to canonical names
var skillNormalizations = map[string]string{
	"javascript":        "JavaScript",
	"js":                "JavaScript",
	"typescript":        "TypeScript",
	"ts":                "TypeScript",
	"react.js":          "React",
	"reactjs":           "React",
	"node.js":           "Node.js",
	"nodejs":            "Node.js",
	"py":                "Python",
	"python3":           "Python",
	"sql":               "SQL",
	"postgres":          "SQL",
	"postgresql":        "SQL",
	"mysql":             "SQL",
	"ms excel":          "Excel",
	"microsoft excel":   "Excel",
	"spreadsheets":      "Excel",
	"ml":                "Machine Learning",
	"digital mktg":      "Digital Marketing",
	"seo":               "SEO",
	"figma design":      "Figma",
	"power bi":          "Power BI",
	"powerbi":           "Power BI",
	"data viz":          "Data Visualization",
	"statistics":        "Statistics",
	"stats":             "Statistics",
	"google analytics":  "Google Analytics",
	"content writing":   "Content Writing",
	"social media mktg": "Social Media",
}

// NormalizeSkillName normalizes a skill name to its canonical form
func NormalizeSkillName(skillName string) string {
	normalized := strings.TrimSpace(skillName)
	if normalized == "" {
		return ""
	}

	lower := strings.ToLower(normalized)
	if canonical, ok := skillNormalizations[lower]; ok {
		return canonical
	}

	// All-caps single words that aren't known acronyms get first-letter casing
	if normalized == strings.ToUpper(normalized) && len(normalized) > 3 && !strings.Contains(normalized, " ") {
		return strings.ToUpper(normalized[:1]) + strings.ToLower(normalized[1:])
	}

	// All-lowercase single words get their first letter capitalized
	if normalized == strings.ToLower(normalized) && !strings.Contains(normalized, " ") {
		return strings.ToUpper(normalized[:1]) + normalized[1:]
	}

	return normalized
}

// NormalizeSkills normalizes and deduplicates a skill list, keeping the
// first occurrence of each skill. Comparison is case-insensitive.
func NormalizeSkills(skills []string) []string {
	if len(skills) == 0 {
		return skills
	}

	out := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))
	for _, s := range skills {
		normalized := NormalizeSkillName(s)
		if normalized == "" {
			continue
		}
		key := strings.ToLower(normalized)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, normalized)
	}
	return out
}

// Dedup removes case-insensitive duplicates from a skill list without
// normalizing names, keeping first occurrences in order.
func Dedup(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))
	for _, s := range skills {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}
