package constants

import (
	"strings"
)

// SkillCategory buckets a skill row in the global skills table.
type SkillCategory string

const (
	Languages  SkillCategory = "Languages"
	Frameworks SkillCategory = "Frameworks"
	Databases  SkillCategory = "Databases"
	Tools      SkillCategory = "Tools"
	Libraries  SkillCategory = "Libraries"
	OtherSkill SkillCategory = "Other"
)

var allCategories = []SkillCategory{
	Languages,
	Frameworks,
	Databases,
	Tools,
	Libraries,
	OtherSkill,
}

var categorySynonyms = map[string]SkillCategory{
	"language":              Languages,
	"programming language":  Languages,
	"programming languages": Languages,
	"framework":             Frameworks,
	"database":              Databases,
	"datastores":            Databases,
	"tool":                  Tools,
	"tooling":               Tools,
	"devops":                Tools,
	"library":               Libraries,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps a free-form category label to a canonical SkillCategory.
func Canonicalize(input string) (SkillCategory, bool) {
	if input == "" {
		return OtherSkill, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	if cat, ok := categorySynonyms[normalized]; ok {
		return cat, true
	}

	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return OtherSkill, false
}
