package parser

import (
	"strings"

	"github.com/kunle-oseni/resume-ingest/constants"
	"github.com/kunle-oseni/resume-ingest/internal/resume"
)

// extractSkills strips a leading bullet and an optional "Category: " prefix
// from each line, splits the remainder into tokens, and buckets every token.
// A recognized category prefix pins the whole line to that bucket; otherwise
// each token is classified against the fixed vocabulary. All buckets are
// deduplicated case-insensitively at the end.
func extractSkills(lines []string) resume.SkillSet {
	var set resume.SkillSet
	for _, line := range lines {
		line = reBullet.ReplaceAllString(line, "")

		lineCat := constants.OtherSkill
		linePinned := false
		if prefix := reCategoryPrefix.FindString(line); prefix != "" {
			label := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(prefix), ":"))
			lineCat, linePinned = constants.Canonicalize(label)
			line = line[len(prefix):]
		}

		for _, token := range reSplitList.Split(line, -1) {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			cat := lineCat
			if !linePinned {
				cat = categorizeSkill(token)
			}
			switch cat {
			case constants.Languages:
				set.Languages = append(set.Languages, token)
			case constants.Frameworks:
				set.Frameworks = append(set.Frameworks, token)
			case constants.Databases:
				set.Databases = append(set.Databases, token)
			case constants.Tools:
				set.Tools = append(set.Tools, token)
			case constants.Libraries:
				set.Libraries = append(set.Libraries, token)
			default:
				set.Other = append(set.Other, token)
			}
		}
	}
	set.Languages = dedupeFold(set.Languages)
	set.Frameworks = dedupeFold(set.Frameworks)
	set.Databases = dedupeFold(set.Databases)
	set.Tools = dedupeFold(set.Tools)
	set.Libraries = dedupeFold(set.Libraries)
	set.Other = dedupeFold(set.Other)
	return set
}

// dedupeFold removes case-insensitive duplicates, keeping first casing.
func dedupeFold(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	var out []string
	for _, s := range in {
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}
