package parser

import "strings"

// extractAchievements keeps each bullet-stripped line as one entry.
func extractAchievements(lines []string) []string {
	var out []string
	for _, line := range lines {
		line = strings.TrimSpace(reBullet.ReplaceAllString(line, ""))
		if line != "" {
			out = append(out, line)
		}
	}
	return dedupeFold(out)
}

// extractList splits each bullet-stripped line on comma/semicolon into
// multiple entries (languages, interests).
func extractList(lines []string) []string {
	var out []string
	for _, line := range lines {
		line = reBullet.ReplaceAllString(line, "")
		for _, item := range reSplitList.Split(line, -1) {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return dedupeFold(out)
}
