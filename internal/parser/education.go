package parser

import (
	"strings"

	"github.com/kunle-oseni/resume-ingest/internal/resume"
)

// extractEducation starts a new entry whenever a line contains an
// institution-like keyword or a date range; degree keywords, date ranges
// and GPA tokens are attributed to the current entry wherever they appear.
func extractEducation(lines []string) []resume.Education {
	var out []resume.Education
	var cur *resume.Education
	for _, line := range lines {
		line = strings.TrimSpace(reBullet.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		if reInstitution.MatchString(line) {
			out = append(out, resume.Education{Institution: institutionName(line)})
			cur = &out[len(out)-1]
		} else if cur == nil && reDateRange.MatchString(line) {
			out = append(out, resume.Education{})
			cur = &out[len(out)-1]
		}
		if cur == nil {
			continue
		}
		if cur.Degree == "" {
			if m := reDegree.FindString(line); m != "" {
				cur.Degree = strings.TrimSpace(m)
			}
		}
		if cur.Duration == "" {
			if m := reDateRange.FindString(line); m != "" {
				cur.Duration = m
			}
		}
		if cur.GPA == "" {
			if m := reGPA.FindStringSubmatch(line); m != nil {
				cur.GPA = strings.TrimSpace(m[1])
			}
		}
	}
	return out
}

// institutionName trims trailing annotations (dates, separators) off an
// institution line, keeping the leading name text.
func institutionName(line string) string {
	name := line
	if loc := reDateRange.FindStringIndex(name); loc != nil {
		name = name[:loc[0]]
	}
	name = strings.Trim(name, " ,;|-–—")
	if i := strings.IndexAny(name, ",|"); i > 0 {
		name = strings.TrimSpace(name[:i])
	}
	return name
}
