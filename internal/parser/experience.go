package parser

import (
	"strings"

	"github.com/kunle-oseni/resume-ingest/internal/resume"
)

// extractExperience starts a new entry at each line containing a date
// range: the text before the range is the title, text after an '@'
// separator is the company, and subsequent bullet lines become
// responsibilities until the next date range.
func extractExperience(lines []string) []resume.Experience {
	var out []resume.Experience
	var cur *resume.Experience
	for _, line := range lines {
		if loc := reDateRange.FindStringIndex(line); loc != nil {
			duration := line[loc[0]:loc[1]]
			title := strings.Trim(line[:loc[0]], " ,;|-–—")
			company := ""
			if i := strings.Index(title, "@"); i >= 0 {
				company = strings.TrimSpace(title[i+1:])
				title = strings.Trim(title[:i], " ,;|-–—")
			}
			out = append(out, resume.Experience{
				Title:    title,
				Company:  company,
				Duration: duration,
			})
			cur = &out[len(out)-1]
			continue
		}
		if cur != nil && reBullet.MatchString(line) {
			resp := strings.TrimSpace(reBullet.ReplaceAllString(line, ""))
			if resp != "" {
				cur.Responsibilities = append(cur.Responsibilities, resp)
			}
		}
	}
	return out
}
