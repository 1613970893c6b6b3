package parser

import (
	"strings"

	"github.com/kunle-oseni/resume-ingest/internal/resume"
)

// extractProjects starts a new entry at a line containing a '|' separator
// or a date range: text before '|' is the project name, text after is a
// technology list. Bullet lines become description strings and link-shaped
// substrings are collected.
func extractProjects(lines []string) []resume.Project {
	var out []resume.Project
	var cur *resume.Project
	for _, line := range lines {
		isStart := strings.Contains(line, "|") || reDateRange.MatchString(line)
		if isStart && !reBullet.MatchString(line) {
			p := resume.Project{}
			name := line
			if i := strings.Index(line, "|"); i >= 0 {
				name = line[:i]
				for _, tech := range reSplitList.Split(line[i+1:], -1) {
					if t := strings.TrimSpace(tech); t != "" {
						p.Technologies = append(p.Technologies, t)
					}
				}
			} else if loc := reDateRange.FindStringIndex(line); loc != nil {
				name = line[:loc[0]]
			}
			p.Name = strings.Trim(name, " ,;|-–—")
			if u := reURL.FindString(line); u != "" {
				p.Links = append(p.Links, u)
			}
			out = append(out, p)
			cur = &out[len(out)-1]
			continue
		}
		if cur == nil {
			continue
		}
		if reBullet.MatchString(line) {
			desc := strings.TrimSpace(reBullet.ReplaceAllString(line, ""))
			if desc != "" {
				cur.Description = append(cur.Description, desc)
			}
		}
		if u := reURL.FindString(line); u != "" {
			cur.Links = append(cur.Links, u)
		}
	}
	return out
}
