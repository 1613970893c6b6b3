package resume

import (
	"context"
	"strings"

	"github.com/kunle-oseni/resume-ingest/constants"
)

// UnknownName is the sentinel used when no candidate name could be found.
const UnknownName = "Unknown"

// Contact holds whatever contact details were actually found; empty fields
// are omitted from serialized output.
type Contact struct {
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

func (c Contact) Empty() bool {
	return c.Email == "" && c.Phone == "" && c.LinkedIn == "" && c.GitHub == "" && c.Portfolio == ""
}

type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	Duration    string `json:"duration,omitempty"`
	GPA         string `json:"gpa,omitempty"`
}

type Experience struct {
	Title            string   `json:"title"`
	Company          string   `json:"company,omitempty"`
	Duration         string   `json:"duration"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

type Project struct {
	Name         string   `json:"name"`
	Technologies []string `json:"technologies,omitempty"`
	Description  []string `json:"description,omitempty"`
	Links        []string `json:"links,omitempty"`
}

// SkillSet buckets skill tokens by the fixed category vocabulary.
type SkillSet struct {
	Languages  []string `json:"languages,omitempty"`
	Frameworks []string `json:"frameworks,omitempty"`
	Databases  []string `json:"databases,omitempty"`
	Tools      []string `json:"tools,omitempty"`
	Libraries  []string `json:"libraries,omitempty"`
	Other      []string `json:"other,omitempty"`
}

func (s SkillSet) Empty() bool {
	return len(s.Languages) == 0 && len(s.Frameworks) == 0 && len(s.Databases) == 0 &&
		len(s.Tools) == 0 && len(s.Libraries) == 0 && len(s.Other) == 0
}

// CategorizedSkill pairs a case-normalized skill name with its bucket.
type CategorizedSkill struct {
	Name     string
	Category constants.SkillCategory
}

// Flatten returns every skill in the set, lowercased and deduplicated
// case-insensitively, tagged with its category. First occurrence wins.
func (s SkillSet) Flatten() []CategorizedSkill {
	var out []CategorizedSkill
	seen := map[string]struct{}{}
	add := func(names []string, cat constants.SkillCategory) {
		for _, n := range names {
			key := strings.ToLower(strings.TrimSpace(n))
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, CategorizedSkill{Name: key, Category: cat})
		}
	}
	add(s.Languages, constants.Languages)
	add(s.Frameworks, constants.Frameworks)
	add(s.Databases, constants.Databases)
	add(s.Tools, constants.Tools)
	add(s.Libraries, constants.Libraries)
	add(s.Other, constants.OtherSkill)
	return out
}

// ExtractedProfile is the structured output of extraction. It is transient:
// produced once per job and consumed immediately by ingestion.
type ExtractedProfile struct {
	Name         string       `json:"name"`
	Contact      Contact      `json:"contact"`
	Summary      string       `json:"summary,omitempty"`
	Education    []Education  `json:"education,omitempty"`
	Experience   []Experience `json:"experience,omitempty"`
	Projects     []Project    `json:"projects,omitempty"`
	Skills       SkillSet     `json:"skills"`
	Achievements []string     `json:"achievements,omitempty"`
	Languages    []string     `json:"languages,omitempty"`
	Interests    []string     `json:"interests,omitempty"`
}

// Extractor converts résumé text into an ExtractedProfile. The heuristic
// engine and the schema-guided generative client both implement it; which
// one runs is a configuration choice, not a fallback chain.
type Extractor interface {
	Extract(ctx context.Context, text string) (*ExtractedProfile, error)
}

// SplitDuration splits a free-text date range like "Jan 2020 - Mar 2022"
// into start and end. The end is empty when no separator is present.
func SplitDuration(d string) (start, end string) {
	d = strings.TrimSpace(d)
	for _, sep := range []string{" - ", " – ", " — ", " to ", "-", "–", "—"} {
		if i := strings.Index(d, sep); i > 0 {
			return strings.TrimSpace(d[:i]), strings.TrimSpace(d[i+len(sep):])
		}
	}
	return d, ""
}
