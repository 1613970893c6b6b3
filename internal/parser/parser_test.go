package parser

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe

jane.doe@example.com
+1 555 123 4567

github.com/janedoe

linkedin.com/in/janedoe

Summary
Backend engineer focused on data-heavy ingestion systems.

Education
State University, B.Sc, 2016-2020

Experience
Software Engineer @ Acme Corp Jan 2020 - Mar 2022
• Built data pipelines
• Led migration to Go

Skills
Languages: Python, Go, python

Projects
Portfolio Site | React, Redis
• Personal site with a headless CMS
`

func TestParseSectionBoundaries(t *testing.T) {
	p := Parse(sampleResume)

	require.Len(t, p.Experience, 1)
	exp := p.Experience[0]
	assert.Equal(t, "Software Engineer", exp.Title)
	assert.Equal(t, "Acme Corp", exp.Company)
	assert.Equal(t, "Jan 2020 - Mar 2022", exp.Duration)
	assert.Equal(t, []string{"Built data pipelines", "Led migration to Go"}, exp.Responsibilities)

	require.Len(t, p.Education, 1)
	edu := p.Education[0]
	assert.Equal(t, "State University", edu.Institution)
	assert.Equal(t, "B.Sc", edu.Degree)
	assert.Equal(t, "2016-2020", edu.Duration)

	assert.Equal(t, "Backend engineer focused on data-heavy ingestion systems.", p.Summary)
}

func TestParseNameAndContact(t *testing.T) {
	p := Parse(sampleResume)

	assert.Equal(t, "Jane Doe", p.Name)
	assert.Equal(t, "jane.doe@example.com", p.Contact.Email)
	assert.Equal(t, "+1 555 123 4567", p.Contact.Phone)
	assert.Equal(t, "github.com/janedoe", p.Contact.GitHub)
	assert.Equal(t, "linkedin.com/in/janedoe", p.Contact.LinkedIn)
}

func TestParseNameFallback(t *testing.T) {
	p := Parse("no name here\n\nSkills\nGo, Python\n")
	assert.Equal(t, "Unknown", p.Name)
}

func TestParseSkillsDedupAndCategories(t *testing.T) {
	p := Parse(sampleResume)

	// "python" repeated with different casing collapses to one entry
	assert.Equal(t, []string{"Python", "Go"}, p.Skills.Languages)
	assert.Empty(t, p.Skills.Frameworks)
}

func TestParseProjects(t *testing.T) {
	p := Parse(sampleResume)

	require.Len(t, p.Projects, 1)
	proj := p.Projects[0]
	assert.Equal(t, "Portfolio Site", proj.Name)
	assert.Equal(t, []string{"React", "Redis"}, proj.Technologies)
	assert.Equal(t, []string{"Personal site with a headless CMS"}, proj.Description)
}

func TestParseDeterministic(t *testing.T) {
	a := Parse(sampleResume)
	b := Parse(sampleResume)
	assert.Equal(t, a, b)
}

func TestParseEmptyInput(t *testing.T) {
	p := Parse("")
	assert.Equal(t, "Unknown", p.Name)
	assert.True(t, p.Contact.Empty())
	assert.True(t, p.Skills.Empty())
	assert.Empty(t, p.Experience)
	assert.Empty(t, p.Education)
}

func TestNewEngineNilLogger(t *testing.T) {
	e := NewEngine(nil)
	p, err := e.Extract(context.Background(), sampleResume)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", p.Name)
}

// Sections that were never found must disappear from serialized output
// entirely, not show up as empty lists.
func TestParsePrunesAbsentSections(t *testing.T) {
	p := Parse("Jane Doe\n\nSkills\nGo, Python\n")

	b, err := json.Marshal(p)
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &m))
	assert.NotContains(t, m, "projects")
	assert.NotContains(t, m, "experience")
	assert.NotContains(t, m, "education")
	assert.Contains(t, m, "skills")
}

func TestIsSectionHeader(t *testing.T) {
	tests := []struct {
		line    string
		section Section
		ok      bool
	}{
		{"Experience", SectionExperience, true},
		{"WORK EXPERIENCE", SectionExperience, true},
		{"Technical Skills:", SectionSkills, true},
		{"Education", SectionEducation, true},
		{"Certifications", SectionAchievements, true},
		{"Software Engineer @ Acme Corp Jan 2020 - Mar 2022", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		sec, ok := isSectionHeader(tt.line)
		assert.Equal(t, tt.ok, ok, "line %q", tt.line)
		if ok {
			assert.Equal(t, tt.section, sec, "line %q", tt.line)
		}
	}
}

func TestMergeBrokenLines(t *testing.T) {
	text := "Backend engineer with\nseven years of experience.\n"
	lines := mergeLines(normalizeText(text))
	require.Len(t, lines, 1)
	assert.Equal(t, "Backend engineer with seven years of experience.", lines[0])
}

func TestMergeStopsAtDateRange(t *testing.T) {
	text := "Staff Engineer\nJun 2018 - Dec 2021\n"
	lines := mergeLines(normalizeText(text))
	require.Len(t, lines, 2)
}
