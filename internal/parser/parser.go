// Package parser implements the heuristic structuring engine: a deterministic,
// pure-function pass that turns plain résumé text into a structured profile
// using regular expressions, section headers and a fixed skill vocabulary.
package parser

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/kunle-oseni/resume-ingest/internal/resume"
)

// Engine is the heuristic extractor. It holds no per-document state; Parse
// is a pure function and Engine is safe for concurrent use.
type Engine struct {
	logger *slog.Logger
}

func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// Extract implements resume.Extractor.
func (e *Engine) Extract(ctx context.Context, text string) (*resume.ExtractedProfile, error) {
	start := time.Now()
	profile := Parse(text)
	e.logger.InfoContext(ctx, "parser.extract.completed",
		"duration_ms", time.Since(start).Milliseconds(),
		"education_entries", len(profile.Education),
		"experience_entries", len(profile.Experience),
		"project_entries", len(profile.Projects),
		"skills_empty", profile.Skills.Empty())
	return profile, nil
}

// Parse runs the full heuristic pass: normalize, merge broken lines, segment
// into sections, then extract each section with its dedicated extractor.
// Identical input always yields an identical profile.
func Parse(text string) *resume.ExtractedProfile {
	lines := mergeLines(normalizeText(text))
	seg := segment(lines)

	head := seg.preamble
	if contact := seg.sections[SectionContact]; len(contact) > 0 {
		head = append(head[:len(head):len(head)], contact...)
	}
	name, contact := extractNameAndContact(head)
	if name == "" {
		name = resume.UnknownName
	}

	return &resume.ExtractedProfile{
		Name:         name,
		Contact:      contact,
		Summary:      strings.Join(seg.sections[SectionSummary], " "),
		Education:    extractEducation(seg.sections[SectionEducation]),
		Experience:   extractExperience(seg.sections[SectionExperience]),
		Projects:     extractProjects(seg.sections[SectionProjects]),
		Skills:       extractSkills(seg.sections[SectionSkills]),
		Achievements: extractAchievements(seg.sections[SectionAchievements]),
		Languages:    extractList(seg.sections[SectionLanguages]),
		Interests:    extractList(seg.sections[SectionInterests]),
	}
}
