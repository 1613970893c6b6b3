package parser

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reMultiSpace = regexp.MustCompile(`[ \t]{2,}`)
	// a lowercase letter immediately followed by an uppercase letter is a
	// missing space boundary introduced by layout-to-text conversion
	reCamelJoin = regexp.MustCompile(`(\p{Ll})(\p{Lu})`)
)

// shortLineThreshold is the merge heuristic: lines shorter than this are
// candidates for having been broken mid-sentence by layout conversion.
const shortLineThreshold = 40

// normalizeText strips non-text control characters, collapses whitespace
// runs and splits camel-case joins left behind by layout artifacts.
func normalizeText(s string) string {
	s = reCRLF.ReplaceAllString(s, "\n")
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' || r == '\t' || !unicode.IsControl(r) {
			b.WriteRune(r)
		}
	}
	s = b.String()
	s = reCamelJoin.ReplaceAllString(s, "$1 $2")
	s = reMultiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// mergeLines reconstructs paragraphs broken mid-sentence: a line is folded
// into the previous one when the previous line is short, is not a section
// header, contains no email address, and the line itself is not a date
// range, a bullet, or a section header. Blank lines reset merging.
func mergeLines(text string) []string {
	raw := strings.Split(text, "\n")
	var out []string
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			out = append(out, "")
			continue
		}
		if n := len(out); n > 0 && canMergeInto(out[n-1], line) {
			out[n-1] = out[n-1] + " " + line
			continue
		}
		out = append(out, line)
	}
	// drop the blank separators now that merging is done
	lines := out[:0]
	for _, l := range out {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func canMergeInto(prev, next string) bool {
	if prev == "" || len(prev) >= shortLineThreshold {
		return false
	}
	if _, ok := isSectionHeader(prev); ok {
		return false
	}
	if reEmail.MatchString(prev) {
		return false
	}
	if reDateRange.MatchString(next) || reBullet.MatchString(next) {
		return false
	}
	if _, ok := isSectionHeader(next); ok {
		return false
	}
	return true
}
