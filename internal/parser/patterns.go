package parser

import "regexp"

// Section identifies one named résumé section.
type Section string

const (
	SectionContact      Section = "contact"
	SectionSummary      Section = "summary"
	SectionEducation    Section = "education"
	SectionExperience   Section = "experience"
	SectionProjects     Section = "projects"
	SectionSkills       Section = "skills"
	SectionAchievements Section = "achievements"
	SectionLanguages    Section = "languages"
	SectionInterests    Section = "interests"
)

type headerPattern struct {
	section Section
	re      *regexp.Regexp
}

// headerPatterns is the ordered set of section header matchers; the first
// matching category wins.
var headerPatterns = []headerPattern{
	{SectionContact, regexp.MustCompile(`(?i)^contact( (info|information|details))?$`)},
	{SectionSummary, regexp.MustCompile(`(?i)^((professional |career )?(summary|profile|objective)|about( me)?)$`)},
	{SectionEducation, regexp.MustCompile(`(?i)^(education|academic (background|qualifications)|qualifications)$`)},
	{SectionExperience, regexp.MustCompile(`(?i)^((work|professional|relevant) )?(experience|employment)( history)?$`)},
	{SectionProjects, regexp.MustCompile(`(?i)^((personal|key|selected|notable) )?projects?$`)},
	{SectionSkills, regexp.MustCompile(`(?i)^((technical|core) )?(skills|competencies)( & \w+)?$|^tech(nologies| stack)$`)},
	{SectionAchievements, regexp.MustCompile(`(?i)^(achievements?|accomplishments?|awards( & honors)?|honors|certifications?)$`)},
	{SectionLanguages, regexp.MustCompile(`(?i)^languages?$`)},
	{SectionInterests, regexp.MustCompile(`(?i)^(interests?|hobbies)$`)},
}

var (
	reEmail    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	rePhone    = regexp.MustCompile(`\+?\d[\d\s().\-]{7,}\d`)
	reLinkedIn = regexp.MustCompile(`(?i)linkedin\.com/[A-Za-z0-9_/.\-]+`)
	reGitHub   = regexp.MustCompile(`(?i)github\.com/[A-Za-z0-9_/.\-]+`)
	reURL      = regexp.MustCompile(`(?i)(https?://\S+|\b[a-z0-9.\-]+\.[a-z]{2,}/\S*)`)

	// 2-5 capitalized words, no digits, no '@'
	reName = regexp.MustCompile(`^[A-Z][A-Za-z'.\-]*( [A-Z][A-Za-z'.\-]*){1,4}$`)

	month       = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?`
	datePoint   = `(?:` + month + `\s+\d{4}|\d{1,2}/\d{4}|\d{4})`
	dateEnd     = `(?:` + datePoint + `|present|current|now|ongoing)`
	reDateRange = regexp.MustCompile(`(?i)` + datePoint + `\s*(?:[-–—]|to)\s*` + dateEnd)

	reBullet = regexp.MustCompile(`^\s*[•\-*]\s+`)
	reGPA    = regexp.MustCompile(`(?i)\bgpa[:\s]+([0-9]\.?[0-9]*(?:\s*/\s*[0-9.]+)?)`)

	reInstitution = regexp.MustCompile(`(?i)\b(university|college|institute|institution|school|academy|polytechnic)\b`)
	reDegree      = regexp.MustCompile(`(?i)\b(b\.?\s?sc|b\.?\s?a|b\.?\s?eng|b\.?\s?tech|bachelor(?:'?s)?|m\.?\s?sc|m\.?\s?a|m\.?\s?eng|m\.?\s?tech|master(?:'?s)?|mba|ph\.?\s?d|doctorate|diploma|certificate|associate)\b[^,;]*`)

	reSplitList      = regexp.MustCompile(`[,;/]`)
	reCategoryPrefix = regexp.MustCompile(`^[A-Za-z &]+:\s*`)
)

// isSectionHeader classifies a line against the ordered header patterns.
// Header lines are short; a trailing colon is tolerated.
func isSectionHeader(line string) (Section, bool) {
	l := trimHeaderLine(line)
	if l == "" || len(l) > 40 {
		return "", false
	}
	for _, hp := range headerPatterns {
		if hp.re.MatchString(l) {
			return hp.section, true
		}
	}
	return "", false
}

func trimHeaderLine(line string) string {
	l := line
	for len(l) > 0 && (l[len(l)-1] == ':' || l[len(l)-1] == ' ') {
		l = l[:len(l)-1]
	}
	for len(l) > 0 && l[0] == ' ' {
		l = l[1:]
	}
	return l
}
