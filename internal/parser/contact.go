package parser

import (
	"strings"

	"github.com/kunle-oseni/resume-ingest/internal/resume"
)

// headLineCount bounds how many top-of-document lines are scanned for the
// candidate name and contact details.
const headLineCount = 10

// extractNameAndContact picks the first line shaped like a human name from
// the document head and scans the same lines for contact fields. The first
// match per field wins; an already-found field is never overwritten.
func extractNameAndContact(head []string) (string, resume.Contact) {
	if len(head) > headLineCount {
		head = head[:headLineCount]
	}

	name := ""
	var c resume.Contact
	for _, line := range head {
		if name == "" && looksLikeName(line) {
			name = line
		}
		if c.Email == "" {
			c.Email = reEmail.FindString(line)
		}
		if c.LinkedIn == "" {
			c.LinkedIn = reLinkedIn.FindString(line)
		}
		if c.GitHub == "" {
			c.GitHub = reGitHub.FindString(line)
		}
		if c.Phone == "" {
			// avoid matching the digits of a date range or URL
			if !reDateRange.MatchString(line) && !reURL.MatchString(line) {
				c.Phone = strings.TrimSpace(rePhone.FindString(line))
			}
		}
		if c.Portfolio == "" {
			if u := reURL.FindString(line); u != "" && !reLinkedIn.MatchString(u) && !reGitHub.MatchString(u) && !reEmail.MatchString(u) {
				c.Portfolio = u
			}
		}
	}
	return name, c
}

func looksLikeName(line string) bool {
	if strings.ContainsAny(line, "@0123456789") {
		return false
	}
	return reName.MatchString(strings.TrimSpace(line))
}
