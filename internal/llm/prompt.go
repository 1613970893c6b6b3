package llm

import "strings"

// maxPromptChars caps how much résumé text is sent per request.
const maxPromptChars = 12000

// BuildSystemPrompt instructs the model on output shape and hygiene.
func BuildSystemPrompt() string {
	parts := []string{
		"You are a résumé parser. Return ONLY JSON that matches the JSON Schema provided.",
		"Extract only information explicitly present in the text. Do not fabricate missing details.",
		"Categorize each skill into languages, frameworks, databases, tools, libraries or other.",
		"Keep date ranges verbatim as they appear in the text.",
		"Never output null. If a field is not present, omit it.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt wraps the résumé text, truncated to the prompt budget.
func BuildUserPrompt(text string) string {
	var b strings.Builder
	b.WriteString("Résumé text:\n")
	if len(text) > maxPromptChars {
		b.WriteString(text[:maxPromptChars])
	} else {
		b.WriteString(text)
	}
	return b.String()
}
