package llm

import "strings"

// userPromptCharBudget bounds the section text we send. The section
// extractor already caps its output; this is the final guard.
const userPromptCharBudget = 12000

// BuildSystemPrompt composes the system message: output contract first,
// then field-by-field guidance.
func BuildSystemPrompt() string {
	parts := []string{
		"You are a resume parser. You read the experience section of a LinkedIn profile and return ONLY a JSON array, one object per position held.",
		"Each object has exactly these keys: 'Company', 'Role Held at the Company', 'Start Date', 'End Date', 'Years Worked There', 'Brief Description'.",
		"'Company' is the employer name without suffixes like 'Full-time' or location lines.",
		"'Start Date' and 'End Date' are as written in the profile (e.g. 'Jan 2019'); use 'Present' as the End Date for a current role.",
		"'Years Worked There' is the duration as written (e.g. '3 yrs 2 mos'); compute it from the dates only when the profile omits it.",
		"'Brief Description' summarizes the role's key responsibilities and achievements in at most 70 words; leave it empty when the profile has no description.",
		"List the most recent position first. A person promoted within one company yields one object per role held.",
		"Never output null. If a field is not present, use an empty string.",
		"Return the JSON array with no surrounding prose and no code fences.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages the section text with its provenance hint.
func BuildUserPrompt(req ExtractRequest) string {
	var b strings.Builder
	if h := strings.TrimSpace(req.SourceHint); h != "" {
		b.WriteString("Text source: ")
		b.WriteString(h)
		b.WriteString("\n")
	}
	b.WriteString("\nExperience section:\n")
	section := strings.TrimSpace(req.SectionText)
	if len(section) > userPromptCharBudget {
		b.WriteString(section[:userPromptCharBudget])
		b.WriteString("\n…(truncated)")
	} else {
		b.WriteString(section)
	}
	return b.String()
}
