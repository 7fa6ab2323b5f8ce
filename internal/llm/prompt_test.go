package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemPromptOutputContract(t *testing.T) {
	p := BuildSystemPrompt()

	assert.Contains(t, p, "'Company', 'Role Held at the Company', 'Start Date', 'End Date', 'Years Worked There', 'Brief Description'")
	assert.Contains(t, p, "at most 70 words")
	assert.Contains(t, p, "most recent position first")
	assert.Contains(t, p, "one object per role held")
	assert.Contains(t, p, "no code fences")
}

func TestUserPromptTruncatesLongSections(t *testing.T) {
	req := ExtractRequest{
		SectionText: strings.Repeat("x", userPromptCharBudget+500),
		SourceHint:  "text-layer",
	}

	p := BuildUserPrompt(req)

	assert.Contains(t, p, "Text source: text-layer")
	assert.Contains(t, p, "(truncated)")
	assert.Less(t, len(p), userPromptCharBudget+200)
}
