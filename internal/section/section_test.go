package section

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractStopsAtNextHeading(t *testing.T) {
	doc := "Jane Doe\nSoftware Engineer\n\nExperience\nAcme Corp\nEngineer\n2019-2022\nAbout\nI like hiking and long walks."

	got := DefaultPolicy().Extract(doc)

	assert.Equal(t, "Experience\nAcme Corp\nEngineer\n2019-2022", got)
	assert.NotContains(t, got, "hiking")
}

func TestExtractPrefersMoreExperienceHeading(t *testing.T) {
	doc := "Experience\nshort summary line\nMore Experience\nAcme Corp\n2019-2022\nEducation\nMIT"

	got := DefaultPolicy().Extract(doc)

	require.True(t, strings.HasPrefix(got, "More Experience"))
	assert.NotContains(t, got, "MIT")
}

func TestExtractNoHeadingFallsBackToCap(t *testing.T) {
	doc := strings.Repeat("lorem ipsum dolor sit amet ", 1000)

	got := DefaultPolicy().Extract(doc)

	assert.LessOrEqual(t, len(got), defaultFallbackCap)
	assert.NotEmpty(t, got)
}

func TestExtractNoTerminatorCapsSection(t *testing.T) {
	doc := "experience " + strings.Repeat("x", 20000)

	got := DefaultPolicy().Extract(doc)

	assert.LessOrEqual(t, len(got), defaultSectionCap)
	assert.True(t, strings.HasPrefix(got, "experience"))
}

func TestExtractDateRangePastGuardBuffer(t *testing.T) {
	filler := strings.Repeat("a", 600)
	doc := "Experience\n" + filler + "\n2015 - Present\nmore trailing text"

	got := DefaultPolicy().Extract(doc)

	assert.NotContains(t, got, "2015")
	assert.NotContains(t, got, "trailing")
}

func TestExtractDateRangeInsideGuardBufferIgnored(t *testing.T) {
	doc := "Experience\nAcme\n2019 - 2022\nstill part of the section"

	got := DefaultPolicy().Extract(doc)

	assert.Contains(t, got, "2019 - 2022")
	assert.Contains(t, got, "still part of the section")
}

func TestExtractCaseInsensitiveHeading(t *testing.T) {
	doc := "EXPERIENCE\nAcme Corp\nSKILLS\nGo, SQL"

	got := DefaultPolicy().Extract(doc)

	assert.True(t, strings.HasPrefix(got, "EXPERIENCE"))
	assert.NotContains(t, got, "SQL")
}

func TestExtractHeadingAfterByteGrowingRunes(t *testing.T) {
	// lower-casing "Ⱥ" grows it from two bytes to three, shifting every
	// offset found in the lowered text
	doc := strings.Repeat("Ⱥ", 100) + "experience"

	got := DefaultPolicy().Extract(doc)

	assert.Equal(t, "experience", got)
}

func TestExtractHeadingAfterByteShrinkingRunes(t *testing.T) {
	// "İ" shrinks from two bytes to one when lower-cased
	doc := strings.Repeat("İ", 5) + "Experience\nAcme Corp\nEngineer"

	got := DefaultPolicy().Extract(doc)

	assert.True(t, strings.HasPrefix(got, "Experience"), "got %q", got)
	assert.Contains(t, got, "Acme Corp")
}

func TestExtractStopKeywordPastNonASCIIText(t *testing.T) {
	doc := "Experience\nİstanbul Teknoloji\nEngineer\nEducation\nBoğaziçi University"

	got := DefaultPolicy().Extract(doc)

	assert.Contains(t, got, "İstanbul Teknoloji")
	assert.NotContains(t, got, "University")
}

func TestExtractEmptyInput(t *testing.T) {
	assert.Equal(t, "", DefaultPolicy().Extract(""))
}

func TestExtractNonEmptyForNonEmptyInput(t *testing.T) {
	got := DefaultPolicy().Extract("just a short note with no structure")
	assert.NotEmpty(t, got)
}
