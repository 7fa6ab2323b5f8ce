// Package section locates the experience block inside reconstructed
// document text. The boundaries are best-effort heuristics: false
// negatives degrade to a character cap, never to shipping the whole
// multi-page document to the language model.
package section

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// EndMatcher proposes an end offset for the section, relative to the
// section start. Matchers run in order; the earliest proposed offset wins.
type EndMatcher interface {
	Name() string
	// Match receives the lower-cased text from the section start onward.
	Match(lowerSection string) (int, bool)
}

// Policy carries the heading keywords, the ordered end matchers, and the
// character caps. All values are configuration defaults, not constants:
// they were tuned empirically against LinkedIn exports.
type Policy struct {
	Heading       string
	StrongHeading string // takes precedence over Heading when present
	Matchers      []EndMatcher
	SectionCap    int // fallback bound when no matcher fires
	FallbackCap   int // bound when no heading is found at all
}

const (
	defaultSectionCap  = 12000
	defaultFallbackCap = 10000
	regexGuardBuffer   = 500
)

var defaultStops = []string{
	"about",
	"skills",
	"education",
	"certifications",
	"projects",
	"volunteering",
	"languages",
	"honors & awards",
	"publications",
}

// trailing company name or date range on its own line
var endOfSectionRe = regexp.MustCompile(`\n([\w\s,]+(ltd|inc|llc)|\d{4}\s*-\s*(\d{4}|present))`)

// DefaultPolicy returns the tuned extraction policy for LinkedIn profile
// exports.
func DefaultPolicy() Policy {
	return Policy{
		Heading:       "experience",
		StrongHeading: "more experience",
		Matchers: []EndMatcher{
			StopKeywords(defaultStops...),
			PatternAfter(endOfSectionRe, regexGuardBuffer),
		},
		SectionCap:  defaultSectionCap,
		FallbackCap: defaultFallbackCap,
	}
}

// Extract returns the experience section of doc. It never fails: with no
// recognizable structure the result is simply the first FallbackCap
// characters of the document, trimmed.
func (p Policy) Extract(doc string) string {
	if doc == "" {
		return ""
	}
	lower, offsets := foldDoc(doc)

	start := -1
	if p.StrongHeading != "" {
		start = strings.Index(lower, strings.ToLower(p.StrongHeading))
	}
	if start == -1 && p.Heading != "" {
		start = strings.Index(lower, strings.ToLower(p.Heading))
	}
	if start == -1 {
		return strings.TrimSpace(capAt(doc, p.fallbackCap()))
	}

	sec := doc[offsets[start]:]
	lowerSec := lower[start:]

	end := -1
	for _, m := range p.Matchers {
		if idx, ok := m.Match(lowerSec); ok && idx >= 0 {
			if end == -1 || idx < end {
				end = idx
			}
		}
	}

	secEnd := p.sectionCap()
	if end != -1 {
		secEnd = offsets[start+end] - offsets[start]
	}
	if secEnd > len(sec) {
		secEnd = len(sec)
	}
	if secEnd < 0 {
		secEnd = 0
	}
	return strings.TrimSpace(sec[:secEnd])
}

// foldDoc lower-cases doc rune by rune and returns, alongside it, a table
// mapping every byte position in the lowered text back to the byte
// position of the originating rune in doc. Case mapping can change a
// rune's encoded length, so positions found in the lowered text are only
// valid in doc after going through this table.
func foldDoc(doc string) (string, []int) {
	var b strings.Builder
	b.Grow(len(doc))
	offsets := make([]int, 0, len(doc)+1)
	for i, r := range doc {
		lr := unicode.ToLower(r)
		for n := utf8.RuneLen(lr); n > 0; n-- {
			offsets = append(offsets, i)
		}
		b.WriteRune(lr)
	}
	offsets = append(offsets, len(doc))
	return b.String(), offsets
}

func (p Policy) sectionCap() int {
	if p.SectionCap > 0 {
		return p.SectionCap
	}
	return defaultSectionCap
}

func (p Policy) fallbackCap() int {
	if p.FallbackCap > 0 {
		return p.FallbackCap
	}
	return defaultFallbackCap
}

func capAt(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// StopKeywords matches the earliest occurrence of any of the given
// headings after the section heading itself.
func StopKeywords(stops ...string) EndMatcher {
	lowered := make([]string, len(stops))
	for i, s := range stops {
		lowered[i] = strings.ToLower(s)
	}
	return stopKeywords(lowered)
}

type stopKeywords []string

func (stopKeywords) Name() string { return "stop-keywords" }

func (s stopKeywords) Match(lowerSection string) (int, bool) {
	earliest := -1
	for _, kw := range s {
		if idx := strings.Index(lowerSection, kw); idx != -1 {
			if earliest == -1 || idx < earliest {
				earliest = idx
			}
		}
	}
	return earliest, earliest != -1
}

// PatternAfter matches re only past an initial guard buffer, so the
// heading line itself can never terminate the section.
func PatternAfter(re *regexp.Regexp, buffer int) EndMatcher {
	return patternAfter{re: re, buffer: buffer}
}

type patternAfter struct {
	re     *regexp.Regexp
	buffer int
}

func (patternAfter) Name() string { return "end-pattern" }

func (p patternAfter) Match(lowerSection string) (int, bool) {
	if len(lowerSection) <= p.buffer {
		return -1, false
	}
	loc := p.re.FindStringIndex(lowerSection[p.buffer:])
	if loc == nil {
		return -1, false
	}
	return p.buffer + loc[0], true
}
