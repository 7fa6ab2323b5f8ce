package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func frag(s string, x, y float64) Fragment {
	return Fragment{Text: s, X: x, Y: y, W: float64(len(s)) * 5, H: 10}
}

func TestAssemblePageOrdersTopToBottom(t *testing.T) {
	// fragments arrive in arbitrary order; y grows upward
	frags := []Fragment{
		frag("second line", 0, 700),
		frag("first line", 0, 720),
		frag("third line", 0, 680),
	}

	got := AssemblePage(frags)

	assert.Equal(t, "first line\nsecond line\nthird line", got)
}

func TestAssemblePageOrdersLeftToRightWithinLine(t *testing.T) {
	frags := []Fragment{
		frag("Corp", 200, 700),
		frag("Acme", 0, 700),
	}

	got := AssemblePage(frags)

	assert.Equal(t, "Acme Corp", got)
}

func TestAssemblePageSmallGapNoSpace(t *testing.T) {
	// adjacent glyph runs of one word: gap below 0.3×height
	frags := []Fragment{
		frag("Eng", 0, 700),
		{Text: "ineer", X: 15.5, Y: 700, W: 25, H: 10},
	}

	got := AssemblePage(frags)

	assert.Equal(t, "Engineer", got)
}

func TestAssemblePageToleranceBand(t *testing.T) {
	// 4pt apart with 10pt glyphs: within the 0.5 band, same line
	sameLineFrags := []Fragment{
		frag("Acme", 0, 700),
		frag("Corp", 100, 696),
	}
	assert.Equal(t, "Acme Corp", AssemblePage(sameLineFrags))

	// 6pt apart: outside the band, separate lines
	splitFrags := []Fragment{
		frag("Acme", 0, 700),
		frag("Corp", 100, 694),
	}
	assert.Equal(t, "Acme\nCorp", AssemblePage(splitFrags))
}

func TestAssemblePageDropsWhitespaceFragments(t *testing.T) {
	frags := []Fragment{
		frag("Acme", 0, 700),
		{Text: "   ", X: 50, Y: 10, W: 10, H: 10}, // stray blank far below
		frag("Corp", 100, 700),
	}

	got := AssemblePage(frags)

	assert.Equal(t, "Acme Corp", got)
}

func TestAssemblePageEmpty(t *testing.T) {
	assert.Equal(t, "", AssemblePage(nil))
	assert.Equal(t, "", AssemblePage([]Fragment{{Text: "  \n ", H: 10}}))
}

func TestAssemblePageDeterministic(t *testing.T) {
	frags := []Fragment{
		frag("b", 10, 700),
		frag("a", 0, 700),
		frag("c", 20, 700),
		frag("d", 0, 680),
	}

	first := AssemblePage(frags)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, AssemblePage(frags))
	}
}

func TestDocumentTextJoinsPagesWithBlankLine(t *testing.T) {
	doc := &Document{
		Pages: [][]Fragment{
			{frag("page one", 0, 700)},
			nil, // page without a text layer
			{frag("page three", 0, 700)},
		},
		PageCount: 3,
	}

	assert.Equal(t, "page one\n\n\n\npage three", doc.Text())
}
