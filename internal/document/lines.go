package document

import (
	"sort"
	"strings"
)

// Tolerances for deciding line membership and word boundaries, expressed
// as fractions of glyph height. Tuned against LinkedIn profile exports;
// the same ratios appear across text-layer extractors.
const (
	lineToleranceRatio = 0.5
	wordGapRatio       = 0.3
)

// AssemblePage merges unordered positioned fragments into reading-order
// lines. Fragments whose vertical positions fall within a tolerance band
// (a fraction of the smaller glyph height) belong to the same line and are
// ordered left to right; a wide horizontal gap inside a line becomes a
// single space. Whitespace-only fragments are dropped before any of this,
// so they can neither break lines nor pad them. A page with no usable
// fragments assembles to "".
func AssemblePage(frags []Fragment) string {
	kept := make([]Fragment, 0, len(frags))
	for _, f := range frags {
		if strings.TrimSpace(f.Text) == "" {
			continue
		}
		kept = append(kept, f)
	}
	if len(kept) == 0 {
		return ""
	}

	// Stable: ties keep the extractor's original order.
	sort.SliceStable(kept, func(i, j int) bool {
		a, b := kept[i], kept[j]
		if !sameLine(a, b) {
			return a.Y > b.Y // y grows upward; higher on the page first
		}
		return a.X < b.X
	})

	var b strings.Builder
	prev := kept[0]
	b.WriteString(prev.Text)
	lineEndX := prev.X + prev.W

	for _, f := range kept[1:] {
		if !sameLine(prev, f) {
			b.WriteByte('\n')
			b.WriteString(f.Text)
		} else {
			if f.X-lineEndX > wordGapRatio*glyphHeight(f, prev) {
				b.WriteByte(' ')
			}
			b.WriteString(f.Text)
		}
		prev = f
		lineEndX = f.X + f.W
	}
	return b.String()
}

// sameLine reports whether two fragments sit within the vertical tolerance
// band of each other. The band scales with the smaller of the two heights
// so a large heading next to small body text does not swallow it.
func sameLine(a, b Fragment) bool {
	tol := lineToleranceRatio * minHeight(a, b)
	d := a.Y - b.Y
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func minHeight(a, b Fragment) float64 {
	ha, hb := glyphFallback(a.H), glyphFallback(b.H)
	if ha < hb {
		return ha
	}
	return hb
}

func glyphHeight(a, b Fragment) float64 {
	if a.H > 0 {
		return a.H
	}
	return glyphFallback(b.H)
}

// glyphFallback guards against text layers that omit font size.
func glyphFallback(h float64) float64 {
	if h <= 0 {
		return 10
	}
	return h
}
