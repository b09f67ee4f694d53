package extract

import (
	"strings"

	lpdf "github.com/ledongthuc/pdf"

	"github.com/tsawler/recast/model"
)

// defaultFontSize stands in when the content stream reported no usable
// size.
const defaultFontSize = 12.0

// wordRun accumulates consecutive glyph runs into one word fragment.
type wordRun struct {
	sb   strings.Builder
	x    float64 // left edge of the first run, PDF coords
	y    float64 // baseline, PDF coords
	endX float64 // running right edge
	font string
	size float64
}

// buildFragments converts one page's positioned text items into word-level
// fragments with top-left origin coordinates. Whitespace-only items act as
// separators and never become fragments themselves.
func buildFragments(texts []lpdf.Text, pageHeightPt float64) []model.TextFragment {
	var frags []model.TextFragment
	var run *wordRun

	flush := func() {
		if run == nil {
			return
		}
		text := run.sb.String()
		if strings.TrimSpace(text) != "" {
			size := run.size
			if size <= 0 {
				size = defaultFontSize
			}
			frags = append(frags, model.TextFragment{
				Text:     text,
				X:        run.x,
				Y:        pageHeightPt - run.y,
				FontName: run.font,
				FontSize: size,
				Bold:     boldFontName(run.font),
				Italic:   italicFontName(run.font),
			})
		}
		run = nil
	}

	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			flush()
			continue
		}

		if run != nil {
			gap := t.X - run.endX
			if t.Y != run.y || t.Font != run.font || t.FontSize != run.size ||
				gap > wordGapThreshold(t.FontSize) {
				flush()
			}
		}
		if run == nil {
			run = &wordRun{x: t.X, y: t.Y, font: t.Font, size: t.FontSize}
		}

		run.sb.WriteString(t.S)
		run.endX = t.X + t.W
	}
	flush()

	return frags
}

// wordGapThreshold is the horizontal gap beyond which two glyph runs
// belong to separate words: 30% of the font size, at least one point.
func wordGapThreshold(fontSize float64) float64 {
	g := fontSize * 0.3
	if g < 1.0 {
		g = 1.0
	}
	return g
}

// boldFontName reports whether a PDF font name indicates a bold face.
func boldFontName(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "bold") ||
		strings.Contains(lower, "black") ||
		strings.Contains(lower, "heavy")
}

// italicFontName reports whether a PDF font name indicates an italic or
// oblique face.
func italicFontName(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "italic") || strings.Contains(lower, "oblique")
}
