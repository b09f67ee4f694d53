// Package compare scores how much of a source document's text survived
// conversion. Texts are normalized (NFKC, lowercased) and compared as
// word sets, so ordering and whitespace differences do not count against
// the score while dropped or mangled words do.
package compare

import (
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// acceptableRatio is the score below which a conversion is considered to
// have lost content.
const acceptableRatio = 0.9

// gluedWordLength is the length beyond which a missing word is likely two
// or more source words joined by a lost space.
const gluedWordLength = 10

// Similarity describes the word level overlap between two texts.
type Similarity struct {
	Common  int      // distinct words present in both texts
	Total   int      // distinct words across both texts
	Ratio   float64  // Common / Total, 1 when both texts are empty
	Missing []string // words only the source has, sorted
	Extra   []string // words only the converted text has, sorted
}

// Acceptable reports whether the overlap is high enough to call the
// conversion faithful.
func (s Similarity) Acceptable() bool {
	return s.Ratio >= acceptableRatio
}

// GluedWords returns the missing words long enough to suggest lost
// spacing rather than lost content.
func (s Similarity) GluedWords() []string {
	var glued []string
	for _, w := range s.Missing {
		if utf8.RuneCountInString(w) > gluedWordLength {
			glued = append(glued, w)
		}
	}
	return glued
}

// Score compares the text extracted from a source document with the text
// of its converted counterpart.
func Score(source, converted string) Similarity {
	src := wordSet(source)
	dst := wordSet(converted)

	var sim Similarity
	for w := range src {
		if _, ok := dst[w]; ok {
			sim.Common++
		} else {
			sim.Missing = append(sim.Missing, w)
		}
	}
	for w := range dst {
		if _, ok := src[w]; !ok {
			sim.Extra = append(sim.Extra, w)
		}
	}
	sort.Strings(sim.Missing)
	sort.Strings(sim.Extra)

	sim.Total = sim.Common + len(sim.Missing) + len(sim.Extra)
	if sim.Total == 0 {
		sim.Ratio = 1.0
		return sim
	}
	sim.Ratio = float64(sim.Common) / float64(sim.Total)
	return sim
}

// wordSet tokenizes a text into its distinct normalized words. NFKC
// folding maps typographic forms PDFs are fond of, such as the fi
// ligature, back to plain letters.
func wordSet(s string) map[string]struct{} {
	words := strings.Fields(strings.ToLower(norm.NFKC.String(s)))
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
