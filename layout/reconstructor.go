package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/recast/model"
	"github.com/tsawler/recast/repair"
)

// ClusteringStrategy selects the reference Y position used when deciding
// whether a fragment joins the current cluster.
type ClusteringStrategy int

const (
	// ClusterByAnchor compares against the fragment that opened the
	// cluster. The reference never moves once a cluster is open.
	ClusterByAnchor ClusteringStrategy = iota

	// ClusterByPrevious compares against the most recently appended
	// fragment, letting a cluster follow gradual baseline drift.
	ClusterByPrevious
)

// String returns a string representation of the strategy.
func (s ClusteringStrategy) String() string {
	switch s {
	case ClusterByAnchor:
		return "anchor"
	case ClusterByPrevious:
		return "previous"
	default:
		return "unknown"
	}
}

// Config holds tuning for paragraph reconstruction.
type Config struct {
	// YThreshold is the vertical distance, in points, within which a
	// fragment joins the current cluster (default: 5.0).
	YThreshold float64

	// JoinGapThreshold is the horizontal distance, in points, between a
	// fragment and the estimated end of the previous fragment beyond
	// which a single space is inserted when joining (default: 10.0).
	JoinGapThreshold float64

	// CharWidthEstimate is the per-character width, in points, used to
	// estimate fragment widths. Glyph metrics are not consulted
	// (default: 5.0).
	CharWidthEstimate float64

	// Clustering selects the cluster membership comparison
	// (default: ClusterByAnchor).
	Clustering ClusteringStrategy
}

// DefaultConfig returns the standard reconstruction configuration.
func DefaultConfig() Config {
	return Config{
		YThreshold:        5.0,
		JoinGapThreshold:  10.0,
		CharWidthEstimate: 5.0,
		Clustering:        ClusterByAnchor,
	}
}

// Reconstructor turns one page's unordered fragment list into an ordered
// sequence of paragraph records.
type Reconstructor struct {
	config Config
}

// NewReconstructor creates a reconstructor with default configuration.
func NewReconstructor() *Reconstructor {
	return &Reconstructor{config: DefaultConfig()}
}

// NewReconstructorWithConfig creates a reconstructor with custom
// configuration.
func NewReconstructorWithConfig(config Config) *Reconstructor {
	return &Reconstructor{config: config}
}

// Reconstruction is the outcome of reconstructing one page.
type Reconstruction struct {
	// Paragraphs in reading order, one per cluster.
	Paragraphs []model.ParagraphRecord

	// SpacingFixes counts repair passes that changed their input.
	SpacingFixes int
}

// Text returns all paragraph text joined by newlines.
func (r *Reconstruction) Text() string {
	if r == nil || len(r.Paragraphs) == 0 {
		return ""
	}
	parts := make([]string, len(r.Paragraphs))
	for i, p := range r.Paragraphs {
		parts[i] = p.CombinedText
	}
	return strings.Join(parts, "\n")
}

// Reconstruct sorts, clusters, and joins the given fragments. A page with
// zero fragments yields zero paragraphs. The input slice is not modified.
func (r *Reconstructor) Reconstruct(fragments []model.TextFragment) *Reconstruction {
	result := &Reconstruction{}
	if len(fragments) == 0 {
		return result
	}

	sorted := sortFragments(fragments)
	eng := repair.NewEngine()

	var current []model.TextFragment
	var anchorY float64

	flush := func() {
		if len(current) == 0 {
			return
		}
		result.Paragraphs = append(result.Paragraphs, r.buildParagraph(current, eng))
	}

	for _, frag := range sorted {
		if len(current) == 0 {
			current = []model.TextFragment{frag}
			anchorY = frag.Y
			continue
		}

		refY := anchorY
		if r.config.Clustering == ClusterByPrevious {
			refY = current[len(current)-1].Y
		}

		if abs(frag.Y-refY) <= r.config.YThreshold {
			current = append(current, frag)
		} else {
			flush()
			current = []model.TextFragment{frag}
			anchorY = frag.Y
		}
	}

	// The final open cluster.
	flush()

	result.SpacingFixes = eng.Fixes()
	return result
}

// buildParagraph joins one cluster's fragments into a paragraph record.
// Each fragment's text is repaired individually, a space is inserted where
// the horizontal gap calls for one, and the joined text takes one more
// repair pass to become CombinedText. The run texts are then rewritten so
// their concatenation equals CombinedText: a run rendered on its own would
// otherwise lose the spacing decided at its boundary.
func (r *Reconstructor) buildParagraph(cluster []model.TextFragment, eng *repair.Engine) model.ParagraphRecord {
	runs := make([]model.Run, 0, len(cluster))
	var joined strings.Builder

	for i, frag := range cluster {
		text := eng.Repair(frag.Text)

		if i > 0 {
			prev := cluster[i-1]
			prevText := runs[i-1].Text
			// Width is estimated from the fragment's original text, not
			// the repaired one.
			gap := abs(frag.X - (prev.X + prev.EstimatedWidth(r.config.CharWidthEstimate)))
			if gap > r.config.JoinGapThreshold &&
				!strings.HasSuffix(prevText, " ") &&
				!strings.HasPrefix(text, " ") {
				joined.WriteString(" ")
			}
		}

		joined.WriteString(text)
		runs = append(runs, model.Run{
			Text:     text,
			FontName: frag.FontName,
			FontSize: frag.FontSize,
			Bold:     frag.Bold,
			Italic:   frag.Italic,
			Color:    frag.Color,
		})
	}

	combined := eng.Repair(joined.String())
	distributeRunText(runs, combined)

	return model.ParagraphRecord{
		Runs:         runs,
		CombinedText: combined,
	}
}

// distributeRunText rewrites the run texts so their concatenation equals
// the combined paragraph text. Spacing repair only inserts single spaces
// and collapses whitespace, so the non-space characters of combined match
// those of the run texts in order; whitespace falling on a run boundary is
// carried on the earlier run.
func distributeRunText(runs []model.Run, combined string) {
	pos := 0
	for i := range runs {
		keep := 0
		for j := 0; j < len(runs[i].Text); j++ {
			if !spaceByte(runs[i].Text[j]) {
				keep++
			}
		}

		start := pos
		for pos < len(combined) && keep > 0 {
			if !spaceByte(combined[pos]) {
				keep--
			}
			pos++
		}
		if i == len(runs)-1 {
			pos = len(combined)
		} else {
			for pos < len(combined) && spaceByte(combined[pos]) {
				pos++
			}
		}
		runs[i].Text = combined[start:pos]
	}
}

// spaceByte reports whether b is whitespace the repair rules recognize.
func spaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// sortFragments returns a copy sorted by (Y, X) ascending: top to bottom,
// ties left to right. Y grows downward in fragment coordinates.
func sortFragments(fragments []model.TextFragment) []model.TextFragment {
	sorted := make([]model.TextFragment, len(fragments))
	copy(sorted, fragments)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})
	return sorted
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
