// Package layout reconstructs paragraphs from positioned text fragments.
//
// PDF content streams emit text as independently positioned glyph runs with
// no paragraph structure. This package recovers reading order: fragments
// are sorted top-to-bottom then left-to-right, clustered into visual lines
// by vertical proximity, and joined into paragraph records with corrected
// inter-word spacing.
//
// # Reconstruction
//
// The [Reconstructor] processes one page's fragments at a time:
//
//	rec := layout.NewReconstructor()
//	result := rec.Reconstruct(fragments)
//	for _, p := range result.Paragraphs {
//	    fmt.Println(p.CombinedText)
//	}
//
// # Clustering
//
// Clusters are formed in a single streaming pass. The default
// [ClusterByAnchor] strategy compares each fragment's Y position against
// the fragment that opened the cluster, so a cluster's reference line never
// moves once opened. Fragments arriving one-at-a-time within the threshold
// of the anchor can accumulate vertical drift; that is the intended
// behavior. [ClusterByPrevious] instead compares against the most recently
// appended fragment, letting clusters follow gradual baseline drift.
// Closed clusters are never reopened or merged.
//
// # Spacing
//
// Fragments on one line are joined with a space when the horizontal gap
// from the estimated end of the previous fragment exceeds
// [Config.JoinGapThreshold]. Fragment width is estimated from character
// count, not glyph metrics. Joined text then passes through
// [github.com/tsawler/recast/repair] to reinsert spaces lost during
// extraction.
package layout
