package model

import "strings"

// ParagraphRecord is one reconstructed paragraph: the per-fragment runs in
// reading order plus the spacing-repaired joined text. CombinedText derives
// deterministically from the runs and is never edited afterward; the run
// texts concatenate to exactly CombinedText, so a renderer emitting runs
// reproduces the repaired spacing.
type ParagraphRecord struct {
	Runs         []Run
	CombinedText string
}

// IsBlank reports whether the combined text is empty or whitespace-only.
func (p ParagraphRecord) IsBlank() bool {
	return strings.TrimSpace(p.CombinedText) == ""
}
