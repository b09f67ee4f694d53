package recast

import (
	"fmt"
	"strings"
)

// Result statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Stats counts the work done during a single conversion run. Counters are
// scoped to the run; nothing is shared between Converters.
type Stats struct {
	PagesProcessed      int `json:"pages_processed"`
	TextBlocksExtracted int `json:"text_blocks_extracted"`
	ImagesExtracted     int `json:"images_extracted"`
	SpacingFixesApplied int `json:"spacing_fixes_applied"`
}

// Warning records a non-fatal condition encountered during conversion.
// Warnings indicate that the output was produced but may be incomplete,
// for example a page that could not be extracted or an image placed at a
// fallback size.
type Warning struct {
	Page    int    `json:"page,omitempty"` // 1-indexed page number, 0 when not page-scoped
	Message string `json:"message"`
}

// String returns the warning as a single line.
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// Result reports the outcome of a conversion run. On failure Status is
// StatusError and Err carries the cause; Warnings may be populated in
// either case.
type Result struct {
	Status         string
	OutputPath     string
	PagesConverted int
	Stats          Stats
	Warnings       []Warning
	Err            error
}

// Succeeded reports whether the run completed and the output was
// verified.
func (r *Result) Succeeded() bool {
	return r != nil && r.Status == StatusSuccess
}

// FormatWarnings renders warnings as a single semicolon-separated string
// suitable for logging.
//
// Example:
//
//	res, _ := recast.Open("in.pdf").Convert("out.docx")
//	if len(res.Warnings) > 0 {
//	    log.Println("Warnings:", recast.FormatWarnings(res.Warnings))
//	}
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
