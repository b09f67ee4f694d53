package model

// PageContent is one processed page, ready for document assembly.
type PageContent struct {
	Index      int // 0-based page index in the source document
	Paragraphs []ParagraphRecord
	Images     []ImagePlacement
	WidthPt    float64 // source page width, points
	HeightPt   float64 // source page height, points
}

// IsEmpty reports whether the page carries no paragraphs and no images.
func (p PageContent) IsEmpty() bool {
	return len(p.Paragraphs) == 0 && len(p.Images) == 0
}
