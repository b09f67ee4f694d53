package model

import "fmt"

// PointsPerInch is the PDF user-space resolution.
const PointsPerInch = 72.0

// PageGeometry is the output page setup: physical page size and margins,
// all in inches. It is computed once per conversion run and reused for
// every page.
type PageGeometry struct {
	PageWidth    float64
	PageHeight   float64
	MarginTop    float64
	MarginBottom float64
	MarginLeft   float64
	MarginRight  float64
}

// DefaultGeometry returns US Letter with one-inch margins.
func DefaultGeometry() PageGeometry {
	return PageGeometry{
		PageWidth:    8.5,
		PageHeight:   11,
		MarginTop:    1,
		MarginBottom: 1,
		MarginLeft:   1,
		MarginRight:  1,
	}
}

// GeometryFromPageSize derives output geometry from a source page size in
// points, keeping the page dimensions and applying one-inch margins.
// Non-positive dimensions fall back to US Letter.
func GeometryFromPageSize(widthPt, heightPt float64) PageGeometry {
	if widthPt <= 0 || heightPt <= 0 {
		return DefaultGeometry()
	}
	g := DefaultGeometry()
	g.PageWidth = widthPt / PointsPerInch
	g.PageHeight = heightPt / PointsPerInch
	return g
}

// PrintableWidth returns the horizontal space available for content.
func (g PageGeometry) PrintableWidth() float64 {
	return g.PageWidth - g.MarginLeft - g.MarginRight
}

// PrintableHeight returns the vertical space available for content.
func (g PageGeometry) PrintableHeight() float64 {
	return g.PageHeight - g.MarginTop - g.MarginBottom
}

// Landscape reports whether the page is wider than it is tall.
func (g PageGeometry) Landscape() bool {
	return g.PageWidth > g.PageHeight
}

// Validate checks that the margins leave a positive printable area.
func (g PageGeometry) Validate() error {
	if w := g.PrintableWidth(); w <= 0 {
		return fmt.Errorf("page geometry: printable width %.2fin is not positive", w)
	}
	if h := g.PrintableHeight(); h <= 0 {
		return fmt.Errorf("page geometry: printable height %.2fin is not positive", h)
	}
	return nil
}
