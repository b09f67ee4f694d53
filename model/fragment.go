package model

import "fmt"

// RGB is a 24-bit color taken from a content stream fill operator.
type RGB struct {
	R, G, B uint8
}

// RGBFromInt unpacks a packed 0xRRGGBB value.
func RGBFromInt(v uint32) RGB {
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// Hex returns the color as a six-digit uppercase hex string, "1A2B3C".
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// TextFragment is one span of characters extracted as a unit from a page
// content stream.
type TextFragment struct {
	Text     string
	X        float64 // left edge, points
	Y        float64 // points from the top of the page
	FontName string  // raw PDF font name, subset prefix included
	FontSize float64 // points
	Bold     bool
	Italic   bool
	Color    *RGB // nil when the stream set no fill color
}

// EstimatedWidth approximates the fragment's rendered width using a fixed
// per-character width rather than glyph metrics.
func (f TextFragment) EstimatedWidth(charWidth float64) float64 {
	return float64(len(f.Text)) * charWidth
}

// Run is one styled span inside an assembled paragraph. It carries the same
// styling attributes as the fragment it came from.
type Run struct {
	Text     string
	FontName string
	FontSize float64
	Bold     bool
	Italic   bool
	Color    *RGB
}
