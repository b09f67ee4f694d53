// Package imagefit computes display sizes for extracted images so they fit
// a page's printable area without distortion and without upscaling.
package imagefit

import "math"

// Defaults substituted when an image's native size is unusable.
const (
	defaultPixelsPerUnit  = 72.0
	defaultFallbackWidth  = 6.0
	defaultFallbackHeight = 8.0
)

// Config controls how native pixel sizes are converted and what stands in
// for undecodable images.
type Config struct {
	// PixelsPerUnit converts native pixel dimensions to physical units.
	// The fixed 72 default treats pixels as points; true embedded image
	// resolution is not recoverable in general, so sizes derived here are
	// approximate for images embedded at other resolutions.
	PixelsPerUnit float64

	// FallbackWidth and FallbackHeight, in physical units, replace the
	// native size when extraction reported non-positive dimensions.
	FallbackWidth  float64
	FallbackHeight float64
}

// DefaultConfig returns the standard fitting configuration: 72 pixels per
// unit and a 6x8 unit fallback size.
func DefaultConfig() Config {
	return Config{
		PixelsPerUnit:  defaultPixelsPerUnit,
		FallbackWidth:  defaultFallbackWidth,
		FallbackHeight: defaultFallbackHeight,
	}
}

// Fitter scales images into printable areas.
type Fitter struct {
	cfg Config
}

// NewFitter returns a Fitter with the default configuration.
func NewFitter() *Fitter {
	return NewFitterWithConfig(DefaultConfig())
}

// NewFitterWithConfig returns a Fitter with custom settings. Non-positive
// config values are replaced with the defaults so that Fit can never
// divide by zero.
func NewFitterWithConfig(cfg Config) *Fitter {
	if cfg.PixelsPerUnit <= 0 {
		cfg.PixelsPerUnit = defaultPixelsPerUnit
	}
	if cfg.FallbackWidth <= 0 {
		cfg.FallbackWidth = defaultFallbackWidth
	}
	if cfg.FallbackHeight <= 0 {
		cfg.FallbackHeight = defaultFallbackHeight
	}
	return &Fitter{cfg: cfg}
}

// Fit returns the display size, in physical units, for an image of the
// given native pixel dimensions placed into a printable area. The result
// preserves the native aspect ratio and never exceeds either printable
// dimension; an image that already fits is returned at native size.
// Non-positive native dimensions are replaced by the configured fallback
// size before scaling.
func (f *Fitter) Fit(nativeWidthPx, nativeHeightPx int, printableWidth, printableHeight float64) (width, height float64) {
	w := float64(nativeWidthPx) / f.cfg.PixelsPerUnit
	h := float64(nativeHeightPx) / f.cfg.PixelsPerUnit
	if w <= 0 || h <= 0 {
		w, h = f.cfg.FallbackWidth, f.cfg.FallbackHeight
	}

	scale := math.Min(printableWidth/w, math.Min(printableHeight/h, 1.0))
	return w * scale, h * scale
}
