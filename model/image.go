package model

// RawImage is an embedded image as extracted: the encoded bytes plus the
// native pixel size when it could be decoded. WidthPx and HeightPx are zero
// when decoding failed; downstream sizing substitutes a fallback.
type RawImage struct {
	Data     []byte
	WidthPx  int
	HeightPx int
	Format   string // "jpeg", "png", ... or "unknown"
}

// ImagePlacement is an extracted image with its computed display size.
// Target dimensions are in inches; their ratio matches the native pixel
// ratio and the implied scale never exceeds 1.0.
type ImagePlacement struct {
	Data           []byte
	NativeWidthPx  int
	NativeHeightPx int
	TargetWidth    float64 // inches
	TargetHeight   float64 // inches
	Format         string
	PageIndex      int // 0-based source page
}
