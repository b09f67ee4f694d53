// Package model provides the shared value types for the conversion
// pipeline.
//
// The types here move between pipeline stages and are the primary API for
// consuming conversion output:
//
//   - [TextFragment] - one positioned span of extracted text
//   - [RawImage] - an embedded image with its native pixel size
//   - [ParagraphRecord] - a reconstructed paragraph with per-run styling
//   - [ImagePlacement] - an image with its computed display size
//   - [PageContent] - one processed page ready for assembly
//   - [PageGeometry] - output page size and margins
//
// # Coordinates
//
// Fragment coordinates are PDF points with the origin at the top-left
// corner of the page: Y grows downward, so sorting fragments by ascending
// (Y, X) yields reading order. Extractors working against a bottom-left
// origin must flip Y before constructing fragments.
//
// # Units
//
// Page coordinates and font sizes are in points (72 per inch). Output
// geometry ([PageGeometry]) and image display sizes ([ImagePlacement]) are
// in inches. Conversions between the two happen only at package
// boundaries, never inside a stage.
package model
