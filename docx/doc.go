// Package docx writes DOCX (Office Open XML) word processing documents.
//
// A [Writer] accumulates pages of reconstructed content and emits a
// complete OOXML package: the document part, relationships, styles, the
// font table, core and extended properties, and any embedded media.
//
// # Building a Document
//
// Pages are appended in order. A page break separates consecutive pages,
// so a single page document contains no breaks:
//
//	w := docx.NewWriter(model.DefaultGeometry())
//	w.AddPage(page)
//	err := w.Save("out.docx")
//
// # Units
//
// OOXML uses a different unit in every corner of the format. This package
// converts at the boundary:
//   - page size and margins are written in twips (1/1440 inch)
//   - font sizes are written in half-points
//   - image extents are written in EMUs (914400 per inch)
//
// # Fonts
//
// Run fonts pass through [NormalizeFontName], which strips PDF subset
// prefixes and variant suffixes and maps the standard PDF base fonts to
// their common Word equivalents. Custom fonts registered with
// [Writer.RegisterFont] are embedded in the package and take precedence
// over the mapping.
//
// # Templates
//
// [LoadTemplate] reads page geometry and styles from an existing .docx or
// .dotx file so produced documents can match a house layout.
package docx
