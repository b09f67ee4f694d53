// Package extract reads PDF files and produces positioned text fragments
// and embedded images for the conversion pipeline.
//
// Two backends share the work. Text comes from ledongthuc/pdf, which
// exposes per-run positions, fonts, and sizes from the content stream.
// Document-level concerns (validation, encryption, page count) and image
// extraction go through pdfcpu.
//
// # Usage
//
//	ex, err := extract.Open("book.pdf", "")
//	if err != nil { ... }
//	defer ex.Close()
//
//	for i := 0; i < ex.PageCount(); i++ {
//	    page, err := ex.ExtractPage(i)
//	    ...
//	}
//
// # Coordinates
//
// PDF user space puts the origin at the bottom-left corner with Y growing
// upward. Fragments returned here are flipped to the pipeline's top-left
// convention: Y grows downward from the top of the page.
//
// # Words
//
// ledongthuc/pdf reports one Text item per positioned glyph run, often a
// single character. Consecutive items on one line with matching font and
// size merge into word fragments; a horizontal gap above 30% of the font
// size (at least one point), a vertical move, or an intervening whitespace
// run starts a new fragment. Fragments are never whitespace-only.
package extract
