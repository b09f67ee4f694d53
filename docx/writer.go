package docx

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/tsawler/recast/model"
)

// Writer accumulates converted pages and emits them as a DOCX package.
// It is not safe for concurrent use.
type Writer struct {
	geometry model.PageGeometry
	body     []string // rendered body blocks, in document order
	media    []mediaEntry
	fonts    []fontEntry
	styles   []byte // replacement styles part, nil for the default
	title    string
	pages    int
}

// mediaEntry is one file under word/media.
type mediaEntry struct {
	name   string // part name relative to word/, e.g. "media/image1.png"
	format string // extension, drives the content type entry
	data   []byte
}

// fontEntry is one embedded font file.
type fontEntry struct {
	family      string
	ext         string
	contentType string
	data        []byte
}

// NewWriter returns a Writer that lays out pages with the given geometry.
func NewWriter(geometry model.PageGeometry) *Writer {
	return &Writer{geometry: geometry}
}

// SetTitle sets the document title written to the core properties.
func (w *Writer) SetTitle(title string) {
	w.title = title
}

// UseStyles replaces the default styles part, typically with the
// styles.xml taken from a template. Empty input keeps the default.
func (w *Writer) UseStyles(stylesPart []byte) {
	if len(stylesPart) > 0 {
		w.styles = stylesPart
	}
}

// PageCount reports how many pages have been added.
func (w *Writer) PageCount() int {
	return w.pages
}

// AddPage appends one page of content. A page break is inserted between
// consecutive pages, never before the first or after the last, so an
// empty trailing page still ends cleanly.
func (w *Writer) AddPage(page model.PageContent) {
	if w.pages > 0 {
		w.body = append(w.body, pageBreakXML)
	}
	for _, para := range page.Paragraphs {
		if para.IsBlank() {
			continue
		}
		w.body = append(w.body, w.paragraphXML(para))
	}
	for _, img := range page.Images {
		w.body = append(w.body, w.imageParagraph(img))
	}
	w.pages++
}

// imageParagraph registers the image bytes as a media part and renders
// the paragraph that displays it.
func (w *Writer) imageParagraph(img model.ImagePlacement) string {
	idx := len(w.media) + 1
	ext := strings.ToLower(img.Format)
	if ext == "" || ext == "unknown" {
		ext = "bin"
	}
	name := fmt.Sprintf("media/image%d.%s", idx, ext)
	w.media = append(w.media, mediaEntry{name: name, format: ext, data: img.Data})

	relID := fmt.Sprintf("rId%d", idx)
	return imageParagraphXML(relID, idx, img.TargetWidth, img.TargetHeight)
}

// documentRels lists the relationships of the document part: one per
// image, then styles and the font table.
func (w *Writer) documentRels() []relationship {
	rels := make([]relationship, 0, len(w.media)+2)
	for i, m := range w.media {
		rels = append(rels, relationship{
			ID:     fmt.Sprintf("rId%d", i+1),
			Type:   relTypeImage,
			Target: m.name,
		})
	}
	n := len(w.media)
	rels = append(rels,
		relationship{ID: fmt.Sprintf("rId%d", n+1), Type: relTypeStyles, Target: "styles.xml"},
		relationship{ID: fmt.Sprintf("rId%d", n+2), Type: relTypeFonts, Target: "fontTable.xml"},
	)
	return rels
}

// stylesPart returns the styles to write: the template's when one was
// supplied, the built in default otherwise.
func (w *Writer) stylesPart() []byte {
	if w.styles != nil {
		return w.styles
	}
	return defaultStylesXML()
}

// part is one file inside the package.
type part struct {
	name string
	data []byte
}

// Write emits the complete DOCX package to out.
func (w *Writer) Write(out io.Writer) error {
	parts := []part{
		{"[Content_Types].xml", w.contentTypesXML()},
		{"_rels/.rels", relationshipsXML([]relationship{
			{ID: "rId1", Type: relTypeDocument, Target: "word/document.xml"},
			{ID: "rId2", Type: relTypeCore, Target: "docProps/core.xml"},
			{ID: "rId3", Type: relTypeApp, Target: "docProps/app.xml"},
		})},
		{"word/document.xml", w.documentXML()},
		{"word/_rels/document.xml.rels", relationshipsXML(w.documentRels())},
		{"word/styles.xml", w.stylesPart()},
		{"word/fontTable.xml", w.fontTableXML()},
		{"docProps/core.xml", w.corePropsXML(time.Now())},
		{"docProps/app.xml", w.appPropsXML()},
	}

	for _, m := range w.media {
		parts = append(parts, part{"word/" + m.name, m.data})
	}

	if len(w.fonts) > 0 {
		fontRels := make([]relationship, len(w.fonts))
		for i, f := range w.fonts {
			target := fmt.Sprintf("fonts/font%d.%s", i+1, f.ext)
			fontRels[i] = relationship{
				ID:     fmt.Sprintf("rId%d", i+1),
				Type:   relTypeFont,
				Target: target,
			}
			parts = append(parts, part{"word/" + target, f.data})
		}
		parts = append(parts, part{"word/_rels/fontTable.xml.rels", relationshipsXML(fontRels)})
	}

	zw := zip.NewWriter(out)
	for _, p := range parts {
		f, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("creating %s: %w", p.name, err)
		}
		if _, err := f.Write(p.data); err != nil {
			return fmt.Errorf("writing %s: %w", p.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finishing package: %w", err)
	}
	return nil
}

// Save writes the package to a file. A partial file left by a failed
// write is removed.
func (w *Writer) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := w.Write(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
