package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/tsawler/recast/model"
)

// Template holds the layout information read from an existing document.
type Template struct {
	Geometry model.PageGeometry
	Styles   []byte // raw word/styles.xml, nil when the template has none
}

// templateDocumentXML is the subset of word/document.xml a template is
// read for.
type templateDocumentXML struct {
	XMLName xml.Name        `xml:"document"`
	Body    templateBodyXML `xml:"body"`
}

type templateBodyXML struct {
	Paragraphs []templateParagraphXML `xml:"p"`
	SectPr     *sectPrXML             `xml:"sectPr"`
}

type templateParagraphXML struct {
	Runs []templateRunXML `xml:"r"`
}

type templateRunXML struct {
	Text []string `xml:"t"`
}

// sectPrXML represents section properties (<w:sectPr>).
type sectPrXML struct {
	PgSz  pgSzXML  `xml:"pgSz"`
	PgMar pgMarXML `xml:"pgMar"`
}

// pgSzXML represents page size in twips.
type pgSzXML struct {
	W      string `xml:"w,attr"`
	H      string `xml:"h,attr"`
	Orient string `xml:"orient,attr"`
}

// pgMarXML represents page margins in twips.
type pgMarXML struct {
	Top    string `xml:"top,attr"`
	Right  string `xml:"right,attr"`
	Bottom string `xml:"bottom,attr"`
	Left   string `xml:"left,attr"`
}

// LoadTemplate reads page geometry and styles from a .docx or .dotx file.
// Anything the template does not specify keeps the US Letter default.
func LoadTemplate(path string) (*Template, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening template: %w", err)
	}
	defer zr.Close()

	docData, err := zipFileContent(&zr.Reader, "word/document.xml")
	if err != nil {
		return nil, fmt.Errorf("reading template document: %w", err)
	}

	var doc templateDocumentXML
	if err := xml.Unmarshal(docData, &doc); err != nil {
		return nil, fmt.Errorf("parsing template document: %w", err)
	}

	tpl := &Template{Geometry: model.DefaultGeometry()}
	if doc.Body.SectPr != nil {
		applySectPr(&tpl.Geometry, doc.Body.SectPr)
	}

	// Styles are optional. A template without them keeps ours.
	if styles, err := zipFileContent(&zr.Reader, "word/styles.xml"); err == nil {
		tpl.Styles = styles
	}

	return tpl, nil
}

// applySectPr overrides geometry fields the section properties specify.
// Values that fail to parse or are not positive are ignored.
func applySectPr(g *model.PageGeometry, sp *sectPrXML) {
	if v, ok := twipsAttr(sp.PgSz.W); ok {
		g.PageWidth = v
	}
	if v, ok := twipsAttr(sp.PgSz.H); ok {
		g.PageHeight = v
	}
	if v, ok := twipsAttr(sp.PgMar.Top); ok {
		g.MarginTop = v
	}
	if v, ok := twipsAttr(sp.PgMar.Right); ok {
		g.MarginRight = v
	}
	if v, ok := twipsAttr(sp.PgMar.Bottom); ok {
		g.MarginBottom = v
	}
	if v, ok := twipsAttr(sp.PgMar.Left); ok {
		g.MarginLeft = v
	}
}

// twipsAttr parses a twips attribute value into inches.
func twipsAttr(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v / twipsPerInch, true
}

// zipFileContent reads one file from a ZIP archive by name.
func zipFileContent(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}
