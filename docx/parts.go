package docx

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Relationship and content type URIs for the package parts.
const (
	relTypeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeCore     = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relTypeApp      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relTypeStyles   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relTypeFonts    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/fontTable"
	relTypeImage    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	relTypeFont     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/font"

	ctDocument = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ctStyles   = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	ctFonts    = "application/vnd.openxmlformats-officedocument.wordprocessingml.fontTable+xml"
	ctCore     = "application/vnd.openxmlformats-package.core-properties+xml"
	ctApp      = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
)

// relationship is one entry in a .rels part.
type relationship struct {
	ID     string
	Type   string
	Target string
}

// relationshipsXML renders a relationships part.
func relationshipsXML(rels []relationship) []byte {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	for _, r := range rels {
		fmt.Fprintf(&sb, `<Relationship Id="%s" Type="%s" Target="%s"/>`, r.ID, r.Type, r.Target)
	}
	sb.WriteString(`</Relationships>`)
	return []byte(sb.String())
}

// contentTypesXML renders [Content_Types].xml. Image and font extensions
// present in the package get Default entries.
func (w *Writer) contentTypesXML() []byte {
	defaults := map[string]string{
		"rels": "application/vnd.openxmlformats-package.relationships+xml",
		"xml":  "application/xml",
	}
	for _, m := range w.media {
		if ct := imageContentType(m.format); ct != "" {
			defaults[m.format] = ct
		}
	}
	for _, f := range w.fonts {
		defaults[f.ext] = f.contentType
	}

	// Stable order keeps the part reproducible.
	exts := make([]string, 0, len(defaults))
	for ext := range defaults {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	for _, ext := range exts {
		fmt.Fprintf(&sb, `<Default Extension="%s" ContentType="%s"/>`, ext, defaults[ext])
	}
	fmt.Fprintf(&sb, `<Override PartName="/word/document.xml" ContentType="%s"/>`, ctDocument)
	fmt.Fprintf(&sb, `<Override PartName="/word/styles.xml" ContentType="%s"/>`, ctStyles)
	fmt.Fprintf(&sb, `<Override PartName="/word/fontTable.xml" ContentType="%s"/>`, ctFonts)
	fmt.Fprintf(&sb, `<Override PartName="/docProps/core.xml" ContentType="%s"/>`, ctCore)
	fmt.Fprintf(&sb, `<Override PartName="/docProps/app.xml" ContentType="%s"/>`, ctApp)
	sb.WriteString(`</Types>`)
	return []byte(sb.String())
}

// imageContentType maps an image format name to its MIME type. Unknown
// formats are packaged as octet streams.
func imageContentType(format string) string {
	switch format {
	case "png":
		return "image/png"
	case "jpeg", "jpg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	case "bmp":
		return "image/bmp"
	case "tiff":
		return "image/tiff"
	case "webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}

// defaultStylesXML is the styles part written when no template supplies
// one: a Normal style with the Calibri default the rest of the pipeline
// assumes.
func defaultStylesXML() []byte {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	fmt.Fprintf(&sb, `<w:styles xmlns:w="%s">`, nsW)
	sb.WriteString(`<w:docDefaults><w:rPrDefault><w:rPr>`)
	sb.WriteString(`<w:rFonts w:ascii="Calibri" w:hAnsi="Calibri" w:cs="Calibri"/>`)
	sb.WriteString(`<w:sz w:val="24"/><w:szCs w:val="24"/>`)
	sb.WriteString(`</w:rPr></w:rPrDefault><w:pPrDefault><w:pPr>`)
	sb.WriteString(paragraphSpacing)
	sb.WriteString(`</w:pPr></w:pPrDefault></w:docDefaults>`)
	sb.WriteString(`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>`)
	sb.WriteString(`</w:styles>`)
	return []byte(sb.String())
}

// fontTableXML renders word/fontTable.xml with one entry per embedded
// font. relID ordering matches the fontTable relationships part.
func (w *Writer) fontTableXML() []byte {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	fmt.Fprintf(&sb, `<w:fonts xmlns:w="%s" xmlns:r="%s">`, nsW, nsR)
	for i, f := range w.fonts {
		fmt.Fprintf(&sb, `<w:font w:name="%s">`, xmlEscape(f.family))
		fmt.Fprintf(&sb, `<w:embedRegular r:id="rId%d"/>`, i+1)
		sb.WriteString(`</w:font>`)
	}
	sb.WriteString(`</w:fonts>`)
	return []byte(sb.String())
}

// corePropsXML renders docProps/core.xml.
func (w *Writer) corePropsXML(now time.Time) []byte {
	stamp := now.UTC().Format("2006-01-02T15:04:05Z")

	var sb strings.Builder
	sb.WriteString(xml.Header)
	fmt.Fprintf(&sb, `<cp:coreProperties xmlns:cp="%s" xmlns:dc="%s" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`, nsCP, nsDC)
	if w.title != "" {
		fmt.Fprintf(&sb, `<dc:title>%s</dc:title>`, xmlEscape(w.title))
	}
	sb.WriteString(`<dc:creator>recast</dc:creator>`)
	fmt.Fprintf(&sb, `<dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>`, stamp)
	fmt.Fprintf(&sb, `<dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>`, stamp)
	sb.WriteString(`</cp:coreProperties>`)
	return []byte(sb.String())
}

// appPropsXML renders docProps/app.xml.
func (w *Writer) appPropsXML() []byte {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString(`<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties">`)
	sb.WriteString(`<Application>recast</Application>`)
	fmt.Fprintf(&sb, `<Pages>%d</Pages>`, w.pages)
	sb.WriteString(`</Properties>`)
	return []byte(sb.String())
}
