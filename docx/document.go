package docx

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/tsawler/recast/model"
)

// XML namespaces used in DOCX files
const (
	nsW   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsWP  = "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
	nsA   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsPIC = "http://schemas.openxmlformats.org/drawingml/2006/picture"
	nsDC  = "http://purl.org/dc/elements/1.1/"
	nsCP  = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
)

// Unit conversions. OOXML measures page geometry in twips, font sizes in
// half-points and drawing extents in EMUs.
const (
	twipsPerInch = 1440
	emusPerInch  = 914400
)

// Font size bounds, in points. Sizes outside this range are clamped
// before conversion to half-points.
const (
	minFontSizePt = 8.0
	maxFontSizePt = 72.0
)

// Paragraph spacing written on every paragraph: single line spacing with
// no space before and six points after.
const paragraphSpacing = `<w:spacing w:before="0" w:after="120" w:line="240" w:lineRule="auto"/>`

// xmlEscape escapes text content for inclusion in an XML document.
func xmlEscape(s string) string {
	var b strings.Builder
	xml.EscapeText(&b, []byte(s))
	return b.String()
}

// halfPoints converts a font size in points to the half-point value DOCX
// expects, clamping to the supported range.
func halfPoints(sizePt float64) int {
	if sizePt < minFontSizePt {
		sizePt = minFontSizePt
	}
	if sizePt > maxFontSizePt {
		sizePt = maxFontSizePt
	}
	return int(sizePt*2 + 0.5)
}

// twips converts inches to twips.
func twips(inches float64) int {
	return int(inches*twipsPerInch + 0.5)
}

// emus converts inches to EMUs.
func emus(inches float64) int64 {
	return int64(inches*emusPerInch + 0.5)
}

// writeRunXML emits one <w:r> element with its run properties.
func (w *Writer) writeRunXML(sb *strings.Builder, run model.Run) {
	sb.WriteString("<w:r><w:rPr>")

	font := xmlEscape(w.fontForRun(run.FontName))
	fmt.Fprintf(sb, `<w:rFonts w:ascii="%s" w:hAnsi="%s" w:cs="%s"/>`, font, font, font)
	if run.Bold {
		sb.WriteString("<w:b/>")
	}
	if run.Italic {
		sb.WriteString("<w:i/>")
	}
	if run.Color != nil {
		fmt.Fprintf(sb, `<w:color w:val="%s"/>`, run.Color.Hex())
	}
	hp := halfPoints(run.FontSize)
	fmt.Fprintf(sb, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, hp, hp)

	sb.WriteString("</w:rPr>")
	fmt.Fprintf(sb, `<w:t xml:space="preserve">%s</w:t>`, xmlEscape(run.Text))
	sb.WriteString("</w:r>")
}

// paragraphXML renders one reconstructed paragraph as a <w:p> element.
func (w *Writer) paragraphXML(para model.ParagraphRecord) string {
	var sb strings.Builder
	sb.WriteString("<w:p><w:pPr>")
	sb.WriteString(paragraphSpacing)
	sb.WriteString("</w:pPr>")
	for _, run := range para.Runs {
		w.writeRunXML(&sb, run)
	}
	sb.WriteString("</w:p>")
	return sb.String()
}

// pageBreakXML is the paragraph that separates consecutive pages.
const pageBreakXML = `<w:p><w:r><w:br w:type="page"/></w:r></w:p>`

// imageParagraphXML renders a centered paragraph holding one inline
// picture. relID references the media part, docPrID must be unique per
// drawing in the document.
func imageParagraphXML(relID string, docPrID int, widthIn, heightIn float64) string {
	cx, cy := emus(widthIn), emus(heightIn)
	name := fmt.Sprintf("Picture %d", docPrID)

	var sb strings.Builder
	sb.WriteString(`<w:p><w:pPr>`)
	sb.WriteString(paragraphSpacing)
	sb.WriteString(`<w:jc w:val="center"/>`)
	sb.WriteString(`</w:pPr><w:r><w:drawing>`)
	fmt.Fprintf(&sb, `<wp:inline distT="0" distB="0" distL="0" distR="0">`)
	fmt.Fprintf(&sb, `<wp:extent cx="%d" cy="%d"/>`, cx, cy)
	fmt.Fprintf(&sb, `<wp:docPr id="%d" name="%s"/>`, docPrID, name)
	fmt.Fprintf(&sb, `<a:graphic xmlns:a="%s">`, nsA)
	fmt.Fprintf(&sb, `<a:graphicData uri="%s">`, nsPIC)
	fmt.Fprintf(&sb, `<pic:pic xmlns:pic="%s">`, nsPIC)
	fmt.Fprintf(&sb, `<pic:nvPicPr><pic:cNvPr id="%d" name="%s"/><pic:cNvPicPr/></pic:nvPicPr>`, docPrID, name)
	fmt.Fprintf(&sb, `<pic:blipFill><a:blip r:embed="%s"/><a:stretch><a:fillRect/></a:stretch></pic:blipFill>`, relID)
	fmt.Fprintf(&sb, `<pic:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="%d" cy="%d"/></a:xfrm>`, cx, cy)
	sb.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></pic:spPr>`)
	sb.WriteString(`</pic:pic></a:graphicData></a:graphic></wp:inline></w:drawing></w:r></w:p>`)
	return sb.String()
}

// sectPrXMLFor renders the section properties for the document body. Page
// size and margins come from the geometry, in twips, with the orientation
// flag set for landscape pages.
func sectPrXMLFor(g model.PageGeometry) string {
	var sb strings.Builder
	sb.WriteString("<w:sectPr>")
	if g.Landscape() {
		fmt.Fprintf(&sb, `<w:pgSz w:w="%d" w:h="%d" w:orient="landscape"/>`,
			twips(g.PageWidth), twips(g.PageHeight))
	} else {
		fmt.Fprintf(&sb, `<w:pgSz w:w="%d" w:h="%d"/>`,
			twips(g.PageWidth), twips(g.PageHeight))
	}
	fmt.Fprintf(&sb, `<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="720" w:footer="720" w:gutter="0"/>`,
		twips(g.MarginTop), twips(g.MarginRight), twips(g.MarginBottom), twips(g.MarginLeft))
	sb.WriteString("</w:sectPr>")
	return sb.String()
}

// documentXML assembles the complete word/document.xml part.
func (w *Writer) documentXML() []byte {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	fmt.Fprintf(&sb, `<w:document xmlns:w="%s" xmlns:r="%s" xmlns:wp="%s">`, nsW, nsR, nsWP)
	sb.WriteString("<w:body>")
	for _, block := range w.body {
		sb.WriteString(block)
	}
	sb.WriteString(sectPrXMLFor(w.geometry))
	sb.WriteString("</w:body></w:document>")
	return []byte(sb.String())
}
