package docx

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/image/font/sfnt"
)

var (
	// subsetPrefixRE matches the subset tag PDF producers prepend to
	// embedded font names, e.g. "ABCDEF+Helvetica".
	subsetPrefixRE = regexp.MustCompile(`^[A-Z]+\+`)

	// variantSuffixRE matches variant decorations such as "-Bold" or
	// ",Italic". Everything from the first separator on is dropped.
	variantSuffixRE = regexp.MustCompile(`[,\-].*$`)
)

// coreFontMap maps the standard PDF base font families to the Word fonts
// readers actually have installed. Matching is case insensitive by
// substring.
var coreFontMap = []struct {
	match string
	word  string
}{
	{"times", "Times New Roman"},
	{"helvetica", "Arial"},
	{"courier", "Courier New"},
	{"symbol", "Symbol"},
	{"zapfdingbats", "Wingdings"},
}

// NormalizeFontName converts a font name as reported by a PDF into one a
// word processor can resolve. Subset prefixes and variant suffixes are
// stripped, the standard base fonts are mapped to their common Word
// equivalents, and names that carry no usable information become
// Calibri.
func NormalizeFontName(name string) string {
	if name == "" || name == "Unknown" {
		return "Calibri"
	}

	cleaned := subsetPrefixRE.ReplaceAllString(name, "")
	cleaned = variantSuffixRE.ReplaceAllString(cleaned, "")

	lower := strings.ToLower(cleaned)
	for _, m := range coreFontMap {
		if strings.Contains(lower, m.match) {
			return m.word
		}
	}

	if cleaned == "" {
		return "Calibri"
	}
	return cleaned
}

// RegisterFont embeds a TTF or OTF font file in the package and makes its
// family name available to runs. The family name is read from the font's
// name table, falling back to the file name when the font cannot be
// parsed.
func (w *Writer) RegisterFont(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading font: %w", err)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	var contentType string
	switch ext {
	case "ttf":
		contentType = "application/x-font-ttf"
	case "otf":
		contentType = "application/vnd.ms-opentype"
	default:
		return fmt.Errorf("unsupported font file %q: want .ttf or .otf", filepath.Base(path))
	}

	family := fontFamilyName(data)
	if family == "" {
		family = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	w.fonts = append(w.fonts, fontEntry{
		family:      family,
		ext:         ext,
		contentType: contentType,
		data:        data,
	})
	return nil
}

// fontFamilyName reads the family name from the font's name table.
func fontFamilyName(data []byte) string {
	f, err := sfnt.Parse(data)
	if err != nil {
		return ""
	}
	name, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// fontForRun picks the font a run should carry. Registered fonts are
// checked first, so a registered font wins over the base font mapping.
func (w *Writer) fontForRun(raw string) string {
	if family, ok := w.registeredFont(raw); ok {
		return family
	}
	return NormalizeFontName(raw)
}

// registeredFont reports whether the font name, stripped of its subset
// prefix and variant suffix, matches a registered font family by case
// insensitive substring in either direction.
func (w *Writer) registeredFont(raw string) (string, bool) {
	cleaned := subsetPrefixRE.ReplaceAllString(raw, "")
	cleaned = variantSuffixRE.ReplaceAllString(cleaned, "")
	if cleaned == "" {
		return "", false
	}
	name := strings.ToLower(cleaned)
	for _, f := range w.fonts {
		family := strings.ToLower(f.family)
		if strings.Contains(family, name) || strings.Contains(name, family) {
			return f.family, true
		}
	}
	return "", false
}
