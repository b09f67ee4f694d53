package docx

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/recast/model"
)

func TestNormalizeFontName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"subset prefix stripped", "ABCDEF+Helvetica", "Arial"},
		{"variant suffix stripped", "Helvetica-Bold", "Arial"},
		{"comma variant stripped", "Courier,BoldItalic", "Courier New"},
		{"times maps", "Times-Roman", "Times New Roman"},
		{"times substring maps", "TimesNewRomanPSMT", "Times New Roman"},
		{"symbol maps", "Symbol", "Symbol"},
		{"dingbats map", "ZapfDingbats", "Wingdings"},
		{"unknown falls back", "Unknown", "Calibri"},
		{"empty falls back", "", "Calibri"},
		{"stripped to nothing falls back", "ABCD+", "Calibri"},
		{"unmapped name passes through", "Garamond", "Garamond"},
		{"unmapped keeps base of variant", "Garamond-Italic", "Garamond"},
		{"case insensitive mapping", "HELVETICA", "Arial"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeFontName(tt.in); got != tt.want {
				t.Errorf("NormalizeFontName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// writeFontFile drops bytes into a font named file. The content is not a
// parseable font, which exercises the file name fallback.
func writeFontFile(t *testing.T, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("not a real font"), 0644); err != nil {
		t.Fatalf("failed to write font file: %v", err)
	}
	return path
}

func TestRegisterFontFamilyFallsBackToFileName(t *testing.T) {
	w := NewWriter(model.DefaultGeometry())
	if err := w.RegisterFont(writeFontFile(t, "CorpSans.ttf")); err != nil {
		t.Fatalf("RegisterFont() error = %v", err)
	}

	if len(w.fonts) != 1 {
		t.Fatalf("registered %d fonts, want 1", len(w.fonts))
	}
	if w.fonts[0].family != "CorpSans" {
		t.Errorf("family = %q, want %q", w.fonts[0].family, "CorpSans")
	}
}

func TestRegisterFontRejectsUnknownExtension(t *testing.T) {
	w := NewWriter(model.DefaultGeometry())
	if err := w.RegisterFont(writeFontFile(t, "CorpSans.woff")); err == nil {
		t.Error("RegisterFont accepted a .woff file")
	}
}

func TestRegisterFontMissingFile(t *testing.T) {
	w := NewWriter(model.DefaultGeometry())
	if err := w.RegisterFont(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("RegisterFont succeeded on a missing file")
	}
}

func TestFontForRunPrefersRegisteredFonts(t *testing.T) {
	w := NewWriter(model.DefaultGeometry())
	if err := w.RegisterFont(writeFontFile(t, "CorpSans.ttf")); err != nil {
		t.Fatalf("RegisterFont() error = %v", err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"CorpSans", "CorpSans"},
		{"corpsans", "CorpSans"},             // case insensitive
		{"Corp", "CorpSans"},                 // substring of the family
		{"ABCDEF+CorpSans", "CorpSans"},      // subset prefix stripped first
		{"CorpSans-Bold", "CorpSans"},        // variant suffix stripped first
		{"ABCDEF+CorpSans-Bold", "CorpSans"}, // both decorations
		{"CorpSansMT", "CorpSans"},           // family is a substring of the name
		{"Helvetica", "Arial"},               // unregistered names still map
		{"", "Calibri"},
	}

	for _, tt := range tests {
		if got := w.fontForRun(tt.in); got != tt.want {
			t.Errorf("fontForRun(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriterEmbedsRegisteredFonts(t *testing.T) {
	w := NewWriter(model.DefaultGeometry())
	if err := w.RegisterFont(writeFontFile(t, "CorpSans.ttf")); err != nil {
		t.Fatalf("RegisterFont() error = %v", err)
	}
	w.AddPage(makePage("content"))
	path := saveDocument(t, w)

	if data := readPart(t, path, "word/fonts/font1.ttf"); len(data) == 0 {
		t.Error("embedded font part is empty")
	}

	table := string(readPart(t, path, "word/fontTable.xml"))
	if !strings.Contains(table, `w:name="CorpSans"`) {
		t.Error("font table missing the registered family")
	}
	if !strings.Contains(table, `<w:embedRegular r:id="rId1"/>`) {
		t.Error("font table does not reference the embedded file")
	}

	rels := string(readPart(t, path, "word/_rels/fontTable.xml.rels"))
	if !strings.Contains(rels, `Target="fonts/font1.ttf"`) {
		t.Error("font table relationships do not reference the font file")
	}

	types := string(readPart(t, path, "[Content_Types].xml"))
	if !strings.Contains(types, `Extension="ttf"`) {
		t.Error("content types missing the ttf default")
	}
}
