package model

import (
	"math"
	"testing"
)

func TestRGBFromInt(t *testing.T) {
	tests := []struct {
		name string
		v    uint32
		want RGB
	}{
		{"black", 0x000000, RGB{0, 0, 0}},
		{"white", 0xFFFFFF, RGB{255, 255, 255}},
		{"red", 0xFF0000, RGB{255, 0, 0}},
		{"green", 0x00FF00, RGB{0, 255, 0}},
		{"blue", 0x0000FF, RGB{0, 0, 255}},
		{"mixed", 0x1A2B3C, RGB{0x1A, 0x2B, 0x3C}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBFromInt(tt.v); got != tt.want {
				t.Errorf("RGBFromInt(%#x) = %+v, want %+v", tt.v, got, tt.want)
			}
		})
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		c    RGB
		want string
	}{
		{RGB{0, 0, 0}, "000000"},
		{RGB{255, 255, 255}, "FFFFFF"},
		{RGB{0x1A, 0x2B, 0x3C}, "1A2B3C"},
	}

	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("RGB%+v.Hex() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestEstimatedWidth(t *testing.T) {
	f := TextFragment{Text: "Hello"}
	if got := f.EstimatedWidth(5); got != 25 {
		t.Errorf("EstimatedWidth(5) = %v, want 25", got)
	}
	empty := TextFragment{}
	if got := empty.EstimatedWidth(5); got != 0 {
		t.Errorf("EstimatedWidth(5) on empty text = %v, want 0", got)
	}
}

func TestParagraphRecordIsBlank(t *testing.T) {
	tests := []struct {
		name string
		p    ParagraphRecord
		want bool
	}{
		{"empty", ParagraphRecord{}, true},
		{"whitespace only", ParagraphRecord{CombinedText: "  \t "}, true},
		{"text", ParagraphRecord{CombinedText: "Hello"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.IsBlank(); got != tt.want {
				t.Errorf("IsBlank() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPageContentIsEmpty(t *testing.T) {
	empty := PageContent{Index: 0, WidthPt: 612, HeightPt: 792}
	if !empty.IsEmpty() {
		t.Error("IsEmpty() = false for page with no content, want true")
	}

	withText := PageContent{Paragraphs: []ParagraphRecord{{CombinedText: "x"}}}
	if withText.IsEmpty() {
		t.Error("IsEmpty() = true for page with a paragraph, want false")
	}

	withImage := PageContent{Images: []ImagePlacement{{PageIndex: 0}}}
	if withImage.IsEmpty() {
		t.Error("IsEmpty() = true for page with an image, want false")
	}
}

func TestDefaultGeometry(t *testing.T) {
	g := DefaultGeometry()

	if g.PageWidth != 8.5 || g.PageHeight != 11 {
		t.Errorf("page size = %vx%v, want 8.5x11", g.PageWidth, g.PageHeight)
	}
	if g.PrintableWidth() != 6.5 {
		t.Errorf("PrintableWidth() = %v, want 6.5", g.PrintableWidth())
	}
	if g.PrintableHeight() != 9 {
		t.Errorf("PrintableHeight() = %v, want 9", g.PrintableHeight())
	}
	if g.Landscape() {
		t.Error("Landscape() = true for letter portrait, want false")
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestGeometryFromPageSize(t *testing.T) {
	tests := []struct {
		name              string
		widthPt, heightPt float64
		wantW, wantH      float64
		wantLandscape     bool
	}{
		{"letter", 612, 792, 8.5, 11, false},
		{"a4", 595.276, 841.89, 595.276 / 72, 841.89 / 72, false},
		{"letter rotated", 792, 612, 11, 8.5, true},
		{"zero falls back", 0, 0, 8.5, 11, false},
		{"negative falls back", -10, 792, 8.5, 11, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := GeometryFromPageSize(tt.widthPt, tt.heightPt)
			if math.Abs(g.PageWidth-tt.wantW) > 1e-9 || math.Abs(g.PageHeight-tt.wantH) > 1e-9 {
				t.Errorf("page size = %vx%v, want %vx%v", g.PageWidth, g.PageHeight, tt.wantW, tt.wantH)
			}
			if got := g.Landscape(); got != tt.wantLandscape {
				t.Errorf("Landscape() = %v, want %v", got, tt.wantLandscape)
			}
		})
	}
}

func TestGeometryValidate(t *testing.T) {
	tests := []struct {
		name    string
		g       PageGeometry
		wantErr bool
	}{
		{"default ok", DefaultGeometry(), false},
		{
			"margins consume width",
			PageGeometry{PageWidth: 2, PageHeight: 11, MarginLeft: 1, MarginRight: 1, MarginTop: 1, MarginBottom: 1},
			true,
		},
		{
			"margins consume height",
			PageGeometry{PageWidth: 8.5, PageHeight: 2, MarginLeft: 1, MarginRight: 1, MarginTop: 1, MarginBottom: 1},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.g.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
