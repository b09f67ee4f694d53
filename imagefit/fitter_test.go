package imagefit

import (
	"math"
	"testing"
)

func TestFit(t *testing.T) {
	f := NewFitter()

	tests := []struct {
		name                 string
		nativeWPx, nativeHPx int
		printW, printH       float64
		wantW, wantH         float64
	}{
		{"scales down wide image", 720, 960, 6, 9, 6.0, 8.0},
		{"small image kept at native size", 144, 72, 6.5, 9, 2.0, 1.0},
		{"exact fit unchanged", 468, 648, 6.5, 9, 6.5, 9.0},
		{"width constrained", 1440, 144, 6.5, 9, 6.5, 0.65},
		{"height constrained", 144, 1440, 6.5, 9, 0.9, 9.0},
		{"zero native uses fallback", 0, 0, 6.5, 9, 6.0, 8.0},
		{"negative native uses fallback", -5, 10, 6.5, 9, 6.0, 8.0},
		{"fallback still fits area", 0, 0, 3, 4, 3.0, 4.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := f.Fit(tt.nativeWPx, tt.nativeHPx, tt.printW, tt.printH)
			if math.Abs(w-tt.wantW) > 1e-9 || math.Abs(h-tt.wantH) > 1e-9 {
				t.Errorf("Fit(%d, %d, %v, %v) = (%v, %v), want (%v, %v)",
					tt.nativeWPx, tt.nativeHPx, tt.printW, tt.printH, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestFitNeverUpscales(t *testing.T) {
	f := NewFitter()

	// Everything smaller than the printable area must come back at native
	// size.
	sizes := []struct{ wPx, hPx int }{
		{72, 72},
		{144, 288},
		{36, 468},
		{1, 1},
	}
	for _, s := range sizes {
		w, h := f.Fit(s.wPx, s.hPx, 6.5, 9)
		wantW := float64(s.wPx) / 72
		wantH := float64(s.hPx) / 72
		if w != wantW || h != wantH {
			t.Errorf("Fit(%d, %d, 6.5, 9) = (%v, %v), want native (%v, %v)",
				s.wPx, s.hPx, w, h, wantW, wantH)
		}
	}
}

func TestFitPreservesAspect(t *testing.T) {
	f := NewFitter()

	tests := []struct{ wPx, hPx int }{
		{720, 960},
		{960, 720},
		{3000, 1000},
		{613, 791},
		{10000, 10000},
	}
	for _, tt := range tests {
		w, h := f.Fit(tt.wPx, tt.hPx, 6.5, 9)
		got := w / h
		want := float64(tt.wPx) / float64(tt.hPx)
		if relErr := math.Abs(got-want) / want; relErr > 1e-6 {
			t.Errorf("Fit(%d, %d) aspect = %v, want %v (rel err %v)", tt.wPx, tt.hPx, got, want, relErr)
		}
	}
}

func TestFitStaysInsidePrintableArea(t *testing.T) {
	f := NewFitter()

	tests := []struct {
		wPx, hPx       int
		printW, printH float64
	}{
		{720, 960, 6, 9},
		{5000, 100, 6.5, 9},
		{100, 5000, 6.5, 9},
		{0, 0, 2, 2},
	}
	for _, tt := range tests {
		w, h := f.Fit(tt.wPx, tt.hPx, tt.printW, tt.printH)
		if w > tt.printW+1e-9 || h > tt.printH+1e-9 {
			t.Errorf("Fit(%d, %d, %v, %v) = (%v, %v), exceeds printable area",
				tt.wPx, tt.hPx, tt.printW, tt.printH, w, h)
		}
	}
}

func TestNewFitterWithConfigNormalizes(t *testing.T) {
	// A zeroed config must not make Fit divide by zero.
	f := NewFitterWithConfig(Config{})
	w, h := f.Fit(0, 0, 6.5, 9)
	if w != 6.0 || h != 8.0 {
		t.Errorf("Fit with zeroed config = (%v, %v), want fallback (6, 8)", w, h)
	}

	custom := NewFitterWithConfig(Config{PixelsPerUnit: 96, FallbackWidth: 2, FallbackHeight: 3})
	w, h = custom.Fit(192, 96, 6.5, 9)
	if w != 2.0 || h != 1.0 {
		t.Errorf("Fit at 96 px/unit = (%v, %v), want (2, 1)", w, h)
	}
	w, h = custom.Fit(-1, -1, 6.5, 9)
	if w != 2.0 || h != 3.0 {
		t.Errorf("fallback with custom config = (%v, %v), want (2, 3)", w, h)
	}
}
