package recast

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/tsawler/recast/layout"
)

func TestResolvePages(t *testing.T) {
	tests := []struct {
		name  string
		total int
		setup func(o *convertOptions)
		want  []int
	}{
		{"all pages by default", 3, func(o *convertOptions) {}, []int{0, 1, 2}},
		{"explicit pages", 10, func(o *convertOptions) { o.pages = []int{0, 5} }, []int{0, 5}},
		{"explicit out of range dropped", 10, func(o *convertOptions) { o.pages = []int{0, 5, 99} }, []int{0, 5}},
		{"explicit negative dropped", 10, func(o *convertOptions) { o.pages = []int{-1, 2} }, []int{2}},
		{"explicit duplicates collapse", 10, func(o *convertOptions) { o.pages = []int{3, 1, 3} }, []int{1, 3}},
		{"explicit unsorted comes back ascending", 10, func(o *convertOptions) { o.pages = []int{7, 2, 4} }, []int{2, 4, 7}},
		{"explicit all out of range", 2, func(o *convertOptions) { o.pages = []int{5, 6} }, nil},
		{"explicit wins over range", 10, func(o *convertOptions) {
			o.pages = []int{7}
			o.startPage = 0
			o.endPage = 2
		}, []int{7}},
		{"range", 10, func(o *convertOptions) { o.startPage = 2; o.endPage = 4 }, []int{2, 3}},
		{"range clamps negative start", 3, func(o *convertOptions) { o.startPage = -4; o.endPage = 2 }, []int{0, 1}},
		{"range clamps end to total", 3, func(o *convertOptions) { o.startPage = 1; o.endPage = 99 }, []int{1, 2}},
		{"range to document end", 3, func(o *convertOptions) { o.startPage = 1; o.endPage = -1 }, []int{1, 2}},
		{"range start past end is empty", 3, func(o *convertOptions) { o.startPage = 5; o.endPage = -1 }, nil},
		{"empty document", 0, func(o *convertOptions) {}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOptions()
			tt.setup(&opts)
			got := resolvePages(tt.total, opts)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("resolvePages(%d) = %v, want %v", tt.total, got, tt.want)
			}
		})
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{ErrInputNotFound, "input not found"},
		{ErrAuthenticationRequired, "authentication required"},
		{ErrAuthenticationFailed, "authentication failed"},
		{ErrPageExtraction, "page extraction failed"},
		{ErrImageDecode, "image decode failed"},
		{ErrSpacingRepair, "spacing repair failed"},
		{ErrOutputWrite, "output write failed"},
		{ErrorKind(99), "unknown error"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestConvertErrorMessage(t *testing.T) {
	cause := errors.New("disk full")

	err := &ConvertError{Kind: ErrOutputWrite, Err: cause}
	if got, want := err.Error(), "output write failed: disk full"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	paged := &ConvertError{Kind: ErrPageExtraction, Page: 3, Err: cause}
	if got, want := paged.Error(), "page 3: page extraction failed: disk full"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestConvertErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("converting: %w", &ConvertError{Kind: ErrInputNotFound, Err: cause})

	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}

	var ce *ConvertError
	if !errors.As(err, &ce) {
		t.Fatal("errors.As should find the ConvertError")
	}
	if ce.Kind != ErrInputNotFound {
		t.Errorf("Kind = %v, want %v", ce.Kind, ErrInputNotFound)
	}
}

func TestWarningString(t *testing.T) {
	paged := Warning{Page: 2, Message: "text extraction failed"}
	if got, want := paged.String(), "page 2: text extraction failed"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	global := Warning{Message: "font brand.ttf: no such file"}
	if got, want := global.String(), "font brand.ttf: no such file"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestFormatWarnings(t *testing.T) {
	if got := FormatWarnings(nil); got != "" {
		t.Errorf("FormatWarnings(nil) = %q, want empty", got)
	}

	warnings := []Warning{
		{Page: 2, Message: "text extraction failed"},
		{Message: "font brand.ttf: no such file"},
	}
	want := "page 2: text extraction failed; font brand.ttf: no such file"
	if got := FormatWarnings(warnings); got != want {
		t.Errorf("FormatWarnings() = %q, want %q", got, want)
	}
}

func TestResultSucceeded(t *testing.T) {
	if (&Result{Status: StatusSuccess}).Succeeded() != true {
		t.Error("success status should report Succeeded")
	}
	if (&Result{Status: StatusError}).Succeeded() != false {
		t.Error("error status should not report Succeeded")
	}
	var nilResult *Result
	if nilResult.Succeeded() {
		t.Error("nil result should not report Succeeded")
	}
}

func TestConverterOptionsAreImmutable(t *testing.T) {
	base := Open("document.pdf")

	withPages := base.WithPages(1, 2)
	withMore := withPages.WithPages(3)
	withRange := base.WithPageRange(2, 5)

	if len(base.options.pages) != 0 {
		t.Errorf("base pages modified: %v", base.options.pages)
	}
	if got := withPages.options.pages; !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("withPages pages = %v, want [1 2]", got)
	}
	if got := withMore.options.pages; !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("withMore pages = %v, want [1 2 3]", got)
	}
	if base.options.startPage != 0 || base.options.endPage != -1 {
		t.Errorf("base range modified: [%d, %d)", base.options.startPage, base.options.endPage)
	}
	if withRange.options.startPage != 2 || withRange.options.endPage != 5 {
		t.Errorf("withRange = [%d, %d), want [2, 5)", withRange.options.startPage, withRange.options.endPage)
	}
}

func TestConverterOptionChaining(t *testing.T) {
	conv := Open("in.pdf").
		WithPassword("secret").
		WithTemplate("corp.dotx").
		WithFonts("a.ttf").
		WithFonts("b.otf").
		WithYThreshold(3.5).
		WithClustering(layout.ClusterByPrevious)

	if conv.options.password != "secret" {
		t.Errorf("password = %q", conv.options.password)
	}
	if conv.options.templatePath != "corp.dotx" {
		t.Errorf("templatePath = %q", conv.options.templatePath)
	}
	if got := conv.options.fontPaths; !reflect.DeepEqual(got, []string{"a.ttf", "b.otf"}) {
		t.Errorf("fontPaths = %v, want cumulative [a.ttf b.otf]", got)
	}
	if conv.options.yThreshold != 3.5 {
		t.Errorf("yThreshold = %v", conv.options.yThreshold)
	}
	if conv.options.clustering != layout.ClusterByPrevious {
		t.Errorf("clustering = %v", conv.options.clustering)
	}
}

func TestLayoutConfigFromOptions(t *testing.T) {
	opts := defaultOptions()
	if got := opts.layoutConfig().YThreshold; got != 5.0 {
		t.Errorf("default YThreshold = %v, want 5.0", got)
	}

	opts.yThreshold = 2.0
	opts.clustering = layout.ClusterByPrevious
	cfg := opts.layoutConfig()
	if cfg.YThreshold != 2.0 {
		t.Errorf("YThreshold = %v, want 2.0", cfg.YThreshold)
	}
	if cfg.Clustering != layout.ClusterByPrevious {
		t.Errorf("Clustering = %v, want ClusterByPrevious", cfg.Clustering)
	}

	opts.yThreshold = -1
	if got := opts.layoutConfig().YThreshold; got != 5.0 {
		t.Errorf("non-positive threshold should keep the default, got %v", got)
	}
}

func TestMust(t *testing.T) {
	if got := Must(42, nil); got != 42 {
		t.Errorf("Must(42, nil) = %d", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Must should panic on error")
		}
	}()
	Must(0, errors.New("boom"))
}

func TestMustResult(t *testing.T) {
	res := &Result{Status: StatusSuccess}
	if got := MustResult(res, nil); got != res {
		t.Error("MustResult should return the result unchanged")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustResult should panic on error")
		}
	}()
	MustResult(nil, errors.New("boom"))
}
