package webapi

import (
	"github.com/tsawler/recast"
)

// ConvertRequest carries the inputs for one conversion job. Paths point
// at files already saved under the job's scratch directory.
type ConvertRequest struct {
	InputPath  string
	OutputPath string

	// Password decrypts protected documents. Empty means none.
	Password string

	// Pages selects specific 0-indexed pages. When set it takes
	// precedence over StartPage and EndPage.
	Pages []int

	// StartPage and EndPage bound the page range. EndPage is exclusive;
	// zero or negative converts through the last page.
	StartPage int
	EndPage   int

	// TemplatePath points at a .dotx or .docx whose formatting should
	// be applied to the output.
	TemplatePath string

	// FontPaths lists font files to register with the output document.
	FontPaths []string
}

// ConvertFunc runs a conversion request. The server calls it once per
// upload; tests substitute a stub so handlers run without real PDFs.
type ConvertFunc func(req ConvertRequest) (*recast.Result, error)

// DefaultConvert runs a request through the conversion pipeline. It is
// the ConvertFunc installed when Config.Convert is nil.
func DefaultConvert(req ConvertRequest) (*recast.Result, error) {
	conv := recast.Open(req.InputPath)
	if req.Password != "" {
		conv = conv.WithPassword(req.Password)
	}
	if req.TemplatePath != "" {
		conv = conv.WithTemplate(req.TemplatePath)
	}
	if len(req.FontPaths) > 0 {
		conv = conv.WithFonts(req.FontPaths...)
	}
	if len(req.Pages) > 0 {
		conv = conv.WithPages(req.Pages...)
	} else {
		end := req.EndPage
		if end == 0 {
			end = -1
		}
		conv = conv.WithPageRange(req.StartPage, end)
	}
	return conv.Convert(req.OutputPath)
}
