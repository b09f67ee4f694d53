package recast

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/tsawler/recast/docx"
	"github.com/tsawler/recast/extract"
	"github.com/tsawler/recast/imagefit"
	"github.com/tsawler/recast/layout"
	"github.com/tsawler/recast/model"
)

// Convert runs the conversion and writes the output document to
// outputPath. This is a terminal operation: the source is opened, the
// selected pages are processed one at a time in ascending order, and the
// assembled document is saved. A page that cannot be extracted
// contributes an empty output page and a warning rather than failing the
// run. Success is only reported after the output file has been verified
// to exist with non-zero size.
//
// The returned Result always carries the final status. On failure it is
// returned alongside the error with Status set to StatusError and Err
// populated.
//
// Example:
//
//	res, err := recast.Open("report.pdf").Convert("report.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("converted %d pages to %s\n", res.PagesConverted, res.OutputPath)
func (c *Converter) Convert(outputPath string) (*Result, error) {
	result := &Result{Status: StatusError}

	if c.err != nil {
		return fail(result, c.err)
	}
	if outputPath == "" {
		return fail(result, &ConvertError{Kind: ErrOutputWrite, Err: errors.New("no output path specified")})
	}

	ex, err := c.openExtractor()
	if err != nil {
		return fail(result, classifyInputError(err))
	}
	defer ex.Close()

	pageIndices := resolvePages(ex.PageCount(), c.options)
	geometry, styles := c.outputGeometry(ex, pageIndices, result)

	writer := docx.NewWriter(geometry)
	writer.UseStyles(styles)

	for _, fontPath := range c.options.fontPaths {
		if err := writer.RegisterFont(fontPath); err != nil {
			result.Warnings = append(result.Warnings, Warning{
				Message: fmt.Sprintf("font %s: %v", fontPath, err),
			})
		}
	}

	c.processPages(ex, pageIndices, geometry, writer, result)

	if err := writer.Save(outputPath); err != nil {
		return fail(result, &ConvertError{Kind: ErrOutputWrite, Err: err})
	}
	if err := verifyOutput(outputPath); err != nil {
		return fail(result, &ConvertError{Kind: ErrOutputWrite, Err: err})
	}

	result.Status = StatusSuccess
	result.OutputPath = outputPath
	result.PagesConverted = len(pageIndices)
	return result, nil
}

// processPages extracts, reconstructs, and assembles each selected page.
// Extraction failures are isolated to their page: the page is added empty
// so page breaks stay aligned with the source, and the run continues.
func (c *Converter) processPages(ex *extract.Extractor, pageIndices []int, geometry model.PageGeometry, writer *docx.Writer, result *Result) {
	reconstructor := layout.NewReconstructorWithConfig(c.options.layoutConfig())
	fitter := imagefit.NewFitter()
	printableWidth := geometry.PrintableWidth()
	printableHeight := geometry.PrintableHeight()

	for _, pageIndex := range pageIndices {
		page := model.PageContent{Index: pageIndex}
		page.WidthPt, page.HeightPt = ex.PageSize(pageIndex)

		frags, err := ex.PageText(pageIndex)
		if err != nil {
			result.Warnings = append(result.Warnings, Warning{
				Page:    pageIndex + 1,
				Message: fmt.Sprintf("%s: %v", ErrPageExtraction, err),
			})
			result.Stats.PagesProcessed++
			writer.AddPage(page)
			continue
		}

		result.Stats.TextBlocksExtracted += len(frags)

		recon := reconstructor.Reconstruct(frags)
		page.Paragraphs = recon.Paragraphs
		result.Stats.SpacingFixesApplied += recon.SpacingFixes

		images, err := ex.PageImages(pageIndex)
		if err != nil {
			result.Warnings = append(result.Warnings, Warning{
				Page:    pageIndex + 1,
				Message: fmt.Sprintf("image extraction: %v", err),
			})
			images = nil
		}
		for i, raw := range images {
			if raw.WidthPx <= 0 || raw.HeightPx <= 0 {
				result.Warnings = append(result.Warnings, Warning{
					Page:    pageIndex + 1,
					Message: fmt.Sprintf("%s: image %d placed at fallback size", ErrImageDecode, i+1),
				})
			}
			w, h := fitter.Fit(raw.WidthPx, raw.HeightPx, printableWidth, printableHeight)
			page.Images = append(page.Images, model.ImagePlacement{
				Data:           raw.Data,
				NativeWidthPx:  raw.WidthPx,
				NativeHeightPx: raw.HeightPx,
				TargetWidth:    w,
				TargetHeight:   h,
				Format:         raw.Format,
				PageIndex:      pageIndex,
			})
		}
		result.Stats.ImagesExtracted += len(images)

		result.Stats.PagesProcessed++
		writer.AddPage(page)
	}
}

// outputGeometry decides the output page setup. A configured template
// wins; a template that cannot be loaded, or whose margins leave no
// printable area, records a warning and falls back. Without a usable
// template the first converted page's dimensions are kept with one-inch
// margins; an empty page selection falls back to US Letter.
func (c *Converter) outputGeometry(ex *extract.Extractor, pageIndices []int, result *Result) (model.PageGeometry, []byte) {
	if c.options.templatePath != "" {
		tpl, err := docx.LoadTemplate(c.options.templatePath)
		if err == nil {
			err = tpl.Geometry.Validate()
			if err == nil {
				return tpl.Geometry, tpl.Styles
			}
		}
		result.Warnings = append(result.Warnings, Warning{
			Message: fmt.Sprintf("template %s: %v", c.options.templatePath, err),
		})
	}

	if len(pageIndices) > 0 {
		widthPt, heightPt := ex.PageSize(pageIndices[0])
		return model.GeometryFromPageSize(widthPt, heightPt), nil
	}
	return model.DefaultGeometry(), nil
}

// openExtractor opens whichever source the Converter was built from.
func (c *Converter) openExtractor() (*extract.Extractor, error) {
	if c.path != "" {
		return extract.Open(c.path, c.options.password)
	}
	return extract.FromBytes(c.data, c.options.password)
}

// resolvePages selects the 0-indexed pages to convert. An explicit page
// list takes precedence over the range; its out-of-range entries are
// silently dropped and duplicates collapse, ascending. Otherwise the
// range is clamped to the document's bounds.
func resolvePages(total int, o convertOptions) []int {
	if len(o.pages) > 0 {
		seen := make(map[int]bool)
		var indices []int
		for _, p := range o.pages {
			if p < 0 || p >= total {
				continue
			}
			if !seen[p] {
				seen[p] = true
				indices = append(indices, p)
			}
		}
		sort.Ints(indices)
		return indices
	}

	start := o.startPage
	if start < 0 {
		start = 0
	}
	end := o.endPage
	if end < 0 || end > total {
		end = total
	}

	var indices []int
	for i := start; i < end; i++ {
		indices = append(indices, i)
	}
	return indices
}

// classifyInputError maps source open failures onto the error taxonomy.
// Anything that is not an encryption problem counts as an unreadable
// input, missing files included.
func classifyInputError(err error) error {
	switch {
	case errors.Is(err, extract.ErrEncrypted):
		return &ConvertError{Kind: ErrAuthenticationRequired, Err: err}
	case errors.Is(err, extract.ErrWrongPassword):
		return &ConvertError{Kind: ErrAuthenticationFailed, Err: err}
	}
	return &ConvertError{Kind: ErrInputNotFound, Err: err}
}

// verifyOutput confirms the saved document exists and is non-empty.
func verifyOutput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("verifying output: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("output %s is empty", path)
	}
	return nil
}

// fail stamps the result with the error and returns both.
func fail(result *Result, err error) (*Result, error) {
	result.Status = StatusError
	result.Err = err
	return result, err
}
