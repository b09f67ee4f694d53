// Package recast converts PDF documents into Word-compatible DOCX files,
// rebuilding paragraphs from positioned text fragments and carrying
// embedded images across at a size that fits the output page.
//
// Basic usage:
//
//	res, err := recast.Open("report.pdf").Convert("report.docx")
//	if err != nil {
//	    // handle error
//	}
//	if len(res.Warnings) > 0 {
//	    log.Println("Warnings:", recast.FormatWarnings(res.Warnings))
//	}
//
// With options:
//
//	res, err := recast.Open("report.pdf").
//	    WithPassword("secret").
//	    WithPages(0, 2, 3).
//	    WithTemplate("letterhead.dotx").
//	    WithFonts("brand.ttf").
//	    Convert("report.docx")
//
// For lower-level access the extract, layout, and docx packages are also
// available.
package recast

import (
	"fmt"
	"io"

	"github.com/tsawler/recast/layout"
)

// Converter converts one PDF document. Each configuration method returns
// a new Converter instance, making it safe to share a configured base
// across goroutines and allowing method chaining.
type Converter struct {
	// Source (exactly one is set)
	path string
	data []byte

	// Configuration
	options convertOptions

	// Accumulated error (fail-fast); surfaces at Convert.
	err error
}

// Open prepares a conversion of the PDF file at path. The file is not
// touched until Convert runs.
//
// Example:
//
//	res, err := recast.Open("document.pdf").Convert("document.docx")
func Open(path string) *Converter {
	return &Converter{
		path:    path,
		options: defaultOptions(),
	}
}

// FromBytes prepares a conversion of an in-memory PDF. The data is not
// copied; the caller must not modify it until Convert returns.
//
// Example:
//
//	res, err := recast.FromBytes(pdfData).Convert("document.docx")
func FromBytes(data []byte) *Converter {
	return &Converter{
		data:    data,
		options: defaultOptions(),
	}
}

// FromReader prepares a conversion of a PDF read from r. The reader is
// drained immediately; a read error is held and returned by Convert.
//
// Example:
//
//	res, err := recast.FromReader(resp.Body).Convert("document.docx")
func FromReader(r io.Reader) *Converter {
	data, err := io.ReadAll(r)
	if err != nil {
		return &Converter{
			options: defaultOptions(),
			err:     fmt.Errorf("reading input: %w", err),
		}
	}
	return &Converter{
		data:    data,
		options: defaultOptions(),
	}
}

// clone creates a shallow copy of the Converter with a deep copy of
// options. This ensures immutability: each chain method returns a new
// instance.
func (c *Converter) clone() *Converter {
	return &Converter{
		path:    c.path,
		data:    c.data,
		options: c.options.clone(),
		err:     c.err,
	}
}

// WithPassword supplies the password for an encrypted input.
//
// Example:
//
//	res, err := recast.Open("locked.pdf").WithPassword("secret").Convert("out.docx")
func (c *Converter) WithPassword(password string) *Converter {
	newConv := c.clone()
	newConv.options.password = password
	return newConv
}

// WithPages selects specific pages to convert (0-indexed). Multiple calls
// are cumulative. An explicit page list takes precedence over WithPageRange,
// and out-of-range indices are silently dropped.
//
// Example:
//
//	res, err := recast.Open("doc.pdf").WithPages(0, 4, 7).Convert("out.docx")
func (c *Converter) WithPages(pages ...int) *Converter {
	newConv := c.clone()
	newConv.options.pages = append(newConv.options.pages, pages...)
	return newConv
}

// WithPageRange selects a contiguous range of pages to convert: start is
// 0-indexed and inclusive, end is exclusive. An end of -1 means to the end
// of the document. The range is clamped to the document's bounds.
//
// Example:
//
//	res, err := recast.Open("doc.pdf").WithPageRange(2, 5).Convert("out.docx")
func (c *Converter) WithPageRange(start, end int) *Converter {
	newConv := c.clone()
	newConv.options.startPage = start
	newConv.options.endPage = end
	return newConv
}

// WithTemplate derives the output's page size, margins, and styles from an
// existing DOCX or DOTX file. If the template cannot be loaded the run
// falls back to the source page geometry and records a warning.
//
// Example:
//
//	res, err := recast.Open("doc.pdf").WithTemplate("letterhead.dotx").Convert("out.docx")
func (c *Converter) WithTemplate(path string) *Converter {
	newConv := c.clone()
	newConv.options.templatePath = path
	return newConv
}

// WithFonts embeds the given TTF or OTF font files in the output and maps
// matching source font names onto them. Multiple calls are cumulative. A
// font that cannot be read records a warning and is skipped.
//
// Example:
//
//	res, err := recast.Open("doc.pdf").WithFonts("brand.ttf", "brand-mono.otf").Convert("out.docx")
func (c *Converter) WithFonts(paths ...string) *Converter {
	newConv := c.clone()
	newConv.options.fontPaths = append(newConv.options.fontPaths, paths...)
	return newConv
}

// WithYThreshold overrides the vertical clustering distance, in points,
// used when grouping fragments into paragraphs. Non-positive values keep
// the default.
//
// Example:
//
//	res, err := recast.Open("dense.pdf").WithYThreshold(3).Convert("out.docx")
func (c *Converter) WithYThreshold(threshold float64) *Converter {
	newConv := c.clone()
	newConv.options.yThreshold = threshold
	return newConv
}

// WithClustering selects the cluster membership comparison used when
// grouping fragments into paragraphs.
//
// Example:
//
//	res, err := recast.Open("doc.pdf").
//	    WithClustering(layout.ClusterByPrevious).
//	    Convert("out.docx")
func (c *Converter) WithClustering(strategy layout.ClusteringStrategy) *Converter {
	newConv := c.clone()
	newConv.options.clustering = strategy
	return newConv
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	res := recast.Must(recast.Open("document.pdf").Convert("document.docx"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult is a helper that wraps a call to Convert and panics if the
// error is non-nil. It is intended for use in scripts or tests where
// error handling would be cumbersome.
//
// Example:
//
//	res := recast.MustResult(recast.Open("document.pdf").Convert("document.docx"))
func MustResult(res *Result, err error) *Result {
	if err != nil {
		panic(err)
	}
	return res
}
