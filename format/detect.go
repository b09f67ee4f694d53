// Package format provides file format detection for the recast library.
package format

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a file format the converter deals with.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
	// DOCX indicates a Microsoft Word (.docx) document.
	DOCX
	// DOTX indicates a Microsoft Word template (.dotx).
	DOTX
	// TTF indicates a TrueType font file.
	TTF
	// OTF indicates an OpenType font file.
	OTF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case DOCX:
		return "DOCX"
	case DOTX:
		return "DOTX"
	case TTF:
		return "TTF"
	case OTF:
		return "OTF"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PDF:
		return ".pdf"
	case DOCX:
		return ".docx"
	case DOTX:
		return ".dotx"
	case TTF:
		return ".ttf"
	case OTF:
		return ".otf"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return PDF
	case ".docx":
		return DOCX
	case ".dotx":
		return DOTX
	case ".ttf":
		return TTF
	case ".otf":
		return OTF
	default:
		return Unknown
	}
}

// DetectFromMagic checks file magic bytes to determine format.
// This provides more reliable detection than extension-based detection.
// Returns Unknown if the format cannot be determined from magic bytes alone.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	// PDF magic: %PDF
	if bytes.HasPrefix(data, []byte("%PDF")) {
		return PDF
	}

	// ZIP magic (DOCX and DOTX are ZIP archives): PK\x03\x04
	if data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
		// Could be DOCX, DOTX, or any other ZIP-based format.
		// Return Unknown here - caller should use DetectFromReader for ZIP files.
		return Unknown
	}

	// TrueType: version 1.0 sfnt, or the legacy Mac "true" tag
	if bytes.HasPrefix(data, []byte{0x00, 0x01, 0x00, 0x00}) || bytes.HasPrefix(data, []byte("true")) {
		return TTF
	}

	// OpenType with CFF outlines
	if bytes.HasPrefix(data, []byte("OTTO")) {
		return OTF
	}

	return Unknown
}

// DetectFromReader inspects the content to determine format.
// This is more reliable than extension-based detection and can
// distinguish between ZIP-based formats (DOCX, DOTX).
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 8)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	// ZIP archives need a content probe to tell document from template.
	if len(magic) >= 4 && magic[0] == 0x50 && magic[1] == 0x4B && magic[2] == 0x03 && magic[3] == 0x04 {
		return detectZIPFormat(r, size)
	}

	return DetectFromMagic(magic), nil
}

// detectZIPFormat inspects a ZIP archive to determine whether it's a
// Word document, a Word template, or something else.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	// [Content_Types].xml names the main part's content type, which is
	// the only place a document and a template differ.
	for _, f := range zr.File {
		if f.Name != "[Content_Types].xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			break
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			break
		}
		types := string(data)
		if strings.Contains(types, "wordprocessingml.template.main") {
			return DOTX, nil
		}
		if strings.Contains(types, "wordprocessingml.document.main") {
			return DOCX, nil
		}
		break
	}

	// No usable content types part. A word/ directory still marks a
	// WordprocessingML package.
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "word/") {
			return DOCX, nil
		}
	}

	return Unknown, nil
}
