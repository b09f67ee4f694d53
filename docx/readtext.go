package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"strings"
)

// ReadText opens a produced document and returns its plain text, one line
// per paragraph. Paragraphs without text, such as page breaks, are
// skipped.
func ReadText(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("opening document: %w", err)
	}
	defer zr.Close()

	docData, err := zipFileContent(&zr.Reader, "word/document.xml")
	if err != nil {
		return "", fmt.Errorf("reading document: %w", err)
	}

	var doc templateDocumentXML
	if err := xml.Unmarshal(docData, &doc); err != nil {
		return "", fmt.Errorf("parsing document: %w", err)
	}

	var lines []string
	for _, p := range doc.Body.Paragraphs {
		var sb strings.Builder
		for _, r := range p.Runs {
			for _, t := range r.Text {
				sb.WriteString(t)
			}
		}
		if line := sb.String(); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}
