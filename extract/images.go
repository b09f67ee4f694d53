package extract

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"

	// Decoders registered for native-dimension probing.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/tsawler/recast/model"
)

// PageImages extracts the page's embedded images with their native pixel
// dimensions. Images whose bytes cannot be decoded are still returned,
// with zero dimensions and format "unknown"; sizing substitutes a fallback
// downstream. pageIndex is 0-based.
func (e *Extractor) PageImages(pageIndex int) ([]model.RawImage, error) {
	outDir, err := os.MkdirTemp("", "recast-img-")
	if err != nil {
		return nil, fmt.Errorf("page %d: image scratch dir: %w", pageIndex+1, err)
	}
	defer os.RemoveAll(outDir)

	selected := []string{strconv.Itoa(pageIndex + 1)}
	if err := api.ExtractImagesFile(e.path, outDir, selected, e.conf); err != nil {
		return nil, fmt.Errorf("page %d: extract images: %w", pageIndex+1, err)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		return nil, fmt.Errorf("page %d: read extracted images: %w", pageIndex+1, err)
	}

	var images []model.RawImage
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(outDir, entry.Name()))
		if err != nil || len(data) == 0 {
			continue
		}
		images = append(images, probeImage(data))
	}
	return images, nil
}

// probeImage fills in native dimensions and format from the encoded bytes.
func probeImage(data []byte) model.RawImage {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return model.RawImage{Data: data, Format: "unknown"}
	}
	return model.RawImage{
		Data:     data,
		WidthPx:  cfg.Width,
		HeightPx: cfg.Height,
		Format:   format,
	}
}
