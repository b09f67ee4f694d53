package extract

import (
	"errors"
	"fmt"
	"os"
	"strings"

	lpdf "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/tsawler/recast/model"
)

// Sentinel errors for encrypted inputs. Callers distinguish a missing
// password from a wrong one with errors.Is.
var (
	ErrEncrypted     = errors.New("pdf is encrypted: password required")
	ErrWrongPassword = errors.New("pdf password is incorrect")
)

// Default page dimensions, in points, when a page carries no media box.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// Extractor reads one PDF document. It is not safe for concurrent use.
type Extractor struct {
	path     string
	ownsPath bool // path is a scratch file to remove on Close
	file     *os.File
	reader   *lpdf.Reader
	conf     *pdfmodel.Configuration
	pages    int
}

// Open opens the PDF at path. password may be empty; for encrypted files a
// missing password yields ErrEncrypted and a wrong one ErrWrongPassword.
// A missing file satisfies errors.Is(err, fs.ErrNotExist).
func Open(path, password string) (*Extractor, error) {
	return open(path, password, false)
}

// FromBytes opens an in-memory PDF. The data is staged to a scratch file
// for the duration of the Extractor so both backends can seek it; Close
// removes the file.
func FromBytes(data []byte, password string) (*Extractor, error) {
	tmp, err := os.CreateTemp("", "recast-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("stage pdf: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("stage pdf: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("stage pdf: %w", err)
	}

	ex, err := open(tmp.Name(), password, true)
	if err != nil {
		os.Remove(tmp.Name())
		return nil, err
	}
	return ex, nil
}

func open(path, password string, ownsPath bool) (*Extractor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	conf := pdfmodel.NewDefaultConfiguration()
	if password != "" {
		conf.UserPW = password
		conf.OwnerPW = password
	}

	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		f.Close()
		return nil, classifyOpenError(err, password)
	}
	pages := ctx.PageCount

	// Rewind for the text backend, which shares the same handle.
	if _, err := f.Seek(0, 0); err != nil {
		f.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	reader, err := lpdf.NewReaderEncrypted(f, st.Size(), func() string { return password })
	if err != nil {
		f.Close()
		return nil, classifyOpenError(err, password)
	}

	return &Extractor{
		path:     path,
		ownsPath: ownsPath,
		file:     f,
		reader:   reader,
		conf:     conf,
		pages:    pages,
	}, nil
}

// classifyOpenError maps backend open failures onto the encryption
// sentinels where the message indicates a password problem.
func classifyOpenError(err error, password string) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "password") || strings.Contains(msg, "encrypt") {
		if password == "" {
			return fmt.Errorf("%w: %v", ErrEncrypted, err)
		}
		return fmt.Errorf("%w: %v", ErrWrongPassword, err)
	}
	return fmt.Errorf("read pdf: %w", err)
}

// Close releases the underlying file and deletes the scratch copy if the
// extractor owns one.
func (e *Extractor) Close() error {
	if e.file == nil {
		return nil
	}
	err := e.file.Close()
	e.file = nil
	if e.ownsPath {
		os.Remove(e.path)
	}
	return err
}

// PageCount returns the number of pages in the document.
func (e *Extractor) PageCount() int {
	return e.pages
}

// PageSize returns a page's media box dimensions in points, swapped when
// the page is rotated a quarter turn. Missing boxes default to US Letter.
// pageIndex is 0-based.
func (e *Extractor) PageSize(pageIndex int) (widthPt, heightPt float64) {
	widthPt, heightPt = defaultPageWidth, defaultPageHeight

	page := e.reader.Page(pageIndex + 1)
	if page.V.IsNull() {
		return widthPt, heightPt
	}

	mediaBox := inheritedAttr(page, "MediaBox")
	if mediaBox.Kind() == lpdf.Array && mediaBox.Len() == 4 {
		x0 := mediaBox.Index(0).Float64()
		y0 := mediaBox.Index(1).Float64()
		x1 := mediaBox.Index(2).Float64()
		y1 := mediaBox.Index(3).Float64()
		if x1-x0 > 0 && y1-y0 > 0 {
			widthPt, heightPt = x1-x0, y1-y0
		}
	}

	if rotated(inheritedAttr(page, "Rotate")) {
		widthPt, heightPt = heightPt, widthPt
	}
	return widthPt, heightPt
}

// inheritedAttr resolves a page attribute, walking the Parent chain for
// entries such as MediaBox and Rotate that the page tree lets ancestors
// supply. The depth cap guards against cyclic Parent references.
func inheritedAttr(page lpdf.Page, key string) lpdf.Value {
	v := page.V
	for depth := 0; depth < 64 && !v.IsNull(); depth++ {
		if attr := v.Key(key); !attr.IsNull() {
			return attr
		}
		v = v.Key("Parent")
	}
	return lpdf.Value{}
}

// rotated reports whether a Rotate entry is an odd quarter turn.
func rotated(rotate lpdf.Value) bool {
	if rotate.Kind() != lpdf.Integer {
		return false
	}
	deg := rotate.Int64() % 360
	if deg < 0 {
		deg += 360
	}
	return deg == 90 || deg == 270
}

// PageData is one page's extracted content.
type PageData struct {
	Fragments []model.TextFragment
	Images    []model.RawImage
	WidthPt   float64
	HeightPt  float64
}

// PageText returns the page's text as word-level fragments in content
// stream order. A blank or image-only page returns an empty slice and no
// error. pageIndex is 0-based.
func (e *Extractor) PageText(pageIndex int) (frags []model.TextFragment, err error) {
	// The content stream parser panics on some malformed streams; a bad
	// page must not take down the run.
	defer func() {
		if r := recover(); r != nil {
			frags = nil
			err = fmt.Errorf("page %d: text extraction: %v", pageIndex+1, r)
		}
	}()

	page := e.reader.Page(pageIndex + 1)
	if page.V.IsNull() {
		return nil, fmt.Errorf("page %d: no page object", pageIndex+1)
	}

	_, heightPt := e.PageSize(pageIndex)
	content := page.Content()
	return buildFragments(content.Text, heightPt), nil
}

// ExtractPage returns the page's fragments, images, and dimensions.
// Text extraction failures are returned as errors; image extraction is
// best effort and contributes zero images on failure.
func (e *Extractor) ExtractPage(pageIndex int) (*PageData, error) {
	widthPt, heightPt := e.PageSize(pageIndex)

	frags, err := e.PageText(pageIndex)
	if err != nil {
		return nil, err
	}

	images, err := e.PageImages(pageIndex)
	if err != nil {
		images = nil
	}

	return &PageData{
		Fragments: frags,
		Images:    images,
		WidthPt:   widthPt,
		HeightPt:  heightPt,
	}, nil
}
