package pdfsource

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/tsawler/pdfoutline/geometry"
)

// Config holds the grouping tolerances used when assembling glyph runs
type Config struct {
	// WordGapRatio is the horizontal gap, as a fraction of the font size,
	// above which a space is inserted between consecutive glyphs of a span.
	// Generators that position words with kerning instead of space glyphs
	// rely on it.
	// Default: 0.15
	WordGapRatio float64 `yaml:"word_gap_ratio"`

	// ColumnGapRatio is the horizontal gap, as a fraction of the font size,
	// above which consecutive glyphs start a new span
	// Default: 1.0
	ColumnGapRatio float64 `yaml:"column_gap_ratio"`

	// LineTolerance is the baseline difference, as a fraction of the font
	// size, within which glyphs belong to the same line
	// Default: 0.5
	LineTolerance float64 `yaml:"line_tolerance"`

	// BlockGapRatio is the vertical gap, as a fraction of the previous line
	// height, above which a new block starts
	// Default: 1.5
	BlockGapRatio float64 `yaml:"block_gap_ratio"`

	// DefaultWidth and DefaultHeight are used when a page declares no size
	// Default: 612 x 792 (US Letter)
	DefaultWidth  float64 `yaml:"default_width"`
	DefaultHeight float64 `yaml:"default_height"`
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		WordGapRatio:   0.15,
		ColumnGapRatio: 1.0,
		LineTolerance:  0.5,
		BlockGapRatio:  1.5,
		DefaultWidth:   612,
		DefaultHeight:  792,
	}
}

// Reader decodes PDF files into page geometry
type Reader struct {
	config Config
}

var _ geometry.Source = (*Reader)(nil)

// New creates a reader with default configuration
func New() *Reader {
	return &Reader{config: DefaultConfig()}
}

// NewWithConfig creates a reader with custom configuration
func NewWithConfig(config Config) *Reader {
	return &Reader{config: config}
}

// Open decodes the PDF at path with default configuration
func Open(path string) (*geometry.Document, error) {
	return New().Load(path)
}

// Load decodes the PDF at path. Panics raised by the decoder on malformed
// content are returned as errors.
func (r *Reader) Load(path string) (doc *geometry.Document, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			doc = nil
			err = fmt.Errorf("failed to decode %s: %v", path, rec)
		}
	}()

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	f, pr, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	// pdfcpu is stricter than the glyph decoder; when it cannot read the
	// file the per-page media boxes are used instead.
	dims, dimErr := api.PageDimsFile(path)
	if dimErr != nil {
		dims = nil
	}

	doc = &geometry.Document{Path: path}
	numPages := pr.NumPage()
	for i := 1; i <= numPages; i++ {
		p := pr.Page(i)
		width, height := r.pageSize(p, dims, i-1)
		page := geometry.Page{Index: i - 1, Width: width, Height: height}

		if !p.V.IsNull() {
			texts, err := pageTexts(p)
			if err != nil {
				return nil, fmt.Errorf("page %d: %w", i, err)
			}
			page.Blocks = r.buildBlocks(texts, height)
		}
		doc.Pages = append(doc.Pages, page)
	}

	return doc, nil
}

// pageTexts reads the positioned glyph runs of a page
func pageTexts(p pdf.Page) (texts []pdf.Text, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("failed to read content stream: %v", rec)
		}
	}()
	return p.Content().Text, nil
}

// pageSize resolves the page dimensions
func (r *Reader) pageSize(p pdf.Page, dims []types.Dim, index int) (float64, float64) {
	if index < len(dims) && dims[index].Height > 0 {
		return dims[index].Width, dims[index].Height
	}

	if !p.V.IsNull() {
		if w, h, ok := mediaBoxSize(p.V.Key("MediaBox")); ok {
			return w, h
		}
	}

	return r.config.DefaultWidth, r.config.DefaultHeight
}

// mediaBoxSize reads width and height from a /MediaBox array
func mediaBoxSize(box pdf.Value) (float64, float64, bool) {
	if box.Kind() != pdf.Array || box.Len() != 4 {
		return 0, 0, false
	}

	llx, lly := box.Index(0).Float64(), box.Index(1).Float64()
	urx, ury := box.Index(2).Float64(), box.Index(3).Float64()

	w, h := urx-llx, ury-lly
	if w < 0 {
		w = -w
	}
	if h < 0 {
		h = -h
	}
	if w == 0 || h == 0 {
		return 0, 0, false
	}
	return w, h, true
}
