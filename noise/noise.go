package noise

import (
	"strings"

	"github.com/tsawler/pdfoutline/geometry"
	"github.com/tsawler/pdfoutline/internal/textset"
	"github.com/tsawler/pdfoutline/lines"
)

// Config holds configuration for the noise filters
type Config struct {
	// TableTerms are span texts (lowercase) that mark a line as a table row
	// Default: "date", "version", "remarks"
	TableTerms []string `yaml:"table_terms"`

	// TableGap is the average distance between consecutive span starts above
	// which a multi-span line is treated as a table row
	// Default: 30 points
	TableGap float64 `yaml:"table_gap"`

	// TableSizeSpread is the size range below which spans count as one row
	// Default: 1.5 points
	TableSizeSpread float64 `yaml:"table_size_spread"`

	// MinRepeatPages is the number of distinct pages a text must appear on
	// to be treated as a running header or footer
	// Default: 3
	MinRepeatPages int `yaml:"min_repeat_pages"`

	// IndexKeywords mark a page as a table of contents or index (lowercase)
	// Default: "table of contents", "index"
	IndexKeywords []string `yaml:"index_keywords"`

	// MarginRatio is the fraction of the page height at the top and bottom
	// treated as margin
	// Default: 0.05
	MarginRatio float64 `yaml:"margin_ratio"`
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		TableTerms:      []string{"date", "version", "remarks"},
		TableGap:        30,
		TableSizeSpread: 1.5,
		MinRepeatPages:  3,
		IndexKeywords:   []string{"table of contents", "index"},
		MarginRatio:     0.05,
	}
}

// IsTableRow reports whether a decoded line looks like a table row: it has
// at least two spans and either one of its span texts is a table term or
// its spans are widely and evenly spaced at a uniform size.
func IsTableRow(line geometry.Line, config Config) bool {
	spans := line.Spans
	if len(spans) < 2 {
		return false
	}

	texts := make([]string, len(spans))
	for i, s := range spans {
		texts[i] = strings.ToLower(strings.TrimSpace(s.Text))
	}
	if textset.New(config.TableTerms...).Intersects(texts) {
		return true
	}

	var spacing float64
	for i := 1; i < len(spans); i++ {
		spacing += spans[i].BBox.X0 - spans[i-1].BBox.X0
	}
	avgSpacing := spacing / float64(len(spans)-1)

	minSize, maxSize := spans[0].Size, spans[0].Size
	for _, s := range spans[1:] {
		if s.Size < minSize {
			minSize = s.Size
		}
		if s.Size > maxSize {
			maxSize = s.Size
		}
	}

	return avgSpacing > config.TableGap && maxSize-minSize < config.TableSizeSpread
}

// RepeatedLines returns the trimmed texts that appear on at least minPages
// distinct pages
func RepeatedLines(idx *lines.Index, minPages int) textset.Set {
	pagesByText := make(map[string]map[int]bool)
	for _, page := range idx.Pages() {
		for _, l := range idx.Lines(page) {
			text := strings.TrimSpace(l.Text)
			if text == "" {
				continue
			}
			if pagesByText[text] == nil {
				pagesByText[text] = make(map[int]bool)
			}
			pagesByText[text][page] = true
		}
	}

	repeated := textset.New()
	for text, pages := range pagesByText {
		if len(pages) >= minPages {
			repeated.Add(text)
		}
	}
	return repeated
}

// IsIndexPage reports whether any line's lowercase text contains one of
// keywords
func IsIndexPage(pageLines []lines.Line, keywords []string) bool {
	kw := textset.New(keywords...)
	for _, l := range pageLines {
		if kw.ContainsAnyIn(strings.ToLower(l.Text)) {
			return true
		}
	}
	return false
}

// IndexPages returns the pages of idx that look like a table of contents
// or index
func IndexPages(idx *lines.Index, keywords []string) map[int]bool {
	pages := make(map[int]bool)
	for _, page := range idx.Pages() {
		if IsIndexPage(idx.Lines(page), keywords) {
			pages[page] = true
		}
	}
	return pages
}

// InMargin reports whether a vertical position lies in the top or bottom
// ratio of the page height
func InMargin(y, pageHeight, ratio float64) bool {
	return y < ratio*pageHeight || y > (1-ratio)*pageHeight
}

// StructuredSkip returns a line filter dropping table rows and margin lines,
// for use with [lines.Collector.WithSkip]
func StructuredSkip(config Config) lines.SkipFunc {
	return func(page geometry.Page, line geometry.Line) bool {
		if IsTableRow(line, config) {
			return true
		}
		return InMargin(line.BBox.Y0, page.Height, config.MarginRatio)
	}
}
