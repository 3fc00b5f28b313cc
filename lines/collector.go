package lines

import (
	"github.com/tsawler/pdfoutline/geometry"
)

// CollectorConfig holds configuration for line collection
type CollectorConfig struct {
	// Merge controls how spans are joined
	Merge MergeConfig `yaml:"merge"`

	// BoldMarkers are font-name substrings that mark a line as bold
	// Default: "bold"
	BoldMarkers []string `yaml:"bold_markers"`
}

// DefaultCollectorConfig returns sensible default configuration
func DefaultCollectorConfig() CollectorConfig {
	return CollectorConfig{
		Merge:       DefaultMergeConfig(),
		BoldMarkers: []string{"bold"},
	}
}

// SkipFunc decides whether a decoded line is dropped before merging
type SkipFunc func(page geometry.Page, line geometry.Line) bool

// Collector builds logical lines from page geometry
type Collector struct {
	config CollectorConfig
	skip   SkipFunc
}

// NewCollector creates a collector with default configuration
func NewCollector() *Collector {
	return &Collector{config: DefaultCollectorConfig()}
}

// NewCollectorWithConfig creates a collector with custom configuration
func NewCollectorWithConfig(config CollectorConfig) *Collector {
	return &Collector{config: config}
}

// WithSkip returns a copy of the collector that drops lines for which skip
// returns true
func (c *Collector) WithSkip(skip SkipFunc) *Collector {
	return &Collector{config: c.config, skip: skip}
}

// Collect walks every page, block and line of doc in order
func (c *Collector) Collect(doc *geometry.Document) *Index {
	idx := NewIndex()
	if doc == nil {
		return idx
	}

	for _, page := range doc.Pages {
		for _, block := range page.Blocks {
			for _, gl := range block.Lines {
				if c.skip != nil && c.skip(page, gl) {
					continue
				}
				if l, ok := c.line(page.Index, gl); ok {
					idx.Add(l)
				}
			}
		}
	}

	return idx
}

// line converts one decoded line, returning false when it has no text
func (c *Collector) line(page int, gl geometry.Line) (Line, bool) {
	if len(gl.Spans) == 0 {
		return Line{}, false
	}

	text := MergeSpansWithConfig(gl.Spans, c.config.Merge)
	if text == "" {
		return Line{}, false
	}

	l := Line{
		Text:      text,
		Font:      gl.Spans[0].Font,
		Y:         gl.BBox.Y0,
		X:         gl.BBox.X0,
		Page:      page,
		SpanCount: len(gl.Spans),
	}
	for _, s := range gl.Spans {
		if IsBoldFont(s.Font, c.config.BoldMarkers) {
			l.Bold = true
		}
		if s.IsBlank() {
			continue
		}
		if s.Size > l.Size {
			l.Size = s.Size
		}
	}

	return l, true
}
