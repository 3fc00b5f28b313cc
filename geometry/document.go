package geometry

import "strings"

// Span is a run of text drawn with a single font and size
type Span struct {
	Text string
	Font string
	Size float64
	BBox BBox
}

// IsBlank reports whether the span carries no visible text
func (s Span) IsBlank() bool {
	return strings.TrimSpace(s.Text) == ""
}

// Line is one decoded text line: its spans in drawing order and the box
// enclosing them
type Line struct {
	Spans []Span
	BBox  BBox
}

// NewLine builds a line whose box is the union of its span boxes
func NewLine(spans ...Span) Line {
	var box BBox
	for _, s := range spans {
		box = box.Union(s.BBox)
	}
	return Line{Spans: spans, BBox: box}
}

// Block is a group of vertically adjacent lines
type Block struct {
	Lines []Line
	BBox  BBox
}

// NewBlock builds a block whose box is the union of its line boxes
func NewBlock(lines ...Line) Block {
	var box BBox
	for _, l := range lines {
		box = box.Union(l.BBox)
	}
	return Block{Lines: lines, BBox: box}
}

// Page is a single decoded page
type Page struct {
	// Index is the 0-based page number
	Index int

	Width  float64
	Height float64

	Blocks []Block
}

// LineCount returns the number of decoded lines on the page
func (p Page) LineCount() int {
	n := 0
	for _, b := range p.Blocks {
		n += len(b.Lines)
	}
	return n
}

// Document is the decoded geometry of one file
type Document struct {
	// Path is the file the geometry was decoded from, if any
	Path string

	Pages []Page
}

// PageCount returns the number of pages
func (d *Document) PageCount() int {
	if d == nil {
		return 0
	}
	return len(d.Pages)
}

// Source decodes a file into page geometry
type Source interface {
	Load(path string) (*Document, error)
}

// SourceFunc adapts a function to the Source interface
type SourceFunc func(path string) (*Document, error)

// Load calls f(path)
func (f SourceFunc) Load(path string) (*Document, error) {
	return f(path)
}
