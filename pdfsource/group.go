package pdfsource

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/pdfoutline/geometry"
)

// Glyph boxes are derived from the baseline with these fractions of the
// font size, approximating typical ascender and descender heights.
const (
	ascentRatio  = 0.8
	descentRatio = 0.2
)

// spanBuilder accumulates consecutive glyphs into one span
type spanBuilder struct {
	font     string
	size     float64
	baseline float64
	x0, x1   float64
	text     strings.Builder
}

// space separates the next glyph from the text so far unless either side
// already carries whitespace
func (b *spanBuilder) space(next string) {
	text := b.text.String()
	if text == "" || unicode.IsSpace(lastRune(text)) || strings.TrimLeftFunc(next, unicode.IsSpace) != next {
		return
	}
	b.text.WriteByte(' ')
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}

func (b *spanBuilder) span(pageHeight float64) geometry.Span {
	return geometry.Span{
		Text: norm.NFC.String(b.text.String()),
		Font: b.font,
		Size: b.size,
		BBox: geometry.BBox{
			X0: b.x0,
			Y0: pageHeight - (b.baseline + b.size*ascentRatio),
			X1: b.x1,
			Y1: pageHeight - (b.baseline - b.size*descentRatio),
		},
	}
}

// buildBlocks groups glyph runs, in content-stream order, into blocks of
// lines of spans
func (r *Reader) buildBlocks(texts []pdf.Text, pageHeight float64) []geometry.Block {
	lines := r.buildLines(texts, pageHeight)
	if len(lines) == 0 {
		return nil
	}

	var blocks []geometry.Block
	current := []geometry.Line{lines[0]}
	for _, line := range lines[1:] {
		prev := current[len(current)-1]
		if r.startsNewBlock(prev, line) {
			blocks = append(blocks, geometry.NewBlock(current...))
			current = nil
		}
		current = append(current, line)
	}
	blocks = append(blocks, geometry.NewBlock(current...))

	return blocks
}

// startsNewBlock reports whether next is too far from prev to share a block
func (r *Reader) startsNewBlock(prev, next geometry.Line) bool {
	height := prev.BBox.Height()
	if height <= 0 {
		return true
	}
	gap := next.BBox.Y0 - prev.BBox.Y1
	return gap > height*r.config.BlockGapRatio || next.BBox.Y1 < prev.BBox.Y0
}

// buildLines groups glyph runs into lines of spans. A span holds the glyphs
// of one font and size; a word-sized gap inside it becomes a space and a
// column-sized gap ends it.
func (r *Reader) buildLines(texts []pdf.Text, pageHeight float64) []geometry.Line {
	var (
		lines []geometry.Line
		spans []geometry.Span
		cur   *spanBuilder
	)

	flushSpan := func() {
		if cur != nil && cur.text.Len() > 0 {
			spans = append(spans, cur.span(pageHeight))
		}
		cur = nil
	}
	flushLine := func() {
		flushSpan()
		if len(spans) > 0 {
			lines = append(lines, geometry.NewLine(spans...))
		}
		spans = nil
	}

	for _, t := range texts {
		if t.S == "" || strings.Trim(t.S, "\r\n") == "" {
			continue
		}
		size := t.FontSize
		if size <= 0 {
			size = 1
		}

		if cur != nil {
			gap := t.X - cur.x1
			switch {
			case !r.sameLine(cur, t, size):
				flushLine()
			case t.Font != cur.font || t.FontSize != cur.size || gap > size*r.config.ColumnGapRatio:
				flushSpan()
			case gap > size*r.config.WordGapRatio:
				cur.space(t.S)
			}
		}

		if cur == nil {
			cur = &spanBuilder{
				font:     t.Font,
				size:     t.FontSize,
				baseline: t.Y,
				x0:       t.X,
				x1:       t.X,
			}
		}
		cur.text.WriteString(t.S)
		cur.x1 = math.Max(cur.x1, t.X+t.W)
	}
	flushLine()

	return lines
}

// sameLine reports whether glyph t continues the line holding span b. A
// baseline shift or a jump back to the left by more than an em ends the line.
func (r *Reader) sameLine(b *spanBuilder, t pdf.Text, size float64) bool {
	tolerance := math.Max(size, b.size) * r.config.LineTolerance
	if math.Abs(t.Y-b.baseline) > tolerance {
		return false
	}
	return t.X >= b.x1-size
}
