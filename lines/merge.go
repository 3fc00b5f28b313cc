package lines

import (
	"strings"
	"unicode"

	"github.com/tsawler/pdfoutline/geometry"
)

// MergeConfig controls space insertion between spans
type MergeConfig struct {
	// SpaceRatio estimates a space width as a fraction of the font size
	// Default: 0.4
	SpaceRatio float64 `yaml:"space_ratio"`

	// GapFactor is the fraction of the estimated space width a gap must
	// exceed before a space is inserted
	// Default: 0.7
	GapFactor float64 `yaml:"gap_factor"`
}

// DefaultMergeConfig returns sensible default configuration
func DefaultMergeConfig() MergeConfig {
	return MergeConfig{
		SpaceRatio: 0.4,
		GapFactor:  0.7,
	}
}

// MergeSpans joins spans with the default configuration
func MergeSpans(spans []geometry.Span) string {
	return MergeSpansWithConfig(spans, DefaultMergeConfig())
}

// MergeSpansWithConfig concatenates span texts in order, skipping blank
// spans. A single space is inserted before a span whose left edge is more
// than GapFactor*SpaceRatio*size to the right of the previous span's right
// edge, unless whitespace already separates the two texts. The result is
// trimmed.
func MergeSpansWithConfig(spans []geometry.Span, config MergeConfig) string {
	var sb strings.Builder
	var lastX1 float64
	started := false

	for _, s := range spans {
		if s.IsBlank() {
			continue
		}
		threshold := s.Size * config.SpaceRatio * config.GapFactor
		if started && s.BBox.X0-lastX1 > threshold && !endsWithSpace(sb.String()) && !startsWithSpace(s.Text) {
			sb.WriteByte(' ')
		}
		sb.WriteString(s.Text)
		lastX1 = s.BBox.X1
		started = true
	}

	return strings.TrimSpace(sb.String())
}

func endsWithSpace(s string) bool {
	return s != "" && strings.TrimRightFunc(s, unicode.IsSpace) != s
}

func startsWithSpace(s string) bool {
	return s != "" && strings.TrimLeftFunc(s, unicode.IsSpace) != s
}
