package lines

import (
	"sort"
	"strings"
)

// Line is one merged logical text line
type Line struct {
	// Text is the merged, trimmed text
	Text string

	// Size is the largest font size among the line's non-blank spans
	Size float64

	// Font is the font name of the line's first span
	Font string

	// Bold is true if any span's font name carries a bold marker
	Bold bool

	// Y is the top edge of the line box
	Y float64

	// X is the left edge of the line box
	X float64

	// Page is the 0-based page number
	Page int

	// SpanCount is the number of spans the line was merged from
	SpanCount int
}

// IsBoldFont reports whether font contains any of markers, ignoring case
func IsBoldFont(font string, markers []string) bool {
	lower := strings.ToLower(font)
	for _, m := range markers {
		if m != "" && strings.Contains(lower, strings.ToLower(m)) {
			return true
		}
	}
	return false
}

// SortByY returns a copy of lines ordered top to bottom. Lines at the same
// height keep their original order.
func SortByY(lines []Line) []Line {
	sorted := make([]Line, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y < sorted[j].Y
	})
	return sorted
}

// SortBySizeDesc returns a copy of lines ordered from the largest size to
// the smallest. Lines of equal size keep their original order.
func SortBySizeDesc(lines []Line) []Line {
	sorted := make([]Line, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Size > sorted[j].Size
	})
	return sorted
}
