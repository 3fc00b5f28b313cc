package heading

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/tsawler/pdfoutline/internal/textset"
	"github.com/tsawler/pdfoutline/lines"
)

var (
	// "1.", "1.2.", "1.2.3." with nothing else
	numberingOnlyPattern = regexp.MustCompile(`^(\d+\.)+$`)

	// five or more characters that are neither word characters nor spaces
	symbolRunPattern = regexp.MustCompile(`^[^\p{L}\p{N}_\s]{5,}$`)

	// "1. ", "1.2 ", "1.2.3 " at the start of a line
	numberedPattern = regexp.MustCompile(`^\d+\.(\d+\.)?(\d+)?\s`)

	level3Pattern = regexp.MustCompile(`^\d+\.\d+\.\d+`)
	level2Pattern = regexp.MustCompile(`^\d+\.\d+`)
	level1Pattern = regexp.MustCompile(`^\d+\.`)
)

// IsValidStructured reports whether text can be a heading at all: long
// enough, not bare numbering, not a run of symbols, containing a letter,
// not dominated by punctuation and free of banned keywords.
func IsValidStructured(text string, config StructuredConfig) bool {
	text = strings.TrimSpace(text)
	runes := []rune(text)

	if len(runes) == 0 || len(runes) < config.MinLength {
		return false
	}
	if numberingOnlyPattern.MatchString(text) || symbolRunPattern.MatchString(text) {
		return false
	}

	letters, symbols := 0, 0
	for _, r := range runes {
		switch {
		case unicode.IsLetter(r):
			letters++
		case unicode.IsNumber(r), unicode.IsSpace(r):
		default:
			symbols++
		}
	}
	if letters == 0 {
		return false
	}
	if float64(symbols)/float64(len(runes)) > config.MaxSymbolRatio {
		return false
	}

	return !textset.New(config.BannedKeywords...).ContainsAnyIn(strings.ToLower(text))
}

// IsPotentialStructured reports whether text is numbered like a section
// or is a known label, and is at least threshold in size
func IsPotentialStructured(text string, size, threshold float64, config StructuredConfig) bool {
	lower := strings.ToLower(text)
	if !numberedPattern.MatchString(lower) && !textset.New(config.KnownLabels...).Has(lower) {
		return false
	}
	return size >= threshold
}

// StructuredLevel infers the level from the numbering depth; unnumbered
// labels are H1
func StructuredLevel(text string) Level {
	switch {
	case level3Pattern.MatchString(text):
		return H3
	case level2Pattern.MatchString(text):
		return H2
	case level1Pattern.MatchString(text):
		return H1
	default:
		return H1
	}
}

// StructuredThreshold returns the smallest size of any known label line.
// Without labels it falls back to MedianRatio times the median line size,
// and to 0 for a document without lines.
func StructuredThreshold(idx *lines.Index, config StructuredConfig) float64 {
	labels := textset.New(config.KnownLabels...)

	found := false
	threshold := 0.0
	for _, l := range idx.All() {
		if !labels.Has(strings.ToLower(l.Text)) {
			continue
		}
		if !found || l.Size < threshold {
			threshold = l.Size
		}
		found = true
	}
	if found {
		return threshold
	}

	sizes := idx.Sizes()
	if len(sizes) == 0 {
		return 0
	}
	sort.Float64s(sizes)
	return sizes[len(sizes)/2] * config.MedianRatio
}

// Structured classifies numbered section headings page by page. Title
// lines, running headers, invalid texts, chapter banners and anything on an
// index page other than the table of contents heading itself are skipped.
// A text is emitted at most once per page.
func Structured(idx *lines.Index, state *RunState, config StructuredConfig) []Heading {
	threshold := StructuredThreshold(idx, config)
	outline := []Heading{}

	for _, page := range idx.Pages() {
		for _, l := range idx.Lines(page) {
			text := l.Text
			if state.TitleLines.Has(text) || state.Repeated.Has(text) {
				continue
			}
			if !IsValidStructured(text, config) || !IsPotentialStructured(text, l.Size, threshold, config) {
				continue
			}

			lower := strings.ToLower(text)
			if hasAnyPrefix(lower, config.SkipPrefixes) {
				continue
			}
			if state.IndexPages[page] && lower != config.IndexPageKeeper {
				continue
			}
			if !state.MarkOnPage(text, page) {
				continue
			}

			outline = append(outline, Heading{
				Level: StructuredLevel(text),
				Text:  text,
				Page:  page,
			})
		}
	}

	return outline
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
