package heading

import (
	"strings"
	"unicode"

	"github.com/tsawler/pdfoutline/lines"
)

// Poster returns the first line, in reading order, that reads like an
// uppercase banner as a single H1. Title lines are passed over. The outline
// is empty when no line qualifies.
func Poster(all []lines.Line, state *RunState, config PosterConfig) []Heading {
	for _, l := range all {
		if state.TitleLines.Has(l.Text) {
			continue
		}
		text := strings.TrimSpace(l.Text)
		n := len([]rune(text))
		if n < config.MinUpperLength || n > config.MaxUpperLength || !isUpper(text) {
			continue
		}
		return []Heading{{Level: H1, Text: text, Page: l.Page}}
	}
	return []Heading{}
}

// SparsePoster returns the largest line with at least MinWords words as a
// single H1. Equal sizes keep reading order.
func SparsePoster(all []lines.Line, config PosterConfig) []Heading {
	for _, l := range lines.SortBySizeDesc(all) {
		if len(strings.Fields(l.Text)) >= config.MinWords {
			return []Heading{{Level: H1, Text: l.Text, Page: l.Page}}
		}
	}
	return []Heading{}
}

// isUpper reports whether s has at least one cased letter and every cased
// letter is uppercase
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}
