package heading

import (
	"github.com/tsawler/pdfoutline/internal/textset"
)

// RunState owns the bookkeeping of one document's extraction. It is
// created per document and discarded with the result.
type RunState struct {
	// TitleLines are line texts that formed the title
	TitleLines textset.Set

	// Repeated are running header and footer texts
	Repeated textset.Set

	// IndexPages are pages that look like a table of contents or index
	IndexPages map[int]bool

	seenText textset.Set
	seenKey  map[pageKey]bool
}

type pageKey struct {
	text string
	page int
}

// NewRunState creates an empty state
func NewRunState() *RunState {
	return &RunState{
		TitleLines: textset.New(),
		Repeated:   textset.New(),
		IndexPages: make(map[int]bool),
		seenText:   textset.New(),
		seenKey:    make(map[pageKey]bool),
	}
}

// MarkText records text as seen and reports whether it was new
func (s *RunState) MarkText(text string) bool {
	if s.seenText.Has(text) {
		return false
	}
	s.seenText.Add(text)
	return true
}

// MarkOnPage records (text, page) as seen and reports whether it was new
func (s *RunState) MarkOnPage(text string, page int) bool {
	k := pageKey{text: text, page: page}
	if s.seenKey[k] {
		return false
	}
	s.seenKey[k] = true
	return true
}
