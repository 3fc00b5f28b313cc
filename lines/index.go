package lines

import "sort"

// Index maps 0-based page numbers to their lines in encountered order.
// Only pages that produced at least one line are present.
type Index struct {
	pages  []int
	byPage map[int][]Line
}

// NewIndex creates an empty index
func NewIndex() *Index {
	return &Index{byPage: make(map[int][]Line)}
}

// IndexOf builds an index from lines in reading order
func IndexOf(all []Line) *Index {
	idx := NewIndex()
	for _, l := range all {
		idx.Add(l)
	}
	return idx
}

// Add appends a line to its page
func (x *Index) Add(l Line) {
	if _, ok := x.byPage[l.Page]; !ok {
		x.pages = append(x.pages, l.Page)
		sort.Ints(x.pages)
	}
	x.byPage[l.Page] = append(x.byPage[l.Page], l)
}

// Pages returns the page numbers in ascending order
func (x *Index) Pages() []int {
	if x == nil {
		return nil
	}
	return x.pages
}

// Lines returns the lines of a page in encountered order
func (x *Index) Lines(page int) []Line {
	if x == nil {
		return nil
	}
	return x.byPage[page]
}

// Has reports whether the page produced any lines
func (x *Index) Has(page int) bool {
	if x == nil {
		return false
	}
	_, ok := x.byPage[page]
	return ok
}

// All returns every line, page-major, in encountered order
func (x *Index) All() []Line {
	if x == nil {
		return nil
	}
	var out []Line
	for _, p := range x.pages {
		out = append(out, x.byPage[p]...)
	}
	return out
}

// Len returns the total number of lines
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	n := 0
	for _, ls := range x.byPage {
		n += len(ls)
	}
	return n
}

// First returns the first line of the document
func (x *Index) First() (Line, bool) {
	if x == nil || len(x.pages) == 0 {
		return Line{}, false
	}
	return x.byPage[x.pages[0]][0], true
}

// Sizes returns the size of every line, page-major
func (x *Index) Sizes() []float64 {
	var out []float64
	for _, l := range x.All() {
		out = append(out, l.Size)
	}
	return out
}
