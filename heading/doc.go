// Package heading assigns heading levels to document lines.
//
// Two classifier strategies are provided. [Generic] derives four size
// thresholds from the distinct font sizes of the document and requires bold
// text for the two lower levels. [Structured] accepts only numbered lines
// ("1.", "2.3", "4.1.2 ") and a few well-known section labels, with a size
// floor learned from those labels, and skips running headers, index pages
// and chapter banners.
//
// The poster rules ([Poster], [SparsePoster]) pick a single H1 from
// one-page documents, and [BoldSpans] lists every bold span of a document
// for the legacy bold-span output.
//
// Per-document bookkeeping (title lines, seen texts, running headers,
// index pages) lives in a [RunState] that callers create for each document.
package heading
