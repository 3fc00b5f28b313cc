// Package noise identifies text that must not become a heading: table
// rows, running headers and footers repeated across pages, table-of-contents
// and index pages, and lines in the top or bottom page margin.
//
// Filters are plain predicates over [geometry.Line] or [lines.Line] values
// and return sets that callers consult while classifying:
//
//	cfg := noise.DefaultConfig()
//	repeated := noise.RepeatedLines(idx, cfg.MinRepeatPages)
//	indexPages := noise.IndexPages(idx, cfg.IndexKeywords)
package noise
